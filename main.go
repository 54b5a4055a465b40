package main

import (
	"os"

	"github.com/heathj/htmltok/command"
)

func main() {
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
