package command

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/heathj/htmltok/parser"
)

// stdinName stands for standard input in the argument list and in output.
const stdinName = "-"

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand creates the htmltok command. Every call gets its own viper
// instance so commands can be built and run side by side in tests.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "htmltok [file...]",
		Short: "Tokenize HTML and print the token stream",
		Long: `htmltok runs the HTML tokenizer over each file, or over standard input when
no file is given or the file is "-", and prints the tokens it emits.

Every flag can also be set through an environment variable named HTMLTOK_
followed by the flag name in upper case with dashes turned into underscores,
for example HTMLTOK_REPORT_ERRORS=true, or through a YAML file given with
--config-file.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd.Flags())
			if err != nil {
				return err
			}
			// Flag errors above still print usage; everything past this point
			// is a failure of the run itself.
			cmd.SilenceUsage = true
			return run(cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	registerFlags(root.Flags())
	return root
}

func newLogger(cfg *Config, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	// validate has already rejected unknown levels.
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	return log
}

func run(cfg *Config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	log := newLogger(cfg, stderr)
	if len(args) == 0 {
		args = []string{stdinName}
	}

	w, err := newWriter(cfg.Format, stdout, stderr, len(args) > 1)
	if err != nil {
		return err
	}
	for _, name := range args {
		input, err := readInput(name, stdin)
		if err != nil {
			return err
		}
		entry := log.WithField("source", name)
		doc := tokenize(cfg, name, input, entry)
		entry.WithField("tokens", len(doc.tokens)).Debug("tokenized")
		if err := w.write(doc); err != nil {
			return errors.Wrapf(err, "write tokens of %s", name)
		}
	}
	return errors.Wrap(w.close(), "flush output")
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == stdinName {
		input, err := io.ReadAll(stdin)
		return input, errors.Wrap(err, "read standard input")
	}
	input, err := os.ReadFile(name)
	return input, errors.Wrapf(err, "read %s", name)
}

// tokenize runs one input through the tokenizer, or through the parser when
// content model switching is on.
func tokenize(cfg *Config, name string, input []byte, log *logrus.Entry) *document {
	doc := &document{source: name}
	var reporter parser.ParseErrorReporter
	if cfg.ReportErrors {
		reporter = &doc.errs
	}
	opts := cfg.options(log, reporter)
	if cfg.ContentModelSwitching {
		doc.tokens = parser.NewParser(input, parser.NewContentModelSwitcher(cfg.Scripting), opts...).Run()
	} else {
		doc.tokens = parser.Tokenize(input, opts...)
	}
	return doc
}
