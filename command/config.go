package command

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/heathj/htmltok/parser"
)

// EnvPrefix is prepended to every flag name to form its environment
// variable, e.g. HTMLTOK_FORMAT or HTMLTOK_REPORT_ERRORS.
const EnvPrefix = "HTMLTOK"

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHTML = "html"
)

// Config holds every setting of a run. Values come from flags, then
// HTMLTOK_ environment variables, then the config file.
type Config struct {
	Format                string `mapstructure:"format"`
	ContentModelSwitching bool   `mapstructure:"content-model-switching"`
	Scripting             bool   `mapstructure:"scripting"`
	ReportErrors          bool   `mapstructure:"report-errors"`
	NoCharRefs            bool   `mapstructure:"no-char-refs"`
	DedupeAttributes      bool   `mapstructure:"dedupe-attributes"`
	NormalizeNewlines     bool   `mapstructure:"normalize-newlines"`
	InitialContentModel   string `mapstructure:"initial-content-model"`
	LastStartTag          string `mapstructure:"last-start-tag"`
	LogLevel              string `mapstructure:"log-level"`
	ConfigFile            string `mapstructure:"config-file"`
}

func registerFlags(fs *pflag.FlagSet) {
	fs.String("format", FormatText, "Output format: text, json, yaml or html.")
	fs.Bool("content-model-switching", false, "Switch into RCDATA, RAWTEXT, script data and PLAINTEXT after the start tags that open them.")
	fs.Bool("scripting", false, "Treat noscript as raw text. Only used with --content-model-switching.")
	fs.Bool("report-errors", false, "Print parse errors to stderr.")
	fs.Bool("no-char-refs", false, "Leave character references undecoded.")
	fs.Bool("dedupe-attributes", false, "Drop repeated attributes, keeping the first.")
	fs.Bool("normalize-newlines", false, "Turn CRLF and lone CR into LF before tokenizing.")
	fs.String("initial-content-model", parser.DataContent.String(), "Content model to start in: Data, RCDATA, RAWTEXT, ScriptData or PLAINTEXT.")
	fs.String("last-start-tag", "", "Name of the element whose end tag closes the initial content model.")
	fs.String("log-level", logrus.InfoLevel.String(), "Log level: panic, fatal, error, warn, info, debug or trace.")
	fs.String("config-file", "", "Path of a YAML config file. Flags and environment variables take precedence.")
}

// loadConfig binds the parsed flags and the environment to v, reads the
// config file when one is named and returns the validated result.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config-file"); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", file)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML, FormatHTML:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	if _, ok := parser.ParseContentModel(c.InitialContentModel); !ok {
		return errors.Errorf("unknown content model %q", c.InitialContentModel)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}

// options turns the config into tokenizer options. reporter receives the
// parse errors; nil keeps the tokenizer's default.
func (c *Config) options(log *logrus.Entry, reporter parser.ParseErrorReporter) []parser.Option {
	m, _ := parser.ParseContentModel(c.InitialContentModel)
	opts := []parser.Option{
		parser.WithLogger(log),
		parser.WithInitialContentModel(m),
		parser.WithLastStartTag(c.LastStartTag),
		parser.WithCharacterReferences(!c.NoCharRefs),
	}
	if reporter != nil {
		opts = append(opts, parser.WithErrorReporter(reporter))
	}
	if c.DedupeAttributes {
		opts = append(opts, parser.WithDuplicateAttributeRemoval())
	}
	if c.NormalizeNewlines {
		opts = append(opts, parser.WithNewlineNormalization())
	}
	return opts
}
