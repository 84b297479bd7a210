package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/itsatony/go-strformat"
)

// cliConfig is the configuration shared by all commands.
// It is read from --config and then overridden by flags.
type cliConfig struct {
	BracePolicy     string        `mapstructure:"brace_policy"`
	MaxTemplateSize int           `mapstructure:"max_template_size"`
	Verbose         bool          `mapstructure:"verbose"`
	Storage         storageConfig `mapstructure:"storage"`
}

type storageConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

func defaultCLIConfig() *cliConfig {
	return &cliConfig{
		BracePolicy: strformat.BracePolicyNameLiteral,
		Storage: storageConfig{
			Driver: DefaultStorageDriver,
			DSN:    DefaultStorageDSN,
		},
	}
}

// loadConfigFile decodes a TOML, YAML or JSON document into cfg.
// Keys absent from the document keep their current value.
func loadConfigFile(path string, cfg *cliConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgReadFileFailed, err)
	}

	doc, err := decodeDocument(path, data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgConfigUnmarshalFailed, err)
	}
	if doc == nil {
		return nil
	}
	values, ok := doc.(map[string]any)
	if !ok {
		return errors.New(ErrMsgInvalidConfig)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          ConfigTagName,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgConfigDecoderFailed, err)
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgConfigDecodeFailed, err)
	}
	return nil
}

func (c *cliConfig) validate() error {
	if _, ok := strformat.ParseBracePolicy(c.BracePolicy); !ok {
		return fmt.Errorf("%s: %q", ErrMsgInvalidBracePolicy, c.BracePolicy)
	}
	if c.MaxTemplateSize < 0 {
		return errors.New(ErrMsgInvalidMaxSize)
	}
	return nil
}

// newLogger returns a development console logger on w when verbose,
// and a no-op logger otherwise.
func (c *cliConfig) newLogger(w io.Writer) *zap.Logger {
	if !c.Verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

func (c *cliConfig) newFormatter(logger *zap.Logger) (*strformat.Formatter, error) {
	policy, _ := strformat.ParseBracePolicy(c.BracePolicy)
	return strformat.New(
		strformat.WithBracePolicy(policy),
		strformat.WithMaxTemplateSize(c.MaxTemplateSize),
		strformat.WithLogger(logger),
	)
}

// commonFlags are accepted by every command that formats or stores templates.
type commonFlags struct {
	configPath string
	verbose    bool
	storage    string
	dsn        string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, FlagConfig, "", "")
	fs.BoolVar(&c.verbose, FlagVerbose, false, "")
	fs.BoolVar(&c.verbose, FlagVerboseShort, false, "")
	fs.StringVar(&c.storage, FlagStorage, "", "")
	fs.StringVar(&c.dsn, FlagDSN, "", "")
}

// resolve builds the effective configuration
func (c *commonFlags) resolve() (*cliConfig, error) {
	cfg := defaultCLIConfig()
	if c.configPath != "" {
		if err := loadConfigFile(c.configPath, cfg); err != nil {
			return nil, err
		}
	}
	if c.verbose {
		cfg.Verbose = true
	}
	if c.storage != "" {
		cfg.Storage.Driver = c.storage
	}
	if c.dsn != "" {
		cfg.Storage.DSN = c.dsn
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
