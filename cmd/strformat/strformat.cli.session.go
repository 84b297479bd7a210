package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/itsatony/go-strformat"
)

// session holds what a command needs once flags are parsed
type session struct {
	config    *cliConfig
	logger    *zap.Logger
	formatter *strformat.Formatter
}

func openSession(flags *commonFlags, stderr io.Writer) (*session, error) {
	cfg, err := flags.resolve()
	if err != nil {
		return nil, err
	}

	logger := cfg.newLogger(stderr)
	formatter, err := cfg.newFormatter(logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFormatterFailed, err)
	}

	return &session{config: cfg, logger: logger, formatter: formatter}, nil
}

// storageFormatter opens the configured storage. The caller closes it.
func (s *session) storageFormatter() (*strformat.StorageFormatter, error) {
	storage, err := strformat.OpenStorage(s.config.Storage.Driver, s.config.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgOpenStorageFailed, err)
	}
	s.logger.Debug(LogMsgStorageOpened,
		zap.String(LogFieldDriver, s.config.Storage.Driver))

	return strformat.NewStorageFormatter(strformat.StorageFormatterConfig{
		Storage:   storage,
		Formatter: s.formatter,
	})
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// templateFlags select where a template comes from
type templateFlags struct {
	path string
	expr string
	name string
}

func (t *templateFlags) register(fs *flag.FlagSet, withName bool) {
	fs.StringVar(&t.path, FlagTemplate, "", "")
	fs.StringVar(&t.path, FlagTemplateShort, "", "")
	fs.StringVar(&t.expr, FlagExpression, "", "")
	fs.StringVar(&t.expr, FlagExpressionShort, "", "")
	if withName {
		fs.StringVar(&t.name, FlagName, "", "")
		fs.StringVar(&t.name, FlagNameShort, "", "")
	}
}

// check requires exactly one source. The name counts only when stored
// templates are accepted.
func (t *templateFlags) check(allowName bool) error {
	count := 0
	for _, set := range []bool{t.path != "", t.expr != "", allowName && t.name != ""} {
		if set {
			count++
		}
	}
	switch {
	case count == 0:
		return errors.New(ErrMsgMissingTemplate)
	case count > 1:
		return errors.New(ErrMsgConflictingTemplate)
	}
	return nil
}

// fromStorage reports whether the template is loaded by name
func (t *templateFlags) fromStorage() bool {
	return t.path == "" && t.expr == "" && t.name != ""
}

// source returns the inline or file template text
func (t *templateFlags) source(stdin io.Reader) (string, error) {
	if t.expr != "" {
		return t.expr, nil
	}
	data, err := readInput(t.path, stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// isTemplateError reports whether err describes the template text itself
func isTemplateError(err error) bool {
	return strformat.IsMalformedPathError(err) ||
		strformat.IsUnterminatedPlaceholderError(err) ||
		strformat.IsUnmatchedBraceError(err) ||
		strformat.IsTemplateTooLargeError(err)
}

func checkOutputFormat(format string) error {
	if format != OutputFormatText && format != OutputFormatJSON {
		return errors.New(ErrMsgInvalidFormat)
	}
	return nil
}
