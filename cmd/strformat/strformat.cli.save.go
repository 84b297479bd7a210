package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-strformat"
)

// saveConfig holds parsed save command configuration
type saveConfig struct {
	common      commonFlags
	template    templateFlags
	description string
	tags        string
	createdBy   string
}

func runSave(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseSaveFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	source, err := cfg.template.source(stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	sess, err := openSession(&cfg.common, stderr)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidConfig, err)
		return ExitCodeInputError
	}
	defer sess.close()

	sf, err := sess.storageFormatter()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgOpenStorageFailed, err)
		return ExitCodeError
	}
	defer sf.Close()

	tmpl := &strformat.StoredTemplate{
		Name:        cfg.template.name,
		Source:      source,
		Description: cfg.description,
		Tags:        splitTags(cfg.tags),
		CreatedBy:   cfg.createdBy,
	}
	if err := sf.Save(context.Background(), tmpl); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgSaveFailed, err)
		if isTemplateError(err) {
			return ExitCodeValidationError
		}
		return ExitCodeError
	}

	fmt.Fprintf(stdout, SaveTextTemplate+FmtNewline, tmpl.Name, tmpl.Version, tmpl.ID)
	return ExitCodeSuccess
}

func parseSaveFlags(args []string) (*saveConfig, error) {
	fs := flag.NewFlagSet(CmdNameSave, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &saveConfig{}
	cfg.common.register(fs)
	cfg.template.register(fs, true)
	fs.StringVar(&cfg.description, FlagDescription, "", "")
	fs.StringVar(&cfg.tags, FlagTags, "", "")
	fs.StringVar(&cfg.createdBy, FlagCreatedBy, "", "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.template.name == "" {
		return nil, errors.New(ErrMsgMissingName)
	}
	if err := cfg.template.check(false); err != nil {
		return nil, err
	}

	return cfg, nil
}
