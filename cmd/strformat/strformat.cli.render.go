package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	common     commonFlags
	template   templateFlags
	version    int
	argsJSON   string
	argsFile   string
	outputPath string
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	formatArgs, err := loadArgs(cfg.argsJSON, cfg.argsFile)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArgs, err)
		return ExitCodeInputError
	}

	sess, err := openSession(&cfg.common, stderr)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidConfig, err)
		return ExitCodeInputError
	}
	defer sess.close()

	var result string
	if cfg.template.fromStorage() {
		result, err = renderStored(sess, cfg, formatArgs)
	} else {
		var source string
		source, err = cfg.template.source(stdin)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
			return ExitCodeInputError
		}
		result, err = sess.formatter.Format(source, formatArgs...)
	}
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgExecuteFailed, err)
		if isTemplateError(err) {
			return ExitCodeValidationError
		}
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func renderStored(sess *session, cfg *renderConfig, args []any) (string, error) {
	sf, err := sess.storageFormatter()
	if err != nil {
		return "", err
	}
	defer sf.Close()

	ctx := context.Background()
	if cfg.version > 0 {
		return sf.FormatVersion(ctx, cfg.template.name, cfg.version, args...)
	}
	return sf.Format(ctx, cfg.template.name, args...)
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}
	cfg.common.register(fs)
	cfg.template.register(fs, true)

	fs.IntVar(&cfg.version, FlagVersion, 0, "")
	fs.StringVar(&cfg.argsJSON, FlagArgs, "", "")
	fs.StringVar(&cfg.argsJSON, FlagArgsShort, "", "")
	fs.StringVar(&cfg.argsFile, FlagArgsFile, "", "")
	fs.StringVar(&cfg.argsFile, FlagArgsFileShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.template.check(true); err != nil {
		return nil, err
	}
	if cfg.version != 0 && !cfg.template.fromStorage() {
		return nil, errors.New(ErrMsgVersionWithoutName)
	}

	return cfg, nil
}
