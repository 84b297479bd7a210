package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-strformat"
)

// listConfig holds parsed list command configuration
type listConfig struct {
	common commonFlags
	prefix string
	tags   string
	format string
}

func runList(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseListFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
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

	templates, err := sf.Storage().List(context.Background(), &strformat.TemplateQuery{
		NamePrefix: cfg.prefix,
		Tags:       splitTags(cfg.tags),
	})
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgListFailed, err)
		return ExitCodeError
	}

	if cfg.format == OutputFormatJSON {
		if templates == nil {
			templates = []*strformat.StoredTemplate{}
		}
		jsonBytes, err := json.MarshalIndent(templates, "", JSONIndent)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgJSONMarshalFailed, err)
			return ExitCodeError
		}
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	if len(templates) == 0 {
		fmt.Fprintln(stdout, ListTextEmpty)
		return ExitCodeSuccess
	}
	for _, tmpl := range templates {
		fmt.Fprintf(stdout, ListTextTemplate+FmtNewline,
			tmpl.Name, tmpl.Version, tmpl.UpdatedAt.Format(ListTimeFormat))
	}
	return ExitCodeSuccess
}

func parseListFlags(args []string) (*listConfig, error) {
	fs := flag.NewFlagSet(CmdNameList, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &listConfig{}
	cfg.common.register(fs)
	fs.StringVar(&cfg.prefix, FlagPrefix, "", "")
	fs.StringVar(&cfg.tags, FlagTags, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := checkOutputFormat(cfg.format); err != nil {
		return nil, err
	}

	return cfg, nil
}
