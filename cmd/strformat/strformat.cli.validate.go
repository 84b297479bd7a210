package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-strformat"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	common   commonFlags
	template templateFlags
	format   string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid        bool                        `json:"valid"`
	Placeholders []strformat.PlaceholderInfo `json:"placeholders,omitempty"`
	Error        *validationErrorOutput      `json:"error,omitempty"`
}

type validationErrorOutput struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
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

	var tmpl *strformat.Template
	if cfg.template.fromStorage() {
		tmpl, err = compileStored(sess, cfg.template.name)
	} else {
		var source string
		source, err = cfg.template.source(stdin)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
			return ExitCodeInputError
		}
		tmpl, err = sess.formatter.Compile(source)
	}
	if err != nil && !isTemplateError(err) {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgExecuteFailed, err)
		return ExitCodeError
	}

	output := newValidationOutput(tmpl, err)
	if cfg.format == OutputFormatJSON {
		if err := outputValidationJSON(output, stdout); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgJSONMarshalFailed, err)
			return ExitCodeError
		}
	} else {
		outputValidationText(output, stdout)
	}

	if !output.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

func compileStored(sess *session, name string) (*strformat.Template, error) {
	sf, err := sess.storageFormatter()
	if err != nil {
		return nil, err
	}
	defer sf.Close()
	return sf.Compile(context.Background(), name)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &validateConfig{}
	cfg.common.register(fs)
	cfg.template.register(fs, true)
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.template.check(true); err != nil {
		return nil, err
	}
	if err := checkOutputFormat(cfg.format); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newValidationOutput(tmpl *strformat.Template, err error) *validationOutput {
	if err != nil {
		out := &validationErrorOutput{Message: err.Error()}
		if pos, ok := strformat.ErrorPosition(err); ok {
			out.Line = pos.Line
			out.Column = pos.Column
		}
		return &validationOutput{Error: out}
	}
	return &validationOutput{Valid: true, Placeholders: tmpl.Placeholders()}
}

func outputValidationText(output *validationOutput, stdout io.Writer) {
	if !output.Valid {
		fmt.Fprintln(stdout, ValidationTextInvalid)
		if output.Error.Line > 0 {
			fmt.Fprintf(stdout, ValidationTextErrorFormat+FmtNewline,
				output.Error.Message, output.Error.Line, output.Error.Column)
		} else {
			fmt.Fprintln(stdout, output.Error.Message)
		}
		return
	}

	fmt.Fprintln(stdout, ValidationTextSuccess)
	for _, p := range output.Placeholders {
		fmt.Fprintf(stdout, ValidationTextPlaceholder+FmtNewline, p.Raw, p.Line, p.Column)
	}
	fmt.Fprintf(stdout, ValidationTextSummary+FmtNewline, len(output.Placeholders))
}

func outputValidationJSON(output *validationOutput, stdout io.Writer) error {
	jsonBytes, err := json.MarshalIndent(output, "", JSONIndent)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(jsonBytes))
	return nil
}
