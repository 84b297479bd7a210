package strformat

import (
	"github.com/itsatony/go-strformat/internal"
	"go.uber.org/zap"
)

// Formatter compiles and executes templates. It holds no per-call state and
// is safe for concurrent use.
type Formatter struct {
	config   *formatterConfig
	executor *internal.Executor
	logger   *zap.Logger
}

// defaultFormatter backs the package-level functions. It is never mutated.
var defaultFormatter = MustNew()

// New creates a new Formatter with the given options.
func New(opts ...Option) (*Formatter, error) {
	config := defaultFormatterConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgFormatterCreated,
		zap.String(LogFieldBracePolicy, config.bracePolicy.String()))

	return &Formatter{
		config:   config,
		executor: internal.NewExecutor(logger),
		logger:   logger,
	}, nil
}

// MustNew creates a new Formatter and panics if there's an error.
func MustNew(opts ...Option) *Formatter {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Compile scans a template once and returns a reusable Template.
// Every identifier and specifier reference is parsed here, so a malformed
// template fails before any output is produced.
func (f *Formatter) Compile(source string) (*Template, error) {
	if limit := f.config.maxTemplateSize; limit > 0 && len(source) > limit {
		return nil, NewTemplateTooLargeError(len(source), limit)
	}

	f.logger.Debug(LogMsgCompileStart, zap.Int(LogFieldSourceLength, len(source)))

	scannerConfig := internal.ScannerConfig{
		StrictBraces: f.config.bracePolicy == BracePolicyStrict,
	}
	segments, err := internal.NewScannerWithConfig(source, scannerConfig, f.logger).Scan()
	if err != nil {
		f.logger.Debug(LogMsgCompileFailed, zap.Error(err))
		return nil, convertScanError(err)
	}

	tmpl := newTemplate(source, segments, f.executor)
	f.logger.Debug(LogMsgCompileEnd, zap.Int(LogFieldPlaceholders, len(tmpl.placeholders)))
	return tmpl, nil
}

// Format compiles and executes a template in one step.
// For templates that will be formatted repeatedly, use Compile instead.
func (f *Formatter) Format(template string, args ...any) (string, error) {
	tmpl, err := f.Compile(template)
	if err != nil {
		return "", err
	}
	return tmpl.Execute(args...)
}

// Validate checks template syntax without formatting it.
func (f *Formatter) Validate(template string) error {
	_, err := f.Compile(template)
	return err
}

// Format substitutes each placeholder in template with the referenced argument.
//
//	strformat.Format("{0} has {1:03d} items", "cart", 7) // "cart has 007 items"
func Format(template string, args ...any) (string, error) {
	return defaultFormatter.Format(template, args...)
}

// MustFormat is like Format but panics on a malformed template.
func MustFormat(template string, args ...any) string {
	out, err := Format(template, args...)
	if err != nil {
		panic(err)
	}
	return out
}

// Compile compiles a template with the default formatter.
func Compile(template string) (*Template, error) {
	return defaultFormatter.Compile(template)
}

// Validate checks template syntax with the default formatter.
func Validate(template string) error {
	return defaultFormatter.Validate(template)
}

// Resolve looks up a path expression such as "0.user[name]" or "name"
// against args. Missing values resolve to nil without error.
func Resolve(path string, args ...any) (any, error) {
	v, err := internal.ResolvePath(path, args)
	if err != nil {
		return nil, convertScanError(err)
	}
	return v, nil
}
