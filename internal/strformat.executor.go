package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Executor renders scanned segments against an argument list
type Executor struct {
	logger *zap.Logger
}

// NewExecutor creates a new executor
func NewExecutor(logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgExecutorCreated)
	return &Executor{logger: logger}
}

// Execute renders the segments. Segments are validated at scan time, so
// execution cannot fail: missing values render as the empty string.
func (e *Executor) Execute(segments []Segment, args []any) string {
	e.logger.Debug(LogMsgExecuteStart,
		zap.Int(LogFieldSegments, len(segments)),
		zap.Int(LogFieldArgs, len(args)))

	var sb strings.Builder
	for _, seg := range segments {
		if !seg.IsPlaceholder() {
			sb.WriteString(seg.Literal)
			continue
		}
		sb.WriteString(e.renderPlaceholder(seg.Placeholder, args))
	}

	out := sb.String()
	e.logger.Debug(LogMsgExecuteEnd, zap.Int(LogFieldOutput, len(out)))
	return out
}

func (e *Executor) renderPlaceholder(ph *Placeholder, args []any) string {
	value := ph.Identifier.Resolve(args)

	specifier := ph.Specifier
	if ph.SpecifierRef != nil {
		specifier = RenderSpecifier(ph.SpecifierRef.Resolve(args))
	}

	if ce := e.logger.Check(zap.DebugLevel, LogMsgPlaceholderDone); ce != nil {
		ce.Write(
			zap.String(LogFieldIdentifier, ph.Identifier.Raw),
			zap.String(LogFieldSpecifier, specifier))
	}
	return RenderValue(value, specifier)
}
