package strformat

import (
	"go.uber.org/zap"
)

// BracePolicy controls how a lone "}" outside a placeholder is treated.
type BracePolicy int

const (
	// BracePolicyLiteral copies a lone "}" to the output unchanged.
	BracePolicyLiteral BracePolicy = iota
	// BracePolicyStrict rejects a lone "}" with an unmatched brace error.
	BracePolicyStrict
)

// String returns the configuration name of the policy
func (p BracePolicy) String() string {
	if p == BracePolicyStrict {
		return BracePolicyNameStrict
	}
	return BracePolicyNameLiteral
}

// ParseBracePolicy converts a configuration name into a BracePolicy.
// Unknown names report false.
func ParseBracePolicy(name string) (BracePolicy, bool) {
	switch name {
	case BracePolicyNameLiteral, "":
		return BracePolicyLiteral, true
	case BracePolicyNameStrict:
		return BracePolicyStrict, true
	default:
		return BracePolicyLiteral, false
	}
}

// Option is a functional option for configuring the Formatter.
type Option func(*formatterConfig)

// formatterConfig holds the internal configuration for a Formatter.
type formatterConfig struct {
	bracePolicy     BracePolicy
	maxTemplateSize int
	logger          *zap.Logger
}

// defaultFormatterConfig returns the default formatter configuration.
func defaultFormatterConfig() *formatterConfig {
	return &formatterConfig{
		bracePolicy:     BracePolicyLiteral,
		maxTemplateSize: DefaultMaxTemplateSize,
		logger:          nil,
	}
}

// WithBracePolicy sets how a lone "}" is handled.
// Default: BracePolicyLiteral
func WithBracePolicy(policy BracePolicy) Option {
	return func(c *formatterConfig) {
		c.bracePolicy = policy
	}
}

// WithMaxTemplateSize rejects templates longer than size bytes.
// Use 0 for no limit.
// Default: 0
func WithMaxTemplateSize(size int) Option {
	return func(c *formatterConfig) {
		if size >= 0 {
			c.maxTemplateSize = size
		}
	}
}

// WithLogger sets the logger for the formatter.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *formatterConfig) {
		c.logger = logger
	}
}
