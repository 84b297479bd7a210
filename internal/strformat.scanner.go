package internal

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ScannerConfig holds scanner configuration
type ScannerConfig struct {
	// StrictBraces rejects a lone "}" outside a placeholder instead of
	// copying it to the output
	StrictBraces bool
}

// DefaultScannerConfig returns the default scanner configuration
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{}
}

// Scanner splits a template into literal and placeholder segments in a
// single left-to-right pass
type Scanner struct {
	source string
	config ScannerConfig
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column in runes (1-indexed)
	logger *zap.Logger
}

// NewScanner creates a new scanner with default configuration
func NewScanner(source string, logger *zap.Logger) *Scanner {
	return NewScannerWithConfig(source, DefaultScannerConfig(), logger)
}

// NewScannerWithConfig creates a scanner with custom configuration
func NewScannerWithConfig(source string, config ScannerConfig, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgScannerCreated, zap.Int(LogFieldSource, len(source)))
	return &Scanner{
		source: source,
		config: config,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Scan processes the source and returns its segments. Adjacent literal text,
// including collapsed "{{" and "}}" escapes, is merged into one segment.
func (s *Scanner) Scan() ([]Segment, error) {
	s.logger.Debug(LogMsgScanStart)
	var segments []Segment
	var text strings.Builder
	textPos := s.currentPosition()

	flush := func() {
		if text.Len() > 0 {
			segments = append(segments, NewLiteralSegment(text.String(), textPos))
			text.Reset()
		}
	}

	for !s.isAtEnd() {
		ch := s.peek()

		switch {
		case ch == CharOpenBrace && s.peekNext() == CharOpenBrace:
			if text.Len() == 0 {
				textPos = s.currentPosition()
			}
			text.WriteByte(CharOpenBrace)
			s.advanceN(2)

		case ch == CharOpenBrace:
			flush()
			ph, err := s.scanPlaceholder()
			if err != nil {
				return nil, err
			}
			segments = append(segments, NewPlaceholderSegment(ph))

		case ch == CharCloseBrace && s.peekNext() == CharCloseBrace:
			if text.Len() == 0 {
				textPos = s.currentPosition()
			}
			text.WriteByte(CharCloseBrace)
			s.advanceN(2)

		case ch == CharCloseBrace && s.config.StrictBraces:
			return nil, NewUnmatchedBraceError(s.currentPosition())

		default:
			if text.Len() == 0 {
				textPos = s.currentPosition()
			}
			text.WriteByte(s.advance())
		}
	}
	flush()

	s.logger.Debug(LogMsgScanEnd, zap.Int(LogFieldSegments, len(segments)))
	return segments, nil
}

// scanPlaceholder scans from an opening "{" through its closing "}"
func (s *Scanner) scanPlaceholder() (*Placeholder, error) {
	start := s.currentPosition()
	s.advance() // consume "{"

	var buf strings.Builder
	var identifier string
	identifierDone := false
	specifierIsRef := false

	for !s.isAtEnd() {
		ch := s.advance()

		switch {
		case ch == CharColon && !identifierDone:
			identifier = buf.String()
			buf.Reset()
			identifierDone = true
			if s.peek() == CharOpenBrace {
				specifierIsRef = true
				s.advance()
			}

		case ch == CharCloseBrace:
			if specifierIsRef {
				// {id:{ref}} closes with a second brace
				if s.isAtEnd() || s.peek() != CharCloseBrace {
					return nil, NewUnterminatedPlaceholderError(ErrMsgUnterminatedReference, start)
				}
				s.advance()
			}
			ph := &Placeholder{
				Raw:          s.source[start.Offset:s.pos],
				HasSpecifier: identifierDone,
				Position:     start,
			}
			if identifierDone {
				ph.Specifier = buf.String()
			} else {
				identifier = buf.String()
			}
			return s.finishPlaceholder(ph, identifier, specifierIsRef)

		default:
			buf.WriteByte(ch)
		}
	}

	return nil, NewUnterminatedPlaceholderError(ErrMsgUnterminatedPlaceholder, start)
}

// finishPlaceholder parses the identifier and, for references, the specifier path
func (s *Scanner) finishPlaceholder(ph *Placeholder, identifier string, specifierIsRef bool) (*Placeholder, error) {
	path, err := ParsePath(identifier, ph.Position)
	if err != nil {
		return nil, err
	}
	ph.Identifier = path

	if specifierIsRef {
		ref, err := ParsePath(ph.Specifier, ph.Position)
		if err != nil {
			return nil, err
		}
		ph.SpecifierRef = &ref
	}
	return ph, nil
}

// Helper methods

// currentPosition returns the current position
func (s *Scanner) currentPosition() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (s *Scanner) isAtEnd() bool {
	return s.pos >= len(s.source)
}

// peek returns the current character without advancing
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.pos]
}

// peekNext returns the character after the current one without advancing
func (s *Scanner) peekNext() byte {
	if s.pos+1 >= len(s.source) {
		return 0
	}
	return s.source[s.pos+1]
}

// advance consumes and returns the current byte. Continuation bytes of a
// multi-byte rune do not move the column.
func (s *Scanner) advance() byte {
	if s.isAtEnd() {
		return 0
	}
	ch := s.source[s.pos]
	s.pos++
	if ch == CharNewline {
		s.line++
		s.column = 1
	} else if utf8.RuneStart(ch) {
		s.column++
	}
	return ch
}

// advanceN advances by n characters
func (s *Scanner) advanceN(n int) {
	for i := 0; i < n && !s.isAtEnd(); i++ {
		s.advance()
	}
}
