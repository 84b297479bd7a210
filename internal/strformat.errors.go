package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// ScanError is returned for malformed templates and path expressions.
// Kind is one of the ErrKind* constants.
type ScanError struct {
	Kind     string
	Message  string
	Path     string
	Position Position
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg += fmt.Sprintf(" %q", e.Path)
	}
	if e.Position.Line > 0 {
		msg += " at " + e.Position.String()
	}
	return msg
}

// NewMalformedPathError creates an error for a path that does not match the segment grammar
func NewMalformedPathError(path string, pos Position) *ScanError {
	msg := ErrMsgMalformedPath
	if path == "" {
		msg = ErrMsgEmptyPath
	}
	return &ScanError{
		Kind:     ErrKindMalformedPath,
		Message:  msg,
		Path:     path,
		Position: pos,
	}
}

// NewUnterminatedPlaceholderError creates an error for a placeholder still open at end of input
func NewUnterminatedPlaceholderError(msg string, pos Position) *ScanError {
	return &ScanError{
		Kind:     ErrKindUnterminatedPlaceholder,
		Message:  msg,
		Position: pos,
	}
}

// NewUnmatchedBraceError creates an error for a lone closing brace in strict mode
func NewUnmatchedBraceError(pos Position) *ScanError {
	return &ScanError{
		Kind:     ErrKindUnmatchedBrace,
		Message:  ErrMsgUnmatchedBrace,
		Position: pos,
	}
}
