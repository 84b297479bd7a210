package internal

import "fmt"

// Segment is one unit of a scanned template: literal text or a placeholder
type Segment struct {
	Type        SegmentType
	Literal     string       // Text for literal segments, escapes already collapsed
	Placeholder *Placeholder // Set for placeholder segments
	Position    Position
}

// String returns a human-readable representation of the segment
func (s Segment) String() string {
	if s.Type == SegmentTypePlaceholder {
		return fmt.Sprintf("Segment{%s: %q @ %s}", s.Type, s.Placeholder.Raw, s.Position)
	}
	return fmt.Sprintf("Segment{%s: %q @ %s}", s.Type, s.Literal, s.Position)
}

// IsPlaceholder returns true if this is a placeholder segment
func (s Segment) IsPlaceholder() bool {
	return s.Type == SegmentTypePlaceholder
}

// Placeholder is a parsed {identifier[:specifier]} token
type Placeholder struct {
	// Raw is the token as written, braces included
	Raw        string
	Identifier Path

	// HasSpecifier is true when a ":" was present, even if the specifier is empty
	HasSpecifier bool
	Specifier    string

	// SpecifierRef is set for {id:{ref}} tokens; the specifier is then
	// resolved from the arguments at execution time
	SpecifierRef *Path

	Position Position
}

// NewLiteralSegment creates a literal text segment
func NewLiteralSegment(text string, pos Position) Segment {
	return Segment{Type: SegmentTypeLiteral, Literal: text, Position: pos}
}

// NewPlaceholderSegment creates a placeholder segment
func NewPlaceholderSegment(ph *Placeholder) Segment {
	return Segment{Type: SegmentTypePlaceholder, Placeholder: ph, Position: ph.Position}
}
