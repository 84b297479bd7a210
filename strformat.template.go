package strformat

import (
	"github.com/itsatony/go-strformat/internal"
)

// Template is a compiled template ready for execution.
// A Template is immutable and safe for concurrent use.
type Template struct {
	source       string
	segments     []internal.Segment
	placeholders []PlaceholderInfo
	executor     *internal.Executor
}

// PlaceholderInfo describes one placeholder in a compiled template.
type PlaceholderInfo struct {
	// Raw is the placeholder as written, braces included
	Raw string `json:"raw"`
	// Identifier is the argument path, e.g. "0.user[name]"
	Identifier string `json:"identifier"`
	// Specifier is the literal specifier text; empty for references
	Specifier string `json:"specifier,omitempty"`
	// SpecifierRef is the argument path supplying the specifier at execution time
	SpecifierRef string `json:"specifier_ref,omitempty"`
	Line         int    `json:"line"`
	Column       int    `json:"column"`
}

func newTemplate(source string, segments []internal.Segment, executor *internal.Executor) *Template {
	tmpl := &Template{
		source:   source,
		segments: segments,
		executor: executor,
	}
	for _, seg := range segments {
		if !seg.IsPlaceholder() {
			continue
		}
		ph := seg.Placeholder
		info := PlaceholderInfo{
			Raw:        ph.Raw,
			Identifier: ph.Identifier.Raw,
			Specifier:  ph.Specifier,
			Line:       ph.Position.Line,
			Column:     ph.Position.Column,
		}
		if ph.SpecifierRef != nil {
			info.Specifier = ""
			info.SpecifierRef = ph.SpecifierRef.Raw
		}
		tmpl.placeholders = append(tmpl.placeholders, info)
	}
	return tmpl
}

// Source returns the original template source.
func (t *Template) Source() string {
	return t.source
}

// Placeholders returns the placeholders in source order.
// The returned slice is a copy.
func (t *Template) Placeholders() []PlaceholderInfo {
	out := make([]PlaceholderInfo, len(t.placeholders))
	copy(out, t.placeholders)
	return out
}

// Execute renders the template against args. Missing or nil values render
// as the empty string; the error return is reserved for future value hooks
// and is currently always nil.
func (t *Template) Execute(args ...any) (string, error) {
	return t.executor.Execute(t.segments, args), nil
}

// MustExecute is like Execute but panics on error.
func (t *Template) MustExecute(args ...any) string {
	out, err := t.Execute(args...)
	if err != nil {
		panic(err)
	}
	return out
}
