// Package strformat provides positional and named string formatting with
// per-placeholder numeric format specifiers.
//
// Placeholders are written in braces and name an argument path, optionally
// followed by a colon and a format specifier:
//
//	{0}            first argument
//	{0.user.name}  nested lookup through maps, structs, slices
//	{user[name]}   bracket access; a leading name implies argument 0
//	{0:08.2f}      format specifier
//	{1:{0}}        specifier taken from another argument
//
// Literal braces are escaped by doubling them: "{{" and "}}".
//
// # Basic Usage
//
//	out, err := strformat.Format("{0} has {1:03d} items", "cart", 7)
//	// out: "cart has 007 items"
//
//	out, _ = strformat.Format("Hello, {name}!", map[string]any{"name": "Alice"})
//	// out: "Hello, Alice!"
//
// # Format Specifiers
//
// A specifier has the shape [flags][width][.precision][type]:
//
//	+   always print a sign for non-negative numbers
//	-   left-align within width
//	0   pad with zeros after the sign
//	#   accepted, no effect
//
// Types: d (integer), x X b o (hex, upper hex, binary, octal), e E
// (exponent), f F (fixed point), g G (general), s or none (default text).
// Specifiers apply to numeric values only; other values print as text.
//
//	strformat.MustFormat("{0:x}", 255)        // "ff"
//	strformat.MustFormat("{0:+.2f}", 3.14159) // "+3.14"
//	strformat.MustFormat("{0:-6d}|", 42)      // "42    |"
//
// # Compiled Templates
//
// Templates that are formatted repeatedly can be compiled once:
//
//	tmpl, err := strformat.Compile("{0:08.3f}")
//	out, err := tmpl.Execute(42)
//
// # Custom Rendering
//
// Values implementing Formattable receive the specifier and render
// themselves:
//
//	type Money int64
//
//	func (m Money) FormatSpec(spec string) string { ... }
//
// # Error Handling
//
// Only malformed templates fail. Missing arguments and nil values render as
// the empty string. Errors carry position information:
//
//	_, err := strformat.Format("{0", 1)
//	if strformat.IsUnterminatedPlaceholderError(err) {
//	    pos, _ := strformat.ErrorPosition(err)
//	    // pos.Line, pos.Column
//	}
//
// # Configuration
//
// Customize a formatter with functional options:
//
//	f, _ := strformat.New(
//	    strformat.WithBracePolicy(strformat.BracePolicyStrict),
//	    strformat.WithMaxTemplateSize(64*1024),
//	    strformat.WithLogger(logger),
//	)
//
// # Storage
//
// Named templates can be kept in a TemplateStorage (memory, filesystem or
// PostgreSQL) and formatted by name through a StorageFormatter.
package strformat
