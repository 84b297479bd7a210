package strformat

import (
	"github.com/itsatony/go-strformat/internal"
)

// Number is satisfied by every built-in integer and floating point type,
// including named types derived from them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Formattable is implemented by values that render themselves for a
// specifier. A Formattable argument bypasses numeric and generic rendering:
//
//	func (m Money) FormatSpec(spec string) string { ... }
type Formattable = internal.Formattable

// FormatNumber renders value according to a specifier such as "+08.2f" or "x".
// An empty or unknown specifier yields the default string conversion.
func FormatNumber[T Number](value T, specifier string) string {
	n, _ := internal.NumberOf(value)
	return internal.FormatNumber(n, specifier)
}

// FormatValue renders any value the way a placeholder would: Formattable
// first, then numeric kinds, then the generic string conversion.
func FormatValue(value any, specifier string) string {
	return internal.RenderValue(value, specifier)
}
