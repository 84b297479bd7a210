package internal

import (
	"fmt"
	"reflect"
)

// Formattable is implemented by values that render themselves for a specifier.
// It takes precedence over numeric and generic rendering.
type Formattable interface {
	FormatSpec(specifier string) string
}

// RenderValue converts a resolved value to text. Absent values (nil, nil
// pointers, nil interfaces) render as the empty string.
func RenderValue(value any, specifier string) string {
	if isAbsent(value) {
		return StrEmpty
	}
	if f, ok := value.(Formattable); ok {
		return f.FormatSpec(specifier)
	}

	if n, ok := NumberOf(dereference(value)); ok {
		return FormatNumber(n, specifier)
	}
	return valueString(value)
}

// dereference follows pointers so *int renders like int
func dereference(value any) any {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Pointer {
		return value
	}
	elem, ok := indirect(rv)
	if !ok {
		return nil
	}
	return elem.Interface()
}

// RenderSpecifier converts a resolved specifier reference to specifier text
func RenderSpecifier(value any) string {
	if isAbsent(value) {
		return StrEmpty
	}
	if n, ok := NumberOf(value); ok {
		return n.String()
	}
	return valueString(value)
}

func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// valueString is the generic fallback conversion
func valueString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return StrTrue
		}
		return StrFalse
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case []byte:
		return string(v)
	}
	if reflect.ValueOf(value).Kind() == reflect.Pointer {
		if elem := dereference(value); elem != nil {
			return valueString(elem)
		}
		return StrEmpty
	}
	return fmt.Sprint(value)
}
