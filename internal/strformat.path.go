package internal

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// segmentPattern splits a path into its first segment and the remaining tail.
// Group 1 is a bracketed key, group 2 a bare key with optional leading dot.
// Compiled once and never mutated.
var segmentPattern = regexp.MustCompile(`^(?:\[([^.\[\]]+)\]|\.?([^.\[\]]+))(.*)$`)

// PathSegment is a single key in a path expression
type PathSegment struct {
	Key       string
	Bracketed bool
}

// Path is a parsed dot/bracket path expression such as "0.user[name]"
type Path struct {
	Raw      string
	Segments []PathSegment
}

// ParsePath parses a raw path expression. The position is attached to any
// error so callers can report where the offending placeholder starts.
func ParsePath(raw string, pos Position) (Path, error) {
	if raw == "" {
		return Path{}, NewMalformedPathError(raw, pos)
	}

	path := Path{Raw: raw}
	rest := raw
	for rest != "" {
		m := segmentPattern.FindStringSubmatch(rest)
		if m == nil {
			return Path{}, NewMalformedPathError(raw, pos)
		}
		if m[1] != "" {
			path.Segments = append(path.Segments, PathSegment{Key: m[1], Bracketed: true})
		} else {
			path.Segments = append(path.Segments, PathSegment{Key: m[2]})
		}
		rest = m[3]
	}
	return path, nil
}

// String returns the raw path expression
func (p Path) String() string {
	return p.Raw
}

// Resolve walks the path against the argument list. A non-numeric first key
// is looked up inside args[0], so "{name}" is shorthand for "{0.name}".
// Missing values at any depth resolve to nil.
func (p Path) Resolve(args []any) any {
	var current any = args
	for i, seg := range p.Segments {
		if i == 0 && !isFiniteNumber(seg.Key) {
			if len(args) == 0 {
				return nil
			}
			current = args[0]
		}
		current = lookupKey(current, seg.Key)
		if current == nil {
			return nil
		}
	}
	return current
}

// ResolvePath parses and resolves a path in one step
func ResolvePath(raw string, args []any) (any, error) {
	path, err := ParsePath(raw, Position{})
	if err != nil {
		return nil, err
	}
	return path.Resolve(args), nil
}

// isFiniteNumber reports whether key parses as a finite number
func isFiniteNumber(key string) bool {
	f, err := strconv.ParseFloat(key, FloatBitSize)
	if err != nil {
		return false
	}
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// lookupKey returns base[key] for maps, slices, arrays, strings and structs.
// Pointers and interfaces are followed. Returns nil when the key is absent.
func lookupKey(base any, key string) any {
	v, ok := indirect(reflect.ValueOf(base))
	if !ok {
		return nil
	}

	switch v.Kind() {
	case reflect.Map:
		return lookupMap(v, key)
	case reflect.Slice, reflect.Array:
		idx, ok := parseIndex(key, v.Len())
		if !ok {
			return nil
		}
		return valueInterface(v.Index(idx))
	case reflect.String:
		s := v.String()
		idx, ok := parseIndex(key, utf8.RuneCountInString(s))
		if !ok {
			return nil
		}
		return string([]rune(s)[idx])
	case reflect.Struct:
		return lookupField(v, key)
	default:
		return nil
	}
}

// indirect follows pointers and interfaces; ok is false for nil or invalid values
func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

func valueInterface(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}

// parseIndex accepts only the canonical decimal form of an index, so "01"
// and "+1" name no element
func parseIndex(key string, length int) (int, bool) {
	idx, err := strconv.Atoi(key)
	if err != nil || strconv.Itoa(idx) != key || idx < 0 || idx >= length {
		return 0, false
	}
	return idx, true
}

func lookupMap(m reflect.Value, key string) any {
	keyType := m.Type().Key()

	var k reflect.Value
	switch keyType.Kind() {
	case reflect.String:
		k = reflect.ValueOf(key).Convert(keyType)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, BaseDecimal, keyType.Bits())
		if err != nil || strconv.FormatInt(n, BaseDecimal) != key {
			return nil
		}
		k = reflect.ValueOf(n).Convert(keyType)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(key, BaseDecimal, keyType.Bits())
		if err != nil || strconv.FormatUint(n, BaseDecimal) != key {
			return nil
		}
		k = reflect.ValueOf(n).Convert(keyType)
	case reflect.Interface:
		if keyType.NumMethod() != 0 {
			return nil
		}
		// map[any]any: try the string key first, then an int key
		if val := m.MapIndex(reflect.ValueOf(key)); val.IsValid() {
			return valueInterface(val)
		}
		n, err := strconv.Atoi(key)
		if err != nil || strconv.Itoa(n) != key {
			return nil
		}
		k = reflect.ValueOf(n)
	default:
		return nil
	}

	val := m.MapIndex(k)
	if !val.IsValid() {
		return nil
	}
	return valueInterface(val)
}

func lookupField(v reflect.Value, key string) any {
	t := v.Type()
	if f, ok := t.FieldByName(key); ok && f.IsExported() {
		field, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return nil
		}
		return valueInterface(field)
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get(StructTagJSON), ",")
		if name == key {
			return valueInterface(v.Field(i))
		}
	}
	return nil
}
