package internal

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

type numberKind int

const (
	numberKindInt numberKind = iota
	numberKindUint
	numberKindFloat
)

// Number holds any Go numeric value without losing integer precision
type Number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

// IntNumber wraps a signed integer
func IntNumber(v int64) Number { return Number{kind: numberKindInt, i: v} }

// UintNumber wraps an unsigned integer
func UintNumber(v uint64) Number { return Number{kind: numberKindUint, u: v} }

// FloatNumber wraps a floating point value
func FloatNumber(v float64) Number { return Number{kind: numberKindFloat, f: v} }

// NumberOf reports whether v is numeric (any int, uint or float kind,
// including named types) and returns it as a Number.
func NumberOf(v any) (Number, bool) {
	if v == nil {
		return Number{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntNumber(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return UintNumber(rv.Uint()), true
	case reflect.Float32:
		// widen through the shortest float32 text so 0.1 stays 0.1
		f, _ := strconv.ParseFloat(strconv.FormatFloat(rv.Float(), 'g', -1, 32), FloatBitSize)
		return FloatNumber(f), true
	case reflect.Float64:
		return FloatNumber(rv.Float()), true
	default:
		return Number{}, false
	}
}

// String returns the default conversion: plain decimal for integers and the
// shortest round-trip form for floats, switching to exponent notation below
// 1e-6 and from 1e21 upward.
func (n Number) String() string {
	switch n.kind {
	case numberKindInt:
		return strconv.FormatInt(n.i, BaseDecimal)
	case numberKindUint:
		return strconv.FormatUint(n.u, BaseDecimal)
	default:
		return floatString(n.f)
	}
}

// nonNegative reports n >= 0. NaN is not.
func (n Number) nonNegative() bool {
	switch n.kind {
	case numberKindInt:
		return n.i >= 0
	case numberKindUint:
		return true
	default:
		return n.f >= 0
	}
}

func (n Number) finite() bool {
	return n.kind != numberKindFloat || (!math.IsNaN(n.f) && !math.IsInf(n.f, 0))
}

// integerText floors n and renders it in the given base. Base 10 switches
// to exponent notation at the same magnitude as floatString.
func (n Number) integerText(base int) string {
	switch n.kind {
	case numberKindInt:
		return strconv.FormatInt(n.i, base)
	case numberKindUint:
		return strconv.FormatUint(n.u, base)
	}
	if !n.finite() {
		return floatString(n.f)
	}
	fl := math.Floor(n.f)
	if base == BaseDecimal && math.Abs(fl) >= ExpNotationUpper {
		return floatString(fl)
	}
	if fl >= math.MinInt64 && fl < math.MaxInt64 {
		return strconv.FormatInt(int64(fl), base)
	}
	bi, _ := new(big.Float).SetFloat64(fl).Int(nil)
	return bi.Text(base)
}

// fixedText renders n with exactly prec fractional digits, rounding ties
// away from zero on the exact binary value
func (n Number) fixedText(prec int) string {
	if n.kind != numberKindFloat {
		s := n.String()
		if prec > 0 {
			s += string(CharDot) + strings.Repeat(StrZero, prec)
		}
		return s
	}
	if !n.finite() || math.Abs(n.f) >= ExpNotationUpper {
		return floatString(n.f)
	}

	neg := n.f < 0
	exact := new(big.Float).SetFloat64(math.Abs(n.f)).Text('f', ExactDecimalLimit)
	intPart, frac, _ := strings.Cut(exact, string(CharDot))

	var roundUp bool
	if len(frac) > prec {
		roundUp = frac[prec] >= '5'
		frac = frac[:prec]
	}
	digits := intPart + frac
	if roundUp {
		digits = incrementDecimal(digits)
	}

	intLen := len(digits) - prec
	s := digits[:intLen]
	if prec > 0 {
		s += string(CharDot) + digits[intLen:]
	}
	if neg {
		s = string(FlagMinus) + s
	}
	return s
}

// expText renders n in exponent notation with the shortest mantissa, a space
// before the marker and at least two exponent digits, e.g. "5 e+00"
func (n Number) expText() string {
	var s string
	switch n.kind {
	case numberKindInt, numberKindUint:
		s = integerExponent(n.String())
	default:
		if !n.finite() {
			return floatString(n.f)
		}
		s = strconv.FormatFloat(n.f, 'e', -1, FloatBitSize)
	}
	return strings.Replace(s, StrExpMarker, StrSpacedExp, 1)
}

// integerExponent converts a decimal integer string into shortest exponent form
func integerExponent(s string) string {
	sign := ""
	if strings.HasPrefix(s, string(FlagMinus)) {
		sign, s = string(FlagMinus), s[1:]
	}
	exp := len(s) - 1
	mantissa := strings.TrimRight(s[1:], StrZero)
	if mantissa != "" {
		mantissa = string(CharDot) + mantissa
	}
	expDigits := strconv.Itoa(exp)
	if len(expDigits) < 2 {
		expDigits = StrZero + expDigits
	}
	return sign + s[:1] + mantissa + StrExpMarker + string(FlagPlus) + expDigits
}

// floatString mirrors the default number-to-string conversion used by the
// template syntax: shortest digits, fixed notation in [1e-6, 1e21)
func floatString(f float64) string {
	switch {
	case math.IsNaN(f):
		return StrNaN
	case math.IsInf(f, 1):
		return StrInfinity
	case math.IsInf(f, -1):
		return StrNegInfinity
	case f == 0:
		return StrZero
	}

	abs := math.Abs(f)
	if abs >= ExpNotationUpper || abs < ExpNotationLower {
		s := strconv.FormatFloat(f, 'e', -1, FloatBitSize)
		// single digit exponents are not zero padded: 1e-7, 1e+21
		mant, exp, _ := strings.Cut(s, StrExpMarker)
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], StrZero)
		return mant + StrExpMarker + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, FloatBitSize)
}

// incrementDecimal adds one to a string of decimal digits
func incrementDecimal(digits string) string {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

// applyPrecision pads the fractional part of a plain numeric string with
// zeros up to prec digits. Longer fractions are left untouched.
func applyPrecision(s string, spec Spec) string {
	if !spec.HasPrecision || spec.Precision == 0 || !isPlainDecimal(s) {
		return s
	}
	_, frac, hasDot := strings.Cut(s, string(CharDot))
	missing := spec.Precision - len(frac)
	if missing <= 0 {
		return s
	}
	if !hasDot {
		s += string(CharDot)
	}
	return s + strings.Repeat(StrZero, missing)
}

// isPlainDecimal reports whether s holds only digits and at most one dot
func isPlainDecimal(s string) bool {
	if s == "" {
		return false
	}
	dots := 0
	for i := 0; i < len(s); i++ {
		switch {
		case isDigit(s[i]):
		case s[i] == CharDot:
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// FormatNumber renders n according to the specifier. An empty specifier
// yields the default conversion with no sign, width or precision handling.
func FormatNumber(n Number, specifier string) string {
	if specifier == "" {
		return n.String()
	}
	spec := ParseSpec(specifier)

	var result string
	switch spec.Type {
	case TypeDecimal:
		result = applyPrecision(n.integerText(BaseDecimal), spec)
	case TypeHexLower:
		result = n.integerText(BaseHex)
	case TypeHexUpper:
		result = strings.ToUpper(n.integerText(BaseHex))
	case TypeBinary:
		result = n.integerText(BaseBinary)
	case TypeOctal:
		result = n.integerText(BaseOctal)
	case TypeExpLower:
		result = n.expText()
	case TypeExpUpper:
		result = strings.ToUpper(n.expText())
	case TypeGeneralLower:
		result = strings.ToLower(n.String())
	case TypeGeneralUpper:
		result = strings.ToUpper(n.String())
	case TypeFixedLower:
		result = strings.ToLower(n.fixedText(spec.Precision))
	case TypeFixedUpper:
		result = strings.ToUpper(n.fixedText(spec.Precision))
	default:
		result = applyPrecision(n.String(), spec)
	}

	if spec.Plus && n.nonNegative() {
		result = string(FlagPlus) + result
	}

	return pad(result, spec)
}

// pad applies width: left-aligned with "-", otherwise right-aligned with
// spaces or, with "0", zeros inserted after any leading sign
func pad(s string, spec Spec) string {
	length := utf8.RuneCountInString(s)
	if spec.Width == 0 || length >= spec.Width {
		return s
	}
	count := spec.Width - length

	if spec.Minus {
		return s + strings.Repeat(string(PadSpace), count)
	}
	if !spec.Zero {
		return strings.Repeat(string(PadSpace), count) + s
	}
	padding := strings.Repeat(string(PadZero), count)
	if s[0] == FlagPlus || s[0] == FlagMinus {
		return s[:1] + padding + s[1:]
	}
	return padding + s
}
