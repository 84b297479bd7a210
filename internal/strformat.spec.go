package internal

// Spec is a parsed format specifier: [flags][width][.precision][type]
type Spec struct {
	Plus      bool
	Minus     bool
	Zero      bool
	Alternate bool // parsed, currently has no effect

	Width        int // 0 when absent
	Precision    int
	HasPrecision bool

	// Type is everything after precision. Unknown types render like "s".
	Type string
}

// ParseSpec parses a format specifier. Every input parses; characters that
// do not fit the flags/width/precision prefix become the type. Width and
// precision saturate at MaxSpecNumber.
func ParseSpec(s string) Spec {
	var spec Spec
	i := 0

	for ; i < len(s); i++ {
		switch s[i] {
		case FlagPlus:
			spec.Plus = true
			continue
		case FlagMinus:
			spec.Minus = true
			continue
		case FlagZero:
			spec.Zero = true
			continue
		case FlagAlternate:
			spec.Alternate = true
			continue
		}
		break
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	spec.Width = atoiDigits(s[start:i])

	if i+1 < len(s) && s[i] == CharDot && isDigit(s[i+1]) {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		spec.Precision = atoiDigits(s[start:i])
		spec.HasPrecision = true
	}

	spec.Type = s[i:]
	return spec
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// atoiDigits converts a run of ASCII digits, saturating at MaxSpecNumber
func atoiDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*BaseDecimal + int(s[i]-'0')
		if n > MaxSpecNumber {
			return MaxSpecNumber
		}
	}
	return n
}
