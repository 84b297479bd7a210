package internal

// SegmentType identifies the kind of a scanned template segment
type SegmentType int

// Segment type constants
const (
	SegmentTypeLiteral SegmentType = iota
	SegmentTypePlaceholder
)

// Segment type string names for debugging
const (
	SegmentTypeNameLiteral     = "LITERAL"
	SegmentTypeNamePlaceholder = "PLACEHOLDER"
)

// String returns the string representation of the segment type
func (s SegmentType) String() string {
	switch s {
	case SegmentTypePlaceholder:
		return SegmentTypeNamePlaceholder
	default:
		return SegmentTypeNameLiteral
	}
}

// Template character constants
const (
	CharOpenBrace    = '{'
	CharCloseBrace   = '}'
	CharColon        = ':'
	CharDot          = '.'
	CharOpenBracket  = '['
	CharCloseBracket = ']'
	CharNewline      = '\n'
)

// Specifier flag characters
const (
	FlagPlus      = '+'
	FlagMinus     = '-'
	FlagZero      = '0'
	FlagAlternate = '#'
)

// Specifier type characters
const (
	TypeDecimal      = "d"
	TypeHexLower     = "x"
	TypeHexUpper     = "X"
	TypeBinary       = "b"
	TypeOctal        = "o"
	TypeExpLower     = "e"
	TypeExpUpper     = "E"
	TypeGeneralLower = "g"
	TypeGeneralUpper = "G"
	TypeFixedLower   = "f"
	TypeFixedUpper   = "F"
	TypeString       = "s"
)

// MaxSpecNumber caps width and precision in a format specifier. Larger
// digit runs saturate to this value.
const MaxSpecNumber = 1 << 20

// Numeric bases
const (
	BaseBinary  = 2
	BaseOctal   = 8
	BaseDecimal = 10
	BaseHex     = 16
)

// Number rendering constants
const (
	StrNaN            = "NaN"
	StrInfinity       = "Infinity"
	StrNegInfinity    = "-Infinity"
	StrZero           = "0"
	StrExpMarker      = "e"
	StrSpacedExp      = " e"
	StrTrue           = "true"
	StrFalse          = "false"
	StrEmpty          = ""
	ExpNotationUpper  = 1e21
	ExpNotationLower  = 1e-6
	FloatBitSize      = 64
	ExactDecimalLimit = 1100 // enough fractional digits to print any float64 exactly
)

// Padding characters
const (
	PadSpace = ' '
	PadZero  = '0'
)

// Struct tag consulted when resolving struct fields by name
const StructTagJSON = "json"

// Error kinds carried by ScanError
const (
	ErrKindMalformedPath           = "malformed_path"
	ErrKindUnterminatedPlaceholder = "unterminated_placeholder"
	ErrKindUnmatchedBrace          = "unmatched_brace"
)

// Error message constants
const (
	ErrMsgMalformedPath           = "malformed path expression"
	ErrMsgEmptyPath               = "path expression cannot be empty"
	ErrMsgUnterminatedPlaceholder = "unterminated placeholder"
	ErrMsgUnterminatedReference   = "unterminated specifier reference"
	ErrMsgUnmatchedBrace          = "unmatched closing brace"
)

// Log message constants
const (
	LogMsgScannerCreated  = "scanner created"
	LogMsgScanStart       = "starting scan"
	LogMsgScanEnd         = "scan complete"
	LogMsgExecutorCreated = "executor created"
	LogMsgExecuteStart    = "starting execution"
	LogMsgExecuteEnd      = "execution complete"
	LogMsgPlaceholderDone = "placeholder rendered"
)

// Log field names
const (
	LogFieldSource     = "source_length"
	LogFieldSegments   = "segments"
	LogFieldIdentifier = "identifier"
	LogFieldSpecifier  = "specifier"
	LogFieldOutput     = "output_length"
	LogFieldArgs       = "args"
)
