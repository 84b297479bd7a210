package strformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Escaping(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected string
	}{
		{name: "open", template: "{{", expected: "{"},
		{name: "close", template: "}}", expected: "}"},
		{name: "both", template: "{{}}", expected: "{}"},
		{name: "mid text", template: "a{{b}}c", expected: "a{b}c"},
		{name: "around placeholder", template: "{{{0}}}", expected: "{x}"},
		{name: "quadruple", template: "{{{{", expected: "{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Format(tt.template, "x")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFormat_PositionalResolution(t *testing.T) {
	args := []any{"zero", 1, 2.5, true, nil}
	expected := []string{"zero", "1", "2.5", "true", ""}

	for i := range args {
		out, err := Format("{"+FormatNumber(i, "")+"}", args...)
		require.NoError(t, err)
		assert.Equal(t, expected[i], out, "index %d", i)
	}

	out, err := Format("[{9}]", args...)
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestFormat_NonCanonicalIndex(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		expected string
	}{
		{name: "leading zero argument", template: "[{01}]", args: []any{"a", "b"}, expected: "[]"},
		{name: "plus signed argument", template: "[{+1}]", args: []any{"a", "b"}, expected: "[]"},
		{name: "leading zero slice element", template: "[{0[01]}]", args: []any{[]string{"a", "b"}}, expected: "[]"},
		{name: "canonical slice element", template: "[{0[1]}]", args: []any{[]string{"a", "b"}}, expected: "[b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Format(tt.template, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFormat_NameShorthand(t *testing.T) {
	data := map[string]any{"key": "value"}

	short, err := Format("{key}", data)
	require.NoError(t, err)
	explicit, err := Format("{0.key}", data)
	require.NoError(t, err)

	assert.Equal(t, "value", short)
	assert.Equal(t, short, explicit)
}

func TestFormat_NestedPathEquivalence(t *testing.T) {
	data := map[string]any{"a": map[string]any{"b": 42}}

	dot, err := Format("{a.b}", data)
	require.NoError(t, err)
	bracket, err := Format("{a[b]}", data)
	require.NoError(t, err)
	mixed, err := Format("{0[a].b}", data)
	require.NoError(t, err)

	assert.Equal(t, "42", dot)
	assert.Equal(t, dot, bracket)
	assert.Equal(t, dot, mixed)
}

func TestFormat_NumericWidthAndFlags(t *testing.T) {
	tests := []struct {
		template string
		value    any
		expected string
	}{
		{"{0}", 5, "5"},
		{"{0}", -5, "-5"},
		{"{0:+}", 5, "+5"},
		{"{0:4}", 5, "   5"},
		{"{0:04}", 5, "0005"},
		{"{0:-4}", 5, "5   "},
		{"{0:-04}", 5, "5   "},
		{"{0:+4}", 5, "  +5"},
		{"{0:+04}", 5, "+005"},
		{"{0:.4}", 5, "5.0000"},
		{"{0:.4}", 5.14326, "5.14326"},
		{"{0:b}", 10, "1010"},
		{"{0:o}", 10, "12"},
		{"{0:x}", 10, "a"},
		{"{0:X}", 10, "A"},
		{"{0:04}", -5, "-005"},
		{"{0:.2f}", 1.005, "1.00"},
		{"{0:.2f}", 2.675, "2.67"},
		{"{0:.1f}", 0.25, "0.3"},
		{"{0:e}", 5, "5 e+00"},
		{"{0:E}", 12345.678, "1.2345678 E+04"},
	}

	for _, tt := range tests {
		t.Run(tt.template+"/"+FormatValue(tt.value, ""), func(t *testing.T) {
			out, err := Format(tt.template, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFormat_SpecifierReference(t *testing.T) {
	out, err := Format("{1:{0}}", "03d", 56)
	require.NoError(t, err)
	assert.Equal(t, "056", out)

	out, err = Format("{0.n:{0.spec}}", map[string]any{"n": 7, "spec": "+3"})
	require.NoError(t, err)
	assert.Equal(t, " +7", out)
}

func TestFormat_CombinedLiteralAndPlaceholders(t *testing.T) {
	out, err := Format("Number {0} can be presented as decimal {0:d}, hex {0:x}", 56)
	require.NoError(t, err)
	assert.Equal(t, "Number 56 can be presented as decimal 56, hex 38", out)
}

func TestFormat_UnterminatedPlaceholder(t *testing.T) {
	tests := []string{"{0", "abc {0:d", "{", "{0:{1}"}

	for _, template := range tests {
		t.Run(template, func(t *testing.T) {
			out, err := Format(template, 1, 2)
			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, IsUnterminatedPlaceholderError(err))
		})
	}
}

func TestFormat_MalformedPath(t *testing.T) {
	tests := []string{"{}", "{a[b}", "{a..b}", "{0:{}}", "{a]}"}

	for _, template := range tests {
		t.Run(template, func(t *testing.T) {
			_, err := Format(template, map[string]any{"a": 1})
			require.Error(t, err)
			assert.True(t, IsMalformedPathError(err))
		})
	}
}

func TestFormat_NoPartialOutput(t *testing.T) {
	out, err := Format("ok {0} then {1", "x")
	require.Error(t, err)
	assert.Equal(t, "", out)
}

func TestFormat_StructsAndSlices(t *testing.T) {
	type address struct {
		City string `json:"city"`
	}
	type user struct {
		Name    string
		Address *address `json:"address"`
		Tags    []string
	}

	u := user{Name: "Ada", Address: &address{City: "London"}, Tags: []string{"x", "y"}}

	out, err := Format("{Name} / {address.city} / {Tags[1]} / {Tags.5}", u)
	require.NoError(t, err)
	assert.Equal(t, "Ada / London / y / ", out)
}

type money int64

func (m money) FormatSpec(spec string) string {
	if spec == "short" {
		return "$" + FormatNumber(int64(m)/100, "")
	}
	return "$" + FormatNumber(float64(m)/100, ".2f")
}

func TestFormat_Formattable(t *testing.T) {
	out, err := Format("{0} {0:short}", money(1999))
	require.NoError(t, err)
	assert.Equal(t, "$19.99 $19", out)
}

func TestMustFormat(t *testing.T) {
	assert.Equal(t, "a-1", MustFormat("{0}-{1}", "a", 1))
	assert.Panics(t, func() { MustFormat("{0", 1) })
}

func TestResolve(t *testing.T) {
	data := map[string]any{"user": map[string]any{"roles": []string{"admin"}}}

	v, err := Resolve("user.roles[0]", data)
	require.NoError(t, err)
	assert.Equal(t, "admin", v)

	v, err = Resolve("1", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	v, err = Resolve("user.missing.deeper", data)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = Resolve("user[roles", data)
	require.Error(t, err)
	assert.True(t, IsMalformedPathError(err))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("{0:08.2f} {name}"))
	assert.Error(t, Validate("{0"))
}
