package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTemplatedBracesDoubled(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "positional token", text: "Hello {0}!", want: true},
		{name: "named token", text: "Hello {name}!", want: true},
		{name: "token with format", text: "Price: {amount:N2}", want: true},
		{name: "token with alignment", text: "{0,8} items", want: true},
		{name: "plain text", text: "Hello world", want: false},
		{name: "empty string", text: "", want: false},
		{name: "escaped braces are literal", text: "use {{0}} here", want: false},
		{name: "escape then real token", text: "{{literal}} and {0}", want: true},
		{name: "unmatched open brace", text: "broken {0", want: false},
		{name: "unmatched close brace", text: "broken 0}", want: false},
		{name: "empty token", text: "empty {} token", want: false},
		{name: "token with space", text: "not a {to ken}", want: false},
		{name: "newline inside format section", text: "{x:\n}", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTemplated(tt.text, ModeBracesDoubled))
		})
	}
}

func TestIsTemplatedBracesBackslash(t *testing.T) {
	assert.True(t, IsTemplated(`Hello {name}`, ModeBracesBackslash))
	assert.False(t, IsTemplated(`literal \{name}`, ModeBracesBackslash))
	assert.True(t, IsTemplated(`\{esc} then {0}`, ModeBracesBackslash))
	// Doubled braces are not an escape in this mode.
	assert.True(t, IsTemplated("{{name}}", ModeBracesBackslash))
}

func TestIsTemplatedModeNone(t *testing.T) {
	assert.False(t, IsTemplated("Hello {0}", ModeNone))
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeNone, ParseMode("none"))
	assert.Equal(t, ModeNone, ParseMode(""))
	assert.Equal(t, ModeBracesBackslash, ParseMode("braces-backslash"))
	assert.Equal(t, ModeBracesDoubled, ParseMode("braces"))
	assert.Equal(t, ModeBracesDoubled, ParseMode("anything-else"))
}

func TestParseMeta(t *testing.T) {
	record := map[string]any{
		"type":        "int",
		"format":      "compactCurrency",
		"example":     "12",
		"description": "number of items",
		"optionalParameters": map[string]any{
			"decimalDigits": float64(2),
			"symbol":        "€",
		},
	}

	p, err := ParseMeta("count", record)
	require.NoError(t, err)

	assert.Equal(t, "count", p.Name)
	assert.Equal(t, "int", p.Type)
	assert.Equal(t, "compactCurrency", p.Format)
	assert.Equal(t, "12", p.Example)
	assert.Equal(t, map[string]string{"description": "number of items"}, p.Properties)
	assert.Equal(t, map[string]string{"decimalDigits": "2", "symbol": "€"}, p.OptionalParameters)
}

func TestParseMetaRequiresName(t *testing.T) {
	_, err := ParseMeta("", map[string]any{"type": "String"})
	require.Error(t, err)
}

func TestParseMetaIgnoresNonScalars(t *testing.T) {
	p, err := ParseMeta("x", map[string]any{
		"nested": map[string]any{"deep": true},
		"list":   []any{"a"},
		"flag":   true,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"flag": "true"}, p.Properties)
	assert.Empty(t, p.OptionalParameters)
}
