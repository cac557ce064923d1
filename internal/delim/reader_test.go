package delim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRowUnquoted(t *testing.T) {
	tests := []struct {
		name    string
		content string
		sep     byte
		want    []string
	}{
		{name: "simple", content: "a,b,c", sep: ',', want: []string{"a", "b", "c"}},
		{name: "empty middle field", content: "a,b,,d", sep: ',', want: []string{"a", "b", "", "d"}},
		{name: "trailing separator keeps empty field", content: "a,b,", sep: ',', want: []string{"a", "b", ""}},
		{name: "single field", content: "hello", sep: ',', want: []string{"hello"}},
		{name: "tab separated", content: "id\tname\tvalue", sep: '\t', want: []string{"id", "name", "value"}},
		{name: "quote char is literal when quoting off", content: `"a,b",c`, sep: ',', want: []string{`"a`, `b"`, "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, next, nextLine, err := ReadRow(tt.content, 0, 1, tt.sep, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields)
			assert.Equal(t, len(tt.content), next)
			assert.Equal(t, 2, nextLine)
		})
	}
}

func TestReadRowSeparatorCountProperty(t *testing.T) {
	// Unquoted rows always split into separator-occurrences + 1 fields.
	fields, _, _, err := ReadRow("a,b,,d", 0, 1, ',', false)
	require.NoError(t, err)
	assert.Len(t, fields, 4)
}

func TestReadRowQuoted(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "embedded separator", content: `"a,b",c`, want: []string{"a,b", "c"}},
		{name: "doubled quote decodes to one", content: `"a""b",c`, want: []string{`a"b`, "c"}},
		{name: "quoted empty field", content: `"",b`, want: []string{"", "b"}},
		{name: "unquoted fields pass through", content: `a,b`, want: []string{"a", "b"}},
		{name: "quote mid-field is literal", content: `a"b,c`, want: []string{`a"b`, "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, _, _, err := ReadRow(tt.content, 0, 1, ',', true)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields)
		})
	}
}

func TestReadRowQuotedSpansLines(t *testing.T) {
	content := "\"first\nsecond\",tail\nnext"

	fields, next, nextLine, err := ReadRow(content, 0, 1, ',', true)
	require.NoError(t, err)
	assert.Equal(t, []string{"first\nsecond", "tail"}, fields)
	// One embedded newline plus the row terminator.
	assert.Equal(t, 3, nextLine)
	assert.Equal(t, "next", content[next:])
}

func TestReadRowUnterminatedQuote(t *testing.T) {
	_, _, _, err := ReadRow(`"never closed`, 0, 7, ',', true)
	require.Error(t, err)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 7, rowErr.Line)
}

func TestReadRowUnterminatedQuoteReportsEmbeddedLines(t *testing.T) {
	_, _, _, err := ReadRow("\"a\nb\nc", 0, 1, ',', true)
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 3, rowErr.Line)
}

func TestReadRowAdvancesOffset(t *testing.T) {
	content := "a,b\nc,d\r\ne,f"

	fields, next, line, err := ReadRow(content, 0, 1, ',', false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, fields)

	fields, next, line, err = ReadRow(content, next, line, ',', false)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, fields)
	assert.Equal(t, 3, line)

	fields, next, _, err = ReadRow(content, next, line, ',', false)
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "f"}, fields)
	assert.Equal(t, len(content), next)
}
