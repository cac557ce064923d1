package parser

import (
	"testing"

	"locextract/internal/placeholder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTSVCanParse(t *testing.T) {
	p := NewTSVParser(placeholder.ModeNone)
	assert.True(t, p.CanParse(".tsv"))
	assert.True(t, p.CanParse(".TSV"))
	assert.False(t, p.CanParse(".csv"))
}

func TestTSVParseWithHeader(t *testing.T) {
	path := writeFile(t, "app.tsv", "key\tsource\ttarget\ndialog.title\tSettings\tParamètres\n")

	result, err := NewTSVParser(placeholder.ModeBracesDoubled).Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "tsv", result.Format)

	e, ok := result.Translation.Get("dialog.title")
	require.True(t, ok)
	text, _ := e.Value.Text()
	assert.Equal(t, "Settings", text)
	assert.Equal(t, "Paramètres", e.Target)
}

func TestTSVParseNoQuoting(t *testing.T) {
	// Quotes are literal content in tab tables.
	path := writeFile(t, "app.tsv", "key\tsource\nquote\t\"literal\"\n")

	result, err := NewTSVParser(placeholder.ModeNone).Parse(path)
	require.NoError(t, err)

	e, _ := result.Translation.Get("quote")
	text, _ := e.Value.Text()
	assert.Equal(t, `"literal"`, text)
}

func TestTSVParsePositional(t *testing.T) {
	path := writeFile(t, "app.tsv", "a.one\tfirst\na.two\tsecond {0}\n")

	result, err := NewTSVParser(placeholder.ModeBracesDoubled).Parse(path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Translation.Len())

	e, _ := result.Translation.Get("a.two")
	assert.True(t, e.Templated)

	node := result.Tree.Find("a")
	require.NotNil(t, node)
	assert.Len(t, node.Leaves(), 2)
}
