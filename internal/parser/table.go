package parser

import (
	"fmt"
	"strings"

	"locextract/internal/delim"
	"locextract/internal/document"
	"locextract/internal/placeholder"
	"locextract/internal/translation"
)

// columnMap resolves row fields to the key, source-text and target columns.
type columnMap struct {
	key    int
	text   int
	target int
}

// sourceColumns lists accepted header names for the source-text column, in
// preference order.
var sourceColumns = []string{"source", "value", "text", "default"}

// detectHeader interprets the first row as a header when it names a "key"
// column and one of the source-text columns (case-insensitive).
func detectHeader(fields []string) (columnMap, bool) {
	idx := make(map[string]int, len(fields))
	for i, h := range fields {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cm := columnMap{key: -1, text: -1, target: -1}
	keyIdx, ok := idx["key"]
	if !ok {
		return cm, false
	}
	cm.key = keyIdx
	for _, name := range sourceColumns {
		if i, ok := idx[name]; ok {
			cm.text = i
			break
		}
	}
	if cm.text < 0 {
		return columnMap{key: -1, text: -1, target: -1}, false
	}
	if i, ok := idx["target"]; ok {
		cm.target = i
	}
	return cm, true
}

// positionalColumns is the fallback for headerless files: key, text, target.
func positionalColumns() columnMap {
	return columnMap{key: 0, text: 1, target: 2}
}

func (cm columnMap) pick(fields []string, col int) string {
	if col < 0 || col >= len(fields) {
		return ""
	}
	return fields[col]
}

func blankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseTable consumes a delimited buffer row by row and populates a
// Translation and Tree. The first non-blank row is consulted as a header;
// without one, columns are positional. Duplicate keys and malformed quoting
// abort the parse.
func parseTable(content, filePath string, sep byte, quoted bool, mode placeholder.Mode) (*translation.Translation, *translation.Tree, error) {
	t := translation.New()
	tree := translation.NewTree()

	offset, line := 0, 1
	var cols columnMap
	first := true

	for offset < len(content) {
		fields, next, nextLine, err := delim.ReadRow(content, offset, line, sep, quoted)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", filePath, err)
		}
		rowLine := line
		offset, line = next, nextLine

		if blankRow(fields) {
			continue
		}
		if first {
			first = false
			if cm, ok := detectHeader(fields); ok {
				cols = cm
				continue
			}
			cols = positionalColumns()
		}

		key := strings.TrimSpace(cols.pick(fields, cols.key))
		if key == "" {
			continue
		}

		entry := document.NewEntry(cols.pick(fields, cols.text), mode)
		entry.Target = cols.pick(fields, cols.target)
		if err := t.Add(key, entry); err != nil {
			return nil, nil, fmt.Errorf("%s: line %d: %w", filePath, rowLine, err)
		}
		insertLeaf(tree, key, entry.Templated)
	}

	return t, tree, nil
}
