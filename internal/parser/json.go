package parser

import (
	"encoding/json"
	"fmt"

	"locextract/internal/document"
	"locextract/internal/placeholder"
	"locextract/internal/translation"
)

// JSONParser extracts localization entries from nested JSON documents.
// Object fields become groups, string fields become entries keyed by their
// dotted path. Top-level "@@" fields carry document metadata and "@name"
// object fields carry placeholder metadata for the entry of the same name.
type JSONParser struct {
	mode placeholder.Mode
}

func NewJSONParser(mode placeholder.Mode) *JSONParser {
	return &JSONParser{mode: mode}
}

func (p *JSONParser) CanParse(ext string) bool {
	return canParseExt(ext, ".json")
}

func (p *JSONParser) Parse(filePath string) (*Result, error) {
	data, err := readFile(filePath)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: invalid json: %w", filePath, err)
	}

	t := translation.New()
	tree := translation.NewTree()
	readMetadata(doc, t)

	if err := document.Walk(doc, "", p.mode, t, tree); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	return &Result{
		FilePath:    filePath,
		Format:      "json",
		Translation: t,
		Tree:        tree,
	}, nil
}

// readMetadata consumes the reserved top-level "@@" fields into the
// Translation's metadata. The walker never sees them.
func readMetadata(doc map[string]any, t *translation.Translation) {
	targets := map[string]*string{
		"@@locale":        &t.Locale,
		"@@context":       &t.Context,
		"@@author":        &t.Author,
		"@@last_modified": &t.LastModified,
	}
	for field, target := range targets {
		if s, ok := doc[field].(string); ok {
			*target = s
		}
		delete(doc, field)
	}
}
