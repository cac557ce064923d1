package parser

import (
	"locextract/internal/placeholder"
)

// TSVParser extracts localization entries from tab-separated tables. Tab
// tables carry no quoting convention, so every character up to a tab or line
// break is literal.
type TSVParser struct {
	mode placeholder.Mode
}

func NewTSVParser(mode placeholder.Mode) *TSVParser {
	return &TSVParser{mode: mode}
}

func (p *TSVParser) CanParse(ext string) bool {
	return canParseExt(ext, ".tsv")
}

func (p *TSVParser) Parse(filePath string) (*Result, error) {
	data, err := readFile(filePath)
	if err != nil {
		return nil, err
	}

	t, tree, err := parseTable(string(data), filePath, '\t', false, p.mode)
	if err != nil {
		return nil, err
	}

	return &Result{
		FilePath:    filePath,
		Format:      "tsv",
		Translation: t,
		Tree:        tree,
	}, nil
}
