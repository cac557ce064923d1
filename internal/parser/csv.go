package parser

import (
	"locextract/internal/placeholder"
)

// CSVParser extracts localization entries from comma-separated tables.
type CSVParser struct {
	mode   placeholder.Mode
	sep    byte
	quoted bool
}

// NewCSVParser creates a CSV parser. sep and quoted come from configuration;
// pass 0 for sep to use a comma.
func NewCSVParser(mode placeholder.Mode, sep byte, quoted bool) *CSVParser {
	if sep == 0 {
		sep = ','
	}
	return &CSVParser{mode: mode, sep: sep, quoted: quoted}
}

func (p *CSVParser) CanParse(ext string) bool {
	return canParseExt(ext, ".csv")
}

func (p *CSVParser) Parse(filePath string) (*Result, error) {
	data, err := readFile(filePath)
	if err != nil {
		return nil, err
	}

	t, tree, err := parseTable(string(data), filePath, p.sep, p.quoted, p.mode)
	if err != nil {
		return nil, err
	}

	return &Result{
		FilePath:    filePath,
		Format:      "csv",
		Translation: t,
		Tree:        tree,
	}, nil
}
