package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"locextract/internal/document"
	"locextract/internal/placeholder"
	"locextract/internal/translation"
)

// INIParser extracts localization entries from INI config files. The section
// name becomes the group prefix, so [menu] open=... yields the key menu.open.
type INIParser struct {
	mode placeholder.Mode
}

func NewINIParser(mode placeholder.Mode) *INIParser {
	return &INIParser{mode: mode}
}

func (p *INIParser) CanParse(ext string) bool {
	return canParseExt(ext, ".ini")
}

func (p *INIParser) Parse(filePath string) (*Result, error) {
	data, err := readFile(filePath)
	if err != nil {
		return nil, err
	}

	t := translation.New()
	tree := translation.NewTree()

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	lineNum := 0
	currentSection := ""

	for scanner.Scan() {
		lineNum++
		trimmed := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if trimmed == "" || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// Section header.
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			currentSection = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			continue
		}

		// Key=Value pair.
		name, value, found := strings.Cut(trimmed, "=")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}

		key := document.Qualify(currentSection, name)
		entry := document.NewEntry(value, p.mode)
		if err := t.Add(key, entry); err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", filePath, lineNum, err)
		}
		insertLeaf(tree, key, entry.Templated)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan ini file: %w", err)
	}

	return &Result{
		FilePath:    filePath,
		Format:      "ini",
		Translation: t,
		Tree:        tree,
	}, nil
}
