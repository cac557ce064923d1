package parser

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"locextract/internal/translation"
)

// Result holds the output of parsing a single localization source file.
type Result struct {
	// FilePath is the path of the parsed file.
	FilePath string
	// Format is the detected format (csv, tsv, json, ini).
	Format string
	// Translation maps dotted-path keys to the extracted entries.
	Translation *translation.Translation
	// Tree indexes the same entries by dotted path.
	Tree *translation.Tree
}

// Parser is the interface for all file format parsers.
type Parser interface {
	// CanParse returns true if this parser handles the given file extension.
	CanParse(ext string) bool
	// Parse extracts localizable entries from a file.
	Parse(filePath string) (*Result, error)
}

func canParseExt(ext, want string) bool {
	return strings.EqualFold(ext, want)
}

// readFile loads a source file and strips a UTF-8 BOM if present.
func readFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}), nil
}

// insertLeaf mirrors a qualified key into the result tree: the portion
// before the last dot names the node, the remainder is the leaf. Keys whose
// node path is malformed (empty segments) stay out of the tree view.
func insertLeaf(tree *translation.Tree, key string, templated bool) {
	node := tree.Root()
	if i := strings.LastIndex(key, "."); i >= 0 {
		node = tree.Make(key[:i])
		if node == nil {
			return
		}
		key = key[i+1:]
	}
	if key != "" {
		node.SetLeaf(key, templated)
	}
}
