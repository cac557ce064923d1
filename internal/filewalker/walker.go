package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"locextract/internal/parser"
	"locextract/internal/registry"

	"github.com/rs/zerolog/log"
)

// Walker traverses directories and dispatches files to registered parsers.
type Walker struct{}

// NewWalker creates a Walker backed by the process-wide format registry.
func NewWalker() *Walker {
	return &Walker{}
}

// FileEntry represents a discovered file ready for processing.
type FileEntry struct {
	Path    string
	Ext     string
	Factory registry.Factory
}

// Walk discovers all files under root with a registered extension.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []FileEntry

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		factory, ok := registry.Lookup(ext)
		if !ok {
			factory, ok = registry.LookupConfig(ext)
		}
		if !ok {
			return nil
		}

		entries = append(entries, FileEntry{
			Path:    path,
			Ext:     ext,
			Factory: factory,
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered files")
	return entries, nil
}

// ParseFile parses a single file with a fresh parser instance, so concurrent
// parses never share state.
func (w *Walker) ParseFile(entry FileEntry) (*parser.Result, error) {
	return entry.Factory().Parse(entry.Path)
}
