// Package registry maps file extensions to parser factories. Formats are
// installed by an explicit call at startup (the CLI does this), never by
// package side effects; Reset tears the tables down for tests.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"locextract/internal/parser"
)

// Factory creates a fresh parser instance for one parse operation.
type Factory func() parser.Parser

var (
	mu      sync.RWMutex
	formats = make(map[string]Factory)
	configs = make(map[string]Factory)
)

// normalize lowercases an extension and ensures a leading dot.
func normalize(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}

func register(table map[string]Factory, ext string, f Factory) error {
	if f == nil {
		return errors.New("cannot register nil factory")
	}
	ext = normalize(ext)
	if ext == "" {
		return errors.New("cannot register empty extension")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := table[ext]; exists {
		return fmt.Errorf("extension %q already registered", ext)
	}
	table[ext] = f
	return nil
}

// Register installs a localization-format parser factory for an extension.
func Register(ext string, f Factory) error {
	return register(formats, ext, f)
}

// RegisterConfig installs a config-format parser factory for an extension.
func RegisterConfig(ext string, f Factory) error {
	return register(configs, ext, f)
}

// Lookup resolves a localization-format factory, case-insensitively.
func Lookup(ext string) (Factory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := formats[normalize(ext)]
	return f, ok
}

// LookupConfig resolves a config-format factory, case-insensitively.
func LookupConfig(ext string) (Factory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := configs[normalize(ext)]
	return f, ok
}

// Extensions returns every registered extension, sorted.
func Extensions() []string {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]string, 0, len(formats)+len(configs))
	for ext := range formats {
		out = append(out, ext)
	}
	for ext := range configs {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Reset clears both tables.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	formats = make(map[string]Factory)
	configs = make(map[string]Factory)
}
