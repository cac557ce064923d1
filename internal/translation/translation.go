package translation

import (
	"fmt"

	"locextract/internal/placeholder"
)

// Value is a tagged variant: either literal text or a reference to another
// key's text. The zero value is an empty literal.
type Value struct {
	isRef bool
	data  string
}

// Literal returns a Value carrying literal text.
func Literal(text string) Value { return Value{data: text} }

// Reference returns a Value pointing at another key.
func Reference(key string) Value { return Value{isRef: true, data: key} }

// IsReference reports whether the value points at another key.
func (v Value) IsReference() bool { return v.isRef }

// Text returns the literal text; ok is false for references.
func (v Value) Text() (text string, ok bool) {
	if v.isRef {
		return "", false
	}
	return v.data, true
}

// Ref returns the referenced key; ok is false for literals.
func (v Value) Ref() (key string, ok bool) {
	if !v.isRef {
		return "", false
	}
	return v.data, true
}

// Entry is one localizable key's parsed value plus metadata. Entries are
// mutated only while their source is being parsed.
type Entry struct {
	Value Value
	// Raw is the escaped source form of the text, when it differs from the
	// decoded value.
	Raw       string
	Templated bool
	// Target is the translated text, when known (e.g. loaded from a
	// translation-memory store).
	Target string
	// Placeholders holds explicit parameter metadata supplied by the source
	// document. Only structured-document formats populate it.
	Placeholders []placeholder.Placeholder
}

// DuplicateKeyError reports a qualified key inserted twice into one
// Translation.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q", e.Key)
}

// Translation maps dotted-path keys to entries for one parsed source.
type Translation struct {
	Locale       string
	Context      string
	Author       string
	LastModified string

	entries map[string]*Entry
	keys    []string
}

// New creates an empty Translation.
func New() *Translation {
	return &Translation{entries: make(map[string]*Entry)}
}

// Add inserts an entry under key. Inserting a key that already exists is an
// error and leaves the existing entry untouched.
func (t *Translation) Add(key string, e *Entry) error {
	if _, exists := t.entries[key]; exists {
		return &DuplicateKeyError{Key: key}
	}
	t.entries[key] = e
	t.keys = append(t.keys, key)
	return nil
}

// Get returns the entry stored under key.
func (t *Translation) Get(key string) (*Entry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

// Keys returns all keys in insertion order.
func (t *Translation) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of entries.
func (t *Translation) Len() int { return len(t.entries) }
