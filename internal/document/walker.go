// Package document converts nested object documents into flat,
// group-qualified translation entries.
package document

import (
	"sort"
	"strings"

	"locextract/internal/placeholder"
	"locextract/internal/translation"
)

// RefMarker prefixes a string value that references another key's text
// instead of supplying literal text. A literal leading "@" is written "@@".
const RefMarker = "@"

// Walk recursively populates t (and tree, when non-nil) from a decoded
// object. String-valued fields become entries keyed prefix.field; object
// fields become subgroup traversals. Field names are trimmed, and a field
// whose trimmed name is empty is skipped: it cannot form a dotted path
// segment. Fields whose name starts with "@" are metadata: object-valued
// ones carry placeholder records for the sibling entry of the same name,
// string-valued ones are ignored here (the calling format owns document
// metadata).
//
// All string fields at a level are processed before any object field, and
// fields are visited in sorted order, so duplicate detection and output are
// deterministic. A duplicate qualified key aborts the walk.
func Walk(obj map[string]any, prefix string, mode placeholder.Mode, t *translation.Translation, tree *translation.Tree) error {
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		text, ok := obj[name].(string)
		if !ok {
			continue
		}
		field := strings.TrimSpace(name)
		if field == "" || strings.HasPrefix(field, "@") {
			continue
		}
		key := qualify(prefix, field)
		entry := NewEntry(text, mode)
		if err := t.Add(key, entry); err != nil {
			return err
		}
		if tree != nil {
			insertLeaf(tree, prefix, field, entry.Templated)
		}
	}

	for _, name := range names {
		sub, ok := obj[name].(map[string]any)
		if !ok {
			continue
		}
		field := strings.TrimSpace(name)
		if field == "" {
			continue
		}
		if rest, isMeta := strings.CutPrefix(field, "@"); isMeta {
			attachMeta(t, qualify(prefix, rest), sub)
			continue
		}
		if err := Walk(sub, qualify(prefix, field), mode, t, tree); err != nil {
			return err
		}
	}

	return nil
}

// NewEntry builds an entry from a raw string value, honoring the reference
// marker and classifying literal text under mode. Reference values are never
// classified.
func NewEntry(text string, mode placeholder.Mode) *translation.Entry {
	if rest, ok := strings.CutPrefix(text, RefMarker); ok {
		if literal, escaped := strings.CutPrefix(rest, RefMarker); escaped {
			// "@@" escapes a literal leading "@".
			return &translation.Entry{
				Value:     translation.Literal(RefMarker + literal),
				Raw:       text,
				Templated: placeholder.IsTemplated(literal, mode),
			}
		}
		return &translation.Entry{Value: translation.Reference(rest)}
	}
	return &translation.Entry{
		Value:     translation.Literal(text),
		Templated: placeholder.IsTemplated(text, mode),
	}
}

func qualify(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}

// insertLeaf records a leaf for field under the node named by prefix; for
// root-level entries the leaf goes on the tree's root node. Entries whose
// group prefix is malformed (a group name containing empty dotted segments)
// stay out of the tree view, so every tree-reachable leaf keeps a matching
// entry at its own path.
func insertLeaf(tree *translation.Tree, prefix, field string, templated bool) {
	node := tree.Root()
	if prefix != "" {
		node = tree.Make(prefix)
		if node == nil {
			return
		}
	}
	node.SetLeaf(field, templated)
}

// attachMeta parses the placeholders sub-object of an "@name" metadata
// record onto the entry named by key. Metadata for an unknown entry is
// ignored, as is a record with no placeholders object.
func attachMeta(t *translation.Translation, key string, record map[string]any) {
	entry, ok := t.Get(key)
	if !ok {
		return
	}
	decls, ok := record["placeholders"].(map[string]any)
	if !ok {
		return
	}
	names := make([]string, 0, len(decls))
	for name := range decls {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rec, ok := decls[name].(map[string]any)
		if !ok {
			continue
		}
		p, err := placeholder.ParseMeta(name, rec)
		if err != nil {
			continue
		}
		entry.Placeholders = append(entry.Placeholders, p)
	}
}

// Qualify joins a group prefix and a field name with a dot; exported for the
// table formats that build qualified keys the same way.
func Qualify(prefix, field string) string { return qualify(prefix, field) }
