// Package graph mirrors parsed translation trees into Neo4j so downstream
// tooling can run structural validation queries (orphaned groups, key
// collisions across files) without re-parsing sources.
package graph

import (
	"context"
	"fmt"

	"locextract/internal/translation"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
)

// Mirror writes Group and Key nodes for a parsed tree.
type Mirror struct {
	driver neo4j.DriverWithContext
}

// NewMirror creates a new tree mirror.
func NewMirror(driver neo4j.DriverWithContext) *Mirror {
	return &Mirror{driver: driver}
}

// EnsureSchema creates uniqueness constraints for mirrored nodes.
func (m *Mirror) EnsureSchema(ctx context.Context) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	constraints := []string{
		"CREATE CONSTRAINT IF NOT EXISTS FOR (g:Group) REQUIRE g.path IS UNIQUE",
		"CREATE CONSTRAINT IF NOT EXISTS FOR (k:Key) REQUIRE k.path IS UNIQUE",
	}
	for _, c := range constraints {
		if _, err := session.Run(ctx, c, nil); err != nil {
			return fmt.Errorf("create constraint: %w", err)
		}
	}

	log.Info().Msg("Graph schema ensured")
	return nil
}

// UpsertTree mirrors every node and leaf of a parsed tree, linking groups
// with CONTAINS edges and keys to their owning group.
func (m *Mirror) UpsertTree(ctx context.Context, file string, tree *translation.Tree, t *translation.Translation) error {
	session := m.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	if err := m.upsertNode(ctx, session, file, "", tree.Root(), t); err != nil {
		return err
	}

	log.Info().Str("file", file).Msg("Mirrored translation tree to graph")
	return nil
}

func (m *Mirror) upsertNode(ctx context.Context, session neo4j.SessionWithContext, file, path string, node *translation.Node, t *translation.Translation) error {
	for _, leaf := range node.Leaves() {
		keyPath := leaf.Key
		if path != "" {
			keyPath = path + "." + leaf.Key
		}

		text := ""
		if entry, ok := t.Get(keyPath); ok {
			text, _ = entry.Value.Text()
		}

		_, err := session.Run(ctx, `
			MERGE (k:Key {path: $path})
			SET k.name = $name,
			    k.text = $text,
			    k.templated = $templated,
			    k.file = $file
		`, map[string]any{
			"path":      keyPath,
			"name":      leaf.Key,
			"text":      text,
			"templated": leaf.Templated,
			"file":      file,
		})
		if err != nil {
			return fmt.Errorf("upsert key node %q: %w", keyPath, err)
		}

		if path != "" {
			_, err = session.Run(ctx, `
				MATCH (g:Group {path: $group})
				MATCH (k:Key {path: $key})
				MERGE (g)-[:CONTAINS]->(k)
			`, map[string]any{"group": path, "key": keyPath})
			if err != nil {
				return fmt.Errorf("link key %q: %w", keyPath, err)
			}
		}
	}

	for _, child := range node.Children() {
		childPath := child.Name()
		if path != "" {
			childPath = path + "." + child.Name()
		}

		_, err := session.Run(ctx, `
			MERGE (g:Group {path: $path})
			SET g.name = $name, g.file = $file
		`, map[string]any{
			"path": childPath,
			"name": child.Name(),
			"file": file,
		})
		if err != nil {
			return fmt.Errorf("upsert group node %q: %w", childPath, err)
		}

		if path != "" {
			_, err = session.Run(ctx, `
				MATCH (parent:Group {path: $parent})
				MATCH (child:Group {path: $child})
				MERGE (parent)-[:CONTAINS]->(child)
			`, map[string]any{"parent": path, "child": childPath})
			if err != nil {
				return fmt.Errorf("link group %q: %w", childPath, err)
			}
		}

		if err := m.upsertNode(ctx, session, file, childPath, child, t); err != nil {
			return err
		}
	}

	return nil
}
