// Package memory persists extracted entries as a translation memory:
// source text keyed by content hash, with any known target translation.
package memory

import (
	"context"
	"fmt"
	"sync"

	"locextract/internal/textutil"
	"locextract/internal/translation"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Store provides in-memory + PostgreSQL-backed translation memory.
type Store struct {
	pool *pgxpool.Pool

	mu     sync.RWMutex
	memory map[string]string // hash → target text
}

// NewStore creates a store backed by PostgreSQL.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:   pool,
		memory: make(map[string]string),
	}
}

// EnsureSchema creates the translation-memory table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS translation_memory (
			hash        TEXT PRIMARY KEY,
			key         TEXT NOT NULL,
			source_text TEXT NOT NULL,
			target_text TEXT NOT NULL DEFAULT '',
			file        TEXT NOT NULL,
			templated   BOOLEAN NOT NULL DEFAULT FALSE
		)
	`)
	if err != nil {
		return fmt.Errorf("create translation_memory table: %w", err)
	}

	log.Info().Msg("Translation memory schema ensured")
	return nil
}

// UpsertTranslation stores every literal entry of a parsed Translation.
// Reference entries carry no text of their own and are skipped. Returns the
// number of rows written.
func (s *Store) UpsertTranslation(ctx context.Context, file string, t *translation.Translation) (int, error) {
	stored := 0
	for _, key := range t.Keys() {
		entry, ok := t.Get(key)
		if !ok {
			continue
		}
		text, ok := entry.Value.Text()
		if !ok || text == "" {
			continue
		}

		hash := textutil.Hash(text)
		_, err := s.pool.Exec(ctx, `
			INSERT INTO translation_memory (hash, key, source_text, target_text, file, templated)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (hash) DO UPDATE SET
				target_text = CASE WHEN EXCLUDED.target_text <> '' THEN EXCLUDED.target_text
				                   ELSE translation_memory.target_text END,
				templated = EXCLUDED.templated
		`, hash, key, text, entry.Target, file, entry.Templated)
		if err != nil {
			return stored, fmt.Errorf("upsert memory entry %q: %w", key, err)
		}
		stored++

		if entry.Target != "" {
			s.mu.Lock()
			s.memory[hash] = entry.Target
			s.mu.Unlock()
		}
	}

	log.Info().Int("stored", stored).Str("file", file).Msg("Stored entries in translation memory")
	return stored, nil
}

// LookupTarget returns the known target translation for a source text.
func (s *Store) LookupTarget(ctx context.Context, sourceText string) (string, bool) {
	hash := textutil.Hash(sourceText)

	s.mu.RLock()
	if v, ok := s.memory[hash]; ok {
		s.mu.RUnlock()
		return v, true
	}
	s.mu.RUnlock()

	var target string
	err := s.pool.QueryRow(ctx,
		`SELECT target_text FROM translation_memory WHERE hash = $1 AND target_text <> ''`,
		hash,
	).Scan(&target)
	if err != nil {
		return "", false
	}

	s.mu.Lock()
	s.memory[hash] = target
	s.mu.Unlock()

	return target, true
}

// Preload loads all known target translations into memory.
func (s *Store) Preload(ctx context.Context) error {
	rows, err := s.pool.Query(ctx,
		`SELECT hash, target_text FROM translation_memory WHERE target_text <> ''`)
	if err != nil {
		return fmt.Errorf("preload translation memory: %w", err)
	}
	defer rows.Close()

	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for rows.Next() {
		var hash, target string
		if err := rows.Scan(&hash, &target); err != nil {
			return fmt.Errorf("scan memory row: %w", err)
		}
		s.memory[hash] = target
		count++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate memory rows: %w", err)
	}

	log.Info().Int("count", count).Msg("Preloaded translation memory")
	return nil
}
