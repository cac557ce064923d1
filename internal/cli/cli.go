package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"locextract/internal/config"
	"locextract/internal/filewalker"
	"locextract/internal/graph"
	"locextract/internal/memory"
	"locextract/internal/parser"
	"locextract/internal/placeholder"
	"locextract/internal/registry"
	"locextract/internal/textutil"
	"locextract/internal/translation"
	"locextract/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "locextract",
		Short: "Extract localizable text from structured source files",
		Long:  "Parses delimited tables (CSV/TSV), JSON documents and INI configs into a hierarchical translation model for downstream tooling.",
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(inspectCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <directory>",
		Short: "Parse all supported files under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := cmd.Flags().GetBool("store")
			mirror, _ := cmd.Flags().GetBool("graph")
			return runExtract(args[0], store, mirror)
		},
	}

	cmd.Flags().Bool("store", false, "Persist extracted entries to the translation-memory store")
	cmd.Flags().Bool("graph", false, "Mirror parsed trees into the Neo4j graph")

	return cmd
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Parse a single file and print its translation tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

// registerFormats installs the shipped formats into the process-wide
// registry. Explicit so tests and callers control exactly what is active.
func registerFormats(cfg *config.Config) error {
	registry.Reset()

	mode := placeholder.ParseMode(cfg.EscapeMode)
	sep := cfg.Separator()
	quoted := cfg.QuotedFields

	entries := []struct {
		ext     string
		config  bool
		factory registry.Factory
	}{
		{ext: ".csv", factory: func() parser.Parser { return parser.NewCSVParser(mode, sep, quoted) }},
		{ext: ".tsv", factory: func() parser.Parser { return parser.NewTSVParser(mode) }},
		{ext: ".json", factory: func() parser.Parser { return parser.NewJSONParser(mode) }},
		{ext: ".ini", config: true, factory: func() parser.Parser { return parser.NewINIParser(mode) }},
	}

	for _, e := range entries {
		var err error
		if e.config {
			err = registry.RegisterConfig(e.ext, e.factory)
		} else {
			err = registry.Register(e.ext, e.factory)
		}
		if err != nil {
			return fmt.Errorf("register format %s: %w", e.ext, err)
		}
	}

	log.Info().Strs("extensions", registry.Extensions()).Msg("Registered formats")
	return nil
}

// runExtract handles the `extract` command.
func runExtract(inputDir string, store, mirrorTrees bool) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	if err := registerFormats(cfg); err != nil {
		return err
	}

	var (
		memStore   *memory.Store
		treeMirror *graph.Mirror
	)
	if store || mirrorTrees {
		pgPool, neo4jDriver, err := initDependencies(ctx, cfg, store, mirrorTrees)
		if err != nil {
			return err
		}
		if pgPool != nil {
			defer pgPool.Close()
			memStore = memory.NewStore(pgPool)
			if err := memStore.EnsureSchema(ctx); err != nil {
				return err
			}
		}
		if neo4jDriver != nil {
			defer neo4jDriver.Close(ctx)
			treeMirror = graph.NewMirror(neo4jDriver)
			if err := treeMirror.EnsureSchema(ctx); err != nil {
				return err
			}
		}
	}

	walker := filewalker.NewWalker()
	entries, err := walker.Walk(inputDir)
	if err != nil {
		return fmt.Errorf("walk input directory: %w", err)
	}
	if len(entries) == 0 {
		log.Warn().Str("dir", inputDir).Msg("No supported files found")
		return nil
	}

	pool := worker.NewPool(cfg.WorkerCount, func(ctx context.Context, entry filewalker.FileEntry) (*parser.Result, error) {
		return walker.ParseFile(entry)
	})
	jobs := pool.Execute(ctx, entries)

	parsed, failed, totalEntries := 0, 0, 0
	for _, job := range jobs {
		if job.Err != nil {
			failed++
			log.Error().Err(job.Err).Str("file", job.Input.Path).Msg("Parse failed")
			continue
		}
		parsed++
		totalEntries += job.Result.Translation.Len()

		if memStore != nil {
			if _, err := memStore.UpsertTranslation(ctx, job.Result.FilePath, job.Result.Translation); err != nil {
				log.Warn().Err(err).Str("file", job.Result.FilePath).Msg("Failed to store entries")
			}
		}
		if treeMirror != nil {
			if err := treeMirror.UpsertTree(ctx, job.Result.FilePath, job.Result.Tree, job.Result.Translation); err != nil {
				log.Warn().Err(err).Str("file", job.Result.FilePath).Msg("Failed to mirror tree")
			}
		}
	}

	log.Info().
		Int("parsed", parsed).
		Int("failed", failed).
		Int("entries", totalEntries).
		Msg("Extraction complete")

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(entries))
	}
	return nil
}

// runInspect handles the `inspect` command.
func runInspect(filePath string) error {
	cfg := config.Load()
	if err := registerFormats(cfg); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	factory, ok := registry.Lookup(ext)
	if !ok {
		factory, ok = registry.LookupConfig(ext)
	}
	if !ok {
		return fmt.Errorf("no parser registered for %q", ext)
	}

	result, err := factory().Parse(filePath)
	if err != nil {
		return err
	}

	t := result.Translation
	if t.Locale != "" {
		fmt.Printf("locale: %s\n", t.Locale)
	}
	fmt.Printf("%s: %d entries\n", result.Format, t.Len())
	printNode(result.Tree.Root(), "", 0, t)
	return nil
}

// printNode renders a tree outline with leaf values.
func printNode(node *translation.Node, prefix string, depth int, t *translation.Translation) {
	indent := strings.Repeat("  ", depth)

	for _, leaf := range node.Leaves() {
		key := leaf.Key
		if prefix != "" {
			key = prefix + "." + leaf.Key
		}
		entry, ok := t.Get(key)
		if !ok {
			continue
		}

		switch {
		case entry.Value.IsReference():
			ref, _ := entry.Value.Ref()
			fmt.Printf("%s%s -> @%s\n", indent, leaf.Key, ref)
		case leaf.Templated:
			text, _ := entry.Value.Text()
			fmt.Printf("%s%s = %s (templated)\n", indent, leaf.Key, textutil.Truncate(text, 60))
		default:
			text, _ := entry.Value.Text()
			fmt.Printf("%s%s = %s\n", indent, leaf.Key, textutil.Truncate(text, 60))
		}
	}

	for _, child := range node.Children() {
		fmt.Printf("%s%s:\n", indent, child.Name())
		childPrefix := child.Name()
		if prefix != "" {
			childPrefix = prefix + "." + child.Name()
		}
		printNode(child, childPrefix, depth+1, t)
	}
}

func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// initDependencies connects the stores the active flags require.
func initDependencies(ctx context.Context, cfg *config.Config, needPG, needNeo4j bool) (*pgxpool.Pool, neo4j.DriverWithContext, error) {
	var pgPool *pgxpool.Pool

	if needPG {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect PostgreSQL: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping PostgreSQL: %w", err)
		}
		log.Info().Msg("Connected to PostgreSQL")
		pgPool = pool
	}

	if !needNeo4j {
		return pgPool, nil, nil
	}

	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""))
	if err != nil {
		if pgPool != nil {
			pgPool.Close()
		}
		return nil, nil, fmt.Errorf("connect Neo4j: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		if pgPool != nil {
			pgPool.Close()
		}
		driver.Close(ctx)
		return nil, nil, fmt.Errorf("verify Neo4j connectivity: %w", err)
	}
	log.Info().Msg("Connected to Neo4j")

	return pgPool, driver, nil
}
