// Package main provides the semgff binary entry point.
// Semgff converts GFF2/GFF3 genome annotations into RDF triples in
// two phases: ingest annotation files into a feature database, then
// build and serialize the RDF graph.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/semgff/semgff/config"
	"github.com/semgff/semgff/export"
	"github.com/semgff/semgff/gff"
	"github.com/semgff/semgff/graph"
	"github.com/semgff/semgff/integrity"
	"github.com/semgff/semgff/ontology"
	"github.com/semgff/semgff/store"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semgff"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		cfg        *config.Config
	)

	cmd := &cobra.Command{
		Use:   "semgff",
		Short: "GFF to RDF converter",
		Long: `Semgff converts genome annotations in GFF2 or GFF3 format into
RDF triples using Sequence Ontology classes and FALDO locations.

Conversion runs in two phases:
  semgff db   ingests annotation files into a feature database
  semgff rdf  builds the RDF graph from a database and serializes it

Input file arguments accept ** glob patterns.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(logLevel)
			slog.SetDefault(logger)

			loaded, err := loadConfig(configPath, logger)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newDBCmd(&cfg))
	cmd.AddCommand(newRDFCmd(&cfg))
	cmd.AddCommand(newConfigCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(logger).Load()
}

// newDBCmd ingests GFF files into SQLite feature databases.
func newDBCmd(cfg **config.Config) *cobra.Command {
	var (
		dbPath     string
		uniqueIDs  bool
		gffVersion int
	)

	cmd := &cobra.Command{
		Use:   "db [flags] GFF_FILE...",
		Short: "Ingest GFF files into a feature database",
		Long: `Parse one or more GFF files and store their features in a SQLite
database. With --db all files go into a single database and cross-file
parent references are allowed; otherwise each file gets a database of
its own next to it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg
			c.Merge(&config.Config{DB: config.DBConfig{Path: dbPath, UniqueIDs: uniqueIDs}})

			files, err := expandGlobs(args)
			if err != nil {
				return err
			}

			version, err := parseGFFVersion(gffVersion)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if c.DB.Path != "" {
				return ingest(ctx, c, files, c.DB.Path, version)
			}
			for _, file := range files {
				out := strings.TrimSuffix(file, filepath.Ext(file)) + ".db"
				if err := ingest(ctx, c, []string{file}, out, version); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dbPath, "db", "d", "", "Single database file for all inputs")
	cmd.Flags().BoolVarP(&uniqueIDs, "unique-ids", "u", false, "Mint a fresh ID on conflicting re-inserts instead of failing")
	cmd.Flags().IntVar(&gffVersion, "gff-version", 0, "Force GFF version 2 or 3 (default: detect from the ##gff-version pragma)")

	return cmd
}

func parseGFFVersion(v int) (gff.Version, error) {
	switch v {
	case 0:
		return gff.VersionAuto, nil
	case 2:
		return gff.Version2, nil
	case 3:
		return gff.Version3, nil
	}
	return 0, fmt.Errorf("unsupported GFF version %d", v)
}

// ingest parses files as one logical stream into the database at out.
func ingest(ctx context.Context, cfg *config.Config, files []string, out string, version gff.Version) error {
	recs, err := gff.ParseFiles(files,
		gff.WithVersion(version),
		gff.WithTypes(ontology.SupportedTypes()))
	if err != nil {
		return err
	}

	opts := []store.SQLiteOption{}
	if cfg.DB.UniqueIDs {
		opts = append(opts, store.WithSQLiteMergeStrategy(store.MergeCreateUnique))
	}
	st, err := store.OpenSQLite(ctx, out, opts...)
	if err != nil {
		return err
	}
	defer st.Close()

	for _, rec := range recs {
		if _, err := st.Insert(ctx, rec); err != nil {
			return fmt.Errorf("storing feature %q: %w", rec.ID, err)
		}
	}

	slog.Info("feature database populated", "path", out, "features", len(recs), "files", len(files))
	return nil
}

// newRDFCmd builds the graph from feature databases and serializes it.
func newRDFCmd(cfg **config.Config) *cobra.Command {
	var (
		format  string
		baseURI string
		creator string
		source  string
		species string
		taxonID int
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "rdf [flags] DB_FILE...",
		Short: "Build and serialize the RDF graph",
		Long: `Build the RDF graph from one or more feature databases and write
one serialized document per database, next to it. Referential
integrity is checked first: in lenient mode edges with an unresolved
parent are dropped from the graph, in strict mode they fail the run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg
			c.Merge(&config.Config{
				URIs:    config.URIConfig{Base: baseURI, Creator: creator, Source: source},
				Dataset: config.DatasetConfig{Species: species, TaxonID: taxonID},
				Output:  config.OutputConfig{Format: format},
			})
			if strict {
				c.Integrity.Mode = "strict"
			}
			if err := c.Validate(); err != nil {
				return err
			}

			dbs, err := expandGlobs(args)
			if err != nil {
				return err
			}
			for _, db := range dbs {
				if err := triplify(cmd.Context(), c, db); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Serialization format: turtle, xml, nt or n3 (default turtle)")
	cmd.Flags().StringVarP(&baseURI, "base-uri", "b", "", "Base URI of the RDF data space")
	cmd.Flags().StringVar(&creator, "creator", "", "URI identifying the dataset creator")
	cmd.Flags().StringVar(&source, "source", "", "Download URL of the source annotation")
	cmd.Flags().StringVarP(&species, "species", "n", "", "Species name (e.g. \"Solanum lycopersicum\")")
	cmd.Flags().IntVarP(&taxonID, "taxon", "t", 0, "NCBI Taxonomy ID")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail the run on referential integrity violations")

	return cmd
}

// triplify converts one feature database into a serialized RDF file.
func triplify(ctx context.Context, cfg *config.Config, dbPath string) error {
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	mode, err := integrity.ParseMode(cfg.Integrity.Mode)
	if err != nil {
		return err
	}
	mapper, err := ontology.NewMapper(cfg.URIs.Base, cfg.Dataset.Species)
	if err != nil {
		return err
	}

	st, err := store.OpenSQLite(ctx, dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	report, err := integrity.NewChecker(mode, slog.Default()).Check(ctx, st)
	if err != nil {
		return err
	}
	if err := report.Err(); err != nil {
		return fmt.Errorf("%s: %w", dbPath, err)
	}

	builder := graph.NewBuilder(mapper, graph.Provenance{
		CreatorURI: cfg.URIs.Creator,
		SourceURL:  cfg.URIs.Source,
		TaxonID:    cfg.Dataset.TaxonID,
	})
	g, err := builder.Build(ctx, st, report)
	if err != nil {
		return err
	}

	out := export.OutputPath(dbPath, format)
	if err := export.WriteFile(out, g, format); err != nil {
		return err
	}

	slog.Info("RDF graph serialized", "path", out, "format", format, "triples", g.Len())
	return nil
}

// newConfigCmd manages the user-level configuration file.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the user config file with defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.NewLoader(slog.Default()).EnsureUserConfig()
		},
	})
	return cmd
}

// expandGlobs resolves ** patterns in file arguments. Plain arguments
// are checked for existence; a pattern matching nothing is an error.
func expandGlobs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			if _, err := os.Stat(arg); err != nil {
				return nil, fmt.Errorf("input file %q: %w", arg, err)
			}
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad glob pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matched no files", arg)
		}
		files = append(files, matches...)
	}
	return files, nil
}
