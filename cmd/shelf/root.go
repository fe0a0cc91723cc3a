package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"shelf/internal/config"
	"shelf/internal/library"
	"shelf/internal/platform/logging"
	"shelf/internal/report"
	"shelf/internal/source"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
	quiet      bool
	jsonOut    bool
	sourceName string
	dsn        string
	buckets    int
)

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Run the SHHH library catalog",
	Long: `shelf loads a library catalog and its registered clients, then runs
checkout, return, history and display operations against them.

Data comes from the text data files or from Postgres (see cmd/migrate and
cmd/seed).`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Log warnings and errors only")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&sourceName, "source", "", "Data source: file or postgres")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Postgres DSN for --source postgres")
	rootCmd.PersistentFlags().IntVar(&buckets, "buckets", 0, "Client hash table bucket count")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config and lets explicit flags win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if flagSet(cmd, "source") {
		cfg.Source = sourceName
	}
	if flagSet(cmd, "dsn") {
		cfg.DSN = dsn
	}
	if flagSet(cmd, "buckets") {
		cfg.HashBuckets = buckets
	}
	switch {
	case quiet:
		cfg.LogLevel = "warn"
	case verbose:
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

func flagSet(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// openLibrary loads a library whose text output goes to out.
func openLibrary(cmd *cobra.Command, out io.Writer) (*library.Library, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cfg, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return nil, cfg, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lib := library.New(report.NewText(out), logger, cfg.HashBuckets)
	if err := initialize(ctx, lib, cfg, logger); err != nil {
		return nil, cfg, err
	}
	return lib, cfg, nil
}

func initialize(ctx context.Context, lib *library.Library, cfg config.Config, logger logrus.FieldLogger) error {
	if cfg.Source == config.SourcePostgres {
		pool, err := pgxpool.New(ctx, cfg.DSN)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}
		logger.WithField("source", cfg.Source).Debug("loading library")
		return lib.Initialize(ctx, source.NewPostgres(pool))
	}

	logger.WithFields(logrus.Fields{
		"source":       cfg.Source,
		"publications": cfg.PublicationsFile,
		"clients":      cfg.ClientsFile,
	}).Debug("loading library")
	return lib.Initialize(ctx, source.Files{
		PublicationsPath: cfg.PublicationsFile,
		ClientsPath:      cfg.ClientsFile,
	})
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
