package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mind-engage/kwash-dashboard/internal/catalog"
	"github.com/mind-engage/kwash-dashboard/internal/config"
	"github.com/mind-engage/kwash-dashboard/internal/db"
	"github.com/mind-engage/kwash-dashboard/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// app is the state shared by subcommands, filled in PersistentPreRunE.
type app struct {
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:   "kwashd",
		Short: "K-WaSH survey dashboard server",
		Long: `kwashd serves the Kumbh Mela 2025 water, sanitation and hygiene survey
dashboard: indicator pages, agreement gauges and chart images.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.FromEnv()
			if cmd.Flags().Changed("log-level") {
				a.cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				a.cfg.LogFormat = logFormat
			}
			log, err := logging.New(a.cfg.LogLevel, a.cfg.LogFormat)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json|console)")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newSeedCmd(a))
	root.AddCommand(newGaugeCmd(a))
	root.AddCommand(newVersionCmd())
	root.Version = version
	return root
}

// openDB opens the configured database.
func (a *app) openDB(ctx context.Context) (*sql.DB, error) {
	drv, err := db.ParseDriver(a.cfg.DBDriver)
	if err != nil {
		return nil, err
	}
	return db.Open(ctx, drv, a.cfg.DBDSN)
}

// loadCatalog resolves the configured source. The returned db is non-nil
// only for the sql source and must be closed by the caller.
func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, *sql.DB, error) {
	kind := catalog.SourceKind(a.cfg.CatalogSource)
	var conn *sql.DB
	if kind == catalog.SourceSQL {
		var err error
		if conn, err = a.openDB(ctx); err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
	}
	src, err := catalog.NewSource(kind, a.cfg.CatalogPath, conn)
	if err != nil {
		closeDB(conn)
		return nil, nil, err
	}
	c, err := src.Load(ctx)
	if err != nil {
		closeDB(conn)
		return nil, nil, fmt.Errorf("load catalog (%s): %w", kind, err)
	}
	a.log.Info("catalog loaded",
		zap.String("source", string(kind)),
		zap.Int("datasets", len(c.Psychosocial)),
		zap.Int("access_indicators", len(c.Access)))
	return c, conn, nil
}

func closeDB(conn *sql.DB) {
	if conn != nil {
		_ = conn.Close()
	}
}

// catalogFlags binds the flags that override where the catalog comes from.
func catalogFlags(cmd *cobra.Command, a *app) func() {
	var source, path string
	cmd.Flags().StringVar(&source, "catalog-source", "", "catalog source (embedded|file|sql)")
	cmd.Flags().StringVar(&path, "catalog-path", "", "catalog YAML file for the file source")
	return func() {
		if cmd.Flags().Changed("catalog-source") {
			a.cfg.CatalogSource = source
		}
		if cmd.Flags().Changed("catalog-path") {
			a.cfg.CatalogPath = path
		}
	}
}
