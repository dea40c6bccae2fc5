package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mind-engage/kwash-dashboard/internal/catalog"
)

func newSeedCmd(a *app) *cobra.Command {
	var from, dsn string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the catalog into the SQL store",
		Long: `Parses the catalog (the embedded dataset, or --from a YAML file) and
replaces the contents of the configured database with it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dsn != "" {
				a.cfg.DBDSN = dsn
			}
			var (
				c   *catalog.Catalog
				err error
			)
			if from != "" {
				c, err = catalog.LoadFile(from)
			} else {
				c, err = catalog.Default()
			}
			if err != nil {
				return err
			}

			conn, err := a.openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := catalog.NewSQLStore(conn).Seed(cmd.Context(), c); err != nil {
				return err
			}
			a.log.Info("catalog seeded",
				zap.String("driver", a.cfg.DBDriver),
				zap.Int("datasets", len(c.Psychosocial)))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "catalog YAML file (default: embedded dataset)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "database DSN (default from DB_DSN)")
	return cmd
}
