package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// ParseDriver accepts the names used in configuration.
func ParseDriver(s string) (Driver, error) {
	switch s {
	case "", "sqlite", "sqlite3":
		return DriverSQLite, nil
	case "postgres", "pgx", "postgresql":
		return DriverPostgres, nil
	}
	return "", fmt.Errorf("unsupported driver: %s", s)
}

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:kwash.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/kwash?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// one writer; also keeps :memory: databases on a single connection
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema: %w", err)
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS catalog_documents (
  section TEXT PRIMARY KEY,      -- meta | access | infrastructure | operations
  body_json TEXT NOT NULL,
  updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS survey_datasets (
  seq INTEGER PRIMARY KEY,       -- catalog order
  indicator TEXT NOT NULL,
  perspective TEXT NOT NULL      -- "Holistic" or a segment tag
);

CREATE TABLE IF NOT EXISTS survey_groups (
  dataset_seq INTEGER NOT NULL REFERENCES survey_datasets(seq) ON DELETE CASCADE,
  seq INTEGER NOT NULL,
  group_name TEXT NOT NULL,
  strongly_disagree REAL NOT NULL,
  disagree REAL NOT NULL,
  neutral REAL NOT NULL,
  agree REAL NOT NULL,
  strongly_agree REAL NOT NULL,
  PRIMARY KEY (dataset_seq, seq)
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS catalog_documents (
  section TEXT PRIMARY KEY,
  body_json TEXT NOT NULL,
  updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS survey_datasets (
  seq INTEGER PRIMARY KEY,
  indicator TEXT NOT NULL,
  perspective TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS survey_groups (
  dataset_seq INTEGER NOT NULL REFERENCES survey_datasets(seq) ON DELETE CASCADE,
  seq INTEGER NOT NULL,
  group_name TEXT NOT NULL,
  strongly_disagree DOUBLE PRECISION NOT NULL,
  disagree DOUBLE PRECISION NOT NULL,
  neutral DOUBLE PRECISION NOT NULL,
  agree DOUBLE PRECISION NOT NULL,
  strongly_agree DOUBLE PRECISION NOT NULL,
  PRIMARY KEY (dataset_seq, seq)
);
`
