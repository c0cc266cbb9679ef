package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

type dialect struct {
	driverName string
	createKV   string
	upsert     string
}

var (
	sqliteDialect = dialect{
		driverName: "sqlite",
		createKV:   `CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)`,
		upsert:     `INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
	}
	mysqlDialect = dialect{
		driverName: "mysql",
		createKV:   `CREATE TABLE IF NOT EXISTS kv (k VARCHAR(191) PRIMARY KEY, v LONGTEXT NOT NULL)`,
		upsert:     `INSERT INTO kv (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)`,
	}
)

// SQL stores keys in a two-column kv table.
type SQL struct {
	db      *sql.DB
	dialect dialect
}

// NewSQLite opens (or creates) a sqlite database at path. An empty path
// resolves to DefaultSQLiteFileName inside DataDir().
func NewSQLite(ctx context.Context, path string) (*SQL, error) {
	if path == "" {
		path = filepath.Join(DataDir(), DefaultSQLiteFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("kvstore: create dir: %w", err)
	}
	return openSQL(ctx, sqliteDialect, path)
}

// NewMySQL connects to a MySQL server, e.g. "user:pass@tcp(127.0.0.1:3306)/dashboard".
func NewMySQL(ctx context.Context, dsn string) (*SQL, error) {
	if dsn == "" {
		return nil, errors.New("kvstore: mysql dsn is required")
	}
	return openSQL(ctx, mysqlDialect, dsn)
}

func openSQL(ctx context.Context, d dialect, dsn string) (*SQL, error) {
	db, err := sql.Open(d.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open %s: %w", d.driverName, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("kvstore: ping %s: %w", d.driverName, err)
	}
	if _, err := db.ExecContext(ctx, d.createKV); err != nil {
		db.Close()
		return nil, fmt.Errorf("kvstore: migrate %s: %w", d.driverName, err)
	}
	return &SQL{db: db, dialect: d}, nil
}

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("kvstore: get %q: %w", key, err)
	}
	return v, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, key, value); err != nil {
		return fmt.Errorf("kvstore: set %q: %w", key, err)
	}
	return nil
}

func (s *SQL) Close() error { return s.db.Close() }
