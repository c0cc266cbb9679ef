// Package kvstore is a small durable key-value store with string keys and
// string values. It stands in for browser local storage.
package kvstore

import (
	"context"
	"errors"
	"fmt"
)

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

var (
	ErrNotFound      = errors.New("kvstore: key not found")
	ErrCorrupt       = errors.New("kvstore: store is corrupt")
	ErrUnknownDriver = errors.New("kvstore: unknown driver")
)

// Store reads and writes string values by key. Set overwrites; last writer wins.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Config selects and configures a driver.
type Config struct {
	Driver string
	// Path is the file location for the file and sqlite drivers.
	Path string
	// DSN is the data source name for the mysql driver.
	DSN string
}

// Open returns the Store for cfg.Driver.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile, "":
		return NewFile(cfg.Path)
	case DriverSQLite:
		return NewSQLite(ctx, cfg.Path)
	case DriverMySQL:
		return NewMySQL(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
