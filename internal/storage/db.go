// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrStoreBusy is returned when a mutating call arrives while another
// mutation is still in flight. The store is single-writer: overlapping
// writes are rejected rather than queued.
var ErrStoreBusy = errors.New("store busy: concurrent write rejected")

// DB wraps the SQLite database connection.
type DB struct {
	db      *sql.DB
	dbPath  string
	writeMu sync.Mutex
}

// Open opens or creates a SQLite database at the given path, initializes
// the schema and applies pending migrations. A migration failure is fatal:
// the store is closed and must not be used.
func Open(dbPath string) (*DB, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	// Pragmas ride in the DSN so every pooled connection gets them:
	// foreign_keys and busy_timeout are per-connection settings, and the
	// schema-level cascades depend on foreign_keys being on everywhere.
	db, err := sql.Open("sqlite", "file:"+dbPath+connPragmas)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Set file permissions
	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	d := &DB{db: db, dbPath: dbPath}

	// Initialize schema
	if err := d.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	// Apply pending migrations
	if err := d.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return d, nil
}

// OpenDefault opens the database at the default XDG data path.
func OpenDefault() (*DB, error) {
	return Open(DefaultDBPath())
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "liftlog")
}

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "liftlog.db")
}

// Path returns the on-disk location of the store file.
func (d *DB) Path() string {
	return d.dbPath
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// beginWrite takes the advisory write lock. It fails fast with ErrStoreBusy
// instead of blocking so an overlapping mutation surfaces as an error.
func (d *DB) beginWrite() (func(), error) {
	if !d.writeMu.TryLock() {
		return nil, ErrStoreBusy
	}
	return d.writeMu.Unlock, nil
}

// connPragmas is appended to every DSN.
const connPragmas = "?_pragma=journal_mode(WAL)" +
	"&_pragma=foreign_keys(1)" +
	"&_pragma=busy_timeout(5000)" +
	"&_pragma=synchronous(NORMAL)"

// Checkpoint flushes the write-ahead log into the main database file so a
// file-level copy of the store sees every committed row.
func (d *DB) Checkpoint() error {
	if _, err := d.db.Exec(`PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		return fmt.Errorf("wal checkpoint: %w", err)
	}
	return nil
}

// CheckpointFile flushes the WAL of the store at path when no live handle is
// available, opening a connection just long enough to run the checkpoint.
func CheckpointFile(path string) error {
	db, err := sql.Open("sqlite", "file:"+path+connPragmas)
	if err != nil {
		return fmt.Errorf("open for checkpoint: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		return fmt.Errorf("wal checkpoint: %w", err)
	}
	return nil
}
