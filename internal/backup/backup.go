// ABOUTME: File-level backup and restore of the store with a safety copy.
// ABOUTME: Restore never hot-swaps a live connection; callers must reopen.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/liftlog/internal/storage"
)

// Error categories, distinguishable with errors.Is so callers can decide
// whether a retry is safe.
var (
	ErrSourceMissing    = errors.New("backup source missing")
	ErrValidationFailed = errors.New("backup validation failed")
	ErrCopyFailed       = errors.New("backup copy failed")
)

// sqliteMagic is the 16-byte header every SQLite database file starts with.
const sqliteMagic = "SQLite format 3\x00"

// minStoreSize is the plausibility threshold for a restore candidate; a real
// store is at least one database page.
const minStoreSize = 512

const timestampFormat = "20060102-150405"

// Info describes a completed backup.
type Info struct {
	Path string
	Size int64
}

// Manager copies the store file for backup and restore. It must not run
// concurrently with ordinary read/write traffic; the caller serializes.
type Manager struct {
	dbPath    string
	backupDir string
}

// NewManager creates a manager for the store at dbPath, writing backups
// under backupDir.
func NewManager(dbPath, backupDir string) *Manager {
	return &Manager{dbPath: dbPath, backupDir: backupDir}
}

// Create validates the store's schema, checkpoints the WAL, and copies the
// store file to a timestamped backup. A validation failure aborts before any
// copy. The checkpoint matters: without it commits still sitting in the WAL
// sidecar would be missing from the copied file.
func (m *Manager) Create(store *storage.DB) (*Info, error) {
	report, err := store.Validate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	if !report.OK() {
		return nil, fmt.Errorf("%w: missing tables %v, version %d (want %d)",
			ErrValidationFailed, report.MissingTables, report.Version, report.TargetVersion)
	}

	if err := store.Checkpoint(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	if err := os.MkdirAll(m.backupDir, 0750); err != nil {
		return nil, fmt.Errorf("%w: create backup directory: %v", ErrCopyFailed, err)
	}

	dest := filepath.Join(m.backupDir,
		fmt.Sprintf("liftlog-backup-%s.db", time.Now().Format(timestampFormat)))
	size, err := copyFile(m.dbPath, dest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	log.Info("backup created", "path", dest, "bytes", size)
	return &Info{Path: dest, Size: size}, nil
}

// Restore replaces the live store file with the candidate. The current store
// is first copied to a timestamped safety location; that copy failing is
// non-fatal (a missing prior store is an expected first-run condition). The
// final replace is atomic (temp file + rename) and a failure there is fatal,
// leaving the safety copy for manual recovery. The store must be reopened
// after a successful restore.
func (m *Manager) Restore(source string) (safetyCopy string, err error) {
	if err := m.validateCandidate(source); err != nil {
		return "", err
	}

	if _, statErr := os.Stat(m.dbPath); statErr == nil {
		// Fold any leftover WAL into the main file so the safety copy is
		// complete. Failing that is as non-fatal as the copy itself.
		if cpErr := storage.CheckpointFile(m.dbPath); cpErr != nil {
			log.Warn("pre-restore checkpoint failed", "err", cpErr)
		}
		dest := filepath.Join(m.backupDir,
			fmt.Sprintf("liftlog-pre-restore-%s.db", time.Now().Format(timestampFormat)))
		if mkErr := os.MkdirAll(m.backupDir, 0750); mkErr != nil {
			log.Warn("safety copy skipped", "err", mkErr)
		} else if _, copyErr := copyFile(m.dbPath, dest); copyErr != nil {
			log.Warn("safety copy failed, continuing restore", "err", copyErr)
		} else {
			safetyCopy = dest
		}
	}

	// Copy into the destination directory first, then rename over the live
	// file so the store is never left half-written.
	tmp := m.dbPath + ".restore-tmp"
	if _, err := copyFile(source, tmp); err != nil {
		_ = os.Remove(tmp)
		return safetyCopy, fmt.Errorf("%w: stage restore: %v", ErrCopyFailed, err)
	}
	// Drop stale WAL/SHM sidecars; they belong to the replaced store.
	_ = os.Remove(m.dbPath + "-wal")
	_ = os.Remove(m.dbPath + "-shm")
	if err := os.Rename(tmp, m.dbPath); err != nil {
		_ = os.Remove(tmp)
		return safetyCopy, fmt.Errorf("%w: replace store: %v", ErrCopyFailed, err)
	}

	log.Info("store restored", "source", source, "safety_copy", safetyCopy)
	return safetyCopy, nil
}

// validateCandidate checks the restore source is plausibly a store file.
func (m *Manager) validateCandidate(source string) error {
	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceMissing, source)
		}
		return fmt.Errorf("%w: %v", ErrSourceMissing, err)
	}
	if info.Size() < minStoreSize {
		return fmt.Errorf("%w: %s is only %d bytes", ErrValidationFailed, source, info.Size())
	}

	f, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSourceMissing, err)
	}
	defer f.Close()

	header := make([]byte, len(sqliteMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return fmt.Errorf("%w: read header: %v", ErrValidationFailed, err)
	}
	if !strings.HasPrefix(string(header), sqliteMagic) {
		return fmt.Errorf("%w: %s is not a SQLite database", ErrValidationFailed, source)
	}
	return nil
}

// copyFile copies src to dest, returning the bytes written.
func copyFile(src, dest string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return n, err
	}
	return n, out.Close()
}
