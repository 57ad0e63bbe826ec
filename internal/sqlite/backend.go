// Package sqlite implements the tally Store on SQLite. SQLite is the query
// engine; tallies.jsonl in the data directory is the source of truth and is
// reloaded on every Attach.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/sharedkit/pkg/types"
)

// dbFileName is the SQLite file created inside the data directory.
const dbFileName = "sharedkit.db"

var _ types.Store = (*Backend)(nil)

// Backend implements types.Store using SQLite and a JSONL file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	dataDir  string
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach validates config, creates the data directory, rebuilds the SQLite
// database and loads tallies.jsonl into it.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The JSONL file is authoritative; start every session from a fresh db.
	dbPath := filepath.Join(dataDir, dbFileName)
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale database: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	jsonlPath := filepath.Join(dataDir, talliesJSONL)
	if err := ensureJSONL(jsonlPath); err != nil {
		db.Close()
		return err
	}
	if err := loadTallies(db, jsonlPath); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.dataDir = dataDir
	b.attached = true
	return nil
}

// Detach closes the database. It is idempotent; after Detach every other
// operation returns ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false

	db := b.db
	b.db = nil
	if err := db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// loadTallies inserts every valid record of the JSONL file at path.
// Records that do not decode to a valid tally are skipped; a later record
// with the same ID replaces an earlier one.
func loadTallies(db *sql.DB, path string) error {
	records, err := readJSONL(path)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		var t types.Tally
		if err := json.Unmarshal(rec, &t); err != nil {
			continue
		}
		if validateTally(&t) != nil || t.CreatedAt.IsZero() {
			continue
		}
		if _, err := uuid.Parse(t.TallyID); err != nil {
			continue
		}
		if err := insertTally(tx, &t); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// persistJSONL rewrites tallies.jsonl from what q sees.
// The caller must hold b.mu.
func (b *Backend) persistJSONL(q querier) error {
	tallies, err := queryTallies(q, "", nil)
	if err != nil {
		return err
	}

	records := make([]json.RawMessage, 0, len(tallies))
	for _, t := range tallies {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("encoding tally %s: %w", t.TallyID, err)
		}
		records = append(records, data)
	}
	return writeJSONL(filepath.Join(b.dataDir, talliesJSONL), records)
}
