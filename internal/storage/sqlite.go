package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/goaltime/goaltime/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS day_records (
	date TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLiteBackend persists the mapping as one row per date, keyed by the ISO
// date string, with settings and version in a meta table. Save still replaces
// the whole mapping; the row decomposition is internal to this backend.
type SQLiteBackend struct {
	path    string
	db      *sql.DB
	lastErr error
}

func NewSQLiteBackend(path string) *SQLiteBackend {
	return &SQLiteBackend{path: path}
}

func (b *SQLiteBackend) Name() string {
	return "sqlite"
}

func (b *SQLiteBackend) open() error {
	if b.db != nil {
		return nil
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	b.db = db
	return nil
}

func (b *SQLiteBackend) Load() ([]byte, error) {
	if err := b.open(); err != nil {
		b.lastErr = err
		return nil, err
	}

	store := NewStore()

	var version string
	err := b.db.QueryRow(`SELECT value FROM meta WHERE key = 'version'`).Scan(&version)
	if err == sql.ErrNoRows {
		// Never initialized.
		b.lastErr = nil
		return nil, nil
	}
	if err != nil {
		b.lastErr = err
		return nil, fmt.Errorf("failed to read meta: %w", err)
	}
	if v, err := strconv.Atoi(version); err == nil {
		store.Version = v
	}

	var settingsJSON string
	if err := b.db.QueryRow(`SELECT value FROM meta WHERE key = 'settings'`).Scan(&settingsJSON); err == nil {
		var settings models.Settings
		if err := json.Unmarshal([]byte(settingsJSON), &settings); err == nil {
			store.Settings = settings
		}
	}

	rows, err := b.db.Query(`SELECT date, data FROM day_records`)
	if err != nil {
		b.lastErr = err
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var date, data string
		if err := rows.Scan(&date, &data); err != nil {
			b.lastErr = err
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		var rec models.DayRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			// A single unreadable row never poisons the load.
			continue
		}
		store.Records[date] = rec
	}
	if err := rows.Err(); err != nil {
		b.lastErr = err
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	blob, err := Encode(store)
	if err != nil {
		b.lastErr = err
		return nil, err
	}

	b.lastErr = nil
	return blob, nil
}

func (b *SQLiteBackend) Save(data []byte) error {
	if err := b.open(); err != nil {
		b.lastErr = err
		return err
	}

	store, err := Decode(data)
	if err != nil {
		b.lastErr = err
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		b.lastErr = err
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Whole-mapping replacement: clear and reinsert, so removed dates do not
	// linger as stale rows.
	if _, err := tx.Exec(`DELETE FROM day_records`); err != nil {
		b.lastErr = err
		return fmt.Errorf("failed to clear records: %w", err)
	}
	for date, rec := range store.Records {
		recJSON, err := json.Marshal(rec)
		if err != nil {
			b.lastErr = err
			return fmt.Errorf("failed to serialize record %s: %w", date, err)
		}
		if _, err := tx.Exec(`INSERT INTO day_records (date, data) VALUES (?, ?)`, date, string(recJSON)); err != nil {
			b.lastErr = err
			return fmt.Errorf("failed to write record %s: %w", date, err)
		}
	}

	settingsJSON, err := json.Marshal(store.Settings)
	if err != nil {
		b.lastErr = err
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	for key, value := range map[string]string{
		"version":  strconv.Itoa(store.Version),
		"settings": string(settingsJSON),
	} {
		if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
			b.lastErr = err
			return fmt.Errorf("failed to write meta %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		b.lastErr = err
		return fmt.Errorf("failed to commit: %w", err)
	}

	b.lastErr = nil
	return nil
}

func (b *SQLiteBackend) Healthy() bool {
	return b.lastErr == nil
}

func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
