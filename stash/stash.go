// @focus: #persist { stash }
package stash

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/glyph-painter/core"
	"github.com/lixenwraith/glyph-painter/document"

	_ "modernc.org/sqlite"
)

// ErrNotFound reports a load from an empty slot
var ErrNotFound = errors.New("stash slot is empty")

const schema = `
CREATE TABLE IF NOT EXISTS snippets (
	name       TEXT PRIMARY KEY,
	width      INTEGER NOT NULL,
	height     INTEGER NOT NULL,
	data       BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// Entry describes a stored snippet without its cells
type Entry struct {
	Name      string
	Width     int
	Height    int
	UpdatedAt time.Time
}

// Store keeps named clipboard snippets across sessions
// Snippets are stored in the document wire format
type Store struct {
	db *sql.DB
}

// Open creates or opens the stash database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Single-threaded editor, one connection is enough
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("Stash: opened %s", path)
	return &Store{db: db}, nil
}

// Close releases the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores the clipboard contents under name, replacing any previous snippet
func (s *Store) Put(name string, clip *core.Clipboard) error {
	width, height, cells := clip.Region()
	if cells == nil {
		return core.ErrEmptyClipboard
	}

	var buf bytes.Buffer
	err := document.EncodeCells(&buf, width, height, func(x, y int) core.Cell {
		return cells[y*width+x]
	})
	if err != nil {
		return fmt.Errorf("stash %q: %w", name, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO snippets (name, width, height, data, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET width = excluded.width, height = excluded.height,
		 data = excluded.data, updated_at = excluded.updated_at`,
		name, width, height, buf.Bytes(), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("stash %q: %w", name, err)
	}
	log.Printf("Stash: stored %q (%dx%d)", name, width, height)
	return nil
}

// Get loads the snippet under name into clip
func (s *Store) Get(name string, clip *core.Clipboard) error {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM snippets WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("stash %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("stash %q: %w", name, err)
	}

	width, height, cells, err := document.DecodeCells(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("stash %q: %w", name, err)
	}
	if err := clip.Load(width, height, cells); err != nil {
		return fmt.Errorf("stash %q: %w", name, err)
	}
	log.Printf("Stash: loaded %q (%dx%d)", name, width, height)
	return nil
}

// Delete removes a snippet; deleting an empty slot is not an error
func (s *Store) Delete(name string) error {
	if _, err := s.db.Exec(`DELETE FROM snippets WHERE name = ?`, name); err != nil {
		return fmt.Errorf("stash %q: %w", name, err)
	}
	return nil
}

// List returns stored snippets ordered by name
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT name, width, height, updated_at FROM snippets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("stash list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ms int64
		if err := rows.Scan(&e.Name, &e.Width, &e.Height, &ms); err != nil {
			return nil, fmt.Errorf("stash list: %w", err)
		}
		e.UpdatedAt = time.UnixMilli(ms)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
