package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Document keys of the values that are not ledgers
const (
	LastObligationKey = "lastZakatObligation"
	PreferencesKey    = "currencyPreferences"
)

// DB is a single JSON document on local disk.
// Every read goes to the file, and writes are serialized and atomic (temp file + rename).
type DB struct {
	path string
	mu   sync.Mutex
}

// NewDB prepares the store at path, creating the parent directory if needed.
// The file itself is created on the first write.
func NewDB(path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("file store path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &DB{path: path}, nil
}

// Path returns the location of the document
func (db *DB) Path() string {
	return db.path
}

// Ping checks that the document can be read
func (db *DB) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	_, err := db.read()
	return err
}

// Close is a no-op, present so every backend can be released the same way
func (db *DB) Close() error {
	return nil
}

// document maps keys to raw JSON values
type document map[string]json.RawMessage

// read loads the document. A missing file is an empty document. Callers hold db.mu.
func (db *DB) read() (document, error) {
	data, err := os.ReadFile(db.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return document{}, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(data) == 0 {
		return document{}, nil
	}

	doc := document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode store file %s: %w", db.path, err)
	}
	return doc, nil
}

// write replaces the document on disk. Callers hold db.mu.
func (db *DB) write(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(db.path), filepath.Base(db.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, db.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// get decodes the value under key into v. It reports false when the key is absent.
func (db *DB) get(key string, v any) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	doc, err := db.read()
	if err != nil {
		return false, err
	}
	raw, ok := doc[key]
	if !ok || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// put re-reads the document, replaces the value under key and writes it back
func (db *DB) put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	doc, err := db.read()
	if err != nil {
		return err
	}
	doc[key] = raw
	return db.write(doc)
}

// update holds the lock while fn turns the current value under key into the new one.
// raw is nil when the key is absent.
func (db *DB) update(key string, fn func(raw json.RawMessage) (any, error)) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	doc, err := db.read()
	if err != nil {
		return err
	}

	v, err := fn(doc[key])
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	doc[key] = raw
	return db.write(doc)
}
