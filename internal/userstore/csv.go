package userstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

var header = []string{"username", "password"}

// CSVStore keeps credentials in a two-column CSV file with a header row.
// The file is created empty (header only) on first use if it does not
// exist, read whole on every Lookup, and rewritten whole on every Append.
type CSVStore struct {
	path string
}

// NewCSV returns a store backed by the CSV file at path. The parent
// directory is created on first access.
func NewCSV(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Lookup scans the table top to bottom and returns the first match.
func (s *CSVStore) Lookup(username string) (string, error) {
	rows, err := s.readAll()
	if err != nil {
		return "", err
	}
	for _, row := range rows {
		if row[0] == username {
			return row[1], nil
		}
	}
	return "", ErrNotFound
}

// Append rewrites the whole file with the new row added. There is no file
// locking: concurrent signups can race and the last writer wins. Known
// limitation of the file-as-database design.
func (s *CSVStore) Append(username, passwordHash string) error {
	rows, err := s.readAll()
	if err != nil {
		return err
	}
	rows = append(rows, []string{username, passwordHash})

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("rewrite user store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}

// readAll returns the data rows (header excluded), creating an empty store
// first if the file is missing.
func (s *CSVStore) readAll() ([][]string, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open user store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read user store: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

func (s *CSVStore) ensure() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create user store dir: %w", err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create user store: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
