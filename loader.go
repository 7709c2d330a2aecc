package cashbook

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps the ledger in a plain text file, one transaction per line.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path. The file does not
// need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the ledger file path.
func (s *FileStore) Path() string { return s.path }

// Load reads every line of the ledger file. A missing file is not an error,
// it is the state of a ledger that never recorded anything.
func (s *FileStore) Load() ([]string, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return lines, fmt.Errorf("could not read ledger file %q: %w", s.path, err)
	}
	return lines, nil
}

// Save rewrites the whole ledger file.
//
// Transactions are written to a temporary file in the same directory which
// is then renamed over the ledger file: a crash during Save leaves the
// previous file intact.
func (s *FileStore) Save(txs []Transaction) (err error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", s.path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for ledger %q: %w", s.path, err)
	}
	// Remove the temporary file on any failure, after a successful rename it no longer exists.
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = EncodeLedger(w, txs); err != nil {
		return fmt.Errorf("error writing ledger %q: %w", s.path, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("error writing ledger %q: %w", s.path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("error syncing ledger %q: %w", s.path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing ledger %q: %w", s.path, err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("error setting ledger %q permissions: %w", s.path, err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("error replacing ledger %q: %w", s.path, err)
	}
	return nil
}
