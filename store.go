package cashbook

import (
	"bytes"
	"sync"
)

// Store persists the ledger as a sequence of text lines.
type Store interface {
	// Load returns the raw lines of the store. A store that does not exist
	// yet is empty: it returns no lines and no error.
	Load() ([]string, error)
	// Save replaces the whole content of the store with txs, in order.
	Save(txs []Transaction) error
}

// MemoryStore is a Store kept in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	lines []string
}

// NewMemoryStore creates a memory store holding the given raw lines.
func NewMemoryStore(lines ...string) *MemoryStore {
	return &MemoryStore{lines: append([]string(nil), lines...)}
}

// Load returns a copy of the stored lines.
func (m *MemoryStore) Load() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lines...), nil
}

// Save encodes txs and replaces the stored lines.
func (m *MemoryStore) Save(txs []Transaction) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, txs); err != nil {
		return err
	}
	lines, err := readLines(&buf)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = lines
	return nil
}

// Compile-time check: ensure both stores implement Store.
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FileStore)(nil)
)
