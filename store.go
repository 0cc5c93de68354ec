package inventario

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// Store is the durability boundary of the ledger. Every Append and Clear is
// an immediate durable write: there is no buffering across calls.
type Store interface {
	// Load reads the full ledger. A missing backing store is treated as
	// empty, not as an error.
	Load() (*Ledger, error)
	// Append stamps the current instant and durably writes a new record
	// after all existing ones. It performs no validation; callers run the
	// validator first.
	Append(code string, quantity int) (CountRecord, error)
	// Clear irreversibly replaces the ledger with an empty one.
	Clear() error
}

// StorageError reports a failed durable read or write. Losing a count is a
// correctness violation, so these are always propagated, never swallowed.
type StorageError struct {
	Op   string // "load", "append" or "clear"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s on %q failed: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// FileStore persists the ledger as a flat CSV file with a fixed header row.
//
// The file always exists once the store has been used: Load materializes a
// header-only file when it is absent, and Clear rewrites one. Writes go
// through a temporary file and a rename, so a failure leaves the previous
// state intact.
type FileStore struct {
	path string
	now  func() time.Time // injected for deterministic tests
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store backed by the CSV file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string { return s.path }

// Load reads the persisted ledger, creating a header-only file first if none
// exists yet.
func (s *FileStore) Load() (*Ledger, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		ledger := NewLedger()
		if err := s.write("load", ledger); err != nil {
			return nil, err
		}
		return ledger, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	return ledger, nil
}

// Append stamps the current instant and rewrites the ledger with the new
// record after all existing ones.
func (s *FileStore) Append(code string, quantity int) (CountRecord, error) {
	ledger, err := s.Load()
	if err != nil {
		return CountRecord{}, err
	}
	record := NewCountRecord(s.now(), code, quantity)
	ledger.Append(record)
	if err := s.write("append", ledger); err != nil {
		return CountRecord{}, err
	}
	return record, nil
}

// Clear replaces the ledger with an empty one, keeping only the header row.
// There is no confirmation and no undo here; that belongs to the caller.
func (s *FileStore) Clear() error {
	return s.write("clear", NewLedger())
}

// write replaces the backing file with the encoded ledger atomically.
func (s *FileStore) write(op string, ledger *Ledger) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &StorageError{Op: op, Path: s.path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		return &StorageError{Op: op, Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Op: op, Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &StorageError{Op: op, Path: s.path, Err: err}
	}
	return nil
}

// MemoryStore keeps the ledger in memory. It implements the same contract as
// FileStore and exists for tests and for embedding the engine without a
// backing file.
type MemoryStore struct {
	ledger     *Ledger
	now        func() time.Time
	failWrites bool
}

var _ Store = (*MemoryStore)(nil)

var errWritesDisabled = errors.New("writes disabled")

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ledger: NewLedger(), now: time.Now}
}

// Load returns a copy of the stored ledger, so callers cannot mutate the
// store through it.
func (s *MemoryStore) Load() (*Ledger, error) {
	return &Ledger{records: slices.Clone(s.ledger.records)}, nil
}

// Append stamps the current instant and stores a new record.
func (s *MemoryStore) Append(code string, quantity int) (CountRecord, error) {
	if s.failWrites {
		return CountRecord{}, &StorageError{Op: "append", Path: "memory", Err: errWritesDisabled}
	}
	record := NewCountRecord(s.now(), code, quantity)
	s.ledger.Append(record)
	return record, nil
}

// Clear discards all stored records.
func (s *MemoryStore) Clear() error {
	if s.failWrites {
		return &StorageError{Op: "clear", Path: "memory", Err: errWritesDisabled}
	}
	s.ledger = NewLedger()
	return nil
}
