package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peoplecore/employee-records/internal/logger"
)

const dataFileName = "records.json"

// Store is the JSON-file-backed record store engine. The data file is the single
// source of durable truth; the in-memory maps are a cache rebuilt from it at
// startup and rewritten in full after every mutation.
type Store struct {
	*recordStore
	path string
}

// NewStore loads the data file under dataDir, seeding sample data when the file
// is absent or unreadable as a snapshot.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{
		recordStore: newRecordStore(),
		path:        filepath.Join(dataDir, dataFileName),
	}
	s.recordStore.persist = s.writeSnapshot
	if err := s.load(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the data file.
func (s *Store) Path() string { return s.path }

// Close satisfies the lifecycle shared with the SQLite engine; the file store
// holds no open handles between writes.
func (s *Store) Close() error { return nil }

func (s *Store) load(ctx context.Context) error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read data file: %w", err)
		}
		logger.InfoLog(ctx, "no data file at %s, seeding sample data", s.path)
		return s.seed()
	}

	var snapshot Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		logger.WarnLog(ctx, "data file %s is not a valid snapshot (%v), seeding sample data", s.path, err)
		return s.seed()
	}

	s.ImportState(snapshot)
	return nil
}

// seed adopts the sample dataset and persists it immediately. Unlike the
// per-mutation persist, a failure here is fatal: starting without a writable
// data file would lose every subsequent mutation silently.
func (s *Store) seed() error {
	s.ImportState(seedSnapshot(s.nowFn().UTC()))
	if err := s.writeSnapshot(s.ExportState()); err != nil {
		return fmt.Errorf("persist seed data: %w", err)
	}
	return nil
}

// writeSnapshot serializes the whole collection set pretty-printed and overwrites
// the data file in place.
func (s *Store) writeSnapshot(snapshot Snapshot) error {
	buf, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, buf, 0o640); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
