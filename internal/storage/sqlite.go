package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/peoplecore/employee-records/internal/logger"
)

const sqliteFileName = "records.db"

// SQLiteStore keeps the same in-memory engine but persists the snapshot into a
// single SQLite table, one row per collection, rewritten in a transaction after
// every mutation. Selected with STORAGE_DRIVER=sqlite.
type SQLiteStore struct {
	*recordStore
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database under dataDir and loads the
// stored snapshot, seeding sample data when no state rows exist or they fail to
// decode.
func NewSQLiteStore(dataDir string) (*SQLiteStore, error) {
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, sqliteFileName))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	s := &SQLiteStore{recordStore: newRecordStore(), db: db}
	s.recordStore.persist = s.writeSnapshot
	if err := s.load(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) load(ctx context.Context) error {
	rows, err := s.db.Query(`SELECT bucket, payload FROM state`)
	if err != nil {
		return fmt.Errorf("select state: %w", err)
	}
	defer rows.Close()

	payloads := map[string][]byte{}
	for rows.Next() {
		var bucket string
		var payload []byte
		if err := rows.Scan(&bucket, &payload); err != nil {
			return fmt.Errorf("scan state row: %w", err)
		}
		payloads[bucket] = payload
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate state rows: %w", err)
	}

	if len(payloads) == 0 {
		logger.InfoLog(ctx, "sqlite state is empty, seeding sample data")
		return s.seed()
	}

	snapshot, err := decodeBuckets(payloads)
	if err != nil {
		logger.WarnLog(ctx, "sqlite state failed to decode (%v), seeding sample data", err)
		return s.seed()
	}

	s.ImportState(snapshot)
	return nil
}

func (s *SQLiteStore) seed() error {
	s.ImportState(seedSnapshot(s.nowFn().UTC()))
	if err := s.writeSnapshot(s.ExportState()); err != nil {
		return fmt.Errorf("persist seed data: %w", err)
	}
	return nil
}

func (s *SQLiteStore) writeSnapshot(snapshot Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO state(bucket, payload) VALUES(?, ?)
		ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for bucket, collection := range encodeBuckets(snapshot) {
		payload, err := json.Marshal(collection)
		if err != nil {
			return fmt.Errorf("encode %s: %w", bucket, err)
		}
		if _, err := stmt.Exec(bucket, payload); err != nil {
			return fmt.Errorf("upsert %s: %w", bucket, err)
		}
	}
	return tx.Commit()
}

func encodeBuckets(s Snapshot) map[string]any {
	return map[string]any{
		"employees":         s.Employees,
		"education":         s.Education,
		"employmentHistory": s.EmploymentHistory,
		"compensation":      s.Compensation,
		"bonuses":           s.Bonuses,
		"timeOff":           s.TimeOff,
		"documents":         s.Documents,
		"benefits":          s.Benefits,
		"dependents":        s.Dependents,
		"training":          s.Training,
		"assets":            s.Assets,
		"notes":             s.Notes,
		"emergencyContacts": s.EmergencyContacts,
		"onboarding":        s.Onboarding,
		"offboarding":       s.Offboarding,
	}
}

func decodeBuckets(payloads map[string][]byte) (Snapshot, error) {
	snapshot := Snapshot{}
	targets := map[string]any{
		"employees":         &snapshot.Employees,
		"education":         &snapshot.Education,
		"employmentHistory": &snapshot.EmploymentHistory,
		"compensation":      &snapshot.Compensation,
		"bonuses":           &snapshot.Bonuses,
		"timeOff":           &snapshot.TimeOff,
		"documents":         &snapshot.Documents,
		"benefits":          &snapshot.Benefits,
		"dependents":        &snapshot.Dependents,
		"training":          &snapshot.Training,
		"assets":            &snapshot.Assets,
		"notes":             &snapshot.Notes,
		"emergencyContacts": &snapshot.EmergencyContacts,
		"onboarding":        &snapshot.Onboarding,
		"offboarding":       &snapshot.Offboarding,
	}
	for bucket, payload := range payloads {
		target, ok := targets[bucket]
		if !ok {
			continue
		}
		if err := json.Unmarshal(payload, target); err != nil {
			return Snapshot{}, fmt.Errorf("decode %s: %w", bucket, err)
		}
	}
	return snapshot, nil
}
