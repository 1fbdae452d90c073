// Package storage implements the record store engine behind the Storage contract:
// all collections live in memory and the full snapshot is rewritten to durable
// storage after every mutation.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peoplecore/employee-records/internal/domain"
	"github.com/peoplecore/employee-records/internal/logger"
)

type recordState struct {
	employees         map[string]domain.Employee
	education         map[string]domain.Education
	employmentHistory map[string]domain.EmploymentHistory
	compensation      map[string]domain.Compensation
	bonuses           map[string]domain.Bonus
	timeOff           map[string]domain.TimeOff
	documents         map[string]domain.Document
	benefits          map[string]domain.Benefit
	dependents        map[string]domain.Dependent
	training          map[string]domain.Training
	assets            map[string]domain.Asset
	notes             map[string]domain.Note
	emergencyContacts map[string]domain.EmergencyContact
	onboarding        map[string]domain.Onboarding
	offboarding       map[string]domain.Offboarding
}

// Snapshot is the serialized collection set: collection name to id-keyed records.
// It is the on-disk JSON document shape and the unit handed to persistence.
type Snapshot struct {
	Employees         map[string]domain.Employee          `json:"employees"`
	Education         map[string]domain.Education         `json:"education"`
	EmploymentHistory map[string]domain.EmploymentHistory `json:"employmentHistory"`
	Compensation      map[string]domain.Compensation      `json:"compensation"`
	Bonuses           map[string]domain.Bonus             `json:"bonuses"`
	TimeOff           map[string]domain.TimeOff           `json:"timeOff"`
	Documents         map[string]domain.Document          `json:"documents"`
	Benefits          map[string]domain.Benefit           `json:"benefits"`
	Dependents        map[string]domain.Dependent         `json:"dependents"`
	Training          map[string]domain.Training          `json:"training"`
	Assets            map[string]domain.Asset             `json:"assets"`
	Notes             map[string]domain.Note              `json:"notes"`
	EmergencyContacts map[string]domain.EmergencyContact  `json:"emergencyContacts"`
	Onboarding        map[string]domain.Onboarding        `json:"onboarding"`
	Offboarding       map[string]domain.Offboarding       `json:"offboarding"`
}

func newRecordState() recordState {
	return recordState{
		employees:         make(map[string]domain.Employee),
		education:         make(map[string]domain.Education),
		employmentHistory: make(map[string]domain.EmploymentHistory),
		compensation:      make(map[string]domain.Compensation),
		bonuses:           make(map[string]domain.Bonus),
		timeOff:           make(map[string]domain.TimeOff),
		documents:         make(map[string]domain.Document),
		benefits:          make(map[string]domain.Benefit),
		dependents:        make(map[string]domain.Dependent),
		training:          make(map[string]domain.Training),
		assets:            make(map[string]domain.Asset),
		notes:             make(map[string]domain.Note),
		emergencyContacts: make(map[string]domain.EmergencyContact),
		onboarding:        make(map[string]domain.Onboarding),
		offboarding:       make(map[string]domain.Offboarding),
	}
}

func copyCollection[T any](col map[string]T) map[string]T {
	out := make(map[string]T, len(col))
	for k, v := range col {
		out[k] = v
	}
	return out
}

func snapshotFromState(state recordState) Snapshot {
	return Snapshot{
		Employees:         copyCollection(state.employees),
		Education:         copyCollection(state.education),
		EmploymentHistory: copyCollection(state.employmentHistory),
		Compensation:      copyCollection(state.compensation),
		Bonuses:           copyCollection(state.bonuses),
		TimeOff:           copyCollection(state.timeOff),
		Documents:         copyCollection(state.documents),
		Benefits:          copyCollection(state.benefits),
		Dependents:        copyCollection(state.dependents),
		Training:          copyCollection(state.training),
		Assets:            copyCollection(state.assets),
		Notes:             copyCollection(state.notes),
		EmergencyContacts: copyCollection(state.emergencyContacts),
		Onboarding:        copyCollection(state.onboarding),
		Offboarding:       copyCollection(state.offboarding),
	}
}

func orEmpty[T any](col map[string]T) map[string]T {
	if col == nil {
		return make(map[string]T)
	}
	return copyCollection(col)
}

// stateFromSnapshot adopts a loaded snapshot, tolerating collections missing from
// older data files.
func stateFromSnapshot(s Snapshot) recordState {
	return recordState{
		employees:         orEmpty(s.Employees),
		education:         orEmpty(s.Education),
		employmentHistory: orEmpty(s.EmploymentHistory),
		compensation:      orEmpty(s.Compensation),
		bonuses:           orEmpty(s.Bonuses),
		timeOff:           orEmpty(s.TimeOff),
		documents:         orEmpty(s.Documents),
		benefits:          orEmpty(s.Benefits),
		dependents:        orEmpty(s.Dependents),
		training:          orEmpty(s.Training),
		assets:            orEmpty(s.Assets),
		notes:             orEmpty(s.Notes),
		emergencyContacts: orEmpty(s.EmergencyContacts),
		onboarding:        orEmpty(s.Onboarding),
		offboarding:       orEmpty(s.Offboarding),
	}
}

// recordStore holds the in-memory collections and the mutate/persist cycle shared
// by the JSON-file and SQLite engines. The persist hook runs under the write lock
// after every successful mutation; failures are logged, never surfaced, so memory
// stays ahead of disk rather than rolling back.
type recordStore struct {
	mu      sync.RWMutex
	state   recordState
	nowFn   func() time.Time
	persist func(Snapshot) error
}

var _ domain.Storage = (*recordStore)(nil)

func newRecordStore() *recordStore {
	return &recordStore{
		state: newRecordState(),
		nowFn: time.Now,
	}
}

// ExportState returns a point-in-time copy of all collections.
func (s *recordStore) ExportState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshotFromState(s.state)
}

// ImportState replaces all collections with the snapshot contents.
func (s *recordStore) ImportState(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = stateFromSnapshot(snapshot)
}

func (s *recordStore) saveLocked(ctx context.Context) {
	if s.persist == nil {
		return
	}
	if err := s.persist(snapshotFromState(s.state)); err != nil {
		logger.ErrorLog(ctx, "record store persist failed: %v", err)
	}
}

// nextUpdateTime keeps updatedAt strictly advancing even when the clock has not
// moved past the stored value.
func (s *recordStore) nextUpdateTime(prev time.Time) time.Time {
	now := s.nowFn().UTC()
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}

func newRecordID() string {
	return uuid.NewString()
}

// childPtr constrains a child record pointer to the RecordRef accessors plus its
// validator, letting one generic CRUD core serve all fourteen collections without
// string-name dispatch.
type childPtr[T any] interface {
	*T
	RecordID() string
	OwnerID() string
	SetRecordID(string)
	Validate() error
}

func listByEmployee[T domain.ChildRecord](col map[string]T, employeeID string) []T {
	out := []T{}
	for _, rec := range col {
		if rec.OwnerID() == employeeID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordID() < out[j].RecordID() })
	return out
}

// Collection selectors resolve a map only while the caller holds the store lock,
// so a concurrent ImportState can never hand a helper a stale collection.
type colSelector[T any] func(*recordState) map[string]T

func createChild[T any, P childPtr[T]](ctx context.Context, s *recordStore, sel colSelector[T], rec T) (T, error) {
	var zero T
	p := P(&rec)
	if err := p.Validate(); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	col := sel(&s.state)
	if p.RecordID() == "" {
		p.SetRecordID(newRecordID())
	}
	if _, exists := col[p.RecordID()]; exists {
		return zero, domain.Invalid("record id %q already exists", p.RecordID())
	}
	col[p.RecordID()] = rec
	s.saveLocked(ctx)
	return rec, nil
}

func updateChild[T any, P childPtr[T]](ctx context.Context, s *recordStore, sel colSelector[T], resource, id string, patch domain.Patch) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()
	col := sel(&s.state)
	current, ok := col[id]
	if !ok {
		return zero, domain.NotFound(resource, id)
	}

	merged, err := mergeRecord(current, patch)
	if err != nil {
		return zero, err
	}
	p := P(&merged)
	p.SetRecordID(id)
	if err := p.Validate(); err != nil {
		return zero, err
	}

	col[id] = merged
	s.saveLocked(ctx)
	return merged, nil
}

// deleteChild is an idempotent no-op when the id is absent; only an actual
// removal triggers a persist.
func deleteChild[T any](ctx context.Context, s *recordStore, sel colSelector[T], id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col := sel(&s.state)
	if _, ok := col[id]; !ok {
		return nil
	}
	delete(col, id)
	s.saveLocked(ctx)
	return nil
}

// mergeRecord shallow-merges a patch over the current record's JSON form and
// decodes the result strictly, so unknown or ill-typed patch fields fail as
// validation errors.
func mergeRecord[T any](current T, patch domain.Patch) (T, error) {
	var zero T
	if _, ok := patch["id"]; ok {
		return zero, domain.Invalid("id is immutable")
	}

	obj, err := toRawObject(current)
	if err != nil {
		return zero, err
	}
	for k, v := range patch {
		obj[k] = v
	}
	return decodeStrict[T](obj)
}

// mergeEmployeePatch is mergeRecord plus path-based merging of profileData:
// patched sub-objects overlay field by field so siblings survive.
func mergeEmployeePatch(current domain.Employee, patch domain.Patch) (domain.Employee, error) {
	var zero domain.Employee
	if _, ok := patch["id"]; ok {
		return zero, domain.Invalid("id is immutable")
	}

	obj, err := toRawObject(current)
	if err != nil {
		return zero, err
	}
	for k, v := range patch {
		if k == "profileData" {
			merged, err := mergeProfileData(obj[k], v)
			if err != nil {
				return zero, err
			}
			obj[k] = merged
			continue
		}
		obj[k] = v
	}
	return decodeStrict[domain.Employee](obj)
}

func mergeProfileData(currentRaw, patchRaw json.RawMessage) (json.RawMessage, error) {
	current := map[string]json.RawMessage{}
	if len(currentRaw) > 0 {
		if err := json.Unmarshal(currentRaw, &current); err != nil {
			return nil, err
		}
	}

	var patched map[string]json.RawMessage
	if err := json.Unmarshal(patchRaw, &patched); err != nil {
		return nil, domain.Invalid("profileData must be an object")
	}

	for sub, raw := range patched {
		base := map[string]json.RawMessage{}
		if cur, ok := current[sub]; ok && len(cur) > 0 {
			if err := json.Unmarshal(cur, &base); err != nil {
				return nil, err
			}
		}
		var overlay map[string]json.RawMessage
		if err := json.Unmarshal(raw, &overlay); err != nil {
			return nil, domain.Invalid("profileData.%s must be an object", sub)
		}
		for k, v := range overlay {
			base[k] = v
		}
		mergedSub, err := json.Marshal(base)
		if err != nil {
			return nil, err
		}
		current[sub] = mergedSub
	}
	return json.Marshal(current)
}

func toRawObject(v any) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeStrict[T any](obj map[string]json.RawMessage) (T, error) {
	var out T
	raw, err := json.Marshal(obj)
	if err != nil {
		return out, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		var zero T
		return zero, domain.Invalid("invalid patch: %v", err)
	}
	return out, nil
}
