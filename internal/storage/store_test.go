package storage

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/employee-records/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func rawPatch(t *testing.T, fields map[string]any) domain.Patch {
	t.Helper()
	patch := domain.Patch{}
	for k, v := range fields {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		patch[k] = raw
	}
	return patch
}

func TestNewStoreSeedsWhenFileMissing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	employees, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "emp-1", employees[0].ID)
	assert.Equal(t, "Avery", employees[0].FirstName)

	training, err := s.TrainingByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, training, 2)

	bonuses, err := s.BonusesByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, bonuses, 1)

	// Seeding persists immediately.
	_, err = os.Stat(s.Path())
	assert.NoError(t, err)
}

func TestNewStoreReseedsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o640))

	reopened, err := NewStore(dir)
	require.NoError(t, err)

	employees, err := reopened.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "emp-1", employees[0].ID)
}

func TestNewStoreToleratesMissingCollections(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	// An older data file may carry only some collections.
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"employees":{}}`), 0o640))

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	employees, err := reopened.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)

	created, err := reopened.CreateNote(ctx, domain.Note{
		RecordRef: domain.RecordRef{EmployeeID: "emp-9"},
		Title:     "first note",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestCreateEmployeeAssignsIDAndTimestamps(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateEmployee(ctx, domain.Employee{
		FirstName: "Jordan",
		LastName:  "Reyes",
		Email:     "jordan.reyes@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	_, err = s.CreateEmployee(ctx, domain.Employee{FirstName: "No", LastName: "Email"})
	assert.True(t, domain.IsValidation(err))
}

func TestUpdateEmployeeMergesProfileData(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	updated, err := s.UpdateEmployee(ctx, "emp-1", rawPatch(t, map[string]any{
		"jobTitle": "Staff Engineer",
		"profileData": map[string]any{
			"personal": map[string]any{"nationality": "CA"},
		},
	}))
	require.NoError(t, err)

	assert.Equal(t, "Staff Engineer", updated.JobTitle)
	// The patched key changes, its siblings survive.
	assert.Equal(t, "CA", updated.ProfileData.Personal.Nationality)
	assert.Equal(t, "Avery", updated.ProfileData.Personal.PreferredName)
	// Untouched sub-objects survive too.
	assert.Equal(t, "Portland", updated.ProfileData.Address.City)
	// Fields absent from the patch keep their values.
	assert.Equal(t, "avery.chen@example.com", updated.Email)
}

func TestUpdateEmployeeMissingIsNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateEmployee(context.Background(), "nope", rawPatch(t, map[string]any{"jobTitle": "X"}))
	assert.True(t, domain.IsNotFound(err))
}

func TestUpdateRejectsIDPatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpdateEmployee(ctx, "emp-1", rawPatch(t, map[string]any{"id": "emp-2"}))
	assert.True(t, domain.IsValidation(err))

	_, err = s.UpdateTraining(ctx, "trn-1", rawPatch(t, map[string]any{"id": "trn-9"}))
	assert.True(t, domain.IsValidation(err))
}

func TestUpdateRejectsUnknownField(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateTraining(context.Background(), "trn-1", rawPatch(t, map[string]any{"shoeSize": 42}))
	assert.True(t, domain.IsValidation(err))
}

func TestUpdatedAtAdvancesUnderFrozenClock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.nowFn = func() time.Time { return frozen }

	first, err := s.UpdateEmployee(ctx, "emp-1", rawPatch(t, map[string]any{"location": "NYC"}))
	require.NoError(t, err)
	second, err := s.UpdateEmployee(ctx, "emp-1", rawPatch(t, map[string]any{"location": "SF"}))
	require.NoError(t, err)

	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestChildCreateListPatchDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateBenefit(ctx, domain.Benefit{
		RecordRef: domain.RecordRef{EmployeeID: "emp-1"},
		Plan:      "Gold PPO",
		Type:      "Health",
		Status:    "Active",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	benefits, err := s.BenefitsByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, benefits, 1)
	assert.Equal(t, created.ID, benefits[0].ID)

	updated, err := s.UpdateBenefit(ctx, created.ID, rawPatch(t, map[string]any{"status": "Terminated"}))
	require.NoError(t, err)
	assert.Equal(t, "Terminated", updated.Status)
	// Unpatched fields survive the merge.
	assert.Equal(t, "Gold PPO", updated.Plan)
	assert.Equal(t, "emp-1", updated.EmployeeID)

	require.NoError(t, s.DeleteBenefit(ctx, created.ID))
	benefits, err = s.BenefitsByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Empty(t, benefits)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, s.DeleteTraining(ctx, "never-existed"))
	assert.NoError(t, s.DeleteTraining(ctx, "trn-1"))
	assert.NoError(t, s.DeleteTraining(ctx, "trn-1"))
	assert.NoError(t, s.DeleteEmployee(ctx, "never-existed"))
}

func TestDeleteEmployeeDoesNotCascade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteEmployee(ctx, "emp-1"))

	// Children keep their employeeId and remain queryable.
	training, err := s.TrainingByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, training, 2)
}

func TestCreateAcceptsAbsentEmployee(t *testing.T) {
	s := newTestStore(t)

	// Referential integrity is not enforced.
	created, err := s.CreateBonus(context.Background(), domain.Bonus{
		RecordRef: domain.RecordRef{EmployeeID: "ghost"},
		Date:      "2025-01-01",
		Amount:    100,
	})
	require.NoError(t, err)
	assert.Equal(t, "ghost", created.EmployeeID)
}

func TestReloadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	emp, err := s.CreateEmployee(ctx, domain.Employee{
		FirstName: "Sam",
		LastName:  "Okafor",
		Email:     "sam.okafor@example.com",
	})
	require.NoError(t, err)

	asset, err := s.CreateAsset(ctx, domain.Asset{
		RecordRef:    domain.RecordRef{EmployeeID: emp.ID},
		Name:         "MacBook Pro",
		SerialNumber: "C02XYZ",
	})
	require.NoError(t, err)

	reopened, err := NewStore(dir)
	require.NoError(t, err)

	got, err := reopened.GetEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam", got.FirstName)
	assert.True(t, got.CreatedAt.Equal(emp.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(emp.UpdatedAt))

	assets, err := reopened.AssetsByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, asset.ID, assets[0].ID)
}

func TestListChildSortedByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"n-3", "n-1", "n-2"} {
		_, err := s.CreateNote(ctx, domain.Note{
			RecordRef: domain.RecordRef{ID: id, EmployeeID: "emp-1"},
			Title:     "note " + id,
		})
		require.NoError(t, err)
	}

	notes, err := s.NotesByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "n-1", notes[0].ID)
	assert.Equal(t, "n-2", notes[1].ID)
	assert.Equal(t, "n-3", notes[2].ID)
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.recordStore.persist = func(Snapshot) error {
		return os.ErrPermission
	}

	created, err := s.CreateNote(ctx, domain.Note{
		RecordRef: domain.RecordRef{EmployeeID: "emp-1"},
		Title:     "still stored",
	})
	require.NoError(t, err)

	notes, err := s.NotesByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, created.ID, notes[0].ID)
}
