package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/employee-records/internal/domain"
)

func TestSQLiteStoreSeedsWhenEmpty(t *testing.T) {
	s, err := NewSQLiteStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	employees, err := s.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "emp-1", employees[0].ID)

	training, err := s.TrainingByEmployee(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Len(t, training, 2)
}

func TestSQLiteStoreReloadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewSQLiteStore(dir)
	require.NoError(t, err)

	created, err := s.CreateDependent(ctx, domain.Dependent{
		RecordRef:    domain.RecordRef{EmployeeID: "emp-1"},
		Name:         "Riley Chen",
		Relationship: "Child",
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	dependents, err := reopened.DependentsByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, dependents, 1)
	assert.Equal(t, created.ID, dependents[0].ID)

	// The reopened store did not reseed over existing data.
	employees, err := reopened.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestSQLiteStoreDeleteThenReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewSQLiteStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.DeleteTraining(ctx, "trn-1"))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	training, err := reopened.TrainingByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, training, 1)
	assert.Equal(t, "trn-2", training[0].ID)
}
