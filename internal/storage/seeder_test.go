package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDataPopulatesEveryCollection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seeder := NewDataSeeder(s)
	require.NoError(t, seeder.SeedData(ctx, 2, 1))

	employees, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	// Two generated employees on top of the sample one.
	require.Len(t, employees, 3)

	for _, emp := range employees {
		if emp.ID == "emp-1" {
			continue
		}
		assert.NotEmpty(t, emp.Email)

		education, err := s.EducationByEmployee(ctx, emp.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, education, "education for %s", emp.ID)

		onboarding, err := s.OnboardingByEmployee(ctx, emp.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, onboarding, "onboarding for %s", emp.ID)

		contacts, err := s.EmergencyContactsByEmployee(ctx, emp.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, contacts, "emergency contacts for %s", emp.ID)
	}
}

func TestClearDataRemovesEmployeesAndChildren(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seeder := NewDataSeeder(s)
	require.NoError(t, seeder.SeedData(ctx, 1, 1))
	require.NoError(t, seeder.ClearData(ctx))

	employees, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)

	// The sample employee's children went with it.
	training, err := s.TrainingByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Empty(t, training)
}

func TestGetPresetConfig(t *testing.T) {
	employees, perCollection := GetPresetConfig(PresetSmall)
	assert.Equal(t, 3, employees)
	assert.Equal(t, 2, perCollection)

	employees, _ = GetPresetConfig(PresetLarge)
	assert.Equal(t, 50, employees)

	// Unknown presets fall back to medium.
	employees, perCollection = GetPresetConfig("xlarge")
	assert.Equal(t, 10, employees)
	assert.Equal(t, 3, perCollection)
}
