package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeValidate(t *testing.T) {
	valid := Employee{FirstName: "Ana", LastName: "Silva", Email: "ana@example.com"}
	assert.NoError(t, valid.Validate())

	missing := Employee{FirstName: "Ana"}
	err := missing.Validate()
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "lastName")

	badEmail := Employee{FirstName: "Ana", LastName: "Silva", Email: "not-an-address"}
	assert.True(t, IsValidation(badEmail.Validate()))
}

func TestCompensationValidate(t *testing.T) {
	valid := Compensation{
		RecordRef:     RecordRef{EmployeeID: "e1"},
		EffectiveDate: "2025-01-01",
		PayType:       "Salary",
		PayRate:       95000,
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.PayType = "Commission"
	err := badType.Validate()
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "payType")

	negative := valid
	negative.PayRate = -1
	assert.True(t, IsValidation(negative.Validate()))
}

func TestChildValidateRequiresEmployeeID(t *testing.T) {
	records := []interface{ Validate() error }{
		Education{School: "MIT", Degree: "BSc"},
		Benefit{Plan: "Gold", Type: "Health", Status: "Active"},
		Training{Name: "Safety", Category: "General", Status: "Pending"},
		Note{Title: "x"},
		Onboarding{Task: "Laptop", Status: "Pending"},
	}
	for _, rec := range records {
		err := rec.Validate()
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "employeeId")
	}
}

func TestRequireFieldsMessageIsSorted(t *testing.T) {
	err := TimeOff{}.Validate()
	assert.EqualError(t, err, "missing required field(s): employeeId, startDate, status, type")
}
