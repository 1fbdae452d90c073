package domain

import (
	"context"
	"encoding/json"
)

// Patch is a partial update payload: field name to raw JSON value. Fields absent
// from the patch keep their current values. The "id" field is immutable and must
// not appear in a patch.
type Patch map[string]json.RawMessage

// Storage is the persistence contract for the employee aggregate and each child
// collection. Update fails with a NotFoundError when the id is absent; Delete is an
// idempotent no-op for missing ids.
type Storage interface {
	ListEmployees(ctx context.Context) ([]Employee, error)
	GetEmployee(ctx context.Context, id string) (Employee, error)
	CreateEmployee(ctx context.Context, e Employee) (Employee, error)
	UpdateEmployee(ctx context.Context, id string, patch Patch) (Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	EducationByEmployee(ctx context.Context, employeeID string) ([]Education, error)
	CreateEducation(ctx context.Context, rec Education) (Education, error)
	UpdateEducation(ctx context.Context, id string, patch Patch) (Education, error)
	DeleteEducation(ctx context.Context, id string) error

	EmploymentHistoryByEmployee(ctx context.Context, employeeID string) ([]EmploymentHistory, error)
	CreateEmploymentHistory(ctx context.Context, rec EmploymentHistory) (EmploymentHistory, error)
	UpdateEmploymentHistory(ctx context.Context, id string, patch Patch) (EmploymentHistory, error)
	DeleteEmploymentHistory(ctx context.Context, id string) error

	CompensationByEmployee(ctx context.Context, employeeID string) ([]Compensation, error)
	CreateCompensation(ctx context.Context, rec Compensation) (Compensation, error)
	UpdateCompensation(ctx context.Context, id string, patch Patch) (Compensation, error)
	DeleteCompensation(ctx context.Context, id string) error

	BonusesByEmployee(ctx context.Context, employeeID string) ([]Bonus, error)
	CreateBonus(ctx context.Context, rec Bonus) (Bonus, error)
	UpdateBonus(ctx context.Context, id string, patch Patch) (Bonus, error)
	DeleteBonus(ctx context.Context, id string) error

	TimeOffByEmployee(ctx context.Context, employeeID string) ([]TimeOff, error)
	CreateTimeOff(ctx context.Context, rec TimeOff) (TimeOff, error)
	UpdateTimeOff(ctx context.Context, id string, patch Patch) (TimeOff, error)
	DeleteTimeOff(ctx context.Context, id string) error

	DocumentsByEmployee(ctx context.Context, employeeID string) ([]Document, error)
	CreateDocument(ctx context.Context, rec Document) (Document, error)
	UpdateDocument(ctx context.Context, id string, patch Patch) (Document, error)
	DeleteDocument(ctx context.Context, id string) error

	BenefitsByEmployee(ctx context.Context, employeeID string) ([]Benefit, error)
	CreateBenefit(ctx context.Context, rec Benefit) (Benefit, error)
	UpdateBenefit(ctx context.Context, id string, patch Patch) (Benefit, error)
	DeleteBenefit(ctx context.Context, id string) error

	DependentsByEmployee(ctx context.Context, employeeID string) ([]Dependent, error)
	CreateDependent(ctx context.Context, rec Dependent) (Dependent, error)
	UpdateDependent(ctx context.Context, id string, patch Patch) (Dependent, error)
	DeleteDependent(ctx context.Context, id string) error

	TrainingByEmployee(ctx context.Context, employeeID string) ([]Training, error)
	CreateTraining(ctx context.Context, rec Training) (Training, error)
	UpdateTraining(ctx context.Context, id string, patch Patch) (Training, error)
	DeleteTraining(ctx context.Context, id string) error

	AssetsByEmployee(ctx context.Context, employeeID string) ([]Asset, error)
	CreateAsset(ctx context.Context, rec Asset) (Asset, error)
	UpdateAsset(ctx context.Context, id string, patch Patch) (Asset, error)
	DeleteAsset(ctx context.Context, id string) error

	NotesByEmployee(ctx context.Context, employeeID string) ([]Note, error)
	CreateNote(ctx context.Context, rec Note) (Note, error)
	UpdateNote(ctx context.Context, id string, patch Patch) (Note, error)
	DeleteNote(ctx context.Context, id string) error

	EmergencyContactsByEmployee(ctx context.Context, employeeID string) ([]EmergencyContact, error)
	CreateEmergencyContact(ctx context.Context, rec EmergencyContact) (EmergencyContact, error)
	UpdateEmergencyContact(ctx context.Context, id string, patch Patch) (EmergencyContact, error)
	DeleteEmergencyContact(ctx context.Context, id string) error

	OnboardingByEmployee(ctx context.Context, employeeID string) ([]Onboarding, error)
	CreateOnboarding(ctx context.Context, rec Onboarding) (Onboarding, error)
	UpdateOnboarding(ctx context.Context, id string, patch Patch) (Onboarding, error)
	DeleteOnboarding(ctx context.Context, id string) error

	OffboardingByEmployee(ctx context.Context, employeeID string) ([]Offboarding, error)
	CreateOffboarding(ctx context.Context, rec Offboarding) (Offboarding, error)
	UpdateOffboarding(ctx context.Context, id string, patch Patch) (Offboarding, error)
	DeleteOffboarding(ctx context.Context, id string) error
}
