package storage

import (
	"context"
	"sort"

	"github.com/peoplecore/employee-records/internal/domain"
)

// Employee aggregate operations.

func (s *recordStore) ListEmployees(_ context.Context) ([]domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Employee{}
	for _, e := range s.state.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *recordStore) GetEmployee(_ context.Context, id string) (domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.state.employees[id]
	if !ok {
		return domain.Employee{}, domain.NotFound("employee", id)
	}
	return e, nil
}

func (s *recordStore) CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	if err := e.Validate(); err != nil {
		return domain.Employee{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = newRecordID()
	}
	if _, exists := s.state.employees[e.ID]; exists {
		return domain.Employee{}, domain.Invalid("employee id %q already exists", e.ID)
	}
	now := s.nowFn().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	s.state.employees[e.ID] = e
	s.saveLocked(ctx)
	return e, nil
}

func (s *recordStore) UpdateEmployee(ctx context.Context, id string, patch domain.Patch) (domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.state.employees[id]
	if !ok {
		return domain.Employee{}, domain.NotFound("employee", id)
	}

	merged, err := mergeEmployeePatch(current, patch)
	if err != nil {
		return domain.Employee{}, err
	}
	merged.ID = id
	merged.CreatedAt = current.CreatedAt
	if err := merged.Validate(); err != nil {
		return domain.Employee{}, err
	}
	merged.UpdatedAt = s.nextUpdateTime(current.UpdatedAt)

	s.state.employees[id] = merged
	s.saveLocked(ctx)
	return merged, nil
}

// DeleteEmployee removes only the aggregate record. Child records keep their
// employeeId and become orphans; cascade delete is deliberately not performed.
func (s *recordStore) DeleteEmployee(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.state.employees[id]; !ok {
		return nil
	}
	delete(s.state.employees, id)
	s.saveLocked(ctx)
	return nil
}

// Child collections. Each set delegates to the generic CRUD core over its own map.

func (s *recordStore) EducationByEmployee(_ context.Context, employeeID string) ([]domain.Education, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.education, employeeID), nil
}

func (s *recordStore) CreateEducation(ctx context.Context, rec domain.Education) (domain.Education, error) {
	return createChild[domain.Education](ctx, s, educationCol, rec)
}

func (s *recordStore) UpdateEducation(ctx context.Context, id string, patch domain.Patch) (domain.Education, error) {
	return updateChild[domain.Education](ctx, s, educationCol, "education", id, patch)
}

func (s *recordStore) DeleteEducation(ctx context.Context, id string) error {
	return deleteChild(ctx, s, educationCol, id)
}

func (s *recordStore) EmploymentHistoryByEmployee(_ context.Context, employeeID string) ([]domain.EmploymentHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.employmentHistory, employeeID), nil
}

func (s *recordStore) CreateEmploymentHistory(ctx context.Context, rec domain.EmploymentHistory) (domain.EmploymentHistory, error) {
	return createChild[domain.EmploymentHistory](ctx, s, employmentHistoryCol, rec)
}

func (s *recordStore) UpdateEmploymentHistory(ctx context.Context, id string, patch domain.Patch) (domain.EmploymentHistory, error) {
	return updateChild[domain.EmploymentHistory](ctx, s, employmentHistoryCol, "employment history", id, patch)
}

func (s *recordStore) DeleteEmploymentHistory(ctx context.Context, id string) error {
	return deleteChild(ctx, s, employmentHistoryCol, id)
}

func (s *recordStore) CompensationByEmployee(_ context.Context, employeeID string) ([]domain.Compensation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.compensation, employeeID), nil
}

func (s *recordStore) CreateCompensation(ctx context.Context, rec domain.Compensation) (domain.Compensation, error) {
	return createChild[domain.Compensation](ctx, s, compensationCol, rec)
}

func (s *recordStore) UpdateCompensation(ctx context.Context, id string, patch domain.Patch) (domain.Compensation, error) {
	return updateChild[domain.Compensation](ctx, s, compensationCol, "compensation", id, patch)
}

func (s *recordStore) DeleteCompensation(ctx context.Context, id string) error {
	return deleteChild(ctx, s, compensationCol, id)
}

func (s *recordStore) BonusesByEmployee(_ context.Context, employeeID string) ([]domain.Bonus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.bonuses, employeeID), nil
}

func (s *recordStore) CreateBonus(ctx context.Context, rec domain.Bonus) (domain.Bonus, error) {
	return createChild[domain.Bonus](ctx, s, bonusesCol, rec)
}

func (s *recordStore) UpdateBonus(ctx context.Context, id string, patch domain.Patch) (domain.Bonus, error) {
	return updateChild[domain.Bonus](ctx, s, bonusesCol, "bonus", id, patch)
}

func (s *recordStore) DeleteBonus(ctx context.Context, id string) error {
	return deleteChild(ctx, s, bonusesCol, id)
}

func (s *recordStore) TimeOffByEmployee(_ context.Context, employeeID string) ([]domain.TimeOff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.timeOff, employeeID), nil
}

func (s *recordStore) CreateTimeOff(ctx context.Context, rec domain.TimeOff) (domain.TimeOff, error) {
	return createChild[domain.TimeOff](ctx, s, timeOffCol, rec)
}

func (s *recordStore) UpdateTimeOff(ctx context.Context, id string, patch domain.Patch) (domain.TimeOff, error) {
	return updateChild[domain.TimeOff](ctx, s, timeOffCol, "time off", id, patch)
}

func (s *recordStore) DeleteTimeOff(ctx context.Context, id string) error {
	return deleteChild(ctx, s, timeOffCol, id)
}

func (s *recordStore) DocumentsByEmployee(_ context.Context, employeeID string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.documents, employeeID), nil
}

func (s *recordStore) CreateDocument(ctx context.Context, rec domain.Document) (domain.Document, error) {
	return createChild[domain.Document](ctx, s, documentsCol, rec)
}

func (s *recordStore) UpdateDocument(ctx context.Context, id string, patch domain.Patch) (domain.Document, error) {
	return updateChild[domain.Document](ctx, s, documentsCol, "document", id, patch)
}

func (s *recordStore) DeleteDocument(ctx context.Context, id string) error {
	return deleteChild(ctx, s, documentsCol, id)
}

func (s *recordStore) BenefitsByEmployee(_ context.Context, employeeID string) ([]domain.Benefit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.benefits, employeeID), nil
}

func (s *recordStore) CreateBenefit(ctx context.Context, rec domain.Benefit) (domain.Benefit, error) {
	return createChild[domain.Benefit](ctx, s, benefitsCol, rec)
}

func (s *recordStore) UpdateBenefit(ctx context.Context, id string, patch domain.Patch) (domain.Benefit, error) {
	return updateChild[domain.Benefit](ctx, s, benefitsCol, "benefit", id, patch)
}

func (s *recordStore) DeleteBenefit(ctx context.Context, id string) error {
	return deleteChild(ctx, s, benefitsCol, id)
}

func (s *recordStore) DependentsByEmployee(_ context.Context, employeeID string) ([]domain.Dependent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.dependents, employeeID), nil
}

func (s *recordStore) CreateDependent(ctx context.Context, rec domain.Dependent) (domain.Dependent, error) {
	return createChild[domain.Dependent](ctx, s, dependentsCol, rec)
}

func (s *recordStore) UpdateDependent(ctx context.Context, id string, patch domain.Patch) (domain.Dependent, error) {
	return updateChild[domain.Dependent](ctx, s, dependentsCol, "dependent", id, patch)
}

func (s *recordStore) DeleteDependent(ctx context.Context, id string) error {
	return deleteChild(ctx, s, dependentsCol, id)
}

func (s *recordStore) TrainingByEmployee(_ context.Context, employeeID string) ([]domain.Training, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.training, employeeID), nil
}

func (s *recordStore) CreateTraining(ctx context.Context, rec domain.Training) (domain.Training, error) {
	return createChild[domain.Training](ctx, s, trainingCol, rec)
}

func (s *recordStore) UpdateTraining(ctx context.Context, id string, patch domain.Patch) (domain.Training, error) {
	return updateChild[domain.Training](ctx, s, trainingCol, "training", id, patch)
}

func (s *recordStore) DeleteTraining(ctx context.Context, id string) error {
	return deleteChild(ctx, s, trainingCol, id)
}

func (s *recordStore) AssetsByEmployee(_ context.Context, employeeID string) ([]domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.assets, employeeID), nil
}

func (s *recordStore) CreateAsset(ctx context.Context, rec domain.Asset) (domain.Asset, error) {
	return createChild[domain.Asset](ctx, s, assetsCol, rec)
}

func (s *recordStore) UpdateAsset(ctx context.Context, id string, patch domain.Patch) (domain.Asset, error) {
	return updateChild[domain.Asset](ctx, s, assetsCol, "asset", id, patch)
}

func (s *recordStore) DeleteAsset(ctx context.Context, id string) error {
	return deleteChild(ctx, s, assetsCol, id)
}

func (s *recordStore) NotesByEmployee(_ context.Context, employeeID string) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.notes, employeeID), nil
}

func (s *recordStore) CreateNote(ctx context.Context, rec domain.Note) (domain.Note, error) {
	return createChild[domain.Note](ctx, s, notesCol, rec)
}

func (s *recordStore) UpdateNote(ctx context.Context, id string, patch domain.Patch) (domain.Note, error) {
	return updateChild[domain.Note](ctx, s, notesCol, "note", id, patch)
}

func (s *recordStore) DeleteNote(ctx context.Context, id string) error {
	return deleteChild(ctx, s, notesCol, id)
}

func (s *recordStore) EmergencyContactsByEmployee(_ context.Context, employeeID string) ([]domain.EmergencyContact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.emergencyContacts, employeeID), nil
}

func (s *recordStore) CreateEmergencyContact(ctx context.Context, rec domain.EmergencyContact) (domain.EmergencyContact, error) {
	return createChild[domain.EmergencyContact](ctx, s, emergencyContactsCol, rec)
}

func (s *recordStore) UpdateEmergencyContact(ctx context.Context, id string, patch domain.Patch) (domain.EmergencyContact, error) {
	return updateChild[domain.EmergencyContact](ctx, s, emergencyContactsCol, "emergency contact", id, patch)
}

func (s *recordStore) DeleteEmergencyContact(ctx context.Context, id string) error {
	return deleteChild(ctx, s, emergencyContactsCol, id)
}

func (s *recordStore) OnboardingByEmployee(_ context.Context, employeeID string) ([]domain.Onboarding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.onboarding, employeeID), nil
}

func (s *recordStore) CreateOnboarding(ctx context.Context, rec domain.Onboarding) (domain.Onboarding, error) {
	return createChild[domain.Onboarding](ctx, s, onboardingCol, rec)
}

func (s *recordStore) UpdateOnboarding(ctx context.Context, id string, patch domain.Patch) (domain.Onboarding, error) {
	return updateChild[domain.Onboarding](ctx, s, onboardingCol, "onboarding task", id, patch)
}

func (s *recordStore) DeleteOnboarding(ctx context.Context, id string) error {
	return deleteChild(ctx, s, onboardingCol, id)
}

func (s *recordStore) OffboardingByEmployee(_ context.Context, employeeID string) ([]domain.Offboarding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return listByEmployee(s.state.offboarding, employeeID), nil
}

func (s *recordStore) CreateOffboarding(ctx context.Context, rec domain.Offboarding) (domain.Offboarding, error) {
	return createChild[domain.Offboarding](ctx, s, offboardingCol, rec)
}

func (s *recordStore) UpdateOffboarding(ctx context.Context, id string, patch domain.Patch) (domain.Offboarding, error) {
	return updateChild[domain.Offboarding](ctx, s, offboardingCol, "offboarding task", id, patch)
}

func (s *recordStore) DeleteOffboarding(ctx context.Context, id string) error {
	return deleteChild(ctx, s, offboardingCol, id)
}

// Selectors handed to the generic CRUD core; resolved under the store lock.

func educationCol(st *recordState) map[string]domain.Education { return st.education }

func employmentHistoryCol(st *recordState) map[string]domain.EmploymentHistory {
	return st.employmentHistory
}

func compensationCol(st *recordState) map[string]domain.Compensation { return st.compensation }

func bonusesCol(st *recordState) map[string]domain.Bonus { return st.bonuses }

func timeOffCol(st *recordState) map[string]domain.TimeOff { return st.timeOff }

func documentsCol(st *recordState) map[string]domain.Document { return st.documents }

func benefitsCol(st *recordState) map[string]domain.Benefit { return st.benefits }

func dependentsCol(st *recordState) map[string]domain.Dependent { return st.dependents }

func trainingCol(st *recordState) map[string]domain.Training { return st.training }

func assetsCol(st *recordState) map[string]domain.Asset { return st.assets }

func notesCol(st *recordState) map[string]domain.Note { return st.notes }

func emergencyContactsCol(st *recordState) map[string]domain.EmergencyContact {
	return st.emergencyContacts
}

func onboardingCol(st *recordState) map[string]domain.Onboarding { return st.onboarding }

func offboardingCol(st *recordState) map[string]domain.Offboarding { return st.offboarding }
