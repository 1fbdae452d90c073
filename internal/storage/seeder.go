package storage

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/peoplecore/employee-records/internal/domain"
)

// DataSeeder fills a store with randomized employees and child records through
// the Storage contract. Used by cmd/seeder to produce demo datasets.
type DataSeeder struct {
	store domain.Storage
	rng   *rand.Rand
}

func NewDataSeeder(store domain.Storage) *DataSeeder {
	return &DataSeeder{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var (
	firstNames  = []string{"Avery", "Jordan", "Sam", "Riley", "Casey", "Morgan", "Quinn", "Taylor", "Drew", "Jamie"}
	lastNames   = []string{"Chen", "Patel", "Garcia", "Kim", "Nguyen", "Okafor", "Silva", "Novak", "Haddad", "Berg"}
	departments = []string{"Engineering", "Sales", "People Ops", "Finance", "Support", "Marketing"}
	jobTitles   = []string{"Engineer", "Account Executive", "HR Generalist", "Analyst", "Support Specialist", "Designer"}
	locations   = []string{"Remote", "Portland", "Austin", "Berlin", "Singapore"}
	schools     = []string{"State University", "Tech Institute", "Community College", "National University"}
	degrees     = []string{"BSc", "BA", "MSc", "MBA"}
	companies   = []string{"Acme Corp", "Globex", "Initech", "Umbrella Ltd", "Stark Industries"}
	courses     = []string{"Safety Basics", "Security Awareness", "Anti-Harassment", "First Aid", "Data Privacy"}
	plans       = []string{"Gold Health", "Silver Health", "Dental Plus", "Vision Basic", "401k Match"}
	assetNames  = []string{"Laptop", "Monitor", "Keyboard", "Phone", "Badge"}
	tasks       = []string{"Provision accounts", "Assign buddy", "Collect equipment", "Revoke access", "Schedule orientation"}
	statuses    = []string{"Pending", "In Progress", "Completed"}
)

func (ds *DataSeeder) pick(items []string) string {
	return items[ds.rng.Intn(len(items))]
}

func (ds *DataSeeder) date(yearFrom, yearTo int) string {
	year := yearFrom + ds.rng.Intn(yearTo-yearFrom+1)
	return fmt.Sprintf("%04d-%02d-%02d", year, 1+ds.rng.Intn(12), 1+ds.rng.Intn(28))
}

// SeedData creates numEmployees employees, each with up to perCollection records
// in every child collection.
func (ds *DataSeeder) SeedData(ctx context.Context, numEmployees, perCollection int) error {
	start := time.Now()
	fmt.Println("Seeding employee records...")

	total := 0
	for i := 0; i < numEmployees; i++ {
		first, last := ds.pick(firstNames), ds.pick(lastNames)
		emp, err := ds.store.CreateEmployee(ctx, domain.Employee{
			FirstName:  first,
			LastName:   last,
			Email:      fmt.Sprintf("%s.%s%d@example.com", first, last, i),
			JobTitle:   ds.pick(jobTitles),
			Department: ds.pick(departments),
			Location:   ds.pick(locations),
			HireDate:   ds.date(2015, 2024),
		})
		if err != nil {
			return fmt.Errorf("create employee: %w", err)
		}

		n, err := ds.seedChildren(ctx, emp.ID, perCollection)
		if err != nil {
			return err
		}
		total += n
	}

	fmt.Printf("Done in %v: %d employees, %d child records\n", time.Since(start).Round(time.Millisecond), numEmployees, total)
	return nil
}

func (ds *DataSeeder) seedChildren(ctx context.Context, employeeID string, perCollection int) (int, error) {
	ref := func() domain.RecordRef { return domain.RecordRef{EmployeeID: employeeID} }
	count := func() int { return 1 + ds.rng.Intn(perCollection) }
	total := 0

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateEducation(ctx, domain.Education{
			RecordRef: ref(),
			School:    ds.pick(schools),
			Degree:    ds.pick(degrees),
			StartYear: 2008 + ds.rng.Intn(8),
			EndYear:   2016 + ds.rng.Intn(6),
		}); err != nil {
			return total, fmt.Errorf("seed education: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateEmploymentHistory(ctx, domain.EmploymentHistory{
			RecordRef: ref(),
			Company:   ds.pick(companies),
			Title:     ds.pick(jobTitles),
			StartDate: ds.date(2010, 2018),
			EndDate:   ds.date(2019, 2022),
		}); err != nil {
			return total, fmt.Errorf("seed employment history: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateCompensation(ctx, domain.Compensation{
			RecordRef:     ref(),
			EffectiveDate: ds.date(2020, 2025),
			PayRate:       60000 + float64(ds.rng.Intn(90))*1000,
			PayType:       "Salary",
			Currency:      "USD",
		}); err != nil {
			return total, fmt.Errorf("seed compensation: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateBonus(ctx, domain.Bonus{
			RecordRef: ref(),
			Date:      ds.date(2022, 2025),
			Amount:    500 + float64(ds.rng.Intn(50))*100,
			Reason:    "Performance",
		}); err != nil {
			return total, fmt.Errorf("seed bonus: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateTimeOff(ctx, domain.TimeOff{
			RecordRef: ref(),
			Type:      "Vacation",
			StartDate: ds.date(2024, 2025),
			Days:      float64(1 + ds.rng.Intn(10)),
			Status:    ds.pick(statuses),
		}); err != nil {
			return total, fmt.Errorf("seed time off: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateDocument(ctx, domain.Document{
			RecordRef:  ref(),
			Name:       fmt.Sprintf("Contract-%d.pdf", i+1),
			Category:   "Contract",
			FileType:   "pdf",
			UploadDate: ds.date(2022, 2025),
		}); err != nil {
			return total, fmt.Errorf("seed document: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateBenefit(ctx, domain.Benefit{
			RecordRef:      ref(),
			Plan:           ds.pick(plans),
			Type:           "Health",
			Status:         "Active",
			EnrollmentDate: ds.date(2021, 2024),
		}); err != nil {
			return total, fmt.Errorf("seed benefit: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateDependent(ctx, domain.Dependent{
			RecordRef:    ref(),
			Name:         ds.pick(firstNames) + " " + ds.pick(lastNames),
			Relationship: "Child",
			BirthDate:    ds.date(2010, 2020),
		}); err != nil {
			return total, fmt.Errorf("seed dependent: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateTraining(ctx, domain.Training{
			RecordRef: ref(),
			Name:      ds.pick(courses),
			Category:  "Compliance",
			Status:    ds.pick(statuses),
			DueDate:   ds.date(2025, 2026),
		}); err != nil {
			return total, fmt.Errorf("seed training: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateAsset(ctx, domain.Asset{
			RecordRef:    ref(),
			Name:         ds.pick(assetNames),
			Category:     "Hardware",
			SerialNumber: fmt.Sprintf("SN-%06d", ds.rng.Intn(1000000)),
			AssignedDate: ds.date(2022, 2025),
		}); err != nil {
			return total, fmt.Errorf("seed asset: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateNote(ctx, domain.Note{
			RecordRef: ref(),
			Title:     "1:1 notes",
			Body:      "Follow up next cycle.",
			Author:    ds.pick(firstNames),
			Date:      ds.date(2024, 2025),
		}); err != nil {
			return total, fmt.Errorf("seed note: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateEmergencyContact(ctx, domain.EmergencyContact{
			RecordRef:    ref(),
			Name:         ds.pick(firstNames) + " " + ds.pick(lastNames),
			Relationship: "Partner",
			Phone:        fmt.Sprintf("555-%04d", ds.rng.Intn(10000)),
		}); err != nil {
			return total, fmt.Errorf("seed emergency contact: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateOnboarding(ctx, domain.Onboarding{
			RecordRef: ref(),
			Task:      ds.pick(tasks),
			Status:    ds.pick(statuses),
			DueDate:   ds.date(2025, 2025),
		}); err != nil {
			return total, fmt.Errorf("seed onboarding: %w", err)
		}
		total++
	}

	for i, n := 0, count(); i < n; i++ {
		if _, err := ds.store.CreateOffboarding(ctx, domain.Offboarding{
			RecordRef: ref(),
			Task:      ds.pick(tasks),
			Status:    "Pending",
			DueDate:   ds.date(2025, 2026),
		}); err != nil {
			return total, fmt.Errorf("seed offboarding: %w", err)
		}
		total++
	}

	return total, nil
}

// ClearData deletes every employee and the child records reachable from them.
// Orphaned children (whose employee is already gone) are left in place.
func (ds *DataSeeder) ClearData(ctx context.Context) error {
	fmt.Println("Clearing employee records...")

	employees, err := ds.store.ListEmployees(ctx)
	if err != nil {
		return err
	}
	for _, emp := range employees {
		if err := ds.clearChildren(ctx, emp.ID); err != nil {
			return err
		}
		if err := ds.store.DeleteEmployee(ctx, emp.ID); err != nil {
			return err
		}
	}

	fmt.Printf("Cleared %d employees\n", len(employees))
	return nil
}

func (ds *DataSeeder) clearChildren(ctx context.Context, employeeID string) error {
	type lister struct {
		ids    func() ([]string, error)
		remove func(string) error
	}

	collections := []lister{
		{ids: func() ([]string, error) { return recordIDs(ds.store.EducationByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteEducation(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.EmploymentHistoryByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteEmploymentHistory(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.CompensationByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteCompensation(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.BonusesByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteBonus(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.TimeOffByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteTimeOff(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.DocumentsByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteDocument(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.BenefitsByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteBenefit(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.DependentsByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteDependent(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.TrainingByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteTraining(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.AssetsByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteAsset(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.NotesByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteNote(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.EmergencyContactsByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteEmergencyContact(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.OnboardingByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteOnboarding(ctx, id) }},
		{ids: func() ([]string, error) { return recordIDs(ds.store.OffboardingByEmployee(ctx, employeeID)) },
			remove: func(id string) error { return ds.store.DeleteOffboarding(ctx, id) }},
	}

	for _, col := range collections {
		ids, err := col.ids()
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err := col.remove(id); err != nil {
				return err
			}
		}
	}
	return nil
}

func recordIDs[T domain.ChildRecord](records []T, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.RecordID())
	}
	return ids, nil
}

// Presets mirror the seeder CLI sizes.
type SeedPreset string

const (
	PresetSmall  SeedPreset = "small"
	PresetMedium SeedPreset = "medium"
	PresetLarge  SeedPreset = "large"
)

// GetPresetConfig returns (employees, max records per collection) for a preset.
func GetPresetConfig(preset SeedPreset) (numEmployees, perCollection int) {
	switch preset {
	case PresetSmall:
		return 3, 2
	case PresetMedium:
		return 10, 3
	case PresetLarge:
		return 50, 5
	default:
		return 10, 3
	}
}
