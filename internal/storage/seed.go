package storage

import (
	"time"

	"github.com/peoplecore/employee-records/internal/domain"
)

// seedSnapshot builds the sample dataset adopted when no durable state exists:
// one employee plus a few training and bonus records.
func seedSnapshot(now time.Time) Snapshot {
	emp := domain.Employee{
		ID:         "emp-1",
		FirstName:  "Avery",
		LastName:   "Chen",
		Email:      "avery.chen@example.com",
		Phone:      "555-0142",
		JobTitle:   "Software Engineer",
		Department: "Engineering",
		Location:   "Remote",
		HireDate:   "2022-03-14",
		ProfileData: domain.ProfileData{
			Personal: domain.PersonalInfo{
				PreferredName: "Avery",
				BirthDate:     "1993-07-22",
				Nationality:   "US",
			},
			Address: domain.AddressInfo{
				Street:     "18 Mercer St",
				City:       "Portland",
				State:      "OR",
				PostalCode: "97201",
				Country:    "US",
			},
			Contact: domain.ContactInfo{
				WorkPhone:     "555-0142",
				PersonalEmail: "avery@example.com",
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	snapshot := Snapshot{
		Employees: map[string]domain.Employee{emp.ID: emp},
		Training: map[string]domain.Training{
			"trn-1": {
				RecordRef:     domain.RecordRef{ID: "trn-1", EmployeeID: emp.ID},
				Name:          "Safety Basics",
				Category:      "General",
				Status:        "Completed",
				CompletedDate: "2024-02-10",
			},
			"trn-2": {
				RecordRef: domain.RecordRef{ID: "trn-2", EmployeeID: emp.ID},
				Name:      "Security Awareness",
				Category:  "Compliance",
				Status:    "Pending",
				DueDate:   "2025-11-30",
			},
		},
		Bonuses: map[string]domain.Bonus{
			"bon-1": {
				RecordRef: domain.RecordRef{ID: "bon-1", EmployeeID: emp.ID},
				Date:      "2024-12-15",
				Amount:    2500,
				Reason:    "Year-end performance",
			},
		},
	}
	return snapshot
}
