package domain

import "time"

// Employee is the aggregate root. Every child record references it by EmployeeID.
type Employee struct {
	ID          string      `json:"id"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	JobTitle    string      `json:"jobTitle,omitempty"`
	Department  string      `json:"department,omitempty"`
	Location    string      `json:"location,omitempty"`
	HireDate    string      `json:"hireDate,omitempty"`
	ProfileData ProfileData `json:"profileData"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ProfileData groups the nested profile sub-records. Patches merge per sub-object
// so updating one group never clobbers its siblings.
type ProfileData struct {
	Personal PersonalInfo `json:"personal"`
	Address  AddressInfo  `json:"address"`
	Contact  ContactInfo  `json:"contact"`
	Social   SocialInfo   `json:"social"`
	Visa     VisaInfo     `json:"visa"`
}

type PersonalInfo struct {
	PreferredName string `json:"preferredName,omitempty"`
	BirthDate     string `json:"birthDate,omitempty"`
	Gender        string `json:"gender,omitempty"`
	MaritalStatus string `json:"maritalStatus,omitempty"`
	Nationality   string `json:"nationality,omitempty"`
}

type AddressInfo struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type ContactInfo struct {
	WorkPhone     string `json:"workPhone,omitempty"`
	HomePhone     string `json:"homePhone,omitempty"`
	PersonalEmail string `json:"personalEmail,omitempty"`
}

type SocialInfo struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type VisaInfo struct {
	Status     string `json:"status,omitempty"`
	Type       string `json:"type,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// RecordRef carries the identity shared by every child record type.
type RecordRef struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
}

func (r RecordRef) RecordID() string { return r.ID }

func (r RecordRef) OwnerID() string { return r.EmployeeID }

func (r *RecordRef) SetRecordID(id string) { r.ID = id }

func (r *RecordRef) SetOwnerID(id string) { r.EmployeeID = id }

// ChildRecord is implemented by all fourteen child record types via RecordRef.
type ChildRecord interface {
	RecordID() string
	OwnerID() string
}

// Education represents a degree or certification entry.
type Education struct {
	RecordRef
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	StartYear    int    `json:"startYear,omitempty"`
	EndYear      int    `json:"endYear,omitempty"`
	GPA          string `json:"gpa,omitempty"`
}

// EmploymentHistory represents a prior position held elsewhere.
type EmploymentHistory struct {
	RecordRef
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// Compensation represents a pay rate effective from a given date.
type Compensation struct {
	RecordRef
	EffectiveDate string  `json:"effectiveDate"`
	PayRate       float64 `json:"payRate"`
	PayType       string  `json:"payType"`
	Currency      string  `json:"currency,omitempty"`
	Reason        string  `json:"reason,omitempty"`
}

type Bonus struct {
	RecordRef
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason,omitempty"`
}

type TimeOff struct {
	RecordRef
	Type      string  `json:"type"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate,omitempty"`
	Days      float64 `json:"days,omitempty"`
	Status    string  `json:"status"`
	Notes     string  `json:"notes,omitempty"`
}

type Document struct {
	RecordRef
	Name       string `json:"name"`
	Category   string `json:"category"`
	FileType   string `json:"fileType,omitempty"`
	UploadDate string `json:"uploadDate,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type Benefit struct {
	RecordRef
	Plan           string `json:"plan"`
	Type           string `json:"type"`
	Status         string `json:"status"`
	EnrollmentDate string `json:"enrollmentDate,omitempty"`
	Coverage       string `json:"coverage,omitempty"`
}

type Dependent struct {
	RecordRef
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	BirthDate    string `json:"birthDate,omitempty"`
	Gender       string `json:"gender,omitempty"`
}

type Training struct {
	RecordRef
	Name          string `json:"name"`
	Category      string `json:"category"`
	Status        string `json:"status"`
	DueDate       string `json:"dueDate,omitempty"`
	CompletedDate string `json:"completedDate,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type Asset struct {
	RecordRef
	Name         string `json:"name"`
	Category     string `json:"category,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
	AssignedDate string `json:"assignedDate,omitempty"`
	ReturnedDate string `json:"returnedDate,omitempty"`
}

type Note struct {
	RecordRef
	Title  string `json:"title"`
	Body   string `json:"body,omitempty"`
	Author string `json:"author,omitempty"`
	Date   string `json:"date,omitempty"`
}

type EmergencyContact struct {
	RecordRef
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
}

// Onboarding is a single onboarding checklist task.
type Onboarding struct {
	RecordRef
	Task          string `json:"task"`
	Status        string `json:"status"`
	DueDate       string `json:"dueDate,omitempty"`
	CompletedDate string `json:"completedDate,omitempty"`
}

// Offboarding is a single offboarding checklist task.
type Offboarding struct {
	RecordRef
	Task          string `json:"task"`
	Status        string `json:"status"`
	DueDate       string `json:"dueDate,omitempty"`
	CompletedDate string `json:"completedDate,omitempty"`
}
