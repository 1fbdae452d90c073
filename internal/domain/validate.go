package domain

import (
	"sort"
	"strings"
)

// Validators check a fully populated record. Creates validate the bound payload;
// updates validate the record after the patch has been merged, so a patch can never
// leave a record in a state a create would have rejected.

func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		// Deterministic message order regardless of map iteration.
		sort.Strings(missing)
		return Invalid("missing required field(s): %s", strings.Join(missing, ", "))
	}
	return nil
}

func (e Employee) Validate() error {
	if err := requireFields(map[string]string{
		"firstName": e.FirstName,
		"lastName":  e.LastName,
		"email":     e.Email,
	}); err != nil {
		return err
	}
	if !strings.Contains(e.Email, "@") {
		return Invalid("email %q is not a valid address", e.Email)
	}
	return nil
}

func (r Education) Validate() error {
	return requireFields(map[string]string{
		"employeeId": r.EmployeeID,
		"school":     r.School,
		"degree":     r.Degree,
	})
}

func (r EmploymentHistory) Validate() error {
	return requireFields(map[string]string{
		"employeeId": r.EmployeeID,
		"company":    r.Company,
		"title":      r.Title,
	})
}

func (r Compensation) Validate() error {
	if err := requireFields(map[string]string{
		"employeeId":    r.EmployeeID,
		"effectiveDate": r.EffectiveDate,
		"payType":       r.PayType,
	}); err != nil {
		return err
	}
	switch r.PayType {
	case "Salary", "Hourly":
	default:
		return Invalid("payType %q must be Salary or Hourly", r.PayType)
	}
	if r.PayRate < 0 {
		return Invalid("payRate must not be negative")
	}
	return nil
}

func (r Bonus) Validate() error {
	if err := requireFields(map[string]string{
		"employeeId": r.EmployeeID,
		"date":       r.Date,
	}); err != nil {
		return err
	}
	if r.Amount < 0 {
		return Invalid("amount must not be negative")
	}
	return nil
}

func (r TimeOff) Validate() error {
	return requireFields(map[string]string{
		"employeeId": r.EmployeeID,
		"type":       r.Type,
		"startDate":  r.StartDate,
		"status":     r.Status,
	})
}

func (r Document) Validate() error {
	return requireFields(map[string]string{
		"employeeId": r.EmployeeID,
		"name":       r.Name,
		"category":   r.Category,
	})
}

func (r Benefit) Validate() error {
	return requireFields(map[string]string{
		"employeeId": r.EmployeeID,
		"plan":       r.Plan,
		"type":       r.Type,
		"status":     r.Status,
	})
}

func (r Dependent) Validate() error {
	return requireFields(map[string]string{
		"employeeId":   r.EmployeeID,
		"name":         r.Name,
		"relationship": r.Relationship,
	})
}

func (r Training) Validate() error {
	return requireFields(map[string]string{
		"employeeId": r.EmployeeID,
		"name":       r.Name,
		"category":   r.Category,
		"status":     r.Status,
	})
}

func (r Asset) Validate() error {
	return requireFields(map[string]string{
		"employeeId": r.EmployeeID,
		"name":       r.Name,
	})
}

func (r Note) Validate() error {
	return requireFields(map[string]string{
		"employeeId": r.EmployeeID,
		"title":      r.Title,
	})
}

func (r EmergencyContact) Validate() error {
	return requireFields(map[string]string{
		"employeeId":   r.EmployeeID,
		"name":         r.Name,
		"relationship": r.Relationship,
		"phone":        r.Phone,
	})
}

func (r Onboarding) Validate() error {
	return requireFields(map[string]string{
		"employeeId": r.EmployeeID,
		"task":       r.Task,
		"status":     r.Status,
	})
}

func (r Offboarding) Validate() error {
	return requireFields(map[string]string{
		"employeeId": r.EmployeeID,
		"task":       r.Task,
		"status":     r.Status,
	})
}
