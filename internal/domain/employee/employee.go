package employee

import (
	"errors"
	"strings"
)

// ErrRosterUnavailable is returned when no roster file could be located or read.
var ErrRosterUnavailable = errors.New("roster unavailable")

// Employee is one row of the roster file. Fields are kept exactly as parsed;
// a short row leaves the trailing fields empty.
type Employee struct {
	ID    string `json:"employeeId"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Roster is the full list of employees produced by one load, in file order.
// Duplicate IDs are allowed.
type Roster []Employee

// SearchByName returns every employee whose name contains query, ignoring case.
func (r Roster) SearchByName(query string) Roster {
	q := strings.ToLower(query)
	out := make(Roster, 0)
	for _, e := range r {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}

// FindByID returns the first employee whose ID equals id exactly.
func (r Roster) FindByID(id string) (Employee, bool) {
	for _, e := range r {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// Candidate is one location the roster file may live at.
type Candidate struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}
