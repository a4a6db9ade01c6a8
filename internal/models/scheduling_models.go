package models

import "time"

// Staff roles form a closed set; shifts require exactly one of them.
const (
	RoleServer  = "server"
	RoleCook    = "cook"
	RoleManager = "manager"
)

// ValidRole reports whether role is one of the known staff roles.
func ValidRole(role string) bool {
	switch role {
	case RoleServer, RoleCook, RoleManager:
		return true
	}
	return false
}

// StaffMember represents an employee who can be assigned to shifts.
type StaffMember struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Role      string    `json:"role" db:"role"`
	Phone     string    `json:"phone" db:"phone"` // normalized digit string, 10-15 digits
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Shift represents a bounded work period on a specific day requiring a specific role.
// Start and End are HH:MM strings on the same day; overnight spans are not supported.
type Shift struct {
	ID              string    `json:"id" db:"id"`
	Day             string    `json:"day" db:"day"` // YYYY-MM-DD
	Start           string    `json:"start" db:"start_time"`
	End             string    `json:"end" db:"end_time"`
	Role            string    `json:"role" db:"role"`
	AssignedStaffID *string   `json:"assignedStaffId" db:"assigned_staff_id"` // nil = unfilled
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
