package validation

import (
	"regexp"
	"strings"

	"staff_scheduler_backend/internal/models"
	"staff_scheduler_backend/internal/timeutil"
)

var (
	dayPattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
	nonDigits   = regexp.MustCompile(`\D+`)
)

// ValidationError carries per-field failure messages for a single request.
// All field checks run before returning; nothing short-circuits.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StaffInput is the raw creation/update payload for a staff member.
type StaffInput struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

// StaffPayload is a normalized staff payload ready for persistence.
type StaffPayload struct {
	Name  string
	Role  string
	Phone string
}

// ShiftInput is the raw creation payload for a shift.
type ShiftInput struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
	Role  string `json:"role"`
}

// ShiftPayload is a normalized shift payload; new shifts are always unassigned.
type ShiftPayload struct {
	Day             string
	Start           string
	End             string
	Role            string
	AssignedStaffID *string
}

// AssignInput is the body of an assignment request.
type AssignInput struct {
	StaffID string `json:"staffId"`
}

// ValidateStaff normalizes and validates a staff payload. The name is trimmed
// and the phone is reduced to its digits before the length checks run. Both
// phone bounds are checked even when the first fails, so an over-long phone
// reports the upper-bound message.
func ValidateStaff(in StaffInput) (*StaffPayload, *ValidationError) {
	name := strings.TrimSpace(in.Name)
	phone := nonDigits.ReplaceAllString(in.Phone, "")

	fields := map[string]string{}
	if name == "" {
		fields["name"] = "Name is required."
	}
	if !models.ValidRole(in.Role) {
		fields["role"] = "Role must be server|cook|manager."
	}
	if len(phone) < 10 {
		fields["phone"] = "Phone number should have at least 10 digits."
	}
	if len(phone) > 15 {
		fields["phone"] = "Phone number should not exceed 15 digits."
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Message: "Validation failed", Fields: fields}
	}
	return &StaffPayload{Name: name, Role: in.Role, Phone: phone}, nil
}

// ValidateShift validates a shift payload. Day and times are format checks
// only; the day is not checked for calendar validity. The start/end ordering
// check runs only when both times are well formed.
func ValidateShift(in ShiftInput) (*ShiftPayload, *ValidationError) {
	fields := map[string]string{}
	if !dayPattern.MatchString(in.Day) {
		fields["day"] = "Use YYYY-MM-DD."
	}
	if !timePattern.MatchString(in.Start) {
		fields["start"] = "Use HH:MM."
	}
	if !timePattern.MatchString(in.End) {
		fields["end"] = "Use HH:MM."
	}
	if timePattern.MatchString(in.Start) && timePattern.MatchString(in.End) &&
		timeutil.ToMinutes(in.Start) >= timeutil.ToMinutes(in.End) {
		fields["time"] = "Start must be before end."
	}
	if !models.ValidRole(in.Role) {
		fields["role"] = "Role must be server|cook|manager."
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Message: "Validation failed", Fields: fields}
	}
	return &ShiftPayload{Day: in.Day, Start: in.Start, End: in.End, Role: in.Role}, nil
}

// ValidateAssignRequest checks the assignment body for a staff id. The error
// carries no field map, matching the single-message shape of rule errors.
func ValidateAssignRequest(in AssignInput) (string, *ValidationError) {
	if strings.TrimSpace(in.StaffID) == "" {
		return "", &ValidationError{Message: "staffId is required"}
	}
	return in.StaffID, nil
}
