package repositories

import (
	"encoding/hex"

	"staff_scheduler_backend/internal/models"

	"github.com/google/uuid"
)

// ScheduleRepository is the persistence contract shared by the file-backed and
// PostgreSQL-backed stores. Implementations own the persisted state and return
// value copies; assignment-engine callers never hold shared mutable references.
//
// List methods return staff ordered by name and shifts ordered by day then
// start, so scans over them are deterministic.
type ScheduleRepository interface {
	// StaffMember methods
	CreateStaffMember(staff *models.StaffMember) (*models.StaffMember, error)
	GetStaffMemberByID(id string) (*models.StaffMember, error)
	GetStaffMembers() ([]models.StaffMember, error)
	UpdateStaffMember(staff *models.StaffMember) (*models.StaffMember, error)

	// Shift methods
	CreateShift(shift *models.Shift) (*models.Shift, error)
	GetShiftByID(id string) (*models.Shift, error)
	GetShifts() ([]models.Shift, error)
	UpsertShift(shift *models.Shift) (*models.Shift, error)

	// FindAssignedShifts returns the shifts currently assigned to staffID on
	// the given day, excluding excludeShiftID. The assignment engine applies
	// the overlap predicate itself so both backends give identical results.
	FindAssignedShifts(staffID, day, excludeShiftID string) ([]models.Shift, error)
}

// newID generates a 32-hex-character identifier from a random UUID, giving
// 128 bits from a cryptographically random source.
func newID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
