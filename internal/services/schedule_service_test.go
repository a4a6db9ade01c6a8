package services

import (
	"testing"

	"staff_scheduler_backend/internal/models"
	"staff_scheduler_backend/internal/repositories"
	"staff_scheduler_backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) ScheduleService {
	t.Helper()
	repo, err := repositories.NewFileScheduleRepository(t.TempDir())
	require.NoError(t, err)
	return NewScheduleService(repo)
}

func createStaff(t *testing.T, svc ScheduleService, name, role string) *models.StaffMember {
	t.Helper()
	staff, err := svc.CreateStaffMember(validation.StaffInput{Name: name, Role: role, Phone: "5551234567"})
	require.NoError(t, err)
	return staff
}

func createShift(t *testing.T, svc ScheduleService, day, start, end, role string) *models.Shift {
	t.Helper()
	shift, err := svc.CreateShift(validation.ShiftInput{Day: day, Start: start, End: end, Role: role})
	require.NoError(t, err)
	return shift
}

func TestCreateStaffMemberValidates(t *testing.T) {
	svc := newTestService(t)

	staff, err := svc.CreateStaffMember(validation.StaffInput{Name: " Jane ", Role: "server", Phone: "555-123-4567"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", staff.Name)
	assert.Equal(t, "5551234567", staff.Phone)
	assert.NotEmpty(t, staff.ID)

	_, err = svc.CreateStaffMember(validation.StaffInput{Name: "", Role: "dj", Phone: "123"})
	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)

	// Nothing was persisted for the invalid payload.
	staffList, err := svc.GetStaffMembers()
	require.NoError(t, err)
	assert.Len(t, staffList, 1)
}

func TestCreateShiftStartsUnassigned(t *testing.T) {
	svc := newTestService(t)
	shift := createShift(t, svc, "2025-08-27", "10:00", "12:00", "server")
	assert.Nil(t, shift.AssignedStaffID)
	assert.NotEmpty(t, shift.ID)
}

func TestUpdateStaffMember(t *testing.T) {
	svc := newTestService(t)
	staff := createStaff(t, svc, "Jane", "server")

	updated, err := svc.UpdateStaffMember(staff.ID, validation.StaffInput{Name: "Jane Doe", Role: "manager", Phone: "555 987 6543"})
	require.NoError(t, err)
	assert.Equal(t, staff.ID, updated.ID)
	assert.Equal(t, "manager", updated.Role)
	assert.Equal(t, "5559876543", updated.Phone)

	_, err = svc.UpdateStaffMember(staff.ID, validation.StaffInput{Name: "", Role: "manager", Phone: "5559876543"})
	var verr *validation.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.UpdateStaffMember("deadbeefdeadbeefdeadbeefdeadbeef", validation.StaffInput{Name: "X", Role: "cook", Phone: "5551234567"})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestAssignShiftHappyPath(t *testing.T) {
	svc := newTestService(t)
	jane := createStaff(t, svc, "Jane", "server")
	shift := createShift(t, svc, "2025-08-27", "10:00", "12:00", "server")

	assigned, err := svc.AssignShift(shift.ID, jane.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedStaffID)
	assert.Equal(t, jane.ID, *assigned.AssignedStaffID)

	stored, err := svc.GetShiftByID(shift.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AssignedStaffID)
	assert.Equal(t, jane.ID, *stored.AssignedStaffID)
}

func TestAssignShiftNotFound(t *testing.T) {
	svc := newTestService(t)
	jane := createStaff(t, svc, "Jane", "server")
	shift := createShift(t, svc, "2025-08-27", "10:00", "12:00", "server")

	_, err := svc.AssignShift("deadbeefdeadbeefdeadbeefdeadbeef", jane.ID)
	assert.ErrorIs(t, err, ErrShiftNotFound)

	_, err = svc.AssignShift(shift.ID, "deadbeefdeadbeefdeadbeefdeadbeef")
	assert.ErrorIs(t, err, ErrStaffNotFound)

	// No mutation on either failure path.
	stored, err := svc.GetShiftByID(shift.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.AssignedStaffID)
}

func TestAssignShiftRoleMismatch(t *testing.T) {
	svc := newTestService(t)
	cook := createStaff(t, svc, "Carl", "cook")
	shift := createShift(t, svc, "2025-08-27", "10:00", "12:00", "server")

	_, err := svc.AssignShift(shift.ID, cook.ID)
	assert.ErrorIs(t, err, ErrRoleMismatch)

	stored, err := svc.GetShiftByID(shift.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.AssignedStaffID)
}

func TestAssignShiftScheduleConflict(t *testing.T) {
	svc := newTestService(t)
	jane := createStaff(t, svc, "Jane", "server")
	first := createShift(t, svc, "2025-08-27", "10:00", "12:00", "server")
	second := createShift(t, svc, "2025-08-27", "11:00", "13:00", "server")

	_, err := svc.AssignShift(first.ID, jane.ID)
	require.NoError(t, err)

	_, err = svc.AssignShift(second.ID, jane.ID)
	assert.ErrorIs(t, err, ErrShiftOverlap)

	stored, err := svc.GetShiftByID(second.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.AssignedStaffID)
}

func TestAssignShiftBackToBackSucceeds(t *testing.T) {
	svc := newTestService(t)
	jane := createStaff(t, svc, "Jane", "server")
	first := createShift(t, svc, "2025-08-27", "10:00", "12:00", "server")
	second := createShift(t, svc, "2025-08-27", "12:00", "14:00", "server")

	_, err := svc.AssignShift(first.ID, jane.ID)
	require.NoError(t, err)

	assigned, err := svc.AssignShift(second.ID, jane.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedStaffID)
	assert.Equal(t, jane.ID, *assigned.AssignedStaffID)
}

func TestAssignShiftDifferentDaysNoConflict(t *testing.T) {
	svc := newTestService(t)
	jane := createStaff(t, svc, "Jane", "server")
	first := createShift(t, svc, "2025-08-27", "10:00", "12:00", "server")
	second := createShift(t, svc, "2025-08-28", "10:00", "12:00", "server")

	_, err := svc.AssignShift(first.ID, jane.ID)
	require.NoError(t, err)
	_, err = svc.AssignShift(second.ID, jane.ID)
	require.NoError(t, err)
}

func TestAssignShiftIdempotent(t *testing.T) {
	svc := newTestService(t)
	jane := createStaff(t, svc, "Jane", "server")
	shift := createShift(t, svc, "2025-08-27", "10:00", "12:00", "server")

	_, err := svc.AssignShift(shift.ID, jane.ID)
	require.NoError(t, err)

	// The conflict query excludes the target shift, so a repeat assignment
	// must not trip a false self-conflict.
	assigned, err := svc.AssignShift(shift.ID, jane.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedStaffID)
	assert.Equal(t, jane.ID, *assigned.AssignedStaffID)
}

func TestAssignShiftReassignmentValidatesNewStaff(t *testing.T) {
	svc := newTestService(t)
	jane := createStaff(t, svc, "Jane", "server")
	mia := createStaff(t, svc, "Mia", "server")
	shift := createShift(t, svc, "2025-08-27", "10:00", "12:00", "server")
	other := createShift(t, svc, "2025-08-27", "11:00", "13:00", "server")

	_, err := svc.AssignShift(shift.ID, jane.ID)
	require.NoError(t, err)
	_, err = svc.AssignShift(other.ID, mia.ID)
	require.NoError(t, err)

	// Reassigning the first shift to Mia must check Mia's schedule, which
	// now holds an overlapping shift.
	_, err = svc.AssignShift(shift.ID, mia.ID)
	assert.ErrorIs(t, err, ErrShiftOverlap)

	stored, err := svc.GetShiftByID(shift.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AssignedStaffID)
	assert.Equal(t, jane.ID, *stored.AssignedStaffID)
}
