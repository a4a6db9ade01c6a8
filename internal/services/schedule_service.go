package services

import (
	"errors"
	"fmt"
	"sync"

	"staff_scheduler_backend/internal/models"
	"staff_scheduler_backend/internal/repositories"
	"staff_scheduler_backend/internal/timeutil"
	"staff_scheduler_backend/internal/validation"
)

// --- Custom Service Errors for Scheduling ---
var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrShiftNotFound = errors.New("shift not found")
	ErrRoleMismatch  = errors.New("role mismatch: cannot assign")
	ErrShiftOverlap  = errors.New("shift overlaps an existing assignment")
)

// --- ScheduleService Interface ---
type ScheduleService interface {
	// StaffMember methods
	CreateStaffMember(req validation.StaffInput) (*models.StaffMember, error)
	GetStaffMemberByID(staffID string) (*models.StaffMember, error)
	GetStaffMembers() ([]models.StaffMember, error)
	UpdateStaffMember(staffID string, req validation.StaffInput) (*models.StaffMember, error)

	// Shift methods
	CreateShift(req validation.ShiftInput) (*models.Shift, error)
	GetShiftByID(shiftID string) (*models.Shift, error)
	GetShifts() ([]models.Shift, error)

	// AssignShift binds a staff member to a shift, enforcing role match and
	// the no-double-booking rule.
	AssignShift(shiftID, staffID string) (*models.Shift, error)
}

// --- scheduleService Implementation ---
type scheduleService struct {
	repo repositories.ScheduleRepository

	// assignMu serializes the read-check-write sequence of AssignShift so two
	// concurrent assignments cannot both pass the conflict check before
	// either writes. Single-process scope; matches the request-per-call model
	// this service runs under.
	assignMu sync.Mutex
}

// NewScheduleService creates a new instance of ScheduleService.
func NewScheduleService(repo repositories.ScheduleRepository) ScheduleService {
	return &scheduleService{repo: repo}
}

// --- StaffMember Method Implementations ---

func (s *scheduleService) CreateStaffMember(req validation.StaffInput) (*models.StaffMember, error) {
	payload, verr := validation.ValidateStaff(req)
	if verr != nil {
		return nil, verr
	}

	staff := &models.StaffMember{
		Name:  payload.Name,
		Role:  payload.Role,
		Phone: payload.Phone,
	}
	created, err := s.repo.CreateStaffMember(staff)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member in repository: %w", err)
	}
	return created, nil
}

func (s *scheduleService) GetStaffMemberByID(staffID string) (*models.StaffMember, error) {
	staff, err := s.repo.GetStaffMemberByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member by ID: %w", err)
	}
	return staff, nil
}

func (s *scheduleService) GetStaffMembers() ([]models.StaffMember, error) {
	staff, err := s.repo.GetStaffMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to get staff members: %w", err)
	}
	return staff, nil
}

// UpdateStaffMember performs an administrative update: the full payload is
// re-validated and the stored record replaced, keeping id and creation time.
func (s *scheduleService) UpdateStaffMember(staffID string, req validation.StaffInput) (*models.StaffMember, error) {
	staff, err := s.repo.GetStaffMemberByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff member for update: %w", err)
	}

	payload, verr := validation.ValidateStaff(req)
	if verr != nil {
		return nil, verr
	}

	staff.Name = payload.Name
	staff.Role = payload.Role
	staff.Phone = payload.Phone

	updated, err := s.repo.UpdateStaffMember(staff)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to update staff member in repository: %w", err)
	}
	return updated, nil
}

// --- Shift Method Implementations ---

func (s *scheduleService) CreateShift(req validation.ShiftInput) (*models.Shift, error) {
	payload, verr := validation.ValidateShift(req)
	if verr != nil {
		return nil, verr
	}

	// New shifts are always unfilled.
	shift := &models.Shift{
		Day:             payload.Day,
		Start:           payload.Start,
		End:             payload.End,
		Role:            payload.Role,
		AssignedStaffID: nil,
	}
	created, err := s.repo.CreateShift(shift)
	if err != nil {
		return nil, fmt.Errorf("failed to create shift in repository: %w", err)
	}
	return created, nil
}

func (s *scheduleService) GetShiftByID(shiftID string) (*models.Shift, error) {
	shift, err := s.repo.GetShiftByID(shiftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift by ID: %w", err)
	}
	return shift, nil
}

func (s *scheduleService) GetShifts() ([]models.Shift, error) {
	shifts, err := s.repo.GetShifts()
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	return shifts, nil
}

// AssignShift enforces the two business rules before writing anything:
// the staff member's role must match the shift's required role, and the
// staff member must not already hold an overlapping shift on the same day.
// The conflict query excludes the target shift itself, so re-assigning the
// same pair never trips a false self-conflict. All checks are read-only;
// the single write happens only after every rule passes.
func (s *scheduleService) AssignShift(shiftID, staffID string) (*models.Shift, error) {
	s.assignMu.Lock()
	defer s.assignMu.Unlock()

	shift, err := s.repo.GetShiftByID(shiftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to load shift for assignment: %w", err)
	}

	staff, err := s.repo.GetStaffMemberByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to load staff member for assignment: %w", err)
	}

	if shift.Role != staff.Role {
		return nil, ErrRoleMismatch
	}

	existing, err := s.repo.FindAssignedShifts(staff.ID, shift.Day, shift.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing assignments: %w", err)
	}
	for i := range existing {
		if timeutil.Overlaps(existing[i].Start, existing[i].End, shift.Start, shift.End) {
			return nil, ErrShiftOverlap
		}
	}

	shift.AssignedStaffID = &staff.ID
	stored, err := s.repo.UpsertShift(shift)
	if err != nil {
		return nil, fmt.Errorf("failed to persist assignment: %w", err)
	}
	return stored, nil
}
