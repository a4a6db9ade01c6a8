package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"staff_scheduler_backend/internal/models"
)

const (
	staffFile  = "staff.json"
	shiftsFile = "shifts.json"
)

// fileScheduleRepository stores each collection as one pretty-printed JSON
// file under a data directory. Every operation is a full read-modify-write
// under a mutex, which is plenty for the request-per-call model this service
// runs under.
type fileScheduleRepository struct {
	dir string
	mu  sync.Mutex
}

// NewFileScheduleRepository creates a flat-file store rooted at dir, creating
// the directory if needed.
func NewFileScheduleRepository(dir string) (ScheduleRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory %s: %v", ErrDatabaseError, dir, err)
	}
	return &fileScheduleRepository{dir: dir}, nil
}

func (r *fileScheduleRepository) path(name string) string {
	return filepath.Join(r.dir, name)
}

func readCollection[T any](r *fileScheduleRepository, name string) ([]T, error) {
	data, err := os.ReadFile(r.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDatabaseError, name, err)
	}
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrDatabaseError, name, err)
	}
	return rows, nil
}

func writeCollection[T any](r *fileScheduleRepository, name string, rows []T) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrDatabaseError, name, err)
	}
	if err := os.WriteFile(r.path(name), data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrDatabaseError, name, err)
	}
	return nil
}

// --- StaffMember methods ---

func (r *fileScheduleRepository) CreateStaffMember(staff *models.StaffMember) (*models.StaffMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readCollection[models.StaffMember](r, staffFile)
	if err != nil {
		return nil, err
	}

	row := *staff
	row.ID = newID()
	now := time.Now().UTC()
	row.CreatedAt = now
	row.UpdatedAt = now
	rows = append(rows, row)

	if err := writeCollection(r, staffFile, rows); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *fileScheduleRepository) GetStaffMemberByID(id string) (*models.StaffMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readCollection[models.StaffMember](r, staffFile)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].ID == id {
			row := rows[i]
			return &row, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileScheduleRepository) GetStaffMembers() ([]models.StaffMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readCollection[models.StaffMember](r, staffFile)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (r *fileScheduleRepository) UpdateStaffMember(staff *models.StaffMember) (*models.StaffMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readCollection[models.StaffMember](r, staffFile)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].ID == staff.ID {
			row := *staff
			row.CreatedAt = rows[i].CreatedAt
			row.UpdatedAt = time.Now().UTC()
			rows[i] = row
			if err := writeCollection(r, staffFile, rows); err != nil {
				return nil, err
			}
			return &row, nil
		}
	}
	return nil, ErrNotFound
}

// --- Shift methods ---

func (r *fileScheduleRepository) CreateShift(shift *models.Shift) (*models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readCollection[models.Shift](r, shiftsFile)
	if err != nil {
		return nil, err
	}

	row := *shift
	row.ID = newID()
	now := time.Now().UTC()
	row.CreatedAt = now
	row.UpdatedAt = now
	rows = append(rows, row)

	if err := writeCollection(r, shiftsFile, rows); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *fileScheduleRepository) GetShiftByID(id string) (*models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readCollection[models.Shift](r, shiftsFile)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].ID == id {
			row := rows[i]
			return &row, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fileScheduleRepository) GetShifts() ([]models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readCollection[models.Shift](r, shiftsFile)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Day != rows[j].Day {
			return rows[i].Day < rows[j].Day
		}
		return rows[i].Start < rows[j].Start
	})
	return rows, nil
}

func (r *fileScheduleRepository) UpsertShift(shift *models.Shift) (*models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readCollection[models.Shift](r, shiftsFile)
	if err != nil {
		return nil, err
	}

	row := *shift
	row.UpdatedAt = time.Now().UTC()
	found := false
	for i := range rows {
		if rows[i].ID == row.ID {
			row.CreatedAt = rows[i].CreatedAt
			rows[i] = row
			found = true
			break
		}
	}
	if !found {
		rows = append(rows, row)
	}

	if err := writeCollection(r, shiftsFile, rows); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *fileScheduleRepository) FindAssignedShifts(staffID, day, excludeShiftID string) ([]models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := readCollection[models.Shift](r, shiftsFile)
	if err != nil {
		return nil, err
	}
	matches := []models.Shift{}
	for i := range rows {
		s := rows[i]
		if s.ID == excludeShiftID || s.Day != day {
			continue
		}
		if s.AssignedStaffID != nil && *s.AssignedStaffID == staffID {
			matches = append(matches, s)
		}
	}
	return matches, nil
}
