package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"staff_scheduler_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

type postgresScheduleRepository struct {
	db *sql.DB
}

// NewPostgresScheduleRepository creates a PostgreSQL-backed store.
func NewPostgresScheduleRepository(db *sql.DB) ScheduleRepository {
	return &postgresScheduleRepository{db: db}
}

// --- StaffMember methods ---

func (r *postgresScheduleRepository) CreateStaffMember(staff *models.StaffMember) (*models.StaffMember, error) {
	query := `INSERT INTO staff_members (id, name, role, phone, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at, updated_at`

	row := *staff
	row.ID = newID()
	now := time.Now().UTC()
	row.CreatedAt = now
	row.UpdatedAt = now

	err := r.db.QueryRow(query,
		row.ID, row.Name, row.Role, row.Phone, row.CreatedAt, row.UpdatedAt,
	).Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, fmt.Errorf("%w: staff member id %s", ErrDuplicateKey, row.ID)
		}
		return nil, fmt.Errorf("%w: creating staff member: %v", ErrDatabaseError, err)
	}
	return &row, nil
}

func scanStaffMemberRow(row scanner) (*models.StaffMember, error) {
	var staff models.StaffMember
	err := row.Scan(&staff.ID, &staff.Name, &staff.Role, &staff.Phone, &staff.CreatedAt, &staff.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning staff member: %v", ErrDatabaseError, err)
	}
	return &staff, nil
}

func (r *postgresScheduleRepository) GetStaffMemberByID(id string) (*models.StaffMember, error) {
	query := `SELECT id, name, role, phone, created_at, updated_at
	          FROM staff_members
	          WHERE id = $1`
	return scanStaffMemberRow(r.db.QueryRow(query, id))
}

func (r *postgresScheduleRepository) GetStaffMembers() ([]models.StaffMember, error) {
	query := `SELECT id, name, role, phone, created_at, updated_at
	          FROM staff_members
	          ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying staff members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	staffMembers := []models.StaffMember{}
	for rows.Next() {
		staff, err := scanStaffMemberRow(rows)
		if err != nil {
			return nil, err
		}
		staffMembers = append(staffMembers, *staff)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating staff member rows: %v", ErrDatabaseError, err)
	}
	return staffMembers, nil
}

func (r *postgresScheduleRepository) UpdateStaffMember(staff *models.StaffMember) (*models.StaffMember, error) {
	query := `UPDATE staff_members SET name = $1, role = $2, phone = $3, updated_at = $4
	          WHERE id = $5
	          RETURNING created_at, updated_at`

	row := *staff
	row.UpdatedAt = time.Now().UTC()

	err := r.db.QueryRow(query,
		row.Name, row.Role, row.Phone, row.UpdatedAt, row.ID,
	).Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating staff member %s: %v", ErrDatabaseError, row.ID, err)
	}
	return &row, nil
}

// --- Shift methods ---

func scanShiftRow(row scanner) (*models.Shift, error) {
	var shift models.Shift
	var assigned sql.NullString
	err := row.Scan(
		&shift.ID, &shift.Day, &shift.Start, &shift.End, &shift.Role,
		&assigned, &shift.CreatedAt, &shift.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning shift: %v", ErrDatabaseError, err)
	}
	if assigned.Valid {
		shift.AssignedStaffID = &assigned.String
	}
	return &shift, nil
}

func (r *postgresScheduleRepository) CreateShift(shift *models.Shift) (*models.Shift, error) {
	query := `INSERT INTO shifts (id, day, start_time, end_time, role, assigned_staff_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING created_at, updated_at`

	row := *shift
	row.ID = newID()
	now := time.Now().UTC()
	row.CreatedAt = now
	row.UpdatedAt = now

	err := r.db.QueryRow(query,
		row.ID, row.Day, row.Start, row.End, row.Role, nullableID(row.AssignedStaffID),
		row.CreatedAt, row.UpdatedAt,
	).Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: creating shift: %v", ErrDatabaseError, err)
	}
	return &row, nil
}

func (r *postgresScheduleRepository) GetShiftByID(id string) (*models.Shift, error) {
	query := `SELECT id, day, start_time, end_time, role, assigned_staff_id, created_at, updated_at
	          FROM shifts
	          WHERE id = $1`
	return scanShiftRow(r.db.QueryRow(query, id))
}

func (r *postgresScheduleRepository) GetShifts() ([]models.Shift, error) {
	query := `SELECT id, day, start_time, end_time, role, assigned_staff_id, created_at, updated_at
	          FROM shifts
	          ORDER BY day ASC, start_time ASC`
	return r.queryShifts(query)
}

func (r *postgresScheduleRepository) UpsertShift(shift *models.Shift) (*models.Shift, error) {
	query := `INSERT INTO shifts (id, day, start_time, end_time, role, assigned_staff_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (id) DO UPDATE SET
	            day = EXCLUDED.day, start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time,
	            role = EXCLUDED.role, assigned_staff_id = EXCLUDED.assigned_staff_id,
	            updated_at = EXCLUDED.updated_at
	          RETURNING created_at, updated_at`

	row := *shift
	row.UpdatedAt = time.Now().UTC()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = row.UpdatedAt
	}

	err := r.db.QueryRow(query,
		row.ID, row.Day, row.Start, row.End, row.Role, nullableID(row.AssignedStaffID),
		row.CreatedAt, row.UpdatedAt,
	).Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return nil, fmt.Errorf("%w: assigned staff member for shift %s", ErrNotFound, row.ID)
		}
		return nil, fmt.Errorf("%w: upserting shift %s: %v", ErrDatabaseError, row.ID, err)
	}
	return &row, nil
}

func (r *postgresScheduleRepository) FindAssignedShifts(staffID, day, excludeShiftID string) ([]models.Shift, error) {
	query := `SELECT id, day, start_time, end_time, role, assigned_staff_id, created_at, updated_at
	          FROM shifts
	          WHERE assigned_staff_id = $1 AND day = $2 AND id <> $3
	          ORDER BY start_time ASC`
	return r.queryShifts(query, staffID, day, excludeShiftID)
}

func (r *postgresScheduleRepository) queryShifts(query string, args ...interface{}) ([]models.Shift, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying shifts: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	shifts := []models.Shift{}
	for rows.Next() {
		shift, err := scanShiftRow(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, *shift)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating shift rows: %v", ErrDatabaseError, err)
	}
	return shifts, nil
}

func nullableID(id *string) sql.NullString {
	if id == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *id, Valid: true}
}
