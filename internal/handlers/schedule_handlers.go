package handlers

import (
	"errors"
	"net/http"

	"staff_scheduler_backend/internal/services"
	"staff_scheduler_backend/internal/validation"
	"staff_scheduler_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler holds the schedule service.
type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(ss services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss}
}

// respondServiceError maps service-layer errors onto the HTTP contract:
// validation failures and rule violations are 422, missing records are 404,
// anything else is a 500 that never leaks storage details to the client.
func respondServiceError(c *gin.Context, err error, logContext string) {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondWithError(c, utils.NewValidationAPIError(verr.Message, verr.Fields))
	case errors.Is(err, services.ErrShiftNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, "Shift not found"))
	case errors.Is(err, services.ErrStaffNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, "Staff not found"))
	case errors.Is(err, services.ErrRoleMismatch):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnprocessableEntity, "Role mismatch: cannot assign"))
	case errors.Is(err, services.ErrShiftOverlap):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnprocessableEntity, "Shift overlaps an existing assignment"))
	default:
		utils.LogError(err, logContext)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, "Internal server error"))
	}
}

// --- StaffMember Handler Methods ---

// CreateStaffMember handles the creation of a new staff member.
func (h *ScheduleHandler) CreateStaffMember(c *gin.Context) {
	var req validation.StaffInput
	// An unreadable body binds to zero values; validation then reports the
	// missing fields, keeping one error shape for every bad request.
	_ = c.ShouldBindJSON(&req)

	staff, err := h.scheduleService.CreateStaffMember(req)
	if err != nil {
		respondServiceError(c, err, "CreateStaffMember: service error")
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// GetStaffMembers handles fetching all staff members, ordered by name.
func (h *ScheduleHandler) GetStaffMembers(c *gin.Context) {
	staff, err := h.scheduleService.GetStaffMembers()
	if err != nil {
		respondServiceError(c, err, "GetStaffMembers: service error")
		return
	}
	c.JSON(http.StatusOK, staff)
}

// GetStaffMemberByID handles fetching a single staff member by ID.
func (h *ScheduleHandler) GetStaffMemberByID(c *gin.Context) {
	staff, err := h.scheduleService.GetStaffMemberByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "GetStaffMemberByID: service error")
		return
	}
	c.JSON(http.StatusOK, staff)
}

// UpdateStaffMember handles an administrative update of a staff member.
func (h *ScheduleHandler) UpdateStaffMember(c *gin.Context) {
	var req validation.StaffInput
	_ = c.ShouldBindJSON(&req)

	staff, err := h.scheduleService.UpdateStaffMember(c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "UpdateStaffMember: service error")
		return
	}
	c.JSON(http.StatusOK, staff)
}

// --- Shift Handler Methods ---

// CreateShift handles the creation of a new, unassigned shift.
func (h *ScheduleHandler) CreateShift(c *gin.Context) {
	var req validation.ShiftInput
	_ = c.ShouldBindJSON(&req)

	shift, err := h.scheduleService.CreateShift(req)
	if err != nil {
		respondServiceError(c, err, "CreateShift: service error")
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// GetShifts handles fetching all shifts, ordered by day then start.
func (h *ScheduleHandler) GetShifts(c *gin.Context) {
	shifts, err := h.scheduleService.GetShifts()
	if err != nil {
		respondServiceError(c, err, "GetShifts: service error")
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// GetShiftByID handles fetching a single shift by ID.
func (h *ScheduleHandler) GetShiftByID(c *gin.Context) {
	shift, err := h.scheduleService.GetShiftByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "GetShiftByID: service error")
		return
	}
	c.JSON(http.StatusOK, shift)
}

// AssignShift handles binding a staff member to a shift.
func (h *ScheduleHandler) AssignShift(c *gin.Context) {
	var req validation.AssignInput
	_ = c.ShouldBindJSON(&req)

	staffID, verr := validation.ValidateAssignRequest(req)
	if verr != nil {
		utils.RespondWithError(c, utils.NewValidationAPIError(verr.Message, verr.Fields))
		return
	}

	shift, err := h.scheduleService.AssignShift(c.Param("id"), staffID)
	if err != nil {
		respondServiceError(c, err, "AssignShift: service error")
		return
	}
	c.JSON(http.StatusOK, shift)
}
