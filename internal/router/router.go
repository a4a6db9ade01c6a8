package router

import (
	"net/http"

	"staff_scheduler_backend/internal/handlers"
	"staff_scheduler_backend/internal/repositories"
	"staff_scheduler_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application over the given repository
// (either storage backend satisfies the same contract).
func Setup(engine *gin.Engine, repo repositories.ScheduleRepository) {
	scheduleService := services.NewScheduleService(repo)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	apiV1 := engine.Group("/api/v1")
	SetupStaffRoutes(apiV1, scheduleHandler)
	SetupShiftRoutes(apiV1, scheduleHandler)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Not found"}})
	})
}

// SetupStaffRoutes sets up the staff routes.
func SetupStaffRoutes(apiGroup *gin.RouterGroup, scheduleHandler *handlers.ScheduleHandler) {
	staffRoutes := apiGroup.Group("/staff")
	{
		staffRoutes.POST("", scheduleHandler.CreateStaffMember)
		staffRoutes.GET("", scheduleHandler.GetStaffMembers)
		staffRoutes.GET("/:id", scheduleHandler.GetStaffMemberByID)
		staffRoutes.PUT("/:id", scheduleHandler.UpdateStaffMember)
	}
}

// SetupShiftRoutes sets up the shift routes, including assignment.
func SetupShiftRoutes(apiGroup *gin.RouterGroup, scheduleHandler *handlers.ScheduleHandler) {
	shiftRoutes := apiGroup.Group("/shifts")
	{
		shiftRoutes.POST("", scheduleHandler.CreateShift)
		shiftRoutes.GET("", scheduleHandler.GetShifts)
		shiftRoutes.GET("/:id", scheduleHandler.GetShiftByID)
		shiftRoutes.POST("/:id/assign", scheduleHandler.AssignShift)
	}
}
