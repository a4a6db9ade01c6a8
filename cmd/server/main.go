package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"staff_scheduler_backend/internal/database"
	"staff_scheduler_backend/internal/repositories"
	"staff_scheduler_backend/internal/router"
	"staff_scheduler_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	utils.InitLogger()

	repo, backend := setupStorage()
	utils.LogInfo("Storage initialized", map[string]interface{}{"backend": backend})

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.Setup(engine, repo)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupStorage picks the persistence backend from the environment: a flat-file
// JSON store by default, or PostgreSQL when STORAGE_BACKEND=postgres.
func setupStorage() (repositories.ScheduleRepository, string) {
	backend := utils.Getenv("STORAGE_BACKEND", "file")

	switch backend {
	case "postgres":
		dbHost := utils.Getenv("DB_HOST", "localhost")
		dbPort := utils.Getenv("DB_PORT", "5432")
		dbUser := utils.Getenv("DB_USER", "scheduler_user")
		dbPassword := utils.Getenv("DB_PASSWORD", "scheduler_password")
		dbName := utils.Getenv("DB_NAME", "staff_scheduler_db")
		dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
		dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "")

		if err := database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode, dbSchemaPath); err != nil {
			utils.LogError(err, "Failed to initialize database")
			log.Fatalf("Failed to initialize database: %v", err)
		}
		return repositories.NewPostgresScheduleRepository(database.GetDB()), backend

	case "file":
		dataDir := utils.Getenv("DATA_DIR", "./data")
		repo, err := repositories.NewFileScheduleRepository(dataDir)
		if err != nil {
			utils.LogError(err, "Failed to initialize file store")
			log.Fatalf("Failed to initialize file store: %v", err)
		}
		return repo, backend

	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q (want file or postgres)", backend)
		return nil, backend
	}
}
