package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"school_admin_backend/config"
	"school_admin_backend/db"
	"school_admin_backend/gdrive"
	"school_admin_backend/gsheets"
	"school_admin_backend/models"
	"school_admin_backend/routes"
	"school_admin_backend/services"
	"school_admin_backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found") // Non-fatal in production
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Connect to database and apply schema
	database, err := db.Initialize(db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer database.Close()

	// Remote store clients
	ctx := context.Background()
	sheetsClient, err := gsheets.NewClient(ctx, cfg.SpreadsheetID, cfg.GoogleCredentialsFile)
	if err != nil {
		log.Fatalf("Error creating sheets client: %v", err)
	}
	driveClient, err := gdrive.NewClient(ctx, cfg.GoogleCredentialsFile)
	if err != nil {
		log.Fatalf("Error creating drive client: %v", err)
	}

	// Process-wide state: file index and per-key locks. Both start empty on
	// every boot; the index is reconciled against the host via the listing
	// endpoints, never trusted blindly.
	fileIndex := store.NewFileIndex()
	fileLocks := store.NewKeyedMutex()
	tabLocks := store.NewKeyedMutex()

	tables := gsheets.NewAdapter(sheetsClient)
	deps := routes.Deps{
		DB:        database,
		JWTSecret: []byte(cfg.JWTSecret),
		Timetable: services.NewTimetableFileService(driveClient, fileIndex, fileLocks, map[string]string{
			models.CategoryGeneral: cfg.TimetableFolderID,
			models.CategoryExam:    cfg.ExamTimetableFolderID,
		}),
		Ledger: services.NewAttendanceLedger(tables, tabLocks),
		Creds:  services.NewCredentialStore(tables, tabLocks, cfg.UsersTab),
		Sheets: gsheets.NewLifecycle(sheetsClient),
	}

	// Initialize router
	r := gin.Default()

	// Setup CORS - the admin frontend may be served from anywhere
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"Authorization",
	}
	corsConfig.AllowMethods = []string{
		"GET",
		"POST",
		"PUT",
		"DELETE",
		"PATCH",
	}
	r.Use(cors.New(corsConfig))

	// Setup routes
	routes.SetupRoutes(r, deps)

	// Run server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
}
