package routes

import (
	"database/sql"

	"school_admin_backend/gsheets"
	"school_admin_backend/handlers"
	"school_admin_backend/middleware"
	"school_admin_backend/models"
	"school_admin_backend/services"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the handlers need.
type Deps struct {
	DB        *sql.DB
	JWTSecret []byte
	Timetable *services.TimetableFileService
	Ledger    *services.AttendanceLedger
	Creds     *services.CredentialStore
	Sheets    *gsheets.Lifecycle
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB)
	timetableHandler := handlers.NewTimetableHandler(deps.Timetable)
	attendanceHandler := handlers.NewAttendanceHandler(deps.Ledger, deps.Sheets)
	userHandler := handlers.NewUserHandler(deps.Creds, middleware.NewTokenService(deps.JWTSecret))
	sheetHandler := handlers.NewSheetHandler(deps.Sheets)
	studentHandler := handlers.NewStudentHandler(deps.DB)
	marksHandler := handlers.NewMarksHandler(deps.DB)
	feesHandler := handlers.NewFeesHandler(deps.DB)

	r.GET("/health", healthHandler.HealthCheck)
	r.POST("/login", userHandler.Login)

	// Timetable routes, one set per category
	r.POST("/api/timetables/upload/:class", timetableHandler.Upload(models.CategoryGeneral))
	r.DELETE("/api/timetables/delete/:class", timetableHandler.Delete(models.CategoryGeneral))
	r.GET("/api/timetables/view/:class", timetableHandler.View(models.CategoryGeneral))
	r.POST("/api/exam-timetables/upload/:class", timetableHandler.Upload(models.CategoryExam))
	r.DELETE("/api/exam-timetables/delete/:class", timetableHandler.Delete(models.CategoryExam))
	r.GET("/api/exam-timetables/view/:class", timetableHandler.View(models.CategoryExam))

	// Attendance routes
	r.POST("/save", attendanceHandler.Save)
	r.GET("/attendance/current/:classSheet", attendanceHandler.Current)
	r.GET("/attendance/full/:classSheet", attendanceHandler.Full)
	r.DELETE("/attendance/full/:classSheet", attendanceHandler.DeleteFull)
	r.POST("/attendance/tracker", attendanceHandler.Tracker)
	r.POST("/attendance/record", attendanceHandler.Record)
	r.POST("/search-student", attendanceHandler.SearchStudent)
	r.POST("/update-student", attendanceHandler.UpdateStudent)

	// Sheet lifecycle
	r.POST("/sheet/create", sheetHandler.Create)

	// Student record routes (relational)
	r.POST("/students", studentHandler.Register)
	r.GET("/students/:roll", studentHandler.Get)
	r.PUT("/students/:roll", studentHandler.Update)

	// Marks routes
	r.POST("/marks", marksHandler.Create)
	r.GET("/marks/:roll", marksHandler.Get)
	r.DELETE("/marks/:roll", marksHandler.Delete)

	// Fee status routes
	r.POST("/fees", feesHandler.Set)
	r.GET("/fees/:roll", feesHandler.Get)

	// User administration sits behind auth
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.JWTSecret))
	{
		protected.GET("/getUsers", userHandler.GetUsers)
		protected.POST("/updateUser", userHandler.UpdateUser)
	}
}
