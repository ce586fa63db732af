package handlers

import (
	"errors"
	"net/http"

	"school_admin_backend/apperr"
	"school_admin_backend/gsheets"
	"school_admin_backend/models"
	"school_admin_backend/services"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	ledger *services.AttendanceLedger
	sheets *gsheets.Lifecycle
}

func NewAttendanceHandler(ledger *services.AttendanceLedger, sheets *gsheets.Lifecycle) *AttendanceHandler {
	return &AttendanceHandler{ledger: ledger, sheets: sheets}
}

// Save appends a student row to the class tab.
func (h *AttendanceHandler) Save(c *gin.Context) {
	var req models.SaveStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}
	if !models.IsValidClass(req.Class) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Unknown class: " + req.Class})
		return
	}

	err := h.ledger.MarkAttendance(c.Request.Context(), req.Class, req.RollNumber, req.NameOfTheStudent, req.ParentEmail, req.Section)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student saved successfully"})
}

// Current returns each student's status for today's date column. Until
// attendance has been taken today there is no such column, which is a 400.
func (h *AttendanceHandler) Current(c *gin.Context) {
	classSheet := c.Param("classSheet")
	if !models.IsValidClass(classSheet) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Unknown class: " + classSheet})
		return
	}

	entries, err := h.ledger.TodaySummary(c.Request.Context(), classSheet)
	if errors.Is(err, apperr.ErrNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not_found", "message": err.Error()})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"todaySummary": entries})
}

// Full returns the whole sheet zipped per student.
func (h *AttendanceHandler) Full(c *gin.Context) {
	classSheet := c.Param("classSheet")
	if !models.IsValidClass(classSheet) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Unknown class: " + classSheet})
		return
	}

	rows, err := h.ledger.FullSheet(c.Request.Context(), classSheet)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendanceData": rows})
}

// DeleteFull deletes the class tab entirely.
func (h *AttendanceHandler) DeleteFull(c *gin.Context) {
	classSheet := c.Param("classSheet")
	if !models.IsValidClass(classSheet) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Unknown class: " + classSheet})
		return
	}

	if err := h.sheets.DeleteTab(c.Request.Context(), classSheet); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance sheet deleted successfully"})
}

// Tracker aggregates Present/Absent totals per student and for the cohort.
func (h *AttendanceHandler) Tracker(c *gin.Context) {
	var req models.TrackerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}
	if !models.IsValidClass(req.ClassSheet) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Unknown class: " + req.ClassSheet})
		return
	}

	rows, summary, err := h.ledger.Tracker(c.Request.Context(), req.ClassSheet)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracker": rows, "summary": summary})
}

// Record writes one day's statuses into today's date column.
func (h *AttendanceHandler) Record(c *gin.Context) {
	var req models.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}
	if !models.IsValidClass(req.ClassSheet) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Unknown class: " + req.ClassSheet})
		return
	}

	date, err := h.ledger.RecordAttendance(c.Request.Context(), req.ClassSheet, req.Records)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance recorded successfully", "date": date})
}

// SearchStudent returns the fixed-column projection for one roll number.
func (h *AttendanceHandler) SearchStudent(c *gin.Context) {
	var req models.SearchStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}
	if !models.IsValidClass(req.Class) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Unknown class: " + req.Class})
		return
	}

	student, err := h.ledger.SearchStudent(c.Request.Context(), req.Class, req.RollNumber)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// UpdateStudent rewrites one student's identity columns in place.
func (h *AttendanceHandler) UpdateStudent(c *gin.Context) {
	var req models.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}
	if !models.IsValidClass(req.Class) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Unknown class: " + req.Class})
		return
	}

	student, err := h.ledger.UpdateStudent(c.Request.Context(), req.Class, req.RollNumber, req.NameOfTheStudent, req.ParentEmail, req.Section)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}
