package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"school_admin_backend/models"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	db *sql.DB
}

func NewStudentHandler(db *sql.DB) *StudentHandler {
	return &StudentHandler{db: db}
}

func (h *StudentHandler) Register(c *gin.Context) {
	var req models.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}

	var exists bool
	if err := h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM students WHERE roll_number = $1)`, req.RollNumber).Scan(&exists); err != nil {
		log.Printf("Error checking student existence: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to check student"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Roll number already registered"})
		return
	}

	_, err := h.db.Exec(
		`INSERT INTO students (roll_number, name, class, section, parent_email) VALUES ($1, $2, $3, $4, $5)`,
		req.RollNumber, req.Name, req.Class, req.Section, req.ParentEmail,
	)
	if err != nil {
		log.Printf("Error creating student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to register student"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Student registered successfully"})
}

func (h *StudentHandler) Get(c *gin.Context) {
	roll := c.Param("roll")

	var student models.StudentRecord
	err := h.db.QueryRow(
		`SELECT roll_number, name, class, section, parent_email FROM students WHERE roll_number = $1`,
		roll,
	).Scan(&student.RollNumber, &student.Name, &student.Class, &student.Section, &student.ParentEmail)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Student not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to fetch student"})
		return
	}

	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) Update(c *gin.Context) {
	roll := c.Param("roll")

	var req models.UpdateStudentRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}

	result, err := h.db.Exec(
		`UPDATE students SET name = $1, class = $2, section = $3, parent_email = $4 WHERE roll_number = $5`,
		req.Name, req.Class, req.Section, req.ParentEmail, roll,
	)
	if err != nil {
		log.Printf("Error updating student: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to update student"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error reading affected rows: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to verify update"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Student not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Student updated successfully"})
}
