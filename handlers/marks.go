package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"school_admin_backend/models"

	"github.com/gin-gonic/gin"
)

type MarksHandler struct {
	db *sql.DB
}

func NewMarksHandler(db *sql.DB) *MarksHandler {
	return &MarksHandler{db: db}
}

func (h *MarksHandler) Create(c *gin.Context) {
	var req models.CreateMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}
	if req.Marks > req.MaxMarks {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Marks cannot exceed max marks"})
		return
	}

	_, err := h.db.Exec(`
        INSERT INTO marks (roll_number, subject, exam, marks, max_marks)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (roll_number, subject, exam)
        DO UPDATE SET marks = EXCLUDED.marks, max_marks = EXCLUDED.max_marks
    `, req.RollNumber, req.Subject, req.Exam, req.Marks, req.MaxMarks)
	if err != nil {
		log.Printf("Error saving marks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to save marks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marks saved successfully"})
}

func (h *MarksHandler) Get(c *gin.Context) {
	roll := c.Param("roll")

	rows, err := h.db.Query(
		`SELECT roll_number, subject, exam, marks, max_marks FROM marks WHERE roll_number = $1 ORDER BY exam, subject`,
		roll,
	)
	if err != nil {
		log.Printf("Error fetching marks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to fetch marks"})
		return
	}
	defer rows.Close()

	marks := []models.MarksEntry{}
	for rows.Next() {
		var entry models.MarksEntry
		if err := rows.Scan(&entry.RollNumber, &entry.Subject, &entry.Exam, &entry.Marks, &entry.MaxMarks); err != nil {
			log.Printf("Error scanning marks: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to scan marks"})
			return
		}
		marks = append(marks, entry)
	}

	c.JSON(http.StatusOK, gin.H{"marks": marks})
}

// Delete removes every marks row for the roll number. lib/pq populates the
// affected-row count for DELETE, so the zero case maps cleanly to 404.
func (h *MarksHandler) Delete(c *gin.Context) {
	roll := c.Param("roll")

	result, err := h.db.Exec(`DELETE FROM marks WHERE roll_number = $1`, roll)
	if err != nil {
		log.Printf("Error deleting marks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to delete marks"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error reading affected rows: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to verify deletion"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "No marks found for roll number"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marks deleted successfully"})
}
