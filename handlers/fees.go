package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"school_admin_backend/models"

	"github.com/gin-gonic/gin"
)

type FeesHandler struct {
	db *sql.DB
}

func NewFeesHandler(db *sql.DB) *FeesHandler {
	return &FeesHandler{db: db}
}

func (h *FeesHandler) Set(c *gin.Context) {
	var req models.SetFeeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}

	_, err := h.db.Exec(`
        INSERT INTO fee_status (roll_number, term, status, amount_due)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (roll_number, term)
        DO UPDATE SET status = EXCLUDED.status, amount_due = EXCLUDED.amount_due
    `, req.RollNumber, req.Term, req.Status, req.AmountDue)
	if err != nil {
		log.Printf("Error saving fee status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to save fee status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fee status saved successfully"})
}

func (h *FeesHandler) Get(c *gin.Context) {
	roll := c.Param("roll")

	rows, err := h.db.Query(
		`SELECT roll_number, term, status, amount_due FROM fee_status WHERE roll_number = $1 ORDER BY term`,
		roll,
	)
	if err != nil {
		log.Printf("Error fetching fee status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to fetch fee status"})
		return
	}
	defer rows.Close()

	fees := []models.FeeStatus{}
	for rows.Next() {
		var fee models.FeeStatus
		if err := rows.Scan(&fee.RollNumber, &fee.Term, &fee.Status, &fee.AmountDue); err != nil {
			log.Printf("Error scanning fee status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Failed to scan fee status"})
			return
		}
		fees = append(fees, fee)
	}

	c.JSON(http.StatusOK, gin.H{"fees": fees})
}
