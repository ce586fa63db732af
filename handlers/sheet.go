package handlers

import (
	"net/http"

	"school_admin_backend/gsheets"
	"school_admin_backend/models"

	"github.com/gin-gonic/gin"
)

type SheetHandler struct {
	sheets *gsheets.Lifecycle
}

func NewSheetHandler(sheets *gsheets.Lifecycle) *SheetHandler {
	return &SheetHandler{sheets: sheets}
}

// Create adds a new named tab. Duplicate titles are rejected by the remote
// store and surface as a remote failure.
func (h *SheetHandler) Create(c *gin.Context) {
	var req models.CreateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}

	if err := h.sheets.CreateTab(c.Request.Context(), req.SheetName); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sheet created successfully"})
}
