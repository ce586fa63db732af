package handlers

import (
	"errors"
	"log"
	"net/http"

	"school_admin_backend/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy to status codes. Handlers that need a
// different status for a specific kind (bad-key lookups answer 400) check
// errors.Is themselves before falling through to this.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": err.Error()})
	case errors.Is(err, apperr.ErrPartialFailure):
		log.Printf("Partial failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "partial_failure", "message": err.Error()})
	case errors.Is(err, apperr.ErrRemote):
		log.Printf("Remote failure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "remote_failure", "message": err.Error()})
	default:
		log.Printf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "Something went wrong"})
	}
}
