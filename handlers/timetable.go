package handlers

import (
	"errors"
	"io"
	"net/http"

	"school_admin_backend/apperr"
	"school_admin_backend/models"
	"school_admin_backend/services"

	"github.com/gin-gonic/gin"
)

type TimetableHandler struct {
	svc *services.TimetableFileService
}

func NewTimetableHandler(svc *services.TimetableFileService) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

// Upload accepts a multipart file and stores it as the class's single live
// timetable for the category, replacing any previous one.
func (h *TimetableHandler) Upload(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		class := c.Param("class")
		if !models.IsValidClass(class) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Unknown class: " + class})
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "No file uploaded"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Could not read uploaded file"})
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Could not read uploaded file"})
			return
		}

		rec, err := h.svc.Upload(c.Request.Context(), category, class, data, fileHeader.Filename)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.UploadTimetableResponse{
			Message: "Timetable uploaded successfully",
			FileID:  rec.FileID,
			URL:     rec.URL,
			Class:   class,
		})
	}
}

// Delete removes the tracked timetable file for the class. An untracked class
// is a 400: the key is wrong, not a once-existing entity.
func (h *TimetableHandler) Delete(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		class := c.Param("class")
		if !models.IsValidClass(class) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Unknown class: " + class})
			return
		}

		err := h.svc.Delete(c.Request.Context(), category, class)
		if errors.Is(err, apperr.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "not_found", "message": err.Error()})
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Timetable deleted successfully"})
	}
}

// View lists the class's files straight from the host, bypassing the index.
func (h *TimetableHandler) View(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		class := c.Param("class")
		if !models.IsValidClass(class) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": "Unknown class: " + class})
			return
		}

		files, err := h.svc.List(c.Request.Context(), category, class)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, files)
	}
}
