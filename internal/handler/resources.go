package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edutrack/internal/model"
)

// EducationResources lists Education-type resources.
func (h *Handler) EducationResources(c *gin.Context) {
	h.listResources(c, model.ResourceEducation)
}

// HealthResources lists Health-type resources.
func (h *Handler) HealthResources(c *gin.Context) {
	h.listResources(c, model.ResourceHealth)
}

func (h *Handler) listResources(c *gin.Context, typ string) {
	resources, err := h.store.ListResourcesByType(c.Request.Context(), typ)
	if err != nil {
		h.internalError(c, "resources: list "+typ, err)
		return
	}
	if resources == nil {
		resources = []model.Resource{}
	}
	c.JSON(http.StatusOK, resources)
}

type healthTrackingRequest struct {
	// StudentID is, despite its name, the health resource document id;
	// the wire field predates the schema and is kept for client
	// compatibility.
	StudentID string         `json:"studentId" binding:"required"`
	Data      map[string]any `json:"data" binding:"required"`
}

// UpdateHealthTracking appends a health-data entry to a resource
// document.
func (h *Handler) UpdateHealthTracking(c *gin.Context) {
	var req healthTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student ID and health data are required"})
		return
	}

	resourceID, err := primitive.ObjectIDFromHex(req.StudentID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	if err := h.store.AppendHealthData(c.Request.Context(), resourceID, req.Data); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		h.internalError(c, "resources: update health data", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Health data updated"})
}

// HealthTrackingByStudent lists resources tracking the given student.
func (h *Handler) HealthTrackingByStudent(c *gin.Context) {
	studentID, err := primitive.ObjectIDFromHex(c.Param("studentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}

	resources, err := h.store.ListResourcesByStudent(c.Request.Context(), studentID)
	if err != nil {
		h.internalError(c, "resources: health tracking by student", err)
		return
	}
	if resources == nil {
		resources = []model.Resource{}
	}
	c.JSON(http.StatusOK, resources)
}
