package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edutrack/internal/metrics"
	"edutrack/internal/model"
	"edutrack/internal/queue"
)

// ListBuses returns the whole fleet.
func (h *Handler) ListBuses(c *gin.Context) {
	buses, err := h.store.ListBuses(c.Request.Context())
	if err != nil {
		h.internalError(c, "busTracking: list buses", err)
		return
	}
	if buses == nil {
		buses = []model.Bus{}
	}
	c.JSON(http.StatusOK, buses)
}

// BusSchedule returns the schedule of one bus.
func (h *Handler) BusSchedule(c *gin.Context) {
	busID, err := primitive.ObjectIDFromHex(c.Param("busId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bus not found"})
		return
	}

	bus, err := h.store.GetBus(c.Request.Context(), busID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bus not found"})
			return
		}
		h.internalError(c, "busTracking: fetch schedule", err)
		return
	}
	c.JSON(http.StatusOK, bus.Schedule)
}

type checkinRequest struct {
	BusID       string    `json:"busId" binding:"required"`
	StudentID   string    `json:"studentId" binding:"required"`
	CheckinTime time.Time `json:"checkinTime" binding:"required"`
}

// Checkin appends a check-in entry to a bus document and publishes a
// check-in event for the notification worker. The append is a single
// atomic document update; a missing bus is a 404 and never an upsert.
func (h *Handler) Checkin(c *gin.Context) {
	var req checkinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	busID, err := primitive.ObjectIDFromHex(req.BusID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "bus not found"})
		return
	}

	checkin := model.Checkin{StudentID: req.StudentID, CheckinTime: req.CheckinTime}
	if err := h.store.AppendCheckin(c.Request.Context(), busID, checkin); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "bus not found"})
			return
		}
		h.internalError(c, "busTracking: record checkin", err)
		return
	}
	metrics.CheckinsRecorded.Inc()

	// Best effort: a dropped event only costs a notification.
	evt := model.CheckinEvent{BusID: req.BusID, StudentID: req.StudentID, CheckinTime: req.CheckinTime}
	body, _ := json.Marshal(evt)
	if err := h.queue.Publish(c.Request.Context(), queue.Message{Type: "checkin", Body: body}); err != nil {
		log.Printf("busTracking: queue publish failed: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check-in recorded"})
}
