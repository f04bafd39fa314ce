package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edutrack/internal/metrics"
	"edutrack/internal/model"
)

// ListDonations returns all campaigns.
func (h *Handler) ListDonations(c *gin.Context) {
	donations, err := h.store.ListDonations(c.Request.Context())
	if err != nil {
		h.internalError(c, "donations: list", err)
		return
	}
	if donations == nil {
		donations = []model.Donation{}
	}
	c.JSON(http.StatusOK, donations)
}

// Campaign creation deliberately accepts a sparse body: existing
// clients post only the fields they care about and rely on server
// defaults for the rest.
type createDonationRequest struct {
	CampaignID   string    `json:"campaignId"`
	School       string    `json:"school"`
	Category     string    `json:"category"`
	TargetAmount float64   `json:"targetAmount"`
	EndDate      time.Time `json:"endDate"`
}

// CreateDonation inserts a campaign with AmountRaised defaulted to 0.
func (h *Handler) CreateDonation(c *gin.Context) {
	var req createDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.CampaignID == "" {
		req.CampaignID = uuid.NewString()
	}

	donation, err := h.store.CreateDonation(c.Request.Context(), model.Donation{
		CampaignID:   req.CampaignID,
		School:       req.School,
		Category:     req.Category,
		TargetAmount: req.TargetAmount,
		EndDate:      req.EndDate,
	})
	if err != nil {
		h.internalError(c, "donations: create", err)
		return
	}
	metrics.DonationsCreated.Inc()
	c.JSON(http.StatusCreated, donation)
}

// DonationHistory returns the campaigns a user has donated to.
func (h *Handler) DonationHistory(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	donations, err := h.store.ListDonationsByDonor(c.Request.Context(), userID)
	if err != nil {
		h.internalError(c, "donations: history", err)
		return
	}
	if donations == nil {
		donations = []model.Donation{}
	}
	c.JSON(http.StatusOK, donations)
}
