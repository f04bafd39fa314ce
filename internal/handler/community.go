package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edutrack/internal/metrics"
	"edutrack/internal/model"
)

// ListOpportunities returns every volunteer opportunity.
func (h *Handler) ListOpportunities(c *gin.Context) {
	opps, err := h.store.ListOpportunities(c.Request.Context())
	if err != nil {
		h.internalError(c, "community: list opportunities", err)
		return
	}
	if opps == nil {
		opps = []model.Opportunity{}
	}
	c.JSON(http.StatusOK, opps)
}

type createOpportunityRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

// CreateOpportunity inserts a new volunteer opportunity.
func (h *Handler) CreateOpportunity(c *gin.Context) {
	var req createOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	opp, err := h.store.CreateOpportunity(c.Request.Context(), model.Opportunity{
		OpportunityID: uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Date:          req.Date,
	})
	if err != nil {
		h.internalError(c, "community: create opportunity", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Opportunity created successfully", "opportunity": opp})
}

type signUpVolunteerRequest struct {
	OpportunityID string `json:"opportunityId" binding:"required"`
}

// SignUpVolunteer appends the caller to an opportunity's roster.
func (h *Handler) SignUpVolunteer(c *gin.Context) {
	var req signUpVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "opportunity ID is required"})
		return
	}
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	oppID, err := primitive.ObjectIDFromHex(req.OpportunityID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "opportunity not found"})
		return
	}

	if err := h.store.AppendVolunteer(c.Request.Context(), oppID, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "opportunity not found"})
			return
		}
		h.internalError(c, "community: sign up volunteer", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed up for volunteer opportunity"})
}

// Message sending resolves both parties by email before touching the
// thread, so a bad address fails with 404 and no write occurs.
type sendMessageRequest struct {
	ToEmail        string `json:"toEmail"`
	FromEmail      string `json:"fromEmail"`
	MessageContent string `json:"messageContent"`
	OpportunityID  string `json:"opportunityId"`
}

// SendMessage appends a message to an opportunity's thread.
func (h *Handler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ctx := c.Request.Context()

	recipient, err := h.store.GetUserByEmail(ctx, req.ToEmail)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		h.internalError(c, "community: resolve recipient", err)
		return
	}
	sender, serr := h.store.GetUserByEmail(ctx, req.FromEmail)
	if serr != nil && !errors.Is(serr, model.ErrNotFound) {
		h.internalError(c, "community: resolve sender", serr)
		return
	}
	if err != nil || serr != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipient or sender not found"})
		return
	}

	oppID, perr := primitive.ObjectIDFromHex(req.OpportunityID)
	if perr != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "community opportunity not found"})
		return
	}

	msg := model.Message{
		FromUserID: sender.ID,
		ToUserID:   recipient.ID,
		Message:    req.MessageContent,
		Timestamp:  time.Now().UTC(),
	}
	if err := h.store.AppendMessage(ctx, oppID, msg); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "community opportunity not found"})
			return
		}
		h.internalError(c, "community: send message", err)
		return
	}
	metrics.MessagesSent.Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}
