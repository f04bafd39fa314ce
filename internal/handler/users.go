package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"edutrack/internal/auth"
	"edutrack/internal/model"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=Parent Teacher Admin"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account. The response carries the stored
// identity minus the password hash.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	digest, err := h.passwords.Hash(req.Password)
	if err != nil {
		h.internalError(c, "register: hash password", err)
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), model.User{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Password: digest,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "user with this email already exists"})
			return
		}
		h.internalError(c, "register: create user", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password share one 401 answer; 403 stays reserved for
// token failures at the gate.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.internalError(c, "login: fetch user", err)
		return
	}
	if !h.passwords.Verify(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := auth.Issue(user.ID.Hex(), user.Role, h.jwtIssuer, h.jwtKey)
	if err != nil {
		h.internalError(c, "login: issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Dashboard aggregates the caller's profile, resolved donation
// history, the bus fleet, and recent notifications.
func (h *Handler) Dashboard(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	user, err := h.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.internalError(c, "dashboard: fetch user", err)
		return
	}

	history, err := h.store.GetDonations(ctx, user.DonationHistory)
	if err != nil {
		h.internalError(c, "dashboard: resolve donation history", err)
		return
	}

	buses, err := h.store.ListBuses(ctx)
	if err != nil {
		h.internalError(c, "dashboard: list buses", err)
		return
	}
	if buses == nil {
		buses = []model.Bus{}
	}

	c.JSON(http.StatusOK, gin.H{
		"user":             user,
		"donation_history": history,
		"buses":            buses,
		"notifications":    h.feed.Recent(ctx, 10),
	})
}

type userIDByEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// GetUserIDByEmail resolves an email to a user id, used by clients to
// address messages.
func (h *Handler) GetUserIDByEmail(c *gin.Context) {
	var req userIDByEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.internalError(c, "getUserIdByEmail: fetch user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": user.ID.Hex()})
}

type addChildRequest struct {
	Name     string `json:"name" binding:"required"`
	Grade    string `json:"grade" binding:"required"`
	BusRoute string `json:"busRoute" binding:"required"`
}

// AddChild registers a child under the caller's account. The child
// insert and the parent's children push are two independent writes;
// a failure of the second is surfaced without rolling back the first.
func (h *Handler) AddChild(c *gin.Context) {
	var req addChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}
	parentID, ok := h.currentUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	child, err := h.store.CreateChild(ctx, model.Child{
		Name:     req.Name,
		Grade:    req.Grade,
		BusRoute: req.BusRoute,
		ParentID: parentID,
	})
	if err != nil {
		h.internalError(c, "addChild: create child", err)
		return
	}

	if err := h.store.AppendChild(ctx, parentID, child.ID); err != nil {
		h.internalError(c, "addChild: update parent", err)
		return
	}

	c.JSON(http.StatusCreated, child)
}
