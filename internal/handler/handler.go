package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edutrack/internal/auth"
	"edutrack/internal/model"
	"edutrack/internal/queue"
)

// Store is the persistence surface the handlers need. The mongo-backed
// implementation lives in internal/store; tests substitute in-memory
// fakes. Array-growing methods are atomic per document and report
// model.ErrNotFound instead of creating missing documents.
type Store interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
	CreateChild(ctx context.Context, c model.Child) (model.Child, error)
	AppendChild(ctx context.Context, parentID, childID primitive.ObjectID) error

	ListBuses(ctx context.Context) ([]model.Bus, error)
	GetBus(ctx context.Context, id primitive.ObjectID) (model.Bus, error)
	AppendCheckin(ctx context.Context, id primitive.ObjectID, c model.Checkin) error

	ListDonations(ctx context.Context) ([]model.Donation, error)
	CreateDonation(ctx context.Context, d model.Donation) (model.Donation, error)
	ListDonationsByDonor(ctx context.Context, donorID primitive.ObjectID) ([]model.Donation, error)
	GetDonations(ctx context.Context, ids []primitive.ObjectID) ([]model.Donation, error)

	ListOpportunities(ctx context.Context) ([]model.Opportunity, error)
	CreateOpportunity(ctx context.Context, o model.Opportunity) (model.Opportunity, error)
	AppendVolunteer(ctx context.Context, oppID, userID primitive.ObjectID) error
	AppendMessage(ctx context.Context, oppID primitive.ObjectID, msg model.Message) error

	ListResourcesByType(ctx context.Context, typ string) ([]model.Resource, error)
	ListResourcesByStudent(ctx context.Context, studentID primitive.ObjectID) ([]model.Resource, error)
	AppendHealthData(ctx context.Context, resourceID primitive.ObjectID, data map[string]any) error
}

// Notifications is the dashboard's view of the notification feed.
type Notifications interface {
	Recent(ctx context.Context, n int) []string
}

// Handler holds everything the route handlers share.
type Handler struct {
	store     Store
	passwords *auth.PasswordService
	queue     queue.Queue
	feed      Notifications
	jwtKey    string
	jwtIssuer string
}

// New creates a Handler.
func New(store Store, passwords *auth.PasswordService, q queue.Queue, feed Notifications, signingKey, issuer string) *Handler {
	return &Handler{
		store:     store,
		passwords: passwords,
		queue:     q,
		feed:      feed,
		jwtKey:    signingKey,
		jwtIssuer: issuer,
	}
}

// internalError logs the cause for operators and returns a generic 500
// body; internal detail never reaches the client.
func (h *Handler) internalError(c *gin.Context, op string, err error) {
	log.Printf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// currentUserID returns the authenticated user's document id. A token
// that passed the gate but carries an unusable subject is rejected the
// same way the gate would reject it.
func (h *Handler) currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	claims, ok := auth.FromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid token"})
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid token"})
		return primitive.NilObjectID, false
	}
	return id, true
}
