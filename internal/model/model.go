package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles accepted at registration.
const (
	RoleParent  = "Parent"
	RoleTeacher = "Teacher"
	RoleAdmin   = "Admin"
)

// User represents a registered community member. The email carries a
// unique index; Password holds the bcrypt digest and is never rendered
// in JSON.
type User struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name            string               `bson:"name" json:"name"`
	Role            string               `bson:"role" json:"role"`
	Email           string               `bson:"email" json:"email"`
	Password        string               `bson:"password" json:"-"`
	RegisteredDate  time.Time            `bson:"registered_date" json:"registered_date"`
	DonationHistory []primitive.ObjectID `bson:"donation_history" json:"donation_history"`
	Children        []primitive.ObjectID `bson:"children" json:"children"`
}

// Child is a student registered under a parent account.
type Child struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Grade     string             `bson:"grade" json:"grade"`
	BusRoute  string             `bson:"bus_route" json:"bus_route"`
	ParentID  primitive.ObjectID `bson:"parent_id" json:"parent_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Location is the last reported bus position. Updated by an external
// telemetry feed, read-only here.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// RouteStop pairs a pickup point with its dropoff point.
type RouteStop struct {
	PickupPoint  string `bson:"pickup_point" json:"pickup_point"`
	DropoffPoint string `bson:"dropoff_point" json:"dropoff_point"`
}

// Schedule lists planned pickup and dropoff times for a bus.
type Schedule struct {
	PickupTimes  []time.Time `bson:"pickup_times" json:"pickup_times"`
	DropoffTimes []time.Time `bson:"dropoff_times" json:"dropoff_times"`
}

// Checkin is one append-only entry in a bus's checkins array.
type Checkin struct {
	StudentID       string     `bson:"student_id" json:"student_id"`
	CheckinTime     time.Time  `bson:"checkin_time" json:"checkin_time"`
	DestinationTime *time.Time `bson:"destination_time,omitempty" json:"destination_time,omitempty"`
}

// Bus is one tracked school bus document.
type Bus struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BusID    string             `bson:"bus_id" json:"bus_id"`
	Location Location           `bson:"location" json:"location"`
	Route    []RouteStop        `bson:"route" json:"route"`
	Schedule Schedule           `bson:"schedule" json:"schedule"`
	Checkins []Checkin          `bson:"checkins" json:"checkins"`
}

// Donation campaign categories.
const (
	CategoryFunds    = "Funds"
	CategorySupplies = "Supplies"
	CategoryServices = "Services"
)

// Donation is a fundraising campaign. AmountRaised only ever grows and
// is not capped to TargetAmount.
type Donation struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CampaignID   string               `bson:"campaign_id" json:"campaign_id"`
	School       string               `bson:"school" json:"school"`
	Category     string               `bson:"category" json:"category"`
	TargetAmount float64              `bson:"target_amount" json:"target_amount"`
	AmountRaised float64              `bson:"amount_raised" json:"amount_raised"`
	Donors       []primitive.ObjectID `bson:"donors" json:"donors"`
	CreatedDate  time.Time            `bson:"created_date" json:"created_date"`
	EndDate      time.Time            `bson:"end_date,omitempty" json:"end_date,omitempty"`
}

// Message is one append-only entry in an opportunity's messages array.
type Message struct {
	FromUserID primitive.ObjectID `bson:"from_user_id" json:"from_user_id"`
	ToUserID   primitive.ObjectID `bson:"to_user_id" json:"to_user_id"`
	Message    string             `bson:"message" json:"message"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}

// Opportunity is a volunteer opportunity with its volunteer roster and
// message thread.
type Opportunity struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	OpportunityID string               `bson:"opportunity_id" json:"opportunity_id"`
	Title         string               `bson:"title" json:"title"`
	Description   string               `bson:"description" json:"description"`
	Location      string               `bson:"location" json:"location"`
	Date          time.Time            `bson:"date" json:"date"`
	Volunteers    []primitive.ObjectID `bson:"volunteers" json:"volunteers"`
	Messages      []Message            `bson:"messages" json:"messages"`
}

// Resource types.
const (
	ResourceEducation = "Education"
	ResourceHealth    = "Health"
)

// Resource is an education or health resource document. HealthData is
// append-only and holds free-form entries.
type Resource struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Type         string               `bson:"type" json:"type"`
	Title        string               `bson:"title" json:"title"`
	Content      string               `bson:"content" json:"content"`
	Downloadable bool                 `bson:"downloadable" json:"downloadable"`
	Students     []primitive.ObjectID `bson:"students" json:"students"`
	HealthData   []map[string]any     `bson:"health_data,omitempty" json:"health_data,omitempty"`
}

// CheckinEvent is the queue payload published after a recorded check-in
// and consumed by the notification worker.
type CheckinEvent struct {
	BusID       string    `json:"bus_id"`
	StudentID   string    `json:"student_id"`
	CheckinTime time.Time `json:"checkin_time"`
}
