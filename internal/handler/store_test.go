package handler_test

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"edutrack/internal/model"
)

// fakeStore is an in-memory handler.Store with the same contract as
// the mongo implementation: unique email on insert, not-found on
// append misses, per-document atomic appends (one mutex stands in for
// the store's per-document guarantee).
type fakeStore struct {
	mu            sync.Mutex
	users         map[primitive.ObjectID]model.User
	emails        map[string]primitive.ObjectID
	children      map[primitive.ObjectID]model.Child
	buses         map[primitive.ObjectID]model.Bus
	donations     map[primitive.ObjectID]model.Donation
	opportunities map[primitive.ObjectID]model.Opportunity
	resources     map[primitive.ObjectID]model.Resource
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         make(map[primitive.ObjectID]model.User),
		emails:        make(map[string]primitive.ObjectID),
		children:      make(map[primitive.ObjectID]model.Child),
		buses:         make(map[primitive.ObjectID]model.Bus),
		donations:     make(map[primitive.ObjectID]model.Donation),
		opportunities: make(map[primitive.ObjectID]model.Opportunity),
		resources:     make(map[primitive.ObjectID]model.Resource),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, u model.User) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.emails[u.Email]; exists {
		return model.User{}, model.ErrDuplicateEmail
	}
	u.ID = primitive.NewObjectID()
	if u.RegisteredDate.IsZero() {
		u.RegisteredDate = time.Now().UTC()
	}
	if u.DonationHistory == nil {
		u.DonationHistory = []primitive.ObjectID{}
	}
	if u.Children == nil {
		u.Children = []primitive.ObjectID{}
	}
	f.users[u.ID] = u
	f.emails[u.Email] = u.ID
	return u, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.emails[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return f.users[id], nil
}

func (f *fakeStore) GetUserByID(_ context.Context, id primitive.ObjectID) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) CreateChild(_ context.Context, c model.Child) (model.Child, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = primitive.NewObjectID()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	f.children[c.ID] = c
	return c, nil
}

func (f *fakeStore) AppendChild(_ context.Context, parentID, childID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[parentID]
	if !ok {
		return model.ErrNotFound
	}
	u.Children = append(u.Children, childID)
	f.users[parentID] = u
	return nil
}

func (f *fakeStore) ListBuses(_ context.Context) ([]model.Bus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	buses := make([]model.Bus, 0, len(f.buses))
	for _, b := range f.buses {
		buses = append(buses, b)
	}
	return buses, nil
}

func (f *fakeStore) GetBus(_ context.Context, id primitive.ObjectID) (model.Bus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.buses[id]
	if !ok {
		return model.Bus{}, model.ErrNotFound
	}
	return b, nil
}

func (f *fakeStore) AppendCheckin(_ context.Context, id primitive.ObjectID, c model.Checkin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.buses[id]
	if !ok {
		return model.ErrNotFound
	}
	b.Checkins = append(b.Checkins, c)
	f.buses[id] = b
	return nil
}

func (f *fakeStore) ListDonations(_ context.Context) ([]model.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	donations := make([]model.Donation, 0, len(f.donations))
	for _, d := range f.donations {
		donations = append(donations, d)
	}
	return donations, nil
}

func (f *fakeStore) CreateDonation(_ context.Context, d model.Donation) (model.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d.ID = primitive.NewObjectID()
	d.AmountRaised = 0
	if d.CreatedDate.IsZero() {
		d.CreatedDate = time.Now().UTC()
	}
	if d.Donors == nil {
		d.Donors = []primitive.ObjectID{}
	}
	f.donations[d.ID] = d
	return d, nil
}

func (f *fakeStore) ListDonationsByDonor(_ context.Context, donorID primitive.ObjectID) ([]model.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var donations []model.Donation
	for _, d := range f.donations {
		for _, donor := range d.Donors {
			if donor == donorID {
				donations = append(donations, d)
				break
			}
		}
	}
	return donations, nil
}

func (f *fakeStore) GetDonations(_ context.Context, ids []primitive.ObjectID) ([]model.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	donations := []model.Donation{}
	for _, id := range ids {
		if d, ok := f.donations[id]; ok {
			donations = append(donations, d)
		}
	}
	return donations, nil
}

func (f *fakeStore) ListOpportunities(_ context.Context) ([]model.Opportunity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	opps := make([]model.Opportunity, 0, len(f.opportunities))
	for _, o := range f.opportunities {
		opps = append(opps, o)
	}
	return opps, nil
}

func (f *fakeStore) CreateOpportunity(_ context.Context, o model.Opportunity) (model.Opportunity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = primitive.NewObjectID()
	if o.Volunteers == nil {
		o.Volunteers = []primitive.ObjectID{}
	}
	if o.Messages == nil {
		o.Messages = []model.Message{}
	}
	f.opportunities[o.ID] = o
	return o, nil
}

func (f *fakeStore) AppendVolunteer(_ context.Context, oppID, userID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.opportunities[oppID]
	if !ok {
		return model.ErrNotFound
	}
	o.Volunteers = append(o.Volunteers, userID)
	f.opportunities[oppID] = o
	return nil
}

func (f *fakeStore) AppendMessage(_ context.Context, oppID primitive.ObjectID, msg model.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.opportunities[oppID]
	if !ok {
		return model.ErrNotFound
	}
	o.Messages = append(o.Messages, msg)
	f.opportunities[oppID] = o
	return nil
}

func (f *fakeStore) ListResourcesByType(_ context.Context, typ string) ([]model.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var resources []model.Resource
	for _, r := range f.resources {
		if r.Type == typ {
			resources = append(resources, r)
		}
	}
	return resources, nil
}

func (f *fakeStore) ListResourcesByStudent(_ context.Context, studentID primitive.ObjectID) ([]model.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var resources []model.Resource
	for _, r := range f.resources {
		for _, s := range r.Students {
			if s == studentID {
				resources = append(resources, r)
				break
			}
		}
	}
	return resources, nil
}

func (f *fakeStore) AppendHealthData(_ context.Context, resourceID primitive.ObjectID, data map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.resources[resourceID]
	if !ok {
		return model.ErrNotFound
	}
	r.HealthData = append(r.HealthData, data)
	f.resources[resourceID] = r
	return nil
}

// seedBus inserts a bus directly, bypassing the API.
func (f *fakeStore) seedBus(b model.Bus) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = primitive.NewObjectID()
	f.buses[b.ID] = b
	return b.ID
}

// seedResource inserts a resource directly.
func (f *fakeStore) seedResource(r model.Resource) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = primitive.NewObjectID()
	f.resources[r.ID] = r
	return r.ID
}

// seedOpportunity inserts an opportunity directly.
func (f *fakeStore) seedOpportunity(o model.Opportunity) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = primitive.NewObjectID()
	f.opportunities[o.ID] = o
	return o.ID
}

// fakeFeed satisfies handler.Notifications without Redis.
type fakeFeed struct{}

func (fakeFeed) Recent(context.Context, int) []string {
	return []string{"Bus running late", "Event at 3 PM"}
}
