package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edutrack/internal/model"
)

// ListDonations returns all campaigns.
func (s *Store) ListDonations(ctx context.Context) ([]model.Donation, error) {
	cur, err := s.db.Collection(colDonations).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var donations []model.Donation
	if err := cur.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// CreateDonation inserts a campaign, defaulting AmountRaised to zero
// and CreatedDate to now.
func (s *Store) CreateDonation(ctx context.Context, d model.Donation) (model.Donation, error) {
	d.ID = primitive.NewObjectID()
	d.AmountRaised = 0
	if d.CreatedDate.IsZero() {
		d.CreatedDate = time.Now().UTC()
	}
	if d.Donors == nil {
		d.Donors = []primitive.ObjectID{}
	}
	if _, err := s.db.Collection(colDonations).InsertOne(ctx, d); err != nil {
		return model.Donation{}, err
	}
	return d, nil
}

// ListDonationsByDonor returns campaigns whose donors array contains
// the given user.
func (s *Store) ListDonationsByDonor(ctx context.Context, donorID primitive.ObjectID) ([]model.Donation, error) {
	cur, err := s.db.Collection(colDonations).Find(ctx, bson.M{"donors": donorID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var donations []model.Donation
	if err := cur.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// GetDonations resolves a list of campaign ids, skipping missing ones.
// Used by the dashboard to render a user's donation history.
func (s *Store) GetDonations(ctx context.Context, ids []primitive.ObjectID) ([]model.Donation, error) {
	if len(ids) == 0 {
		return []model.Donation{}, nil
	}
	cur, err := s.db.Collection(colDonations).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var donations []model.Donation
	if err := cur.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}
