package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edutrack/internal/model"
)

// ListOpportunities returns every volunteer opportunity.
func (s *Store) ListOpportunities(ctx context.Context) ([]model.Opportunity, error) {
	cur, err := s.db.Collection(colCommunities).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var opps []model.Opportunity
	if err := cur.All(ctx, &opps); err != nil {
		return nil, err
	}
	return opps, nil
}

// CreateOpportunity inserts a new opportunity with empty rosters.
func (s *Store) CreateOpportunity(ctx context.Context, o model.Opportunity) (model.Opportunity, error) {
	o.ID = primitive.NewObjectID()
	if o.Volunteers == nil {
		o.Volunteers = []primitive.ObjectID{}
	}
	if o.Messages == nil {
		o.Messages = []model.Message{}
	}
	if _, err := s.db.Collection(colCommunities).InsertOne(ctx, o); err != nil {
		return model.Opportunity{}, err
	}
	return o, nil
}

// AppendVolunteer pushes a user onto the opportunity's volunteer
// roster. Signing up twice records the user twice; the roster is not a
// set.
func (s *Store) AppendVolunteer(ctx context.Context, oppID, userID primitive.ObjectID) error {
	res, err := s.db.Collection(colCommunities).UpdateOne(ctx,
		bson.M{"_id": oppID},
		bson.M{"$push": bson.M{"volunteers": userID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

// AppendMessage pushes a message onto the opportunity's append-only
// thread.
func (s *Store) AppendMessage(ctx context.Context, oppID primitive.ObjectID, msg model.Message) error {
	res, err := s.db.Collection(colCommunities).UpdateOne(ctx,
		bson.M{"_id": oppID},
		bson.M{"$push": bson.M{"messages": msg}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
