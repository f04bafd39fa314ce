package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"edutrack/internal/model"
)

// ListBuses returns every tracked bus.
func (s *Store) ListBuses(ctx context.Context) ([]model.Bus, error) {
	cur, err := s.db.Collection(colBuses).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var buses []model.Bus
	if err := cur.All(ctx, &buses); err != nil {
		return nil, err
	}
	return buses, nil
}

// GetBus returns a single bus by document id.
func (s *Store) GetBus(ctx context.Context, id primitive.ObjectID) (model.Bus, error) {
	var b model.Bus
	err := s.db.Collection(colBuses).FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Bus{}, model.ErrNotFound
	}
	return b, err
}

// AppendCheckin pushes a check-in onto the bus's append-only checkins
// array in one atomic document update. A miss never creates the bus.
func (s *Store) AppendCheckin(ctx context.Context, id primitive.ObjectID, c model.Checkin) error {
	res, err := s.db.Collection(colBuses).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"checkins": c}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
