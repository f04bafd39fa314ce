package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"edutrack/internal/model"
)

// CreateUser inserts a new user. A duplicate email surfaces as
// model.ErrDuplicateEmail via the unique index, never via a prior read.
func (s *Store) CreateUser(ctx context.Context, u model.User) (model.User, error) {
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
	if _, err := s.db.Collection(colUsers).InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, err
	}
	return u, nil
}

// GetUserByEmail returns the user registered under email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := s.db.Collection(colUsers).FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, model.ErrNotFound
	}
	return u, err
}

// GetUserByID returns a user by document id.
func (s *Store) GetUserByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	var u model.User
	err := s.db.Collection(colUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, model.ErrNotFound
	}
	return u, err
}

// CreateChild inserts a child document under a parent account.
func (s *Store) CreateChild(ctx context.Context, c model.Child) (model.Child, error) {
	c.ID = primitive.NewObjectID()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if _, err := s.db.Collection(colChildren).InsertOne(ctx, c); err != nil {
		return model.Child{}, err
	}
	return c, nil
}

// AppendChild pushes a child id onto the parent's children array.
func (s *Store) AppendChild(ctx context.Context, parentID, childID primitive.ObjectID) error {
	res, err := s.db.Collection(colUsers).UpdateOne(ctx,
		bson.M{"_id": parentID},
		bson.M{"$push": bson.M{"children": childID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
