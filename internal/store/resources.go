package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"edutrack/internal/model"
)

// ListResourcesByType returns resources of the given type
// (Education or Health).
func (s *Store) ListResourcesByType(ctx context.Context, typ string) ([]model.Resource, error) {
	cur, err := s.db.Collection(colResources).Find(ctx, bson.M{"type": typ})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var resources []model.Resource
	if err := cur.All(ctx, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// ListResourcesByStudent returns resources whose students array
// contains the given student.
func (s *Store) ListResourcesByStudent(ctx context.Context, studentID primitive.ObjectID) ([]model.Resource, error) {
	cur, err := s.db.Collection(colResources).Find(ctx, bson.M{"students": studentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var resources []model.Resource
	if err := cur.All(ctx, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// AppendHealthData pushes an entry onto a health resource's healthData
// array. The id is the resource document id (the wire field is named
// studentId for historical reasons; see the handler).
func (s *Store) AppendHealthData(ctx context.Context, resourceID primitive.ObjectID, data map[string]any) error {
	res, err := s.db.Collection(colResources).UpdateOne(ctx,
		bson.M{"_id": resourceID},
		bson.M{"$push": bson.M{"health_data": data}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
