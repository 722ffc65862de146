package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"apnidisha/internal/model"
)

// CollegeRepo handles MongoDB operations for the college directory.
type CollegeRepo interface {
	List(ctx context.Context) ([]*model.College, error)
	Create(ctx context.Context, college *model.College) (string, error)
	IncrementInterest(ctx context.Context, increments map[string]int) error
}

type collegeRepo struct {
	collection *mongo.Collection
}

// NewCollegeRepo creates a new college repository.
func NewCollegeRepo(db *mongo.Database) CollegeRepo {
	return &collegeRepo{
		collection: db.Collection("colleges"),
	}
}

func (r *collegeRepo) List(ctx context.Context) ([]*model.College, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var colleges []*model.College
	if err := cursor.All(ctx, &colleges); err != nil {
		return nil, err
	}
	return colleges, nil
}

func (r *collegeRepo) Create(ctx context.Context, college *model.College) (string, error) {
	if college.ID == "" {
		college.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, college); err != nil {
		return "", err
	}
	return college.ID, nil
}

// IncrementInterest applies batched interest increments keyed by college ID.
// Unknown IDs simply match nothing, matching the tolerant batch endpoint.
func (r *collegeRepo) IncrementInterest(ctx context.Context, increments map[string]int) error {
	var writes []mongo.WriteModel
	for id, inc := range increments {
		if inc <= 0 {
			continue
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$inc": bson.M{"interest": inc}}))
	}
	if len(writes) == 0 {
		return nil
	}

	_, err := r.collection.BulkWrite(ctx, writes)
	return err
}
