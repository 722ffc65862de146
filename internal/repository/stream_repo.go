package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"apnidisha/internal/model"
)

// StreamRepo handles MongoDB operations for education streams.
type StreamRepo interface {
	List(ctx context.Context) ([]*model.Stream, error)
	Create(ctx context.Context, stream *model.Stream) (string, error)
}

type streamRepo struct {
	collection *mongo.Collection
}

// NewStreamRepo creates a new stream repository.
func NewStreamRepo(db *mongo.Database) StreamRepo {
	return &streamRepo{
		collection: db.Collection("streams"),
	}
}

func (r *streamRepo) List(ctx context.Context) ([]*model.Stream, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var streams []*model.Stream
	if err := cursor.All(ctx, &streams); err != nil {
		return nil, err
	}
	return streams, nil
}

func (r *streamRepo) Create(ctx context.Context, stream *model.Stream) (string, error) {
	if stream.ID == "" {
		stream.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, stream); err != nil {
		return "", err
	}
	return stream.ID, nil
}
