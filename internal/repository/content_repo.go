package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"apnidisha/internal/model"
)

// ContentRepo handles MongoDB operations for guidance content.
type ContentRepo interface {
	List(ctx context.Context) ([]*model.Content, error)
	Create(ctx context.Context, content *model.Content) (string, error)
}

type contentRepo struct {
	collection *mongo.Collection
}

// NewContentRepo creates a new content repository.
func NewContentRepo(db *mongo.Database) ContentRepo {
	return &contentRepo{
		collection: db.Collection("content"),
	}
}

func (r *contentRepo) List(ctx context.Context) ([]*model.Content, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.Content
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *contentRepo) Create(ctx context.Context, content *model.Content) (string, error) {
	if content.ID == "" {
		content.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, content); err != nil {
		return "", err
	}
	return content.ID, nil
}
