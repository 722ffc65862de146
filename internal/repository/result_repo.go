package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"apnidisha/internal/model"
)

// ResultRepo archives completed quiz outcomes.
type ResultRepo interface {
	Save(ctx context.Context, result *model.QuizResult) (string, error)
	GetByCallSID(ctx context.Context, callSID string) (*model.QuizResult, error)
}

type resultRepo struct {
	collection *mongo.Collection
}

// NewResultRepo creates a new quiz result repository.
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		collection: db.Collection("quiz_results"),
	}
}

func (r *resultRepo) Save(ctx context.Context, result *model.QuizResult) (string, error) {
	if result.ID == "" {
		result.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.collection.InsertOne(ctx, result); err != nil {
		return "", err
	}
	return result.ID, nil
}

func (r *resultRepo) GetByCallSID(ctx context.Context, callSID string) (*model.QuizResult, error) {
	var result model.QuizResult
	err := r.collection.FindOne(ctx, bson.M{"callSid": callSID}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
