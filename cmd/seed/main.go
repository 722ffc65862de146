package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"apnidisha/internal/model"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DBNAME")
	if dbName == "" {
		dbName = "apnidisha"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	streams := []interface{}{
		model.Stream{ID: primitive.NewObjectID().Hex(), Name: "Science", Description: "Physics, chemistry, mathematics and biology tracks leading to engineering and medical degrees.", Careers: []string{"Engineer", "Doctor", "Researcher"}},
		model.Stream{ID: primitive.NewObjectID().Hex(), Name: "Commerce", Description: "Accountancy, business studies and economics leading to management and finance careers.", Careers: []string{"Chartered Accountant", "Banker", "Entrepreneur"}},
		model.Stream{ID: primitive.NewObjectID().Hex(), Name: "Arts", Description: "Humanities, languages and social sciences leading to law, design and civil services.", Careers: []string{"Lawyer", "Designer", "Civil Servant"}},
	}
	if _, err := db.Collection("streams").InsertMany(ctx, streams); err != nil {
		log.Fatalf("Failed to insert streams: %v", err)
	}

	colleges := []interface{}{
		model.College{ID: primitive.NewObjectID().Hex(), Name: "Government Polytechnic Patna", City: "Patna", State: "Bihar", Streams: []string{"Science"}},
		model.College{ID: primitive.NewObjectID().Hex(), Name: "Magadh Mahila College", City: "Patna", State: "Bihar", Streams: []string{"Arts", "Commerce"}},
		model.College{ID: primitive.NewObjectID().Hex(), Name: "College of Commerce, Arts and Science", City: "Patna", State: "Bihar", Streams: []string{"Commerce", "Arts", "Science"}},
	}
	if _, err := db.Collection("colleges").InsertMany(ctx, colleges); err != nil {
		log.Fatalf("Failed to insert colleges: %v", err)
	}

	content := []interface{}{
		model.Content{ID: primitive.NewObjectID().Hex(), Title: "How to choose a stream after class 10", Body: "Compare your interests against what each stream actually teaches before deciding.", Tags: []string{"guidance"}},
		model.Content{ID: primitive.NewObjectID().Hex(), Title: "Scholarships for Bihar students", Body: "State and central scholarships you can apply for with class 10 and 12 marksheets.", Tags: []string{"scholarships"}},
	}
	if _, err := db.Collection("content").InsertMany(ctx, content); err != nil {
		log.Fatalf("Failed to insert content: %v", err)
	}

	fmt.Printf("Seeded %d streams, %d colleges, %d content entries into '%s'\n",
		len(streams), len(colleges), len(content), dbName)
}
