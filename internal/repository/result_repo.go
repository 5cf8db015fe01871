// Package repository persists assessment results to MongoDB.
package repository

import (
	"aimaturity/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRepo handles MongoDB operations for assessment results
type ResultRepo interface {
	// Save stores the organization's latest result, replacing any prior one
	Save(ctx context.Context, result *model.AssessmentResult) error
	// Get returns the organization's result, or (nil, nil) if none exists
	Get(ctx context.Context, organizationID string) (*model.AssessmentResult, error)
	// List returns the most recent results across organizations
	List(ctx context.Context, limit int64) ([]model.AssessmentResult, error)
}

type resultRepo struct {
	results *mongo.Collection
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *mongo.Database) ResultRepo {
	return &resultRepo{
		results: db.Collection("assessment_results"),
	}
}

func (r *resultRepo) Save(ctx context.Context, result *model.AssessmentResult) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.results.ReplaceOne(ctx, bson.M{"organizationId": result.OrganizationID}, result, opts)
	return err
}

func (r *resultRepo) Get(ctx context.Context, organizationID string) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	err := r.results.FindOne(ctx, bson.M{"organizationId": organizationID}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepo) List(ctx context.Context, limit int64) ([]model.AssessmentResult, error) {
	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(limit)
	cursor, err := r.results.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []model.AssessmentResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
