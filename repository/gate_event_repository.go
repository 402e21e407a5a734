package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smart-hostel/config"
	"smart-hostel/models"
)

// GateEventRepository is an append-only log of scan attempts.
type GateEventRepository interface {
	Create(ctx context.Context, event *models.GateEvent) error
	Recent(ctx context.Context, limit int64) ([]models.GateEvent, error)
}

type gateEventRepository struct {
	collection *mongo.Collection
}

func NewGateEventRepository(db *mongo.Database) GateEventRepository {
	return &gateEventRepository{
		collection: db.Collection(config.GateEventCollection),
	}
}

func (r *gateEventRepository) Create(ctx context.Context, event *models.GateEvent) error {
	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to record gate event: %w", err)
	}
	return nil
}

func (r *gateEventRepository) Recent(ctx context.Context, limit int64) ([]models.GateEvent, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "scannedAt", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find gate events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []models.GateEvent{}
	if err = cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode gate events: %w", err)
	}
	return events, nil
}
