package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smart-hostel/config"
	"smart-hostel/models"
)

type OutpassRepository interface {
	Create(ctx context.Context, req *models.OutpassRequest) (*models.OutpassRequest, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.OutpassRequest, error)
	FindApprovedForStudent(ctx context.Context, id primitive.ObjectID, studentID string) (*models.OutpassRequest, error)
	// Find returns matching requests, most recently created first.
	Find(ctx context.Context, filter models.OutpassFilter) ([]models.OutpassRequest, error)
	Count(ctx context.Context, filter models.OutpassFilter) (int64, error)
	// Transition applies change only while the stored request is still in phase from.
	// It reports false when another writer got there first.
	Transition(ctx context.Context, id primitive.ObjectID, from models.Phase, change models.OutpassChange) (bool, error)
}

type outpassRepository struct {
	collection *mongo.Collection
}

func NewOutpassRepository(db *mongo.Database) OutpassRepository {
	return &outpassRepository{
		collection: db.Collection(config.OutpassCollection),
	}
}

func (r *outpassRepository) Create(ctx context.Context, req *models.OutpassRequest) (*models.OutpassRequest, error) {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create outpass request: %w", err)
	}
	return req, nil
}

func (r *outpassRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.OutpassRequest, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *outpassRepository) FindApprovedForStudent(ctx context.Context, id primitive.ObjectID, studentID string) (*models.OutpassRequest, error) {
	return r.findOne(ctx, bson.M{"_id": id, "studentId": studentID, "status": models.StatusApproved})
}

func (r *outpassRepository) findOne(ctx context.Context, filter bson.M) (*models.OutpassRequest, error) {
	var req models.OutpassRequest
	err := r.collection.FindOne(ctx, filter).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find outpass request: %w", err)
	}
	return &req, nil
}

func (r *outpassRepository) Find(ctx context.Context, filter models.OutpassFilter) ([]models.OutpassRequest, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if filter.Limit > 0 {
		findOptions.SetLimit(filter.Limit)
	}

	cursor, err := r.collection.Find(ctx, outpassFilterDoc(filter), findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find outpass requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []models.OutpassRequest{}
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode outpass requests: %w", err)
	}
	return requests, nil
}

func (r *outpassRepository) Count(ctx context.Context, filter models.OutpassFilter) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, outpassFilterDoc(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count outpass requests: %w", err)
	}
	return total, nil
}

func (r *outpassRepository) Transition(ctx context.Context, id primitive.ObjectID, from models.Phase, change models.OutpassChange) (bool, error) {
	filter, err := phaseFilterDoc(from)
	if err != nil {
		return false, err
	}
	filter["_id"] = id

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": changeDoc(change)})
	if err != nil {
		return false, fmt.Errorf("failed to update outpass request: %w", err)
	}
	return result.MatchedCount == 1, nil
}

// phaseFilterDoc matches the documents whose derived phase is p.
func phaseFilterDoc(p models.Phase) (bson.M, error) {
	switch p {
	case models.PhasePending:
		return bson.M{"status": models.StatusPending}, nil
	case models.PhaseRejected:
		return bson.M{"status": models.StatusRejected}, nil
	case models.PhaseApproved:
		return bson.M{"status": models.StatusApproved, "scannedExit": false, "scannedEntry": false}, nil
	case models.PhaseExited:
		return bson.M{"status": models.StatusApproved, "scannedExit": true, "scannedEntry": false}, nil
	case models.PhaseReturned:
		return bson.M{"status": models.StatusApproved, "scannedExit": true, "scannedEntry": true}, nil
	}
	return nil, fmt.Errorf("no filter for phase %q", p)
}

func changeDoc(ch models.OutpassChange) bson.M {
	set := bson.M{}
	if ch.Status != "" {
		set["status"] = ch.Status
	}
	if ch.QRCode != "" {
		set["qrCode"] = ch.QRCode
	}
	if ch.ScannedExit {
		set["scannedExit"] = true
		set["exitTime"] = ch.ExitTime
	}
	if ch.ScannedEntry {
		set["scannedEntry"] = true
		set["entryTime"] = ch.EntryTime
		set["lateReturn"] = ch.LateReturn
	}
	if !ch.UpdatedAt.IsZero() {
		set["updatedAt"] = ch.UpdatedAt
	}
	return set
}

func outpassFilterDoc(f models.OutpassFilter) bson.M {
	filter := bson.M{}
	if f.StudentID != "" {
		filter["studentId"] = f.StudentID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.ScannedExit != nil {
		filter["scannedExit"] = *f.ScannedExit
	}
	if f.ScannedEntry != nil {
		filter["scannedEntry"] = *f.ScannedEntry
	}
	if f.LateReturn != nil {
		filter["lateReturn"] = *f.LateReturn
	}
	if f.HasQRCode {
		filter["qrCode"] = bson.M{"$exists": true, "$ne": ""}
	}
	return filter
}
