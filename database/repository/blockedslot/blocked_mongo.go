package blockedRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wavehouse/database"
	"wavehouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoBlockedSlotRepo implements BlockedSlotRepository using MongoDB.
type MongoBlockedSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedSlotRepo creates a new instance of BlockedSlotRepository using MongoDB.
func NewMongoBlockedSlotRepo() BlockedSlotRepository {
	repo := &MongoBlockedSlotRepo{coll: database.DB().Collection("blocked_slots")}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to create blocked slot indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBlockedSlotRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("unique_id")},
		// One slot per hour.
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}}, Options: options.Index().SetUnique(true).SetName("date_start_idx")},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

var sortByDateStart = bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}}

func (r *MongoBlockedSlotRepo) Create(slot *models.BlockedSlot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create blocked slot: %w", err)
	}
	return nil
}

func (r *MongoBlockedSlotRepo) CreateMany(slots []models.BlockedSlot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(slots))
	for i := range slots {
		if slots[i].CreatedAt.IsZero() {
			slots[i].CreatedAt = now
		}
		docs = append(docs, slots[i])
	}

	// Unordered so existing hours are skipped and the rest still land.
	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	if err != nil {
		var bwe mongo.BulkWriteException
		if errors.As(err, &bwe) && onlyDuplicates(bwe) {
			return len(slots) - len(bwe.WriteErrors), nil
		}
		return inserted, fmt.Errorf("failed to create blocked slots: %w", err)
	}
	return inserted, nil
}

func onlyDuplicates(bwe mongo.BulkWriteException) bool {
	if bwe.WriteConcernError != nil {
		return false
	}
	for _, we := range bwe.WriteErrors {
		if we.Code != 11000 {
			return false
		}
	}
	return true
}

func (r *MongoBlockedSlotRepo) find(filter bson.M) ([]models.BlockedSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sortByDateStart))
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked slots: %w", err)
	}
	defer cursor.Close(ctx)

	slots := []models.BlockedSlot{}
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode blocked slots: %w", err)
	}
	return slots, nil
}

func (r *MongoBlockedSlotRepo) ListByDate(date string) ([]models.BlockedSlot, error) {
	return r.find(bson.M{"date": date})
}

func (r *MongoBlockedSlotRepo) ListAll() ([]models.BlockedSlot, error) {
	return r.find(bson.M{})
}

func (r *MongoBlockedSlotRepo) Delete(id string) (*models.BlockedSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var slot models.BlockedSlot
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&slot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete blocked slot with id %s: %w", id, err)
	}
	return &slot, nil
}

func (r *MongoBlockedSlotRepo) DeleteByDate(date string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"date": date})
	if err != nil {
		return 0, fmt.Errorf("failed to delete blocked slots for %s: %w", date, err)
	}
	return res.DeletedCount, nil
}

func (r *MongoBlockedSlotRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count blocked slots: %w", err)
	}
	return n, nil
}
