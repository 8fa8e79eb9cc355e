package alert

import (
	"ReliefStock-Backend/entities"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	// AlertLogRepository writes denormalized alert documents to the document
	// store. All writes here are best-effort from the caller's point of view.
	AlertLogRepository interface {
		InsertAlertLog(ctx context.Context, log *entities.AlertLog) error
		GetAlertLogs(ctx context.Context, skip, limit int64) ([]*entities.AlertLog, error)
		CountAlertLogs(ctx context.Context) (int64, error)
		AcknowledgeAlertLogs(ctx context.Context, alertID string) error
	}

	alertLogRepository struct {
		collection *mongo.Collection
	}
)

func NewAlertLogRepository(db *mongo.Database) AlertLogRepository {
	return &alertLogRepository{collection: db.Collection("alerts")}
}

func (r *alertLogRepository) InsertAlertLog(ctx context.Context, log *entities.AlertLog) error {
	_, err := r.collection.InsertOne(ctx, log)
	return err
}

func (r *alertLogRepository) GetAlertLogs(ctx context.Context, skip, limit int64) ([]*entities.AlertLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*entities.AlertLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *alertLogRepository) CountAlertLogs(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}

func (r *alertLogRepository) AcknowledgeAlertLogs(ctx context.Context, alertID string) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"alert_id": alertID},
		bson.M{"$set": bson.M{"is_acknowledged": true}},
	)
	return err
}
