package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mishumang/prame/internal/domain"
)

type ProgressRepo struct {
	col *mongo.Collection
}

func NewProgressRepo(db *mongo.Database) *ProgressRepo {
	return &ProgressRepo{col: db.Collection("progress")}
}

func (r *ProgressRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "uid", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uid_unique"),
	})
	return err
}

// Merge folds entries into the stored mapping in a single atomic update.
// Only the provided date keys are touched; the upsert creates the record
// on a user's first write.
func (r *ProgressRepo) Merge(ctx context.Context, uid string, entries map[string]domain.DayActivity) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"uid": uid},
		mergeUpdate(entries),
		options.Update().SetUpsert(true),
	)
	return err
}

// mergeUpdate builds a $set document with one dotted key per date so the
// merge replaces matching days and leaves the rest of the mapping alone.
func mergeUpdate(entries map[string]domain.DayActivity) bson.M {
	set := bson.M{}
	for date, entry := range entries {
		set["progress_data."+date] = entry
	}
	return bson.M{"$set": set}
}

// Get returns the stored mapping, or an empty one when the user has no
// record yet. Retrieval never fails on a missing record.
func (r *ProgressRepo) Get(ctx context.Context, uid string) (map[string]domain.DayActivity, error) {
	var p domain.Progress
	err := r.col.FindOne(ctx, bson.M{"uid": uid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return map[string]domain.DayActivity{}, nil
	}
	if err != nil {
		return nil, err
	}
	if p.ProgressData == nil {
		p.ProgressData = map[string]domain.DayActivity{}
	}
	return p.ProgressData, nil
}
