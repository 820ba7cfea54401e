package mongodb

import (
	"context"

	"yogic-backend/internal/content/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSettingsRepository implements the SettingsRepository interface using
// MongoDB. The singleton lives under the fixed key model.SettingsKey, so
// concurrent first reads cannot create duplicate documents.
type MongoSettingsRepository struct {
	settingsCollection *mongo.Collection
}

// NewMongoSettingsRepository creates a new MongoDB settings repository
func NewMongoSettingsRepository(db *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{
		settingsCollection: db.Collection("settings"),
	}
}

// Get returns the singleton, creating it with defaults if absent. The lazy
// creation is a $setOnInsert upsert on the fixed key, so the write is
// atomic against concurrent readers.
func (r *MongoSettingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	defaults := model.DefaultSettings()

	filter := bson.M{"_id": model.SettingsKey}
	update := bson.M{"$setOnInsert": bson.M{
		"adminPhone":     defaults.AdminPhone,
		"welcomeMessage": defaults.WelcomeMessage,
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var settings model.Settings
	if err := r.settingsCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update upserts adminPhone and welcomeMessage on the fixed key
func (r *MongoSettingsRepository) Update(ctx context.Context, adminPhone, welcomeMessage string) (*model.Settings, error) {
	filter := bson.M{"_id": model.SettingsKey}
	update := bson.M{"$set": bson.M{
		"adminPhone":     adminPhone,
		"welcomeMessage": welcomeMessage,
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var settings model.Settings
	if err := r.settingsCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
