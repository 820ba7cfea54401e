package mongodb

import (
	"context"
	"time"

	"yogic-backend/internal/auth/domain/model"
	apperrors "yogic-backend/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdminRepository implements the AdminRepository interface using MongoDB
type MongoAdminRepository struct {
	db               *mongo.Database
	adminsCollection *mongo.Collection
}

// NewMongoAdminRepository creates a new MongoDB admin repository.
// A unique index on username is the only uniqueness constraint in the system.
func NewMongoAdminRepository(db *mongo.Database) (*MongoAdminRepository, error) {
	repo := &MongoAdminRepository{
		db:               db,
		adminsCollection: db.Collection("admins"),
	}

	ctx := context.Background()

	usernameIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.adminsCollection.Indexes().CreateOne(ctx, usernameIndex); err != nil {
		return nil, err
	}

	idIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetSparse(true),
	}
	if _, err := repo.adminsCollection.Indexes().CreateOne(ctx, idIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// CreateAdmin creates a new admin credential record
func (r *MongoAdminRepository) CreateAdmin(ctx context.Context, admin *model.Admin) error {
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	if admin.ID == "" {
		admin.ID = primitive.NewObjectID().Hex()
	}

	doc := bson.M{
		"id":            admin.ID,
		"username":      admin.Username,
		"password_hash": admin.PasswordHash,
		"created_at":    admin.CreatedAt,
		"updated_at":    admin.UpdatedAt,
	}

	_, err := r.adminsCollection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrConflict
	}
	return err
}

// GetAdminByUsername fetches an admin by username
func (r *MongoAdminRepository) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	err := r.adminsCollection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetAdminByID fetches an admin by its server-assigned ID
func (r *MongoAdminRepository) GetAdminByID(ctx context.Context, id string) (*model.Admin, error) {
	var admin model.Admin
	err := r.adminsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
