package mongodb

import (
	"context"
	"time"

	"yogic-backend/internal/content/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContentRepository implements the ContentRepository interface using MongoDB
type MongoContentRepository struct {
	db *mongo.Database
}

// NewMongoContentRepository creates a new MongoDB content repository.
// Blogs, asanas and facts get a descending date index since every listing
// sorts on it.
func NewMongoContentRepository(db *mongo.Database) (*MongoContentRepository, error) {
	repo := &MongoContentRepository{db: db}

	ctx := context.Background()
	dateIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: -1}},
	}
	for _, kind := range []model.Kind{model.KindFact, model.KindBlog, model.KindAsana} {
		if _, err := db.Collection(kind.Collection()).Indexes().CreateOne(ctx, dateIndex); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// CreateSchedule persists a class-batch offering with a server-assigned id
func (r *MongoContentRepository) CreateSchedule(ctx context.Context, schedule *model.Schedule) error {
	if schedule.ID == "" {
		schedule.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.db.Collection(model.KindSchedule.Collection()).InsertOne(ctx, schedule)
	return err
}

// CreateFact persists a fact with a server-assigned id and timestamp
func (r *MongoContentRepository) CreateFact(ctx context.Context, fact *model.Fact) error {
	if fact.ID == "" {
		fact.ID = primitive.NewObjectID().Hex()
	}
	if fact.Date.IsZero() {
		fact.Date = time.Now()
	}
	_, err := r.db.Collection(model.KindFact.Collection()).InsertOne(ctx, fact)
	return err
}

// CreateBlog persists a blog post with a server-assigned id and timestamp
func (r *MongoContentRepository) CreateBlog(ctx context.Context, blog *model.Blog) error {
	if blog.ID == "" {
		blog.ID = primitive.NewObjectID().Hex()
	}
	if blog.Date.IsZero() {
		blog.Date = time.Now()
	}
	_, err := r.db.Collection(model.KindBlog.Collection()).InsertOne(ctx, blog)
	return err
}

// CreateAsana persists an asana with a server-assigned id and timestamp
func (r *MongoContentRepository) CreateAsana(ctx context.Context, asana *model.Asana) error {
	if asana.ID == "" {
		asana.ID = primitive.NewObjectID().Hex()
	}
	if asana.Date.IsZero() {
		asana.Date = time.Now()
	}
	_, err := r.db.Collection(model.KindAsana.Collection()).InsertOne(ctx, asana)
	return err
}

// ListSchedules returns all schedules
func (r *MongoContentRepository) ListSchedules(ctx context.Context) ([]model.Schedule, error) {
	cursor, err := r.db.Collection(model.KindSchedule.Collection()).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	schedules := make([]model.Schedule, 0)
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// ListFacts returns all facts
func (r *MongoContentRepository) ListFacts(ctx context.Context) ([]model.Fact, error) {
	cursor, err := r.db.Collection(model.KindFact.Collection()).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	facts := make([]model.Fact, 0)
	if err := cursor.All(ctx, &facts); err != nil {
		return nil, err
	}
	return facts, nil
}

// ListBlogs returns all blog posts ordered newest-first
func (r *MongoContentRepository) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.db.Collection(model.KindBlog.Collection()).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	blogs := make([]model.Blog, 0)
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// ListAsanas returns all asanas ordered newest-first
func (r *MongoContentRepository) ListAsanas(ctx context.Context) ([]model.Asana, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.db.Collection(model.KindAsana.Collection()).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	asanas := make([]model.Asana, 0)
	if err := cursor.All(ctx, &asanas); err != nil {
		return nil, err
	}
	return asanas, nil
}

// DeleteByKind removes a record from the collection selected by kind
func (r *MongoContentRepository) DeleteByKind(ctx context.Context, kind model.Kind, id string) (bool, error) {
	res, err := r.db.Collection(kind.Collection()).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
