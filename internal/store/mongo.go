package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitlogapp/fitlog-backend/internal/models"
)

// Mongo backs both stores with the "users" and "exercises" collections.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

var _ UserStore = (*Mongo)(nil)
var _ ExerciseStore = (*Mongo)(nil)

func (s *Mongo) users() *mongo.Collection     { return s.db.Collection("users") }
func (s *Mongo) exercises() *mongo.Collection { return s.db.Collection("exercises") }

func (s *Mongo) CreateUser(ctx context.Context, username string) (models.User, error) {
	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
	}
	if _, err := s.users().InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *Mongo) FindUserByID(ctx context.Context, id string) (models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	var user models.User
	err = s.users().FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *Mongo) AllUsers(ctx context.Context) ([]models.User, error) {
	// Projection matches the listing contract: _id and username only.
	findOptions := options.Find()
	findOptions.SetProjection(bson.M{"_id": 1, "username": 1})

	cursor, err := s.users().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Mongo) CreateExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
	exercise.ID = primitive.NewObjectID()
	if _, err := s.exercises().InsertOne(ctx, exercise); err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

func (s *Mongo) FindExercises(ctx context.Context, userID string, q LogQuery) ([]models.Exercise, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.M{"date": 1})
	if q.Limit > 0 {
		findOptions.SetLimit(q.Limit)
	}

	cursor, err := s.exercises().Find(ctx, logFilter(userID, q), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var log []models.Exercise
	if err := cursor.All(ctx, &log); err != nil {
		return nil, err
	}
	return log, nil
}

// logFilter builds the exercises filter. The date sub-document is only added
// when at least one bound is present: an empty {"date": {}} would match
// nothing useful and must never be sent.
func logFilter(userID string, q LogQuery) bson.M {
	filter := bson.M{"userId": userID}
	if q.From == nil && q.To == nil {
		return filter
	}

	date := bson.M{}
	if q.From != nil {
		date["$gte"] = *q.From
	}
	if q.To != nil {
		date["$lte"] = *q.To
	}
	filter["date"] = date
	return filter
}
