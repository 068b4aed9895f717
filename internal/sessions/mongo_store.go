package sessions

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
)

type MongoStore struct {
	sessions    *mongo.Collection
	enrollments *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		sessions:    db.Collection("sessions"),
		enrollments: db.Collection("enrollments"),
	}
}

func (s *MongoStore) InsertSession(ctx context.Context, session *models.Session) error {
	_, err := s.sessions.InsertOne(ctx, session)
	return err
}

func (s *MongoStore) ListSessions(ctx context.Context) ([]models.Session, error) {
	cursor, err := s.sessions.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *MongoStore) ApprovedUserIDs(ctx context.Context, subject string, month, year int) ([]primitive.ObjectID, error) {
	values, err := s.enrollments.Distinct(ctx, "user_id", bson.M{
		"subject": subject,
		"month":   month,
		"year":    year,
		"status":  models.StatusApproved,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
