package enrollment

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
)

// MongoStore implements Store against the enrollments, sessions, and users
// collections.
type MongoStore struct {
	enrollments *mongo.Collection
	sessions    *mongo.Collection
	users       *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		enrollments: db.Collection("enrollments"),
		sessions:    db.Collection("sessions"),
		users:       db.Collection("users"),
	}
}

func (s *MongoStore) InsertEnrollment(ctx context.Context, e *models.Enrollment) error {
	_, err := s.enrollments.InsertOne(ctx, e)
	return err
}

func (s *MongoStore) GetEnrollment(ctx context.Context, id primitive.ObjectID) (*models.Enrollment, error) {
	var e models.Enrollment
	err := s.enrollments.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// ListEnrollmentDetails joins each enrollment with the requesting student
// and, when present, the reviewing admin, newest first.
func (s *MongoStore) ListEnrollmentDetails(ctx context.Context) ([]models.EnrollmentDetail, error) {
	pipeline := mongo.Pipeline{
		{
			{
				Key: "$lookup",
				Value: bson.D{
					{Key: "from", Value: "users"},
					{Key: "localField", Value: "user_id"},
					{Key: "foreignField", Value: "_id"},
					{Key: "as", Value: "student"},
				},
			},
		},
		{
			{
				Key: "$lookup",
				Value: bson.D{
					{Key: "from", Value: "users"},
					{Key: "localField", Value: "reviewed_by"},
					{Key: "foreignField", Value: "_id"},
					{Key: "as", Value: "reviewer"},
				},
			},
		},
		{
			{
				Key: "$addFields",
				Value: bson.D{
					{Key: "student", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$student", 0}}}},
					{Key: "reviewer", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$reviewer", 0}}}},
				},
			},
		},
		{
			{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}},
		},
	}

	cursor, err := s.enrollments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var details []models.EnrollmentDetail
	if err = cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	for i := range details {
		// Reviewer identity is name-only in listings.
		if details[i].Reviewer != nil {
			details[i].Reviewer.Email = ""
		}
	}
	return details, nil
}

func (s *MongoStore) UpdateEnrollmentFields(ctx context.Context, id primitive.ObjectID, upd FieldUpdate) error {
	set := bson.M{}
	if upd.Message != nil {
		set["message"] = *upd.Message
	}
	if upd.Subject != nil {
		set["subject"] = *upd.Subject
	}
	if upd.Month != nil {
		set["month"] = *upd.Month
	}
	if upd.Year != nil {
		set["year"] = *upd.Year
	}
	if len(set) == 0 {
		return nil
	}

	res, err := s.enrollments.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) SetDecision(ctx context.Context, id primitive.ObjectID, status models.EnrollmentStatus, reviewedBy primitive.ObjectID, reviewedAt time.Time) error {
	res, err := s.enrollments.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":      status,
			"reviewed_by": reviewedBy,
			"reviewed_at": reviewedAt,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteEnrollment(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.enrollments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) CountPending(ctx context.Context) (int64, error) {
	return s.enrollments.CountDocuments(ctx, bson.M{"status": models.StatusPending})
}

func (s *MongoStore) AddToSessionRosters(ctx context.Context, userID primitive.ObjectID, subject string, from, to time.Time) error {
	_, err := s.sessions.UpdateMany(ctx, bson.M{
		"subject": subject,
		"date":    bson.M{"$gte": from, "$lt": to},
	}, bson.M{
		"$addToSet": bson.M{"enrolled_students": userID},
	})
	return err
}

func (s *MongoStore) AddAccessibleSubject(ctx context.Context, userID primitive.ObjectID, subject string) error {
	_, err := s.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$addToSet": bson.M{"accessible_subjects": subject},
	})
	return err
}

func (s *MongoStore) RemoveAccessibleSubject(ctx context.Context, userID primitive.ObjectID, subject string) error {
	_, err := s.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$pull": bson.M{"accessible_subjects": subject},
	})
	return err
}

func (s *MongoStore) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
