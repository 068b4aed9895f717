package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is a scheduled tutoring session for a subject on a specific date.
// EnrolledStudents is a set: this code only ever appends with $addToSet and
// never removes entries.
type Session struct {
	ID               primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Subject          string               `json:"subject" bson:"subject"`
	Date             time.Time            `json:"date" bson:"date"`
	Topic            string               `json:"topic" bson:"topic"`
	MeetingLink      string               `json:"meeting_link,omitempty" bson:"meeting_link,omitempty"`
	EnrolledStudents []primitive.ObjectID `json:"enrolled_students" bson:"enrolled_students"`
	CreatedBy        primitive.ObjectID   `json:"created_by" bson:"created_by"`
	CreatedAt        time.Time            `json:"created_at" bson:"created_at"`
}
