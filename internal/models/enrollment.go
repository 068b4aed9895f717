package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EnrollmentStatus string

const (
	StatusPending  EnrollmentStatus = "pending"
	StatusApproved EnrollmentStatus = "approved"
	StatusRejected EnrollmentStatus = "rejected"
)

// Enrollment is a student's request for access to a subject's content and
// sessions for a given month/year, reviewed by an admin.
type Enrollment struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"user_id" bson:"user_id"`
	Message    string             `json:"message" bson:"message"`
	Subject    string             `json:"subject" bson:"subject"`
	Month      int                `json:"month" bson:"month"`
	Year       int                `json:"year" bson:"year"`
	ImagePath  string             `json:"image_path" bson:"image_path"`
	Status     EnrollmentStatus   `json:"status" bson:"status"`
	ReviewedBy primitive.ObjectID `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	ReviewedAt *time.Time         `json:"reviewed_at,omitempty" bson:"reviewed_at,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

// PersonRef is the identity slice of a user that enrollment listings are
// expanded with.
type PersonRef struct {
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
}

// EnrollmentDetail is an Enrollment joined with the requesting student's
// identity and, once reviewed, the reviewing admin's.
type EnrollmentDetail struct {
	Enrollment `bson:",inline"`
	Student    *PersonRef `json:"student,omitempty" bson:"student,omitempty"`
	Reviewer   *PersonRef `json:"reviewer,omitempty" bson:"reviewer,omitempty"`
}
