package enrollment

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
)

// FieldUpdate carries the admin-editable enrollment fields. Nil pointers
// leave the stored value untouched.
type FieldUpdate struct {
	Message *string
	Subject *string
	Month   *int
	Year    *int
}

// Store is the document-store surface the enrollment workflow needs. The
// roster and subject-set mutations must behave as idempotent set
// operations: adding an element that is already present is a no-op.
type Store interface {
	InsertEnrollment(ctx context.Context, e *models.Enrollment) error
	GetEnrollment(ctx context.Context, id primitive.ObjectID) (*models.Enrollment, error)
	ListEnrollmentDetails(ctx context.Context) ([]models.EnrollmentDetail, error)
	UpdateEnrollmentFields(ctx context.Context, id primitive.ObjectID, upd FieldUpdate) error
	SetDecision(ctx context.Context, id primitive.ObjectID, status models.EnrollmentStatus, reviewedBy primitive.ObjectID, reviewedAt time.Time) error
	DeleteEnrollment(ctx context.Context, id primitive.ObjectID) error
	CountPending(ctx context.Context) (int64, error)

	// AddToSessionRosters adds userID to the roster of every session for
	// subject whose date falls in [from, to).
	AddToSessionRosters(ctx context.Context, userID primitive.ObjectID, subject string, from, to time.Time) error
	AddAccessibleSubject(ctx context.Context, userID primitive.ObjectID, subject string) error
	RemoveAccessibleSubject(ctx context.Context, userID primitive.ObjectID, subject string) error

	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}
