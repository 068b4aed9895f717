package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
)

var ErrUnknownSubject = errors.New("unknown subject")

type CreateRequest struct {
	Subject     string    `validate:"required"`
	Date        time.Time `validate:"required"`
	Topic       string    `validate:"required"`
	MeetingLink string
}

// Store is the document-store surface for session scheduling.
type Store interface {
	InsertSession(ctx context.Context, s *models.Session) error
	ListSessions(ctx context.Context) ([]models.Session, error)
	// ApprovedUserIDs returns the distinct users holding an approved
	// enrollment for the subject in the given month/year.
	ApprovedUserIDs(ctx context.Context, subject string, month, year int) ([]primitive.ObjectID, error)
}

type Service struct {
	store  Store
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// Create schedules a session and seeds its roster with every student whose
// enrollment for that subject and month is already approved, so sessions
// scheduled after an approval still carry the approved students.
func (s *Service) Create(ctx context.Context, createdBy primitive.ObjectID, req CreateRequest) (*models.Session, error) {
	if !models.IsValidSubject(req.Subject) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, req.Subject)
	}

	roster, err := s.store.ApprovedUserIDs(ctx, req.Subject, int(req.Date.Month()), req.Date.Year())
	if err != nil {
		return nil, fmt.Errorf("collect approved students: %w", err)
	}
	if roster == nil {
		roster = []primitive.ObjectID{}
	}

	session := &models.Session{
		ID:               primitive.NewObjectID(),
		Subject:          req.Subject,
		Date:             req.Date,
		Topic:            req.Topic,
		MeetingLink:      req.MeetingLink,
		EnrolledStudents: roster,
		CreatedBy:        createdBy,
		CreatedAt:        s.now(),
	}
	if err := s.store.InsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	s.logger.Info().
		Str("session_id", session.ID.Hex()).
		Str("subject", session.Subject).
		Int("seeded_students", len(roster)).
		Msg("session scheduled")
	return session, nil
}

func (s *Service) List(ctx context.Context) ([]models.Session, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}
