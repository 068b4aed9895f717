package enrollment

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
)

// Actor is the authenticated caller of a service operation, as supplied by
// the auth middleware.
type Actor struct {
	ID   primitive.ObjectID
	Role models.UserRole
}

func (a Actor) isAdmin() bool {
	return a.Role == models.RoleAdmin
}

// CreateRequest carries a student's enrollment request. ImagePath is the
// stored proof-of-payment file path, already written to disk by the upload
// layer.
type CreateRequest struct {
	Message   string `validate:"required"`
	Subject   string `validate:"required"`
	Month     int    `validate:"required,min=1,max=12"`
	Year      int    `validate:"required,min=2000"`
	ImagePath string `validate:"required"`
}

// UpdateRequest is the admin edit of an existing enrollment. Only non-nil
// fields are written; no access propagation is re-run.
type UpdateRequest struct {
	Message *string
	Subject *string
	Month   *int `validate:"omitempty,min=1,max=12"`
	Year    *int `validate:"omitempty,min=2000"`
}

// DecisionNotifier is told about approve/reject decisions so the student
// can be e-mailed. Implementations must not block the caller.
type DecisionNotifier interface {
	NotifyDecision(user *models.User, e *models.Enrollment)
}

type Service struct {
	store    Store
	prop     *Propagator
	notifier DecisionNotifier
	logger   zerolog.Logger
	now      func() time.Time
}

func NewService(store Store, prop *Propagator, notifier DecisionNotifier, logger zerolog.Logger) *Service {
	return &Service{
		store:    store,
		prop:     prop,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Create validates and persists a new pending enrollment, then enrolls the
// student into every already-scheduled session of that subject in the
// requested month. The roster writes are not rolled back if a later step
// fails; an error after the insert still leaves the enrollment persisted.
func (s *Service) Create(ctx context.Context, actor Actor, req CreateRequest) (*models.Enrollment, error) {
	if !models.IsValidSubject(req.Subject) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, req.Subject)
	}
	if s.isPastMonth(req.Year, req.Month) {
		return nil, ErrPastMonth
	}

	e := &models.Enrollment{
		ID:        primitive.NewObjectID(),
		UserID:    actor.ID,
		Message:   req.Message,
		Subject:   req.Subject,
		Month:     req.Month,
		Year:      req.Year,
		ImagePath: req.ImagePath,
		Status:    models.StatusPending,
		CreatedAt: s.now(),
	}
	if err := s.store.InsertEnrollment(ctx, e); err != nil {
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}

	if err := s.prop.EnrollSessions(ctx, actor.ID, req.Subject, req.Month, req.Year); err != nil {
		s.logger.Error().Err(err).
			Str("enrollment_id", e.ID.Hex()).
			Str("subject", req.Subject).
			Msg("session roster propagation failed after create")
		return nil, err
	}
	return e, nil
}

// List returns every enrollment, most recent first, expanded with the
// student's name and e-mail and the reviewer's name. Admin-only.
func (s *Service) List(ctx context.Context, actor Actor) ([]models.EnrollmentDetail, error) {
	if !actor.isAdmin() {
		return nil, ErrForbidden
	}
	details, err := s.store.ListEnrollmentDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return details, nil
}

// Decide sets an enrollment's status to approved or rejected and
// synchronizes the student's access. Decisions may be replayed: a later
// decision overwrites an earlier one. The enrollment, user, and session
// writes are independent; a failure partway leaves the earlier writes in
// place.
func (s *Service) Decide(ctx context.Context, actor Actor, id primitive.ObjectID, status models.EnrollmentStatus) (*models.Enrollment, error) {
	if !actor.isAdmin() {
		return nil, ErrForbidden
	}
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, ErrInvalidStatus
	}

	e, err := s.store.GetEnrollment(ctx, id)
	if err != nil {
		return nil, err
	}

	reviewedAt := s.now()
	if err := s.store.SetDecision(ctx, id, status, actor.ID, reviewedAt); err != nil {
		return nil, fmt.Errorf("set decision: %w", err)
	}
	e.Status = status
	e.ReviewedBy = actor.ID
	e.ReviewedAt = &reviewedAt

	switch status {
	case models.StatusApproved:
		if err := s.prop.Grant(ctx, e.UserID, e.Subject, e.Month, e.Year); err != nil {
			s.logger.Error().Err(err).
				Str("enrollment_id", id.Hex()).
				Msg("access grant failed after approval")
			return nil, err
		}
	case models.StatusRejected:
		if err := s.prop.Revoke(ctx, e.UserID, e.Subject); err != nil {
			s.logger.Error().Err(err).
				Str("enrollment_id", id.Hex()).
				Msg("access revoke failed after rejection")
			return nil, err
		}
	}

	s.notify(ctx, e)
	return e, nil
}

func (s *Service) notify(ctx context.Context, e *models.Enrollment) {
	if s.notifier == nil {
		return
	}
	user, err := s.store.GetUser(ctx, e.UserID)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("user_id", e.UserID.Hex()).
			Msg("skipping decision notification, user lookup failed")
		return
	}
	s.notifier.NotifyDecision(user, e)
}

// Update applies an admin edit to subject/month/year/message. Session and
// user linkage is intentionally not re-validated or re-propagated.
func (s *Service) Update(ctx context.Context, actor Actor, id primitive.ObjectID, req UpdateRequest) (*models.Enrollment, error) {
	if !actor.isAdmin() {
		return nil, ErrForbidden
	}
	if req.Subject != nil && !models.IsValidSubject(*req.Subject) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, *req.Subject)
	}

	if _, err := s.store.GetEnrollment(ctx, id); err != nil {
		return nil, err
	}
	upd := FieldUpdate{
		Message: req.Message,
		Subject: req.Subject,
		Month:   req.Month,
		Year:    req.Year,
	}
	if err := s.store.UpdateEnrollmentFields(ctx, id, upd); err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	return s.store.GetEnrollment(ctx, id)
}

// Delete hard-deletes an enrollment. Previously granted session or subject
// access is not revoked.
func (s *Service) Delete(ctx context.Context, actor Actor, id primitive.ObjectID) error {
	if !actor.isAdmin() {
		return ErrForbidden
	}
	if _, err := s.store.GetEnrollment(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteEnrollment(ctx, id); err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}

// PendingCount reports the number of enrollments still awaiting a decision.
func (s *Service) PendingCount(ctx context.Context) (int64, error) {
	return s.store.CountPending(ctx)
}

func (s *Service) isPastMonth(year, month int) bool {
	now := s.now()
	return year < now.Year() || (year == now.Year() && month < int(now.Month()))
}
