package enrollment

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MonthWindow returns the half-open interval [year-month-01, nextMonth-01)
// in UTC. Every "session belongs to this month" check in the codebase goes
// through this single predicate.
func MonthWindow(year, month int) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// Propagator synchronizes session rosters and the user's accessible-subject
// set after an enrollment is created or decided. All writes are idempotent
// set operations, so replaying a grant is safe.
type Propagator struct {
	store Store
}

func NewPropagator(store Store) *Propagator {
	return &Propagator{store: store}
}

// EnrollSessions adds the user to the roster of every session for the
// subject within the month window. Used at creation time, when the request
// is still pending and must not grant subject access.
func (p *Propagator) EnrollSessions(ctx context.Context, userID primitive.ObjectID, subject string, month, year int) error {
	from, to := MonthWindow(year, month)
	if err := p.store.AddToSessionRosters(ctx, userID, subject, from, to); err != nil {
		return fmt.Errorf("add to session rosters: %w", err)
	}
	return nil
}

// Grant enrolls the user into the matching sessions and marks the subject
// accessible. Used on approval.
func (p *Propagator) Grant(ctx context.Context, userID primitive.ObjectID, subject string, month, year int) error {
	if err := p.EnrollSessions(ctx, userID, subject, month, year); err != nil {
		return err
	}
	if err := p.store.AddAccessibleSubject(ctx, userID, subject); err != nil {
		return fmt.Errorf("add accessible subject: %w", err)
	}
	return nil
}

// Revoke removes the subject from the user's accessible set. This is
// unconditional: a rejection revokes the subject even when another approved
// enrollment for a different period granted it.
func (p *Propagator) Revoke(ctx context.Context, userID primitive.ObjectID, subject string) error {
	if err := p.store.RemoveAccessibleSubject(ctx, userID, subject); err != nil {
		return fmt.Errorf("remove accessible subject: %w", err)
	}
	return nil
}
