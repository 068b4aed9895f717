package enrollment

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
)

// memStore is an in-memory Store with the same set semantics the Mongo
// implementation gets from $addToSet and $pull.
type memStore struct {
	enrollments map[primitive.ObjectID]*models.Enrollment
	sessions    map[primitive.ObjectID]*models.Session
	users       map[primitive.ObjectID]*models.User
	rosterErr   error
}

func newMemStore() *memStore {
	return &memStore{
		enrollments: make(map[primitive.ObjectID]*models.Enrollment),
		sessions:    make(map[primitive.ObjectID]*models.Session),
		users:       make(map[primitive.ObjectID]*models.User),
	}
}

func (m *memStore) addUser(u *models.User) *models.User {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users[u.ID] = u
	return u
}

func (m *memStore) addSession(subject string, date time.Time) *models.Session {
	s := &models.Session{
		ID:      primitive.NewObjectID(),
		Subject: subject,
		Date:    date,
	}
	m.sessions[s.ID] = s
	return s
}

func (m *memStore) InsertEnrollment(_ context.Context, e *models.Enrollment) error {
	cp := *e
	m.enrollments[e.ID] = &cp
	return nil
}

func (m *memStore) GetEnrollment(_ context.Context, id primitive.ObjectID) (*models.Enrollment, error) {
	e, ok := m.enrollments[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *memStore) ListEnrollmentDetails(_ context.Context) ([]models.EnrollmentDetail, error) {
	details := make([]models.EnrollmentDetail, 0, len(m.enrollments))
	for _, e := range m.enrollments {
		d := models.EnrollmentDetail{Enrollment: *e}
		if u, ok := m.users[e.UserID]; ok {
			d.Student = &models.PersonRef{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
		}
		if u, ok := m.users[e.ReviewedBy]; ok {
			d.Reviewer = &models.PersonRef{FirstName: u.FirstName, LastName: u.LastName}
		}
		details = append(details, d)
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].CreatedAt.After(details[j].CreatedAt)
	})
	return details, nil
}

func (m *memStore) UpdateEnrollmentFields(_ context.Context, id primitive.ObjectID, upd FieldUpdate) error {
	e, ok := m.enrollments[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Message != nil {
		e.Message = *upd.Message
	}
	if upd.Subject != nil {
		e.Subject = *upd.Subject
	}
	if upd.Month != nil {
		e.Month = *upd.Month
	}
	if upd.Year != nil {
		e.Year = *upd.Year
	}
	return nil
}

func (m *memStore) SetDecision(_ context.Context, id primitive.ObjectID, status models.EnrollmentStatus, reviewedBy primitive.ObjectID, reviewedAt time.Time) error {
	e, ok := m.enrollments[id]
	if !ok {
		return ErrNotFound
	}
	e.Status = status
	e.ReviewedBy = reviewedBy
	e.ReviewedAt = &reviewedAt
	return nil
}

func (m *memStore) DeleteEnrollment(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.enrollments[id]; !ok {
		return ErrNotFound
	}
	delete(m.enrollments, id)
	return nil
}

func (m *memStore) CountPending(_ context.Context) (int64, error) {
	var n int64
	for _, e := range m.enrollments {
		if e.Status == models.StatusPending {
			n++
		}
	}
	return n, nil
}

func (m *memStore) AddToSessionRosters(_ context.Context, userID primitive.ObjectID, subject string, from, to time.Time) error {
	if m.rosterErr != nil {
		return m.rosterErr
	}
	for _, s := range m.sessions {
		if s.Subject != subject || s.Date.Before(from) || !s.Date.Before(to) {
			continue
		}
		if !containsID(s.EnrolledStudents, userID) {
			s.EnrolledStudents = append(s.EnrolledStudents, userID)
		}
	}
	return nil
}

func (m *memStore) AddAccessibleSubject(_ context.Context, userID primitive.ObjectID, subject string) error {
	u, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	for _, s := range u.AccessibleSubjects {
		if s == subject {
			return nil
		}
	}
	u.AccessibleSubjects = append(u.AccessibleSubjects, subject)
	return nil
}

func (m *memStore) RemoveAccessibleSubject(_ context.Context, userID primitive.ObjectID, subject string) error {
	u, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	kept := u.AccessibleSubjects[:0]
	for _, s := range u.AccessibleSubjects {
		if s != subject {
			kept = append(kept, s)
		}
	}
	u.AccessibleSubjects = kept
	return nil
}

func (m *memStore) GetUser(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
