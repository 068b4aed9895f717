package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
)

type fakeStore struct {
	inserted []*models.Session
	approved map[string][]primitive.ObjectID
}

func newFakeStore() *fakeStore {
	return &fakeStore{approved: make(map[string][]primitive.ObjectID)}
}

func key(subject string, month, year int) string {
	return fmt.Sprintf("%s/%d/%d", subject, month, year)
}

func (f *fakeStore) InsertSession(_ context.Context, s *models.Session) error {
	f.inserted = append(f.inserted, s)
	return nil
}

func (f *fakeStore) ListSessions(_ context.Context) ([]models.Session, error) {
	out := make([]models.Session, 0, len(f.inserted))
	for _, s := range f.inserted {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStore) ApprovedUserIDs(_ context.Context, subject string, month, year int) ([]primitive.ObjectID, error) {
	return f.approved[key(subject, month, year)], nil
}

func TestCreateSeedsRosterFromApprovedEnrollments(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, zerolog.Nop())

	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	store.approved[key("Chemistry", 9, 2025)] = []primitive.ObjectID{alice, bob}
	store.approved[key("Chemistry", 10, 2025)] = []primitive.ObjectID{primitive.NewObjectID()}

	admin := primitive.NewObjectID()
	created, err := svc.Create(context.Background(), admin, CreateRequest{
		Subject: "Chemistry",
		Date:    time.Date(2025, 9, 12, 16, 0, 0, 0, time.UTC),
		Topic:   "Organic chemistry intro",
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []primitive.ObjectID{alice, bob}, created.EnrolledStudents)
	assert.Equal(t, admin, created.CreatedBy)
	require.Len(t, store.inserted, 1)
}

func TestCreateWithNoApprovedStudents(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, zerolog.Nop())

	created, err := svc.Create(context.Background(), primitive.NewObjectID(), CreateRequest{
		Subject: "English",
		Date:    time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC),
		Topic:   "Essay writing",
	})
	require.NoError(t, err)
	assert.NotNil(t, created.EnrolledStudents)
	assert.Empty(t, created.EnrolledStudents)
}

func TestCreateRejectsUnknownSubject(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, zerolog.Nop())

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), CreateRequest{
		Subject: "Alchemy",
		Date:    time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC),
		Topic:   "Transmutation",
	})
	require.ErrorIs(t, err, ErrUnknownSubject)
	assert.Empty(t, store.inserted)
}
