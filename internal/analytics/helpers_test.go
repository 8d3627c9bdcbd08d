package analytics_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nurgissab/cram/internal/analytics"
	"github.com/nurgissab/cram/internal/db"
	"github.com/nurgissab/cram/internal/models"
)

// The gorm store must satisfy the engine's collaborator surface.
var _ analytics.Store = (*db.Store)(nil)

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "cram.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newOwner(t *testing.T, store *db.Store, name string) uint {
	t.Helper()
	owner, err := store.FindOrCreateOwner(name)
	require.NoError(t, err)
	return owner.ID
}

func newTopic(t *testing.T, store *db.Store, ownerID uint, title string, struggle int) *models.Topic {
	t.Helper()
	subject, err := store.CreateSubject(ownerID, "Subject for "+title, "")
	require.NoError(t, err)
	topic, err := store.CreateTopic(ownerID, subject.ID, title, struggle)
	require.NoError(t, err)
	return topic
}

func newTask(t *testing.T, store *db.Store, ownerID, topicID uint, title string, priority int, due *time.Time) *models.Task {
	t.Helper()
	task, err := store.CreateTask(db.CreateTaskRequest{
		OwnerID:  ownerID,
		TopicID:  topicID,
		Title:    title,
		DueDate:  due,
		Priority: priority,
	})
	require.NoError(t, err)
	return task
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year, month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

// startSession creates a running session at the given instant.
func startSession(t *testing.T, store *db.Store, ownerID uint, topicID *uint, startedAt time.Time) *models.Session {
	t.Helper()
	session, err := store.StartSession(db.StartSessionRequest{
		OwnerID:   ownerID,
		TopicID:   topicID,
		StartedAt: startedAt,
	})
	require.NoError(t, err)
	return session
}

// stoppedSession seeds a stopped session with the given start instant and
// minute count.
func stoppedSession(t *testing.T, store *db.Store, ownerID uint, topicID *uint, startedAt time.Time, minutes int) *models.Session {
	t.Helper()
	session := startSession(t, store, ownerID, topicID, startedAt)
	claimed, err := store.FinishSession(ownerID, session.ID, startedAt.Add(time.Duration(minutes)*time.Minute), minutes)
	require.NoError(t, err)
	require.True(t, claimed)
	return session
}
