package db_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurgissab/cram/internal/db"
	"github.com/nurgissab/cram/internal/models"
)

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "cram.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedOwner(t *testing.T, store *db.Store, name string) uint {
	t.Helper()
	owner, err := store.FindOrCreateOwner(name)
	require.NoError(t, err)
	return owner.ID
}

func seedTopic(t *testing.T, store *db.Store, ownerID uint) *models.Topic {
	t.Helper()
	subject, err := store.CreateSubject(ownerID, "Mathematics", "#1E90FF")
	require.NoError(t, err)
	topic, err := store.CreateTopic(ownerID, subject.ID, "Eigenvalues", 2)
	require.NoError(t, err)
	return topic
}

func at(day, hour int) time.Time {
	return time.Date(2026, 8, day, hour, 0, 0, 0, time.UTC)
}

func TestFindOrCreateOwner_Idempotent(t *testing.T) {
	store := newTestStore(t)

	first, err := store.FindOrCreateOwner("local")
	require.NoError(t, err)
	second, err := store.FindOrCreateOwner("local")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := store.FindOrCreateOwner("alice")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestFinishSession_ClaimsRowExactlyOnce(t *testing.T) {
	store := newTestStore(t)
	ownerID := seedOwner(t, store, "alice")

	session, err := store.StartSession(db.StartSessionRequest{OwnerID: ownerID, StartedAt: at(20, 9)})
	require.NoError(t, err)

	claimed, err := store.FinishSession(ownerID, session.ID, at(20, 10), 60)
	require.NoError(t, err)
	assert.True(t, claimed)

	// A second attempt finds no running row to claim and must not touch
	// the recorded minutes.
	claimed, err = store.FinishSession(ownerID, session.ID, at(20, 12), 180)
	require.NoError(t, err)
	assert.False(t, claimed)

	persisted, err := store.SessionByID(ownerID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, persisted.Minutes)
	require.NotNil(t, persisted.EndedAt)
	assert.True(t, persisted.EndedAt.Equal(at(20, 10)))
}

func TestStartSession_RejectsSecondRunningSession(t *testing.T) {
	store := newTestStore(t)
	ownerID := seedOwner(t, store, "alice")

	_, err := store.StartSession(db.StartSessionRequest{OwnerID: ownerID, StartedAt: at(20, 9)})
	require.NoError(t, err)

	_, err = store.StartSession(db.StartSessionRequest{OwnerID: ownerID, StartedAt: at(20, 10)})
	require.Error(t, err)

	// Another owner is unaffected.
	bob := seedOwner(t, store, "bob")
	_, err = store.StartSession(db.StartSessionRequest{OwnerID: bob, StartedAt: at(20, 10)})
	require.NoError(t, err)
}

func TestActiveSession(t *testing.T) {
	store := newTestStore(t)
	ownerID := seedOwner(t, store, "alice")

	active, err := store.ActiveSession(ownerID)
	require.NoError(t, err)
	assert.Nil(t, active)

	session, err := store.StartSession(db.StartSessionRequest{OwnerID: ownerID, StartedAt: at(20, 9)})
	require.NoError(t, err)

	active, err = store.ActiveSession(ownerID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, session.ID, active.ID)
}

func TestDeleteTopic_ClearsSessionReferencesButKeepsMinutes(t *testing.T) {
	store := newTestStore(t)
	ownerID := seedOwner(t, store, "alice")
	topic := seedTopic(t, store, ownerID)
	task, err := store.CreateTask(db.CreateTaskRequest{OwnerID: ownerID, TopicID: topic.ID, Title: "past paper"})
	require.NoError(t, err)

	session, err := store.StartSession(db.StartSessionRequest{
		OwnerID:   ownerID,
		TopicID:   &topic.ID,
		TaskID:    &task.ID,
		StartedAt: at(20, 9),
	})
	require.NoError(t, err)
	claimed, err := store.FinishSession(ownerID, session.ID, at(20, 10), 60)
	require.NoError(t, err)
	require.True(t, claimed)

	require.NoError(t, store.DeleteTopic(ownerID, topic.ID))

	_, err = store.TopicByID(ownerID, topic.ID)
	require.Error(t, err)
	_, err = store.TaskByID(ownerID, task.ID)
	require.Error(t, err)

	persisted, err := store.SessionByID(ownerID, session.ID)
	require.NoError(t, err)
	assert.Nil(t, persisted.TopicID)
	assert.Nil(t, persisted.TaskID)
	assert.Equal(t, 60, persisted.Minutes)
}

func TestDeleteSubject_RemovesTopicsAndTasks(t *testing.T) {
	store := newTestStore(t)
	ownerID := seedOwner(t, store, "alice")
	topic := seedTopic(t, store, ownerID)
	task, err := store.CreateTask(db.CreateTaskRequest{OwnerID: ownerID, TopicID: topic.ID, Title: "past paper"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteSubject(ownerID, topic.SubjectID))

	_, err = store.SubjectByID(ownerID, topic.SubjectID)
	require.Error(t, err)
	_, err = store.TopicByID(ownerID, topic.ID)
	require.Error(t, err)
	_, err = store.TaskByID(ownerID, task.ID)
	require.Error(t, err)
}

func TestDeleteTask_ClearsOnlyTaskReference(t *testing.T) {
	store := newTestStore(t)
	ownerID := seedOwner(t, store, "alice")
	topic := seedTopic(t, store, ownerID)
	task, err := store.CreateTask(db.CreateTaskRequest{OwnerID: ownerID, TopicID: topic.ID, Title: "past paper"})
	require.NoError(t, err)

	session, err := store.StartSession(db.StartSessionRequest{
		OwnerID:   ownerID,
		TopicID:   &topic.ID,
		TaskID:    &task.ID,
		StartedAt: at(20, 9),
	})
	require.NoError(t, err)
	_, err = store.FinishSession(ownerID, session.ID, at(20, 10), 60)
	require.NoError(t, err)

	require.NoError(t, store.DeleteTask(ownerID, task.ID))

	persisted, err := store.SessionByID(ownerID, session.ID)
	require.NoError(t, err)
	assert.Nil(t, persisted.TaskID)
	require.NotNil(t, persisted.TopicID)
	assert.Equal(t, topic.ID, *persisted.TopicID)
}

func TestRecentTopicIDs_DistinctAndStoppedOnly(t *testing.T) {
	store := newTestStore(t)
	ownerID := seedOwner(t, store, "alice")
	topic := seedTopic(t, store, ownerID)

	for hour := 9; hour <= 11; hour++ {
		session, err := store.StartSession(db.StartSessionRequest{OwnerID: ownerID, TopicID: &topic.ID, StartedAt: at(20, hour)})
		require.NoError(t, err)
		_, err = store.FinishSession(ownerID, session.ID, at(20, hour).Add(30*time.Minute), 30)
		require.NoError(t, err)
	}
	// A running session does not mark the topic as studied.
	otherTopic, err := store.CreateTopic(ownerID, topic.SubjectID, "Determinants", 0)
	require.NoError(t, err)
	_, err = store.StartSession(db.StartSessionRequest{OwnerID: ownerID, TopicID: &otherTopic.ID, StartedAt: at(20, 12)})
	require.NoError(t, err)

	ids, err := store.RecentTopicIDs(ownerID, at(18, 0))
	require.NoError(t, err)
	assert.Equal(t, []uint{topic.ID}, ids)
}

func TestTasks_Filters(t *testing.T) {
	store := newTestStore(t)
	ownerID := seedOwner(t, store, "alice")
	topic := seedTopic(t, store, ownerID)

	open, err := store.CreateTask(db.CreateTaskRequest{OwnerID: ownerID, TopicID: topic.ID, Title: "revise eigenvalues"})
	require.NoError(t, err)
	done, err := store.CreateTask(db.CreateTaskRequest{OwnerID: ownerID, TopicID: topic.ID, Title: "intro reading"})
	require.NoError(t, err)
	_, err = store.MarkTaskDone(ownerID, done.ID)
	require.NoError(t, err)

	tasks, err := store.OpenTasks(ownerID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, open.ID, tasks[0].ID)

	tasks, err = store.Tasks(ownerID, db.TaskFilter{Match: "eigen"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, open.ID, tasks[0].ID)

	tasks, err = store.Tasks(ownerID, db.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestMarkTaskDone_AlreadyDone(t *testing.T) {
	store := newTestStore(t)
	ownerID := seedOwner(t, store, "alice")
	topic := seedTopic(t, store, ownerID)
	task, err := store.CreateTask(db.CreateTaskRequest{OwnerID: ownerID, TopicID: topic.ID, Title: "past paper"})
	require.NoError(t, err)

	_, err = store.MarkTaskDone(ownerID, task.ID)
	require.NoError(t, err)
	_, err = store.MarkTaskDone(ownerID, task.ID)
	require.Error(t, err)
}

func TestOwnerScoping(t *testing.T) {
	store := newTestStore(t)
	alice := seedOwner(t, store, "alice")
	bob := seedOwner(t, store, "bob")
	topic := seedTopic(t, store, alice)
	task, err := store.CreateTask(db.CreateTaskRequest{OwnerID: alice, TopicID: topic.ID, Title: "past paper"})
	require.NoError(t, err)

	_, err = store.TaskByID(bob, task.ID)
	require.Error(t, err)
	_, err = store.TopicByID(bob, topic.ID)
	require.Error(t, err)

	tasks, err := store.OpenTasks(bob)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCreateTask_DefaultsPriority(t *testing.T) {
	store := newTestStore(t)
	ownerID := seedOwner(t, store, "alice")
	topic := seedTopic(t, store, ownerID)

	task, err := store.CreateTask(db.CreateTaskRequest{OwnerID: ownerID, TopicID: topic.ID, Title: "past paper"})
	require.NoError(t, err)
	assert.Equal(t, 2, task.Priority)
	assert.Equal(t, models.StatusTodo, task.Status)

	task, err = store.CreateTask(db.CreateTaskRequest{OwnerID: ownerID, TopicID: topic.ID, Title: "urgent", Priority: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, task.Priority)
}
