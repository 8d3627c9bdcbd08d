package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurgissab/cram/internal/analytics"
)

func TestBlueprint_ScoreFormula(t *testing.T) {
	store := newTestStore(t)
	ownerID := newOwner(t, store, "alice")
	today := date(2026, 8, 24)

	// Task A: priority 3, struggle 2, studied 3 days ago, due in 5 days.
	topicA := newTopic(t, store, ownerID, "Eigenvalues", 2)
	taskA := newTask(t, store, ownerID, topicA.ID, "past paper", 3, datePtr(2026, 8, 29))
	stoppedSession(t, store, ownerID, &topicA.ID, today.AddDate(0, 0, -3).Add(10*time.Hour), 30)

	// Task B: priority 1, struggle 0, never studied, due tomorrow.
	topicB := newTopic(t, store, ownerID, "Glycolysis", 0)
	taskB := newTask(t, store, ownerID, topicB.ID, "flashcards", 1, datePtr(2026, 8, 25))

	ranked, err := analytics.Blueprint(store, ownerID, 5, today)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	scoreA := 0.45*3 + 0.30*2 + 0.15*0 + 0.10*(1.0/5)
	scoreB := 0.45*1 + 0.30*0 + 0.15*1 + 0.10*1.0

	byID := make(map[uint]analytics.RankedTask, 2)
	for _, r := range ranked {
		byID[r.ID] = r
	}
	assert.InDelta(t, scoreA, byID[taskA.ID].Score, 1e-9)
	assert.InDelta(t, scoreB, byID[taskB.ID].Score, 1e-9)

	// Ordering must follow the numeric comparison, not an assumed outcome.
	if scoreA > scoreB {
		assert.Equal(t, taskA.ID, ranked[0].ID)
	} else {
		assert.Equal(t, taskB.ID, ranked[0].ID)
	}
}

func TestBlueprint_ScoreIsRoundedToSixDecimals(t *testing.T) {
	store := newTestStore(t)
	ownerID := newOwner(t, store, "alice")
	today := date(2026, 8, 24)

	// urgency 1/3 yields a repeating decimal before rounding.
	topic := newTopic(t, store, ownerID, "Eigenvalues", 0)
	newTask(t, store, ownerID, topic.ID, "due in three days", 2, datePtr(2026, 8, 27))

	ranked, err := analytics.Blueprint(store, ownerID, 5, today)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 1.083333, ranked[0].Score, 1e-9)
}

func TestBlueprint_OverdueCollapsesToDueToday(t *testing.T) {
	store := newTestStore(t)
	ownerID := newOwner(t, store, "alice")
	today := date(2026, 8, 24)
	topic := newTopic(t, store, ownerID, "Eigenvalues", 0)

	overdue := newTask(t, store, ownerID, topic.ID, "overdue", 2, datePtr(2026, 8, 23))
	dueToday := newTask(t, store, ownerID, topic.ID, "due today", 2, datePtr(2026, 8, 24))

	ranked, err := analytics.Blueprint(store, ownerID, 5, today)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// Identical scores (urgency 1.0 for both); the earlier due date wins
	// the tie.
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, overdue.ID, ranked[0].ID)
	assert.Equal(t, dueToday.ID, ranked[1].ID)
}

func TestBlueprint_TieBrokenByPriority(t *testing.T) {
	store := newTestStore(t)
	ownerID := newOwner(t, store, "alice")
	today := date(2026, 8, 24)

	// 0.45*3 + 0.30*0 equals 0.45*1 + 0.30*3; neither dated, neither
	// studied, so the scores tie exactly and priority decides.
	easyTopic := newTopic(t, store, ownerID, "Revision", 0)
	hardTopic := newTopic(t, store, ownerID, "Proofs", 3)
	highPrio := newTask(t, store, ownerID, easyTopic.ID, "high priority", 3, nil)
	lowPrio := newTask(t, store, ownerID, hardTopic.ID, "low priority", 1, nil)

	ranked, err := analytics.Blueprint(store, ownerID, 5, today)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, highPrio.ID, ranked[0].ID)
	assert.Equal(t, lowPrio.ID, ranked[1].ID)
}

func TestBlueprint_RecencyBoundary(t *testing.T) {
	store := newTestStore(t)
	ownerID := newOwner(t, store, "alice")
	today := date(2026, 8, 24)

	topic := newTopic(t, store, ownerID, "Eigenvalues", 0)
	newTask(t, store, ownerID, topic.ID, "task", 2, nil)
	stoppedSession(t, store, ownerID, &topic.ID, today.AddDate(0, 0, -7).Add(10*time.Hour), 30)

	// A session exactly at the lookback edge still counts as recent.
	ranked, err := analytics.Blueprint(store, ownerID, 5, today)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 0.45*2, ranked[0].Score, 1e-9)
}

func TestBlueprint_LimitAndEmpty(t *testing.T) {
	store := newTestStore(t)
	ownerID := newOwner(t, store, "alice")
	today := date(2026, 8, 24)

	ranked, err := analytics.Blueprint(store, ownerID, 5, today)
	require.NoError(t, err)
	assert.Empty(t, ranked)

	topic := newTopic(t, store, ownerID, "Eigenvalues", 0)
	for i := 0; i < 4; i++ {
		newTask(t, store, ownerID, topic.ID, "task", 2, nil)
	}

	ranked, err = analytics.Blueprint(store, ownerID, 2, today)
	require.NoError(t, err)
	assert.Len(t, ranked, 2)

	// Out-of-range limits are clamped, not rejected.
	ranked, err = analytics.Blueprint(store, ownerID, 0, today)
	require.NoError(t, err)
	assert.Len(t, ranked, 1)

	ranked, err = analytics.Blueprint(store, ownerID, 500, today)
	require.NoError(t, err)
	assert.Len(t, ranked, 4)
}

func TestBlueprint_ExcludesDoneTasks(t *testing.T) {
	store := newTestStore(t)
	ownerID := newOwner(t, store, "alice")
	today := date(2026, 8, 24)

	topic := newTopic(t, store, ownerID, "Eigenvalues", 0)
	open := newTask(t, store, ownerID, topic.ID, "open", 2, nil)
	done := newTask(t, store, ownerID, topic.ID, "done", 2, nil)
	_, err := store.MarkTaskDone(ownerID, done.ID)
	require.NoError(t, err)

	ranked, err := analytics.Blueprint(store, ownerID, 5, today)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, open.ID, ranked[0].ID)
}
