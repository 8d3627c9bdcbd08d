// Package analytics implements the session-timing state machine and the
// ranking engine: elapsed-minute computation, rolling-window aggregation,
// streak detection, and the blueprint task score.
package analytics

import (
	"time"

	"github.com/nurgissab/cram/internal/models"
)

// Store is the record-store surface the engine needs. Every call is
// scoped to one owner. *db.Store satisfies it.
type Store interface {
	// SessionByID looks up one of the owner's sessions.
	SessionByID(ownerID, id uint) (*models.Session, error)

	// FinishSession conditionally sets ended_at and minutes on a session
	// that is still running, reporting whether this call claimed it.
	FinishSession(ownerID, id uint, endedAt time.Time, minutes int) (bool, error)

	// StoppedSessionsBetween returns stopped sessions with started_at in
	// [from, to), earliest first.
	StoppedSessionsBetween(ownerID uint, from, to time.Time) ([]models.Session, error)

	// HasStoppedSessionOn reports whether any stopped session started on
	// the given calendar day.
	HasStoppedSessionOn(ownerID uint, day time.Time) (bool, error)

	// RecentTopicIDs returns the distinct topics with a stopped session
	// started at or after since.
	RecentTopicIDs(ownerID uint, since time.Time) ([]uint, error)

	// OpenTasks returns the owner's TODO and DOING tasks.
	OpenTasks(ownerID uint) ([]models.Task, error)

	// DueSoonTasks returns up to limit open tasks with a due date,
	// earliest deadline first, ties broken by higher priority.
	DueSoonTasks(ownerID uint, limit int) ([]models.Task, error)

	// TopicsByIDs batch-fetches topics; absent keys mean missing/deleted.
	TopicsByIDs(ownerID uint, ids []uint) (map[uint]models.Topic, error)
}

const (
	minWindowDays = 1
	maxWindowDays = 30
	maxRankLimit  = 20
	dueSoonLimit  = 5

	// recencyDays is the lookback for the "recently studied" signal. The
	// cutoff is inclusive of today, so the filter spans today-7 .. today.
	recencyDays = 7
)

// DateOf truncates an instant to its UTC calendar date (midnight UTC).
// All date comparisons in the engine use this single reference calendar.
func DateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysUntil returns the whole-day distance from today to the given date.
// Negative for past dates. Both arguments are UTC midnights.
func daysUntil(today, date time.Time) int {
	return int(DateOf(date).Sub(DateOf(today)).Hours() / 24)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
