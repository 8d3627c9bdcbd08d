package analytics

import (
	"math"
	"time"

	"github.com/nurgissab/cram/internal/models"
)

// StopSession transitions a running session to stopped, its single
// lifecycle transition. Minutes are rounded up so any partial minute of
// activity counts as a full minute, and floored at zero so clock skew
// (now before started_at) cannot yield a negative duration.
//
// Returns ErrAlreadyStopped if the session was already stopped, including
// when a concurrent stop wins the conditional update.
func StopSession(store Store, ownerID, sessionID uint, now time.Time) (*models.Session, error) {
	session, err := store.SessionByID(ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.EndedAt != nil {
		return nil, ErrAlreadyStopped
	}

	seconds := now.Sub(session.StartedAt).Seconds()
	minutes := int(math.Ceil(seconds / 60))
	if minutes < 0 {
		minutes = 0
	}

	claimed, err := store.FinishSession(ownerID, sessionID, now, minutes)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrAlreadyStopped
	}

	session.EndedAt = &now
	session.Minutes = minutes
	return session, nil
}
