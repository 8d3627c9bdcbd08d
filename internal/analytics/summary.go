package analytics

import "time"

// Summary is the combined dashboard snapshot for one owner.
type Summary struct {
	WindowDays     int           `json:"window_days"`
	WindowMinutes  int           `json:"window_minutes"`
	Streak         int           `json:"streak"`
	RecentActivity []DayActivity `json:"recent_activity"`
	DueSoon        []DueTask     `json:"due_soon"`
}

// Summarize assembles the window aggregate, streak, and due-soon list for
// one owner against the same reference date. windowDays is clamped to
// [1, 30] rather than rejected.
func Summarize(store Store, ownerID uint, windowDays int, today time.Time) (*Summary, error) {
	windowDays = clamp(windowDays, minWindowDays, maxWindowDays)

	total, activity, err := WindowMinutes(store, ownerID, windowDays, today)
	if err != nil {
		return nil, err
	}
	streak, err := StudyStreak(store, ownerID, today)
	if err != nil {
		return nil, err
	}
	due, err := DueSoon(store, ownerID, dueSoonLimit)
	if err != nil {
		return nil, err
	}

	return &Summary{
		WindowDays:     windowDays,
		WindowMinutes:  total,
		Streak:         streak,
		RecentActivity: activity,
		DueSoon:        due,
	}, nil
}
