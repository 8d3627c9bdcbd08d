package analytics

import "time"

// DayActivity is one calendar day's total study minutes.
type DayActivity struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Minutes int    `json:"minutes"`
}

// WindowMinutes sums study minutes over the windowDays consecutive
// calendar dates ending at (and including) today. Only stopped sessions
// count, bucketed by the calendar date of started_at: a session that runs
// past midnight is attributed entirely to its start date.
//
// The returned activity has exactly one entry per day in the window, in
// chronological order, zero-filled for days without sessions.
func WindowMinutes(store Store, ownerID uint, windowDays int, today time.Time) (int, []DayActivity, error) {
	today = DateOf(today)
	since := today.AddDate(0, 0, -(windowDays - 1))

	sessions, err := store.StoppedSessionsBetween(ownerID, since, today.AddDate(0, 0, 1))
	if err != nil {
		return 0, nil, err
	}

	minutesByDay := make(map[string]int, windowDays)
	for d := 0; d < windowDays; d++ {
		minutesByDay[since.AddDate(0, 0, d).Format(time.DateOnly)] = 0
	}

	total := 0
	for _, session := range sessions {
		day := DateOf(session.StartedAt).Format(time.DateOnly)
		if _, ok := minutesByDay[day]; !ok {
			continue
		}
		minutesByDay[day] += session.Minutes
		total += session.Minutes
	}

	activity := make([]DayActivity, 0, windowDays)
	for d := 0; d < windowDays; d++ {
		day := since.AddDate(0, 0, d).Format(time.DateOnly)
		activity = append(activity, DayActivity{Date: day, Minutes: minutesByDay[day]})
	}
	return total, activity, nil
}
