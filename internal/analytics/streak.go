package analytics

import "time"

// StudyStreak counts consecutive calendar days ending at today on which
// the owner has at least one stopped session.
//
// One-day grace: if today itself is empty but yesterday is not, the gap
// is skipped without incrementing the count, and the walk resumes from
// yesterday. The grace applies only at the today boundary, at most once;
// a user who studied yesterday should not see the streak reset before the
// day is over. Any gap strictly before today ends the walk.
func StudyStreak(store Store, ownerID uint, today time.Time) (int, error) {
	today = DateOf(today)

	streak, delta := 0, 0
	for {
		day := today.AddDate(0, 0, -delta)
		has, err := store.HasStoppedSessionOn(ownerID, day)
		if err != nil {
			return 0, err
		}
		if !has {
			if delta == 0 {
				prev, err := store.HasStoppedSessionOn(ownerID, today.AddDate(0, 0, -1))
				if err != nil {
					return 0, err
				}
				if prev {
					delta++
					continue
				}
			}
			break
		}
		streak++
		delta++
	}
	return streak, nil
}
