package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/nurgissab/cram/internal/models"
)

// Blueprint score weights. The score rewards important, difficult,
// neglected, and urgent work; tasks without deadlines still compete on
// the first three axes.
const (
	weightPriority = 0.45
	weightStruggle = 0.30
	weightRecency  = 0.15
	weightUrgency  = 0.10
)

// RankedTask is an open task annotated with its blueprint score.
type RankedTask struct {
	ID       uint          `json:"id"`
	Title    string        `json:"title"`
	Priority int           `json:"priority"`
	DueDate  *time.Time    `json:"due_date"`
	Status   models.Status `json:"status"`
	TopicID  uint          `json:"topic_id"`
	Score    float64       `json:"score"`
}

type rankEntry struct {
	RankedTask
	recentlyStudied bool
}

// Blueprint ranks the owner's open tasks by composite score:
//
//	score = 0.45*priority + 0.30*struggle + 0.15*recency + 0.10*urgency
//
// priority defaults to 2 when unset; struggle comes from the task's topic,
// 0 when the topic is missing; recency is 1 when the topic has not been
// studied in the recency window (a task without a topic is never recently
// studied); urgency is 1/max(1, days_to_due), so due-today and overdue
// both score 1.0, and 0 without a deadline.
//
// limit is clamped to [1, 20]. Ties are broken by earlier due date (tasks
// without one sort last), then higher priority, then not-recently-studied
// first.
func Blueprint(store Store, ownerID uint, limit int, today time.Time) ([]RankedTask, error) {
	limit = clamp(limit, 1, maxRankLimit)
	today = DateOf(today)

	tasks, err := store.OpenTasks(ownerID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return []RankedTask{}, nil
	}

	recentIDs, err := store.RecentTopicIDs(ownerID, today.AddDate(0, 0, -recencyDays))
	if err != nil {
		return nil, err
	}
	recent := make(map[uint]bool, len(recentIDs))
	for _, id := range recentIDs {
		recent[id] = true
	}

	// One batched topic fetch per call instead of a point query per task.
	topicIDs := make([]uint, 0, len(tasks))
	seen := make(map[uint]bool, len(tasks))
	for _, task := range tasks {
		if task.TopicID != 0 && !seen[task.TopicID] {
			seen[task.TopicID] = true
			topicIDs = append(topicIDs, task.TopicID)
		}
	}
	topics, err := store.TopicsByIDs(ownerID, topicIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]rankEntry, 0, len(tasks))
	for _, task := range tasks {
		priority := task.Priority
		if priority == 0 {
			priority = 2
		}

		struggle := 0
		if topic, ok := topics[task.TopicID]; ok {
			struggle = topic.StruggleLevel
		}

		recentlyStudied := task.TopicID != 0 && recent[task.TopicID]
		recency := 1
		if recentlyStudied {
			recency = 0
		}

		urgency := 0.0
		if task.DueDate != nil {
			urgency = 1.0 / float64(max(1, daysUntil(today, *task.DueDate)))
		}

		score := weightPriority*float64(priority) +
			weightStruggle*float64(struggle) +
			weightRecency*float64(recency) +
			weightUrgency*urgency

		entries = append(entries, rankEntry{
			RankedTask: RankedTask{
				ID:       task.ID,
				Title:    task.Title,
				Priority: priority,
				DueDate:  task.DueDate,
				Status:   task.Status,
				TopicID:  task.TopicID,
				Score:    math.Round(score*1e6) / 1e6,
			},
			recentlyStudied: recentlyStudied,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		switch {
		case a.DueDate == nil && b.DueDate != nil:
			return false
		case a.DueDate != nil && b.DueDate == nil:
			return true
		case a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.recentlyStudied != b.recentlyStudied {
			return !a.recentlyStudied
		}
		return false
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	ranked := make([]RankedTask, len(entries))
	for i, e := range entries {
		ranked[i] = e.RankedTask
	}
	return ranked, nil
}
