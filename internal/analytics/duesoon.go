package analytics

import "time"

// DueTask is a lightweight view of an open task with a deadline.
type DueTask struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	DueDate  time.Time `json:"due_date"`
	Priority int       `json:"priority"`
	TopicID  uint      `json:"topic_id"`
}

// DueSoon returns up to limit of the owner's open tasks with the nearest
// deadlines, earliest first, ties broken by higher priority.
func DueSoon(store Store, ownerID uint, limit int) ([]DueTask, error) {
	tasks, err := store.DueSoonTasks(ownerID, limit)
	if err != nil {
		return nil, err
	}

	due := make([]DueTask, 0, len(tasks))
	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}
		due = append(due, DueTask{
			ID:       task.ID,
			Title:    task.Title,
			DueDate:  *task.DueDate,
			Priority: task.Priority,
			TopicID:  task.TopicID,
		})
	}
	return due, nil
}
