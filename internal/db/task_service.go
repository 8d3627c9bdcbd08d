package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nurgissab/cram/internal/models"
)

// CreateTaskRequest holds the data needed to create a new task.
type CreateTaskRequest struct {
	OwnerID  uint
	TopicID  uint
	Title    string
	DueDate  *time.Time
	Priority int // 1..3; 0 falls back to the default of 2
	Notes    string
}

// CreateTask creates a new task under one of the owner's topics.
func (s *Store) CreateTask(req CreateTaskRequest) (*models.Task, error) {
	if _, err := s.TopicByID(req.OwnerID, req.TopicID); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority < 1 || priority > 3 {
		priority = 2
	}

	task := models.Task{
		OwnerID:  req.OwnerID,
		TopicID:  req.TopicID,
		Title:    req.Title,
		DueDate:  req.DueDate,
		Priority: priority,
		Status:   models.StatusTodo,
		Notes:    req.Notes,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskByID retrieves one of the owner's tasks.
func (s *Store) TaskByID(ownerID, id uint) (*models.Task, error) {
	var task models.Task
	err := s.db.Where("owner_id = ?", ownerID).First(&task, id).Error
	if err != nil {
		return nil, fmt.Errorf("task #%d not found", id)
	}
	return &task, nil
}

// TaskFilter narrows the Tasks listing.
type TaskFilter struct {
	Statuses []models.Status
	TopicID  uint   // 0 = all topics
	Match    string // case-insensitive title substring
}

// Tasks lists the owner's tasks, optionally filtered.
func (s *Store) Tasks(ownerID uint, filter TaskFilter) ([]models.Task, error) {
	q := s.db.Where("owner_id = ?", ownerID)
	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}
	if filter.TopicID != 0 {
		q = q.Where("topic_id = ?", filter.TopicID)
	}
	if filter.Match != "" {
		q = q.Where("title LIKE ?", "%"+filter.Match+"%")
	}

	var tasks []models.Task
	if err := q.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// OpenTasks lists the owner's TODO and DOING tasks.
func (s *Store) OpenTasks(ownerID uint) ([]models.Task, error) {
	return s.Tasks(ownerID, TaskFilter{Statuses: models.OpenStatuses})
}

// DueSoonTasks returns up to limit open tasks that have a due date,
// earliest deadline first, ties broken by higher priority.
func (s *Store) DueSoonTasks(ownerID uint, limit int) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.
		Where("owner_id = ? AND status IN ? AND due_date IS NOT NULL", ownerID, models.OpenStatuses).
		Order("due_date ASC, priority DESC").
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// SetTaskStatus moves a task to the given stage.
func (s *Store) SetTaskStatus(ownerID, id uint, status models.Status) (*models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	task, err := s.TaskByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	task.Status = status
	if err := s.db.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// MarkTaskDone marks a task as completed.
func (s *Store) MarkTaskDone(ownerID, id uint) (*models.Task, error) {
	task, err := s.TaskByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if task.Status == models.StatusDone {
		return nil, fmt.Errorf("task #%d is already completed", id)
	}
	task.Status = models.StatusDone
	if err := s.db.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask deletes a task after clearing session references to it.
func (s *Store) DeleteTask(ownerID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.Where("owner_id = ?", ownerID).First(&task, id).Error; err != nil {
			return fmt.Errorf("task #%d not found", id)
		}
		err := tx.Model(&models.Session{}).
			Where("owner_id = ? AND task_id = ?", ownerID, id).
			Update("task_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&task).Error
	})
}
