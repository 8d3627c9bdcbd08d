package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nurgissab/cram/internal/models"
)

// CreateSubject creates a new subject for the owner.
func (s *Store) CreateSubject(ownerID uint, name, color string) (*models.Subject, error) {
	if color == "" {
		color = "#888888"
	}
	subject := models.Subject{
		OwnerID: ownerID,
		Name:    name,
		Color:   color,
	}
	if err := s.db.Create(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

// SubjectByID retrieves one of the owner's subjects.
func (s *Store) SubjectByID(ownerID, id uint) (*models.Subject, error) {
	var subject models.Subject
	err := s.db.Where("owner_id = ?", ownerID).First(&subject, id).Error
	if err != nil {
		return nil, fmt.Errorf("subject #%d not found", id)
	}
	return &subject, nil
}

// SubjectByName retrieves one of the owner's subjects by name.
func (s *Store) SubjectByName(ownerID uint, name string) (*models.Subject, error) {
	var subject models.Subject
	err := s.db.Where("owner_id = ? AND name = ?", ownerID, name).First(&subject).Error
	if err != nil {
		return nil, fmt.Errorf("subject %q not found", name)
	}
	return &subject, nil
}

// Subjects lists all of the owner's subjects.
func (s *Store) Subjects(ownerID uint) ([]models.Subject, error) {
	var subjects []models.Subject
	err := s.db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// CreateTopic creates a new topic under one of the owner's subjects.
func (s *Store) CreateTopic(ownerID, subjectID uint, title string, struggle int) (*models.Topic, error) {
	if _, err := s.SubjectByID(ownerID, subjectID); err != nil {
		return nil, err
	}
	topic := models.Topic{
		OwnerID:       ownerID,
		SubjectID:     subjectID,
		Title:         title,
		Status:        models.StatusTodo,
		StruggleLevel: struggle,
	}
	if err := s.db.Create(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// TopicByID retrieves one of the owner's topics.
func (s *Store) TopicByID(ownerID, id uint) (*models.Topic, error) {
	var topic models.Topic
	err := s.db.Where("owner_id = ?", ownerID).First(&topic, id).Error
	if err != nil {
		return nil, fmt.Errorf("topic #%d not found", id)
	}
	return &topic, nil
}

// TopicsByIDs batch-fetches the owner's topics for the given IDs. Absent
// entries mean the topic does not exist (or was deleted); callers fall
// back to documented defaults.
func (s *Store) TopicsByIDs(ownerID uint, ids []uint) (map[uint]models.Topic, error) {
	topics := make(map[uint]models.Topic, len(ids))
	if len(ids) == 0 {
		return topics, nil
	}
	var rows []models.Topic
	err := s.db.Where("owner_id = ? AND id IN ?", ownerID, ids).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, t := range rows {
		topics[t.ID] = t
	}
	return topics, nil
}

// SetTopicStruggle updates a topic's struggle level.
func (s *Store) SetTopicStruggle(ownerID, id uint, struggle int) (*models.Topic, error) {
	topic, err := s.TopicByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	topic.StruggleLevel = struggle
	if err := s.db.Save(topic).Error; err != nil {
		return nil, err
	}
	return topic, nil
}

// DeleteTopic deletes a topic together with its tasks. Session references
// to the topic and its tasks are cleared first, so the session rows and
// their minutes survive the delete.
func (s *Store) DeleteTopic(ownerID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var topic models.Topic
		if err := tx.Where("owner_id = ?", ownerID).First(&topic, id).Error; err != nil {
			return fmt.Errorf("topic #%d not found", id)
		}
		return deleteTopicTx(tx, ownerID, &topic)
	})
}

// DeleteSubject deletes a subject and everything under it, with the same
// session-reference clearing as DeleteTopic.
func (s *Store) DeleteSubject(ownerID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var subject models.Subject
		if err := tx.Where("owner_id = ?", ownerID).First(&subject, id).Error; err != nil {
			return fmt.Errorf("subject #%d not found", id)
		}
		var topics []models.Topic
		if err := tx.Where("owner_id = ? AND subject_id = ?", ownerID, id).Find(&topics).Error; err != nil {
			return err
		}
		for i := range topics {
			if err := deleteTopicTx(tx, ownerID, &topics[i]); err != nil {
				return err
			}
		}
		return tx.Delete(&subject).Error
	})
}

func deleteTopicTx(tx *gorm.DB, ownerID uint, topic *models.Topic) error {
	var taskIDs []uint
	err := tx.Model(&models.Task{}).
		Where("owner_id = ? AND topic_id = ?", ownerID, topic.ID).
		Pluck("id", &taskIDs).Error
	if err != nil {
		return err
	}
	if len(taskIDs) > 0 {
		err = tx.Model(&models.Session{}).
			Where("owner_id = ? AND task_id IN ?", ownerID, taskIDs).
			Update("task_id", nil).Error
		if err != nil {
			return err
		}
		err = tx.Where("owner_id = ? AND topic_id = ?", ownerID, topic.ID).
			Delete(&models.Task{}).Error
		if err != nil {
			return err
		}
	}
	err = tx.Model(&models.Session{}).
		Where("owner_id = ? AND topic_id = ?", ownerID, topic.ID).
		Update("topic_id", nil).Error
	if err != nil {
		return err
	}
	return tx.Delete(topic).Error
}
