package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nurgissab/cram/internal/models"
)

// StartSessionRequest holds the data needed to start a focus session.
// Topic and task are both optional; either, both, or neither may be set.
type StartSessionRequest struct {
	OwnerID   uint
	TopicID   *uint
	TaskID    *uint
	StartedAt time.Time
	Notes     string
}

// StartSession creates a new running session. Only one session may run at
// a time per owner.
func (s *Store) StartSession(req StartSessionRequest) (*models.Session, error) {
	if req.TopicID != nil {
		if _, err := s.TopicByID(req.OwnerID, *req.TopicID); err != nil {
			return nil, err
		}
	}
	if req.TaskID != nil {
		if _, err := s.TaskByID(req.OwnerID, *req.TaskID); err != nil {
			return nil, err
		}
	}

	active, err := s.ActiveSession(req.OwnerID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("session #%d is already running. Stop it first with 'cram stop'", active.ID)
	}

	session := models.Session{
		OwnerID:   req.OwnerID,
		TopicID:   req.TopicID,
		TaskID:    req.TaskID,
		StartedAt: req.StartedAt,
		Notes:     req.Notes,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// SessionByID retrieves one of the owner's sessions.
func (s *Store) SessionByID(ownerID, id uint) (*models.Session, error) {
	var session models.Session
	err := s.db.Where("owner_id = ?", ownerID).First(&session, id).Error
	if err != nil {
		return nil, fmt.Errorf("session #%d not found", id)
	}
	return &session, nil
}

// ActiveSession returns the owner's running session, or nil if there is
// none.
func (s *Store) ActiveSession(ownerID uint) (*models.Session, error) {
	var session models.Session
	err := s.db.Where("owner_id = ? AND ended_at IS NULL", ownerID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// FinishSession sets ended_at and minutes on a session, but only if it is
// still running. The ended_at IS NULL guard makes the update a
// check-and-set: of any number of concurrent stop attempts exactly one
// claims the row. Returns whether this call was the one that claimed it.
func (s *Store) FinishSession(ownerID, id uint, endedAt time.Time, minutes int) (bool, error) {
	res := s.db.Model(&models.Session{}).
		Where("owner_id = ? AND id = ? AND ended_at IS NULL", ownerID, id).
		Updates(map[string]any{"ended_at": endedAt, "minutes": minutes})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// StoppedSessionsBetween returns the owner's stopped sessions whose
// started_at falls in [from, to), earliest first. Running sessions are
// excluded; they have no final minute count yet.
func (s *Store) StoppedSessionsBetween(ownerID uint, from, to time.Time) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.
		Where("owner_id = ? AND started_at >= ? AND started_at < ? AND ended_at IS NOT NULL", ownerID, from, to).
		Order("started_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// HasStoppedSessionOn reports whether the owner has at least one stopped
// session that started on the given calendar day (a UTC midnight).
func (s *Store) HasStoppedSessionOn(ownerID uint, day time.Time) (bool, error) {
	var count int64
	err := s.db.Model(&models.Session{}).
		Where("owner_id = ? AND started_at >= ? AND started_at < ? AND ended_at IS NOT NULL",
			ownerID, day, day.AddDate(0, 0, 1)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RecentTopicIDs returns the distinct topics the owner has studied (a
// stopped session referencing the topic, started at or after since).
func (s *Store) RecentTopicIDs(ownerID uint, since time.Time) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.Session{}).
		Where("owner_id = ? AND started_at >= ? AND ended_at IS NOT NULL AND topic_id IS NOT NULL", ownerID, since).
		Distinct("topic_id").
		Pluck("topic_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Sessions lists the owner's sessions, newest first, up to limit (0 = no
// limit).
func (s *Store) Sessions(ownerID uint, limit int) ([]models.Session, error) {
	q := s.db.Where("owner_id = ?", ownerID).Order("started_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var sessions []models.Session
	if err := q.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
