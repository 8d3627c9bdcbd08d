package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nurgissab/cram/internal/models"
)

// FindOrCreateOwner resolves an owner account by name, creating it on
// first use.
func (s *Store) FindOrCreateOwner(name string) (*models.Owner, error) {
	var owner models.Owner
	err := s.db.Where("name = ?", name).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		owner = models.Owner{Name: name}
		err = s.db.Create(&owner).Error
	}
	if err != nil {
		return nil, err
	}
	return &owner, nil
}
