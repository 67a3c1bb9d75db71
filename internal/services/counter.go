package services

import (
	"gorm.io/gorm"

	"github.com/xyzhou0323/weapp-xyz-service/internal/models"
)

type CounterService struct {
	db *gorm.DB
}

func NewCounterService(db *gorm.DB) *CounterService {
	return &CounterService{db: db}
}

// Increment records one visit; the count is the number of rows.
func (s *CounterService) Increment() (int64, error) {
	if err := s.db.Create(&models.Counter{}).Error; err != nil {
		return 0, err
	}
	return s.Count()
}

func (s *CounterService) Clear() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Counter{}).Error
}

func (s *CounterService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Counter{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
