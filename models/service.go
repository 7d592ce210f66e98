package models

import (
	"fmt"
	"time"
)

// Service là dịch vụ khách sạn (giặt ủi, spa, đưa đón...)
type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ServiceCode string    `json:"serviceCode" gorm:"unique;size:20"`
	Name        string    `json:"name"`
	Price       int       `json:"price"` // Đơn giá (VND)
	Status      int       `json:"status" gorm:"default:1"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s *Service) ValidateStatus() error {
	if s.Status < 0 || s.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", s.Status)
	}
	return nil
}
