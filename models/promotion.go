package models

import (
	"fmt"
	"time"
)

type Promotion struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RoomID       uint      `json:"roomId"`
	Name         string    `json:"name"`                            // Tên chương trình khuyến mãi
	DiscountType string    `json:"discountType"`                    // percent | amount
	Value        float64   `json:"value"`                           // % hoặc số tiền giảm
	FromDate     string    `json:"fromDate"`                        // Ngày bắt đầu khuyến mãi
	ToDate       string    `json:"toDate"`                          // Ngày kết thúc khuyến mãi
	Status       int       `json:"status" gorm:"default:1"`         // 1: Active, 0: Inactive
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"` // Thời gian tạo
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"` // Thời gian cập nhật
}

func (p *Promotion) ValidateStatus() error {
	if p.Status < 0 || p.Status > 1 {
		return fmt.Errorf("invalid Status: %d, must be either 0 or 1", p.Status)
	}
	return nil
}

func (p *Promotion) ValidateDiscountType() error {
	if p.DiscountType != "percent" && p.DiscountType != "amount" {
		return fmt.Errorf("invalid DiscountType: %s, must be percent or amount", p.DiscountType)
	}
	return nil
}
