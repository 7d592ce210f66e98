package models

import "time"

// DailyRevenue là doanh thu khách sạn theo ngày, cập nhật khi hóa đơn được thanh toán đủ
type DailyRevenue struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date         time.Time `gorm:"not null;uniqueIndex" json:"date"`
	Revenue      float64   `gorm:"not null" json:"revenue"`
	BookingCount int       `gorm:"not null" json:"booking_count"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
