package models

import "time"

// LoyaltyHistory ghi lại mỗi lần cộng/trừ điểm tích lũy của người dùng
type LoyaltyHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"userId"`
	BookingID uint      `json:"bookingId"`
	Points    int       `gorm:"not null" json:"points"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User User `gorm:"foreignKey:UserID;" json:"user"`
}
