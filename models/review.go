package models

import "time"

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookingID uint      `json:"bookingId"`
	UserID    uint      `json:"userId"`
	RoomID    uint      `json:"roomId"`
	Comment   string    `json:"comment"` // Bình luận của người dùng
	Star      int       `json:"star"`    // Số sao (điểm đánh giá)
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
