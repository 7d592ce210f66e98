package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	RoomID      uint           `json:"id" gorm:"primaryKey"`
	RoomCode    string         `json:"roomCode" gorm:"unique;size:20"` // Mã phòng dùng khi tra cứu
	RoomName    string         `json:"roomName"`
	Type        uint           `json:"type"`
	NumBed      int            `json:"numBed"`
	NumTolet    int            `json:"numTolet"`
	Acreage     int            `json:"acreage"`
	Price       int            `json:"price"` // Giá một đêm (VND)
	People      int            `json:"people"`
	Description string         `json:"description"`
	Status      int            `json:"status" gorm:"default:1"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Promotions  []Promotion    `json:"promotions" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 1 || r.Status > 3 {
		return fmt.Errorf("invalid status: %d, must be between 1 and 3", r.Status)
	}
	return nil
}
