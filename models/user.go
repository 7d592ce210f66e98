package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string        `gorm:"default:New User" json:"name"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"password"`
	PhoneNumber   string        `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Role          int           `gorm:"default:0" json:"role"` // 0: khách, 1: super admin, 2: admin, 3: lễ tân
	Status        int           `gorm:"default:1" json:"status"`
	LoyaltyPoints int           `gorm:"default:0" json:"loyaltyPoints"` // Điểm tích lũy
	FavoriteRooms pq.Int64Array `json:"favoriteRooms" gorm:"type:integer[]"`
}
