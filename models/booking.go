package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Booking status constants
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusInUse     = 2
	BookingStatusCompleted = 3
	BookingStatusCancelled = 4
)

type Booking struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	BookingCode   string         `json:"bookingCode" gorm:"unique;size:20"` // Mã đặt phòng duy nhất
	UserID        *uint          `json:"userId"`
	User          *User          `json:"user" gorm:"foreignKey:UserID"`
	RoomID        uint           `json:"roomId"`
	Room          Room           `json:"room" gorm:"foreignKey:RoomID"`
	NumRooms      int            `json:"numRooms" gorm:"default:1"` // Số phòng cùng loại
	GuestCount    int            `json:"guestCount"`
	CheckInDate   string         `json:"checkInDate"`
	CheckOutDate  string         `json:"checkOutDate"`
	Status        int            `json:"status"`
	GuestName     string         `json:"guestName,omitempty"`
	GuestEmail    string         `json:"guestEmail,omitempty"`
	GuestPhone    string         `json:"guestPhone,omitempty"`
	RoomPrice     float64        `json:"roomPrice"`     // Tiền phòng trước giảm giá
	DiscountPrice float64        `json:"discountPrice"` // Tiền khuyến mãi được trừ
	TotalPrice    float64        `json:"totalPrice"`    // Tổng giá
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Invoice       *Invoice       `json:"invoice,omitempty" gorm:"foreignKey:BookingID"`
	ServiceUsages []ServiceUsage `json:"serviceUsages" gorm:"foreignKey:BookingID"`
	Review        *Review        `json:"review,omitempty" gorm:"foreignKey:BookingID"`
}

func (booking *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if booking.BookingCode != "" {
		return nil
	}
	booking.BookingCode = fmt.Sprintf("DP%d", time.Now().UnixNano()/1e6)

	var count int64
	if err := tx.Model(&Booking{}).Where("booking_code = ?", booking.BookingCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("BookingCode đã tồn tại, hãy thử lại")
	}
	return nil
}
