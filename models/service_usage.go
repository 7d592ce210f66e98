package models

import "time"

// ServiceUsage là một dòng dịch vụ khách đã dùng trong một booking
type ServiceUsage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookingID uint      `json:"bookingId"`
	ServiceID uint      `json:"serviceId"`
	Service   Service   `json:"service" gorm:"foreignKey:ServiceID"`
	Quantity  int       `json:"quantity"`
	LineTotal float64   `json:"lineTotal"` // Đơn giá x số lượng, chốt lúc tạo
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
