package builders

import (
	"hotel/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithUser thêm thông tin user
func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = &userID
	return b
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID uint, numRooms int) *BookingBuilder {
	b.booking.RoomID = roomID
	if numRooms < 1 {
		numRooms = 1
	}
	b.booking.NumRooms = numRooms
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// WithGuestCount thêm số khách
func (b *BookingBuilder) WithGuestCount(guestCount int) *BookingBuilder {
	b.booking.GuestCount = guestCount
	return b
}

// WithCheckIn thêm thời gian check-in
func (b *BookingBuilder) WithCheckIn(checkIn string) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	return b
}

// WithCheckOut thêm thời gian check-out
func (b *BookingBuilder) WithCheckOut(checkOut string) *BookingBuilder {
	b.booking.CheckOutDate = checkOut
	return b
}

// WithPricing thêm giá phòng, khuyến mãi và tổng giá
func (b *BookingBuilder) WithPricing(roomPrice, discountPrice, totalPrice float64) *BookingBuilder {
	b.booking.RoomPrice = roomPrice
	b.booking.DiscountPrice = discountPrice
	b.booking.TotalPrice = totalPrice
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
