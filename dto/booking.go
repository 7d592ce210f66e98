package dto

import "time"

// CreateBookingRequest là DTO cho request đặt phòng
type CreateBookingRequest struct {
	UserID       uint   `json:"userId"`
	RoomID       uint   `json:"roomId" binding:"required"`
	NumRooms     int    `json:"numRooms"`
	GuestCount   int    `json:"guestCount"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	GuestName    string `json:"guestName,omitempty"`
	GuestEmail   string `json:"guestEmail,omitempty"`
	GuestPhone   string `json:"guestPhone,omitempty"`
}

// BookingPriceRequest là tham số query cho API báo giá đặt phòng
type BookingPriceRequest struct {
	RoomID       string `validate:"required"`
	CheckInDate  string `validate:"required"`
	CheckOutDate string `validate:"required"`
}

// UpdateBookingStatusRequest là DTO cho request cập nhật trạng thái booking
type UpdateBookingStatusRequest struct {
	Status int `json:"status"`
}

// ActorResponse là DTO cho thông tin người đặt
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// BookingRoomResponse là DTO cho thông tin phòng trong booking
type BookingRoomResponse struct {
	ID       uint   `json:"id"`
	RoomCode string `json:"roomCode"`
	RoomName string `json:"roomName"`
	Price    int    `json:"price"`
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID            uint                   `json:"id"`
	BookingCode   string                 `json:"bookingCode"`
	User          ActorResponse          `json:"user"`
	Room          BookingRoomResponse    `json:"room"`
	NumRooms      int                    `json:"numRooms"`
	GuestCount    int                    `json:"guestCount"`
	CheckInDate   string                 `json:"checkInDate"`
	CheckOutDate  string                 `json:"checkOutDate"`
	Status        int                    `json:"status"`
	RoomPrice     float64                `json:"roomPrice"`
	DiscountPrice float64                `json:"discountPrice"`
	TotalPrice    float64                `json:"totalPrice"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
	ServiceUsages []ServiceUsageResponse `json:"serviceUsages,omitempty"`
	InvoiceCode   string                 `json:"invoiceCode,omitempty"`
}

// BookingPriceResponse là DTO cho kết quả tính giá trước khi đặt
type BookingPriceResponse struct {
	Nights        int     `json:"nights"`
	RoomPrice     float64 `json:"roomPrice"`
	DiscountPrice float64 `json:"discountPrice"`
	TotalPrice    float64 `json:"totalPrice"`
	PromotionName string  `json:"promotionName,omitempty"`
}
