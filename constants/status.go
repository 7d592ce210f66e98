package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusInUse     = 2
	BookingStatusCompleted = 3
	BookingStatusCancelled = 4
)

// Room status
const (
	RoomStatusVacant      = 1
	RoomStatusOccupied    = 2
	RoomStatusMaintenance = 3
)

// Invoice status
const (
	InvoiceStatusUnpaid        = 0
	InvoiceStatusPartiallyPaid = 1
	InvoiceStatusPaid          = 2
)

// Promotion status
const (
	PromotionStatusInactive = 0
	PromotionStatusActive   = 1
)

// Promotion discount type
const (
	PromotionTypePercent = "percent"
	PromotionTypeAmount  = "amount"
)

// Payment record status
const (
	PaymentStatusSuccess = "Thành công"
	PaymentStatusFailed  = "Thất bại"
)

// Payment method
const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodMomo     = "momo"
)

// Giờ trả phòng tiêu chuẩn của khách sạn
const CheckOutHour = 12

// Số VND đổi 1 điểm tích lũy
const LoyaltyPointUnit = 100000

// DateLayout định dạng ngày dùng chung cho toàn hệ thống
const DateLayout = "02/01/2006"
