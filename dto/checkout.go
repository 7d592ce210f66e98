package dto

// CheckoutRequest là DTO cho request trả phòng
type CheckoutRequest struct {
	BookingCode string `json:"bookingCode" binding:"required"`
}

// CheckoutResponse là DTO cho kết quả trả phòng
type CheckoutResponse struct {
	BookingCode string          `json:"bookingCode"`
	LateHours   int             `json:"lateHours"`
	LateFee     float64         `json:"lateFee"`
	Invoice     InvoiceResponse `json:"invoice"`
}
