package dto

// InvoiceResponse là DTO cho response của invoice
type InvoiceResponse struct {
	ID              uint                    `json:"id"`
	InvoiceCode     string                  `json:"invoiceCode"`
	BookingID       uint                    `json:"bookingId"`
	BookingCode     string                  `json:"bookingCode"`
	RoomSubtotal    float64                 `json:"roomSubtotal"`
	ServiceSubtotal float64                 `json:"serviceSubtotal"`
	Discount        float64                 `json:"discount"`
	LateFee         float64                 `json:"lateFee"`
	TotalAmount     float64                 `json:"totalAmount"`
	PaidAmount      float64                 `json:"paidAmount"`
	RemainingAmount float64                 `json:"remainingAmount"`
	Status          int                     `json:"status"`
	Note            string                  `json:"note,omitempty"`
	PaymentDate     *string                 `json:"paymentDate,omitempty"`
	CreatedAt       string                  `json:"createdAt"`
	UpdatedAt       string                  `json:"updatedAt"`
	Payments        []PaymentRecordResponse `json:"payments,omitempty"`
}

// PaymentRecordResponse là DTO cho một lần thanh toán
type PaymentRecordResponse struct {
	ID          uint    `json:"id"`
	PaymentCode string  `json:"paymentCode"`
	Method      string  `json:"method"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Note        string  `json:"note,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ApplyPaymentRequest là DTO cho request ghi nhận thanh toán
type ApplyPaymentRequest struct {
	Method string  `json:"method" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
	Note   string  `json:"note"`
}

// ApplyPaymentResponse là DTO cho kết quả ghi nhận thanh toán
type ApplyPaymentResponse struct {
	Payment         PaymentRecordResponse `json:"payment"`
	RemainingAmount float64               `json:"remainingAmount"`
	InvoiceStatus   int                   `json:"invoiceStatus"`
}
