package models

import "time"

// PaymentRecord là một lần thanh toán của hóa đơn, chỉ thêm mới, không sửa.
// Status lưu dạng chuỗi vì dữ liệu cũ chứa nhiều biến thể mã hóa khác nhau;
// mọi so sánh phải đi qua services.IsPaymentSuccess.
type PaymentRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	InvoiceID   uint      `json:"invoiceId"`
	PaymentCode string    `json:"paymentCode" gorm:"unique;size:40"`
	Method      string    `json:"method"` // cash | transfer | momo
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
