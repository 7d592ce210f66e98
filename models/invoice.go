package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Invoice struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	InvoiceCode     string          `json:"invoiceCode" gorm:"unique;size:20"` // Mã hóa đơn duy nhất
	BookingID       uint            `json:"bookingId"`
	RoomSubtotal    float64         `json:"roomSubtotal"`    // Tiền phòng
	ServiceSubtotal float64         `json:"serviceSubtotal"` // Tiền dịch vụ
	Discount        float64         `json:"discount"`        // Tiền giảm giá
	LateFee         float64         `json:"lateFee"`         // Phí trả phòng trễ
	TotalAmount     float64         `json:"totalAmount"`     // Tổng = phòng + dịch vụ - giảm giá + phí trễ
	PaidAmount      float64         `json:"paidAmount"`
	RemainingAmount float64         `json:"remainingAmount"`
	Status          int             `json:"status"` // 0: Chưa thanh toán, 1: Thanh toán một phần, 2: Đã thanh toán
	Note            string          `json:"note"`
	PaymentDate     *time.Time      `json:"paymentDate,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Payments        []PaymentRecord `json:"payments" gorm:"foreignKey:InvoiceID"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if invoice.InvoiceCode != "" {
		return nil
	}
	invoice.InvoiceCode = fmt.Sprintf("HD%d", time.Now().Unix())

	var count int64
	if err := tx.Model(&Invoice{}).Where("invoice_code = ?", invoice.InvoiceCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("InvoiceCode đã tồn tại, hãy thử lại")
	}
	return nil
}
