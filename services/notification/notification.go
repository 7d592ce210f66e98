package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

type CheckoutMessageBuilder struct {
	bookingCode string
	totalAmount float64
	lateFee     float64
}

func NewCheckoutMessageBuilder(bookingCode string, totalAmount, lateFee float64) *CheckoutMessageBuilder {
	return &CheckoutMessageBuilder{
		bookingCode: bookingCode,
		totalAmount: totalAmount,
		lateFee:     lateFee,
	}
}

func (b *CheckoutMessageBuilder) Build() string {
	if b.lateFee > 0 {
		return fmt.Sprintf("🔔 Đơn %s đã trả phòng, tổng tiền %.0f VND (phí trễ %.0f VND).", b.bookingCode, b.totalAmount, b.lateFee)
	}
	return fmt.Sprintf("🔔 Đơn %s đã trả phòng, tổng tiền %.0f VND.", b.bookingCode, b.totalAmount)
}

type PaymentMessageBuilder struct {
	invoiceCode string
	amount      float64
	remaining   float64
}

func NewPaymentMessageBuilder(invoiceCode string, amount, remaining float64) *PaymentMessageBuilder {
	return &PaymentMessageBuilder{
		invoiceCode: invoiceCode,
		amount:      amount,
		remaining:   remaining,
	}
}

func (b *PaymentMessageBuilder) Build() string {
	if b.remaining <= 0 {
		return fmt.Sprintf("🔔 Hóa đơn %s đã thanh toán đủ (+%.0f VND).", b.invoiceCode, b.amount)
	}
	return fmt.Sprintf("🔔 Hóa đơn %s nhận %.0f VND, còn lại %.0f VND.", b.invoiceCode, b.amount, b.remaining)
}

type RevenueMessageBuilder struct {
	date     string
	revenue  float64
	bookings int
}

func NewRevenueMessageBuilder(date string, revenue float64, bookings int) *RevenueMessageBuilder {
	return &RevenueMessageBuilder{
		date:     date,
		revenue:  revenue,
		bookings: bookings,
	}
}

func (b *RevenueMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Doanh thu ngày %s: %.0f VND từ %d đơn.", b.date, b.revenue, b.bookings)
}
