package services

import (
	"fmt"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"
)

// FormatCurrency định dạng số tiền VND
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("%0.0f", amount)
}

// BuildOrUpdateInvoice gom tiền phòng, tiền dịch vụ, giảm giá và phí trễ thành hóa đơn.
// Nếu booking chưa có hóa đơn thì tạo mới; nếu đã có thì KHÔNG tính lại các khoản,
// chỉ cộng thêm phí trễ vào tổng và ghi chú. Đây là phép cộng dồn, gọi lặp lại sẽ
// cộng phí trễ nhiều lần — luồng trả phòng chặn điều đó bằng kiểm tra trạng thái cuối.
func BuildOrUpdateInvoice(booking *models.Booking, room *models.Room, lateFee float64) (*models.Invoice, error) {
	if booking.Invoice == nil {
		checkIn, err := ParseBookingDate(booking.CheckInDate)
		if err != nil {
			return nil, errors.ErrInvalidDateRange
		}
		checkOut, err := ParseBookingDate(booking.CheckOutDate)
		if err != nil {
			return nil, errors.ErrInvalidDateRange
		}
		nights := NightsBetween(checkIn, checkOut)
		if nights <= 0 {
			return nil, errors.ErrInvalidDateRange
		}

		roomSubtotal := float64(room.Price * nights)
		serviceSubtotal := 0.0
		for _, usage := range booking.ServiceUsages {
			serviceSubtotal += usage.LineTotal
		}
		discount := booking.DiscountPrice

		total := roomSubtotal + serviceSubtotal - discount + lateFee

		invoice := &models.Invoice{
			BookingID:       booking.ID,
			RoomSubtotal:    roomSubtotal,
			ServiceSubtotal: serviceSubtotal,
			Discount:        discount,
			LateFee:         lateFee,
			TotalAmount:     total,
			PaidAmount:      0,
			RemainingAmount: total,
			Status:          constants.InvoiceStatusUnpaid,
		}
		if lateFee > 0 {
			invoice.Note = fmt.Sprintf("Phí trả phòng trễ: %s VND", FormatCurrency(lateFee))
		}
		booking.Invoice = invoice
		return invoice, nil
	}

	invoice := booking.Invoice
	if lateFee > 0 {
		invoice.LateFee += lateFee
		invoice.TotalAmount += lateFee
		invoice.RemainingAmount += lateFee
		note := fmt.Sprintf("Cộng thêm phí trả phòng trễ: %s VND", FormatCurrency(lateFee))
		if invoice.Note != "" {
			invoice.Note = invoice.Note + "; " + note
		} else {
			invoice.Note = note
		}
	}
	return invoice, nil
}
