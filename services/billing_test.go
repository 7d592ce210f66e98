package services

import (
	"testing"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoiceNew(t *testing.T) {
	room := &models.Room{Price: 500000}
	booking := &models.Booking{
		ID:            7,
		CheckInDate:   "10/03/2026",
		CheckOutDate:  "13/03/2026",
		DiscountPrice: 100000,
		ServiceUsages: []models.ServiceUsage{
			{LineTotal: 80000},
			{LineTotal: 40000},
		},
	}

	invoice, err := BuildOrUpdateInvoice(booking, room, 30000)
	require.NoError(t, err)

	assert.Equal(t, uint(7), invoice.BookingID)
	assert.Equal(t, 1500000.0, invoice.RoomSubtotal)
	assert.Equal(t, 120000.0, invoice.ServiceSubtotal)
	assert.Equal(t, 100000.0, invoice.Discount)
	assert.Equal(t, 30000.0, invoice.LateFee)
	assert.Equal(t, 1550000.0, invoice.TotalAmount)
	assert.Equal(t, invoice.TotalAmount, invoice.RemainingAmount)
	assert.Equal(t, 0.0, invoice.PaidAmount)
	assert.Equal(t, constants.InvoiceStatusUnpaid, invoice.Status)
	assert.Contains(t, invoice.Note, "Phí trả phòng trễ")
	assert.Same(t, invoice, booking.Invoice)
}

func TestBuildInvoiceTotalInvariant(t *testing.T) {
	room := &models.Room{Price: 350000}
	booking := &models.Booking{
		CheckInDate:   "01/04/2026",
		CheckOutDate:  "05/04/2026",
		DiscountPrice: 50000,
		ServiceUsages: []models.ServiceUsage{{LineTotal: 25000}},
	}

	invoice, err := BuildOrUpdateInvoice(booking, room, 0)
	require.NoError(t, err)

	assert.Equal(t,
		invoice.RoomSubtotal+invoice.ServiceSubtotal-invoice.Discount+invoice.LateFee,
		invoice.TotalAmount)
	assert.Empty(t, invoice.Note)
}

func TestBuildInvoiceInvalidDates(t *testing.T) {
	room := &models.Room{Price: 350000}

	_, err := BuildOrUpdateInvoice(&models.Booking{
		CheckInDate:  "xx/04/2026",
		CheckOutDate: "05/04/2026",
	}, room, 0)
	assert.ErrorIs(t, err, errors.ErrInvalidDateRange)

	_, err = BuildOrUpdateInvoice(&models.Booking{
		CheckInDate:  "05/04/2026",
		CheckOutDate: "05/04/2026",
	}, room, 0)
	assert.ErrorIs(t, err, errors.ErrInvalidDateRange)
}

func TestUpdateInvoiceAddsLateFee(t *testing.T) {
	room := &models.Room{Price: 500000}
	booking := &models.Booking{
		CheckInDate:  "10/03/2026",
		CheckOutDate: "13/03/2026",
		Invoice: &models.Invoice{
			ID:              3,
			RoomSubtotal:    1500000,
			TotalAmount:     1500000,
			RemainingAmount: 1500000,
		},
	}

	invoice, err := BuildOrUpdateInvoice(booking, room, 30000)
	require.NoError(t, err)

	assert.Equal(t, uint(3), invoice.ID)
	assert.Equal(t, 30000.0, invoice.LateFee)
	assert.Equal(t, 1530000.0, invoice.TotalAmount)
	assert.Equal(t, 1530000.0, invoice.RemainingAmount)
	assert.Contains(t, invoice.Note, "Cộng thêm phí trả phòng trễ")

	// Hóa đơn đã tồn tại thì các khoản gốc không bị tính lại
	assert.Equal(t, 1500000.0, invoice.RoomSubtotal)

	// Gọi lại lần nữa sẽ cộng dồn tiếp, không tự bảo vệ
	invoice, err = BuildOrUpdateInvoice(booking, room, 30000)
	require.NoError(t, err)
	assert.Equal(t, 60000.0, invoice.LateFee)
	assert.Equal(t, 1560000.0, invoice.TotalAmount)
}

func TestUpdateInvoiceZeroLateFeeNoChange(t *testing.T) {
	booking := &models.Booking{
		Invoice: &models.Invoice{
			ID:          3,
			TotalAmount: 900000,
		},
	}

	invoice, err := BuildOrUpdateInvoice(booking, &models.Room{Price: 300000}, 0)
	require.NoError(t, err)

	assert.Equal(t, 900000.0, invoice.TotalAmount)
	assert.Empty(t, invoice.Note)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "1500000", FormatCurrency(1500000))
	assert.Equal(t, "0", FormatCurrency(0))
	assert.Equal(t, "30000", FormatCurrency(30000.4))
}
