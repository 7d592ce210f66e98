package services

import (
	"testing"

	"hotel/errors"
	"hotel/models"

	"github.com/stretchr/testify/assert"
)

func TestBookingFacadeValidate(t *testing.T) {
	facade := NewBookingFacade(nil)

	// Thiếu phòng
	err := facade.CreateBooking(&models.Booking{})
	assert.Error(t, err)

	// Thiếu thông tin liên hệ của khách vãng lai
	err = facade.CreateBooking(&models.Booking{RoomID: 1})
	assert.Error(t, err)

	// Ngày sai định dạng
	err = facade.CreateBooking(&models.Booking{
		RoomID:       1,
		GuestPhone:   "0912345678",
		CheckInDate:  "2026-03-10",
		CheckOutDate: "13/03/2026",
	})
	assert.Error(t, err)

	// Ngày trả phòng không sau ngày nhận phòng
	err = facade.CreateBooking(&models.Booking{
		RoomID:       1,
		GuestPhone:   "0912345678",
		CheckInDate:  "13/03/2026",
		CheckOutDate: "13/03/2026",
	})
	assert.ErrorIs(t, err, errors.ErrInvalidDateRange)
}
