package validator

import (
	"testing"

	"hotel/constants"
	"hotel/dto"
	apperrors "hotel/errors"
	"hotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAppErrorCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}

func TestValidateStruct(t *testing.T) {
	req := dto.BookingPriceRequest{
		RoomID:       "1",
		CheckInDate:  "10/03/2026",
		CheckOutDate: "13/03/2026",
	}
	assert.NoError(t, ValidateStruct(&req))

	req.CheckOutDate = ""
	assertAppErrorCode(t, ValidateStruct(&req), apperrors.ErrCodeValidation)
}

func TestValidateUser(t *testing.T) {
	user := &models.User{
		Email:       "letan@khachsan.vn",
		Password:    "matkhau123",
		PhoneNumber: "0912345678",
		Role:        3,
	}
	assert.NoError(t, ValidateUser(user))

	user.Email = "khong-phai-email"
	assertAppErrorCode(t, ValidateUser(user), apperrors.ErrCodeInvalidEmail)

	user.Email = "letan@khachsan.vn"
	user.Password = "ngan"
	assertAppErrorCode(t, ValidateUser(user), apperrors.ErrCodeValidation)

	user.Password = "matkhau123"
	user.PhoneNumber = "12345"
	assertAppErrorCode(t, ValidateUser(user), apperrors.ErrCodeInvalidPhone)

	user.PhoneNumber = "0912345678"
	user.Role = 7
	assertAppErrorCode(t, ValidateUser(user), apperrors.ErrCodeInvalidRole)
}

func TestValidateBooking(t *testing.T) {
	userID := uint(3)
	booking := &models.Booking{
		RoomID:       1,
		UserID:       &userID,
		NumRooms:     1,
		CheckInDate:  "10/03/2026",
		CheckOutDate: "13/03/2026",
	}
	assert.NoError(t, ValidateBooking(booking))

	booking.CheckOutDate = "10/03/2026"
	assertAppErrorCode(t, ValidateBooking(booking), apperrors.ErrCodeInvalidDateRange)

	booking.CheckOutDate = "2026-03-13"
	assertAppErrorCode(t, ValidateBooking(booking), apperrors.ErrCodeInvalidFormat)

	booking.CheckOutDate = "13/03/2026"
	booking.NumRooms = 0
	assertAppErrorCode(t, ValidateBooking(booking), apperrors.ErrCodeValidation)
}

func TestValidateBookingGuestInfo(t *testing.T) {
	booking := &models.Booking{
		RoomID:       1,
		NumRooms:     1,
		CheckInDate:  "10/03/2026",
		CheckOutDate: "13/03/2026",
	}

	// Khách vãng lai phải có tên và số điện thoại
	assertAppErrorCode(t, ValidateBooking(booking), apperrors.ErrCodeRequiredField)

	booking.GuestName = "Nguyễn Văn A"
	assertAppErrorCode(t, ValidateBooking(booking), apperrors.ErrCodeRequiredField)

	booking.GuestPhone = "0912345678"
	assert.NoError(t, ValidateBooking(booking))

	booking.GuestEmail = "sai-dinh-dang"
	assertAppErrorCode(t, ValidateBooking(booking), apperrors.ErrCodeInvalidEmail)
}

func TestValidatePromotion(t *testing.T) {
	promotion := &models.Promotion{
		Name:         "Giảm giá hè",
		RoomID:       1,
		DiscountType: constants.PromotionTypePercent,
		Value:        20,
		FromDate:     "01/06/2026",
		ToDate:       "30/06/2026",
	}
	assert.NoError(t, ValidatePromotion(promotion))

	promotion.Value = 120
	assertAppErrorCode(t, ValidatePromotion(promotion), apperrors.ErrCodeInvalidAmount)

	promotion.Value = 20
	promotion.ToDate = "31/05/2026"
	assertAppErrorCode(t, ValidatePromotion(promotion), apperrors.ErrCodeValidation)

	promotion.ToDate = "30/06/2026"
	promotion.DiscountType = "voucher"
	assertAppErrorCode(t, ValidatePromotion(promotion), apperrors.ErrCodeValidation)
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(50000))
	assertAppErrorCode(t, ValidateAmount(0), apperrors.ErrCodeInvalidAmount)
	assertAppErrorCode(t, ValidateAmount(-1000), apperrors.ErrCodeInvalidAmount)
}

func TestValidateReview(t *testing.T) {
	review := &models.Review{
		UserID:    1,
		BookingID: 2,
		RoomID:    3,
		Star:      5,
		Comment:   "Phòng sạch, nhân viên thân thiện",
	}
	assert.NoError(t, ValidateReview(review))

	review.Star = 6
	assertAppErrorCode(t, ValidateReview(review), apperrors.ErrCodeValidation)
}
