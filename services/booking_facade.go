package services

import (
	"hotel/commands"
	"hotel/constants"
	"hotel/errors"
	"hotel/models"

	"gorm.io/gorm"
)

// BookingFacade đơn giản hóa việc tương tác với các service khi đặt phòng
type BookingFacade struct {
	db                  *gorm.DB
	notificationService *BookingNotificationService
}

// BookingNotificationService xử lý logic gửi thông báo đặt phòng
type BookingNotificationService struct {
	db *gorm.DB
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(db *gorm.DB) *BookingFacade {
	return &BookingFacade{
		db: db,
		notificationService: &BookingNotificationService{
			db: db,
		},
	}
}

func (f *BookingFacade) validate(booking *models.Booking) error {
	if booking.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thiếu thông tin phòng", nil)
	}
	if booking.UserID == nil && booking.GuestEmail == "" && booking.GuestPhone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thiếu thông tin liên hệ của khách", nil)
	}
	checkIn, err := ParseBookingDate(booking.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}
	checkOut, err := ParseBookingDate(booking.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}
	if !checkOut.After(checkIn) {
		return errors.ErrInvalidDateRange
	}
	return nil
}

// CreateBooking tạo booking mới
func (f *BookingFacade) CreateBooking(booking *models.Booking) error {
	if err := f.validate(booking); err != nil {
		return err
	}

	cmd := commands.NewCreateBookingCommand(booking, f.db)
	if err := cmd.Execute(); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo đơn đặt phòng", err)
	}

	if err := f.notificationService.SendConfirmation(booking); err != nil {
		// Lỗi gửi mail không làm hỏng đơn đặt phòng
		svcLogger.Error("Gửi mail xác nhận thất bại cho đơn %s: %v", booking.BookingCode, err)
	}

	return nil
}

// CancelBooking hủy booking
func (f *BookingFacade) CancelBooking(bookingID uint) error {
	var booking models.Booking
	if err := f.db.First(&booking, bookingID).Error; err != nil {
		return errors.ErrBookingNotFound
	}

	state := models.GetBookingState(booking.Status)
	if err := state.Cancel(&booking); err != nil {
		return err
	}

	cmd := commands.NewUpdateBookingCommand(&booking, f.db)
	if err := cmd.Execute(); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không thể hủy đơn đặt phòng", err)
	}

	// Trả phòng về trạng thái trống
	if err := f.db.Model(&models.Room{}).
		Where("room_id = ?", booking.RoomID).
		Update("status", constants.RoomStatusVacant).Error; err != nil {
		svcLogger.Error("Không thể cập nhật trạng thái phòng %d: %v", booking.RoomID, err)
	}

	return nil
}

// SendConfirmation gửi mail xác nhận cho khách
func (s *BookingNotificationService) SendConfirmation(booking *models.Booking) error {
	email := booking.GuestEmail
	if email == "" && booking.UserID != nil {
		var user models.User
		if err := s.db.First(&user, *booking.UserID).Error; err == nil {
			email = user.Email
		}
	}
	if email == "" {
		return nil
	}
	return SendBookingEmail(email, booking.BookingCode, booking.TotalPrice, booking.CheckInDate, booking.CheckOutDate)
}
