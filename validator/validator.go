package validator

import (
	"regexp"
	"time"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct chạy các tag validate trên struct request
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}
	return nil
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 3 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateBooking validate thông tin đặt phòng
func ValidateBooking(booking *models.Booking) error {
	if booking.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	checkInDate, err := time.Parse(constants.DateLayout, booking.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOutDate, err := time.Parse(constants.DateLayout, booking.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkOutDate.After(checkInDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if booking.NumRooms < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số phòng phải lớn hơn 0", nil)
	}

	if booking.UserID == nil {
		if booking.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
		}
		if booking.GuestPhone == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
		}
		if !isValidPhone(booking.GuestPhone) {
			return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại khách không hợp lệ", nil)
		}
		if booking.GuestEmail != "" && !isValidEmail(booking.GuestEmail) {
			return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
		}
	}

	return nil
}

// ValidatePromotion validate thông tin khuyến mãi
func ValidatePromotion(promotion *models.Promotion) error {
	if promotion.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên chương trình khuyến mãi không được để trống", nil)
	}

	if promotion.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	if err := promotion.ValidateDiscountType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại giảm giá phải là percent hoặc amount", err)
	}

	if promotion.Value < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Mức giảm giá không được âm", nil)
	}

	if promotion.DiscountType == constants.PromotionTypePercent && promotion.Value > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Mức giảm giá phần trăm phải nằm trong khoảng từ 0 đến 100", nil)
	}

	fromDate, err := time.Parse(constants.DateLayout, promotion.FromDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày bắt đầu không hợp lệ", err)
	}

	toDate, err := time.Parse(constants.DateLayout, promotion.ToDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if toDate.Before(fromDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	return nil
}

// ValidateService validate thông tin dịch vụ
func ValidateService(service *models.Service) error {
	if service.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên dịch vụ không được để trống", nil)
	}

	if service.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá dịch vụ không được âm", nil)
	}

	return nil
}

// ValidateReview validate thông tin đánh giá
func ValidateReview(review *models.Review) error {
	if review.UserID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID người dùng không được để trống", nil)
	}

	if review.BookingID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID đơn đặt phòng không được để trống", nil)
	}

	if review.Star < 1 || review.Star > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao đánh giá phải từ 1 đến 5", nil)
	}

	if review.Comment == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nội dung đánh giá không được để trống", nil)
	}

	return nil
}

// ValidateAmount validate số tiền
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền phải lớn hơn 0", nil)
	}
	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePhone kiểm tra số điện thoại hợp lệ
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
