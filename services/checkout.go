package services

import (
	stderrors "errors"
	"time"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"

	"gorm.io/gorm"
)

// CheckoutResult là snapshot trả về sau khi trả phòng
type CheckoutResult struct {
	LateHours int             `json:"lateHours"`
	LateFee   float64         `json:"lateFee"`
	Booking   *models.Booking `json:"booking"`
	Invoice   *models.Invoice `json:"invoice"`
}

// CheckoutService xử lý luồng trả phòng
type CheckoutService struct {
	db *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{db: db}
}

// Checkout chuyển booking sang Completed, tính phí trễ, chốt hóa đơn và trả phòng.
// Chỉ booking đang ở trạng thái Confirmed hoặc InUse mới được trả phòng; Completed
// là trạng thái cuối nên gọi lại lần nữa sẽ bị từ chối thay vì cộng phí trễ lần hai.
func (s *CheckoutService) Checkout(bookingCode string, now time.Time) (*CheckoutResult, error) {
	var booking models.Booking
	if err := s.db.
		Preload("User").
		Preload("Room.Promotions").
		Preload("ServiceUsages").
		Preload("Invoice.Payments").
		Where("booking_code = ?", bookingCode).
		First(&booking).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}

	state := models.GetBookingState(booking.Status)
	if err := state.Complete(&booking); err != nil {
		return nil, errors.ErrInvalidState
	}

	var room models.Room
	if err := s.db.First(&room, booking.RoomID).Error; err != nil {
		return nil, errors.ErrRoomNotFound
	}

	expected, err := ExpectedCheckoutTime(booking.CheckOutDate)
	if err != nil {
		return nil, errors.ErrInvalidDateRange
	}
	lateFee, lateHours := CalculateLateFee(expected, now, room.Price)

	invoice, err := BuildOrUpdateInvoice(&booking, &room, lateFee)
	if err != nil {
		return nil, err
	}

	// Hai lần ghi độc lập, không có transaction chung: nếu cập nhật phòng thất bại
	// sau khi booking đã lưu thì dữ liệu lệch và phải sửa tay.
	if err := s.db.Model(&models.Booking{}).Where("id = ?", booking.ID).Updates(map[string]interface{}{
		"status":     booking.Status,
		"updated_at": now,
	}).Error; err != nil {
		return nil, err
	}

	if invoice.ID == 0 {
		if err := s.db.Create(invoice).Error; err != nil {
			return nil, err
		}
	} else {
		if err := s.db.Model(&models.Invoice{}).Where("id = ?", invoice.ID).Updates(map[string]interface{}{
			"late_fee":         invoice.LateFee,
			"total_amount":     invoice.TotalAmount,
			"remaining_amount": invoice.RemainingAmount,
			"note":             invoice.Note,
		}).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Model(&models.Room{}).Where("room_id = ?", room.RoomID).
		Update("status", constants.RoomStatusVacant).Error; err != nil {
		return nil, err
	}

	if booking.UserID != nil {
		if _, err := AccrueLoyaltyPoints(s.db, *booking.UserID, booking.ID, invoice.TotalAmount); err != nil {
			// Không chặn trả phòng vì lỗi tích điểm
			svcLogger.Error("Lỗi tích điểm cho user %d: %v", *booking.UserID, err)
		}
	}

	return &CheckoutResult{
		LateHours: lateHours,
		LateFee:   lateFee,
		Booking:   &booking,
		Invoice:   invoice,
	}, nil
}
