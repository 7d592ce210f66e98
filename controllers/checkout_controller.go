package controllers

import (
	"time"

	stderrors "errors"

	"hotel/dto"
	"hotel/errors"
	"hotel/response"
	"hotel/services"
	"hotel/services/notification"
	"hotel/utils"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// CheckoutController xử lý API trả phòng
type CheckoutController struct {
	db       *gorm.DB
	checkout *services.CheckoutService
	melody   *melody.Melody
}

func NewCheckoutController(db *gorm.DB, m *melody.Melody) *CheckoutController {
	return &CheckoutController{
		db:       db,
		checkout: services.NewCheckoutService(db),
		melody:   m,
	}
}

// respondCheckoutError map lỗi trả phòng sang response tương ứng
func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrBookingNotFound), stderrors.Is(err, errors.ErrRoomNotFound):
		response.NotFound(c)
	case stderrors.Is(err, errors.ErrInvalidState):
		response.BadRequest(c, "Booking không ở trạng thái có thể trả phòng")
	case stderrors.Is(err, errors.ErrInvalidDateRange):
		response.BadRequest(c, "Ngày trả phòng của booking không hợp lệ")
	default:
		response.ServerError(c)
	}
}

func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var request dto.CheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := ctrl.checkout.Checkout(request.BookingCode, time.Now())
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	utils.LogInfo("Trả phòng %s: phí trễ %.0f (%d giờ), tổng hóa đơn %.0f",
		result.Booking.BookingCode, result.LateFee, result.LateHours, result.Invoice.TotalAmount)

	// Các side effect sau trả phòng không chặn response
	booking := result.Booking
	email := booking.GuestEmail
	if email == "" && booking.User != nil {
		email = booking.User.Email
	}
	if email != "" {
		if err := services.SendCheckoutEmail(email, result.Invoice.InvoiceCode, result.Invoice.TotalAmount, result.LateFee); err != nil {
			utils.LogError("Gửi mail trả phòng thất bại cho đơn %s: %v", booking.BookingCode, err)
		}
	}

	if ctrl.melody != nil {
		builder := notification.NewCheckoutMessageBuilder(booking.BookingCode, result.Invoice.TotalAmount, result.LateFee)
		svc := notification.NewMelodyService(ctrl.melody)
		if err := svc.SendMessage(builder.Build()); err != nil {
			utils.LogError("Broadcast trả phòng thất bại cho đơn %s: %v", booking.BookingCode, err)
		}
	}

	invalidateBookingCache()
	invalidateRoomCache()
	invalidateInvoiceCache()

	response.Success(c, dto.CheckoutResponse{
		BookingCode: booking.BookingCode,
		LateHours:   result.LateHours,
		LateFee:     result.LateFee,
		Invoice:     toInvoiceResponse(*result.Invoice, booking.BookingCode),
	})
}
