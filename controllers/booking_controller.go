package controllers

import (
	"log"
	"strconv"
	"time"

	"hotel/builders"
	"hotel/commands"
	"hotel/config"
	"hotel/constants"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/services"
	"hotel/validator"

	"github.com/gin-gonic/gin"
)

var bookingCacheKey = "bookings:all"

func toBookingResponse(booking models.Booking) dto.BookingResponse {
	actor := dto.ActorResponse{
		Name:        booking.GuestName,
		Email:       booking.GuestEmail,
		PhoneNumber: booking.GuestPhone,
	}
	if booking.User != nil {
		if actor.Name == "" {
			actor.Name = booking.User.Name
		}
		if actor.Email == "" {
			actor.Email = booking.User.Email
		}
		if actor.PhoneNumber == "" {
			actor.PhoneNumber = booking.User.PhoneNumber
		}
	}

	usages := make([]dto.ServiceUsageResponse, 0, len(booking.ServiceUsages))
	for _, usage := range booking.ServiceUsages {
		usages = append(usages, dto.ServiceUsageResponse{
			ID:          usage.ID,
			ServiceID:   usage.ServiceID,
			ServiceName: usage.Service.Name,
			Quantity:    usage.Quantity,
			LineTotal:   usage.LineTotal,
		})
	}

	resp := dto.BookingResponse{
		ID:          booking.ID,
		BookingCode: booking.BookingCode,
		User:        actor,
		Room: dto.BookingRoomResponse{
			ID:       booking.Room.RoomID,
			RoomCode: booking.Room.RoomCode,
			RoomName: booking.Room.RoomName,
			Price:    booking.Room.Price,
		},
		NumRooms:      booking.NumRooms,
		GuestCount:    booking.GuestCount,
		CheckInDate:   booking.CheckInDate,
		CheckOutDate:  booking.CheckOutDate,
		Status:        booking.Status,
		RoomPrice:     booking.RoomPrice,
		DiscountPrice: booking.DiscountPrice,
		TotalPrice:    booking.TotalPrice,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
		ServiceUsages: usages,
	}
	if booking.Invoice != nil {
		resp.InvoiceCode = booking.Invoice.InvoiceCode
	}
	return resp
}

func invalidateBookingCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, bookingCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache booking: %v", err)
	}
}

func GetAllBookings(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	statusFilter := c.Query("status")
	roomFilter := c.Query("roomId")
	codeFilter := c.Query("bookingCode")

	var allBookings []models.Booking

	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, bookingCacheKey, &allBookings); err != nil || len(allBookings) == 0 {
			allBookings = nil
		}
	}

	if allBookings == nil {
		if err := config.DB.Preload("User").Preload("Room").Preload("Invoice").
			Order("created_at DESC").Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}
		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, bookingCacheKey, allBookings, 5*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
			}
		}
	}

	filtered := make([]models.Booking, 0)
	for _, booking := range allBookings {
		if statusFilter != "" {
			status, _ := strconv.Atoi(statusFilter)
			if booking.Status != status {
				continue
			}
		}
		if roomFilter != "" {
			roomID, err := strconv.Atoi(roomFilter)
			if err == nil && booking.RoomID != uint(roomID) {
				continue
			}
		}
		if codeFilter != "" && booking.BookingCode != codeFilter {
			continue
		}
		filtered = append(filtered, booking)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Booking{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	bookingResponses := make([]dto.BookingResponse, 0)
	for _, booking := range filtered {
		bookingResponses = append(bookingResponses, toBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, total)
}

func GetBookingDetail(c *gin.Context) {
	bookingCode := c.Param("code")

	var booking models.Booking
	if err := config.DB.Preload("User").Preload("Room").Preload("Invoice").
		Preload("ServiceUsages").Preload("ServiceUsages.Service").
		Where("booking_code = ?", bookingCode).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// GetBookingPrice tính giá trước khi đặt, không tạo booking
func GetBookingPrice(c *gin.Context) {
	priceRequest := dto.BookingPriceRequest{
		RoomID:       c.Query("roomId"),
		CheckInDate:  c.Query("checkInDate"),
		CheckOutDate: c.Query("checkOutDate"),
	}
	if err := validator.ValidateStruct(&priceRequest); err != nil {
		response.BadRequest(c, "roomId, checkInDate và checkOutDate là bắt buộc")
		return
	}

	numRooms := 1
	if numRoomsStr := c.Query("numRooms"); numRoomsStr != "" {
		if parsed, err := strconv.Atoi(numRoomsStr); err == nil && parsed > 0 {
			numRooms = parsed
		}
	}

	var room models.Room
	if err := config.DB.Preload("Promotions").First(&room, "room_id = ?", priceRequest.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	checkIn, err := services.ParseBookingDate(priceRequest.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ")
		return
	}
	checkOut, err := services.ParseBookingDate(priceRequest.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ")
		return
	}

	quote, err := services.CalculateRoomPrice(&room, checkIn, checkOut, numRooms)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
		return
	}

	priceResponse := dto.BookingPriceResponse{
		Nights:        quote.Nights,
		RoomPrice:     quote.OriginalTotal,
		DiscountPrice: quote.DiscountApplied,
		TotalPrice:    quote.DiscountedTotal,
	}
	if promo := services.ActivePromotionFor(&room, checkIn, checkOut); promo != nil {
		priceResponse.PromotionName = promo.Name
	}

	response.Success(c, priceResponse)
}

func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Preload("Promotions").First(&room, "room_id = ?", request.RoomID).Error; err != nil {
		response.BadRequest(c, "Phòng không tồn tại")
		return
	}

	if room.Status != constants.RoomStatusVacant {
		response.BadRequest(c, "Phòng hiện không nhận đặt")
		return
	}

	checkIn, err := services.ParseBookingDate(request.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Ngày nhận phòng không hợp lệ")
		return
	}
	checkOut, err := services.ParseBookingDate(request.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng không hợp lệ")
		return
	}

	quote, err := services.CalculateRoomPrice(&room, checkIn, checkOut, request.NumRooms)
	if err != nil {
		response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
		return
	}

	builder := builders.NewBookingBuilder().
		WithRoom(room.RoomID, request.NumRooms).
		WithGuestInfo(request.GuestName, request.GuestPhone, request.GuestEmail).
		WithGuestCount(request.GuestCount).
		WithCheckIn(request.CheckInDate).
		WithCheckOut(request.CheckOutDate).
		WithStatus(constants.BookingStatusPending).
		WithPricing(quote.OriginalTotal, quote.DiscountApplied, quote.DiscountedTotal)

	if request.UserID != 0 {
		builder = builder.WithUser(request.UserID)
	}

	booking := builder.Build()

	facade := services.NewBookingFacade(config.DB)
	if err := facade.CreateBooking(booking); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invalidateBookingCache()

	booking.Room = room
	response.Success(c, toBookingResponse(*booking))
}

func ChangeBookingStatus(c *gin.Context) {
	bookingCode := c.Param("code")

	var request dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("booking_code = ?", bookingCode).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	state := models.GetBookingState(booking.Status)

	var stateErr error
	switch request.Status {
	case constants.BookingStatusConfirmed:
		stateErr = state.Confirm(&booking)
	case constants.BookingStatusInUse:
		stateErr = state.CheckIn(&booking)
	case constants.BookingStatusCompleted:
		// Hoàn thành booking phải đi qua API trả phòng để tính hóa đơn
		response.BadRequest(c, "Vui lòng dùng API trả phòng để hoàn thành booking")
		return
	case constants.BookingStatusCancelled:
		// Hủy đi qua facade: chuyển trạng thái và trả phòng về trống
		facade := services.NewBookingFacade(config.DB)
		if err := facade.CancelBooking(booking.ID); err != nil {
			response.BadRequest(c, "Không thể hủy booking")
			return
		}
		invalidateBookingCache()
		invalidateRoomCache()
		response.Success(c, gin.H{"bookingCode": booking.BookingCode, "status": constants.BookingStatusCancelled})
		return
	default:
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	if stateErr != nil {
		response.BadRequest(c, "Không thể chuyển trạng thái booking")
		return
	}

	if err := config.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Update("status", booking.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Đồng bộ trạng thái phòng theo trạng thái booking
	switch booking.Status {
	case constants.BookingStatusInUse:
		if err := config.DB.Model(&models.Room{}).Where("room_id = ?", booking.RoomID).
			Update("status", constants.RoomStatusOccupied).Error; err != nil {
			log.Printf("Lỗi cập nhật trạng thái phòng %d: %v", booking.RoomID, err)
		}
	}

	invalidateBookingCache()
	invalidateRoomCache()
	response.Success(c, gin.H{"bookingCode": booking.BookingCode, "status": booking.Status})
}

// DeleteBooking xóa hẳn một booking nhập nhầm (chỉ admin). Khách đang ở
// thì không xóa được. Nếu hóa đơn đã thu tiền trong ngày thì trừ lại
// doanh thu ngày trước khi xóa.
func DeleteBooking(c *gin.Context) {
	bookingCode := c.Param("code")

	var booking models.Booking
	if err := config.DB.Preload("Invoice").
		Where("booking_code = ?", bookingCode).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	if booking.Status == constants.BookingStatusInUse {
		response.BadRequest(c, "Không thể xóa booking khi khách đang ở")
		return
	}

	if booking.Invoice != nil {
		if booking.Invoice.Status == constants.InvoiceStatusPaid {
			if err := services.SubtractDailyRevenue(config.DB, booking.Invoice.PaidAmount); err != nil {
				log.Printf("Không thể trừ doanh thu ngày cho hóa đơn %s: %v", booking.Invoice.InvoiceCode, err)
			}
		}
		if err := config.DB.Where("invoice_id = ?", booking.Invoice.ID).
			Delete(&models.PaymentRecord{}).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := config.DB.Delete(booking.Invoice).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	cmd := commands.NewDeleteBookingCommand(booking.ID, config.DB)
	if err := cmd.Execute(); err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCache()
	response.Success(c, gin.H{"bookingCode": booking.BookingCode})
}

// GetBookingHistory lấy lịch sử đặt phòng của user đang đăng nhập
func GetBookingHistory(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("User").Preload("Room").Preload("Invoice").
		Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0)
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, toBookingResponse(booking))
	}

	response.Success(c, bookingResponses)
}
