package controllers

import (
	"hotel/config"
	"hotel/constants"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/validator"

	"github.com/gin-gonic/gin"
)

func toServiceResponse(service models.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:          service.ID,
		ServiceCode: service.ServiceCode,
		Name:        service.Name,
		Price:       service.Price,
		Status:      service.Status,
	}
}

func GetAllServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("created_at DESC").Find(&services).Error; err != nil {
		response.ServerError(c)
		return
	}

	serviceResponses := make([]dto.ServiceResponse, 0)
	for _, service := range services {
		serviceResponses = append(serviceResponses, toServiceResponse(service))
	}

	response.Success(c, serviceResponses)
}

func CreateService(c *gin.Context) {
	var request dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	service := models.Service{
		ServiceCode: request.ServiceCode,
		Name:        request.Name,
		Price:       request.Price,
	}

	if err := validator.ValidateService(&service); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&service).Error; err != nil {
		response.BadRequest(c, "Không thể tạo dịch vụ, mã dịch vụ có thể đã tồn tại")
		return
	}

	response.Success(c, toServiceResponse(service))
}

func UpdateService(c *gin.Context) {
	serviceID := c.Param("id")

	var service models.Service
	if err := config.DB.First(&service, serviceID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var request dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if request.Name != "" {
		service.Name = request.Name
	}
	if request.Price != 0 {
		service.Price = request.Price
	}
	if request.Status != nil {
		service.Status = *request.Status
		if err := service.ValidateStatus(); err != nil {
			response.BadRequest(c, "Trạng thái dịch vụ không hợp lệ")
			return
		}
	}

	if err := validator.ValidateService(&service); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toServiceResponse(service))
}

// AddServiceUsage ghi một dòng dịch vụ khách dùng vào booking.
// Đơn giá chốt tại thời điểm ghi, đổi giá dịch vụ sau đó không ảnh hưởng.
func AddServiceUsage(c *gin.Context) {
	bookingCode := c.Param("code")

	var request dto.AddServiceUsageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if request.Quantity <= 0 {
		response.BadRequest(c, "Số lượng phải lớn hơn 0")
		return
	}

	var booking models.Booking
	if err := config.DB.Where("booking_code = ?", bookingCode).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Chỉ booking đang ở hoặc đã xác nhận mới ghi thêm dịch vụ được
	if booking.Status != constants.BookingStatusInUse && booking.Status != constants.BookingStatusConfirmed {
		response.BadRequest(c, "Booking không ở trạng thái có thể thêm dịch vụ")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, request.ServiceID).Error; err != nil {
		response.BadRequest(c, "Dịch vụ không tồn tại")
		return
	}

	if service.Status != 1 {
		response.BadRequest(c, "Dịch vụ đã ngừng cung cấp")
		return
	}

	usage := models.ServiceUsage{
		BookingID: booking.ID,
		ServiceID: service.ID,
		Quantity:  request.Quantity,
		LineTotal: float64(service.Price * request.Quantity),
	}

	if err := config.DB.Create(&usage).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCache()

	response.Success(c, dto.ServiceUsageResponse{
		ID:          usage.ID,
		ServiceID:   usage.ServiceID,
		ServiceName: service.Name,
		Quantity:    usage.Quantity,
		LineTotal:   usage.LineTotal,
	})
}
