package controllers

import (
	"log"
	"strconv"
	"time"

	"hotel/config"
	"hotel/constants"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/services"
	"hotel/validator"

	"github.com/gin-gonic/gin"
)

var promotionCacheKey = "promotions:all"

func toPromotionResponse(p models.Promotion) dto.PromotionResponse {
	return dto.PromotionResponse{
		ID:           p.ID,
		RoomID:       p.RoomID,
		Name:         p.Name,
		DiscountType: p.DiscountType,
		Value:        p.Value,
		FromDate:     p.FromDate,
		ToDate:       p.ToDate,
		Status:       p.Status,
	}
}

func invalidatePromotionCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, promotionCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache khuyến mãi: %v", err)
	}
}

func GetAllPromotions(c *gin.Context) {
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

	roomFilter := c.Query("roomId")
	statusFilter := c.Query("status")

	var allPromotions []models.Promotion

	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, promotionCacheKey, &allPromotions); err != nil || len(allPromotions) == 0 {
			allPromotions = nil
		}
	}

	if allPromotions == nil {
		if err := config.DB.Order("created_at DESC").Find(&allPromotions).Error; err != nil {
			response.ServerError(c)
			return
		}
		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, promotionCacheKey, allPromotions, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách khuyến mãi vào Redis: %v", err)
			}
		}
	}

	filtered := make([]models.Promotion, 0)
	for _, p := range allPromotions {
		if roomFilter != "" {
			roomID, err := strconv.Atoi(roomFilter)
			if err == nil && p.RoomID != uint(roomID) {
				continue
			}
		}
		if statusFilter != "" {
			status, _ := strconv.Atoi(statusFilter)
			if p.Status != status {
				continue
			}
		}
		filtered = append(filtered, p)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Promotion{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	promotionResponses := make([]dto.PromotionResponse, 0)
	for _, p := range filtered {
		promotionResponses = append(promotionResponses, toPromotionResponse(p))
	}

	response.SuccessWithPagination(c, promotionResponses, page, limit, total)
}

func GetPromotionDetail(c *gin.Context) {
	promotionID := c.Param("id")

	var promotion models.Promotion
	if err := config.DB.First(&promotion, promotionID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toPromotionResponse(promotion))
}

func CreatePromotion(c *gin.Context) {
	var request dto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	promotion := models.Promotion{
		RoomID:       request.RoomID,
		Name:         request.Name,
		DiscountType: request.DiscountType,
		Value:        request.Value,
		FromDate:     request.FromDate,
		ToDate:       request.ToDate,
		Status:       constants.PromotionStatusActive,
	}

	if err := validator.ValidatePromotion(&promotion); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, "room_id = ?", promotion.RoomID).Error; err != nil {
		response.BadRequest(c, "Phòng không tồn tại")
		return
	}

	// Mỗi phòng chỉ có một khuyến mãi đang hoạt động
	var activeCount int64
	if err := config.DB.Model(&models.Promotion{}).
		Where("room_id = ? AND status = ?", promotion.RoomID, constants.PromotionStatusActive).
		Count(&activeCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if activeCount > 0 {
		response.Conflict(c)
		return
	}

	if err := config.DB.Create(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePromotionCache()
	invalidateRoomCache()
	response.Success(c, toPromotionResponse(promotion))
}

func UpdatePromotion(c *gin.Context) {
	promotionID := c.Param("id")

	var promotion models.Promotion
	if err := config.DB.First(&promotion, promotionID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var request dto.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if request.Name != "" {
		promotion.Name = request.Name
	}
	if request.DiscountType != "" {
		promotion.DiscountType = request.DiscountType
	}
	if request.Value != 0 {
		promotion.Value = request.Value
	}
	if request.FromDate != "" {
		promotion.FromDate = request.FromDate
	}
	if request.ToDate != "" {
		promotion.ToDate = request.ToDate
	}
	if request.Status != nil {
		promotion.Status = *request.Status
		if err := promotion.ValidateStatus(); err != nil {
			response.BadRequest(c, "Trạng thái khuyến mãi không hợp lệ")
			return
		}

		// Bật lại khuyến mãi cũng phải giữ quy tắc một khuyến mãi mỗi phòng
		if promotion.Status == constants.PromotionStatusActive {
			var activeCount int64
			if err := config.DB.Model(&models.Promotion{}).
				Where("room_id = ? AND status = ? AND id != ?", promotion.RoomID, constants.PromotionStatusActive, promotion.ID).
				Count(&activeCount).Error; err != nil {
				response.ServerError(c)
				return
			}
			if activeCount > 0 {
				response.Conflict(c)
				return
			}
		}
	}

	if err := validator.ValidatePromotion(&promotion); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePromotionCache()
	invalidateRoomCache()
	response.Success(c, toPromotionResponse(promotion))
}

func DeletePromotion(c *gin.Context) {
	promotionID := c.Param("id")

	var promotion models.Promotion
	if err := config.DB.First(&promotion, promotionID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&promotion).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidatePromotionCache()
	invalidateRoomCache()
	response.Success(c, nil)
}
