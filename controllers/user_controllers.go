package controllers

import (
	"log"
	"strconv"
	"strings"
	"time"

	"hotel/config"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// UserController xử lý API quản lý người dùng
type UserController struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewUserController(db *gorm.DB, redisCli *redis.Client) *UserController {
	return &UserController{db: db, redis: redisCli}
}

var userCacheKey = "users:all"

func (ctrl *UserController) GetUsers(c *gin.Context) {
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

	roleFilter := c.Query("role")
	statusFilter := c.Query("status")
	nameFilter := c.Query("name")

	var allUsers []models.User

	if ctrl.redis != nil {
		if err := services.GetFromRedis(config.Ctx, ctrl.redis, userCacheKey, &allUsers); err != nil || len(allUsers) == 0 {
			allUsers = nil
		}
	}

	if allUsers == nil {
		if err := ctrl.db.Order("created_at DESC").Find(&allUsers).Error; err != nil {
			response.ServerError(c)
			return
		}
		if ctrl.redis != nil {
			if err := services.SetToRedis(config.Ctx, ctrl.redis, userCacheKey, allUsers, 5*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách user vào Redis: %v", err)
			}
		}
	}

	filtered := make([]models.User, 0)
	for _, user := range allUsers {
		if roleFilter != "" {
			role, _ := strconv.Atoi(roleFilter)
			if user.Role != role {
				continue
			}
		}
		if statusFilter != "" {
			status, _ := strconv.Atoi(statusFilter)
			if user.Status != status {
				continue
			}
		}
		if nameFilter != "" {
			if !strings.Contains(strings.ToLower(user.Name), strings.ToLower(nameFilter)) &&
				!strings.Contains(strings.ToLower(user.Email), strings.ToLower(nameFilter)) {
				continue
			}
		}
		filtered = append(filtered, user)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.User{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	userResponses := make([]dto.ProfileResponse, 0)
	for _, user := range filtered {
		userResponses = append(userResponses, dto.ProfileResponse{
			ID:            user.ID,
			Name:          user.Name,
			Email:         user.Email,
			PhoneNumber:   user.PhoneNumber,
			Role:          user.Role,
			Status:        user.Status,
			LoyaltyPoints: user.LoyaltyPoints,
			FavoriteRooms: user.FavoriteRooms,
		})
	}

	response.SuccessWithPagination(c, userResponses, page, limit, total)
}

func (ctrl *UserController) ChangeUserStatus(c *gin.Context) {
	var request struct {
		ID     uint `json:"id" binding:"required"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := ctrl.db.First(&user, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := ctrl.db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("status", request.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	if ctrl.redis != nil {
		if err := services.DeleteFromRedis(config.Ctx, ctrl.redis, userCacheKey); err != nil {
			log.Printf("Lỗi khi xóa cache user: %v", err)
		}
	}

	response.Success(c, gin.H{"id": user.ID, "status": request.Status})
}

// GetLoyaltyHistory lấy lịch sử điểm tích lũy của user đang đăng nhập
func (ctrl *UserController) GetLoyaltyHistory(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var histories []models.LoyaltyHistory
	if err := ctrl.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&histories).Error; err != nil {
		response.ServerError(c)
		return
	}

	historyResponses := make([]dto.LoyaltyHistoryResponse, 0)
	for _, history := range histories {
		historyResponses = append(historyResponses, dto.LoyaltyHistoryResponse{
			ID:        history.ID,
			BookingID: history.BookingID,
			Points:    history.Points,
			Reason:    history.Reason,
			CreatedAt: history.CreatedAt.Format("02/01/2006 15:04"),
		})
	}

	response.Success(c, historyResponses)
}
