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

func toReviewResponse(review models.Review, userName string) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		BookingID: review.BookingID,
		UserID:    review.UserID,
		RoomID:    review.RoomID,
		UserName:  userName,
		Star:      review.Star,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt.Format("02/01/2006 15:04"),
	}
}

// CreateReview tạo đánh giá cho booking đã hoàn thành
func CreateReview(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var request dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, request.BookingID).Error; err != nil {
		response.BadRequest(c, "Đơn đặt phòng không tồn tại")
		return
	}

	if booking.UserID == nil || *booking.UserID != userID.(uint) {
		response.Forbidden(c)
		return
	}

	if booking.Status != constants.BookingStatusCompleted {
		response.BadRequest(c, "Chỉ đánh giá được booking đã hoàn thành")
		return
	}

	var existing models.Review
	if err := config.DB.Where("booking_id = ?", booking.ID).First(&existing).Error; err == nil {
		response.Conflict(c)
		return
	}

	review := models.Review{
		BookingID: booking.ID,
		UserID:    userID.(uint),
		RoomID:    booking.RoomID,
		Star:      request.Star,
		Comment:   request.Comment,
	}

	if err := validator.ValidateReview(&review); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toReviewResponse(review, ""))
}

// GetRoomReviews lấy danh sách đánh giá của một phòng
func GetRoomReviews(c *gin.Context) {
	roomID := c.Param("id")

	var reviews []models.Review
	if err := config.DB.Where("room_id = ?", roomID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	userIDs := make([]uint, 0, len(reviews))
	for _, review := range reviews {
		userIDs = append(userIDs, review.UserID)
	}

	userNames := make(map[uint]string)
	if len(userIDs) > 0 {
		var users []models.User
		if err := config.DB.Where("id IN ?", userIDs).Find(&users).Error; err == nil {
			for _, user := range users {
				userNames[user.ID] = user.Name
			}
		}
	}

	reviewResponses := make([]dto.ReviewResponse, 0)
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, toReviewResponse(review, userNames[review.UserID]))
	}

	response.Success(c, reviewResponses)
}
