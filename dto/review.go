package dto

// CreateReviewRequest là DTO cho request tạo đánh giá
type CreateReviewRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Star      int    `json:"star" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

// ReviewResponse là DTO cho response của đánh giá
type ReviewResponse struct {
	ID        uint   `json:"id"`
	BookingID uint   `json:"bookingId"`
	UserID    uint   `json:"userId"`
	RoomID    uint   `json:"roomId"`
	UserName  string `json:"userName"`
	Star      int    `json:"star"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}
