package dto

// PromotionResponse là DTO cho response của khuyến mãi
type PromotionResponse struct {
	ID           uint    `json:"id"`
	RoomID       uint    `json:"roomId"`
	Name         string  `json:"name"`
	DiscountType string  `json:"discountType"`
	Value        float64 `json:"value"`
	FromDate     string  `json:"fromDate"`
	ToDate       string  `json:"toDate"`
	Status       int     `json:"status"`
}

// CreatePromotionRequest là DTO cho request tạo khuyến mãi
type CreatePromotionRequest struct {
	RoomID       uint    `json:"roomId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	DiscountType string  `json:"discountType" binding:"required"`
	Value        float64 `json:"value" binding:"required"`
	FromDate     string  `json:"fromDate" binding:"required"`
	ToDate       string  `json:"toDate" binding:"required"`
}

// UpdatePromotionRequest là DTO cho request cập nhật khuyến mãi
type UpdatePromotionRequest struct {
	Name         string  `json:"name"`
	DiscountType string  `json:"discountType"`
	Value        float64 `json:"value"`
	FromDate     string  `json:"fromDate"`
	ToDate       string  `json:"toDate"`
	Status       *int    `json:"status"`
}
