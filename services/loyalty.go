package services

import (
	"hotel/constants"
	"hotel/models"

	"gorm.io/gorm"
)

// AccrueLoyaltyPoints cộng điểm tích lũy khi khách hoàn thành đơn:
// 1 điểm cho mỗi LoyaltyPointUnit VND của tổng hóa đơn.
func AccrueLoyaltyPoints(db *gorm.DB, userID, bookingID uint, totalAmount float64) (int, error) {
	points := int(totalAmount) / constants.LoyaltyPointUnit
	if points <= 0 {
		return 0, nil
	}

	history := models.LoyaltyHistory{
		UserID:    userID,
		BookingID: bookingID,
		Points:    points,
		Reason:    "Hoàn thành đơn đặt phòng",
	}
	if err := db.Create(&history).Error; err != nil {
		return 0, err
	}

	if err := db.Model(&models.User{}).Where("id = ?", userID).
		Update("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error; err != nil {
		return 0, err
	}

	return points, nil
}
