package services

import (
	"time"

	"hotel/config"
	"hotel/constants"
	"hotel/models"
)

// ExpirePromotions tắt các khuyến mãi đã qua ngày kết thúc.
// Trả về số khuyến mãi bị tắt.
func ExpirePromotions(now time.Time) (int, error) {
	var promotions []models.Promotion
	if err := config.DB.Where("status = ?", constants.PromotionStatusActive).Find(&promotions).Error; err != nil {
		return 0, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	expired := 0
	for _, promo := range promotions {
		toDate, err := ParseBookingDate(promo.ToDate)
		if err != nil {
			svcLogger.Warn("Khuyến mãi %d có ngày kết thúc không hợp lệ: %s", promo.ID, promo.ToDate)
			continue
		}
		if toDate.Before(today) {
			if err := config.DB.Model(&models.Promotion{}).Where("id = ?", promo.ID).
				Update("status", constants.PromotionStatusInactive).Error; err != nil {
				svcLogger.Error("Lỗi tắt khuyến mãi %d: %v", promo.ID, err)
				continue
			}
			expired++
		}
	}

	return expired, nil
}
