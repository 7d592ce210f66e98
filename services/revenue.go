package services

import (
	stderrors "errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"hotel/models"

	"gorm.io/gorm"
)

// RecordDailyRevenue cộng dồn doanh thu ngày hôm nay khi một hóa đơn được thanh toán đủ
func RecordDailyRevenue(db *gorm.DB, amount float64) error {
	today := time.Date(time.Now().Year(), time.Now().Month(), time.Now().Day(), 0, 0, 0, 0, time.Local)

	var revenue models.DailyRevenue
	err := db.Where("date = ?", today).First(&revenue).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		newRevenue := models.DailyRevenue{
			Date:         today,
			Revenue:      amount,
			BookingCount: 1,
		}
		return db.Create(&newRevenue).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&revenue).Updates(map[string]interface{}{
		"revenue":       revenue.Revenue + amount,
		"booking_count": revenue.BookingCount + 1,
	}).Error
}

// SubtractDailyRevenue trừ doanh thu khi một hóa đơn đã thanh toán bị hủy
func SubtractDailyRevenue(db *gorm.DB, amount float64) error {
	today := time.Date(time.Now().Year(), time.Now().Month(), time.Now().Day(), 0, 0, 0, 0, time.Local)

	var revenue models.DailyRevenue
	if err := db.Where("date = ?", today).First(&revenue).Error; err != nil {
		return err
	}

	newCount := revenue.BookingCount - 1
	if newCount < 0 {
		newCount = 0
	}

	return db.Model(&revenue).Updates(map[string]interface{}{
		"revenue":       revenue.Revenue - amount,
		"booking_count": newCount,
	}).Error
}

// GetYesterdayRevenue lấy doanh thu của ngày hôm qua theo giờ Việt Nam
func GetYesterdayRevenue(db *gorm.DB) (*models.DailyRevenue, error) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		return nil, fmt.Errorf("lỗi khi tải múi giờ: %w", err)
	}

	yesterday := time.Now().In(loc).AddDate(0, 0, -1).Format("2006-01-02")

	var revenue models.DailyRevenue
	if err := db.Where(`date::date = ?`, yesterday).First(&revenue).Error; err != nil {
		return nil, err
	}
	return &revenue, nil
}
