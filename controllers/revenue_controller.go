package controllers

import (
	"time"
	_ "time/tzdata"

	"hotel/config"
	"hotel/dto"
	"hotel/models"
	"hotel/response"

	"github.com/gin-gonic/gin"
)

// GetRevenue tổng hợp doanh thu theo khoảng ngày cho dashboard
func GetRevenue(c *gin.Context) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		response.ServerError(c)
		return
	}

	now := time.Now().In(loc)
	fromDate := now.AddDate(0, -11, 0)
	toDate := now

	layout := "02/01/2006"
	if fromStr := c.Query("fromDate"); fromStr != "" {
		parsed, err := time.ParseInLocation(layout, fromStr, loc)
		if err != nil {
			response.BadRequest(c, "Dữ liệu fromDate không hợp lệ")
			return
		}
		fromDate = parsed
	}
	if toStr := c.Query("toDate"); toStr != "" {
		parsed, err := time.ParseInLocation(layout, toStr, loc)
		if err != nil {
			response.BadRequest(c, "Dữ liệu toDate không hợp lệ")
			return
		}
		toDate = parsed
	}

	var revenues []models.DailyRevenue
	if err := config.DB.
		Where("date::date >= ? AND date::date <= ?", fromDate.Format("2006-01-02"), toDate.Format("2006-01-02")).
		Order("date ASC").
		Find(&revenues).Error; err != nil {
		response.ServerError(c)
		return
	}

	currentMonth := now.Format("01/2006")
	lastMonth := now.AddDate(0, -1, 0).Format("01/2006")

	result := dto.RevenueResponse{
		DailyRevenue:   make([]dto.DayRevenue, 0, len(revenues)),
		MonthlyRevenue: make([]dto.MonthRevenue, 0),
	}

	monthlyIndex := make(map[string]int)
	for _, rev := range revenues {
		result.TotalRevenue += rev.Revenue
		result.TotalBookings += rev.BookingCount

		result.DailyRevenue = append(result.DailyRevenue, dto.DayRevenue{
			Date:         rev.Date.In(loc).Format(layout),
			Revenue:      rev.Revenue,
			BookingCount: rev.BookingCount,
		})

		month := rev.Date.In(loc).Format("01/2006")
		idx, ok := monthlyIndex[month]
		if !ok {
			monthlyIndex[month] = len(result.MonthlyRevenue)
			result.MonthlyRevenue = append(result.MonthlyRevenue, dto.MonthRevenue{Month: month})
			idx = monthlyIndex[month]
		}
		result.MonthlyRevenue[idx].Revenue += rev.Revenue
		result.MonthlyRevenue[idx].BookingCount += rev.BookingCount

		if month == currentMonth {
			result.CurrentMonthRevenue += rev.Revenue
		}
		if month == lastMonth {
			result.LastMonthRevenue += rev.Revenue
		}
	}

	response.Success(c, result)
}

// GetToday lấy doanh thu của ngày hôm nay
func GetToday(c *gin.Context) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		response.ServerError(c)
		return
	}

	today := time.Now().In(loc).Format("2006-01-02")

	var revenue models.DailyRevenue
	if err := config.DB.Where("date::date = ?", today).First(&revenue).Error; err != nil {
		// Chưa có hóa đơn thanh toán đủ nào trong hôm nay
		response.Success(c, dto.DayRevenue{
			Date:         time.Now().In(loc).Format("02/01/2006"),
			Revenue:      0,
			BookingCount: 0,
		})
		return
	}

	response.Success(c, dto.DayRevenue{
		Date:         revenue.Date.In(loc).Format("02/01/2006"),
		Revenue:      revenue.Revenue,
		BookingCount: revenue.BookingCount,
	})
}
