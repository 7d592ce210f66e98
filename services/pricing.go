package services

import (
	"math"
	"time"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"
)

// PriceQuote là kết quả tính tiền phòng cho một kỳ lưu trú
type PriceQuote struct {
	OriginalTotal   float64 `json:"originalTotal"`
	DiscountedTotal float64 `json:"discountedTotal"`
	DiscountApplied float64 `json:"discountApplied"`
	Nights          int     `json:"nights"`
}

// ParseBookingDate chuyển chuỗi ngày dd/mm/yyyy thành time.Time
func ParseBookingDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateLayout, dateStr)
}

// NightsBetween tính số đêm, làm tròn lên theo ngày
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// CalculateRoomPrice tính tiền phòng cho kỳ lưu trú và áp khuyến mãi đang hiệu lực
func CalculateRoomPrice(room *models.Room, checkIn, checkOut time.Time, numRooms int) (*PriceQuote, error) {
	nights := NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil, errors.ErrInvalidDateRange
	}
	if numRooms <= 0 {
		numRooms = 1
	}

	originalTotal := float64(room.Price * nights * numRooms)

	discount := 0.0
	if promo := ActivePromotionFor(room, checkIn, checkOut); promo != nil {
		switch promo.DiscountType {
		case constants.PromotionTypePercent:
			discount = promo.Value / 100 * originalTotal
		case constants.PromotionTypeAmount:
			discount = promo.Value
			if discount > originalTotal {
				discount = originalTotal
			}
		}
	}

	discountedTotal := originalTotal - discount
	if discountedTotal < 0 {
		discountedTotal = 0
	}

	return &PriceQuote{
		OriginalTotal:   originalTotal,
		DiscountedTotal: discountedTotal,
		DiscountApplied: discount,
		Nights:          nights,
	}, nil
}

// ActivePromotionFor chọn khuyến mãi đang hoạt động có khoảng hiệu lực giao với kỳ lưu trú.
// So sánh lấy cả hai biên: kỳ lưu trú chạm đúng ngày kết thúc khuyến mãi vẫn được tính.
// Mỗi phòng chỉ có tối đa một khuyến mãi active nên kết quả là xác định.
func ActivePromotionFor(room *models.Room, checkIn, checkOut time.Time) *models.Promotion {
	for i := range room.Promotions {
		promo := &room.Promotions[i]
		if promo.Status != constants.PromotionStatusActive {
			continue
		}
		fromDate, err := ParseBookingDate(promo.FromDate)
		if err != nil {
			continue
		}
		toDate, err := ParseBookingDate(promo.ToDate)
		if err != nil {
			continue
		}
		if !fromDate.After(checkOut) && !toDate.Before(checkIn) {
			return promo
		}
	}
	return nil
}

// CalculateLateFee tính phí trả phòng trễ: 50% giá phòng theo giờ cho mỗi giờ trễ.
// Số giờ trễ làm tròn lên, trễ 1 phút vẫn tính 1 giờ.
func CalculateLateFee(expected, actual time.Time, nightlyPrice int) (float64, int) {
	if !actual.After(expected) {
		return 0, 0
	}
	lateHours := int(math.Ceil(actual.Sub(expected).Hours()))
	hourlyRate := float64(nightlyPrice) / 24
	lateFee := math.Round(float64(lateHours) * hourlyRate * 0.5)
	return lateFee, lateHours
}

// ExpectedCheckoutTime trả về mốc trả phòng chuẩn của một booking:
// CheckOutHour giờ của ngày trả phòng.
func ExpectedCheckoutTime(checkOutDate string) (time.Time, error) {
	d, err := ParseBookingDate(checkOutDate)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), constants.CheckOutHour, 0, 0, 0, d.Location()), nil
}
