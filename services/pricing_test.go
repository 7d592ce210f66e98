package services

import (
	"testing"
	"time"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	d, err := ParseBookingDate(dateStr)
	require.NoError(t, err)
	return d
}

func TestNightsBetween(t *testing.T) {
	checkIn := mustParseDate(t, "10/03/2026")

	assert.Equal(t, 3, NightsBetween(checkIn, mustParseDate(t, "13/03/2026")))
	assert.Equal(t, 1, NightsBetween(checkIn, mustParseDate(t, "11/03/2026")))
	assert.Equal(t, 0, NightsBetween(checkIn, checkIn))
	assert.Equal(t, -1, NightsBetween(checkIn, mustParseDate(t, "09/03/2026")))
}

func TestCalculateRoomPriceNoPromotion(t *testing.T) {
	room := &models.Room{Price: 500000}

	quote, err := CalculateRoomPrice(room, mustParseDate(t, "10/03/2026"), mustParseDate(t, "13/03/2026"), 1)
	require.NoError(t, err)

	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 1500000.0, quote.OriginalTotal)
	assert.Equal(t, 0.0, quote.DiscountApplied)
	assert.Equal(t, 1500000.0, quote.DiscountedTotal)
}

func TestCalculateRoomPriceInvalidRange(t *testing.T) {
	room := &models.Room{Price: 500000}
	checkIn := mustParseDate(t, "10/03/2026")

	_, err := CalculateRoomPrice(room, checkIn, checkIn, 1)
	assert.ErrorIs(t, err, errors.ErrInvalidDateRange)

	_, err = CalculateRoomPrice(room, checkIn, mustParseDate(t, "09/03/2026"), 1)
	assert.ErrorIs(t, err, errors.ErrInvalidDateRange)
}

func TestCalculateRoomPricePercentPromotion(t *testing.T) {
	room := &models.Room{
		Price: 500000,
		Promotions: []models.Promotion{{
			DiscountType: constants.PromotionTypePercent,
			Value:        20,
			FromDate:     "01/03/2026",
			ToDate:       "31/03/2026",
			Status:       constants.PromotionStatusActive,
		}},
	}

	quote, err := CalculateRoomPrice(room, mustParseDate(t, "10/03/2026"), mustParseDate(t, "12/03/2026"), 1)
	require.NoError(t, err)

	assert.Equal(t, 1000000.0, quote.OriginalTotal)
	assert.Equal(t, 200000.0, quote.DiscountApplied)
	assert.Equal(t, 800000.0, quote.DiscountedTotal)
}

func TestCalculateRoomPricePromotionWindow(t *testing.T) {
	room := &models.Room{
		Price: 1150000,
		Promotions: []models.Promotion{{
			DiscountType: constants.PromotionTypePercent,
			Value:        25,
			FromDate:     "04/11/2025",
			ToDate:       "07/11/2025",
			Status:       constants.PromotionStatusActive,
		}},
	}

	// Đêm nằm trong cửa sổ khuyến mãi
	quote, err := CalculateRoomPrice(room, mustParseDate(t, "05/11/2025"), mustParseDate(t, "06/11/2025"), 1)
	require.NoError(t, err)
	assert.Equal(t, 1150000.0, quote.OriginalTotal)
	assert.Equal(t, 862500.0, quote.DiscountedTotal)

	// Đêm nằm ngoài cửa sổ khuyến mãi
	quote, err = CalculateRoomPrice(room, mustParseDate(t, "16/11/2025"), mustParseDate(t, "17/11/2025"), 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, quote.DiscountApplied)
	assert.Equal(t, 1150000.0, quote.DiscountedTotal)
}

func TestCalculateRoomPriceAmountPromotionCapped(t *testing.T) {
	room := &models.Room{
		Price: 100000,
		Promotions: []models.Promotion{{
			DiscountType: constants.PromotionTypeAmount,
			Value:        250000,
			FromDate:     "01/03/2026",
			ToDate:       "31/03/2026",
			Status:       constants.PromotionStatusActive,
		}},
	}

	// Giảm giá lớn hơn tổng tiền thì chỉ giảm về 0
	quote, err := CalculateRoomPrice(room, mustParseDate(t, "10/03/2026"), mustParseDate(t, "12/03/2026"), 1)
	require.NoError(t, err)

	assert.Equal(t, 200000.0, quote.OriginalTotal)
	assert.Equal(t, 200000.0, quote.DiscountApplied)
	assert.Equal(t, 0.0, quote.DiscountedTotal)
}

func TestCalculateRoomPriceMultipleRooms(t *testing.T) {
	room := &models.Room{Price: 300000}

	quote, err := CalculateRoomPrice(room, mustParseDate(t, "10/03/2026"), mustParseDate(t, "12/03/2026"), 2)
	require.NoError(t, err)

	assert.Equal(t, 1200000.0, quote.OriginalTotal)
}

func TestActivePromotionForInclusiveBounds(t *testing.T) {
	promo := models.Promotion{
		DiscountType: constants.PromotionTypePercent,
		Value:        10,
		FromDate:     "10/03/2026",
		ToDate:       "20/03/2026",
		Status:       constants.PromotionStatusActive,
	}
	room := &models.Room{Price: 100000, Promotions: []models.Promotion{promo}}

	// Kỳ lưu trú kết thúc đúng ngày bắt đầu khuyến mãi vẫn được áp
	assert.NotNil(t, ActivePromotionFor(room, mustParseDate(t, "05/03/2026"), mustParseDate(t, "10/03/2026")))
	// Kỳ lưu trú bắt đầu đúng ngày kết thúc khuyến mãi vẫn được áp
	assert.NotNil(t, ActivePromotionFor(room, mustParseDate(t, "20/03/2026"), mustParseDate(t, "25/03/2026")))
	// Ngoài khoảng thì không áp
	assert.Nil(t, ActivePromotionFor(room, mustParseDate(t, "21/03/2026"), mustParseDate(t, "25/03/2026")))
	assert.Nil(t, ActivePromotionFor(room, mustParseDate(t, "01/03/2026"), mustParseDate(t, "09/03/2026")))
}

func TestActivePromotionForIgnoresInactive(t *testing.T) {
	room := &models.Room{
		Price: 100000,
		Promotions: []models.Promotion{{
			DiscountType: constants.PromotionTypePercent,
			Value:        10,
			FromDate:     "01/03/2026",
			ToDate:       "31/03/2026",
			Status:       constants.PromotionStatusInactive,
		}},
	}

	assert.Nil(t, ActivePromotionFor(room, mustParseDate(t, "10/03/2026"), mustParseDate(t, "12/03/2026")))
}

func TestCalculateLateFee(t *testing.T) {
	expected := time.Date(2026, 3, 13, constants.CheckOutHour, 0, 0, 0, time.UTC)

	// Trả đúng giờ hoặc sớm hơn thì không có phí
	fee, hours := CalculateLateFee(expected, expected, 480000)
	assert.Equal(t, 0.0, fee)
	assert.Equal(t, 0, hours)

	fee, hours = CalculateLateFee(expected, expected.Add(-time.Hour), 480000)
	assert.Equal(t, 0.0, fee)
	assert.Equal(t, 0, hours)

	// Trễ 1 phút vẫn tính 1 giờ
	fee, hours = CalculateLateFee(expected, expected.Add(time.Minute), 480000)
	assert.Equal(t, 1, hours)
	assert.Equal(t, 10000.0, fee)

	// Trễ 3 giờ: 3 x (480000/24) x 0.5 = 30000
	fee, hours = CalculateLateFee(expected, expected.Add(3*time.Hour), 480000)
	assert.Equal(t, 3, hours)
	assert.Equal(t, 30000.0, fee)

	// Trễ 2 giờ 15 phút làm tròn lên 3 giờ
	fee, hours = CalculateLateFee(expected, expected.Add(2*time.Hour+15*time.Minute), 480000)
	assert.Equal(t, 3, hours)
	assert.Equal(t, 30000.0, fee)

	// Trễ qua ngày hôm sau: 27 x (1200000/24) x 0.5 = 675000
	fee, hours = CalculateLateFee(expected, expected.Add(27*time.Hour), 1200000)
	assert.Equal(t, 27, hours)
	assert.Equal(t, 675000.0, fee)
}

func TestCalculateLateFeeMonotonic(t *testing.T) {
	expected := time.Date(2026, 3, 13, constants.CheckOutHour, 0, 0, 0, time.UTC)

	prev := 0.0
	for h := 1; h <= 12; h++ {
		fee, _ := CalculateLateFee(expected, expected.Add(time.Duration(h)*time.Hour), 500000)
		assert.GreaterOrEqual(t, fee, prev)
		prev = fee
	}
}

func TestExpectedCheckoutTime(t *testing.T) {
	expected, err := ExpectedCheckoutTime("13/03/2026")
	require.NoError(t, err)

	assert.Equal(t, 2026, expected.Year())
	assert.Equal(t, time.March, expected.Month())
	assert.Equal(t, 13, expected.Day())
	assert.Equal(t, constants.CheckOutHour, expected.Hour())

	_, err = ExpectedCheckoutTime("13-03-2026")
	assert.Error(t, err)
}
