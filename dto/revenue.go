package dto

// RevenueResponse là DTO tổng hợp doanh thu cho dashboard
type RevenueResponse struct {
	TotalRevenue        float64        `json:"totalRevenue"`
	TotalBookings       int            `json:"totalBookings"`
	CurrentMonthRevenue float64        `json:"currentMonthRevenue"`
	LastMonthRevenue    float64        `json:"lastMonthRevenue"`
	DailyRevenue        []DayRevenue   `json:"dailyRevenue"`
	MonthlyRevenue      []MonthRevenue `json:"monthlyRevenue"`
}

type DayRevenue struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}

type MonthRevenue struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	BookingCount int     `json:"bookingCount"`
}

// LoyaltyHistoryResponse là DTO cho lịch sử điểm tích lũy
type LoyaltyHistoryResponse struct {
	ID        uint   `json:"id"`
	BookingID uint   `json:"bookingId"`
	Points    int    `json:"points"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}
