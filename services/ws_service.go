package services

import (
	"errors"
	"log"

	"hotel/config"
	"hotel/services/notification"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// BroadcastYesterdayRevenue gửi doanh thu hôm qua cho các dashboard đang kết nối
func BroadcastYesterdayRevenue(m *melody.Melody) error {
	revenue, err := GetYesterdayRevenue(config.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("ℹ️ Không có doanh thu nào để thông báo hôm nay.")
			return nil
		}
		log.Println("❌ Lỗi lấy doanh thu:", err)
		return err
	}

	builder := notification.NewRevenueMessageBuilder(
		revenue.Date.Format("02/01/2006"),
		revenue.Revenue,
		revenue.BookingCount,
	)

	svc := notification.NewMelodyService(m)
	return svc.SendMessage(builder.Build())
}
