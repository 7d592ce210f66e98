package jobs

import (
	"log"
	"time"

	"hotel/services"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy job đêm lúc: %v", now)

		expired, err := services.ExpirePromotions(now)
		if err != nil {
			log.Printf("Lỗi khi tắt khuyến mãi hết hạn: %v", err)
		} else if expired > 0 {
			log.Printf("Đã tắt %d khuyến mãi hết hạn", expired)
		}

		if err := services.BroadcastYesterdayRevenue(m); err != nil {
			log.Printf("Lỗi khi thông báo doanh thu: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
