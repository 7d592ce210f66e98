package routes

import (
	"hotel/controllers"
	middlewares "hotel/middleware"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	userController := controllers.NewUserController(db, redisCli)
	invoiceController := controllers.NewInvoiceController(db, m)
	checkoutController := controllers.NewCheckoutController(db, m)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/users", middlewares.AuthMiddleware(1, 2), userController.GetUsers)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(1, 2), userController.ChangeUserStatus)
	v1.GET("/loyaltyHistory", middlewares.AuthMiddleware(), userController.GetLoyaltyHistory)

	v1.GET("/room", controllers.GetAllRooms)
	v1.GET("/room/:id", controllers.GetRoomDetail)
	v1.POST("/room", middlewares.AuthMiddleware(1, 2), controllers.CreateRoom)
	v1.PUT("/room/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateRoom)
	v1.PUT("/room/:id/status", middlewares.AuthMiddleware(1, 2, 3), controllers.ChangeRoomStatus)
	v1.GET("/searchRoom", controllers.SearchRooms)
	v1.PUT("/room/:id/favorite", middlewares.AuthMiddleware(), controllers.ToggleFavoriteRoom)
	v1.GET("/room/:id/reviews", controllers.GetRoomReviews)

	v1.GET("/promotion", controllers.GetAllPromotions)
	v1.GET("/promotion/:id", controllers.GetPromotionDetail)
	v1.POST("/promotion", middlewares.AuthMiddleware(1, 2), controllers.CreatePromotion)
	v1.PUT("/promotion/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdatePromotion)
	v1.DELETE("/promotion/:id", middlewares.AuthMiddleware(1, 2), controllers.DeletePromotion)

	v1.GET("/booking", middlewares.AuthMiddleware(1, 2, 3), controllers.GetAllBookings)
	v1.POST("/booking", controllers.CreateBooking)
	v1.GET("/booking/:code", controllers.GetBookingDetail)
	v1.PUT("/booking/:code/status", middlewares.AuthMiddleware(1, 2, 3), controllers.ChangeBookingStatus)
	v1.DELETE("/booking/:code", middlewares.AuthMiddleware(1, 2), controllers.DeleteBooking)
	v1.GET("/bookingHistory", middlewares.AuthMiddleware(), controllers.GetBookingHistory)
	v1.GET("/bookingPrice", controllers.GetBookingPrice)
	v1.POST("/booking/:code/services", middlewares.AuthMiddleware(1, 2, 3), controllers.AddServiceUsage)

	v1.POST("/checkout", middlewares.AuthMiddleware(1, 2, 3), checkoutController.Checkout)

	v1.GET("/invoices", middlewares.AuthMiddleware(1, 2, 3), invoiceController.GetInvoices)
	v1.GET("/invoices/:code", middlewares.AuthMiddleware(1, 2, 3), invoiceController.GetInvoiceDetail)
	v1.POST("/invoices/:code/payments", middlewares.AuthMiddleware(1, 2, 3), invoiceController.ApplyPayment)
	v1.GET("/invoices/:code/document", middlewares.AuthMiddleware(1, 2, 3), invoiceController.GetInvoiceDocument)

	v1.GET("/services", controllers.GetAllServices)
	v1.POST("/services", middlewares.AuthMiddleware(1, 2), controllers.CreateService)
	v1.PUT("/services/:id", middlewares.AuthMiddleware(1, 2), controllers.UpdateService)

	v1.POST("/reviews", middlewares.AuthMiddleware(), controllers.CreateReview)

	//doanh thu
	v1.GET("/revenue", middlewares.AuthMiddleware(1, 2), controllers.GetRevenue)
	v1.GET("/today", middlewares.AuthMiddleware(1, 2, 3), controllers.GetToday)

	//ws
	v1.GET("/test-broadcast", middlewares.AuthMiddleware(1), func(c *gin.Context) {
		m.Broadcast([]byte("Thông báo từ backend: Tin nhắn mới!"))
		c.String(200, "Broadcast message sent!")
	})
}
