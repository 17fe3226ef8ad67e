package routes

import (
	"github.com/dealshub/DealsHub/controllers"
	"github.com/dealshub/DealsHub/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-only routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/register", controllers.RegisterAdmin)

		// Catalog management
		admin.POST("/apps", controllers.CreateApp)
		admin.PUT("/apps/:id", controllers.UpdateApp)
		admin.DELETE("/apps/:id", controllers.DeleteApp)

		admin.POST("/games", controllers.CreateGame)
		admin.POST("/games/batch", controllers.BatchCreateGames)
		admin.PUT("/games/:id", controllers.UpdateGame)
		admin.DELETE("/games/:id", controllers.DeleteGame)

		admin.POST("/giftcards", controllers.CreateGiftCard)
		admin.PUT("/giftcards/:id", controllers.UpdateGiftCard)
		admin.DELETE("/giftcards/:id", controllers.DeleteGiftCard)

		admin.POST("/coupons", controllers.CreateCoupon)
		admin.POST("/coupons/batch", controllers.BatchCreateCoupons)
		admin.PUT("/coupons/:id", controllers.UpdateCoupon)
		admin.DELETE("/coupons/:id", controllers.DeleteCoupon)

		// Offer management
		admin.POST("/offers", controllers.CreateOffer)
		admin.GET("/offers", controllers.GetOffers)
		admin.PUT("/offers/:id", controllers.UpdateOffer)
		admin.DELETE("/offers/:id", controllers.DeleteOffer)
		admin.GET("/completions", controllers.GetOfferCompletions)

		// Subscriber management
		admin.GET("/subscribers", controllers.GetSubscribers)
		admin.GET("/subscribers/export", controllers.ExportSubscribers)
		admin.PATCH("/subscribers/bulk", controllers.BulkUpdateSubscribers)
		admin.PUT("/subscribers/:id", controllers.UpdateSubscriber)
		admin.DELETE("/subscribers/:id", controllers.DeleteSubscriber)

		// Events and analytics
		admin.GET("/events", controllers.GetEvents)
		admin.GET("/dashboard", controllers.GetDashboardOverview)
	}
}
