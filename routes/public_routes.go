package routes

import (
	"github.com/dealshub/DealsHub/controllers"
	"github.com/gin-gonic/gin"
)

// initPublicRoutes initializes routes that need no authentication
func initPublicRoutes(router *gin.RouterGroup) {
	// Auth
	router.POST("/auth/login", controllers.Login)
	router.POST("/auth/refresh", controllers.Refresh)
	router.POST("/auth/logout", controllers.Logout)

	// Catalog reads and public usage endpoints
	apps := router.Group("/apps")
	{
		apps.GET("", controllers.GetApps)
		apps.GET("/trending", controllers.GetTrendingApps)
		apps.GET("/limited-stock", controllers.GetLimitedStockApps)
		apps.GET("/:id", controllers.GetApp)
		apps.PATCH("/:id/use", controllers.UseApp)
		apps.PATCH("/:id/rate", controllers.RateApp)
		apps.POST("/:id/click", controllers.ClickApp)
	}

	games := router.Group("/games")
	{
		games.GET("", controllers.GetGames)
		games.GET("/trending", controllers.GetTrendingGames)
		games.GET("/limited-stock", controllers.GetLimitedStockGames)
		games.GET("/:id", controllers.GetGame)
		games.PATCH("/:id/use", controllers.UseGame)
		games.PATCH("/:id/rate", controllers.RateGame)
		games.POST("/:id/click", controllers.ClickGame)
	}

	giftcards := router.Group("/giftcards")
	{
		giftcards.GET("", controllers.GetGiftCards)
		giftcards.GET("/trending", controllers.GetTrendingGiftCards)
		giftcards.GET("/limited-stock", controllers.GetLimitedStockGiftCards)
		giftcards.GET("/:id", controllers.GetGiftCard)
		giftcards.PATCH("/:id/use", controllers.UseGiftCard)
		giftcards.PATCH("/:id/rate", controllers.RateGiftCard)
		giftcards.POST("/:id/click", controllers.ClickGiftCard)
	}

	coupons := router.Group("/coupons")
	{
		coupons.GET("", controllers.GetCoupons)
		coupons.GET("/trending", controllers.GetTrendingCoupons)
		coupons.GET("/limited-stock", controllers.GetLimitedStockCoupons)
		coupons.GET("/:id", controllers.GetCoupon)
		coupons.PATCH("/:id/use", controllers.UseCoupon)
		coupons.PATCH("/:id/rate", controllers.RateCoupon)
		coupons.POST("/:id/click", controllers.ClickCoupon)
	}

	// Country-gated offer resolution and reward claims
	offers := router.Group("/offers")
	{
		offers.GET("/resolve", controllers.ResolveOffer)
		offers.GET("/resolve/:id", controllers.ResolveOffer)
		offers.POST("/complete", controllers.CreateOfferCompletion)
	}

	// CPA network callbacks
	router.GET("/postback/:network", controllers.HandlePostback)

	// Subscriber capture and interaction events
	router.POST("/subscribers", controllers.CreateSubscriber)
	router.POST("/events", controllers.CreateEvent)
	router.PATCH("/events/:id/status", controllers.UpdateEventStatus)
}
