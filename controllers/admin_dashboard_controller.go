package controllers

import (
	"context"

	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// growthPlaceholder stands in for period-over-period growth the dashboard
// design calls for but the system never computed. Kept as an obvious
// constant so nobody mistakes it for analytics.
const growthPlaceholder = 12.5

// DashboardOverview is the composed dashboard payload
type DashboardOverview struct {
	TotalApps           int64   `json:"total_apps"`
	TotalGames          int64   `json:"total_games"`
	TotalGiftCards      int64   `json:"total_giftcards"`
	TotalCoupons        int64   `json:"total_coupons"`
	TotalOffers         int64   `json:"total_offers"`
	TotalSubscribers    int64   `json:"total_subscribers"`
	ActiveSubscribers   int64   `json:"active_subscribers"`
	TotalCompletions    int64   `json:"total_completions"`
	PendingCompletions  int64   `json:"pending_completions"`
	TotalEvents         int64   `json:"total_events"`
	TotalClicks         int64   `json:"total_clicks"`
	SubscriberGrowthPct float64 `json:"subscriber_growth_pct"`
	CompletionGrowthPct float64 `json:"completion_growth_pct"`
}

// GetDashboardOverview returns cross-entity rollups for the admin dashboard.
// The counts fan out in parallel; growth percentages are placeholders.
func GetDashboardOverview(c *gin.Context) {
	utils.LogInfo("GetDashboardOverview called")

	var overview DashboardOverview

	count := func(dst *int64, model interface{}, conds ...interface{}) func() error {
		return func() error {
			query := config.DB.Model(model)
			if len(conds) > 0 {
				query = query.Where(conds[0], conds[1:]...)
			}
			return query.Count(dst).Error
		}
	}

	g, _ := errgroup.WithContext(context.Background())
	g.Go(count(&overview.TotalApps, &models.App{}))
	g.Go(count(&overview.TotalGames, &models.Game{}))
	g.Go(count(&overview.TotalGiftCards, &models.GiftCard{}))
	g.Go(count(&overview.TotalCoupons, &models.Coupon{}))
	g.Go(count(&overview.TotalOffers, &models.Offer{}))
	g.Go(count(&overview.TotalSubscribers, &models.Subscriber{}))
	g.Go(count(&overview.ActiveSubscribers, &models.Subscriber{}, "is_active = ?", true))
	g.Go(count(&overview.TotalCompletions, &models.OfferCompletion{}))
	g.Go(count(&overview.PendingCompletions, &models.OfferCompletion{}, "status = ?", models.CompletionPending))
	g.Go(count(&overview.TotalEvents, &models.InteractionEvent{}))
	g.Go(count(&overview.TotalClicks, &models.Click{}))

	if err := g.Wait(); err != nil {
		utils.LogError("Failed to build dashboard overview: %v", err)
		utils.InternalServerError(c, "Failed to get dashboard data", err.Error())
		return
	}

	overview.SubscriberGrowthPct = growthPlaceholder
	overview.CompletionGrowthPct = growthPlaceholder

	utils.LogInfo("Successfully built dashboard overview")
	utils.Success(c, "Dashboard data retrieved successfully", gin.H{"overview": overview})
}
