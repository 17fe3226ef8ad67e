package controllers

import (
	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/gin-gonic/gin"
)

var appType = &catalogType{
	name:   "app",
	key:    "apps",
	badges: []string{"Hot", "New", "Trending", "Editor's Choice"},
	model:  func() interface{} { return &models.App{} },
	insert: func(req *CatalogItemRequest) (uint, error) {
		item := models.App{Title: req.Title, CatalogBase: buildBase(req)}
		if err := config.DB.Create(&item).Error; err != nil {
			return 0, err
		}
		return item.ID, nil
	},
}

// GetApps handles listing apps with filter, sort and pagination
func GetApps(c *gin.Context) { listCatalog(c, appType) }

// GetApp handles fetching a single app by id
func GetApp(c *gin.Context) { getCatalogItem(c, appType) }

// CreateApp handles admin app creation
func CreateApp(c *gin.Context) { createCatalogItem(c, appType) }

// UpdateApp handles admin app updates
func UpdateApp(c *gin.Context) { updateCatalogItem(c, appType) }

// DeleteApp handles admin app deletion
func DeleteApp(c *gin.Context) { deleteCatalogItem(c, appType) }

// GetTrendingApps returns verified, highly rated apps
func GetTrendingApps(c *gin.Context) { trendingCatalog(c, appType) }

// GetLimitedStockApps returns apps running low on stock
func GetLimitedStockApps(c *gin.Context) { limitedStockCatalog(c, appType) }

// UseApp records one usage of an app deal
func UseApp(c *gin.Context) { useCatalogItem(c, appType) }

// RateApp folds a new rating into the app's running average
func RateApp(c *gin.Context) { rateCatalogItem(c, appType) }

// ClickApp records a click on an app deal
func ClickApp(c *gin.Context) { clickCatalogItem(c, appType) }
