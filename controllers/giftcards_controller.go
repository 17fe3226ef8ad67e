package controllers

import (
	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/gin-gonic/gin"
)

var giftCardType = &catalogType{
	name:   "giftcard",
	key:    "giftcards",
	badges: []string{"Hot", "New", "Best Value", "Limited"},
	model:  func() interface{} { return &models.GiftCard{} },
	insert: func(req *CatalogItemRequest) (uint, error) {
		item := models.GiftCard{Title: req.Title, CatalogBase: buildBase(req)}
		if err := config.DB.Create(&item).Error; err != nil {
			return 0, err
		}
		return item.ID, nil
	},
}

// GetGiftCards handles listing gift cards with filter, sort and pagination
func GetGiftCards(c *gin.Context) { listCatalog(c, giftCardType) }

// GetGiftCard handles fetching a single gift card by id
func GetGiftCard(c *gin.Context) { getCatalogItem(c, giftCardType) }

// CreateGiftCard handles admin gift card creation
func CreateGiftCard(c *gin.Context) { createCatalogItem(c, giftCardType) }

// UpdateGiftCard handles admin gift card updates
func UpdateGiftCard(c *gin.Context) { updateCatalogItem(c, giftCardType) }

// DeleteGiftCard handles admin gift card deletion
func DeleteGiftCard(c *gin.Context) { deleteCatalogItem(c, giftCardType) }

// GetTrendingGiftCards returns verified, highly rated gift cards
func GetTrendingGiftCards(c *gin.Context) { trendingCatalog(c, giftCardType) }

// GetLimitedStockGiftCards returns gift cards running low on stock
func GetLimitedStockGiftCards(c *gin.Context) { limitedStockCatalog(c, giftCardType) }

// UseGiftCard records one usage of a gift card deal
func UseGiftCard(c *gin.Context) { useCatalogItem(c, giftCardType) }

// RateGiftCard folds a new rating into the gift card's running average
func RateGiftCard(c *gin.Context) { rateCatalogItem(c, giftCardType) }

// ClickGiftCard records a click on a gift card deal
func ClickGiftCard(c *gin.Context) { clickCatalogItem(c, giftCardType) }
