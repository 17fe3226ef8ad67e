package controllers

import (
	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/gin-gonic/gin"
)

var couponType = &catalogType{
	name:      "coupon",
	key:       "coupons",
	badges:    []string{"Verified", "Hot", "New", "Exclusive"},
	needsCode: true,
	model:     func() interface{} { return &models.Coupon{} },
	insert: func(req *CatalogItemRequest) (uint, error) {
		item := models.Coupon{Title: req.Title, Code: req.Code, CatalogBase: buildBase(req)}
		if err := config.DB.Create(&item).Error; err != nil {
			return 0, err
		}
		return item.ID, nil
	},
}

// GetCoupons handles listing coupons with filter, sort and pagination
func GetCoupons(c *gin.Context) { listCatalog(c, couponType) }

// GetCoupon handles fetching a single coupon by id
func GetCoupon(c *gin.Context) { getCatalogItem(c, couponType) }

// CreateCoupon handles admin coupon creation; codes are stored uppercase
func CreateCoupon(c *gin.Context) { createCatalogItem(c, couponType) }

// BatchCreateCoupons creates many coupons at once with per-index results
func BatchCreateCoupons(c *gin.Context) { batchCreateCatalog(c, couponType) }

// UpdateCoupon handles admin coupon updates
func UpdateCoupon(c *gin.Context) { updateCatalogItem(c, couponType) }

// DeleteCoupon handles admin coupon deletion
func DeleteCoupon(c *gin.Context) { deleteCatalogItem(c, couponType) }

// GetTrendingCoupons returns verified, highly rated coupons
func GetTrendingCoupons(c *gin.Context) { trendingCatalog(c, couponType) }

// GetLimitedStockCoupons returns coupons running low on stock
func GetLimitedStockCoupons(c *gin.Context) { limitedStockCatalog(c, couponType) }

// UseCoupon records one usage of a coupon
func UseCoupon(c *gin.Context) { useCatalogItem(c, couponType) }

// RateCoupon folds a new rating into the coupon's running average
func RateCoupon(c *gin.Context) { rateCatalogItem(c, couponType) }

// ClickCoupon records a click on a coupon
func ClickCoupon(c *gin.Context) { clickCatalogItem(c, couponType) }
