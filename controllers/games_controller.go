package controllers

import (
	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/gin-gonic/gin"
)

var gameType = &catalogType{
	name:   "game",
	key:    "games",
	badges: []string{"Hot", "New", "Popular", "Limited"},
	model:  func() interface{} { return &models.Game{} },
	insert: func(req *CatalogItemRequest) (uint, error) {
		item := models.Game{Title: req.Title, CatalogBase: buildBase(req)}
		if err := config.DB.Create(&item).Error; err != nil {
			return 0, err
		}
		return item.ID, nil
	},
}

// GetGames handles listing games with filter, sort and pagination
func GetGames(c *gin.Context) { listCatalog(c, gameType) }

// GetGame handles fetching a single game by id
func GetGame(c *gin.Context) { getCatalogItem(c, gameType) }

// CreateGame handles admin game creation
func CreateGame(c *gin.Context) { createCatalogItem(c, gameType) }

// BatchCreateGames creates many games at once with per-index results
func BatchCreateGames(c *gin.Context) { batchCreateCatalog(c, gameType) }

// UpdateGame handles admin game updates
func UpdateGame(c *gin.Context) { updateCatalogItem(c, gameType) }

// DeleteGame handles admin game deletion
func DeleteGame(c *gin.Context) { deleteCatalogItem(c, gameType) }

// GetTrendingGames returns verified, highly rated games
func GetTrendingGames(c *gin.Context) { trendingCatalog(c, gameType) }

// GetLimitedStockGames returns games running low on stock
func GetLimitedStockGames(c *gin.Context) { limitedStockCatalog(c, gameType) }

// UseGame records one usage of a game deal
func UseGame(c *gin.Context) { useCatalogItem(c, gameType) }

// RateGame folds a new rating into the game's running average
func RateGame(c *gin.Context) { rateCatalogItem(c, gameType) }

// ClickGame records a click on a game deal
func ClickGame(c *gin.Context) { clickCatalogItem(c, gameType) }
