package controllers

import (
	"strings"

	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OfferRequest is the request body for creating or updating an offer
type OfferRequest struct {
	Title       string `json:"title" binding:"required"`
	Active      *bool  `json:"active"`
	LinkGhana   string `json:"link_ghana"`
	LinkKenya   string `json:"link_kenya"`
	LinkNigeria string `json:"link_nigeria"`
}

// CreateOffer handles admin offer creation
func CreateOffer(c *gin.Context) {
	utils.LogInfo("CreateOffer called")

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	offer := models.Offer{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(req.Title),
		Active:      true,
		LinkGhana:   req.LinkGhana,
		LinkKenya:   req.LinkKenya,
		LinkNigeria: req.LinkNigeria,
	}
	if req.Active != nil {
		offer.Active = *req.Active
	}

	if err := config.DB.Create(&offer).Error; err != nil {
		utils.LogError("Failed to create offer: %v", err)
		utils.InternalServerError(c, "Failed to create offer", err.Error())
		return
	}

	utils.LogInfo("Successfully created offer %s", offer.ID)
	utils.Created(c, "Offer created successfully", gin.H{"offer": offer})
}

// GetOffers handles admin offer listing
func GetOffers(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Offer{})
	if active := c.Query("active"); active != "" {
		query = query.Where("active = ?", active == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch offers", err.Error())
		return
	}
	pagination.SetTotal(total)

	var offers []models.Offer
	if err := query.Order("created_at desc").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&offers).Error; err != nil {
		utils.LogError("Failed to fetch offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch offers", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Offers retrieved successfully", "offers", offers, pagination)
}

// UpdateOffer handles admin offer updates
func UpdateOffer(c *gin.Context) {
	utils.LogInfo("UpdateOffer called")

	id := c.Param("id")
	var offer models.Offer
	if err := config.DB.First(&offer, "id = ?", id).Error; err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, "Offer not found")
		return
	}

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	offer.Title = strings.TrimSpace(req.Title)
	offer.LinkGhana = req.LinkGhana
	offer.LinkKenya = req.LinkKenya
	offer.LinkNigeria = req.LinkNigeria
	if req.Active != nil {
		offer.Active = *req.Active
	}

	if err := config.DB.Save(&offer).Error; err != nil {
		utils.LogError("Failed to update offer %s: %v", id, err)
		utils.InternalServerError(c, "Failed to update offer", err.Error())
		return
	}

	utils.LogInfo("Successfully updated offer %s", id)
	utils.Success(c, "Offer updated successfully", gin.H{"offer": offer})
}

// DeleteOffer handles admin offer deletion
func DeleteOffer(c *gin.Context) {
	id := c.Param("id")

	var offer models.Offer
	if err := config.DB.First(&offer, "id = ?", id).Error; err != nil {
		utils.NotFound(c, "Offer not found")
		return
	}

	if err := config.DB.Delete(&offer).Error; err != nil {
		utils.LogError("Failed to delete offer %s: %v", id, err)
		utils.InternalServerError(c, "Failed to delete offer", err.Error())
		return
	}

	utils.LogInfo("Successfully deleted offer %s", id)
	utils.Success(c, "Offer deleted successfully", nil)
}
