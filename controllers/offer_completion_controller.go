package controllers

import (
	"strings"

	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompletionRequest is the request body for claiming a reward
type CompletionRequest struct {
	Offer string `json:"offer" binding:"required"`
	Title string `json:"title"`
	Code  string `json:"code"`
	Email string `json:"email" binding:"required"`
}

// CreateOfferCompletion registers a claimed reward. If an unsent completion
// with the same {offer, email} already exists it is returned instead of
// creating a duplicate.
func CreateOfferCompletion(c *gin.Context) {
	utils.LogInfo("CreateOfferCompletion called")

	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if ok, msg := utils.ValidateEmail(req.Email); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	var existing models.OfferCompletion
	err := config.DB.Where("offer_name = ? AND email = ? AND is_email_sent = ?", req.Offer, req.Email, false).
		First(&existing).Error
	if err == nil {
		utils.LogInfo("Returning existing unsent completion %s for %s", existing.ID, req.Email)
		utils.Success(c, "Completion already registered", gin.H{"completion": existing})
		return
	}

	completion := models.OfferCompletion{
		ID:        uuid.New().String(),
		OfferName: req.Offer,
		Title:     req.Title,
		Code:      req.Code,
		Email:     req.Email,
		Status:    models.CompletionPending,
	}

	if err := config.DB.Create(&completion).Error; err != nil {
		utils.LogError("Failed to create offer completion: %v", err)
		utils.InternalServerError(c, "Failed to register completion", err.Error())
		return
	}

	utils.LogInfo("Created offer completion %s for %s", completion.ID, completion.Email)
	utils.Created(c, "Completion registered successfully", gin.H{"completion": completion})
}

// GetOfferCompletions handles admin completion listing
func GetOfferCompletions(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.OfferCompletion{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if email := c.Query("email"); email != "" {
		query = query.Where("email = ?", strings.ToLower(email))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count completions: %v", err)
		utils.InternalServerError(c, "Failed to fetch completions", err.Error())
		return
	}
	pagination.SetTotal(total)

	var completions []models.OfferCompletion
	if err := query.Order("created_at desc").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&completions).Error; err != nil {
		utils.LogError("Failed to fetch completions: %v", err)
		utils.InternalServerError(c, "Failed to fetch completions", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Completions retrieved successfully", "completions", completions, pagination)
}
