package controllers

import (
	"strings"

	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
)

// SubscriberRequest is the request body for subscriber capture and updates
type SubscriberRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	City     string `json:"city"`
	IsActive *bool  `json:"is_active"`
	Source   string `json:"source"`
}

func subscriberFields(s *models.Subscriber) map[string]interface{} {
	return map[string]interface{}{
		"email":     s.Email,
		"name":      s.Name,
		"phone":     s.Phone,
		"country":   s.Country,
		"city":      s.City,
		"is_active": s.IsActive,
		"source":    s.Source,
	}
}

// CreateSubscriber captures a new subscriber. Email is hard-unique: a
// duplicate is rejected with a conflict and no new document is created.
func CreateSubscriber(c *gin.Context) {
	utils.LogInfo("CreateSubscriber called")

	var req SubscriberRequest
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

	var count int64
	if err := config.DB.Model(&models.Subscriber{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		utils.InternalServerError(c, "Failed to create subscriber", err.Error())
		return
	}
	if count > 0 {
		utils.LogError("Duplicate subscriber email: %s", req.Email)
		utils.Conflict(c, "Subscriber with this email already exists", nil)
		return
	}

	subscriber := models.Subscriber{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Country:  req.Country,
		City:     req.City,
		IsActive: true,
		Source:   req.Source,
	}
	if req.IsActive != nil {
		subscriber.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&subscriber).Error; err != nil {
		utils.LogError("Failed to create subscriber: %v", err)
		utils.InternalServerError(c, "Failed to create subscriber", err.Error())
		return
	}

	utils.LogActivity(models.ActivitySubscriberCreated, "subscriber", utils.EntityID(subscriber.ID), req.Source,
		nil, subscriberFields(&subscriber))

	utils.LogInfo("Successfully created subscriber %d (%s)", subscriber.ID, subscriber.Email)
	utils.Created(c, "Subscribed successfully", gin.H{"subscriber": subscriber})
}

// GetSubscribers handles admin subscriber listing
func GetSubscribers(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Subscriber{})
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	if source := c.Query("source"); source != "" {
		query = query.Where("source = ?", source)
	}
	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count subscribers: %v", err)
		utils.InternalServerError(c, "Failed to fetch subscribers", err.Error())
		return
	}
	pagination.SetTotal(total)

	var subscribers []models.Subscriber
	if err := query.Order("created_at desc").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&subscribers).Error; err != nil {
		utils.LogError("Failed to fetch subscribers: %v", err)
		utils.InternalServerError(c, "Failed to fetch subscribers", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Subscribers retrieved successfully", "subscribers", subscribers, pagination)
}

// UpdateSubscriber handles admin subscriber updates with audit logging
func UpdateSubscriber(c *gin.Context) {
	utils.LogInfo("UpdateSubscriber called")

	id := c.Param("id")
	var subscriber models.Subscriber
	if err := config.DB.First(&subscriber, id).Error; err != nil {
		utils.LogError("Subscriber not found: %v", err)
		utils.NotFound(c, "Subscriber not found")
		return
	}

	var req SubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if ok, msg := utils.ValidateEmail(req.Email); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	if req.Email != subscriber.Email {
		var count int64
		if err := config.DB.Model(&models.Subscriber{}).
			Where("email = ? AND id <> ?", req.Email, subscriber.ID).
			Count(&count).Error; err != nil {
			utils.InternalServerError(c, "Failed to update subscriber", err.Error())
			return
		}
		if count > 0 {
			utils.Conflict(c, "Subscriber with this email already exists", nil)
			return
		}
	}

	before := subscriberFields(&subscriber)

	subscriber.Email = req.Email
	subscriber.Name = req.Name
	subscriber.Phone = req.Phone
	subscriber.Country = req.Country
	subscriber.City = req.City
	subscriber.Source = req.Source
	if req.IsActive != nil {
		subscriber.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&subscriber).Error; err != nil {
		utils.LogError("Failed to update subscriber %s: %v", id, err)
		utils.InternalServerError(c, "Failed to update subscriber", err.Error())
		return
	}

	utils.LogActivity(models.ActivitySubscriberUpdated, "subscriber", utils.EntityID(subscriber.ID), actorEmail(c),
		before, subscriberFields(&subscriber))

	utils.LogInfo("Successfully updated subscriber %d", subscriber.ID)
	utils.Success(c, "Subscriber updated successfully", gin.H{"subscriber": subscriber})
}

// DeleteSubscriber handles admin subscriber deletion with audit logging
func DeleteSubscriber(c *gin.Context) {
	id := c.Param("id")

	var subscriber models.Subscriber
	if err := config.DB.First(&subscriber, id).Error; err != nil {
		utils.NotFound(c, "Subscriber not found")
		return
	}

	if err := config.DB.Delete(&subscriber).Error; err != nil {
		utils.LogError("Failed to delete subscriber %s: %v", id, err)
		utils.InternalServerError(c, "Failed to delete subscriber", err.Error())
		return
	}

	utils.LogActivity(models.ActivitySubscriberDeleted, "subscriber", utils.EntityID(subscriber.ID), actorEmail(c),
		subscriberFields(&subscriber), nil)

	utils.LogInfo("Successfully deleted subscriber %d", subscriber.ID)
	utils.Success(c, "Subscriber deleted successfully", nil)
}

// BulkSubscriberRequest is the body for the bulk deactivate/reactivate op
type BulkSubscriberRequest struct {
	IDs      []uint `json:"ids" binding:"required"`
	IsActive bool   `json:"is_active"`
}

// BulkUpdateSubscribers flips the active flag on many subscribers at once
func BulkUpdateSubscribers(c *gin.Context) {
	utils.LogInfo("BulkUpdateSubscribers called")

	var req BulkSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if len(req.IDs) == 0 {
		utils.BadRequest(c, "No subscriber ids provided", nil)
		return
	}

	result := config.DB.Model(&models.Subscriber{}).
		Where("id IN ?", req.IDs).
		Update("is_active", req.IsActive)
	if result.Error != nil {
		utils.LogError("Failed bulk subscriber update: %v", result.Error)
		utils.InternalServerError(c, "Failed to update subscribers", result.Error.Error())
		return
	}

	utils.LogActivity(models.ActivitySubscriberBulkOp, "subscriber", "", actorEmail(c),
		map[string]interface{}{"is_active": !req.IsActive},
		map[string]interface{}{"is_active": req.IsActive, "count": result.RowsAffected})

	utils.LogInfo("Bulk updated %d subscribers", result.RowsAffected)
	utils.Success(c, "Subscribers updated successfully", gin.H{"updated": result.RowsAffected})
}
