package controllers

import (
	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
)

// EventRequest is the body for recording an interaction event
type EventRequest struct {
	Type         string `json:"type" binding:"required"`
	Device       string `json:"device"`
	Email        string `json:"email"`
	ErrorMessage string `json:"error_message"`
}

// CreateEvent appends an interaction event. Geo fields come from the caller
// IP; a failed lookup records Unknown rather than failing the request.
func CreateEvent(c *gin.Context) {
	utils.LogInfo("CreateEvent called")

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	ip := utils.ClientIP(c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr)
	loc := geoResolver.Resolve(ip)

	event := models.InteractionEvent{
		Type:         req.Type,
		Country:      loc.Country,
		City:         loc.City,
		Region:       loc.Region,
		Timezone:     loc.Timezone,
		Device:       req.Device,
		Email:        req.Email,
		Status:       "new",
		ErrorMessage: req.ErrorMessage,
	}

	if err := config.DB.Create(&event).Error; err != nil {
		utils.LogError("Failed to create event: %v", err)
		utils.InternalServerError(c, "Failed to record event", err.Error())
		return
	}

	utils.LogInfo("Recorded %s event %d from %s", event.Type, event.ID, loc.Country)
	utils.Created(c, "Event recorded successfully", gin.H{"event": event})
}

// EventStatusRequest is the body for the status patch
type EventStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateEventStatus patches the status field. Events are append-only
// otherwise; nothing else is ever updated.
func UpdateEventStatus(c *gin.Context) {
	id := c.Param("id")

	var req EventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	result := config.DB.Model(&models.InteractionEvent{}).
		Where("id = ?", id).
		Update("status", req.Status)
	if result.Error != nil {
		utils.LogError("Failed to update event %s status: %v", id, result.Error)
		utils.InternalServerError(c, "Failed to update event", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Event not found")
		return
	}

	utils.LogInfo("Updated event %s status to %s", id, req.Status)
	utils.Success(c, "Event updated successfully", nil)
}

// GetEvents handles admin event listing
func GetEvents(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.InteractionEvent{})
	if eventType := c.Query("type"); eventType != "" {
		query = query.Where("type = ?", eventType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count events: %v", err)
		utils.InternalServerError(c, "Failed to fetch events", err.Error())
		return
	}
	pagination.SetTotal(total)

	var events []models.InteractionEvent
	if err := query.Order("created_at desc").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&events).Error; err != nil {
		utils.LogError("Failed to fetch events: %v", err)
		utils.InternalServerError(c, "Failed to fetch events", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Events retrieved successfully", "events", events, pagination)
}
