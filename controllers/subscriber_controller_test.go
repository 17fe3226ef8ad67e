package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscriberRouter() *gin.Engine {
	r := gin.New()
	r.POST("/subscribers", CreateSubscriber)
	r.GET("/subscribers", GetSubscribers)
	r.PUT("/subscribers/:id", UpdateSubscriber)
	r.DELETE("/subscribers/:id", DeleteSubscriber)
	r.PATCH("/subscribers/bulk", BulkUpdateSubscribers)
	return r
}

func TestCreateSubscriber_DuplicateEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := subscriberRouter()

	w := doJSON(r, http.MethodPost, "/subscribers", gin.H{"email": "Person@Example.com", "name": "Person"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Stored lowercased; re-subscribing with different casing still conflicts
	var sub models.Subscriber
	require.NoError(t, db.First(&sub).Error)
	assert.Equal(t, "person@example.com", sub.Email)
	assert.True(t, sub.IsActive)

	w = doJSON(r, http.MethodPost, "/subscribers", gin.H{"email": "person@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Subscriber{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Malformed email is rejected before any lookup
	w = doJSON(r, http.MethodPost, "/subscribers", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSubscriber_AuditDiff(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := subscriberRouter()

	sub := models.Subscriber{Email: "old@example.com", Name: "Old Name", Country: "Ghana", IsActive: true}
	require.NoError(t, db.Create(&sub).Error)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/subscribers/%d", sub.ID), gin.H{
		"email":   "new@example.com",
		"name":    "New Name",
		"country": "Ghana",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var entry models.ActivityLog
	require.NoError(t, db.First(&entry, "activity = ?", models.ActivitySubscriberUpdated).Error)
	assert.Equal(t, "subscriber", entry.Entity)
	assert.Equal(t, utils.EntityID(sub.ID), entry.EntityID)

	var changes map[string]utils.FieldChange
	require.NoError(t, json.Unmarshal([]byte(entry.Changes), &changes))
	assert.Contains(t, changes, "email")
	assert.Contains(t, changes, "name")
	assert.NotContains(t, changes, "country") // unchanged fields stay out of the diff
	assert.Equal(t, "old@example.com", changes["email"].From)
	assert.Equal(t, "new@example.com", changes["email"].To)
}

func TestUpdateSubscriber_EmailCollision(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := subscriberRouter()

	first := models.Subscriber{Email: "first@example.com"}
	second := models.Subscriber{Email: "second@example.com"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/subscribers/%d", second.ID), gin.H{"email": "first@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteSubscriber_WritesAudit(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := subscriberRouter()

	sub := models.Subscriber{Email: "gone@example.com"}
	require.NoError(t, db.Create(&sub).Error)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/subscribers/%d", sub.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Subscriber{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var entry models.ActivityLog
	require.NoError(t, db.First(&entry, "activity = ?", models.ActivitySubscriberDeleted).Error)
	assert.Equal(t, utils.EntityID(sub.ID), entry.EntityID)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/subscribers/%d", sub.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBulkUpdateSubscribers(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := subscriberRouter()

	subs := []models.Subscriber{
		{Email: "a@example.com", IsActive: true},
		{Email: "b@example.com", IsActive: true},
		{Email: "c@example.com", IsActive: true},
	}
	for i := range subs {
		require.NoError(t, db.Create(&subs[i]).Error)
	}

	w := doJSON(r, http.MethodPatch, "/subscribers/bulk", gin.H{
		"ids":       []uint{subs[0].ID, subs[2].ID, 9999},
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["data"].(map[string]interface{})["updated"])

	var active int64
	require.NoError(t, db.Model(&models.Subscriber{}).Where("is_active = ?", true).Count(&active).Error)
	assert.Equal(t, int64(1), active)
}

func TestGetSubscribers_Filters(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := subscriberRouter()

	subs := []models.Subscriber{
		{Email: "alpha@example.com", Name: "Alpha", Source: "landing", IsActive: true},
		{Email: "beta@example.com", Name: "Beta", Source: "popup", IsActive: false},
		{Email: "gamma@example.com", Name: "Gamma", Source: "landing", IsActive: true},
	}
	for i := range subs {
		require.NoError(t, db.Create(&subs[i]).Error)
	}

	w := doJSON(r, http.MethodGet, "/subscribers?source=landing&active=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	list := body["subscribers"].([]interface{})
	assert.Len(t, list, 2)

	w = doJSON(r, http.MethodGet, "/subscribers?search=BETA", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	list = body["subscribers"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "beta@example.com", list[0].(map[string]interface{})["email"])
}
