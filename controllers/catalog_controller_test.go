package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dealshub/DealsHub/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogRouter() *gin.Engine {
	r := gin.New()
	r.GET("/coupons", GetCoupons)
	r.GET("/coupons/trending", GetTrendingCoupons)
	r.GET("/coupons/limited-stock", GetLimitedStockCoupons)
	r.GET("/coupons/:id", GetCoupon)
	r.POST("/coupons", CreateCoupon)
	r.POST("/coupons/batch", BatchCreateCoupons)
	r.PUT("/coupons/:id", UpdateCoupon)
	r.DELETE("/coupons/:id", DeleteCoupon)
	r.PATCH("/coupons/:id/use", UseCoupon)
	r.PATCH("/coupons/:id/rate", RateCoupon)
	r.POST("/coupons/:id/click", ClickCoupon)
	r.POST("/apps", CreateApp)
	r.PATCH("/apps/:id/use", UseApp)
	return r
}

func couponPayload(title, code string) gin.H {
	return gin.H{
		"title":       title,
		"code":        code,
		"merchant":    "ShopCo",
		"offer_text":  "10% off",
		"items_left":  5,
		"action_link": "https://example.com/deal",
	}
}

func TestCreateCoupon_DuplicateCodeConflict(t *testing.T) {
	setupTestDB(t)
	setupDeps("gh")
	r := catalogRouter()

	w := doJSON(r, http.MethodPost, "/coupons", couponPayload("10OFF", "SAVE10"))
	require.Equal(t, http.StatusCreated, w.Code)

	// Same code on a different title still conflicts
	w = doJSON(r, http.MethodPost, "/coupons", couponPayload("OTHER", "save10"))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Same title conflicts too
	w = doJSON(r, http.MethodPost, "/coupons", couponPayload("10OFF", "FRESH1"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateCoupon_CodeUppercasedAndRequired(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := catalogRouter()

	w := doJSON(r, http.MethodPost, "/coupons", couponPayload("Lower", "abc10"))
	require.Equal(t, http.StatusCreated, w.Code)

	var coupon models.Coupon
	require.NoError(t, db.First(&coupon, "title = ?", "Lower").Error)
	assert.Equal(t, "ABC10", coupon.Code)

	payload := couponPayload("NoCode", "")
	w = doJSON(r, http.MethodPost, "/coupons", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUseCatalogItem_NeverNegative(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := catalogRouter()

	app := models.App{Title: "Solitaire", CatalogBase: models.CatalogBase{ItemsLeft: 1, ActionLink: "x"}}
	require.NoError(t, db.Create(&app).Error)

	// First use drains the stock
	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/apps/%d/use", app.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var after models.App
	require.NoError(t, db.First(&after, app.ID).Error)
	assert.Equal(t, 0, after.ItemsLeft)
	assert.Equal(t, 1, after.UsedToday)

	// Second use is rejected and state stays put
	w = doJSON(r, http.MethodPatch, fmt.Sprintf("/apps/%d/use", app.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, db.First(&after, app.ID).Error)
	assert.Equal(t, 0, after.ItemsLeft)
	assert.Equal(t, 1, after.UsedToday)
}

func TestRateCatalogItem_OnlineMean(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := catalogRouter()

	coupon := models.Coupon{Title: "Rated", Code: "RATE1", CatalogBase: models.CatalogBase{ActionLink: "x"}}
	require.NoError(t, db.Create(&coupon).Error)

	for _, rating := range []float64{4, 5, 3} {
		w := doJSON(r, http.MethodPatch, fmt.Sprintf("/coupons/%d/rate", coupon.ID), gin.H{"rating": rating})
		require.Equal(t, http.StatusOK, w.Code)
	}

	var after models.Coupon
	require.NoError(t, db.First(&after, coupon.ID).Error)
	assert.Equal(t, 3, after.TotalRatings)
	assert.InDelta(t, 4.0, after.Rating, 0.001) // mean(4, 5, 3) = 4.0

	// Out-of-range ratings are rejected
	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/coupons/%d/rate", coupon.ID), gin.H{"rating": 5.5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func clickWithSession(r *gin.Engine, path, session string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.Header.Set("X-Session-ID", session)
	req.Header.Set("X-Forwarded-For", "41.66.1.2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClickCatalogItem_SlidingWindowUniqueness(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := catalogRouter()

	coupon := models.Coupon{Title: "Clicky", Code: "CLICK1", CatalogBase: models.CatalogBase{ActionLink: "x"}}
	require.NoError(t, db.Create(&coupon).Error)
	path := fmt.Sprintf("/coupons/%d/click", coupon.ID)

	// First click from the pair is unique
	w := clickWithSession(r, path, "sess-1")
	require.Equal(t, http.StatusOK, w.Code)

	// Second click inside the window counts but is not unique
	w = clickWithSession(r, path, "sess-1")
	require.Equal(t, http.StatusOK, w.Code)

	// A different session is unique again
	w = clickWithSession(r, path, "sess-2")
	require.Equal(t, http.StatusOK, w.Code)

	var after models.Coupon
	require.NoError(t, db.First(&after, coupon.ID).Error)
	assert.Equal(t, 3, after.TotalClicks)
	assert.Equal(t, 2, after.UniqueClicks)

	// Age the sess-1 clicks past the 24h window; the pair becomes unique again
	old := time.Now().Add(-25 * time.Hour)
	require.NoError(t, db.Model(&models.Click{}).
		Where("session_id = ?", "sess-1").
		Update("created_at", old).Error)

	w = clickWithSession(r, path, "sess-1")
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&after, coupon.ID).Error)
	assert.Equal(t, 4, after.TotalClicks)
	assert.Equal(t, 3, after.UniqueClicks)
}

func TestBatchCreateCoupons_PartialSuccess(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := catalogRouter()

	// Seed one coupon the batch collides with
	w := doJSON(r, http.MethodPost, "/coupons", couponPayload("Existing", "EXIST1"))
	require.Equal(t, http.StatusCreated, w.Code)

	batch := []gin.H{
		couponPayload("Fresh A", "NEWA1"),
		couponPayload("Existing", "NEWB1"), // title taken in DB
		couponPayload("Fresh B", "NEWA1"),  // code taken earlier in batch
		couponPayload("No Code", ""),
		couponPayload("Fresh C", "NEWC1"),
	}

	w = doJSON(r, http.MethodPost, "/coupons/batch", batch)
	require.Equal(t, http.StatusMultiStatus, w.Code)

	body := decodeBody(t, w)
	results := body["results"].([]interface{})
	require.Len(t, results, 5)

	expectOK := []bool{true, false, false, false, true}
	for i, raw := range results {
		result := raw.(map[string]interface{})
		assert.Equal(t, expectOK[i], result["success"], "element %d", i)
	}

	var count int64
	require.NoError(t, db.Model(&models.Coupon{}).Count(&count).Error)
	assert.Equal(t, int64(3), count) // Existing + Fresh A + Fresh C
}

func TestTrendingAndLimitedStockFilters(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := catalogRouter()

	seed := []models.Coupon{
		{Title: "Trender", Code: "T1", CatalogBase: models.CatalogBase{Verified: true, Rating: 4.5, UsedToday: 40, ItemsLeft: 100, ActionLink: "x"}},
		{Title: "Unverified", Code: "T2", CatalogBase: models.CatalogBase{Verified: false, Rating: 4.9, UsedToday: 90, ItemsLeft: 100, ActionLink: "x"}},
		{Title: "LowRated", Code: "T3", CatalogBase: models.CatalogBase{Verified: true, Rating: 3.0, UsedToday: 90, ItemsLeft: 100, ActionLink: "x"}},
		{Title: "Scarce", Code: "T4", CatalogBase: models.CatalogBase{Verified: true, Rating: 4.8, UsedToday: 80, ItemsLeft: 3, ActionLink: "x"}},
		{Title: "Empty", Code: "T5", CatalogBase: models.CatalogBase{Verified: true, Rating: 4.8, UsedToday: 70, ItemsLeft: 0, ActionLink: "x"}},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	w := doJSON(r, http.MethodGet, "/coupons/trending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	coupons := body["data"].(map[string]interface{})["coupons"].([]interface{})
	titles := make([]string, 0, len(coupons))
	for _, raw := range coupons {
		titles = append(titles, raw.(map[string]interface{})["title"].(string))
	}
	// Verified, rating and usage thresholds all apply; sorted rating desc
	assert.Equal(t, []string{"Scarce", "Empty", "Trender"}, titles)

	// Limited stock keeps both bounds: zero stock is out
	w = doJSON(r, http.MethodGet, "/coupons/limited-stock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	coupons = body["data"].(map[string]interface{})["coupons"].([]interface{})
	require.Len(t, coupons, 1)
	assert.Equal(t, "Scarce", coupons[0].(map[string]interface{})["title"].(string))
}

func TestListCoupons_PaginationEnvelope(t *testing.T) {
	db := setupTestDB(t)
	setupDeps("gh")
	r := catalogRouter()

	for i := 0; i < 12; i++ {
		coupon := models.Coupon{
			Title:       fmt.Sprintf("Deal %02d", i),
			Code:        fmt.Sprintf("CODE%02d", i),
			CatalogBase: models.CatalogBase{ActionLink: "x"},
		}
		require.NoError(t, db.Create(&coupon).Error)
	}

	w := doJSON(r, http.MethodGet, "/coupons?page=2&limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["currentPage"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Equal(t, float64(12), pagination["totalItems"])
	assert.Equal(t, float64(5), pagination["itemsPerPage"])

	coupons := body["coupons"].([]interface{})
	assert.Len(t, coupons, 5)
}

func TestUpdateCoupon_DuplicateTitleOnChange(t *testing.T) {
	setupTestDB(t)
	setupDeps("gh")
	r := catalogRouter()

	w := doJSON(r, http.MethodPost, "/coupons", couponPayload("First", "AAA11"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/coupons", couponPayload("Second", "BBB22"))
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	id := body["data"].(map[string]interface{})["id"].(float64)

	// Renaming Second to First collides
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/coupons/%d", int(id)), couponPayload("First", "BBB22"))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Keeping its own title is fine
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/coupons/%d", int(id)), couponPayload("Second", "BBB22"))
	assert.Equal(t, http.StatusOK, w.Code)
}
