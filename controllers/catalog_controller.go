package controllers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// catalogType describes one of the four catalog entities. The four types
// share one schema shape; the descriptor carries what differs between them.
type catalogType struct {
	name      string   // singular name used in click records and messages
	key       string   // plural key used in list responses
	badges    []string // closed badge set for this type
	needsCode bool     // coupons carry a mandatory uppercase code
	model     func() interface{}
	insert    func(req *CatalogItemRequest) (uint, error)
}

// CatalogItemRequest is the request body for creating or updating a catalog item
type CatalogItemRequest struct {
	Title          string  `json:"title" binding:"required"`
	Merchant       string  `json:"merchant"`
	ImageURL       string  `json:"image_url"`
	LogoURL        string  `json:"logo_url"`
	OfferText      string  `json:"offer_text"`
	Description    string  `json:"description"`
	Rating         float64 `json:"rating"`
	TotalRatings   int     `json:"total_ratings"`
	ItemsLeft      int     `json:"items_left"`
	Expiry         string  `json:"expiry"`
	UsedToday      int     `json:"used_today"`
	Verified       bool    `json:"verified"`
	Badge          string  `json:"badge"`
	ActionLink     string  `json:"action_link" binding:"required"`
	ActionProvider string  `json:"action_provider"`
	Code           string  `json:"code"`
}

// CatalogItemView is the read shape shared by all four catalog types
type CatalogItemView struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Merchant       string    `json:"merchant"`
	ImageURL       string    `json:"image_url"`
	LogoURL        string    `json:"logo_url"`
	OfferText      string    `json:"offer_text"`
	Description    string    `json:"description"`
	Rating         float64   `json:"rating"`
	TotalRatings   int       `json:"total_ratings"`
	ItemsLeft      int       `json:"items_left"`
	Expiry         string    `json:"expiry"`
	UsedToday      int       `json:"used_today"`
	Verified       bool      `json:"verified"`
	Badge          string    `json:"badge"`
	ActionLink     string    `json:"action_link"`
	ActionProvider string    `json:"action_provider"`
	TotalClicks    int       `json:"total_clicks"`
	UniqueClicks   int       `json:"unique_clicks"`
	Code           string    `json:"code,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Columns backing CatalogItemView. Only coupons carry a code column, so the
// select list is built per type instead of letting gorm derive it from the
// view struct.
var catalogViewColumns = []string{
	"id", "title", "merchant", "image_url", "logo_url", "offer_text",
	"description", "rating", "total_ratings", "items_left", "expiry",
	"used_today", "verified", "badge", "action_link", "action_provider",
	"total_clicks", "unique_clicks", "created_at",
}

func (ct *catalogType) viewColumns() []string {
	if !ct.needsCode {
		return catalogViewColumns
	}
	cols := make([]string, 0, len(catalogViewColumns)+1)
	cols = append(cols, catalogViewColumns...)
	return append(cols, "code")
}

// validateCatalogRequest runs the shared field checks and normalizes the
// request in place. Returns a message on failure.
func validateCatalogRequest(ct *catalogType, req *CatalogItemRequest) (bool, string) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return false, "Title is required"
	}
	if ok, msg := utils.ValidateRating(req.Rating); !ok {
		return false, msg
	}
	if req.TotalRatings < 0 {
		return false, "Total ratings cannot be negative"
	}
	if req.ItemsLeft < 0 {
		return false, "Items left cannot be negative"
	}
	if req.UsedToday < 0 {
		return false, "Used today cannot be negative"
	}
	if req.Expiry == "" {
		req.Expiry = utils.ExpiryNone
	}
	if ok, msg := utils.ValidateExpiry(req.Expiry); !ok {
		return false, msg
	}
	if req.ActionProvider == "" {
		req.ActionProvider = models.ProviderOther
	}
	if !utils.ValidProvider(req.ActionProvider, models.ValidProviders) {
		return false, fmt.Sprintf("Unknown action provider %q", req.ActionProvider)
	}
	if req.Badge != "" && !utils.ValidProvider(req.Badge, ct.badges) {
		return false, fmt.Sprintf("Unknown badge %q for %s", req.Badge, ct.name)
	}
	if ct.needsCode {
		req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
		if req.Code == "" {
			return false, "Code is required"
		}
	}
	return true, ""
}

// buildBase maps a validated request onto the shared column set
func buildBase(req *CatalogItemRequest) models.CatalogBase {
	return models.CatalogBase{
		Merchant:       req.Merchant,
		ImageURL:       req.ImageURL,
		LogoURL:        req.LogoURL,
		OfferText:      req.OfferText,
		Description:    req.Description,
		Rating:         req.Rating,
		TotalRatings:   req.TotalRatings,
		ItemsLeft:      req.ItemsLeft,
		Expiry:         req.Expiry,
		UsedToday:      req.UsedToday,
		Verified:       req.Verified,
		Badge:          req.Badge,
		ActionLink:     req.ActionLink,
		ActionProvider: req.ActionProvider,
	}
}

// titleExists checks for another live row with the same title
func titleExists(ct *catalogType, title string, excludeID uint) (bool, error) {
	var count int64
	query := config.DB.Model(ct.model()).Where("LOWER(title) = LOWER(?)", title)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// codeExists checks for another live coupon with the same code
func codeExists(ct *catalogType, code string, excludeID uint) (bool, error) {
	var count int64
	query := config.DB.Model(ct.model()).Where("code = ?", code)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// listCatalog handles list-with-filter/sort/paginate for a catalog type
func listCatalog(c *gin.Context, ct *catalogType) {
	utils.LogInfo("listCatalog called for %s with query params: %v", ct.name, c.Request.URL.Query())

	pagination := utils.NewPagination(c)

	query := config.DB.Model(ct.model())

	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(merchant) LIKE ?", term, term)
	}
	if badge := c.Query("badge"); badge != "" {
		query = query.Where("badge = ?", badge)
	}
	if verified := c.Query("verified"); verified != "" {
		query = query.Where("verified = ?", verified == "true")
	}
	if provider := c.Query("provider"); provider != "" {
		query = query.Where("action_provider = ?", provider)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count %s: %v", ct.key, err)
		utils.InternalServerError(c, "Failed to fetch "+ct.key, err.Error())
		return
	}
	pagination.SetTotal(total)

	sortBy := c.DefaultQuery("sort_by", "created_at")
	order := c.DefaultQuery("order", "desc")
	if order != "asc" && order != "desc" {
		order = "desc"
	}
	switch sortBy {
	case "rating", "used_today", "created_at", "title", "items_left":
	default:
		sortBy = "created_at"
	}

	var items []CatalogItemView
	if err := query.Select(ct.viewColumns()).
		Order(fmt.Sprintf("%s %s", sortBy, order)).
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch %s: %v", ct.key, err)
		utils.InternalServerError(c, "Failed to fetch "+ct.key, err.Error())
		return
	}

	utils.LogInfo("Successfully fetched %d %s", len(items), ct.key)
	utils.SuccessWithPagination(c, strings.Title(ct.key)+" retrieved successfully", ct.key, items, pagination)
}

// getCatalogItem handles get-by-id
func getCatalogItem(c *gin.Context, ct *catalogType) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	var item CatalogItemView
	if err := config.DB.Model(ct.model()).Select(ct.viewColumns()).
		Where("id = ?", id).First(&item).Error; err != nil {
		utils.LogError("%s %d not found: %v", ct.name, id, err)
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	utils.Success(c, strings.Title(ct.name)+" retrieved successfully", gin.H{ct.name: item})
}

// createCatalogItem handles admin create with duplicate-title/code rejection
func createCatalogItem(c *gin.Context, ct *catalogType) {
	utils.LogInfo("createCatalogItem called for %s", ct.name)

	var req CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if ok, msg := validateCatalogRequest(ct, &req); !ok {
		utils.LogError("Validation failed for %s %q: %s", ct.name, req.Title, msg)
		utils.BadRequest(c, msg, nil)
		return
	}

	if exists, err := titleExists(ct, req.Title, 0); err != nil {
		utils.InternalServerError(c, "Failed to create "+ct.name, err.Error())
		return
	} else if exists {
		utils.LogError("Duplicate %s title: %s", ct.name, req.Title)
		utils.Conflict(c, strings.Title(ct.name)+" with this title already exists", nil)
		return
	}
	if ct.needsCode {
		if exists, err := codeExists(ct, req.Code, 0); err != nil {
			utils.InternalServerError(c, "Failed to create "+ct.name, err.Error())
			return
		} else if exists {
			utils.LogError("Duplicate %s code: %s", ct.name, req.Code)
			utils.Conflict(c, strings.Title(ct.name)+" with this code already exists", nil)
			return
		}
	}

	id, err := ct.insert(&req)
	if err != nil {
		utils.LogError("Failed to create %s: %v", ct.name, err)
		utils.InternalServerError(c, "Failed to create "+ct.name, err.Error())
		return
	}

	utils.LogActivity(models.ActivityCatalogCreated, ct.name, utils.EntityID(id), actorEmail(c), nil,
		map[string]interface{}{"title": req.Title})

	utils.LogInfo("Successfully created %s %q with ID: %d", ct.name, req.Title, id)
	utils.Created(c, strings.Title(ct.name)+" created successfully", gin.H{"id": id, "title": req.Title})
}

// updateCatalogItem handles admin update; duplicate title/code rejected when changed
func updateCatalogItem(c *gin.Context, ct *catalogType) {
	utils.LogInfo("updateCatalogItem called for %s", ct.name)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	var existing CatalogItemView
	if err := config.DB.Model(ct.model()).Select(ct.viewColumns()).
		Where("id = ?", id).First(&existing).Error; err != nil {
		utils.LogError("%s %d not found: %v", ct.name, id, err)
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	var req CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if ok, msg := validateCatalogRequest(ct, &req); !ok {
		utils.LogError("Validation failed for %s %d: %s", ct.name, id, msg)
		utils.BadRequest(c, msg, nil)
		return
	}

	if !strings.EqualFold(req.Title, existing.Title) {
		if exists, err := titleExists(ct, req.Title, uint(id)); err != nil {
			utils.InternalServerError(c, "Failed to update "+ct.name, err.Error())
			return
		} else if exists {
			utils.Conflict(c, strings.Title(ct.name)+" with this title already exists", nil)
			return
		}
	}
	if ct.needsCode && req.Code != existing.Code {
		if exists, err := codeExists(ct, req.Code, uint(id)); err != nil {
			utils.InternalServerError(c, "Failed to update "+ct.name, err.Error())
			return
		} else if exists {
			utils.Conflict(c, strings.Title(ct.name)+" with this code already exists", nil)
			return
		}
	}

	updates := map[string]interface{}{
		"title":           req.Title,
		"merchant":        req.Merchant,
		"image_url":       req.ImageURL,
		"logo_url":        req.LogoURL,
		"offer_text":      req.OfferText,
		"description":     req.Description,
		"items_left":      req.ItemsLeft,
		"expiry":          req.Expiry,
		"verified":        req.Verified,
		"badge":           req.Badge,
		"action_link":     req.ActionLink,
		"action_provider": req.ActionProvider,
	}
	if ct.needsCode {
		updates["code"] = req.Code
	}

	if err := config.DB.Model(ct.model()).Where("id = ?", id).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update %s %d: %v", ct.name, id, err)
		utils.InternalServerError(c, "Failed to update "+ct.name, err.Error())
		return
	}

	before := map[string]interface{}{
		"title": existing.Title, "merchant": existing.Merchant, "items_left": existing.ItemsLeft,
		"expiry": existing.Expiry, "verified": existing.Verified, "badge": existing.Badge,
		"action_link": existing.ActionLink,
	}
	after := map[string]interface{}{
		"title": req.Title, "merchant": req.Merchant, "items_left": req.ItemsLeft,
		"expiry": req.Expiry, "verified": req.Verified, "badge": req.Badge,
		"action_link": req.ActionLink,
	}
	utils.LogActivity(models.ActivityCatalogUpdated, ct.name, utils.EntityID(uint(id)), actorEmail(c), before, after)

	utils.LogInfo("Successfully updated %s %d", ct.name, id)
	utils.Success(c, strings.Title(ct.name)+" updated successfully", gin.H{"id": id})
}

// deleteCatalogItem handles admin delete
func deleteCatalogItem(c *gin.Context, ct *catalogType) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	var existing CatalogItemView
	if err := config.DB.Model(ct.model()).Select(ct.viewColumns()).
		Where("id = ?", id).First(&existing).Error; err != nil {
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	if err := config.DB.Where("id = ?", id).Delete(ct.model()).Error; err != nil {
		utils.LogError("Failed to delete %s %d: %v", ct.name, id, err)
		utils.InternalServerError(c, "Failed to delete "+ct.name, err.Error())
		return
	}

	utils.LogActivity(models.ActivityCatalogDeleted, ct.name, utils.EntityID(uint(id)), actorEmail(c),
		map[string]interface{}{"title": existing.Title}, nil)

	utils.LogInfo("Successfully deleted %s %d", ct.name, id)
	utils.Success(c, strings.Title(ct.name)+" deleted successfully", nil)
}

// trendingCatalog returns verified, highly rated, heavily used items
func trendingCatalog(c *gin.Context, ct *catalogType) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = 10
	}

	var items []CatalogItemView
	if err := config.DB.Model(ct.model()).Select(ct.viewColumns()).
		Where("verified = ? AND rating >= ? AND used_today >= ?", true, utils.TrendingMinRating, utils.TrendingMinUsage).
		Order("rating desc, used_today desc").
		Limit(limit).
		Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch trending %s: %v", ct.key, err)
		utils.InternalServerError(c, "Failed to fetch trending "+ct.key, err.Error())
		return
	}

	utils.Success(c, "Trending "+ct.key+" retrieved successfully", gin.H{ct.key: items})
}

// limitedStockCatalog returns items with 0 < items_left <= LimitedStockMax.
// Both bounds apply; an item with zero stock is not limited, it is gone.
func limitedStockCatalog(c *gin.Context, ct *catalogType) {
	var items []CatalogItemView
	if err := config.DB.Model(ct.model()).Select(ct.viewColumns()).
		Where("items_left > 0 AND items_left <= ?", utils.LimitedStockMax).
		Order("items_left asc").
		Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch limited-stock %s: %v", ct.key, err)
		utils.InternalServerError(c, "Failed to fetch limited-stock "+ct.key, err.Error())
		return
	}

	utils.Success(c, "Limited-stock "+ct.key+" retrieved successfully", gin.H{ct.key: items})
}

// useCatalogItem atomically decrements items_left and increments used_today.
// The guarded UPDATE keeps items_left from ever going negative under
// concurrent calls; zero rows affected means the item is out of stock.
func useCatalogItem(c *gin.Context, ct *catalogType) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	var count int64
	if err := config.DB.Model(ct.model()).Where("id = ?", id).Count(&count).Error; err != nil || count == 0 {
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	result := config.DB.Model(ct.model()).
		Where("id = ? AND items_left > 0", id).
		UpdateColumns(map[string]interface{}{
			"items_left": gorm.Expr("items_left - 1"),
			"used_today": gorm.Expr("used_today + 1"),
		})
	if result.Error != nil {
		utils.LogError("Failed to record usage for %s %d: %v", ct.name, id, result.Error)
		utils.InternalServerError(c, "Failed to record usage", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.LogInfo("Usage rejected for %s %d: no items left", ct.name, id)
		utils.BadRequest(c, "No items left", nil)
		return
	}

	var item CatalogItemView
	if err := config.DB.Model(ct.model()).Select(ct.viewColumns()).
		Where("id = ?", id).First(&item).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch "+ct.name, err.Error())
		return
	}

	utils.LogInfo("Recorded usage for %s %d, items left: %d", ct.name, id, item.ItemsLeft)
	utils.Success(c, "Usage recorded successfully", gin.H{
		"items_left": item.ItemsLeft,
		"used_today": item.UsedToday,
	})
}

// RateRequest is the body for rating updates
type RateRequest struct {
	Rating float64 `json:"rating"`
}

// rateCatalogItem folds a new rating into the running average. The whole
// recomputation happens in one UPDATE so concurrent ratings cannot lose
// increments. round(x, 1) keeps the stored average at one decimal.
func rateCatalogItem(c *gin.Context, ct *catalogType) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if ok, msg := utils.ValidateRating(req.Rating); !ok {
		utils.BadRequest(c, msg, nil)
		return
	}

	result := config.DB.Model(ct.model()).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"rating":        gorm.Expr("round((rating * total_ratings + ?) / (total_ratings + 1), 1)", req.Rating),
			"total_ratings": gorm.Expr("total_ratings + 1"),
		})
	if result.Error != nil {
		utils.LogError("Failed to update rating for %s %d: %v", ct.name, id, result.Error)
		utils.InternalServerError(c, "Failed to update rating", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	var item CatalogItemView
	if err := config.DB.Model(ct.model()).Select(ct.viewColumns()).
		Where("id = ?", id).First(&item).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch "+ct.name, err.Error())
		return
	}

	utils.LogInfo("Updated rating for %s %d to %.1f (%d ratings)", ct.name, id, item.Rating, item.TotalRatings)
	utils.Success(c, "Rating updated successfully", gin.H{
		"rating":        item.Rating,
		"total_ratings": item.TotalRatings,
	})
}

// clickCatalogItem appends a click record. total_clicks always increments;
// unique_clicks only when no click with the same (ip, session) hit this item
// inside the trailing 24 hours. The window slides, it is not a calendar day.
func clickCatalogItem(c *gin.Context, ct *catalogType) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	var count int64
	if err := config.DB.Model(ct.model()).Where("id = ?", id).Count(&count).Error; err != nil || count == 0 {
		utils.NotFound(c, strings.Title(ct.name)+" not found")
		return
	}

	ip := utils.ClientIP(c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr)
	sessionID := utils.VisitorSessionID(c)
	loc := geoResolver.Resolve(ip)

	var prior int64
	cutoff := time.Now().Add(-utils.ClickUniqueWindow)
	if err := config.DB.Model(&models.Click{}).
		Where("item_type = ? AND item_id = ? AND ip = ? AND session_id = ? AND created_at > ?",
			ct.name, id, ip, sessionID, cutoff).
		Count(&prior).Error; err != nil {
		utils.LogError("Failed to check click uniqueness for %s %d: %v", ct.name, id, err)
		utils.InternalServerError(c, "Failed to record click", err.Error())
		return
	}
	isUnique := prior == 0

	updates := map[string]interface{}{
		"total_clicks": gorm.Expr("total_clicks + 1"),
	}
	if isUnique {
		updates["unique_clicks"] = gorm.Expr("unique_clicks + 1")
	}
	if err := config.DB.Model(ct.model()).Where("id = ?", id).UpdateColumns(updates).Error; err != nil {
		utils.LogError("Failed to update click counters for %s %d: %v", ct.name, id, err)
		utils.InternalServerError(c, "Failed to record click", err.Error())
		return
	}

	click := models.Click{
		ItemType:  ct.name,
		ItemID:    uint(id),
		IP:        ip,
		SessionID: sessionID,
		Country:   loc.Country,
		City:      loc.City,
		UserAgent: c.Request.UserAgent(),
		IsUnique:  isUnique,
	}
	if err := config.DB.Create(&click).Error; err != nil {
		// Counters already moved; the click row is best-effort detail
		utils.LogError("Failed to append click record for %s %d: %v", ct.name, id, err)
	}

	utils.LogInfo("Recorded click on %s %d (unique: %v)", ct.name, id, isUnique)
	utils.Success(c, "Click recorded successfully", gin.H{"is_unique": isUnique})
}

// BatchResult reports the outcome for one element of a batch create
type BatchResult struct {
	Index   int    `json:"index"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      uint   `json:"id,omitempty"`
}

// batchCreateCatalog validates each element independently and inserts the
// ones that pass. Duplicates are checked against the database and against
// items accepted earlier in the same batch. No all-or-nothing guarantee;
// the caller gets a 207 with per-index detail.
func batchCreateCatalog(c *gin.Context, ct *catalogType) {
	utils.LogInfo("batchCreateCatalog called for %s", ct.key)

	var reqs []CatalogItemRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if len(reqs) == 0 {
		utils.BadRequest(c, "Batch cannot be empty", nil)
		return
	}

	seenTitles := make(map[string]bool)
	seenCodes := make(map[string]bool)
	results := make([]BatchResult, 0, len(reqs))

	for i := range reqs {
		req := &reqs[i]
		if ok, msg := validateCatalogRequest(ct, req); !ok {
			results = append(results, BatchResult{Index: i, Success: false, Message: msg})
			continue
		}

		titleKey := strings.ToLower(req.Title)
		if seenTitles[titleKey] {
			results = append(results, BatchResult{Index: i, Success: false, Message: "Duplicate title earlier in batch"})
			continue
		}
		if exists, err := titleExists(ct, req.Title, 0); err != nil {
			results = append(results, BatchResult{Index: i, Success: false, Message: "Database error"})
			continue
		} else if exists {
			results = append(results, BatchResult{Index: i, Success: false, Message: strings.Title(ct.name) + " with this title already exists"})
			continue
		}

		if ct.needsCode {
			if seenCodes[req.Code] {
				results = append(results, BatchResult{Index: i, Success: false, Message: "Duplicate code earlier in batch"})
				continue
			}
			if exists, err := codeExists(ct, req.Code, 0); err != nil {
				results = append(results, BatchResult{Index: i, Success: false, Message: "Database error"})
				continue
			} else if exists {
				results = append(results, BatchResult{Index: i, Success: false, Message: strings.Title(ct.name) + " with this code already exists"})
				continue
			}
		}

		id, err := ct.insert(req)
		if err != nil {
			utils.LogError("Failed to insert batch element %d for %s: %v", i, ct.key, err)
			results = append(results, BatchResult{Index: i, Success: false, Message: "Failed to create " + ct.name})
			continue
		}

		seenTitles[titleKey] = true
		if ct.needsCode {
			seenCodes[req.Code] = true
		}
		results = append(results, BatchResult{Index: i, Success: true, ID: id})
	}

	utils.LogInfo("Batch create for %s finished: %d elements", ct.key, len(results))
	utils.MultiStatus(c, "Batch processed", results)
}

// actorEmail returns the authenticated admin's email for audit records
func actorEmail(c *gin.Context) string {
	if admin, exists := c.Get("admin"); exists {
		if user, ok := admin.(models.User); ok {
			return user.Email
		}
	}
	return ""
}
