package models

import (
	"time"

	"gorm.io/gorm"
)

// Action providers a catalog item can link out to
const (
	ProviderOGAds   = "og_ads"
	ProviderCPAGrip = "cpa_grip"
	ProviderCPALead = "cpa_lead"
	ProviderOther   = "Other"
)

// ValidProviders lists the accepted action_provider values
var ValidProviders = []string{ProviderOGAds, ProviderCPAGrip, ProviderCPALead, ProviderOther}

// CatalogBase holds the fields shared by Apps, Games, GiftCards and Coupons.
// Title is unique per concrete type, enforced by each type's own index.
type CatalogBase struct {
	Merchant     string  `json:"merchant"`
	ImageURL     string  `json:"image_url"`
	LogoURL      string  `json:"logo_url"`
	OfferText    string  `json:"offer_text"`
	Description  string  `json:"description"`
	Rating       float64 `json:"rating" gorm:"default:0"`
	TotalRatings int     `json:"total_ratings" gorm:"default:0"`
	ItemsLeft    int     `json:"items_left" gorm:"default:0"`
	// Expiry is either an ISO date string or the "No expiration" sentinel
	Expiry         string `json:"expiry" gorm:"default:'No expiration'"`
	UsedToday      int    `json:"used_today" gorm:"default:0"`
	Verified       bool   `json:"verified" gorm:"default:false"`
	Badge          string `json:"badge"`
	ActionLink     string `json:"action_link"`
	ActionProvider string `json:"action_provider" gorm:"default:'Other'"`
	TotalClicks    int    `json:"total_clicks" gorm:"default:0"`
	UniqueClicks   int    `json:"unique_clicks" gorm:"default:0"`
}

// App is a catalog item of type "app"
type App struct {
	gorm.Model
	CatalogBase
	Title string `json:"title" gorm:"uniqueIndex;not null"`
}

// Game is a catalog item of type "game"
type Game struct {
	gorm.Model
	CatalogBase
	Title string `json:"title" gorm:"uniqueIndex;not null"`
}

// GiftCard is a catalog item of type "giftcard"
type GiftCard struct {
	gorm.Model
	CatalogBase
	Title string `json:"title" gorm:"uniqueIndex;not null"`
}

// Coupon is a catalog item of type "coupon"; Code is required and stored uppercase
type Coupon struct {
	gorm.Model
	CatalogBase
	Title string `json:"title" gorm:"uniqueIndex;not null"`
	Code  string `json:"code" gorm:"uniqueIndex;not null"`
}

// Click records a single click on a catalog item. IsUnique means no prior
// click with the same (ip, session_id) existed for the item in the trailing
// 24 hours at the time of the click.
type Click struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ItemType  string    `gorm:"index:idx_clicks_item;not null" json:"item_type"`
	ItemID    uint      `gorm:"index:idx_clicks_item;not null" json:"item_id"`
	IP        string    `json:"ip"`
	SessionID string    `json:"session_id"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	UserAgent string    `json:"user_agent"`
	IsUnique  bool      `json:"is_unique"`
	CreatedAt time.Time `json:"created_at"`
}
