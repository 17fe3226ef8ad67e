package models

import (
	"time"

	"gorm.io/gorm"
)

// Offer is a country-gated redirect record. Links are per-country; resolution
// picks one by the caller's two-letter country code (gh/ke/ng only).
type Offer struct {
	ID          string         `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string         `json:"title"`
	Active      bool           `json:"active" gorm:"default:true"`
	LinkGhana   string         `json:"link_ghana"`
	LinkKenya   string         `json:"link_kenya"`
	LinkNigeria string         `json:"link_nigeria"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// OfferCompletion statuses
const (
	CompletionPending   = "pending"
	CompletionCompleted = "completed"
	CompletionExpired   = "expired"
	CompletionUsed      = "used"
)

// OfferCompletion is a user's claimed reward awaiting CPA confirmation.
// The pending -> completed transition sends the reward email exactly once.
type OfferCompletion struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	OfferName   string    `json:"offer_name"`
	Title       string    `json:"title"`
	Code        string    `json:"code"`
	Email       string    `gorm:"index" json:"email"`
	Status      string    `gorm:"default:'pending'" json:"status"`
	IsEmailSent bool      `gorm:"default:false" json:"is_email_sent"`
	Network     string    `json:"network"`
	Payout      string    `json:"payout"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OfferAccessLog records a successful offer resolution. Written best-effort;
// a failed insert never fails the resolution request.
type OfferAccessLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OfferID   string    `gorm:"index" json:"offer_id"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
