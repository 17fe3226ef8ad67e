package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscriber is a captured marketing contact. Email is hard-unique: creation
// with an existing email is rejected outright, unlike OfferCompletion's soft
// de-duplication.
type Subscriber struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	City     string `json:"city"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
	Source   string `json:"source"`
}

// InteractionEvent is an append-only record of a visitor interaction.
// Only the status field is ever patched after creation.
type InteractionEvent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Type         string    `gorm:"not null" json:"type"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	Region       string    `json:"region"`
	Timezone     string    `json:"timezone"`
	Device       string    `json:"device"`
	Email        string    `json:"email,omitempty"`
	Status       string    `gorm:"default:'new'" json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
