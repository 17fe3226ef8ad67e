package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account that can sign in to the admin panel
type User struct {
	gorm.Model
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsAdmin     bool      `json:"is_admin" gorm:"default:false"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	GoogleID    string    `gorm:"default:null" json:"google_id,omitempty"`
	LastLoginAt time.Time `json:"last_login_at"`
}
