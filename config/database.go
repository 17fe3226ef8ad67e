package config

import (
	"fmt"

	"github.com/dealshub/DealsHub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection and runs migrations
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	if err := Migrate(DB); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}
}

// Migrate runs the schema migrations on the given connection. Split out from
// InitDB so tests can migrate an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.App{},
		&models.Game{},
		&models.GiftCard{},
		&models.Coupon{},
		&models.Click{},
		&models.Offer{},
		&models.OfferCompletion{},
		&models.OfferAccessLog{},
		&models.Subscriber{},
		&models.InteractionEvent{},
		&models.ActivityLog{},
		&models.BlacklistedToken{},
	)
}
