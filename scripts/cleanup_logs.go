//go:build ignore

// Retention sweep for audit logs, offer access logs and click records.
// Meant to be scheduled externally (cron), not run inside the server:
//
//	go run scripts/cleanup_logs.go
//
// Deletes rows older than the 30-day retention window plus refresh tokens
// whose natural expiry has passed. Best-effort: each failure is logged and
// the sweep moves on.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
	"github.com/dealshub/DealsHub/utils"
)

func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	config.InitDB()

	cutoff := time.Now().Add(-utils.LogRetention)
	fmt.Printf("Sweeping log records older than %s\n", cutoff.Format("2006-01-02"))

	sweep := func(name string, model interface{}) {
		result := config.DB.Unscoped().Where("created_at < ?", cutoff).Delete(model)
		if result.Error != nil {
			utils.LogError("Retention sweep failed for %s: %v", name, result.Error)
			fmt.Printf("%s: sweep failed: %v\n", name, result.Error)
			return
		}
		fmt.Printf("%s: removed %d rows\n", name, result.RowsAffected)
	}

	sweep("activity_logs", &models.ActivityLog{})
	sweep("offer_access_logs", &models.OfferAccessLog{})
	sweep("clicks", &models.Click{})

	// Expired refresh tokens are dead weight regardless of age
	result := config.DB.Where("expires_at < ?", time.Now()).Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		utils.LogError("Retention sweep failed for blacklisted_tokens: %v", result.Error)
		fmt.Printf("blacklisted_tokens: sweep failed: %v\n", result.Error)
	} else {
		fmt.Printf("blacklisted_tokens: removed %d rows\n", result.RowsAffected)
	}
}
