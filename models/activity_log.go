package models

import "time"

// Activity types recorded in the audit trail
const (
	ActivitySubscriberCreated = "subscriber_created"
	ActivitySubscriberUpdated = "subscriber_updated"
	ActivitySubscriberDeleted = "subscriber_deleted"
	ActivitySubscriberBulkOp  = "subscriber_bulk_op"
	ActivityCatalogCreated    = "catalog_created"
	ActivityCatalogUpdated    = "catalog_updated"
	ActivityCatalogDeleted    = "catalog_deleted"
	ActivityOfferResolved     = "offer_resolved"
	ActivityPostbackReceived  = "postback_received"
	ActivityAdminLogin        = "admin_login"
)

// ActivityLog is an append-only audit record. Changes carries a JSON object
// of changed fields only, {"field": {"from": ..., "to": ...}}. Rows older
// than 30 days are removed by the retention sweep in scripts/cleanup_logs.go.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Activity  string    `gorm:"index;not null" json:"activity"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Actor     string    `json:"actor"`
	Changes   string    `gorm:"type:text" json:"changes,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// BlacklistedToken stores refresh tokens invalidated by logout. Rows are
// swept once their natural expiry passes.
type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
