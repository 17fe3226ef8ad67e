package utils

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/dealshub/DealsHub/config"
	"github.com/dealshub/DealsHub/models"
)

// FieldChange records one changed field in an audit entry
type FieldChange struct {
	From interface{} `json:"from"`
	To   interface{} `json:"to"`
}

// DiffFields compares two flat field maps and returns only the fields whose
// values differ. Fields present on one side only count as changed.
func DiffFields(before, after map[string]interface{}) map[string]FieldChange {
	changes := make(map[string]FieldChange)
	for key, newVal := range after {
		oldVal, ok := before[key]
		if !ok || !reflect.DeepEqual(oldVal, newVal) {
			changes[key] = FieldChange{From: oldVal, To: newVal}
		}
	}
	for key, oldVal := range before {
		if _, ok := after[key]; !ok {
			changes[key] = FieldChange{From: oldVal, To: nil}
		}
	}
	return changes
}

// LogActivity writes an audit record. Audit logging is best-effort: failures
// are logged and never surfaced to the caller.
func LogActivity(activity, entity, entityID, actor string, before, after map[string]interface{}) {
	var changesJSON string
	if before != nil || after != nil {
		changes := DiffFields(before, after)
		if len(changes) == 0 {
			changesJSON = ""
		} else if data, err := json.Marshal(changes); err == nil {
			changesJSON = string(data)
		} else {
			LogError("Failed to marshal audit changes: %v", err)
		}
	}

	entry := models.ActivityLog{
		Activity: activity,
		Entity:   entity,
		EntityID: entityID,
		Actor:    actor,
		Changes:  changesJSON,
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		LogError("Failed to write audit log for %s %s/%s: %v", activity, entity, entityID, err)
	}
}

// EntityID formats a numeric primary key for audit records
func EntityID(id uint) string {
	return fmt.Sprintf("%d", id)
}
