package dto

import (
	"encoding/json"
	"time"
)

// AuditEntry is one recorded mutation as served by audit-logs/.
type AuditEntry struct {
	ID        uint            `json:"id"`
	UserID    *uint           `json:"user_id"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  *uint           `json:"entity_id"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
