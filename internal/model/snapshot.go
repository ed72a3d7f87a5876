package model

import "time"

// Snapshot is the immutable record set a session works against. It is built
// once per load from the configured store; drill-downs and distributions are
// always computed against one snapshot, identified by ID.
type Snapshot struct {
	ID            string            `json:"id"`
	Source        string            `json:"source"`
	LoadedAt      time.Time         `json:"loaded_at"`
	Records       []InventoryRecord `json:"-"`
	RejectedCount int               `json:"rejected_count"`
}
