package models

import "time"

// InventoryCategory classifies yard equipment and consumables.
type InventoryCategory string

const (
	CategoryHiveBody  InventoryCategory = "Hive Body"
	CategoryFrame     InventoryCategory = "Frame"
	CategoryFeed      InventoryCategory = "Feed"
	CategoryTreatment InventoryCategory = "Treatment"
	CategoryTool      InventoryCategory = "Tool"
)

// InventoryStatus tracks item condition. Flagging marks an item for disposal
// review; it never removes the record.
type InventoryStatus string

const (
	StatusGood    InventoryStatus = "Good"
	StatusFair    InventoryStatus = "Fair"
	StatusFlagged InventoryStatus = "Flagged for Removal"
)

// LogAction enumerates the attributed actions recorded in an item's history.
type LogAction string

const (
	ActionCreated   LogAction = "Created"
	ActionUpdated   LogAction = "Updated"
	ActionFlagged   LogAction = "Flagged"
	ActionRestocked LogAction = "Restocked"
)

// InventoryLog is one immutable, attributed change record. Logs are owned by
// their parent item and are only ever appended.
type InventoryLog struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Action LogAction `json:"action"`
	Actor  string    `json:"actor"`
	Note   string    `json:"note"`
}

// InventoryItem is a piece of stock together with its full change history.
// History is insertion-ordered and append-only; Notes always mirrors the note
// of the most recent log entry.
type InventoryItem struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Category InventoryCategory `json:"category"`
	Quantity int               `json:"quantity"`
	Status   InventoryStatus   `json:"status"`
	Notes    string            `json:"notes,omitempty"`
	History  []InventoryLog    `json:"history"`
}
