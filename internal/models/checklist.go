package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChecklistItem identifies one of the five fixed daily ritual items.
// The set is closed: toggles are validated against it instead of poking
// arbitrary fields by string key.
type ChecklistItem string

const (
	ItemWarmWater    ChecklistItem = "warm_water"
	ItemTongueScrape ChecklistItem = "tongue_scrape"
	ItemHerbalTea    ChecklistItem = "herbal_tea"
	ItemLightDinner  ChecklistItem = "light_dinner"
	ItemEarlySleep   ChecklistItem = "early_sleep"
)

// ChecklistOrder fixes the display and storage order of the daily items.
var ChecklistOrder = []ChecklistItem{
	ItemWarmWater,
	ItemTongueScrape,
	ItemHerbalTea,
	ItemLightDinner,
	ItemEarlySleep,
}

// ChecklistItems holds the done flags for the fixed item set in order.
type ChecklistItems map[ChecklistItem]bool

// Toggle flips the flag for a known item and returns the new value.
func (c ChecklistItems) Toggle(item ChecklistItem) (bool, error) {
	if !IsChecklistItem(item) {
		return false, fmt.Errorf("checklist: unknown item %q", item)
	}
	c[item] = !c[item]
	return c[item], nil
}

// Completed counts how many items are done.
func (c ChecklistItems) Completed() int {
	n := 0
	for _, item := range ChecklistOrder {
		if c[item] {
			n++
		}
	}
	return n
}

// AllDone reports whether every item in the fixed set is done.
func (c ChecklistItems) AllDone() bool {
	return c.Completed() == len(ChecklistOrder)
}

// IsChecklistItem reports whether the identifier belongs to the closed set.
func IsChecklistItem(item ChecklistItem) bool {
	for _, known := range ChecklistOrder {
		if known == item {
			return true
		}
	}
	return false
}

// NewChecklistItems returns a fresh all-unchecked item map.
func NewChecklistItems() ChecklistItems {
	items := make(ChecklistItems, len(ChecklistOrder))
	for _, item := range ChecklistOrder {
		items[item] = false
	}
	return items
}

// Value serializes the item flags as JSON for a jsonb column.
func (c ChecklistItems) Value() (driver.Value, error) {
	if c == nil {
		c = NewChecklistItems()
	}
	return json.Marshal(c)
}

// Scan restores item flags from a jsonb column, filling in missing items.
func (c *ChecklistItems) Scan(src interface{}) error {
	out := NewChecklistItems()
	if src == nil {
		*c = out
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("checklist items: unsupported scan type %T", src)
	}
	if len(data) > 0 {
		raw := make(map[ChecklistItem]bool)
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		for _, item := range ChecklistOrder {
			if v, ok := raw[item]; ok {
				out[item] = v
			}
		}
	}
	*c = out
	return nil
}

// DailyChecklist is one user's ritual checklist for one calendar day.
type DailyChecklist struct {
	ID            uuid.UUID      `db:"id"`
	UserID        int64          `db:"user_id"`
	ChecklistDate string         `db:"checklist_date"`
	Items         ChecklistItems `db:"items"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}
