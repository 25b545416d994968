package models

import (
	"encoding/json"
	"errors"
	"time"
)

// DateLayout is the wire and storage format for menu dates.
const DateLayout = "2006-01-02"

// Menu is one restaurant's offering for one date. A restaurant may upload
// several menus for the same date; each one is votable on its own. Items is
// an opaque JSON payload supplied at upload time.
type Menu struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	Date         string    `gorm:"type:varchar(10);not null;index" json:"date"`
	Items        string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

// SetItems stores an arbitrary JSON document as the menu's item list.
func (m *Menu) SetItems(items json.RawMessage) error {
	if len(items) == 0 || !json.Valid(items) {
		return errors.New("items must be a valid JSON document")
	}
	m.Items = string(items)
	return nil
}

// ItemsJSON returns the stored item payload without re-encoding it.
func (m *Menu) ItemsJSON() json.RawMessage {
	return json.RawMessage(m.Items)
}
