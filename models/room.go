package models

import "fmt"

// Room is a single inventory unit. RoomNumber is the stable identity
// bookings refer to; the surrogate ID only preserves insertion order in
// the snapshot file. Numbers are not unique: re-seeding can legitimately
// produce a second 101, and lookups resolve to the latest entry.
type Room struct {
	ID uint `json:"-" gorm:"primaryKey;autoIncrement"`

	RoomNumber int     `json:"roomNumber" gorm:"column:room_number;index"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`

	// Available is advisory only. Availability queries derive the real
	// answer from booking date ranges and never read this flag, so it
	// can lag behind reality once a stay has ended.
	Available bool `json:"available" gorm:"column:available"`
}

func (r Room) String() string {
	status := "Available"
	if !r.Available {
		status = "Booked"
	}
	return fmt.Sprintf("Room %d | Type: %s | Price: $%.2f | %s",
		r.RoomNumber, r.Type, r.Price, status)
}
