package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"hotel-console/utils"
)

// Booking ties a guest to a room for a date range. The room is stored
// by number; the live entry in the room list stays the source of truth
// and is resolved back into Room after a snapshot load.
type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"createdAt"`

	ReferenceCode    string `json:"referenceCode" gorm:"column:reference_code;size:64"`
	ConfirmationCode string `json:"confirmationCode" gorm:"column:confirmation_code;size:16"`

	RoomNumber int            `json:"roomNumber" gorm:"column:room_number;index"`
	CheckIn    datatypes.Date `json:"checkIn" gorm:"column:check_in"`
	CheckOut   datatypes.Date `json:"checkOut" gorm:"column:check_out"`

	// Nights is signed; TotalPrice follows it. Derived once at
	// construction and never recomputed afterwards.
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice" gorm:"column:total_price"`

	Guest Guest `json:"guest" gorm:"foreignKey:BookingID"`
	Room  Room  `json:"room" gorm:"-"`
}

// NewBooking derives the total from the stay length and the room's
// nightly price. A check-out before the check-in yields a negative day
// count and a negative total rather than an error.
func NewBooking(guest Guest, room Room, checkIn, checkOut time.Time) Booking {
	nights := utils.DaysBetween(checkIn, checkOut)

	return Booking{
		RoomNumber: room.RoomNumber,
		CheckIn:    datatypes.Date(utils.DateOnly(checkIn)),
		CheckOut:   datatypes.Date(utils.DateOnly(checkOut)),
		Nights:     nights,
		TotalPrice: float64(nights) * room.Price,
		Guest:      guest,
		Room:       room,
	}
}

// CheckInDate returns the check-in day as a plain time.Time.
func (b Booking) CheckInDate() time.Time { return time.Time(b.CheckIn) }

// CheckOutDate returns the check-out day as a plain time.Time.
func (b Booking) CheckOutDate() time.Time { return time.Time(b.CheckOut) }

func (b Booking) String() string {
	return fmt.Sprintf("%s\n%s\nDates: %s to %s\nTotal: $%.2f",
		b.Guest, b.Room,
		b.CheckInDate().Format(utils.DateLayout),
		b.CheckOutDate().Format(utils.DateLayout),
		b.TotalPrice)
}
