package models

import "fmt"

// Guest is the reservation holder. Guests only exist as part of the
// booking that created them; there is no standalone guest registry and
// no uniqueness constraint on any field.
type Guest struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`

	BookingID *uint `json:"bookingId,omitempty" gorm:"index;column:booking_id"`

	Name    string `json:"name"`
	Contact string `json:"contact"`
	IDProof string `json:"idProof" gorm:"column:id_proof"`
}

func (g Guest) String() string {
	return fmt.Sprintf("Guest: %s | Contact: %s | ID: %s", g.Name, g.Contact, g.IDProof)
}
