package services

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hotel-console/models"
	"hotel-console/storage"
	"hotel-console/utils"
)

var ErrRoomNotFound = errors.New("room not found")

// HotelService owns the room and booking lists for one operator
// session. Rooms keep insertion order; bookings are append-only.
type HotelService struct {
	log      *zap.Logger
	rooms    []models.Room
	bookings []models.Booking
}

func NewHotelService(log *zap.Logger) *HotelService {
	if log == nil {
		log = zap.NewNop()
	}
	return &HotelService{log: log}
}

// AddRoom appends a room to the inventory. Duplicate numbers are
// accepted silently, here and in the snapshot.
func (s *HotelService) AddRoom(room models.Room) {
	s.rooms = append(s.rooms, room)
}

func (s *HotelService) Rooms() []models.Room { return s.rooms }

func (s *HotelService) Bookings() []models.Booking { return s.bookings }

// AvailableRooms returns, in inventory order, every room with no
// booking whose stay covers date. The interval check is inclusive on
// both ends, so a room checking out on the query day still counts as
// occupied. Room.Available is advisory and deliberately not consulted.
func (s *HotelService) AvailableRooms(date time.Time) []models.Room {
	available := make([]models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		if s.isRoomFree(room, date) {
			available = append(available, room)
		}
	}
	return available
}

func (s *HotelService) isRoomFree(room models.Room, date time.Time) bool {
	for _, b := range s.bookings {
		if b.RoomNumber == room.RoomNumber &&
			utils.DateWithin(date, b.CheckInDate(), b.CheckOutDate()) {
			return false
		}
	}
	return true
}

// BookRoom records a booking for the room with the given number and
// returns it. The caller is expected to have filtered candidates
// through AvailableRooms first; no overlap check happens here, so an
// unfiltered call can double-book.
func (s *HotelService) BookRoom(guest models.Guest, roomNumber int, checkIn, checkOut time.Time) (models.Booking, error) {
	idx := -1
	for i := range s.rooms {
		if s.rooms[i].RoomNumber == roomNumber {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Booking{}, fmt.Errorf("room %d: %w", roomNumber, ErrRoomNotFound)
	}

	s.rooms[idx].Available = false

	booking := models.NewBooking(guest, s.rooms[idx], checkIn, checkOut)
	booking.ReferenceCode = uuid.NewString()
	if raw, err := utils.GenerateConfirmationCode(8); err == nil {
		if code, err := utils.FormatConfirmationCode(raw); err == nil {
			booking.ConfirmationCode = code
		}
	}
	s.bookings = append(s.bookings, booking)

	s.log.Info("booking recorded",
		zap.Int("room", roomNumber),
		zap.String("guest", guest.Name),
		zap.Int("nights", booking.Nights),
		zap.Float64("total", booking.TotalPrice))

	return booking, nil
}

// EnsureDefaultRooms seeds the standard three rooms when nothing is
// available on the given day, mirroring first-run behavior. Reports
// whether seeding happened.
func (s *HotelService) EnsureDefaultRooms(today time.Time) bool {
	if len(s.AvailableRooms(today)) > 0 {
		return false
	}

	s.AddRoom(models.Room{RoomNumber: 101, Type: "Single", Price: 100.00, Available: true})
	s.AddRoom(models.Room{RoomNumber: 102, Type: "Double", Price: 150.00, Available: true})
	s.AddRoom(models.Room{RoomNumber: 103, Type: "Suite", Price: 250.00, Available: true})

	s.log.Info("default rooms seeded", zap.Int("count", 3))
	return true
}

// ListRooms writes the room inventory to w.
func (s *HotelService) ListRooms(w io.Writer) {
	if len(s.rooms) == 0 {
		fmt.Fprintln(w, "No rooms available.")
		return
	}
	fmt.Fprintln(w, "\n--- ROOMS ---")
	for _, room := range s.rooms {
		fmt.Fprintln(w, room)
	}
}

// ListBookings writes all recorded bookings to w.
func (s *HotelService) ListBookings(w io.Writer) {
	if len(s.bookings) == 0 {
		fmt.Fprintln(w, "No bookings yet.")
		return
	}
	fmt.Fprintln(w, "\n--- BOOKINGS ---")
	for _, booking := range s.bookings {
		fmt.Fprintln(w, booking)
	}
}

// SaveToFile snapshots the current state to path. Failures are
// reported and returned but never escalate past the caller.
func (s *HotelService) SaveToFile(path string) error {
	if err := storage.Save(path, s.rooms, s.bookings); err != nil {
		s.log.Error("save failed", zap.String("path", path), zap.Error(err))
		return err
	}
	s.log.Info("data saved",
		zap.String("path", path),
		zap.Int("rooms", len(s.rooms)),
		zap.Int("bookings", len(s.bookings)))
	return nil
}

// LoadFromFile replaces the in-memory state with the snapshot at path.
// The replacement is all-or-nothing: on any read failure the prior
// state stays untouched.
func (s *HotelService) LoadFromFile(path string) error {
	rooms, bookings, err := storage.Load(path)
	if err != nil {
		s.log.Error("load failed", zap.String("path", path), zap.Error(err))
		return err
	}

	s.rooms = rooms
	s.bookings = bookings

	s.log.Info("data loaded",
		zap.String("path", path),
		zap.Int("rooms", len(rooms)),
		zap.Int("bookings", len(bookings)))
	return nil
}
