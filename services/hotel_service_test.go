package services

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-console/models"
	"hotel-console/utils"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

func seededService(t *testing.T) *HotelService {
	t.Helper()
	s := NewHotelService(zap.NewNop())
	require.True(t, s.EnsureDefaultRooms(day(t, "2024-01-01")))
	return s
}

func roomNumbers(rooms []models.Room) []int {
	nums := make([]int, 0, len(rooms))
	for _, r := range rooms {
		nums = append(nums, r.RoomNumber)
	}
	return nums
}

func TestEnsureDefaultRooms(t *testing.T) {
	s := seededService(t)
	assert.Equal(t, []int{101, 102, 103}, roomNumbers(s.Rooms()))

	// Already available today: no second seeding.
	assert.False(t, s.EnsureDefaultRooms(day(t, "2024-01-01")))
	assert.Len(t, s.Rooms(), 3)
}

func TestBookRoomScenario(t *testing.T) {
	s := seededService(t)
	guest := models.Guest{Name: "Alice", Contact: "alice@example.com", IDProof: "P-123"}

	booking, err := s.BookRoom(guest, 101, day(t, "2024-01-10"), day(t, "2024-01-12"))
	require.NoError(t, err)

	assert.Equal(t, 200.00, booking.TotalPrice)
	assert.Equal(t, "Alice", booking.Guest.Name)
	assert.NotEmpty(t, booking.ReferenceCode)
	assert.Regexp(t, `^[A-Z0-9]{4}-[A-Z0-9]{4}$`, booking.ConfirmationCode)

	// Mid-stay the room is gone; the day after check-out it is back.
	assert.Equal(t, []int{102, 103}, roomNumbers(s.AvailableRooms(day(t, "2024-01-11"))))
	assert.Equal(t, []int{101, 102, 103}, roomNumbers(s.AvailableRooms(day(t, "2024-01-13"))))
}

func TestAvailabilityInclusiveOnBothEnds(t *testing.T) {
	s := seededService(t)
	_, err := s.BookRoom(models.Guest{Name: "Alice"}, 101, day(t, "2024-01-10"), day(t, "2024-01-12"))
	require.NoError(t, err)

	// Check-in and check-out days both count as occupied: no same-day
	// turnover.
	assert.NotContains(t, roomNumbers(s.AvailableRooms(day(t, "2024-01-10"))), 101)
	assert.NotContains(t, roomNumbers(s.AvailableRooms(day(t, "2024-01-12"))), 101)
	assert.Contains(t, roomNumbers(s.AvailableRooms(day(t, "2024-01-09"))), 101)
	assert.Contains(t, roomNumbers(s.AvailableRooms(day(t, "2024-01-13"))), 101)
}

func TestAvailabilityIgnoresAdvisoryFlag(t *testing.T) {
	s := NewHotelService(nil)
	s.AddRoom(models.Room{RoomNumber: 201, Type: "Single", Price: 90.00, Available: false})

	// Flag says booked, but with no booking on file the room is
	// reported available.
	assert.Equal(t, []int{201}, roomNumbers(s.AvailableRooms(day(t, "2024-03-01"))))
}

func TestBookRoomClearsAdvisoryFlag(t *testing.T) {
	s := seededService(t)
	_, err := s.BookRoom(models.Guest{Name: "Alice"}, 101, day(t, "2024-01-10"), day(t, "2024-01-12"))
	require.NoError(t, err)

	assert.False(t, s.Rooms()[0].Available)
	assert.True(t, s.Rooms()[1].Available)
}

// BookRoom trusts its caller and never re-checks the dates, so a second
// overlapping booking of the same room goes through.
func TestBookRoomDoesNotRevalidate(t *testing.T) {
	s := seededService(t)
	_, err := s.BookRoom(models.Guest{Name: "Alice"}, 101, day(t, "2024-01-10"), day(t, "2024-01-12"))
	require.NoError(t, err)

	_, err = s.BookRoom(models.Guest{Name: "Mallory"}, 101, day(t, "2024-01-11"), day(t, "2024-01-12"))
	require.NoError(t, err)
	assert.Len(t, s.Bookings(), 2)
}

func TestBookRoomUnknownRoom(t *testing.T) {
	s := seededService(t)
	_, err := s.BookRoom(models.Guest{Name: "Alice"}, 999, day(t, "2024-01-10"), day(t, "2024-01-12"))
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Empty(t, s.Bookings())
}

func TestAvailableRoomsIdempotent(t *testing.T) {
	s := seededService(t)
	_, err := s.BookRoom(models.Guest{Name: "Alice"}, 102, day(t, "2024-01-10"), day(t, "2024-01-12"))
	require.NoError(t, err)

	first := s.AvailableRooms(day(t, "2024-01-11"))
	second := s.AvailableRooms(day(t, "2024-01-11"))
	assert.Equal(t, first, second)
}

func TestListRoomsAndBookings(t *testing.T) {
	s := NewHotelService(nil)

	var out bytes.Buffer
	s.ListRooms(&out)
	assert.Contains(t, out.String(), "No rooms available.")

	out.Reset()
	s.ListBookings(&out)
	assert.Contains(t, out.String(), "No bookings yet.")

	require.True(t, s.EnsureDefaultRooms(day(t, "2024-01-01")))
	_, err := s.BookRoom(models.Guest{Name: "Alice"}, 101, day(t, "2024-01-10"), day(t, "2024-01-12"))
	require.NoError(t, err)

	out.Reset()
	s.ListRooms(&out)
	assert.Contains(t, out.String(), "--- ROOMS ---")
	assert.Contains(t, out.String(), "Room 101 | Type: Single | Price: $100.00 | Booked")

	out.Reset()
	s.ListBookings(&out)
	assert.Contains(t, out.String(), "--- BOOKINGS ---")
	assert.Contains(t, out.String(), "Guest: Alice")
	assert.Contains(t, out.String(), "Total: $200.00")
}

func TestSaveLoadEmptySystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotel.dat")

	s := NewHotelService(nil)
	require.NoError(t, s.SaveToFile(path))

	loaded := NewHotelService(nil)
	require.NoError(t, loaded.LoadFromFile(path))
	assert.Empty(t, loaded.Rooms())
	assert.Empty(t, loaded.Bookings())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotel.dat")

	s := seededService(t)
	_, err := s.BookRoom(models.Guest{Name: "Alice", Contact: "alice@example.com", IDProof: "P-123"},
		101, day(t, "2024-01-10"), day(t, "2024-01-12"))
	require.NoError(t, err)
	require.NoError(t, s.SaveToFile(path))

	loaded := NewHotelService(nil)
	require.NoError(t, loaded.LoadFromFile(path))

	assert.Equal(t, []int{101, 102, 103}, roomNumbers(loaded.Rooms()))
	require.Len(t, loaded.Bookings(), 1)

	b := loaded.Bookings()[0]
	assert.Equal(t, "Alice", b.Guest.Name)
	assert.Equal(t, 200.00, b.TotalPrice)
	assert.Equal(t, "2024-01-10", b.CheckInDate().Format(utils.DateLayout))
	assert.Equal(t, "2024-01-12", b.CheckOutDate().Format(utils.DateLayout))

	// The booking's room reference resolves against the loaded room
	// list, so availability works off restored state.
	assert.Equal(t, 100.00, b.Room.Price)
	assert.Equal(t, []int{102, 103}, roomNumbers(loaded.AvailableRooms(day(t, "2024-01-11"))))
}

// A restart after every room was booked over "today" re-seeds a second
// 101/102/103 on top of the loaded inventory. The duplicated numbers
// must still save, keeping the earlier session's bookings.
func TestSaveAfterReseed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotel.dat")
	today := day(t, "2024-01-11")

	s := seededService(t)
	for _, number := range []int{101, 102, 103} {
		_, err := s.BookRoom(models.Guest{Name: "Alice"}, number,
			day(t, "2024-01-10"), day(t, "2024-01-12"))
		require.NoError(t, err)
	}
	require.NoError(t, s.SaveToFile(path))

	restarted := NewHotelService(nil)
	require.NoError(t, restarted.LoadFromFile(path))
	require.Empty(t, restarted.AvailableRooms(today))
	require.True(t, restarted.EnsureDefaultRooms(today))
	assert.Equal(t, []int{101, 102, 103, 101, 102, 103}, roomNumbers(restarted.Rooms()))

	_, err := restarted.BookRoom(models.Guest{Name: "Bob"}, 102,
		day(t, "2024-02-01"), day(t, "2024-02-03"))
	require.NoError(t, err)
	require.NoError(t, restarted.SaveToFile(path))

	reloaded := NewHotelService(nil)
	require.NoError(t, reloaded.LoadFromFile(path))
	assert.Len(t, reloaded.Rooms(), 6)
	assert.Len(t, reloaded.Bookings(), 4)
}

// Load failure leaves the pre-load state untouched: the session keeps
// its seeded rooms.
func TestLoadFailureKeepsState(t *testing.T) {
	dir := t.TempDir()

	s := seededService(t)

	missing := filepath.Join(dir, "nope.dat")
	assert.Error(t, s.LoadFromFile(missing))
	assert.Len(t, s.Rooms(), 3)

	corrupt := filepath.Join(dir, "corrupt.dat")
	require.NoError(t, os.WriteFile(corrupt, []byte("this is not a database"), 0o644))
	assert.Error(t, s.LoadFromFile(corrupt))
	assert.Len(t, s.Rooms(), 3)
	assert.Empty(t, s.Bookings())
}
