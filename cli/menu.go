// Package cli is the interactive operator surface: a numbered menu on
// stdin/stdout that drives the hotel service. All state lives in the
// service; this layer only prompts, parses and prints.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"hotel-console/models"
	"hotel-console/services"
	"hotel-console/utils"
)

type Menu struct {
	system   *services.HotelService
	in       *bufio.Scanner
	out      io.Writer
	log      *zap.Logger
	dataFile string
}

func New(system *services.HotelService, in io.Reader, out io.Writer, dataFile string, log *zap.Logger) *Menu {
	if log == nil {
		log = zap.NewNop()
	}
	return &Menu{
		system:   system,
		in:       bufio.NewScanner(in),
		out:      out,
		log:      log,
		dataFile: dataFile,
	}
}

// Run loops until the operator picks "Save & Exit" or input ends.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out, "\n=== HOTEL BOOKING SYSTEM ===")
		fmt.Fprintln(m.out, "1. View Rooms")
		fmt.Fprintln(m.out, "2. Book a Room")
		fmt.Fprintln(m.out, "3. View Bookings")
		fmt.Fprintln(m.out, "4. Save & Exit")
		fmt.Fprint(m.out, "Choose an option: ")

		line, ok := m.readLine()
		if !ok {
			m.log.Info("input closed, ending session")
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.out, "Invalid choice!")
			continue
		}

		switch choice {
		case 1:
			m.system.ListRooms(m.out)
		case 2:
			m.bookRoom()
		case 3:
			m.system.ListBookings(m.out)
		case 4:
			if err := m.system.SaveToFile(m.dataFile); err != nil {
				fmt.Fprintf(m.out, "Error saving data: %v\n", err)
			} else {
				fmt.Fprintln(m.out, "Data saved successfully.")
			}
			fmt.Fprintln(m.out, "Exiting...")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice!")
		}
	}
}

func (m *Menu) bookRoom() {
	name, ok := m.prompt("Enter Guest Name: ")
	if !ok {
		return
	}
	contact, ok := m.prompt("Enter Contact Info: ")
	if !ok {
		return
	}
	idProof, ok := m.prompt("Enter ID Proof: ")
	if !ok {
		return
	}

	checkIn, ok := m.promptDate("Enter Check-In Date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	checkOut, ok := m.promptDate("Enter Check-Out Date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	available := m.system.AvailableRooms(checkIn)
	if len(available) == 0 {
		fmt.Fprintln(m.out, "No rooms available for selected dates.")
		return
	}

	fmt.Fprintln(m.out, "\nAvailable Rooms:")
	for _, room := range available {
		fmt.Fprintln(m.out, room)
	}

	numLine, ok := m.prompt("Enter Room Number to Book: ")
	if !ok {
		return
	}
	roomNumber, err := strconv.Atoi(strings.TrimSpace(numLine))
	if err != nil {
		fmt.Fprintln(m.out, "Invalid room selection!")
		return
	}

	selected := false
	for _, room := range available {
		if room.RoomNumber == roomNumber {
			selected = true
			break
		}
	}
	if !selected {
		fmt.Fprintln(m.out, "Invalid room selection!")
		return
	}

	guest := models.Guest{Name: name, Contact: contact, IDProof: idProof}
	booking, err := m.system.BookRoom(guest, roomNumber, checkIn, checkOut)
	if err != nil {
		fmt.Fprintf(m.out, "Booking failed: %v\n", err)
		return
	}

	fmt.Fprintf(m.out, "\nBooking Successful!\n%s\n", booking)
	fmt.Fprintf(m.out, "Confirmation Code: %s\n", booking.ConfirmationCode)
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

// promptDate re-prompts until it gets a parseable date. A typo costs a
// retry instead of the whole session.
func (m *Menu) promptDate(label string) (time.Time, bool) {
	for {
		line, ok := m.prompt(label)
		if !ok {
			return time.Time{}, false
		}
		t, err := utils.ParseDate(line)
		if err == nil {
			return t, true
		}
		fmt.Fprintln(m.out, "Invalid date, use YYYY-MM-DD.")
	}
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
