// Package storage snapshots the whole in-memory state into a single
// SQLite file and reads it back. The file plays the role of the old
// hotel.dat: one rooms table, one bookings/guests pair.
package storage

import (
	"fmt"
	"os"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"hotel-console/models"
)

// Open opens (or creates) the snapshot database at path and migrates
// the schema. The pure-Go "sqlite" driver is registered by the
// modernc.org/sqlite import, so no cgo is involved.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        path,
		}),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}

	// Parent before child so foreign keys resolve.
	if err := db.AutoMigrate(
		&models.Room{},
		&models.Booking{},
		&models.Guest{},
	); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("migrate snapshot schema: %w", err)
	}

	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Save replaces the snapshot contents with the given rooms and
// bookings. The wipe and the inserts run in one transaction, so a
// failed save leaves the previous snapshot readable.
func Save(path string, rooms []models.Room, bookings []models.Booking) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	defer closeDB(db)

	return db.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range []interface{}{&models.Guest{}, &models.Booking{}, &models.Room{}} {
			if err := wipe.Delete(model).Error; err != nil {
				return fmt.Errorf("clear snapshot: %w", err)
			}
		}

		if len(rooms) > 0 {
			if err := tx.Create(&rooms).Error; err != nil {
				return fmt.Errorf("write rooms: %w", err)
			}
		}
		if len(bookings) > 0 {
			// Each booking carries its guest; gorm persists the
			// has-one row alongside it.
			if err := tx.Create(&bookings).Error; err != nil {
				return fmt.Errorf("write bookings: %w", err)
			}
		}
		return nil
	})
}

// Load reads the full room and booking lists back. A missing or
// unreadable file is an error; callers decide whether that is fatal.
// Booking room references are resolved against the loaded room list.
func Load(path string) ([]models.Room, []models.Booking, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("snapshot %s: %w", path, err)
	}

	db, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer closeDB(db)

	var rooms []models.Room
	if err := db.Order("id").Find(&rooms).Error; err != nil {
		return nil, nil, fmt.Errorf("read rooms: %w", err)
	}

	var bookings []models.Booking
	if err := db.Preload("Guest").Order("id").Find(&bookings).Error; err != nil {
		return nil, nil, fmt.Errorf("read bookings: %w", err)
	}

	byNumber := make(map[int]models.Room, len(rooms))
	for _, room := range rooms {
		byNumber[room.RoomNumber] = room
	}
	for i := range bookings {
		bookings[i].Room = byNumber[bookings[i].RoomNumber]
	}

	return rooms, bookings, nil
}
