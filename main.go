package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"hotel-console/cli"
	"hotel-console/config"
	"hotel-console/services"
	"hotel-console/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	utils.InitializeLogger(cfg.Env)
	logger := utils.GetLogger()

	system := services.NewHotelService(logger)

	// A missing or unreadable snapshot is not fatal; LoadFromFile
	// reports it and the session starts empty, seeded below.
	_ = system.LoadFromFile(cfg.DataFile)

	system.EnsureDefaultRooms(time.Now())

	menu := cli.New(system, os.Stdin, os.Stdout, cfg.DataFile, logger)
	menu.Run()

	_ = logger.Sync()
}
