package config

import "hotel-console/utils"

// Config holds all configuration values.
type Config struct {
	Env      string
	DataFile string
}

// Load reads settings from the environment with sensible defaults.
// HOTEL_DATA_FILE points at the snapshot database; hotel.dat in the
// working directory matches the historical default.
func Load() Config {
	return Config{
		Env:      utils.EnvOrDefault("ENV", "development"),
		DataFile: utils.EnvOrDefault("HOTEL_DATA_FILE", "hotel.dat"),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
