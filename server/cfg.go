package server

import (
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port string
	Seed int64
}

// LoadConfig reads PORT and SEED from the environment. A zero Seed
// means sessions seed themselves from the clock.
func LoadConfig() Config {
	cfg := Config{Port: os.Getenv("PORT")}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Defaulting to port %s", cfg.Port)
	}
	if s := os.Getenv("SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			log.Warnf("bad SEED %q: %v", s, err)
		} else {
			cfg.Seed = seed
		}
	}
	return cfg
}
