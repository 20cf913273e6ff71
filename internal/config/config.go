package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	PageHost   string  // hostname the storefront is served on; drives API base resolution
	PageOrigin string  // scheme+host for resolving a same-origin API base ("" when local)
	APIBase    string  // explicit override; empty means "derive from PageHost"
	LogFile    string
	FetchRPS   float64 // upstream page-request pacing; 0 disables
}

func Load() Config {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	pageHost := os.Getenv("PAGE_HOST")
	if pageHost == "" {
		pageHost = "localhost"
	}
	rps := 0.0
	if v := os.Getenv("FETCH_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rps = f
		}
	}

	cfg := Config{
		Port:       port,
		PageHost:   pageHost,
		PageOrigin: os.Getenv("PAGE_ORIGIN"),
		APIBase:    os.Getenv("API_BASE"),
		LogFile:    os.Getenv("LOG_FILE"),
		FetchRPS:   rps,
	}
	log.Printf("[config] PORT=%s PAGE_HOST=%s PAGE_ORIGIN=%s API_BASE=%s LOG_FILE=%s FETCH_RPS=%g",
		cfg.Port, cfg.PageHost, cfg.PageOrigin, cfg.APIBase, cfg.LogFile, cfg.FetchRPS)
	return cfg
}
