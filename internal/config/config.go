package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything the service reads from the environment.
type Config struct {
	AppPort string

	GoogleAPIKey   string
	GoogleCX       string
	BaiduAPIKey    string
	BaiduSecretKey string
	RapidAPIKey    string

	NewsSourceURL string

	CacheTTL      time.Duration
	CacheCapacity int
	SearchTimeout time.Duration

	LogLevel string
}

// Load reads configuration from environment variables, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		AppPort:        os.Getenv("PORT"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		GoogleCX:       os.Getenv("GOOGLE_CX"),
		BaiduAPIKey:    os.Getenv("BAIDU_API_KEY"),
		BaiduSecretKey: os.Getenv("BAIDU_SECRET_KEY"),
		RapidAPIKey:    os.Getenv("RAPIDAPI_KEY"),
		NewsSourceURL:  os.Getenv("NEWS_SOURCE_URL"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.NewsSourceURL == "" {
		cfg.NewsSourceURL = "https://www.thedailystar.net/"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	var err error
	cfg.CacheTTL, err = durationEnv("CACHE_TTL", 60*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.SearchTimeout, err = durationEnv("SEARCH_TIMEOUT", 20*time.Second)
	if err != nil {
		return nil, err
	}

	cfg.CacheCapacity = 256
	if v := os.Getenv("CACHE_CAPACITY"); v != "" {
		cfg.CacheCapacity, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_CAPACITY: %w", err)
		}
	}

	return cfg, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
