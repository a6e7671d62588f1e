package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// CacheConfig holds all cache-related configuration
type CacheConfig struct {
	// LRU cache for latest observations
	ObservationLRUSize       int
	ObservationLRUTTLMinutes int

	// S3 archive for BuoyCam snapshots
	ImageCacheBucket string
	ImageTTLMinutes  int

	// General settings
	EnableLRUCache   bool
	EnableImageCache bool
}

const (
	// Default values
	defaultObservationLRUSize    = 1000
	defaultObservationTTLMinutes = 10
	defaultImageTTLMinutes       = 60
)

// GetCacheConfig returns the cache configuration from environment variables or defaults
func GetCacheConfig() *CacheConfig {
	config := &CacheConfig{
		ObservationLRUSize:       getEnvInt("CACHE_OBSERVATION_LRU_SIZE", defaultObservationLRUSize),
		ObservationLRUTTLMinutes: getEnvInt("CACHE_OBSERVATION_TTL_MINUTES", defaultObservationTTLMinutes),
		ImageCacheBucket:         os.Getenv("CACHE_IMAGE_BUCKET"),
		ImageTTLMinutes:          getEnvInt("CACHE_IMAGE_TTL_MINUTES", defaultImageTTLMinutes),
		EnableLRUCache:           getEnvBool("CACHE_ENABLE_LRU", true),
		EnableImageCache:         getEnvBool("CACHE_ENABLE_IMAGE", true),
	}

	log.Debug().
		Int("ObservationLRUSize", config.ObservationLRUSize).
		Int("ObservationLRUTTLMinutes", config.ObservationLRUTTLMinutes).
		Str("ImageCacheBucket", config.ImageCacheBucket).
		Int("ImageTTLMinutes", config.ImageTTLMinutes).
		Bool("EnableLRUCache", config.EnableLRUCache).
		Bool("EnableImageCache", config.EnableImageCache).
		Msg("Cache configuration loaded")

	return config
}

// Helper methods for the CacheConfig struct
func (c *CacheConfig) GetObservationLRUTTL() time.Duration {
	return time.Duration(c.ObservationLRUTTLMinutes) * time.Minute
}

func (c *CacheConfig) GetImageTTL() time.Duration {
	return time.Duration(c.ImageTTLMinutes) * time.Minute
}

// Helper functions to get environment variables with defaults
func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val, exists := os.LookupEnv(key); exists {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
