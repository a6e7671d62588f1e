package buoy

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/driftline/buoywatch/internal/cache"
	"github.com/driftline/buoywatch/internal/config"
	"github.com/driftline/buoywatch/internal/models"
	"github.com/driftline/buoywatch/pkg/http/client"
)

// Service answers observation lookups across many stations, putting a
// shared TTL'd LRU in front of the per-handle lazy fetch so repeated
// requests for the same station and property reuse the last reading.
type Service struct {
	httpClient *client.Client
	cfg        *config.Config
	obsCache   *cache.ObservationCache
}

func NewService(httpClient *client.Client, cfg *config.Config, obsCache *cache.ObservationCache) *Service {
	if cfg == nil {
		cfg = config.LoadFromEnv()
	}
	if obsCache == nil {
		cacheConfig := config.GetCacheConfig()
		if cacheConfig.EnableLRUCache {
			var err error
			obsCache, err = cache.NewObservationCache(cacheConfig)
			if err != nil {
				log.Warn().Err(err).Msg("Creating observation cache failed, running uncached")
			}
		}
	}
	return &Service{
		httpClient: httpClient,
		cfg:        cfg,
		obsCache:   obsCache,
	}
}

// Latest returns the latest reading for a station and scalar property.
func (s *Service) Latest(ctx context.Context, stationID, property string) (*models.Observation, error) {
	if property == models.PropertyCurrents {
		return nil, fmt.Errorf("currents is a profile property, use Currents")
	}

	if s.obsCache != nil {
		if obs, ok := s.obsCache.Get(stationID, property); ok {
			log.Debug().Str("station_id", stationID).Str("property", property).Msg("Cache HIT for observation")
			return obs, nil
		}
		log.Debug().Str("station_id", stationID).Str("property", property).Msg("Cache MISS for observation, calling SOS API")
	}

	// A fresh handle per miss: handle memoization never expires, the
	// service-level TTL decides when to refetch.
	b := New(stationID, s.httpClient, s.cfg)
	obs, err := b.Observation(ctx, property)
	if err != nil {
		return nil, err
	}

	if s.obsCache != nil {
		s.obsCache.Add(stationID, property, obs)
	}

	return obs, nil
}

// Currents returns the latest current profile for a station. Profiles are
// multi-row and short-lived, so they bypass the observation cache.
func (s *Service) Currents(ctx context.Context, stationID string) ([]models.CurrentsBin, error) {
	b := New(stationID, s.httpClient, s.cfg)
	return b.Currents(ctx)
}
