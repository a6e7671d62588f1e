package buoy

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/driftline/buoywatch/internal/config"
	"github.com/driftline/buoywatch/internal/models"
	"github.com/driftline/buoywatch/pkg/http/client"
)

// Buoy is a handle on one NDBC station, identified by its WMO id. Readings
// are fetched on first access and memoized for the lifetime of the handle;
// Refresh drops everything so the next access refetches.
//
// A handle is not safe for concurrent use.
type Buoy struct {
	id         string
	httpClient *client.Client
	cfg        *config.Config

	observations map[string]*models.Observation
	currents     []models.CurrentsBin
	currentsSet  bool

	stationURN string
	sensorURN  string
	lat        *float64
	lon        *float64
	obsTime    *time.Time
	depth      *models.Observation
}

func New(stationID string, httpClient *client.Client, cfg *config.Config) *Buoy {
	if cfg == nil {
		cfg = config.LoadFromEnv()
	}
	if httpClient == nil {
		httpClient = client.New(client.Options{
			Timeout:   cfg.HTTPTimeout,
			UserAgent: cfg.UserAgent,
		})
	}
	return &Buoy{
		id:           stationID,
		httpClient:   httpClient,
		cfg:          cfg,
		observations: make(map[string]*models.Observation),
	}
}

// ID returns the WMO station id the handle was created with.
func (b *Buoy) ID() string {
	return b.id
}

// Refresh drops every cached reading and the incidental row metadata.
func (b *Buoy) Refresh() {
	b.observations = make(map[string]*models.Observation)
	b.currents = nil
	b.currentsSet = false
	b.stationURN = ""
	b.sensorURN = ""
	b.lat, b.lon = nil, nil
	b.obsTime = nil
	b.depth = nil
}

// Observation returns the reading for an observed property, fetching it on
// first access. A successful fetch is cached, including readings the service
// reported as empty; a failed fetch is not, so the next access retries.
func (b *Buoy) Observation(ctx context.Context, property string) (*models.Observation, error) {
	if property == models.PropertyCurrents {
		return nil, fmt.Errorf("currents is a profile property, use Currents")
	}

	if obs, ok := b.observations[property]; ok {
		log.Trace().Str("station_id", b.id).Str("property", property).Msg("Observation cache hit")
		return obs, nil
	}

	obs, err := b.fetch(ctx, property)
	if err != nil {
		return nil, err
	}

	b.observations[property] = obs
	return obs, nil
}

// Currents returns the latest current-profiler reading as one CurrentsBin
// per depth bin. Like scalar observations it is fetched once and memoized.
func (b *Buoy) Currents(ctx context.Context) ([]models.CurrentsBin, error) {
	if b.currentsSet {
		return b.currents, nil
	}

	rows, err := b.fetchRows(ctx, models.PropertyCurrents)
	if err != nil {
		return nil, err
	}

	bins := make([]models.CurrentsBin, len(rows))
	for i, r := range rows {
		bin := make(models.CurrentsBin, len(models.CurrentsProperties))
		for _, prop := range models.CurrentsProperties {
			bin[prop] = parseUnit(prop, r)
		}
		bins[i] = bin
	}

	b.currents = bins
	b.currentsSet = true
	return bins, nil
}

// Typed accessors, one per observed property.

func (b *Buoy) AirPressureAtSeaLevel(ctx context.Context) (*models.Observation, error) {
	return b.Observation(ctx, models.PropertyAirPressure)
}

func (b *Buoy) AirTemperature(ctx context.Context) (*models.Observation, error) {
	return b.Observation(ctx, models.PropertyAirTemp)
}

func (b *Buoy) SeaFloorDepthBelowSeaSurface(ctx context.Context) (*models.Observation, error) {
	return b.Observation(ctx, models.PropertySeaFloorDepth)
}

func (b *Buoy) SeaWaterElectricalConductivity(ctx context.Context) (*models.Observation, error) {
	return b.Observation(ctx, models.PropertyConductivity)
}

func (b *Buoy) SeaWaterSalinity(ctx context.Context) (*models.Observation, error) {
	return b.Observation(ctx, models.PropertySalinity)
}

func (b *Buoy) SeaWaterTemperature(ctx context.Context) (*models.Observation, error) {
	return b.Observation(ctx, models.PropertyWaterTemp)
}

func (b *Buoy) Waves(ctx context.Context) (*models.Observation, error) {
	return b.Observation(ctx, models.PropertyWaves)
}

func (b *Buoy) Winds(ctx context.Context) (*models.Observation, error) {
	return b.Observation(ctx, models.PropertyWinds)
}

// Coords returns the station position reported on the last fetched row.
// ok is false until a row has been fetched, or when the row carried
// malformed coordinates.
func (b *Buoy) Coords() (lat, lon float64, ok bool) {
	if b.lat == nil || b.lon == nil {
		return 0, 0, false
	}
	return *b.lat, *b.lon, true
}

// ObservationTime returns the timestamp of the last fetched row, or nil.
func (b *Buoy) ObservationTime() *time.Time {
	return b.obsTime
}

// SensorDepth returns the sensor depth reported on the last fetched row, or nil.
func (b *Buoy) SensorDepth() *models.Observation {
	return b.depth
}

// StationURN returns the IOOS station URN from the last fetched row.
func (b *Buoy) StationURN() string {
	return b.stationURN
}

// SensorURN returns the IOOS sensor URN from the last fetched row.
func (b *Buoy) SensorURN() string {
	return b.sensorURN
}

func (b *Buoy) fetch(ctx context.Context, property string) (*models.Observation, error) {
	rows, err := b.fetchRows(ctx, property)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &PropertyNotFoundError{Station: b.id, Property: property}
	}

	first := rows[0]
	b.absorbRow(first)

	return parseUnit(property, first), nil
}

func (b *Buoy) fetchRows(ctx context.Context, property string) ([]row, error) {
	query := observationQuery(b.id, property)

	log.Debug().Str("station_id", b.id).Str("property", property).Msg("Fetching observation from SOS")

	resp, err := b.httpClient.Get(ctx, b.cfg.SOSBaseURL+"?"+query.Encode())
	if err != nil {
		return nil, NewSOSAPIError("fetching observation", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, NewSOSAPIError(fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	// The service reports unknown stations and properties as an OWS
	// exception document instead of a non-200 status.
	if bytes.Contains(resp.Body, []byte("ExceptionReport")) {
		return nil, &PropertyNotFoundError{Station: b.id, Property: property}
	}

	rows, err := decodeRows(resp.Body)
	if err != nil {
		return nil, NewSOSAPIError("decoding observation CSV", err)
	}
	return rows, nil
}

// absorbRow caches the incidental fields every response row carries:
// station/sensor URNs, position, timestamp and sensor depth. Position and
// timestamp stand or fall together; if any of them is malformed all three
// reset to unset.
func (b *Buoy) absorbRow(r row) {
	b.stationURN = r.fields["station_id"]
	b.sensorURN = r.fields["sensor_id"]

	lat, latErr := strconv.ParseFloat(r.fields["latitude (degree)"], 64)
	lon, lonErr := strconv.ParseFloat(r.fields["longitude (degree)"], 64)
	obsTime, timeErr := parseObservationTime(r.fields["date_time"])

	if latErr != nil || lonErr != nil || timeErr != nil {
		b.lat, b.lon = nil, nil
		b.obsTime = nil
	} else {
		b.lat, b.lon = &lat, &lon
		b.obsTime = &obsTime
	}

	b.depth = parseUnit("depth", r)
}
