package buoy

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/driftline/buoywatch/internal/models"
)

// A GetObservation response looks like:
//
//	station_id,sensor_id,"latitude (degree)","longitude (degree)",date_time,"depth (m)","air_pressure_at_sea_level (hPa)"
//	urn:ioos:station:wmo:41012,urn:ioos:sensor:wmo:41012::baro1,30.04,-80.55,2014-02-19T12:50:00Z,0.00,1022.1
//
// Units ride along inside the column headers, so a row keeps its header
// order for substring matching against property names.
type row struct {
	headers []string
	fields  map[string]string
}

// unitPattern matches the " (unit)" suffix NDBC appends to column headers.
var unitPattern = regexp.MustCompile(` \(([^)]+)\)`)

// observationQuery builds the fixed SOS GetObservation parameter set for one
// station and observed property.
func observationQuery(stationID, property string) url.Values {
	return url.Values{
		"request":          {"GetObservation"},
		"service":          {"SOS"},
		"version":          {"1.0.0"},
		"responseformat":   {"text/csv"},
		"offering":         {"urn:ioos:station:wmo:" + stationID},
		"observedproperty": {property},
		"eventtime":        {"latest"},
	}
}

// decodeRows parses CSV response text into header-keyed rows. Short records
// are tolerated; missing trailing fields simply stay absent.
func decodeRows(body []byte) ([]row, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	rows := make([]row, 0, len(records)-1)
	for _, record := range records[1:] {
		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				fields[h] = record[i]
			}
		}
		rows = append(rows, row{headers: headers, fields: fields})
	}

	return rows, nil
}

// parseUnit extracts the reading for property from a response row. The first
// header containing the property name as a substring wins. Headers carrying
// a " (unit)" suffix yield a unit-tagged Observation; headers without one
// yield the raw field text. An empty value under a unit-tagged header, or no
// matching header at all, yields nil.
func parseUnit(property string, r row) *models.Observation {
	var header string
	for _, h := range r.headers {
		if strings.Contains(h, property) {
			header = h
			break
		}
	}
	if header == "" {
		return nil
	}

	value := r.fields[header]
	match := unitPattern.FindStringSubmatch(header)
	if match == nil {
		return &models.Observation{Raw: value}
	}
	if value == "" {
		return nil
	}

	obs := &models.Observation{Unit: match[1], Raw: value}
	if parsed, err := strconv.ParseFloat(value, 64); err == nil {
		obs.Value = parsed
	}
	return obs
}

// parseObservationTime parses the date_time column. NDBC timestamps are
// normally UTC with a trailing Z, but a bare local timestamp shows up
// occasionally.
func parseObservationTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
