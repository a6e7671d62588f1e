package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftline/buoywatch/internal/models"
)

func TestSuccess(t *testing.T) {
	tests := []struct {
		name         string
		response     interface{}
		responseType string
	}{
		{
			name: "observation response",
			response: NewObservationResponse("41012", models.PropertyAirPressure,
				&models.Observation{Value: 1022.1, Unit: "hPa", Raw: "1022.1"}),
			responseType: "observation",
		},
		{
			name: "currents response",
			response: NewCurrentsResponse("41012", []models.CurrentsBin{
				{"bin": &models.Observation{Value: 1, Unit: "count", Raw: "1"}},
			}),
			responseType: "currents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Success(tt.response)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, got.StatusCode)

			var resp APIResponse
			err = json.Unmarshal([]byte(got.Body), &resp)
			require.NoError(t, err)
			assert.Equal(t, tt.responseType, resp.ResponseType)

			// Verify CORS headers
			assert.Equal(t, "application/json", got.Headers["Content-Type"])
			assert.Equal(t, "*", got.Headers["Access-Control-Allow-Origin"])
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		statusCode int
	}{
		{
			name:       "not found",
			message:    "no winds observation for station 41012",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "server error",
			message:    "internal server error",
			statusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Error(tt.message, tt.statusCode)
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, got.StatusCode)

			var errorResp ErrorResponse
			err = json.Unmarshal([]byte(got.Body), &errorResp)
			require.NoError(t, err)
			assert.Equal(t, "error", errorResp.ResponseType)
			assert.Equal(t, tt.message, errorResp.Error)
		})
	}
}

func TestParseObservationRequest(t *testing.T) {
	tests := []struct {
		name         string
		params       map[string]string
		wantStation  string
		wantProperty string
		wantErr      bool
	}{
		{
			name: "valid request",
			params: map[string]string{
				"station":  "41012",
				"property": "air_pressure_at_sea_level",
			},
			wantStation:  "41012",
			wantProperty: "air_pressure_at_sea_level",
		},
		{
			name: "currents is a valid property",
			params: map[string]string{
				"station":  "41012",
				"property": "currents",
			},
			wantStation:  "41012",
			wantProperty: "currents",
		},
		{
			name:    "missing station",
			params:  map[string]string{"property": "winds"},
			wantErr: true,
		},
		{
			name:    "missing property",
			params:  map[string]string{"station": "41012"},
			wantErr: true,
		},
		{
			name: "unknown property",
			params: map[string]string{
				"station":  "41012",
				"property": "cloud_cover",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			station, property, err := ParseObservationRequest(tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.IsType(t, InvalidRequestError{}, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStation, station)
			assert.Equal(t, tt.wantProperty, property)
		})
	}
}
