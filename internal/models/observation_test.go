package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservationString(t *testing.T) {
	tests := []struct {
		name string
		obs  Observation
		want string
	}{
		{
			name: "unit tagged",
			obs:  Observation{Value: 1022.1, Unit: "hPa", Raw: "1022.1"},
			want: "1022.1 hPa",
		},
		{
			name: "raw only",
			obs:  Observation{Raw: "9;9;9;9"},
			want: "9;9;9;9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.obs.String())
		})
	}
}

func TestObservationJSON(t *testing.T) {
	obs := Observation{Value: 22.3, Unit: "c/s", Raw: "22.3"}

	data, err := json.Marshal(&obs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":22.3,"unit":"c/s","raw":"22.3"}`, string(data))

	// Unit omitted when absent
	data, err = json.Marshal(&Observation{Raw: "flagged"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":0,"raw":"flagged"}`, string(data))
}

func TestValidProperty(t *testing.T) {
	for _, p := range Properties {
		assert.True(t, ValidProperty(p), p)
	}

	assert.False(t, ValidProperty("cloud_cover"))
	assert.False(t, ValidProperty(""))
}

func TestCurrentsPropertiesIncludeBinColumns(t *testing.T) {
	assert.Contains(t, CurrentsProperties, "bin")
	assert.Contains(t, CurrentsProperties, "sea_water_speed")
	assert.Contains(t, CurrentsProperties, "quality_flags")
}
