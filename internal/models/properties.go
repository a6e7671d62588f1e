package models

// Observed properties of the NDBC SOS GetObservation operation. Latitude,
// longitude and observation time ride along on every response row and are
// not requested separately.
const (
	PropertyAirPressure   = "air_pressure_at_sea_level"
	PropertyAirTemp       = "air_temperature"
	PropertyCurrents      = "currents"
	PropertySeaFloorDepth = "sea_floor_depth_below_sea_surface"
	PropertyConductivity  = "sea_water_electrical_conductivity"
	PropertySalinity      = "sea_water_salinity"
	PropertyWaterTemp     = "sea_water_temperature"
	PropertyWaves         = "waves"
	PropertyWinds         = "winds"
)

// Properties lists every observed property the service accepts.
var Properties = []string{
	PropertyAirPressure,
	PropertyAirTemp,
	PropertyCurrents,
	PropertySeaFloorDepth,
	PropertyConductivity,
	PropertySalinity,
	PropertyWaterTemp,
	PropertyWaves,
	PropertyWinds,
}

// CurrentsProperties are the per-bin columns of a currents response row.
var CurrentsProperties = []string{
	"bin",
	"depth",
	"direction_of_sea_water_velocity",
	"sea_water_speed",
	"upward_sea_water_velocity",
	"error_velocity",
	"platform_orientation",
	"platform_pitch_angle",
	"platform_roll_angle",
	"sea_water_temperature",
	"pct_good_3_beam",
	"pct_good_4_beam",
	"pct_rejected",
	"pct_bad",
	"echo_intensity_beam1",
	"echo_intensity_beam2",
	"echo_intensity_beam3",
	"echo_intensity_beam4",
	"correlation_magnitude_beam1",
	"correlation_magnitude_beam2",
	"correlation_magnitude_beam3",
	"correlation_magnitude_beam4",
	"quality_flags",
}

// ValidProperty reports whether name is a known observed property.
func ValidProperty(name string) bool {
	for _, p := range Properties {
		if p == name {
			return true
		}
	}
	return false
}
