package models

import "fmt"

// Observation is a single sensor reading: a numeric value tagged with the
// unit the service reported it in. Fields without a unit-tagged header (for
// example quality_flags) carry only the raw text.
type Observation struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
	Raw   string  `json:"raw"`
}

func (o *Observation) String() string {
	if o.Unit == "" {
		return o.Raw
	}
	return fmt.Sprintf("%v %s", o.Value, o.Unit)
}

// CurrentsBin is one depth bin from an acoustic current profiler row,
// keyed by currents sub-property name.
type CurrentsBin map[string]*Observation
