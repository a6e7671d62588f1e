package buoy

import "fmt"

// SOSAPIError represents an error from the NDBC SOS service
type SOSAPIError struct {
	Message string
	Err     error
}

func (e *SOSAPIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("SOS API error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("SOS API error: %s", e.Message)
}

func (e *SOSAPIError) Unwrap() error {
	return e.Err
}

// NewSOSAPIError creates a new SOS API error
func NewSOSAPIError(message string, err error) *SOSAPIError {
	return &SOSAPIError{
		Message: message,
		Err:     err,
	}
}

// PropertyNotFoundError is returned when the service has no reading for the
// requested property: either it answered with an exception report or the
// result set was empty.
type PropertyNotFoundError struct {
	Station  string
	Property string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("no %s observation for station %s", e.Property, e.Station)
}
