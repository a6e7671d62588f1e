package api

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/driftline/buoywatch/internal/models"
)

type APIResponse struct {
	ResponseType string `json:"responseType"`
}

type ObservationResponse struct {
	APIResponse
	StationID   string              `json:"stationId"`
	Property    string              `json:"property"`
	Observation *models.Observation `json:"observation"`
}

type CurrentsResponse struct {
	APIResponse
	StationID string               `json:"stationId"`
	Bins      []models.CurrentsBin `json:"bins"`
}

type ErrorResponse struct {
	APIResponse
	Error string `json:"error"`
}

func NewObservationResponse(stationID, property string, obs *models.Observation) *ObservationResponse {
	return &ObservationResponse{
		APIResponse: APIResponse{ResponseType: "observation"},
		StationID:   stationID,
		Property:    property,
		Observation: obs,
	}
}

func NewCurrentsResponse(stationID string, bins []models.CurrentsBin) *CurrentsResponse {
	return &CurrentsResponse{
		APIResponse: APIResponse{ResponseType: "currents"},
		StationID:   stationID,
		Bins:        bins,
	}
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		APIResponse: APIResponse{ResponseType: "error"},
		Error:       message,
	}
}

// Response helpers
func Success(body interface{}) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Error("Internal Server Error", http.StatusInternalServerError)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(jsonBody),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(NewErrorResponse(message))

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}

// Parameter parsing helpers
func ParseObservationRequest(params map[string]string) (string, string, error) {
	stationID, hasStation := params["station"]
	if !hasStation || stationID == "" {
		return "", "", InvalidRequestError{Message: "missing station parameter"}
	}

	property, hasProperty := params["property"]
	if !hasProperty || property == "" {
		return "", "", InvalidRequestError{Message: "missing property parameter"}
	}

	if !models.ValidProperty(property) {
		return "", "", InvalidRequestError{Message: "unknown property: " + property}
	}

	return stationID, property, nil
}

type InvalidRequestError struct {
	Message string
}

func (e InvalidRequestError) Error() string {
	return e.Message
}
