package main

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/driftline/buoywatch/internal/api"
	"github.com/driftline/buoywatch/internal/buoy"
	"github.com/driftline/buoywatch/internal/config"
	"github.com/driftline/buoywatch/internal/models"
	"github.com/driftline/buoywatch/pkg/http/client"
)

var (
	obsService *buoy.Service
	setupOnce  sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()

		log.Info().Str("env", cfg.Environment).Msg("Environment")
		log.Debug().Msg("Debug logs enabled")

		httpClient := client.New(client.Options{
			Timeout:   cfg.HTTPTimeout,
			UserAgent: cfg.UserAgent,
		})
		obsService = buoy.NewService(httpClient, cfg, nil)
	})
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	params := request.QueryStringParameters

	log.Info().Msg("Handling observation request")

	stationID, property, err := api.ParseObservationRequest(params)
	if err != nil {
		return api.Error(err.Error(), http.StatusBadRequest)
	}

	if property == models.PropertyCurrents {
		bins, err := obsService.Currents(ctx, stationID)
		if err != nil {
			return observationError(stationID, err)
		}
		return api.Success(api.NewCurrentsResponse(stationID, bins))
	}

	obs, err := obsService.Latest(ctx, stationID, property)
	if err != nil {
		return observationError(stationID, err)
	}
	return api.Success(api.NewObservationResponse(stationID, property, obs))
}

func observationError(stationID string, err error) (events.APIGatewayProxyResponse, error) {
	var notFound *buoy.PropertyNotFoundError
	if errors.As(err, &notFound) {
		return api.Error(err.Error(), http.StatusNotFound)
	}
	log.Error().Err(err).Str("station_id", stationID).Msg("Observation lookup failed")
	return api.Error("Error fetching observation", http.StatusInternalServerError)
}

func main() {
	lambda.Start(handleRequest)
}
