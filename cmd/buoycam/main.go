package main

import (
	"context"
	"encoding/base64"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/driftline/buoywatch/internal/api"
	"github.com/driftline/buoywatch/internal/buoy"
	"github.com/driftline/buoywatch/internal/cache"
	"github.com/driftline/buoywatch/internal/config"
	"github.com/driftline/buoywatch/pkg/http/client"
)

// imageArchive is the subset of the S3 image cache the handler needs,
// swappable in tests.
type imageArchive interface {
	GetImage(ctx context.Context, stationID string) ([]byte, error)
	SaveImage(ctx context.Context, stationID string, data []byte) error
}

var (
	cfg        *config.Config
	httpClient *client.Client
	archive    imageArchive
	setupOnce  sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg = config.LoadFromEnv()
		cfg.InitializeLogging()

		log.Info().Str("env", cfg.Environment).Msg("Environment")

		httpClient = client.New(client.Options{
			Timeout:   cfg.HTTPTimeout,
			UserAgent: cfg.UserAgent,
		})

		cacheConfig := config.GetCacheConfig()
		if cacheConfig.EnableImageCache && cacheConfig.ImageCacheBucket != "" {
			s3Cache, err := cache.NewS3ImageCache(context.Background(), cacheConfig)
			if err != nil {
				log.Warn().Err(err).Msg("Creating S3 image cache failed, running without archive")
			} else {
				archive = s3Cache
			}
		}
	})
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	stationID := request.QueryStringParameters["station"]
	if stationID == "" {
		return api.Error("missing station parameter", http.StatusBadRequest)
	}

	log.Info().Str("station_id", stationID).Msg("Handling BuoyCam request")

	b := buoy.New(stationID, httpClient, cfg)
	data, err := b.Image(ctx)
	if err != nil {
		log.Warn().Err(err).Str("station_id", stationID).Msg("Live snapshot fetch failed")
		data = archivedImage(ctx, stationID)
		if data == nil {
			return api.Error("Snapshot unavailable", http.StatusNotFound)
		}
	} else if archive != nil {
		if saveErr := archive.SaveImage(ctx, stationID, data); saveErr != nil {
			log.Error().Err(saveErr).Str("station_id", stationID).Msg("Archiving snapshot failed")
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "image/jpeg",
			"Access-Control-Allow-Origin": "*",
		},
		Body:            base64.StdEncoding.EncodeToString(data),
		IsBase64Encoded: true,
	}, nil
}

func archivedImage(ctx context.Context, stationID string) []byte {
	if archive == nil {
		return nil
	}
	data, err := archive.GetImage(ctx, stationID)
	if err != nil {
		log.Error().Err(err).Str("station_id", stationID).Msg("Reading archived snapshot failed")
		return nil
	}
	return data
}

func main() {
	lambda.Start(handleRequest)
}
