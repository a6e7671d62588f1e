package buoy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/rs/zerolog/log"
)

// ImageURL returns the BuoyCam snapshot URL for this station.
func (b *Buoy) ImageURL() string {
	return b.cfg.BuoyCamBaseURL + "?station=" + url.QueryEscape(b.id)
}

// Image fetches the latest BuoyCam snapshot and returns the raw image bytes.
// Snapshots are never cached on the handle; every call refetches.
func (b *Buoy) Image(ctx context.Context) ([]byte, error) {
	log.Debug().Str("station_id", b.id).Msg("Fetching BuoyCam snapshot")

	resp, err := b.httpClient.Get(ctx, b.ImageURL())
	if err != nil {
		return nil, fmt.Errorf("fetching BuoyCam image: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching BuoyCam image: unexpected status %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// WriteImage fetches the latest snapshot and writes it to w.
func (b *Buoy) WriteImage(ctx context.Context, w io.Writer) error {
	data, err := b.Image(ctx)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	return nil
}

// SaveImage fetches the latest snapshot and writes it to a file.
func (b *Buoy) SaveImage(ctx context.Context, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}

	if err := b.WriteImage(ctx, f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing image file: %w", err)
	}
	return nil
}
