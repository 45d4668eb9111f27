package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/slipway/internal/logger"
	"github.com/MKhiriev/slipway/internal/utils"
	"github.com/MKhiriev/slipway/models"
	"github.com/go-resty/resty/v2"
)

// Config holds the settings of the HTTP-backed Reporter.
type Config struct {
	// StatsURL is the full URL of the statistics endpoint events are
	// POSTed to.
	StatsURL string

	// Timeout bounds a single delivery attempt. Zero or negative means the
	// 15 second default.
	Timeout time.Duration
}

type httpReporter struct {
	client   *utils.HTTPClient
	statsURL string

	logger *logger.Logger
}

// NewReporter constructs the HTTP implementation of [Reporter]. It normalises
// and validates the statistics URL from cfg.StatsURL and configures the
// underlying HTTP client with the request timeout.
//
// Returns an error if cfg.StatsURL is empty or cannot be parsed as a valid
// URL.
func NewReporter(cfg Config, logger *logger.Logger) (Reporter, error) {
	statsURL, err := normalizeStatsURL(cfg.StatsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid stats url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.Timeout)

	return &httpReporter{client: client, statsURL: statsURL, logger: logger}, nil
}

func normalizeStatsURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	// statistics sinks live on the public internet, so the scheme
	// defaults to https
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Report implements [Reporter]. It POSTs the event as JSON to the statistics
// endpoint. Returns an error if the request fails or the endpoint responds
// with a non-2xx status.
func (h *httpReporter) Report(ctx context.Context, event models.UsageEvent) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(h.statsURL)
	if err != nil {
		return fmt.Errorf("usage report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Str("instance_id", event.InstanceID).Msg("usage event delivered")
	return nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

type nopReporter struct{}

// Nop returns a Reporter that silently discards every event. It serves
// deployments that have not opted in to usage statistics.
func Nop() Reporter {
	return nopReporter{}
}

func (nopReporter) Report(context.Context, models.UsageEvent) error {
	return nil
}
