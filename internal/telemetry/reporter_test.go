// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/slipway/internal/logger"
	"github.com/MKhiriev/slipway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestReporter создаёт httpReporter, направленный на тестовый сервер
func newTestReporter(t *testing.T, statsURL string) Reporter {
	t.Helper()

	r, err := NewReporter(Config{StatsURL: statsURL}, logger.Nop())
	require.NoError(t, err)
	return r
}

func testEvent() models.UsageEvent {
	return models.UsageEvent{
		InstanceID: "instance-test-id",
		AppVersion: "1.2.3",
		OS:         "linux",
		Arch:       "amd64",
		Headless:   true,
	}
}

// ── Report ───────────────────────────────────────────────────────────────────

func TestReport_PostsEventAsJSON(t *testing.T) {
	want := testEvent()

	var got models.UsageEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	rep := newTestReporter(t, srv.URL)
	err := rep.Report(context.Background(), want)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReport_AcceptsNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	rep := newTestReporter(t, srv.URL)
	err := rep.Report(context.Background(), testEvent())

	require.NoError(t, err)
}

func TestReport_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("sink unavailable"))
	}))
	defer srv.Close()

	rep := newTestReporter(t, srv.URL)
	err := rep.Report(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 500")
	assert.Contains(t, err.Error(), "sink unavailable")
}

func TestReport_EmptyErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	rep := newTestReporter(t, srv.URL)
	err := rep.Report(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), http.StatusText(http.StatusBadGateway))
}

func TestReport_UnreachableSink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // закрываем сразу — соединение будет отклонено

	rep := newTestReporter(t, srv.URL)
	err := rep.Report(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage report request")
}

func TestReport_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := newTestReporter(t, srv.URL)
	err := rep.Report(ctx, testEvent())

	require.Error(t, err)
}

// ── NewReporter ──────────────────────────────────────────────────────────────

func TestNewReporter_EmptyURL(t *testing.T) {
	_, err := NewReporter(Config{StatsURL: ""}, logger.Nop())
	require.Error(t, err)
}

func TestNewReporter_DefaultTimeout(t *testing.T) {
	rep, err := NewReporter(Config{StatsURL: "https://stats.example.com/v1/launch"}, logger.Nop())
	require.NoError(t, err)

	h := rep.(*httpReporter)
	assert.Equal(t, 15*time.Second, h.client.GetClient().Timeout)
}

func TestNewReporter_CustomTimeout(t *testing.T) {
	rep, err := NewReporter(Config{
		StatsURL: "https://stats.example.com/v1/launch",
		Timeout:  3 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	h := rep.(*httpReporter)
	assert.Equal(t, 3*time.Second, h.client.GetClient().Timeout)
}

// ── normalizeStatsURL ────────────────────────────────────────────────────────

func TestNormalizeStatsURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"full url", "https://stats.example.com/v1/launch", "https://stats.example.com/v1/launch", false},
		{"no scheme", "stats.example.com/v1/launch", "https://stats.example.com/v1/launch", false},
		{"explicit http", "http://localhost:9999/launch", "http://localhost:9999/launch", false},
		{"trailing slash", "https://stats.example.com/", "https://stats.example.com", false},
		{"whitespace", "  https://stats.example.com  ", "https://stats.example.com", false},
		{"empty", "", "", true},
		{"no host", "https://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeStatsURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// ── Nop ──────────────────────────────────────────────────────────────────────

func TestNop_DiscardsEvents(t *testing.T) {
	err := Nop().Report(context.Background(), testEvent())
	assert.NoError(t, err)
}
