package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/slipway/internal/logger"
	"github.com/MKhiriev/slipway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithVersion builds a Handler whose build info carries the given
// version. All other fields are irrelevant for getVersion.
func newHandlerWithVersion(t *testing.T, version string) *Handler {
	t.Helper()
	build := models.NewAppBuildInfo(version, "N/A", "N/A")
	return NewHandler(build, "instance-test-id", "", true, logger.Nop())
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestGetVersion_WritesVersion(t *testing.T) {
	const want = "1.2.3"

	h := newHandlerWithVersion(t, want)

	req := httptest.NewRequest(http.MethodGet, "/_slipway/version", nil)
	rec := httptest.NewRecorder()

	h.getVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
}

func TestGetVersion_EmptyVersion(t *testing.T) {
	h := newHandlerWithVersion(t, "")

	req := httptest.NewRequest(http.MethodGet, "/_slipway/version", nil)
	rec := httptest.NewRecorder()

	h.getVersion(rec, req)

	assert.Equal(t, "", rec.Body.String())
}

func TestGetVersion_VersionWithSpecialChars(t *testing.T) {
	const want = "v2.0.0-beta+build.42"

	h := newHandlerWithVersion(t, want)

	req := httptest.NewRequest(http.MethodGet, "/_slipway/version", nil)
	rec := httptest.NewRecorder()

	h.getVersion(rec, req)

	assert.Equal(t, want, rec.Body.String())
}

func TestGetVersion_ViaRouter(t *testing.T) {
	const want = "3.0.0"

	h := newHandlerWithVersion(t, want)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/_slipway/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
}

func TestGetVersion_ContentTypeNotJSON(t *testing.T) {
	h := newHandlerWithVersion(t, "1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/_slipway/version", nil)
	rec := httptest.NewRecorder()

	h.getVersion(rec, req)

	// the version endpoint writes plain text, not JSON
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}
