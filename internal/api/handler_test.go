package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralhq/github-wrapped/internal/domain"
	apperrors "github.com/astralhq/github-wrapped/internal/errors"
)

type stubCollector struct {
	snapshot *domain.ProfileSnapshot
	err      error
	activity domain.ActivityStats
}

func (s *stubCollector) FetchProfile(ctx context.Context, login string) (*domain.ProfileSnapshot, error) {
	return s.snapshot, s.err
}

func (s *stubCollector) FetchActivityStats(ctx context.Context, login string, repos []domain.Repository) domain.ActivityStats {
	return s.activity
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRoutes(h)
}

func doRequest(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetWrappedMissingUsername(t *testing.T) {
	router := newTestRouter(NewHandler(&stubCollector{}, 60, 3600, nil))

	w, body := doRequest(t, router, "/api/wrapped")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestGetWrappedMissingCredential(t *testing.T) {
	router := newTestRouter(NewHandler(nil, 60, 3600, nil))

	// 401 wins regardless of username presence.
	for _, path := range []string{"/api/wrapped", "/api/wrapped?username=octocat"} {
		w, body := doRequest(t, router, path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path %s", path)
		assert.Equal(t, "CONFIGURATION_ERROR", body["error"], "path %s", path)
		assert.NotEmpty(t, body["message"])
	}
}

func TestGetWrappedAcceptsUserAlias(t *testing.T) {
	stub := &stubCollector{
		snapshot: &domain.ProfileSnapshot{Login: "octocat"},
		activity: domain.ActivityStats{PeakDay: 0, PeakHour: 14, MaxCommits: 8},
	}
	router := newTestRouter(NewHandler(stub, 60, 3600, nil))

	w, body := doRequest(t, router, "/api/wrapped?user=octocat")
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]interface{})
	viewer := data["viewer"].(map[string]interface{})
	assert.Equal(t, "octocat", viewer["login"])

	activity := viewer["activityStats"].(map[string]interface{})
	assert.Equal(t, float64(0), activity["peakDay"])
	assert.Equal(t, float64(14), activity["peakHour"])
	assert.Equal(t, float64(8), activity["maxCommits"])
}

func TestGetWrappedUpstreamFailure(t *testing.T) {
	stub := &stubCollector{
		err: apperrors.NewUpstreamError("profile query returned status 502", nil),
	}
	router := newTestRouter(NewHandler(stub, 60, 3600, nil))

	w, body := doRequest(t, router, "/api/wrapped?username=octocat")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "UPSTREAM_ERROR", body["error"])
}

func TestGetSummary(t *testing.T) {
	snapshot := &domain.ProfileSnapshot{Login: "octocat"}
	snapshot.Repositories.Nodes = []domain.Repository{
		{Name: "a", StargazerCount: 3},
		{Name: "b", StargazerCount: 9},
	}
	stub := &stubCollector{
		snapshot: snapshot,
		activity: domain.ActivityStats{PeakDay: 3, PeakHour: 14, MaxCommits: 1},
	}
	router := newTestRouter(NewHandler(stub, 60, 3600, nil))

	w, body := doRequest(t, router, "/api/wrapped/summary?username=octocat")
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["totalStarsReceived"])
	loved := data["mostLovedRepo"].(map[string]interface{})
	assert.Equal(t, "b", loved["name"])
	assert.Equal(t, "Afternoon Builder", data["peakTimeLabel"])
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(NewHandler(nil, 60, 3600, nil))

	w, body := doRequest(t, router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(NewHandler(nil, 60, 3600, nil))

	w, _ := doRequest(t, router, "/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
