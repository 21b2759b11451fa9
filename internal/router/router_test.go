package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tempstats/internal/logging"
	"github.com/sartorproj/tempstats/internal/models"
	"github.com/sartorproj/tempstats/internal/services"
)

func newApp(t *testing.T, initial []float64) *fiber.App {
	t.Helper()
	logger := logging.NewNop()
	svc, err := services.NewSeriesService(logger, initial)
	require.NoError(t, err)
	return New(logger, svc)
}

func do(t *testing.T, app *fiber.App, method, target, body string, out interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	app := newApp(t, nil)

	var health models.HealthResponse
	status := do(t, app, http.MethodGet, "/health", "", &health)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "healthy", health.Status)
	assert.NotEmpty(t, health.Timestamp)
}

func TestQueries(t *testing.T) {
	app := newApp(t, []float64{3.0, -5.0, 1.0, 5.0})

	tests := []struct {
		name     string
		target   string
		expected []float64
	}{
		{"sorted", "/api/v1/temps/sorted", []float64{-5, 1, 3, 5}},
		{"less than", "/api/v1/temps/less-than?threshold=2", []float64{-5, 1}},
		{"greater than", "/api/v1/temps/greater-than?threshold=2", []float64{3, 5}},
		{"in range", "/api/v1/temps/in-range?lower=0&upper=4", []float64{3, 1}},
		{"inverted range", "/api/v1/temps/in-range?lower=4&upper=0", []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp models.TempsResponse
			status := do(t, app, http.MethodGet, tt.target, "", &resp)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, len(tt.expected), resp.Count)
			assert.Equal(t, tt.expected, resp.Temps)
		})
	}
}

func TestQueries_BadParameters(t *testing.T) {
	app := newApp(t, []float64{1})

	for _, target := range []string{
		"/api/v1/temps/less-than",
		"/api/v1/temps/greater-than?threshold=warm",
		"/api/v1/temps/in-range?lower=1",
		"/api/v1/temps/closest?target=x",
	} {
		var resp models.ErrorResponse
		status := do(t, app, http.MethodGet, target, "", &resp)
		assert.Equal(t, fiber.StatusBadRequest, status, target)
		assert.Equal(t, services.CodeInvalidInput, resp.Error.Code, target)
	}
}

func TestClosest(t *testing.T) {
	app := newApp(t, []float64{3.0, -5.0, 1.0, 5.0})

	var resp models.ValueResponse
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/api/v1/temps/closest", "", &resp))
	assert.Equal(t, "closest_to_zero", resp.Name)
	assert.Equal(t, 1.0, resp.Value)

	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/api/v1/temps/closest?target=6", "", &resp))
	assert.Equal(t, "closest_to_value", resp.Name)
	assert.Equal(t, 5.0, resp.Value)
}

func TestSummaryAndStatistics(t *testing.T) {
	app := newApp(t, []float64{3.0, -5.0, 1.0, 5.0})

	var summary models.SummaryResponse
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/api/v1/stats", "", &summary))
	assert.InDelta(t, 1.0, summary.AvgTemp, 1e-5)
	assert.InDelta(t, 3.7416573867739413, summary.DevTemp, 1e-5)
	assert.Equal(t, -5.0, summary.MinTemp)
	assert.Equal(t, 5.0, summary.MaxTemp)
	assert.Equal(t, "TempSummaryStatistics { avgTemp=1.00, devTemp=3.74, minTemp=-5.00, maxTemp=5.00 }", summary.Text)

	var value models.ValueResponse
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/api/v1/stats/max", "", &value))
	assert.Equal(t, "max", value.Name)
	assert.Equal(t, 5.0, value.Value)

	var errResp models.ErrorResponse
	assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodGet, "/api/v1/stats/median", "", &errResp))
	assert.Equal(t, services.CodeUnknownStat, errResp.Error.Code)
}

func TestAddAndReset(t *testing.T) {
	app := newApp(t, nil)

	var size models.SizeResponse
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodPost, "/api/v1/temps", `{"temps":[1.0,2.0]}`, &size))
	assert.Equal(t, 2, size.Size)

	var errResp models.ErrorResponse
	status := do(t, app, http.MethodPost, "/api/v1/temps", `{"temps":[3.0,-274.0]}`, &errResp)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, services.CodeOutOfRange, errResp.Error.Code)

	var series models.SeriesResponse
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/api/v1/temps", "", &series))
	assert.Equal(t, []float64{1, 2}, series.Temps)
	assert.Equal(t, 2, series.Size)

	status = do(t, app, http.MethodPost, "/api/v1/temps", `{}`, &errResp)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, services.CodeInvalidInput, errResp.Error.Code)

	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodDelete, "/api/v1/temps", "", &size))
	assert.Equal(t, 0, size.Size)

	var temps models.TempsResponse
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/api/v1/temps/less-than?threshold=0", "", &temps))
	assert.Empty(t, temps.Temps)
}

func TestEmptySeries(t *testing.T) {
	app := newApp(t, nil)

	for _, target := range []string{"/api/v1/stats", "/api/v1/stats/average", "/api/v1/temps/closest"} {
		var resp models.ErrorResponse
		status := do(t, app, http.MethodGet, target, "", &resp)
		assert.Equal(t, fiber.StatusConflict, status, target)
		assert.Equal(t, services.CodeEmptySeries, resp.Error.Code, target)
	}

	var sorted models.TempsResponse
	assert.Equal(t, fiber.StatusOK, do(t, app, http.MethodGet, "/api/v1/temps/sorted", "", &sorted))
	assert.Equal(t, 0, sorted.Count)
}

func TestNotFound(t *testing.T) {
	app := newApp(t, nil)

	var resp models.ErrorResponse
	assert.Equal(t, fiber.StatusNotFound, do(t, app, http.MethodGet, "/nope", "", &resp))
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "/nope", resp.Error.Path)
}
