package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSubmission(t *testing.T) {
	before := testutil.ToFloat64(scoreSubmissions.WithLabelValues("color", OutcomeAccepted))
	rejected := testutil.ToFloat64(scoreSubmissions.WithLabelValues("color", OutcomeRejected))

	RecordSubmission("color", OutcomeAccepted, 100.7998, 1)
	RecordSubmission("color", OutcomeRejected, 0, 0)

	assert.Equal(t, before+1, testutil.ToFloat64(scoreSubmissions.WithLabelValues("color", OutcomeAccepted)))
	assert.Equal(t, rejected+1, testutil.ToFloat64(scoreSubmissions.WithLabelValues("color", OutcomeRejected)))
}

func TestMiddlewareAndHandler(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/metrics", Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `cogni_http_requests_total{method="GET",route="/ping",status="200"}`)
}
