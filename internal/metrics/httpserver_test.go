package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNewHTTPServerCollector(t *testing.T) {
	_, provider := newTestMeter(t)

	collector, err := NewHTTPServerCollector(provider.Meter("test"))

	require.NoError(t, err)
	assert.NotNil(t, collector.requestCount)
	assert.NotNil(t, collector.requestDuration)
}

func TestHTTPServerCollector_Middleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		expectedRoute  string
		expectedStatus int
	}{
		{
			name:           "relay route with upstream status",
			method:         http.MethodPost,
			path:           "/send-notification",
			expectedRoute:  "/send-notification",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "static route",
			method:         http.MethodGet,
			path:           "/some-endpoint",
			expectedRoute:  "/some-endpoint",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown path is labelled unmatched",
			method:         http.MethodGet,
			path:           "/does-not-exist/42",
			expectedRoute:  unmatchedRoute,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, provider := newTestMeter(t)
			collector, err := NewHTTPServerCollector(provider.Meter("test"))
			require.NoError(t, err)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(collector.Middleware())
			router.POST("/send-notification", func(c *gin.Context) {
				c.Status(http.StatusUnauthorized)
			})
			router.GET("/some-endpoint", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			metrics := collect(t, reader)

			requests := findMetric(t, metrics, "http.server.requests").Data.(metricdata.Sum[int64])
			require.Len(t, requests.DataPoints, 1)
			dp := requests.DataPoints[0]
			assert.Equal(t, int64(1), dp.Value)

			route, ok := dp.Attributes.Value(attribute.Key("http.route"))
			require.True(t, ok)
			assert.Equal(t, tt.expectedRoute, route.AsString())

			status, ok := dp.Attributes.Value(attribute.Key("http.status_code"))
			require.True(t, ok)
			assert.Equal(t, int64(tt.expectedStatus), status.AsInt64())

			duration := findMetric(t, metrics, "http.server.duration").Data.(metricdata.Histogram[float64])
			require.Len(t, duration.DataPoints, 1)
			assert.GreaterOrEqual(t, duration.DataPoints[0].Sum, 0.0)
		})
	}
}

func TestHTTPServerCollector_Middleware_MultipleRequests(t *testing.T) {
	reader, provider := newTestMeter(t)
	collector, err := NewHTTPServerCollector(provider.Meter("test"))
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(collector.Middleware())
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	numRequests := 5
	for i := 0; i < numRequests; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	requests := findMetric(t, collect(t, reader), "http.server.requests").Data.(metricdata.Sum[int64])

	var total int64
	for _, dp := range requests.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(numRequests), total)
}
