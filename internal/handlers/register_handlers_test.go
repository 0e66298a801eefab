package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/iso4217/internal/adapters/isoxml"
	"github.com/SscSPs/iso4217/internal/core/services"
	"github.com/SscSPs/iso4217/internal/handlers"
	"github.com/SscSPs/iso4217/internal/middleware"
	"github.com/SscSPs/iso4217/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	container := services.NewServiceContainer(cfg, isoxml.DefaultSources(), nil)
	require.NoError(t, handlers.RegisterRoutes(r, cfg, container))
	return r
}

func serve(r *gin.Engine, method, url string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRoutes_EndToEnd(t *testing.T) {
	cfg := &config.Config{UnitsEnabled: true, RateLimit: "1000-M", CORSAllowedOrigins: []string{"*"}}
	r := newTestRouter(t, cfg)

	w := serve(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = serve(r, http.MethodGet, "/api/v1/currencies/eur", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"displayName":"Euro"`)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))

	w = serve(r, http.MethodGet, "/api/v1/currencies/number/100", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/api/v1/units/convert?amount=1.5&from=hryvnias&to=UAHs", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"text":"150 UAHs"`)

	w = serve(r, http.MethodGet, "/api/v1/meta", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"0.6.240625"`)

	w = serve(r, http.MethodGet, "/api/v1/currencies/JPY", map[string]string{"Origin": "https://example.org"})
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRegisterRoutes_UnitsDisabled(t *testing.T) {
	cfg := &config.Config{UnitsEnabled: false, RateLimit: "1000-M"}
	r := newTestRouter(t, cfg)

	w := serve(r, http.MethodGet, "/api/v1/units/convert?amount=1&from=USDs&to=USD", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = serve(r, http.MethodGet, "/api/v1/meta", nil)
	assert.Contains(t, w.Body.String(), `"unitsEnabled":false`)
}

func TestRegisterRoutes_RateLimited(t *testing.T) {
	cfg := &config.Config{RateLimit: "2-M"}
	r := newTestRouter(t, cfg)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/currencies/USD", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/currencies/USD", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/api/v1/currencies/USD", nil).Code)

	// health checks are never throttled
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", nil).Code)
}

func TestRegisterRoutes_InvalidRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{RateLimit: "fast"}
	container := services.NewServiceContainer(cfg, isoxml.DefaultSources(), nil)

	err := handlers.RegisterRoutes(gin.New(), cfg, container)
	assert.Error(t, err)
}

func TestRegisterRoutes_SwaggerOnlyOutsideProduction(t *testing.T) {
	dev := newTestRouter(t, &config.Config{RateLimit: "1000-M"})
	assert.Equal(t, http.StatusOK, serve(dev, http.MethodGet, "/swagger/doc.json", nil).Code)

	prod := newTestRouter(t, &config.Config{RateLimit: "1000-M", IsProduction: true})
	assert.Equal(t, http.StatusNotFound, serve(prod, http.MethodGet, "/swagger/doc.json", nil).Code)
}
