package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
	"github.com/digipants/quicksquad-api/internal/handler/http/middleware"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupGeoRouter(rewrite bool) *gin.Engine {
	r := gin.New()
	geo := middleware.NewGeoRouter("IN", rewrite)
	r.Use(geo.Handler(r))
	landing := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) { c.String(http.StatusOK, name) }
	}
	r.GET("/", landing("home"))
	r.GET("/au", landing("au"))
	r.GET("/us", landing("us"))
	r.GET("/pricing", landing("pricing"))
	r.GET("/metrics", landing("metrics"))
	return r
}

func countryCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.CountryCookieName {
			return c
		}
	}
	return nil
}

func TestGeoRouter_PathHintWinsOverGeoHint(t *testing.T) {
	r := setupGeoRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/au", nil)
	req.Header.Set("CF-IPCountry", "US")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "AU", w.Header().Get(middleware.CountryHeaderName))
	cookie := countryCookie(w)
	require.NotNil(t, cookie)
	assert.Equal(t, "AU", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}

func TestGeoRouter_USPathHint(t *testing.T) {
	r := setupGeoRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/us", nil)
	req.Header.Set("CF-IPCountry", "AU")
	r.ServeHTTP(w, req)

	assert.Equal(t, "US", w.Header().Get(middleware.CountryHeaderName))
	assert.Equal(t, "us", w.Body.String())
}

func TestGeoRouter_PlainGeoHint(t *testing.T) {
	r := setupGeoRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pricing", nil)
	req.Header.Set("CF-IPCountry", "AU")
	r.ServeHTTP(w, req)

	assert.Equal(t, "AU", w.Header().Get(middleware.CountryHeaderName))
}

func TestGeoRouter_StructuredGeoHint(t *testing.T) {
	r := setupGeoRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Geo", `{"country":{"code":"US"}}`)
	r.ServeHTTP(w, req)

	assert.Equal(t, "US", w.Header().Get(middleware.CountryHeaderName))
	// rewrite disabled: home still serves
	assert.Equal(t, "home", w.Body.String())
}

func TestGeoRouter_NoHintsFallsBackToDefault(t *testing.T) {
	r := setupGeoRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, "IN", w.Header().Get(middleware.CountryHeaderName))
	// default country never rewrites
	assert.Equal(t, "home", w.Body.String())
}

func TestGeoRouter_UnparseableHintDegradesToDefault(t *testing.T) {
	r := setupGeoRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Geo", `{"country":`)
	r.ServeHTTP(w, req)

	assert.Equal(t, "IN", w.Header().Get(middleware.CountryHeaderName))
}

func TestGeoRouter_OtherCountryFallsBackToDefault(t *testing.T) {
	r := setupGeoRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("CF-IPCountry", "GB")
	r.ServeHTTP(w, req)

	assert.Equal(t, "IN", w.Header().Get(middleware.CountryHeaderName))
	assert.Equal(t, "home", w.Body.String())
}

func TestGeoRouter_RewritesRootToCountryLanding(t *testing.T) {
	r := setupGeoRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Geo", `{"country":{"code":"AU"}}`)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "au", w.Body.String())
	assert.Equal(t, "AU", w.Header().Get(middleware.CountryHeaderName))
}

func TestGeoRouter_NeverRewritesPrefixedPaths(t *testing.T) {
	r := setupGeoRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/au", nil)
	req.Header.Set("CF-IPCountry", "AU")
	r.ServeHTTP(w, req)

	// already on the country landing: served once, no loop
	assert.Equal(t, "au", w.Body.String())
}

func TestGeoRouter_OnlyRootIsRewritten(t *testing.T) {
	r := setupGeoRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pricing", nil)
	req.Header.Set("CF-IPCountry", "US")
	r.ServeHTTP(w, req)

	assert.Equal(t, "pricing", w.Body.String())
	assert.Equal(t, "US", w.Header().Get(middleware.CountryHeaderName))
}

func TestGeoRouter_ExcludedPathsUntouched(t *testing.T) {
	r := setupGeoRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("CF-IPCountry", "AU")
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get(middleware.CountryHeaderName))
	assert.Nil(t, countryCookie(w))
}

func TestResolve(t *testing.T) {
	geo := middleware.NewGeoRouter("IN", false)

	tests := []struct {
		name    string
		path    string
		hint    entity.GeoHint
		want    entity.Country
		source  string
	}{
		{"path beats geo", "/au/pricing", entity.KnownGeoHint("US"), entity.CountryAU, "path"},
		{"us path", "/us", entity.UnknownGeoHint, entity.CountryUS, "path"},
		{"geo hint", "/", entity.KnownGeoHint("AU"), entity.CountryAU, "geo"},
		{"unknown hint", "/", entity.UnknownGeoHint, "IN", "default"},
		{"other country", "/", entity.KnownGeoHint("DE"), "IN", "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := geo.Resolve(tt.path, tt.hint)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.source, source)
		})
	}
}
