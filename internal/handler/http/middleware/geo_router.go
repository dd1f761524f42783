package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
	"github.com/digipants/quicksquad-api/internal/infrastructure/metrics"
)

const (
	// CountryCookieName carries the resolved country to the client.
	CountryCookieName = "country"
	// CountryHeaderName mirrors the cookie on every response so downstream
	// rendering can pick the locale without re-deriving it.
	CountryHeaderName = "x-country"
	// CountryContextKey exposes the resolved country to handlers.
	CountryContextKey = "resolvedCountry"
	// GeoHintContextKey exposes the normalized geo hint to handlers.
	GeoHintContextKey = "geoHint"

	// countryCookieMaxAge is 7 days, matching the admin session lifetime.
	countryCookieMaxAge = 7 * 24 * 60 * 60
)

// Geo hint carriers, checked in order. CF-IPCountry is a bare code; X-Geo is
// either a bare code or a JSON object exposing a code field.
var geoHintHeaders = []string{"X-Geo", "CF-IPCountry"}

// excludedPrefixes lists static/internal paths the geo logic never touches.
var excludedPrefixes = []string{
	"/static",
	"/assets",
	"/public",
	"/favicon.ico",
	"/metrics",
	"/healthz",
}

// GeoRouter resolves the effective country context for every request: a path
// prefix hint always wins, then the environment geo hint, then the configured
// default. Optionally it rewrites bare "/" requests to the country landing
// path.
type GeoRouter struct {
	defaultCountry entity.Country
	rewrite        bool
}

// NewGeoRouter creates the geo routing middleware.
func NewGeoRouter(defaultCountry entity.Country, rewrite bool) *GeoRouter {
	return &GeoRouter{defaultCountry: defaultCountry, rewrite: rewrite}
}

// skip reports whether the path is outside geo routing entirely.
func skip(reqPath string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(reqPath, prefix) {
			return true
		}
	}
	// Asset-like paths carry a file extension.
	return path.Ext(reqPath) != ""
}

// pathCountry extracts the country hint from the URL prefix, if any.
func pathCountry(reqPath string) (entity.Country, bool) {
	switch {
	case strings.HasPrefix(reqPath, "/au"):
		return entity.CountryAU, true
	case strings.HasPrefix(reqPath, "/us"):
		return entity.CountryUS, true
	}
	return "", false
}

// HintFromRequest normalizes the geolocation hint carried by the request
// headers. Absent or unparseable hints degrade to Unknown, never an error.
func HintFromRequest(r *http.Request) entity.GeoHint {
	for _, header := range geoHintHeaders {
		if raw := r.Header.Get(header); raw != "" {
			if hint := entity.ParseGeoHint(raw); hint.Known {
				return hint
			}
		}
	}
	return entity.UnknownGeoHint
}

// Resolve computes the country for a request along with the hint source,
// one of "path", "geo" or "default".
func (g *GeoRouter) Resolve(reqPath string, hint entity.GeoHint) (entity.Country, string) {
	if country, ok := pathCountry(reqPath); ok {
		return country, "path"
	}
	if hint.Known && (hint.Code == entity.CountryAU || hint.Code == entity.CountryUS) {
		return hint.Code, "geo"
	}
	return g.defaultCountry, "default"
}

// Handler returns the gin middleware. The engine reference is needed for the
// internal rewrite: the request is re-dispatched with the country path, and
// the already-prefixed path guarantees the second pass never rewrites again.
func (g *GeoRouter) Handler(engine *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if skip(reqPath) {
			c.Next()
			return
		}

		hint := HintFromRequest(c.Request)
		country, source := g.Resolve(reqPath, hint)

		if g.rewrite && reqPath == "/" && (country == entity.CountryAU || country == entity.CountryUS) {
			c.Request.URL.Path = "/" + strings.ToLower(string(country))
			engine.HandleContext(c)
			c.Abort()
			return
		}

		c.Set(CountryContextKey, country)
		c.Set(GeoHintContextKey, hint)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CountryCookieName, string(country), countryCookieMaxAge, "/", "", false, true)
		c.Header(CountryHeaderName, string(country))
		metrics.GeoResolvedTotal.WithLabelValues(string(country), source).Inc()

		c.Next()
	}
}

// ResolvedCountry reads the country the middleware stored on the context,
// falling back to the given default for excluded paths.
func ResolvedCountry(c *gin.Context, fallback entity.Country) entity.Country {
	if v, ok := c.Get(CountryContextKey); ok {
		if country, ok := v.(entity.Country); ok {
			return country
		}
	}
	return fallback
}
