package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digipants/quicksquad-api/internal/domain/entity"
	"github.com/digipants/quicksquad-api/internal/handler/http/middleware"
)

// landingContent is the locale-specific payload for a country landing page.
type landingContent struct {
	Country     entity.Country `json:"country"`
	Title       string         `json:"title"`
	SupportLine string         `json:"support_line"`
	Currency    string         `json:"currency"`
}

var landingByCountry = map[entity.Country]landingContent{
	entity.CountryAU: {
		Country:     entity.CountryAU,
		Title:       "QuickSquad Australia - 24/7 Remote Tech Support",
		SupportLine: "+61 1800 431 401",
		Currency:    "AUD",
	},
	entity.CountryUS: {
		Country:     entity.CountryUS,
		Title:       "QuickSquad USA - 24/7 Remote Tech Support",
		SupportLine: "+1 888 404 5415",
		Currency:    "USD",
	},
}

// PageHandler serves the landing payloads the geo rewrite targets and the
// geo debug endpoint.
type PageHandler struct {
	defaultCountry entity.Country
}

func NewPageHandler(defaultCountry entity.Country) *PageHandler {
	return &PageHandler{defaultCountry: defaultCountry}
}

// HomeHandler serves "/" for visitors the geo layer left on the default
// landing page.
func (h *PageHandler) HomeHandler(c *gin.Context) {
	country := middleware.ResolvedCountry(c, h.defaultCountry)
	c.JSON(http.StatusOK, h.landingFor(country))
}

// CountryLandingHandler serves /au and /us.
func (h *PageHandler) CountryLandingHandler(country entity.Country) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.landingFor(country))
	}
}

// GeoDebugHandler reports the request's normalized geo hint and resolved
// country, mirroring what the middleware saw.
func (h *PageHandler) GeoDebugHandler(c *gin.Context) {
	hint := middleware.HintFromRequest(c.Request)
	resp := gin.H{
		"resolved": middleware.ResolvedCountry(c, h.defaultCountry),
	}
	if hint.Known {
		resp["geo"] = gin.H{"country": gin.H{"code": hint.Code}}
	} else {
		resp["geo"] = nil
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PageHandler) landingFor(country entity.Country) landingContent {
	if content, ok := landingByCountry[country]; ok {
		return content
	}
	return landingContent{
		Country:     country,
		Title:       "QuickSquad - 24/7 Remote Tech Support",
		SupportLine: "+1 888 404 5415",
		Currency:    "USD",
	}
}
