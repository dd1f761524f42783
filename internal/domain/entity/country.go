package entity

import (
	"encoding/json"
	"strings"
)

// Country is the resolved country context for a request.
type Country string

const (
	CountryAU Country = "AU"
	CountryUS Country = "US"
)

// GeoHint is the normalized form of the environment-provided geolocation
// signal. Depending on the deployment the raw hint arrives as a bare country
// code or as a structured object exposing a code field; both collapse into
// this tagged value before any routing logic runs.
type GeoHint struct {
	Code  Country
	Known bool
}

// UnknownGeoHint is the hint used when no geolocation signal is present.
var UnknownGeoHint = GeoHint{}

// KnownGeoHint builds a hint for a recognized country code.
func KnownGeoHint(code string) GeoHint {
	return GeoHint{Code: Country(strings.ToUpper(strings.TrimSpace(code))), Known: true}
}

// geoPayload mirrors the structured hint shapes seen in the wild:
// {"code":"AU"} or {"country":{"code":"AU"}}.
type geoPayload struct {
	Code    string `json:"code"`
	Country struct {
		Code string `json:"code"`
	} `json:"country"`
}

// ParseGeoHint normalizes a raw geolocation hint value. It accepts a plain
// country-code string ("AU") or a JSON object with a code field, possibly
// nested under "country". Anything unparseable or empty yields an Unknown
// hint, never an error.
func ParseGeoHint(raw string) GeoHint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownGeoHint
	}
	if !strings.HasPrefix(raw, "{") {
		return KnownGeoHint(raw)
	}
	var payload geoPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return UnknownGeoHint
	}
	if payload.Country.Code != "" {
		return KnownGeoHint(payload.Country.Code)
	}
	if payload.Code != "" {
		return KnownGeoHint(payload.Code)
	}
	return UnknownGeoHint
}
