package geo

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const EarthRadiusKm = 6371.0

const DefaultDecimals = 6

var reMapsQuery = regexp.MustCompile(`[?&]q=(-?\d+(?:\.\d+)?),\s*(-?\d+(?:\.\d+)?)`)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ExtractCoordinates pulls the q=<lat>,<lng> pair out of a maps link.
// It returns nil when the link has no such pair or the pair is out of range.
func ExtractCoordinates(mapsURL string) *Coordinates {
	if mapsURL == "" {
		return nil
	}
	if decoded, err := url.QueryUnescape(mapsURL); err == nil {
		mapsURL = decoded
	}

	m := reMapsQuery.FindStringSubmatch(mapsURL)
	if m == nil {
		return nil
	}

	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil
	}
	if !IsValidCoordinates(lat, lng) {
		return nil
	}
	return &Coordinates{Lat: lat, Lng: lng}
}

func IsValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// HaversineDistanceKm is the great-circle distance between a and b.
func HaversineDistanceKm(a, b Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// FormatCoordinates renders "lat, lng" with a fixed number of decimals.
// A negative decimals value falls back to DefaultDecimals.
func FormatCoordinates(c Coordinates, decimals int) string {
	if decimals < 0 {
		decimals = DefaultDecimals
	}
	return fmt.Sprintf("%.*f, %.*f", decimals, c.Lat, decimals, c.Lng)
}

// ParseCoordinates reads a "lat,lng" pair, as passed in query strings.
func ParseCoordinates(s string) (*Coordinates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("coordinates must be in 'lat,lng' form, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	if !IsValidCoordinates(lat, lng) {
		return nil, fmt.Errorf("coordinates out of range: %q", s)
	}
	return &Coordinates{Lat: lat, Lng: lng}, nil
}

func MapsURL(c Coordinates) string {
	return "https://www.google.com/maps?q=" + strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
