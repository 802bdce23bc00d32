package geo

import (
	"math"
	"testing"
)

func TestExtractCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Coordinates
	}{
		{
			name:  "plain maps link",
			input: "https://www.google.com/maps?q=47.918873,106.917017",
			want:  &Coordinates{Lat: 47.918873, Lng: 106.917017},
		},
		{
			name:  "q after other params",
			input: "https://maps.google.com/?hl=en&q=-33.8688,151.2093",
			want:  &Coordinates{Lat: -33.8688, Lng: 151.2093},
		},
		{
			name:  "url encoded comma",
			input: "https://www.google.com/maps?q=47.9%2C106.9",
			want:  &Coordinates{Lat: 47.9, Lng: 106.9},
		},
		{
			name:  "no coordinates",
			input: "https://example.com",
			want:  nil,
		},
		{
			name:  "place name instead of coordinates",
			input: "https://www.google.com/maps?q=Ulaanbaatar",
			want:  nil,
		},
		{
			name:  "out of range",
			input: "https://www.google.com/maps?q=95.0,10.0",
			want:  nil,
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCoordinates(tt.input)
			if tt.want == nil {
				if got != nil {
					t.Errorf("expected nil, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %+v, got nil", tt.want)
			}
			if *got != *tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestIsValidCoordinates(t *testing.T) {
	tests := []struct {
		lat, lng float64
		want     bool
	}{
		{0, 0, true},
		{90, 180, true},
		{-90, -180, true},
		{90.0001, 0, false},
		{0, -180.5, false},
	}
	for _, tt := range tests {
		if got := IsValidCoordinates(tt.lat, tt.lng); got != tt.want {
			t.Errorf("IsValidCoordinates(%v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
		}
	}
}

func TestHaversineDistanceKm(t *testing.T) {
	ulaanbaatar := Coordinates{Lat: 47.918873, Lng: 106.917017}

	if d := HaversineDistanceKm(ulaanbaatar, ulaanbaatar); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}

	// One degree of latitude along a meridian.
	d := HaversineDistanceKm(Coordinates{Lat: 0, Lng: 0}, Coordinates{Lat: 1, Lng: 0})
	want := EarthRadiusKm * math.Pi / 180
	if math.Abs(d-want) > 1e-6 {
		t.Errorf("one degree = %v, want %v", d, want)
	}

	kharkhorin := Coordinates{Lat: 47.1975, Lng: 102.8238}
	d = HaversineDistanceKm(ulaanbaatar, kharkhorin)
	if d < 300 || d > 330 {
		t.Errorf("Ulaanbaatar to Kharkhorin = %v km, expected roughly 315", d)
	}
	if back := HaversineDistanceKm(kharkhorin, ulaanbaatar); math.Abs(back-d) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d, back)
	}
}

func TestFormatCoordinates(t *testing.T) {
	c := Coordinates{Lat: 47.918873, Lng: 106.917017}

	if got := FormatCoordinates(c, DefaultDecimals); got != "47.918873, 106.917017" {
		t.Errorf("got %q", got)
	}
	if got := FormatCoordinates(c, 2); got != "47.92, 106.92" {
		t.Errorf("got %q", got)
	}
	if got := FormatCoordinates(c, -1); got != "47.918873, 106.917017" {
		t.Errorf("negative decimals should use default, got %q", got)
	}
}

func TestParseCoordinates(t *testing.T) {
	c, err := ParseCoordinates("47.9, 106.9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Lat != 47.9 || c.Lng != 106.9 {
		t.Errorf("got %+v", c)
	}

	for _, bad := range []string{"", "47.9", "abc,1", "1,abc", "91,0"} {
		if _, err := ParseCoordinates(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestMapsURL_RoundTrip(t *testing.T) {
	c := Coordinates{Lat: 47.918873, Lng: 106.917017}
	got := ExtractCoordinates(MapsURL(c))
	if got == nil || *got != c {
		t.Errorf("round trip failed: %+v", got)
	}
}
