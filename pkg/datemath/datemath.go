// Package datemath holds the stay-length and price arithmetic used when a
// visitor assembles a booking.
package datemath

import (
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Room is the minimal shape BookingTotal needs from a booked room line.
type Room struct {
	PricePerNight float64
	RoomCount     int
}

// NightsBetween returns the ceiling of the absolute day difference between
// the two instants. The order of the arguments does not matter; callers that
// care about check-out following check-in must check it themselves.
func NightsBetween(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(float64(diff) / float64(day)))
}

// NightsBetweenStrings parses both dates with DateLayout before counting.
func NightsBetweenStrings(checkIn, checkOut string) (int, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return 0, err
	}
	return NightsBetween(in, out), nil
}

// RoomTotal is price × nights × rooms. No rounding happens here.
func RoomTotal(pricePerNight float64, nights, roomCount int) float64 {
	return pricePerNight * float64(nights) * float64(roomCount)
}

// BookingTotal sums RoomTotal over every line with the same stay length.
func BookingTotal(rooms []Room, nights int) float64 {
	var total float64
	for _, r := range rooms {
		total += RoomTotal(r.PricePerNight, nights, r.RoomCount)
	}
	return total
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
