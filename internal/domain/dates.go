package domain

import "time"

// DateOnly truncates to a UTC calendar date. Stay dates and night claims
// are whole days; normalizing here keeps the (site, night) unique index
// byte-identical across writers regardless of the caller's timezone.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights is the whole-day difference between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}
