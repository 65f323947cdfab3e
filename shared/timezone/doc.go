// Package timezone is the application clock.
//
//	now := timezone.Now()                            // current time in APP_TIMEZONE
//	checkIn, err := timezone.ParseDate("2024-06-10") // midnight UTC
//
// The zone is read from APP_TIMEZONE on first use and falls back to UTC.
package timezone
