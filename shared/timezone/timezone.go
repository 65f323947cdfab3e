package timezone

import (
	"fmt"
	"skyline/config"
	"skyline/shared/constant"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// location resolves APP_TIMEZONE once. An unset or unknown zone falls back to UTC.
var location = sync.OnceValue(func() *time.Location {
	name := config.Get().App.Timezone
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown timezone, falling back to UTC")

		return time.UTC
	}

	log.Debug().Str("timezone", loc.String()).Msg("application timezone loaded")

	return loc
})

func GetLocation() *time.Location {
	return location()
}

func Now() time.Time {
	return time.Now().In(location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate accepts a calendar date, read as midnight UTC, or an RFC3339 timestamp.
// Calendar dates stay in UTC so night counts are whole wherever the server runs.
func ParseDate(value string) (time.Time, error) {
	if day, err := time.Parse(constant.DateOnlyFormat, value); err == nil {
		return day, nil
	}

	stamp, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return stamp, nil
}
