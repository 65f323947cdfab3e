package timezone_test

import (
	"skyline/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowAndLocation(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.ToAppTime(time.Now().UTC()).Location())
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(testTime, time.RFC3339)
	parsed, err := time.Parse(time.RFC3339, formatted)

	assert.NoError(t, err)
	assert.True(t, testTime.Equal(parsed))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "calendar date is midnight UTC",
			input: "2024-06-10",
			want:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339 timestamp keeps its offset",
			input: "2024-06-10T14:00:00+07:00",
			want:  time.Date(2024, 6, 10, 7, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "next tuesday",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseDate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}
