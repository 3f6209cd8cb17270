package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoursBetween(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"full day shift", "07:00", "17:00", 10.0},
		{"overnight shift wraps past midnight", "22:00", "06:00", 8.0},
		{"morning shift", "07:00", "12:00", 5.0},
		{"evening shift", "17:00", "22:00", 5.0},
		{"partial hour rounds to two decimals", "08:00", "12:20", 4.33},
		{"zero length", "09:00", "09:00", 0.0},
		{"one minute before midnight", "23:59", "00:00", 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HoursBetween(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHoursBetweenInvalid(t *testing.T) {
	for _, bad := range []string{"", "7", "25:00", "12:61", "ab:cd"} {
		_, err := HoursBetween(bad, "17:00")
		assert.Error(t, err, "start %q", bad)
		_, err = HoursBetween("07:00", bad)
		assert.Error(t, err, "end %q", bad)
	}
}

func TestRecordKeyAndPeriod(t *testing.T) {
	rec := Record{Date: "2024-12-01", WorkerID: "W1"}
	assert.Equal(t, "2024-12-01_W1", rec.Key())
	assert.Equal(t, "2024-12", rec.Period())
}
