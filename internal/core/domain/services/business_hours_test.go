package services_test

import (
	"testing"
	"time"

	"orderintake/internal/core/domain/services"
	"orderintake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHours(t *testing.T, open, close int, closedDays ...time.Weekday) services.BusinessHours {
	t.Helper()
	hours, err := services.NewBusinessHours(open, close, closedDays, services.DefaultBusinessTimezone)
	require.NoError(t, err)
	return hours
}

// localTime builds an instant that lands on the given weekday and hour in the
// business timezone. August 2026: the 3rd is a Monday.
func localTime(t *testing.T, day time.Weekday, hour int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(services.DefaultBusinessTimezone)
	require.NoError(t, err)
	base := time.Date(2026, time.August, 3, hour, 30, 0, 0, loc)
	offset := (int(day) - int(time.Monday) + 7) % 7
	return base.AddDate(0, 0, offset)
}

func TestNewBusinessHours(t *testing.T) {
	tests := []struct {
		name    string
		open    int
		close   int
		wantErr bool
	}{
		{"default_window", 18, 3, false},
		{"same_day_window", 9, 17, false},
		{"open_too_low", -1, 3, true},
		{"open_too_high", 24, 3, true},
		{"close_too_low", 18, -1, true},
		{"close_too_high", 18, 24, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.NewBusinessHours(tt.open, tt.close, nil, services.DefaultBusinessTimezone)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewBusinessHours_BadTimezone(t *testing.T) {
	_, err := services.NewBusinessHours(18, 3, nil, "Mars/Olympus_Mons")

	require.Error(t, err)
}

func TestBusinessHours_Evaluate_MidnightCrossing(t *testing.T) {
	hours := mustHours(t, 18, 3)

	tests := []struct {
		name string
		hour int
		open bool
	}{
		{"evening_is_open", 20, true},
		{"just_after_midnight_is_open", 1, true},
		{"opening_hour_is_open", 18, true},
		{"closing_hour_is_closed", 3, false},
		{"afternoon_is_closed", 15, false},
		{"morning_is_closed", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hours.Evaluate(localTime(t, time.Wednesday, tt.hour))

			if tt.open {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrBusinessRule)
			assert.Contains(t, err.Error(), "orders can only be placed between 18:00 and 03:00")
		})
	}
}

func TestBusinessHours_Evaluate_SameDayWindow(t *testing.T) {
	hours := mustHours(t, 9, 17)

	require.NoError(t, hours.Evaluate(localTime(t, time.Tuesday, 12)))

	err := hours.Evaluate(localTime(t, time.Tuesday, 18))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRule)
}

func TestBusinessHours_Evaluate_ClosedDay(t *testing.T) {
	hours := mustHours(t, 18, 3, time.Monday)

	err := hours.Evaluate(localTime(t, time.Monday, 20))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRule)
	assert.Contains(t, err.Error(), "orders are not accepted on Monday")

	require.NoError(t, hours.Evaluate(localTime(t, time.Tuesday, 20)))
}

func TestBusinessHours_Evaluate_ConvertsToBusinessTimezone(t *testing.T) {
	hours := mustHours(t, 18, 3)

	// 22:00 UTC is 19:00 in Buenos Aires (UTC-3), inside the window.
	utc := time.Date(2026, time.August, 5, 22, 0, 0, 0, time.UTC)

	require.NoError(t, hours.Evaluate(utc))
}
