package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid last minute", input: "23:59"},
		{name: "missing zero padding", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "garbage", input: "midnight", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_MinutesRoundTrip(t *testing.T) {
	for _, input := range []string{"00:00", "00:01", "09:00", "12:34", "23:59"} {
		ts, err := NewTimeStringFromString(input)
		require.NoError(t, err)

		minutes, err := ts.MinutesFromMidnight()
		require.NoError(t, err)

		back, err := NewTimeStringFromMinutes(minutes)
		require.NoError(t, err)
		assert.Equal(t, ts, back)
	}
}

func TestNewTimeStringFromMinutes_Negative(t *testing.T) {
	_, err := NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrNegativeMinutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		start string
		delta int
		want  string
	}{
		{start: "09:00", delta: 30, want: "09:30"},
		{start: "09:45", delta: 30, want: "10:15"},
		{start: "17:30", delta: 30, want: "18:00"},
		// End times past midnight do not wrap to the next day.
		{start: "23:45", delta: 30, want: "24:15"},
	}

	for _, tt := range tests {
		got, err := TimeString(tt.start).AddMinutes(tt.delta)
		require.NoError(t, err)
		assert.Equal(t, TimeString(tt.want), got)
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	// Post-midnight end times still compare correctly.
	assert.True(t, TimeString("24:15").IsAfter("23:45"))
}

func TestNewTimeString(t *testing.T) {
	at := time.Date(2025, 6, 3, 14, 5, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:05"), NewTimeString(at))
}
