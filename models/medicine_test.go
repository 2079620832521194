package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDay_Clock(t *testing.T) {
	tests := []struct {
		name       string
		in         TimeOfDay
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{name: "morning", in: "08:00", wantHour: 8},
		{name: "evening", in: "20:45", wantHour: 20, wantMinute: 45},
		{name: "midnight", in: "00:00"},
		{name: "last minute", in: "23:59", wantHour: 23, wantMinute: 59},
		{name: "single digit hour", in: "8:30", wantHour: 8, wantMinute: 30},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "10:60", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "soon", wantErr: true},
		{name: "trailing text", in: "08:00pm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, err := tt.in.Clock()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, h)
			assert.Equal(t, tt.wantMinute, m)
		})
	}
}

func TestTimeOfDay_Normalize(t *testing.T) {
	tests := []struct {
		in   TimeOfDay
		want TimeOfDay
	}{
		{in: "8:30", want: "08:30"},
		{in: "08:30", want: "08:30"},
		{in: "0:00", want: "00:00"},
		{in: "23:59", want: "23:59"},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, err := tt.in.Normalize()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := TimeOfDay("25:00").Normalize()
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
	assert.Equal(t, TimeOfDay("25:00"), got)
}

func TestTimeOfDay_On(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	day := time.Date(2026, 3, 14, 17, 12, 45, 999, loc)

	got, err := TimeOfDay("08:05").On(day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 8, 5, 0, 0, loc), got)

	_, err = TimeOfDay("bad").On(day)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

func TestDraft_RoundTrip(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, DefaultTimeOfDay, d.TimeOfDay)

	d.Name = "Vitamin C"
	d.Dose = "1 tablet"
	d.Frequency = "once a day"

	m := d.ToMedicine(7, "u@x.com")
	assert.Equal(t, int64(7), m.ID)
	assert.Equal(t, "u@x.com", m.OwnerEmail)
	assert.True(t, m.Persisted())
	assert.Equal(t, d, DraftFromMedicine(m))

	assert.False(t, d.ToMedicine(0, "u@x.com").Persisted())
}
