package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestIsActive_NoFinishDate(t *testing.T) {
	emp := Employee{Ongoing: true}

	for _, now := range []time.Time{
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2099, 12, 31, 23, 59, 59, 0, time.UTC),
	} {
		assert.True(t, emp.IsActive(now))
	}
}

func TestIsActive_FinishDateComparedDateOnly(t *testing.T) {
	cases := []struct {
		name   string
		finish time.Time
		now    time.Time
		want   bool
	}{
		{
			name:   "finish yesterday",
			finish: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			now:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "finish today, late in the day vs early now",
			finish: time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC),
			now:    time.Date(2025, 6, 10, 0, 1, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "finish today, early vs late now",
			finish: time.Date(2025, 6, 10, 0, 1, 0, 0, time.UTC),
			now:    time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "finish tomorrow",
			finish: time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
			now:    time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			// A UTC midnight finish date must not read as "yesterday"
			// on a clock running west of UTC.
			name:   "finish today, server clock west of UTC",
			finish: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			now:    time.Date(2026, 8, 31, 9, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want:   true,
		},
		{
			name:   "finish yesterday, server clock east of UTC",
			finish: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			now:    time.Date(2025, 6, 10, 0, 30, 0, 0, time.FixedZone("UTC+10", 10*3600)),
			want:   false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			emp := Employee{FinishDate: datePtr(c.finish)}
			assert.Equal(t, c.want, emp.IsActive(c.now))
		})
	}
}

func TestStatusAt(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	active := Employee{ID: 2}
	inactive := Employee{ID: 1, FinishDate: datePtr(now.AddDate(0, 0, -1))}

	assert.Equal(t, StatusActive, active.StatusAt(now))
	assert.Equal(t, StatusInactive, inactive.StatusAt(now))
}

func TestRecencyTagAt(t *testing.T) {
	windows := DefaultRecencyWindows()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		createdAt time.Time
		updatedAt time.Time
		want      RecencyTag
	}{
		{
			name:      "created yesterday, never edited",
			createdAt: now.Add(-24 * time.Hour),
			updatedAt: now.Add(-24 * time.Hour),
			want:      TagNew,
		},
		{
			name:      "created yesterday, edited within jitter threshold",
			createdAt: now.Add(-24 * time.Hour),
			updatedAt: now.Add(-24 * time.Hour).Add(30 * time.Minute),
			want:      TagNew,
		},
		{
			name:      "old record edited recently",
			createdAt: now.Add(-90 * 24 * time.Hour),
			updatedAt: now.Add(-2 * time.Hour),
			want:      TagUpdated,
		},
		{
			name:      "old record, old edit",
			createdAt: now.Add(-90 * 24 * time.Hour),
			updatedAt: now.Add(-30 * 24 * time.Hour),
			want:      TagNone,
		},
		{
			name:      "created outside new window, never edited",
			createdAt: now.Add(-10 * 24 * time.Hour),
			updatedAt: now.Add(-10 * 24 * time.Hour),
			want:      TagNone,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			emp := Employee{CreatedAt: c.createdAt, UpdatedAt: c.updatedAt}
			assert.Equal(t, c.want, emp.RecencyTagAt(now, windows))
		})
	}
}

func TestRecencyTagAt_MissingTimestamps(t *testing.T) {
	now := time.Now()
	assert.Equal(t, TagNone, Employee{}.RecencyTagAt(now, DefaultRecencyWindows()))
}
