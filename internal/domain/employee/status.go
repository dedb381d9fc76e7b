package employee

import "time"

// Status is derived from the finish date, never stored.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// RecencyTag marks records that were recently created or meaningfully
// edited, for display badges.
type RecencyTag string

const (
	TagNew     RecencyTag = "NEW"
	TagUpdated RecencyTag = "UPDATED"
	TagNone    RecencyTag = "NONE"
)

// RecencyWindows configures the tagging rule. MeaningfulEdit is the
// minimum gap between creation and last update for an edit to count as
// a real change rather than write-time jitter.
type RecencyWindows struct {
	NewWindow      time.Duration
	UpdatedWindow  time.Duration
	MeaningfulEdit time.Duration
}

// DefaultRecencyWindows tags records created within 7 days as NEW and
// records edited more than an hour after creation, within 7 days, as
// UPDATED.
func DefaultRecencyWindows() RecencyWindows {
	return RecencyWindows{
		NewWindow:      7 * 24 * time.Hour,
		UpdatedWindow:  7 * 24 * time.Hour,
		MeaningfulEdit: time.Hour,
	}
}

// IsActive reports whether the employee is still employed as of now.
// Only calendar dates are compared, each in its own location: an
// employee finishing today is active for the whole day regardless of
// time of day or zone offset.
func (e Employee) IsActive(now time.Time) bool {
	if e.FinishDate == nil {
		return true
	}
	return !dateBefore(*e.FinishDate, now)
}

// StatusAt derives the ACTIVE/INACTIVE status at a point in time.
func (e Employee) StatusAt(now time.Time) Status {
	if e.IsActive(now) {
		return StatusActive
	}
	return StatusInactive
}

// RecencyTagAt classifies the record as NEW, UPDATED or NONE. A record
// is UPDATED when its last update is both recent and meaningfully later
// than its creation; it is NEW when it was created recently and has not
// been meaningfully edited since.
func (e Employee) RecencyTagAt(now time.Time, w RecencyWindows) RecencyTag {
	if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
		return TagNone
	}

	delta := e.UpdatedAt.Sub(e.CreatedAt)

	if now.Sub(e.UpdatedAt) <= w.UpdatedWindow && delta > w.MeaningfulEdit {
		return TagUpdated
	}
	if now.Sub(e.CreatedAt) <= w.NewWindow && delta <= w.MeaningfulEdit {
		return TagNew
	}
	return TagNone
}

// dateBefore compares year/month/day components so dates carrying
// different zone offsets never collapse onto the wrong calendar day.
func dateBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
