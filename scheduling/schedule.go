package scheduling

import (
	"errors"
	"time"

	"github.com/andsoler0309/restaurantes-app/models"
)

// DateLayout is the wire format for menu dates
const DateLayout = "2006-01-02"

// ErrBadSpan means the inclusive span is not exactly 7 calendar days
var ErrBadSpan = errors.New("las fechas no tienen la diferencia correcta")

// ParseDate parses a YYYY-MM-DD wire date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// CheckSpan validates that end-start is exactly 6 days, i.e. the menu
// covers exactly one week inclusive of both endpoints.
func CheckSpan(start, end time.Time) error {
	if int(end.Sub(start).Hours()/24) != 6 {
		return ErrBadSpan
	}
	return nil
}

// Overlaps reports whether the new range [start, end] conflicts with an
// existing range [s, e]: conflict iff start <= e <= end or start <= s <= end.
// The predicate is boundary-inclusive and deliberately asymmetric: a new
// range strictly inside an existing one with neither endpoint touching is
// not flagged. This is the authoritative behavior; do not tighten it.
func Overlaps(start, end, s, e time.Time) bool {
	return between(start, e, end) || between(start, s, end)
}

// between reports lo <= t <= hi
func between(lo, t, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}

// FindConflict returns the first existing menu whose dates conflict with
// [start, end], or nil when the slot is free.
func FindConflict(start, end time.Time, existing []models.MenuSemana) *models.MenuSemana {
	for i := range existing {
		if Overlaps(start, end, existing[i].FechaInicial, existing[i].FechaFinal) {
			return &existing[i]
		}
	}
	return nil
}
