package calendar

import (
	"testing"
	"time"
)

func fixedNow(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestNewSeedsFromSelection(t *testing.T) {
	p := newPicker("2022-03-20", fixedNow(2026, time.August))
	if p.Year() != 2022 || p.Month() != time.March {
		t.Fatalf("got %d-%d, want 2022-3", p.Year(), p.Month())
	}
}

func TestNewFallsBackToCurrentMonth(t *testing.T) {
	for _, sel := range []string{"", "garbage", "2022-13-01", "2022-03"} {
		p := newPicker(sel, fixedNow(2026, time.August))
		if p.Year() != 2026 || p.Month() != time.August {
			t.Fatalf("selection %q: got %d-%d, want current month", sel, p.Year(), p.Month())
		}
	}
}

func TestMonthNavigationRollsYear(t *testing.T) {
	p := newPicker("2024-01-10", fixedNow(2024, time.January))
	p.PrevMonth()
	if p.Year() != 2023 || p.Month() != time.December {
		t.Fatalf("prev from Jan 2024: got %d-%d", p.Year(), p.Month())
	}
	p.NextMonth()
	if p.Year() != 2024 || p.Month() != time.January {
		t.Fatalf("next from Dec 2023: got %d-%d", p.Year(), p.Month())
	}
}

func TestClickDayEmitsPaddedDateAndCloses(t *testing.T) {
	p := newPicker("2022-03-10", fixedNow(2022, time.March))
	p.Open()
	got := p.ClickDay(20)
	if got != "2022-03-20" {
		t.Fatalf("got %q, want 2022-03-20", got)
	}
	if p.View() != Closed {
		t.Fatalf("picker must close after a day click")
	}
	if p.Selected() != got {
		t.Fatalf("selection not committed: %q", p.Selected())
	}
}

func TestPickYearKeepsMonth(t *testing.T) {
	p := newPicker("2022-03-10", fixedNow(2022, time.March))
	p.Open()
	p.ShowYearView()
	if p.View() != YearView {
		t.Fatalf("expected year view")
	}
	p.PickYear(2019)
	if p.Year() != 2019 || p.Month() != time.March {
		t.Fatalf("got %d-%d, want 2019-3", p.Year(), p.Month())
	}
	if p.View() != MonthView {
		t.Fatalf("picking a year must return to the month grid")
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2022, time.March, 31},
		{2022, time.April, 30},
		{2022, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2100, time.February, 28}, // century, not leap
		{2000, time.February, 29}, // 400 year rule
	}
	for _, tc := range cases {
		if got := daysInMonth(tc.year, tc.month); got != tc.want {
			t.Fatalf("%d-%d: got %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestGridMondayFirst(t *testing.T) {
	// March 2022 starts on a Tuesday: one leading blank.
	p := newPicker("2022-03-10", fixedNow(2022, time.March))
	grid := p.Grid()
	if len(grid) != 1+31 {
		t.Fatalf("grid length %d, want 32", len(grid))
	}
	if grid[0] != 0 || grid[1] != 1 || grid[len(grid)-1] != 31 {
		t.Fatalf("bad grid shape: %v", grid)
	}

	// May 2022 starts on a Sunday: six leading blanks.
	p.year, p.month = 2022, time.May
	grid = p.Grid()
	if len(grid) != 6+31 {
		t.Fatalf("grid length %d, want 37", len(grid))
	}
	for i := 0; i < 6; i++ {
		if grid[i] != 0 {
			t.Fatalf("cell %d should be blank: %v", i, grid[:7])
		}
	}
}

func TestIsSelectedComparesComponents(t *testing.T) {
	p := newPicker("2022-3-5", fixedNow(2022, time.March))
	if !p.IsSelected(5) {
		t.Fatalf("unpadded selection must still highlight the day")
	}
	if p.IsSelected(6) {
		t.Fatalf("wrong day must not highlight")
	}
	p.NextMonth()
	if p.IsSelected(5) {
		t.Fatalf("selection must not highlight in another month")
	}
}

func TestYearRange(t *testing.T) {
	cases := []struct {
		name     string
		selected string
		nowYear  int
		wantLo   int
		wantHi   int
	}{
		{"defaults", "2022-03-10", 2026, 2015, 2031},
		{"old selection extends low end", "2010-01-01", 2026, 2010, 2031},
		{"future selection extends high end", "2030-01-01", 2026, 2015, 2035},
		{"decade back extends below 2015", "2022-01-01", 2020, 2010, 2027},
	}
	for _, tc := range cases {
		p := newPicker(tc.selected, fixedNow(tc.nowYear, time.June))
		lo, hi := p.YearRange()
		if lo != tc.wantLo || hi != tc.wantHi {
			t.Fatalf("%s: got %d..%d, want %d..%d", tc.name, lo, hi, tc.wantLo, tc.wantHi)
		}
		ys := p.Years()
		if len(ys) != hi-lo+1 || ys[0] != lo || ys[len(ys)-1] != hi {
			t.Fatalf("%s: years list inconsistent with range", tc.name)
		}
	}
}

func TestYearRangeFollowsSelectionNotView(t *testing.T) {
	p := newPicker("2050-01-10", fixedNow(2026, time.June))
	p.Open()
	p.ShowYearView()
	p.PickYear(2020)

	lo, hi := p.YearRange()
	if lo != 2015 || hi != 2055 {
		t.Fatalf("got %d..%d, want 2015..2055", lo, hi)
	}

	p.PrevMonth()
	if lo, hi = p.YearRange(); lo != 2015 || hi != 2055 {
		t.Fatalf("after navigation: got %d..%d, want 2015..2055", lo, hi)
	}
}

func TestYearRangeFallsBackToViewedYear(t *testing.T) {
	p := newPicker("", fixedNow(2026, time.June))
	p.Open()
	p.ShowYearView()
	p.PickYear(2040)

	if lo, hi := p.YearRange(); lo != 2015 || hi != 2045 {
		t.Fatalf("got %d..%d, want 2015..2045", lo, hi)
	}
}
