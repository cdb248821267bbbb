// Package calendar implements the month grid and year selection state
// behind the date range inputs.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// View is the picker's current pane.
type View int

const (
	Closed View = iota
	MonthView
	YearView
)

const minYear = 2015

// Picker holds the navigation state for a single date input. It is a
// plain value machine: callers mutate it through the methods below and
// read the grid back out for rendering.
type Picker struct {
	view     View
	year     int
	month    time.Month
	selected string

	now func() time.Time
}

// New builds a picker seeded from the currently selected date. An empty
// or unparseable selection falls back to the current month.
func New(selected string) *Picker {
	return newPicker(selected, time.Now)
}

func newPicker(selected string, now func() time.Time) *Picker {
	p := &Picker{selected: selected, now: now}
	if y, m, _, ok := splitDate(selected); ok {
		p.year, p.month = y, time.Month(m)
	} else {
		t := now()
		p.year, p.month = t.Year(), t.Month()
	}
	return p
}

// splitDate parses a YYYY-MM-DD string into numeric components. It is
// deliberately lenient about zero padding so "2022-3-5" still selects
// March 5th.
func splitDate(s string) (year, month, day int, ok bool) {
	parts := strings.SplitN(s, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, false
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

func (p *Picker) View() View        { return p.view }
func (p *Picker) Year() int         { return p.year }
func (p *Picker) Month() time.Month { return p.month }
func (p *Picker) Selected() string  { return p.selected }

func (p *Picker) Open()  { p.view = MonthView }
func (p *Picker) Close() { p.view = Closed }

// PrevMonth steps back one month, rolling the year at January.
func (p *Picker) PrevMonth() {
	if p.month == time.January {
		p.month = time.December
		p.year--
		return
	}
	p.month--
}

// NextMonth steps forward one month, rolling the year at December.
func (p *Picker) NextMonth() {
	if p.month == time.December {
		p.month = time.January
		p.year++
		return
	}
	p.month++
}

// ShowYearView switches to the year list without touching the month.
func (p *Picker) ShowYearView() { p.view = YearView }

// PickYear selects a year from the year list and returns to the month
// grid. The month is preserved.
func (p *Picker) PickYear(year int) {
	p.year = year
	p.view = MonthView
}

// ClickDay commits a day in the visible month as the selection and
// closes the picker. The returned value is the zero padded date string.
func (p *Picker) ClickDay(day int) string {
	p.selected = fmt.Sprintf("%04d-%02d-%02d", p.year, int(p.month), day)
	p.view = Closed
	return p.selected
}

// YearRange returns the inclusive bounds of the year list. The range
// always covers 2015, the decade behind today, the selected year, and
// five years past both today and the selection, so the selection stays
// reachable no matter where the view has been navigated.
func (p *Picker) YearRange() (lo, hi int) {
	current := p.now().Year()
	selected := p.year
	if y, _, _, ok := splitDate(p.selected); ok {
		selected = y
	}
	lo = minYear
	if selected < lo {
		lo = selected
	}
	if current-10 < lo {
		lo = current - 10
	}
	hi = current + 5
	if selected+5 > hi {
		hi = selected + 5
	}
	return lo, hi
}

// Years lists every selectable year in ascending order.
func (p *Picker) Years() []int {
	lo, hi := p.YearRange()
	ys := make([]int, 0, hi-lo+1)
	for y := lo; y <= hi; y++ {
		ys = append(ys, y)
	}
	return ys
}

// Grid returns the day cells for the visible month, Monday first.
// Leading cells before the first of the month are zero.
func (p *Picker) Grid() []int {
	offset := mondayOffset(p.year, p.month)
	days := daysInMonth(p.year, p.month)
	cells := make([]int, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, 0)
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, d)
	}
	return cells
}

// IsSelected reports whether a day cell in the visible month matches
// the current selection. Comparison is on numeric components so padding
// differences in the stored string do not break highlighting.
func (p *Picker) IsSelected(day int) bool {
	y, m, d, ok := splitDate(p.selected)
	if !ok {
		return false
	}
	return y == p.year && time.Month(m) == p.month && d == day
}

// daysInMonth exploits day zero of the following month normalizing to
// the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// mondayOffset counts the blank cells before day 1 in a Monday first
// week layout.
func mondayOffset(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return (int(first.Weekday()) + 6) % 7
}
