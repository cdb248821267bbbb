package core

import (
	"math"
	"sort"
	"time"
)

// ChartPoint is one day of net revenue: successful deposits minus
// successful withdrawals, rounded once per day.
type ChartPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

const chartDateLayout = "2006-01-02"

// BuildDailySeries turns a raw transaction list into a gap-filled daily
// net-revenue series.
//
// Only successful transactions contribute. Each day's net value is
// accumulated as a float and rounded to the nearest integer once the day
// is complete, not per transaction. The output spans every calendar day
// from the earliest to the latest contributing date inclusive, ascending,
// with zero-valued points for days that had no successful activity. Days
// are stepped with calendar arithmetic, never a fixed 24h offset.
//
// No successful transactions means an empty series: callers render a
// "no data" state, not a flat zero chart.
func BuildDailySeries(txs []Transaction) []ChartPoint {
	net := make(map[string]float64)
	for _, t := range txs {
		if t.Status != StatusSuccessful {
			continue
		}
		day, ok := t.DateOnly()
		if !ok {
			continue
		}
		switch t.Type {
		case TypeDeposit:
			net[day] += t.Amount
		case TypeWithdrawal:
			net[day] -= t.Amount
		}
	}
	if len(net) == 0 {
		return []ChartPoint{}
	}

	days := make([]string, 0, len(net))
	for d := range net {
		days = append(days, d)
	}
	sort.Strings(days)

	// Parse errors are impossible here: every key passed DateOnly.
	first, _ := time.Parse(chartDateLayout, days[0])
	last, _ := time.Parse(chartDateLayout, days[len(days)-1])

	var out []ChartPoint
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format(chartDateLayout)
		// Half-up rounding: an exact .5 net always rounds toward +Inf,
		// so -10.5 becomes -10, not -11.
		out = append(out, ChartPoint{Date: key, Value: int(math.Floor(net[key] + 0.5))})
	}
	return out
}
