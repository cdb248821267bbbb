package core

import "sort"

// labelValues maps each human-facing filter label to the raw type/status
// values it resolves to. The table is fixed; labels the table doesn't know
// resolve to nothing and therefore match nothing.
var labelValues = map[string][]string{
	"Store Transactions": {string(TypeDeposit)},
	"Get Tipped":         {string(TypeDeposit)},
	"Cashbacks":          {string(TypeDeposit)},
	"Refer & Earn":       {string(TypeDeposit)},
	"Withdrawals":        {string(TypeWithdrawal)},
	"Chargebacks":        {string(TypeWithdrawal)},
	"Successful":         {string(StatusSuccessful)},
	"Pending":            {string(StatusPending)},
	"Failed":             {string(StatusFailed)},
}

// FilterLabels returns the known filter labels in stable order.
func FilterLabels() []string {
	out := make([]string, 0, len(labelValues))
	for l := range labelValues {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// KnownLabel reports whether the label appears in the mapping table.
func KnownLabel(label string) bool {
	_, ok := labelValues[label]
	return ok
}

type (
	// DateRange is an inclusive pair of YYYY-MM-DD bounds. ISO date
	// strings order correctly under plain string comparison, so the range
	// check is a lexicographic compare on the date prefix with no
	// timezone conversion anywhere.
	DateRange struct {
		Start string `json:"start_date"`
		End   string `json:"end_date"`
	}

	// FilterState is an applied, immutable filter snapshot. A zero value
	// matches every transaction.
	FilterState struct {
		Range  *DateRange
		Labels []string
	}
)

// IsZero reports whether the filter constrains anything at all.
func (f FilterState) IsZero() bool {
	return f.Range == nil && len(f.Labels) == 0
}

// Matches decides whether a transaction passes the filter.
//
// The date bound (when present) and the label condition (when any labels
// are selected) combine with AND. Within the label condition the semantics
// are OR across labels and OR across (type, status): selecting a deposit
// label and "Failed" matches anything that is a deposit or has failed,
// not only deposits that failed.
func (f FilterState) Matches(t Transaction) bool {
	if f.Range != nil {
		day, ok := t.DateOnly()
		if !ok {
			return false
		}
		if day < f.Range.Start || day > f.Range.End {
			return false
		}
	}
	if len(f.Labels) == 0 {
		return true
	}
	for _, label := range f.Labels {
		for _, v := range labelValues[label] {
			if v == string(t.Type) || v == string(t.Status) {
				return true
			}
		}
	}
	return false
}

// Apply returns the transactions passing the filter, preserving input
// order. The result is never nil so an all-rejecting filter still yields a
// concrete empty list.
func (f FilterState) Apply(txs []Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// PendingSelection is the staged side of the filter UI: toggling labels or
// picking dates mutates nothing visible until Apply commits the snapshot.
// All methods return copies; a PendingSelection is a value.
type PendingSelection struct {
	labels []string
	rng    *DateRange
}

// Toggle adds the label if absent, removes it if present. Labels
// outside the mapping table are ignored: the checkbox list only ever
// offers known labels, so anything else is a caller bug.
func (p PendingSelection) Toggle(label string) PendingSelection {
	if !KnownLabel(label) {
		return p
	}
	for i, l := range p.labels {
		if l == label {
			next := make([]string, 0, len(p.labels)-1)
			next = append(next, p.labels[:i]...)
			next = append(next, p.labels[i+1:]...)
			return PendingSelection{labels: next, rng: p.rng}
		}
	}
	next := make([]string, 0, len(p.labels)+1)
	next = append(next, p.labels...)
	next = append(next, label)
	return PendingSelection{labels: next, rng: p.rng}
}

// WithRange stages an inclusive date range.
func (p PendingSelection) WithRange(start, end string) PendingSelection {
	return PendingSelection{labels: p.labels, rng: &DateRange{Start: start, End: end}}
}

// Labels returns the staged labels.
func (p PendingSelection) Labels() []string {
	return append([]string(nil), p.labels...)
}

// Count returns the number of staged selections, the badge number shown
// next to the filter button.
func (p PendingSelection) Count() int {
	n := len(p.labels)
	if p.rng != nil {
		n++
	}
	return n
}

// Apply commits the staged selection into an applied FilterState.
func (p PendingSelection) Apply() FilterState {
	f := FilterState{Labels: append([]string(nil), p.labels...)}
	if p.rng != nil {
		r := *p.rng
		f.Range = &r
	}
	return f
}

// Clear discards everything staged.
func (p PendingSelection) Clear() PendingSelection {
	return PendingSelection{}
}
