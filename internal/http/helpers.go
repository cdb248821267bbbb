package http

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"revboard/internal/core"
)

// clientIP extracts the caller address, honoring proxy headers.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		// First hop in the chain is the original client.
		if idx := strings.IndexByte(ip, ','); idx >= 0 {
			ip = ip[:idx]
		}
		return strings.TrimSpace(ip)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// parseFilter builds the applied filter from query parameters. The
// date range is all-or-nothing: a lone start or end is an error, and
// both bounds must be calendar dates.
func parseFilter(r *http.Request) (core.FilterState, error) {
	q := r.URL.Query()
	var f core.FilterState

	start := strings.TrimSpace(q.Get("start"))
	end := strings.TrimSpace(q.Get("end"))
	switch {
	case start == "" && end == "":
		// no range
	case start == "" || end == "":
		return f, fmt.Errorf("start and end must be provided together")
	default:
		for _, v := range []string{start, end} {
			if _, err := time.Parse("2006-01-02", v); err != nil {
				return f, fmt.Errorf("invalid date %q: want YYYY-MM-DD", v)
			}
		}
		if start > end {
			return f, fmt.Errorf("start %q is after end %q", start, end)
		}
		f.Range = &core.DateRange{Start: start, End: end}
	}

	for _, label := range q["label"] {
		label = strings.TrimSpace(label)
		if label != "" {
			f.Labels = append(f.Labels, label)
		}
	}

	return f, nil
}

// filterKey derives a stable cache key from an applied filter.
func filterKey(f core.FilterState) string {
	var b strings.Builder
	if f.Range != nil {
		b.WriteString(f.Range.Start)
		b.WriteString("..")
		b.WriteString(f.Range.End)
	}
	b.WriteByte('|')
	labels := append([]string(nil), f.Labels...)
	sort.Strings(labels)
	b.WriteString(strings.Join(labels, ","))
	return b.String()
}
