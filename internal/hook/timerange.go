package hook

import (
	"fmt"
	"strconv"
	"strings"

	"confgen/internal/schema"
)

// Range is a time range in seconds since midnight.
type Range struct {
	Start uint64
	End   uint64
}

// DaysValue is the model of a DaysArray field, keyed by weekday.
type DaysValue map[string][]Range

// TimeRange fills one weekday of a DaysArray field per key.
type TimeRange struct {
	field string
}

// NewTimeRange returns a weekly time-range rule.
func NewTimeRange(field string) *TimeRange {
	return &TimeRange{field: field}
}

func (r *TimeRange) Kind() Kind    { return KindTimeRange }
func (r *TimeRange) Field() string { return r.field }

func (r *TimeRange) Branches() []Branch {
	branches := make([]Branch, 0, len(schema.Weekdays))
	for _, day := range schema.Weekdays {
		branches = append(branches, Branch{
			Keys: []string{day},
			Body: []string{
				fmt.Sprintf("return fill_timeranges(obj->mutable_%s()->mutable_%s(), value);", r.field, day),
			},
		})
	}

	return branches
}

func (r *TimeRange) Apply(st State, key, value string) bool {
	ranges, ok := ParseRanges(value)
	if !ok {
		return false
	}

	days, _ := st[r.field].(DaysValue)
	if days == nil {
		days = DaysValue{}
	}

	days[key] = ranges
	st[r.field] = days

	return true
}

// ParseRanges parses "HH:MM-HH:MM[,HH:MM-HH:MM...]".
func ParseRanges(value string) ([]Range, bool) {
	var out []Range

	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		start, end, found := strings.Cut(item, "-")
		if !found {
			return nil, false
		}

		s, ok := parseClock(start)
		if !ok {
			return nil, false
		}

		e, ok := parseClock(end)
		if !ok || e < s {
			return nil, false
		}

		out = append(out, Range{Start: s, End: e})
	}

	return out, true
}

func parseClock(s string) (uint64, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}

	h, err := strconv.ParseUint(hh, 10, 64)
	if err != nil || h > 24 {
		return 0, false
	}

	m, err := strconv.ParseUint(mm, 10, 64)
	if err != nil || m > 59 || (h == 24 && m != 0) {
		return 0, false
	}

	return h*3600 + m*60, true
}
