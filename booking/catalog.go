package booking

import (
	"sort"
	"strings"
	"time"
)

// BuildCatalog creates one session per (date, slot) pair, in the given
// order, with sequential ids starting at 1. The catalog is fixed: it is
// built once at startup and never changes afterwards.
func BuildCatalog(dates []string, slots []Slot) []Session {
	sessions := make([]Session, 0, len(dates)*len(slots))
	nextID := int64(1)
	for _, date := range dates {
		for _, slot := range slots {
			sessions = append(sessions, Session{
				ID:   nextID,
				Name: slot.Name,
				Date: date,
				Time: slot.Time,
			})
			nextID++
		}
	}
	return sessions
}

// ParseStart combines a date with the opening clock time of a range
// ("7:30pm-8:30pm" -> 7:30pm) into a full timestamp. The timestamp is used
// for ordering and schedule validation only; it is never stored.
func ParseStart(date, timeRange string) (time.Time, error) {
	start, _, _ := strings.Cut(timeRange, "-")
	return time.Parse("2006-01-02 3:04pm", date+" "+start)
}

// startTime is the sort key; malformed input collapses to the zero time
// and sorts first.
func (s Session) startTime() time.Time {
	t, err := ParseStart(s.Date, s.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SortedByDateTime returns a copy of sessions ordered by date and start
// time ascending. Sessions sharing a date and start time are ordered by
// name. The input slice is not modified.
func SortedByDateTime(sessions []Session) []Session {
	out := make([]Session, len(sessions))
	copy(out, sessions)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].startTime(), out[j].startTime()
		if ti.Equal(tj) {
			return out[i].Name < out[j].Name
		}
		return ti.Before(tj)
	})
	return out
}

// DateGroup is one bucket of a date-grouped view.
type DateGroup struct {
	Date     string
	Sessions []Session
}

// GroupByDate partitions sessions into per-date buckets. Bucket order
// follows the first occurrence of each date and sessions keep the relative
// order they arrived in, so callers wanting sorted groups should sort
// before grouping.
func GroupByDate(sessions []Session) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int)
	for _, s := range sessions {
		i, ok := index[s.Date]
		if !ok {
			i = len(groups)
			index[s.Date] = i
			groups = append(groups, DateGroup{Date: s.Date})
		}
		groups[i].Sessions = append(groups[i].Sessions, s)
	}
	return groups
}
