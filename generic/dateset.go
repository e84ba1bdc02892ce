package generic

import "sort"

// DateSet is a set of target dates keyed by their text form. Selecting a
// date twice toggles it back out. Entries are kept as text so a set built
// from user input can hold values that later fail to parse; Sorted drops
// those.
type DateSet struct {
	keys map[string]struct{}
}

// NewDateSet builds a set from text entries; duplicates collapse.
func NewDateSet(entries ...string) *DateSet {
	s := &DateSet{keys: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		s.keys[e] = struct{}{}
	}
	return s
}

// DateSetOf builds a set from already-parsed dates.
func DateSetOf(dates ...Date) *DateSet {
	s := NewDateSet()
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

func (s *DateSet) Add(d Date)    { s.keys[FormatDate(d)] = struct{}{} }
func (s *DateSet) Remove(d Date) { delete(s.keys, FormatDate(d)) }
func (s *DateSet) Contains(d Date) bool {
	_, ok := s.keys[FormatDate(d)]
	return ok
}
func (s *DateSet) Len() int { return len(s.keys) }

// Toggle adds d when absent and removes it when present. It reports
// whether d is selected afterwards.
func (s *DateSet) Toggle(d Date) bool {
	key := FormatDate(d)
	if _, ok := s.keys[key]; ok {
		delete(s.keys, key)
		return false
	}
	s.keys[key] = struct{}{}
	return true
}

// Sorted realizes the set as a chronologically ascending sequence. Entries
// that are not valid dates are left out.
func (s *DateSet) Sorted() []Date {
	dates := make([]Date, 0, len(s.keys))
	for key := range s.keys {
		if d, ok := ParseDate(key); ok {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	// "2025-3-4" and "2025-03-04" are distinct keys for the same day.
	out := dates[:0]
	for i, d := range dates {
		if i > 0 && d.Equal(dates[i-1]) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Invalid returns the entries that Sorted leaves out, in lexical order.
func (s *DateSet) Invalid() []string {
	var bad []string
	for key := range s.keys {
		if _, ok := ParseDate(key); !ok {
			bad = append(bad, key)
		}
	}
	sort.Strings(bad)
	return bad
}
