package booking

import (
	"slices"
	"strconv"
	"strings"

	"agenda-web/internal/pkg/errs"
)

type Slot struct {
	Time      string
	Available bool
}

// SlotSet is one availability answer. When a time is reported both available and
// occupied it is shown as available.
type SlotSet struct {
	available map[string]struct{}
	merged    []Slot
}

func NewSlotSet(available, occupied []string) (SlotSet, error) {
	set := SlotSet{available: make(map[string]struct{}, len(available))}
	seen := make(map[string]struct{}, len(available)+len(occupied))
	keys := make([]string, 0, len(available)+len(occupied))

	for _, raw := range available {
		t, err := NormalizeClock(raw)
		if err != nil {
			return SlotSet{}, err
		}
		set.available[t] = struct{}{}
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			keys = append(keys, t)
		}
	}
	for _, raw := range occupied {
		t, err := NormalizeClock(raw)
		if err != nil {
			return SlotSet{}, err
		}
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			keys = append(keys, t)
		}
	}

	// zero-padded HH:MM sorts chronologically
	slices.Sort(keys)
	set.merged = make([]Slot, len(keys))
	for i, k := range keys {
		_, ok := set.available[k]
		set.merged[i] = Slot{Time: k, Available: ok}
	}
	return set, nil
}

func (s SlotSet) Slots() []Slot {
	out := make([]Slot, len(s.merged))
	copy(out, s.merged)
	return out
}

func (s SlotSet) IsAvailable(t string) bool {
	_, ok := s.available[t]
	return ok
}

func (s SlotSet) IsEmpty() bool { return len(s.merged) == 0 }

func (s SlotSet) AvailableCount() int { return len(s.available) }

func (s SlotSet) OccupiedCount() int { return len(s.merged) - len(s.available) }

// NormalizeClock accepts "H:MM", "HH:MM" or "HH:MM:SS" and returns "HH:MM".
// Every segment must be plain digits.
func NormalizeClock(raw string) (string, error) {
	invalid := func() (string, error) {
		return "", errs.Invalid(errs.Wrapf(ErrInvalidSlotFormat, "%q", raw))
	}

	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return invalid()
	}
	h, ok := clockField(parts[0], 1, 23)
	if !ok {
		return invalid()
	}
	m, ok := clockField(parts[1], 2, 59)
	if !ok {
		return invalid()
	}
	if len(parts) == 3 {
		if _, ok := clockField(parts[2], 2, 59); !ok {
			return invalid()
		}
	}
	return twoDigits(h) + ":" + twoDigits(m), nil
}

// clockField parses minLen..2 ASCII digits no greater than limit.
func clockField(s string, minLen, limit int) (int, bool) {
	if len(s) < minLen || len(s) > 2 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, n <= limit
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
