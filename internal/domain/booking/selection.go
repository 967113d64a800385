package booking

import (
	"agenda-web/internal/domain/catalog"
)

// SelectionSet keeps selected services unique by id, in selection order.
type SelectionSet struct {
	items []catalog.ServiceOption
}

// Toggle removes the option if its id is selected, otherwise appends it.
// It reports whether the option is selected afterwards.
func (s *SelectionSet) Toggle(opt catalog.ServiceOption) bool {
	for i, it := range s.items {
		if it.ID == opt.ID {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, opt)
	return true
}

func (s *SelectionSet) Contains(id int) bool {
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

func (s *SelectionSet) Len() int { return len(s.items) }

func (s *SelectionSet) IsEmpty() bool { return len(s.items) == 0 }

// Items returns a snapshot; callers may not mutate the set through it.
func (s *SelectionSet) Items() []catalog.ServiceOption {
	out := make([]catalog.ServiceOption, len(s.items))
	copy(out, s.items)
	return out
}

// Subtotal is the plain sum of unit prices. Durations are not aggregated.
func (s *SelectionSet) Subtotal() int64 {
	var total int64
	for _, it := range s.items {
		total += it.Price
	}
	return total
}

func (s *SelectionSet) Names() []string {
	names := make([]string, len(s.items))
	for i, it := range s.items {
		names[i] = it.Name
	}
	return names
}

func (s *SelectionSet) Reset() {
	s.items = nil
}
