// Package selection tracks which artwork records the user has marked.
//
// A Set is keyed by record id and is independent of the page being shown:
// ids selected on one page stay selected while other pages are browsed. The
// set is never reconciled against the server, so ids of records that have
// since disappeared upstream simply remain members.
package selection

import "sort"

// Set is a set of record identifiers. The zero value is an empty set ready to use.
type Set struct {
	ids map[int]struct{}
}

// New returns a set containing ids.
func New(ids ...int) *Set {
	s := &Set{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s *Set) ensure() {
	if s.ids == nil {
		s.ids = make(map[int]struct{})
	}
}

// Contains reports whether id is selected.
func (s *Set) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Set) Len() int {
	return len(s.ids)
}

// Toggle flips the membership of id and reports whether it is now selected.
func (s *Set) Toggle(id int) bool {
	s.ensure()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// AllSelected reports whether ids is non-empty and every id is selected.
func (s *Set) AllSelected(ids []int) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// ToggleAll implements "select all on this page". With no ids it does
// nothing. If every id is already selected exactly those ids are removed;
// otherwise all of them are added. Members outside ids are never touched.
// It reports whether the ids are selected afterwards.
func (s *Set) ToggleAll(ids []int) bool {
	if len(ids) == 0 {
		return false
	}
	s.ensure()
	if s.AllSelected(ids) {
		for _, id := range ids {
			delete(s.ids, id)
		}
		return false
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return true
}

// IDs returns the selected ids in ascending order.
func (s *Set) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return New(s.IDs()...)
}
