package subsets

import (
	"sort"
	"strconv"
	"strings"
)

// Set is a finite set of integers. The zero value is not usable; build
// sets with New. A Set is owned by whoever holds it: package code always
// hands out fresh copies and never retains a caller's Set.
type Set map[int]struct{}

// New returns a Set containing exactly the given elements.
func New(elems ...int) Set {
	s := make(Set, len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Contains reports whether e is a member of s.
func (s Set) Contains(e int) bool {
	_, ok := s[e]
	return ok
}

// Add inserts e into s.
func (s Set) Add(e int) {
	s[e] = struct{}{}
}

// Len returns the cardinality |s|.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for e := range s {
		c[e] = struct{}{}
	}
	return c
}

// Union returns a fresh set holding every element of s and t.
func (s Set) Union(t Set) Set {
	u := make(Set, len(s)+len(t))
	for e := range s {
		u[e] = struct{}{}
	}
	for e := range t {
		u[e] = struct{}{}
	}
	return u
}

// Equal reports whether s and t contain exactly the same elements.
func (s Set) Equal(t Set) bool {
	if len(s) != len(t) {
		return false
	}
	for e := range s {
		if _, ok := t[e]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the elements of s in ascending order.
// Display and persistence always go through Sorted so output is stable.
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Ints(out)
	return out
}

// String renders s as "{a,b,c}" with ascending elements, "∅" when empty.
func (s Set) String() string {
	if len(s) == 0 {
		return "∅"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range s.Sorted() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(e))
	}
	b.WriteByte('}')
	return b.String()
}
