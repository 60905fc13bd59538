// Package flag implements Hunspell flag identifiers and flag sets.
//
// A Flag is a small positive integer in [1, 65535] attached to dictionary
// entries and affix rules. Its textual spelling on disk depends on the
// affix file's declared Codec (see codec.go); internally every flag is
// normalized to its integer identifier so the rest of the engine never
// deals with encoding-specific text again.
package flag

// Flag is a normalized flag identifier. Valid flags are in [1, 65535];
// the zero value is never assigned to a real flag. Fields that hold a
// single optional Flag (e.g. affix.CompoundDirectives.Permit) stay zero
// when unconfigured and are paired with a Has* boolean.
type Flag uint16

// Set is an ordered set of Flags, adapted from a dense/sparse dual-array
// membership structure: O(1) Contains/Add/Remove without ever sorting,
// while Iter and Slice still yield elements in insertion order (a Remove
// moves the last member into the removed member's slot). Equal
// ignores insertion order, matching the FlagSet invariant that two flag
// sets compare equal regardless of the order their members were added.
//
// The zero value is an empty, usable set.
type Set struct {
	sparse []uint32 // Flag value -> index into dense (lazily sized)
	dense  []Flag   // insertion-ordered members
}

// New returns a Set containing the given flags, in order, de-duplicated.
func New(flags ...Flag) Set {
	var s Set
	for _, f := range flags {
		s.Add(f)
	}
	return s
}

func (s *Set) ensure(capacity int) {
	if capacity < len(s.sparse) {
		return
	}
	grown := make([]uint32, capacity+1)
	copy(grown, s.sparse)
	s.sparse = grown
}

// Contains reports whether f is a member of the set.
func (s *Set) Contains(f Flag) bool {
	if int(f) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[f]
	return int(idx) < len(s.dense) && s.dense[idx] == f
}

// Add inserts f into the set. A no-op if f is already present.
func (s *Set) Add(f Flag) {
	if s.Contains(f) {
		return
	}
	s.ensure(int(f))
	s.sparse[f] = uint32(len(s.dense))
	s.dense = append(s.dense, f)
}

// Remove deletes f from the set, swapping the last element into its slot.
// A no-op if f is not present.
func (s *Set) Remove(f Flag) {
	if !s.Contains(f) {
		return
	}
	idx := s.sparse[f]
	last := s.dense[len(s.dense)-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.dense = s.dense[:len(s.dense)-1]
}

// Len returns the number of flags in the set.
func (s *Set) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return len(s.dense) == 0
}

// Slice returns the set's members in insertion order. The returned slice
// must not be mutated; it aliases internal state.
func (s *Set) Slice() []Flag {
	return s.dense
}

// Iter calls f for every member of the set, in insertion order.
func (s *Set) Iter(f func(Flag)) {
	for _, v := range s.dense {
		f(v)
	}
}

// Union returns a new Set containing every flag in s or in other.
func (s *Set) Union(other *Set) Set {
	var out Set
	s.Iter(func(f Flag) { out.Add(f) })
	other.Iter(func(f Flag) { out.Add(f) })
	return out
}

// UnionInto adds every flag of other into s, mutating s in place.
func (s *Set) UnionInto(other *Set) {
	other.Iter(func(f Flag) { s.Add(f) })
}

// Equal reports whether s and other contain the same flags, irrespective
// of insertion order.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	eq := true
	s.Iter(func(f Flag) {
		if !other.Contains(f) {
			eq = false
		}
	})
	return eq
}

// Clone returns an independent copy of s.
func (s *Set) Clone() Set {
	var out Set
	out.ensure(len(s.sparse) - 1)
	copy(out.sparse, s.sparse)
	out.dense = append([]Flag(nil), s.dense...)
	return out
}
