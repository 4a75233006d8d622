package domain

import "math/bits"

// CandidateSet is a 9-bit membership set over the digits 1-9.
// Bit d-1 represents digit d (bit 0 = digit 1, bit 8 = digit 9).
type CandidateSet uint16

const allNine CandidateSet = 0x1FF

// AllCandidates returns the full set {1..9}.
func AllCandidates() CandidateSet { return allNine }

// NoCandidates returns the empty set.
func NoCandidates() CandidateSet { return 0 }

// SingleCandidate returns the singleton set {d}. Digits outside 1-9
// yield the empty set.
func SingleCandidate(d int) CandidateSet {
	if d < 1 || d > 9 {
		return 0
	}
	return 1 << (d - 1)
}

// Contains reports whether digit d is in the set.
func (s CandidateSet) Contains(d int) bool {
	return s&SingleCandidate(d) != 0
}

// Insert returns the set with digit d added.
func (s CandidateSet) Insert(d int) CandidateSet {
	return s | SingleCandidate(d)
}

// Count returns the number of digits in the set.
func (s CandidateSet) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Take removes and returns the lowest digit in the set. It reports
// false once the set is exhausted. Callers iterate a value copy, so
// taking never disturbs board state:
//
//	for set := cell.Candidates(); ; {
//		d, ok := set.Take()
//		if !ok { break }
//		...
//	}
func (s *CandidateSet) Take() (int, bool) {
	if *s == 0 {
		return 0, false
	}
	d := bits.TrailingZeros16(uint16(*s)) + 1
	*s &= *s - 1
	return d, true
}
