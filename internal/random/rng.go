// Package random provides the deterministic pseudo-random source used
// by puzzle generation. It is a self-contained combined generator: the
// same seed reproduces the same draw sequence on every platform, which
// makes generated boards usable as fixed test vectors. math/rand is
// deliberately not used here; its stream is not part of this module's
// compatibility surface.
package random

// Source combines three independent update rules, one per state word:
// a multiplicative congruential step, a 64-bit xorshift, and a 32/64
// multiply-with-carry. One draw advances all three and merges them by
// addition and XOR.
//
// Source is not goroutine-safe; generation is single-threaded.
type Source struct {
	cng uint64
	xsh uint64
	mwc uint64
}

// New seeds a Source. All three words start from the seed, then the
// first three internal draws cross-seed the words before any value is
// exposed, so early outputs do not correlate with the raw seed.
func New(seed uint64) *Source {
	s := &Source{cng: seed, xsh: seed, mwc: seed}
	if s.xsh == 0 {
		// xorshift state must never be zero or it stays zero.
		s.xsh = 0x9E3779B97F4A7C15
	}
	s.cng = s.Next()
	s.mwc = s.Next()
	s.xsh = s.Next()
	if s.xsh == 0 {
		s.xsh = 0x9E3779B97F4A7C15
	}
	return s
}

// Next advances the generator and returns one 64-bit draw.
func (s *Source) Next() uint64 {
	s.cng = s.cng*6906969069 + 1234567
	s.xsh ^= s.xsh << 13
	s.xsh ^= s.xsh >> 17
	s.xsh ^= s.xsh << 43
	s.mwc = (s.mwc&0xFFFFFFFF)*4294957665 + s.mwc>>32
	return s.cng + (s.xsh ^ s.mwc)
}

// Range returns a draw in [min, max). The modulo fold is biased for
// ranges that are not a power of two; that bias is accepted — the
// source is for shuffling, and changing the fold would change every
// seeded board.
func (s *Source) Range(min, max int) int {
	return int(s.Next()%uint64(max-min)) + min
}

// Shuffle permutes xs in place by swapping each position with a
// uniformly drawn position at or after it. The loop intentionally stops
// one position short of the textbook Fisher-Yates bound, so the last
// two elements' relative order is decided only by earlier swaps.
// Correcting the bound would subtly change the output distribution and
// invalidate every board generated from a recorded seed, so the
// original boundary is kept.
func (s *Source) Shuffle(xs []int) {
	for i := 0; i < len(xs)-2; i++ {
		j := s.Range(i, len(xs))
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Perm returns a shuffled permutation of 0..n-1.
func (s *Source) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	s.Shuffle(p)
	return p
}
