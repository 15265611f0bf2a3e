// Package reproduce encodes everything needed to replay one property case
// byte-for-byte, including the shrink path that led to its counter-example,
// as a short opaque string a user can paste into a regression test.
// Grounded on rapidcheck/detail/Random.hpp's Random::sourceSeed/Seed
// round-trip and Check.hpp's reproduce-from-seed replay (original_source);
// the teacher's module has no equivalent, since google/go-cmp's Equal
// never needed to survive a process boundary.
package reproduce

// Token is the decoded, structured form of a reproduction string: enough
// state to rebuild the exact random.Random a case was generated from, the
// size it was generated at, and the path of shrink-tree child indices that
// reached its counter-example.
type Token struct {
	// Seed is the base seed random.FromSeed was called with to build the
	// case's root Random.
	Seed uint64
	// Path is the sequence of split decisions (0 = left, 1 = right) taken
	// from the root Random down to the one the case actually drew from.
	Path []byte
	// Counter is the draw count already consumed at that leaf when the
	// case ran; replaying must fast-forward Next() this many times, or
	// equivalently trust that a freshly split Random starts at counter 0
	// and the leaf itself was never advanced before the case began (true
	// for every path this package produces, since check.Run never reuses
	// a leaf across cases).
	Counter uint64
	// Size is the size hint the case generated at.
	Size int
	// ShrinkPath is the sequence of child indices FindLocalMin accepted,
	// empty for an unshrunk (or successful) case.
	ShrinkPath []int
}

// Equal reports whether two Tokens describe the same replay.
func (t Token) Equal(other Token) bool {
	if t.Seed != other.Seed || t.Counter != other.Counter || t.Size != other.Size {
		return false
	}
	if len(t.Path) != len(other.Path) || len(t.ShrinkPath) != len(other.ShrinkPath) {
		return false
	}
	for i := range t.Path {
		if t.Path[i] != other.Path[i] {
			return false
		}
	}
	for i := range t.ShrinkPath {
		if t.ShrinkPath[i] != other.ShrinkPath[i] {
			return false
		}
	}
	return true
}
