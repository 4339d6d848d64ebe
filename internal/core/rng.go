package core

// RandomSource is the single source of randomness for a simulation.
// Tests substitute a fixed sequence to make serves predictable.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// SimpleRNG is a tiny deterministic LCG so runs can be replayed from a seed.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	// Top 53 bits keep the result strictly below 1.
	return float64(r.Next()>>11) / float64(1<<53)
}

// State exposes the generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// Uniform draws from the interval spanned by a and b. The bounds may be given
// in either order.
func Uniform(r RandomSource, a, b float64) float64 {
	return a + r.Float64()*(b-a)
}

// FixedSource replays a fixed list of values, cycling when exhausted.
type FixedSource struct {
	Values []float64
	next   int
}

// Float64 returns the next value in the list (0.5 when the list is empty).
func (f *FixedSource) Float64() float64 {
	if len(f.Values) == 0 {
		return 0.5
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}
