// Package correlator: lattice geometry and the propagator tensor.
package correlator

import "fmt"

// Tensor dimensions fixed by the physics: Dirac spinors carry 4 spin
// components, QCD quarks carry 3 colours.
const (
	NumSpins   = 4
	NumColours = 3

	// siteBlock is the number of complex amplitudes stored per lattice
	// site: two spin and two colour indices.
	siteBlock = NumSpins * NumSpins * NumColours * NumColours
)

// LatticeShape holds the four lattice extents (T, X, Y, Z).
type LatticeShape [4]int

// TimeExtent returns T.
func (s LatticeShape) TimeExtent() int { return s[0] }

// SpatialVolume returns X·Y·Z, the number of sites per time-slice.
func (s LatticeShape) SpatialVolume() int { return s[1] * s[2] * s[3] }

// Volume returns the total number of lattice sites T·X·Y·Z.
func (s LatticeShape) Volume() int { return s[0] * s.SpatialVolume() }

// Validate reports ErrBadShape unless every extent is at least 1.
func (s LatticeShape) Validate() error {
	for _, n := range s {
		if n < 1 {
			return ErrBadShape
		}
	}
	return nil
}

// Momentum holds the three integer-valued lattice momentum components
// (in units of 2π/extent per axis). Float components are accepted so
// twisted boundary momenta remain expressible.
type Momentum [3]float64

// Propagator is the quark propagation amplitude from a fixed source to
// every lattice point: a complex tensor indexed by (time, spatial site,
// sink spin, source spin, sink colour, source colour).
//
// Storage is one flat row-major buffer, site-major: all 4·4·3·3 = 144
// amplitudes of a site are contiguous. The correlator engine reads it
// through that layout and never mutates it.
type Propagator struct {
	timeExtent int
	sites      int
	data       []complex128
}

// NewPropagator allocates a zeroed propagator for the given time extent
// and spatial sites per time-slice.
//
// Errors:
//   - ErrBadShape — either dimension below 1.
func NewPropagator(timeExtent, sites int) (*Propagator, error) {
	if timeExtent < 1 || sites < 1 {
		return nil, ErrBadShape
	}
	return &Propagator{
		timeExtent: timeExtent,
		sites:      sites,
		data:       make([]complex128, timeExtent*sites*siteBlock),
	}, nil
}

// TimeExtent returns the number of time-slices.
func (p *Propagator) TimeExtent() int { return p.timeExtent }

// Sites returns the number of spatial sites per time-slice.
func (p *Propagator) Sites() int { return p.sites }

// At returns the amplitude at (t, x, sink spin α, source spin β, sink
// colour a, source colour b) with full bounds checking.
//
// Errors:
//   - ErrIndexOutOfRange — any index outside its bounds.
func (p *Propagator) At(t, x, alpha, beta, a, b int) (complex128, error) {
	if err := p.check(t, x, alpha, beta, a, b); err != nil {
		return 0, err
	}
	return p.data[p.index(t*p.sites+x, alpha, beta, a, b)], nil
}

// Set stores the amplitude at (t, x, α, β, a, b) with full bounds
// checking.
//
// Errors:
//   - ErrIndexOutOfRange — any index outside its bounds.
func (p *Propagator) Set(t, x, alpha, beta, a, b int, v complex128) error {
	if err := p.check(t, x, alpha, beta, a, b); err != nil {
		return err
	}
	p.data[p.index(t*p.sites+x, alpha, beta, a, b)] = v
	return nil
}

// index maps (flat site v, α, β, a, b) to the flat buffer offset.
// Bounds are the caller's responsibility.
func (p *Propagator) index(v, alpha, beta, a, b int) int {
	return v*siteBlock + ((alpha*NumSpins+beta)*NumColours+a)*NumColours + b
}

// check validates all six indices.
func (p *Propagator) check(t, x, alpha, beta, a, b int) error {
	switch {
	case t < 0 || t >= p.timeExtent,
		x < 0 || x >= p.sites,
		alpha < 0 || alpha >= NumSpins,
		beta < 0 || beta >= NumSpins,
		a < 0 || a >= NumColours,
		b < 0 || b >= NumColours:
		return ErrIndexOutOfRange
	}
	return nil
}

// matchesShape reports whether the propagator covers the given lattice.
func (p *Propagator) matchesShape(shape LatticeShape) bool {
	return p.timeExtent == shape.TimeExtent() && p.sites == shape.SpatialVolume()
}

// sameShape reports whether two propagators share dimensions.
func (p *Propagator) sameShape(q *Propagator) bool {
	return p.timeExtent == q.timeExtent && p.sites == q.sites
}

// PropagatorSource is the external dataset-loader contract: an ordered
// set of propagator identifiers with synchronous, fully-materializing
// loads. Keys must iterate in a stable order across calls.
type PropagatorSource interface {
	// Keys returns the source identifiers in stable order.
	Keys() []string

	// Load materializes the propagator stored under key.
	Load(key string) (*Propagator, error)
}

// MemSource is the ordered in-memory PropagatorSource used by tests and
// as the reference implementation. Keys iterate in insertion order.
type MemSource struct {
	keys  []string
	props map[string]*Propagator
}

// NewMemSource returns an empty source.
func NewMemSource() *MemSource {
	return &MemSource{props: make(map[string]*Propagator)}
}

// Add registers p under key. Re-adding an existing key replaces the
// propagator without changing the key order.
func (s *MemSource) Add(key string, p *Propagator) {
	if _, ok := s.props[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.props[key] = p
}

// Keys returns the identifiers in insertion order (a copy).
func (s *MemSource) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Load returns the propagator stored under key.
//
// Errors:
//   - ErrMissingKey — no propagator registered under key.
func (s *MemSource) Load(key string) (*Propagator, error) {
	p, ok := s.props[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	return p, nil
}
