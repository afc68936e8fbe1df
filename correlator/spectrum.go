package correlator

import (
	"fmt"

	"github.com/katalvlaran/hadron/report"
)

// SpectrumColumns is the width of each meson-spectrum row: the time
// index followed by the 16 interpolator correlators.
const SpectrumColumns = NumInterpolators + 1

// MesonSpectrum — the spectroscopy driver.
//
// Description:
//
//	For every key of src1 (in source order) the driver loads the
//	matching propagator from both sources, computes the position-space
//	correlator for each of the 16 interpolators, and projects it onto
//	the requested momentum. The result is indexed
//
//	    out[pair][t][0]       = t (time index)
//	    out[pair][t][1..16]   = projected correlators, basis order
//
//	with one row per time-slice and one outer entry per propagator pair.
//
// A key present in src1 but failing to load from either source is fatal
// for the whole run: the returned error wraps the loader's error (e.g.
// ErrMissingKey) and names the key. Pairs are never silently skipped.
//
// Progress is reported per pair to rep; the sink is fire-and-forget and
// a nil rep degrades to report.Discard. Reporting never alters results.
//
// Errors:
//   - ErrBadShape      — invalid lattice extents.
//   - ErrNilSource     — either source nil.
//   - ErrShapeMismatch — a loaded propagator does not cover shape.
//   - Load failures, wrapped with the offending key.
//
// Complexity: numPairs · 16 · (one Correlate + one ProjectMomentum).
func (b *GammaBasis) MesonSpectrum(src1, src2 PropagatorSource, shape LatticeShape, p Momentum, rep report.Reporter) ([][][]float64, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if src1 == nil || src2 == nil {
		return nil, ErrNilSource
	}
	if rep == nil {
		rep = report.Discard
	}

	keys := src1.Keys()
	out := make([][][]float64, len(keys))
	for i, key := range keys {
		rep.Printf("computing correlators for propagator pair %d (%s)...", i, key)

		p1, err := src1.Load(key)
		if err != nil {
			return nil, fmt.Errorf("pair %q: %w", key, err)
		}
		p2, err := src2.Load(key)
		if err != nil {
			return nil, fmt.Errorf("pair %q: %w", key, err)
		}
		if p1 == nil || !p1.matchesShape(shape) || p2 == nil || !p2.matchesShape(shape) {
			return nil, fmt.Errorf("pair %q: %w", key, ErrShapeMismatch)
		}

		rows := make([][]float64, shape.TimeExtent())
		for t := range rows {
			rows[t] = make([]float64, SpectrumColumns)
			rows[t][0] = float64(t)
		}

		for j, gamma := range b.Interpolators() {
			pos, err := b.Correlate(p1, p2, gamma)
			if err != nil {
				return nil, fmt.Errorf("pair %q: %w", key, err)
			}
			proj, err := ProjectMomentum(pos, shape, p)
			if err != nil {
				return nil, fmt.Errorf("pair %q: %w", key, err)
			}
			for t, v := range proj {
				rows[t][j+1] = v
			}
		}
		out[i] = rows

		rep.Printf("pair %d done", i)
	}
	return out, nil
}
