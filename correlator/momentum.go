package correlator

import "math"

// ProjectMomentum — discrete Fourier projection of a position-space
// correlator onto one lattice momentum.
//
// Description:
//
//	For each time-slice t,
//
//	    C(t, p) = Re Σ_site C(t, site) · exp(i·Σ_k site_k·p_k·2π/N_k)
//
//	where N_k are the spatial extents. Sites enumerate x outermost and z
//	innermost, matching the propagator's flat site layout, so pos must
//	be the Volume()-length output of Correlate on the same lattice. The
//	correlator values are real, so the retained real part reduces to a
//	cosine-weighted sum; zero momentum is the plain spatial sum.
//
// Errors:
//   - ErrBadShape      — invalid lattice extents.
//   - ErrShapeMismatch — len(pos) differs from shape.Volume().
//
// Complexity: O(Volume) time, O(SpatialVolume) space for the phase table.
func ProjectMomentum(pos []float64, shape LatticeShape, p Momentum) ([]float64, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(pos) != shape.Volume() {
		return nil, ErrShapeMismatch
	}

	nx, ny, nz := shape[1], shape[2], shape[3]
	sites := shape.SpatialVolume()

	// Phase table per spatial site; reused across time-slices.
	phases := make([]float64, sites)
	fx := 2 * math.Pi / float64(nx)
	fy := 2 * math.Pi / float64(ny)
	fz := 2 * math.Pi / float64(nz)
	s := 0
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				theta := float64(x)*p[0]*fx + float64(y)*p[1]*fy + float64(z)*p[2]*fz
				phases[s] = math.Cos(theta)
				s++
			}
		}
	}

	out := make([]float64, shape.TimeExtent())
	for t := range out {
		base := t * sites
		var sum float64
		for s := 0; s < sites; s++ {
			sum += pos[base+s] * phases[s]
		}
		out[t] = sum
	}
	return out, nil
}
