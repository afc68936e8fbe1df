package stats

// Bin — decorrelation by sub-averaging.
//
// Description:
//
//	Successive Monte-Carlo configurations are correlated; averaging
//	consecutive groups ("bins") of size k yields approximately
//	independent sub-averages once k exceeds the autocorrelation time.
//
// Algorithm:
//  1. Partition s into consecutive, non-overlapping groups of `size`
//     elements along the leading axis.
//  2. Replace each group by its arithmetic mean.
//  3. If len(s) is not an exact multiple of `size`, the remainder forms
//     one final (necessarily short) bin.
//
// Output length = ceil(len(s)/size). size==1 is the identity (a copy is
// still returned: inputs are never aliased).
//
// Errors:
//   - ErrEmptySeries — empty input.
//   - ErrBadBinSize  — size < 1.
//
// Complexity: O(n) time, O(n/size) space.
func Bin(s []float64, size int) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptySeries
	}
	if size < 1 {
		return nil, ErrBadBinSize
	}

	out := make([]float64, binnedLen(len(s), size))
	for i := range out {
		lo := i * size
		hi := lo + size
		if hi > len(s) {
			hi = len(s) // short final bin from the remainder
		}
		var sum float64
		for _, v := range s[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out, nil
}

// BinRows is the batch form of Bin: rows are grouped along the leading
// axis and averaged component-wise, so each output row is the mean of a
// contiguous block of input rows. All rows must share one length.
//
// Errors:
//   - ErrEmptySeries — no rows.
//   - ErrBadBinSize  — size < 1.
//   - ErrRaggedRows  — rows of differing lengths.
//
// Complexity: O(n·w) time for n rows of width w.
func BinRows(rows [][]float64, size int) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySeries
	}
	if size < 1 {
		return nil, ErrBadBinSize
	}
	width, err := rectWidth(rows)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, binnedLen(len(rows), size))
	for i := range out {
		lo := i * size
		hi := lo + size
		if hi > len(rows) {
			hi = len(rows)
		}
		mean := make([]float64, width)
		for _, row := range rows[lo:hi] {
			for j, v := range row {
				mean[j] += v
			}
		}
		inv := 1.0 / float64(hi-lo)
		for j := range mean {
			mean[j] *= inv
		}
		out[i] = mean
	}
	return out, nil
}

// binnedLen returns ceil(n/size) for n >= 1, size >= 1.
func binnedLen(n, size int) int {
	return (n + size - 1) / size
}

// rectWidth returns the common row width, or ErrRaggedRows.
func rectWidth(rows [][]float64) (int, error) {
	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != width {
			return 0, ErrRaggedRows
		}
	}
	return width, nil
}
