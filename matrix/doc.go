// Package matrix provides the immutable pairwise distance cache and the
// instance-level bound estimates derived from it.
//
// A DistanceMatrix is built eagerly (O(n²) time and space) from an ordered
// node list. Distances follow the instance convention:
//
//   - Euclidean length, rounded UP to one decimal place (ceil at 0.1
//     granularity), so stored distances are stable and comparable as text.
//   - Symmetric: d(i,j) == d(j,i) for every pair except the canonical closing
//     query (destination, origin), which is forced to exactly 0 so a route
//     that ends at the destination closes its loop for free.
//   - The forced-zero closing edge is excluded from Extremes(); otherwise an
//     instance-wide minimum of 0 would corrupt every bound below.
//
// Bounds derived once per instance:
//
//	LowerBound = minD · n · (maxD + 1)
//	UpperBound = maxD · n · (maxD + 1)     (n = total node count)
//	ScaleL     = maxD · interior           (the objective's L constant)
//
// A degenerate instance with minD == maxD yields LowerBound == UpperBound;
// that is valid, not an error.
//
// Construction is the only place numeric faults can enter the solver, so it
// is strict: a NaN or non-finite coordinate aborts with a sentinel error
// rather than letting a poisoned matrix reach the search loops. After
// construction the matrix is read-only and safe to share across any number of
// concurrent runs without synchronization.
package matrix
