// Package core - the parity transition rule.
//
// The rule couples node ID parity to a position threshold and is what makes
// the search space non-standard: a segment reversal that would be trivially
// legal in plain TSP can flip an interior transition into a forbidden one, so
// every operator re-validates candidates instead of assuming closure.
package core

// ForbiddenTransition reports whether traveling from interior node i to
// interior node j is forbidden. interior is n, the count of nodes strictly
// between the depots. The rule:
//
//	forbidden iff (i even AND j odd AND i < n/2)
//	           OR (i odd  AND j even AND i ≥ n/2)
//
// Depot endpoints are exempt; callers must not pass them in. Comparisons
// against n/2 are done in integers (2·i vs n) to avoid float thresholds.
//
// Complexity: O(1).
func ForbiddenTransition(i, j, interior int) bool {
	iEven := i%2 == 0
	jEven := j%2 == 0

	// Even→odd is forbidden in the lower half of the ID range.
	if iEven && !jEven && 2*i < interior {
		return true
	}
	// Odd→even is forbidden in the upper half.
	if !iEven && jEven && 2*i >= interior {
		return true
	}

	return false
}
