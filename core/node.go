// Package core - node value type and instance-level ID conventions.
//
// Nodes are plain immutable values; all heavy data (pairwise distances) lives
// in the matrix package. Identity and hashing are by ID only, so a Node can be
// used directly as a map key once coordinates are fixed for the run.
package core

import "errors"

// OriginID is the fixed identifier of the start depot.
const OriginID = 0

// Sentinel errors for core-level preconditions.
var (
	// ErrTooFewNodes indicates an instance smaller than the minimal
	// origin+destination pair.
	ErrTooFewNodes = errors.New("core: instance needs at least two nodes")

	// ErrNonContiguousIDs indicates node IDs are not exactly 0..n-1.
	ErrNonContiguousIDs = errors.New("core: node IDs must be contiguous from 0")
)

// Node is an immutable point in the plane. Equality by ID: two nodes with the
// same ID refer to the same location for the lifetime of a run.
type Node struct {
	// ID uniquely identifies the node; non-negative, contiguous per instance.
	ID int

	// X, Y are Euclidean coordinates.
	X, Y float64
}

// DestinationID returns the identifier of the end depot for an instance of
// nodeCount nodes. By convention the destination carries the highest ID.
//
// Complexity: O(1).
func DestinationID(nodeCount int) int {
	return nodeCount - 1
}

// InteriorCount returns n, the number of nodes strictly between the two
// depots. The parity rule and the objective's L constant are both defined
// over this count.
//
// Complexity: O(1).
func InteriorCount(nodeCount int) int {
	if nodeCount < 2 {
		return 0
	}
	return nodeCount - 2
}

// ValidateNodeSet verifies the core precondition on an ordered node list:
// at least two nodes, IDs exactly 0..len-1 (each appearing once). The data
// layer performs richer validation; this is the fail-fast guard the solver
// applies to its own inputs.
//
// Complexity: O(n) time, O(n) space.
func ValidateNodeSet(nodes []Node) error {
	if len(nodes) < 2 {
		return ErrTooFewNodes
	}
	seen := make([]bool, len(nodes))

	var i int
	for i = 0; i < len(nodes); i++ {
		id := nodes[i].ID
		if id < 0 || id >= len(nodes) || seen[id] {
			return ErrNonContiguousIDs
		}
		seen[id] = true
	}

	return nil
}
