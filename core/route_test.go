// Package core_test exercises the Route value semantics and the parity
// transition rule via the public API.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routespan/core"
)

// -----------------------------------------------------------------------------
// Route value semantics
// -----------------------------------------------------------------------------

func TestNewRoute_CopiesInput(t *testing.T) {
	ids := []int{0, 2, 1, 3}
	r := core.NewRoute(ids)

	ids[1] = 99 // caller mutates its slice; the route must not see it
	assert.Equal(t, 2, r.At(1))
}

func TestRoute_IDsReturnsIndependentCopy(t *testing.T) {
	r := core.NewRoute([]int{0, 1, 2})
	got := r.IDs()
	got[0] = 42

	assert.Equal(t, 0, r.At(0))
}

func TestRoute_CloneIsIndependent(t *testing.T) {
	r := core.NewRoute([]int{0, 1, 2, 3})
	r.SetMetrics(10, 2, 50)

	c := r.Clone()

	// The clone carries the cache...
	d, delta, obj, ok := c.Metrics()
	require.True(t, ok)
	assert.Equal(t, 10.0, d)
	assert.Equal(t, 2.0, delta)
	assert.Equal(t, 50.0, obj)

	// ...and shares no backing storage.
	assert.NotSame(t, &r, &c)
	assert.Equal(t, r.String(), c.String())
}

func TestRoute_MetricsInvalidUntilStamped(t *testing.T) {
	r := core.NewRoute([]int{0, 1})
	_, _, _, ok := r.Metrics()
	assert.False(t, ok, "fresh route must not expose metrics")

	r.SetMetrics(1, 0, 1)
	_, _, _, ok = r.Metrics()
	assert.True(t, ok)
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "0-3-1-2", core.NewRoute([]int{0, 3, 1, 2}).String())
	assert.Equal(t, "", core.NewRoute(nil).String())
}

// -----------------------------------------------------------------------------
// Parity transition rule
// -----------------------------------------------------------------------------

func TestForbiddenTransition_Table(t *testing.T) {
	// interior = 6: threshold n/2 = 3.
	cases := []struct {
		name      string
		i, j      int
		forbidden bool
	}{
		{"even→odd below threshold", 2, 3, true},
		{"even→odd at threshold", 4, 3, false},
		{"even→even", 2, 4, false},
		{"odd→odd", 1, 3, false},
		{"odd→even below threshold", 1, 2, false},
		{"odd→even at threshold", 3, 2, true},
		{"odd→even above threshold", 5, 4, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.forbidden, core.ForbiddenTransition(tc.i, tc.j, 6))
		})
	}
}

func TestForbiddenTransition_OddInterior(t *testing.T) {
	// interior = 5: the threshold 2.5 falls between IDs; integer comparison
	// 2·i < n must reproduce it exactly. i=2: 4 < 5 → forbidden even→odd.
	assert.True(t, core.ForbiddenTransition(2, 1, 5))
	// i=3: 6 ≥ 5 → odd→even forbidden.
	assert.True(t, core.ForbiddenTransition(3, 2, 5))
	// i=1: 2 < 5 → odd→even allowed below threshold.
	assert.False(t, core.ForbiddenTransition(1, 2, 5))
}

// -----------------------------------------------------------------------------
// Node set preconditions
// -----------------------------------------------------------------------------

func TestValidateNodeSet(t *testing.T) {
	ok := []core.Node{{ID: 0}, {ID: 1}, {ID: 2}}
	require.NoError(t, core.ValidateNodeSet(ok))

	assert.ErrorIs(t, core.ValidateNodeSet([]core.Node{{ID: 0}}), core.ErrTooFewNodes)
	assert.ErrorIs(t, core.ValidateNodeSet([]core.Node{{ID: 0}, {ID: 2}}), core.ErrNonContiguousIDs)
	assert.ErrorIs(t, core.ValidateNodeSet([]core.Node{{ID: 0}, {ID: 0}}), core.ErrNonContiguousIDs)
}

func TestDepotConventions(t *testing.T) {
	assert.Equal(t, 0, core.OriginID)
	assert.Equal(t, 5, core.DestinationID(6))
	assert.Equal(t, 4, core.InteriorCount(6))
	assert.Equal(t, 0, core.InteriorCount(2))
	assert.Equal(t, 0, core.InteriorCount(1))
}
