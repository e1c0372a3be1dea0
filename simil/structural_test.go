package simil_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linkpred/core"
	"github.com/katalvlaran/linkpred/simil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-12

// kiteGraph builds a small fixture:
//
//	1─3  1─4  1─5  2─3  2─4  3─4
//
// so N(1)={3,4,5}, N(2)={3,4}, shared(1,2)={3,4} with degree(3)=3, degree(4)=3.
func kiteGraph() *core.Graph {
	return core.Build(nil, [][2]int64{{1, 3}, {1, 4}, {1, 5}, {2, 3}, {2, 4}, {3, 4}})
}

// TestStructural_KnownValues checks every metric against hand-computed numbers.
func TestStructural_KnownValues(t *testing.T) {
	g := kiteGraph()

	cn, err := simil.CommonNeighbors(g, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, cn)

	// union = 3 + 2 - 2 = 3
	jac, err := simil.Jaccard(g, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, jac, epsilon)

	pa, err := simil.PreferentialAttachment(g, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, pa)

	// shared nodes 3 and 4 both have degree 3
	aa, err := simil.AdamicAdar(g, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2/math.Log(3), aa, epsilon)

	ra, err := simil.ResourceAllocation(g, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, ra, epsilon)
}

// TestStructural_Symmetry asserts metric(a,b) == metric(b,a) across pairs.
func TestStructural_Symmetry(t *testing.T) {
	g := kiteGraph()
	pairs := [][2]int64{{1, 2}, {1, 5}, {2, 5}, {3, 4}}

	for _, p := range pairs {
		a, b := p[0], p[1]

		cnAB, _ := simil.CommonNeighbors(g, a, b)
		cnBA, _ := simil.CommonNeighbors(g, b, a)
		assert.Equal(t, cnAB, cnBA, "CommonNeighbors(%d,%d)", a, b)

		jAB, _ := simil.Jaccard(g, a, b)
		jBA, _ := simil.Jaccard(g, b, a)
		assert.InDelta(t, jAB, jBA, epsilon, "Jaccard(%d,%d)", a, b)

		paAB, _ := simil.PreferentialAttachment(g, a, b)
		paBA, _ := simil.PreferentialAttachment(g, b, a)
		assert.Equal(t, paAB, paBA, "PreferentialAttachment(%d,%d)", a, b)

		aaAB, _ := simil.AdamicAdar(g, a, b)
		aaBA, _ := simil.AdamicAdar(g, b, a)
		assert.InDelta(t, aaAB, aaBA, epsilon, "AdamicAdar(%d,%d)", a, b)

		raAB, _ := simil.ResourceAllocation(g, a, b)
		raBA, _ := simil.ResourceAllocation(g, b, a)
		assert.InDelta(t, raAB, raBA, epsilon, "ResourceAllocation(%d,%d)", a, b)

		srAB, _ := simil.SharedNeighborsRatio(g, a, b)
		srBA, _ := simil.SharedNeighborsRatio(g, b, a)
		assert.InDelta(t, srAB, srBA, epsilon, "SharedNeighborsRatio(%d,%d)", a, b)
	}
}

// TestSharedNeighborsRatio_EqualsJaccard asserts the intentional identity
// between the two exports for every pair of the fixture.
func TestSharedNeighborsRatio_EqualsJaccard(t *testing.T) {
	g := kiteGraph()
	ids := []int64{1, 2, 3, 4, 5}

	for _, a := range ids {
		for _, b := range ids {
			jac, err := simil.Jaccard(g, a, b)
			require.NoError(t, err)
			ratio, err := simil.SharedNeighborsRatio(g, a, b)
			require.NoError(t, err)
			assert.Equal(t, jac, ratio, "pair (%d,%d)", a, b)
		}
	}
}

// TestStructural_IsolatedNodes covers the empty-union and zero-degree fallbacks.
func TestStructural_IsolatedNodes(t *testing.T) {
	g := core.Build([]int64{1, 2}, nil)

	jac, err := simil.Jaccard(g, 1, 2)
	require.NoError(t, err)
	assert.Zero(t, jac, "empty union must yield 0, not NaN")

	ratio, err := simil.SharedNeighborsRatio(g, 1, 2)
	require.NoError(t, err)
	assert.Zero(t, ratio)

	pa, err := simil.PreferentialAttachment(g, 1, 2)
	require.NoError(t, err)
	assert.Zero(t, pa)
}

// TestAdamicAdar_DegreeExclusion verifies the degree ≤ 1 exclusion rule:
// a shared neighbor of degree 1 cannot exist, but a degree-2 one
// contributes 1/ln(2) and dominates the sum.
func TestAdamicAdar_DegreeExclusion(t *testing.T) {
	// w=3 connects only 1 and 2, so degree(3)=2.
	g := core.Build(nil, [][2]int64{{1, 3}, {2, 3}})

	aa, err := simil.AdamicAdar(g, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Log(2), aa, epsilon) // ≈ 1.4427

	// A self-loop gives node 4 degree 1 while being its own neighbor:
	// shared(4,4) = {4} with degree 1 contributes exactly 0.
	g2 := core.Build(nil, [][2]int64{{4, 4}})
	aa, err = simil.AdamicAdar(g2, 4, 4)
	require.NoError(t, err)
	assert.Zero(t, aa, "degree ≤ 1 shared neighbor must contribute 0")
}

// TestStructural_NodeNotFound propagates the core sentinel for absent IDs.
func TestStructural_NodeNotFound(t *testing.T) {
	g := core.Build(nil, [][2]int64{{1, 2}})

	_, err := simil.CommonNeighbors(g, 1, 99)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = simil.Jaccard(g, 99, 1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = simil.PreferentialAttachment(g, 99, 98)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = simil.AdamicAdar(g, 1, 99)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = simil.ResourceAllocation(g, 99, 1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = simil.SharedNeighborsRatio(g, 1, 99)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
