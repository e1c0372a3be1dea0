package feature_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/linkpred/core"
	"github.com/katalvlaran/linkpred/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// batchFixture returns a graph and pairs whose expected vectors can be
// verified against serial Extract calls.
func batchFixture() (*core.Graph, []feature.Pair) {
	g := core.Build([]int64{9}, [][2]int64{{1, 2}, {2, 3}, {1, 3}, {3, 4}, {4, 5}})
	pairs := []feature.Pair{
		{Src: 1, Dst: 3}, // known edge, exclusion path
		{Src: 1, Dst: 5}, // plain path
		{Src: 1, Dst: 9}, // isolated target
		{Src: 7, Dst: 8}, // absent nodes
		{Src: 2, Dst: 2}, // degenerate identical pair
	}

	return g, pairs
}

// TestExtractBatch_MatchesSerial checks input-order results identical to
// one-by-one extraction.
func TestExtractBatch_MatchesSerial(t *testing.T) {
	g, pairs := batchFixture()

	got, err := feature.ExtractBatch(context.Background(), g, nil, pairs, feature.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, got, len(pairs))

	for i, p := range pairs {
		want := feature.Extract(g, nil, p.Src, p.Dst)
		assert.Equal(t, want, got[i], "pair #%d (%d,%d)", i, p.Src, p.Dst)
	}
}

// TestExtractBatch_SharedEdgePairs hammers pairs touching the same edge
// concurrently; with the non-mutating exclusion there is nothing to race on.
func TestExtractBatch_SharedEdgePairs(t *testing.T) {
	g := core.Build(nil, [][2]int64{{1, 2}, {2, 3}, {1, 3}})
	pairs := make([]feature.Pair, 200)
	for i := range pairs {
		pairs[i] = feature.Pair{Src: 1, Dst: 3}
	}

	got, err := feature.ExtractBatch(context.Background(), g, nil, pairs, feature.WithWorkers(8))
	require.NoError(t, err)

	want := feature.Extract(g, nil, 1, 3)
	for i := range got {
		assert.Equal(t, want, got[i])
	}
	assert.True(t, g.HasEdge(1, 3), "graph must be unchanged after the batch")
	assert.Equal(t, 3, g.EdgeCount())
}

// TestExtractBatch_EmptyAndDefaults covers empty input and default worker count.
func TestExtractBatch_EmptyAndDefaults(t *testing.T) {
	g, _ := batchFixture()

	got, err := feature.ExtractBatch(context.Background(), g, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = feature.ExtractBatch(context.Background(), g, nil, []feature.Pair{{Src: 1, Dst: 2}}, feature.WithWorkers(0))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// TestExtractBatch_OptionViolation rejects a negative worker count.
func TestExtractBatch_OptionViolation(t *testing.T) {
	g, pairs := batchFixture()

	_, err := feature.ExtractBatch(context.Background(), g, nil, pairs, feature.WithWorkers(-2))
	assert.ErrorIs(t, err, feature.ErrBatchOptionViolation)
}

// TestExtractBatch_Cancellation propagates a cancelled context.
func TestExtractBatch_Cancellation(t *testing.T) {
	g, _ := batchFixture()
	pairs := make([]feature.Pair, 10_000)
	for i := range pairs {
		pairs[i] = feature.Pair{Src: 1, Dst: 5}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate

	_, err := feature.ExtractBatch(ctx, g, nil, pairs, feature.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
}
