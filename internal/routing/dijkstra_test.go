package routing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPath_DirectEdge(t *testing.T) {
	g := Graph{
		"clinic": {"hospital": 7.5},
	}

	path, weight := ShortestPath(g, "clinic", "hospital")

	require.Equal(t, []string{"clinic", "hospital"}, path)
	assert.Equal(t, 7.5, weight)
}

func TestShortestPath_PrefersCheaperMultiHop(t *testing.T) {
	g := Graph{
		"start": {"end": 10, "mid": 1},
		"mid":   {"end": 1},
		"end":   {},
	}

	path, weight := ShortestPath(g, "start", "end")

	require.Equal(t, []string{"start", "mid", "end"}, path)
	assert.Equal(t, 2.0, weight)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := Graph{
		"a": {"b": 1},
		"b": {},
		"c": {"d": 1},
		"d": {},
	}

	path, weight := ShortestPath(g, "a", "d")

	assert.Nil(t, path)
	assert.True(t, math.IsInf(weight, 1))
}

func TestShortestPath_StartEqualsEnd(t *testing.T) {
	g := Graph{
		"a": {"b": 3},
		"b": {"a": 3},
	}

	path, weight := ShortestPath(g, "a", "a")

	require.Equal(t, []string{"a"}, path)
	assert.Zero(t, weight)
}

func TestShortestPath_StartAbsentFromGraph(t *testing.T) {
	g := Graph{
		"a": {"b": 1},
	}

	path, weight := ShortestPath(g, "ghost", "a")

	assert.Nil(t, path)
	assert.True(t, math.IsInf(weight, 1))
}

func TestShortestPath_EndAbsentFromGraph(t *testing.T) {
	g := Graph{
		"a": {"b": 1},
		"b": {},
	}

	path, weight := ShortestPath(g, "a", "ghost")

	assert.Nil(t, path)
	assert.True(t, math.IsInf(weight, 1))
}

func TestShortestPath_RelaxationSupersedesEarlierEntry(t *testing.T) {
	// b is first reached at cost 5, then improved to 3 via c before it is
	// settled. The stale (5, b) frontier entry must be skipped.
	g := Graph{
		"a": {"b": 5, "c": 1},
		"c": {"b": 2},
		"b": {"d": 1},
		"d": {},
	}

	path, weight := ShortestPath(g, "a", "d")

	require.Equal(t, []string{"a", "c", "b", "d"}, path)
	assert.Equal(t, 4.0, weight)
}

func TestShortestPath_EqualCostPathsDeterministicWeight(t *testing.T) {
	g := Graph{
		"s": {"x": 1, "y": 1},
		"x": {"t": 1},
		"y": {"t": 1},
		"t": {},
	}

	_, first := ShortestPath(g, "s", "t")
	for i := 0; i < 10; i++ {
		path, weight := ShortestPath(g, "s", "t")
		assert.Equal(t, first, weight)
		assert.Equal(t, 2.0, weight)
		require.Len(t, path, 3)
		assert.Equal(t, "s", path[0])
		assert.Equal(t, "t", path[2])
	}
}

func TestShortestPath_Idempotent(t *testing.T) {
	g := Graph{
		"a": {"b": 2, "c": 4},
		"b": {"c": 1, "d": 7},
		"c": {"d": 3},
		"d": {},
	}

	firstPath, firstWeight := ShortestPath(g, "a", "d")
	secondPath, secondWeight := ShortestPath(g, "a", "d")

	assert.Equal(t, firstPath, secondPath)
	assert.Equal(t, firstWeight, secondWeight)
	assert.Equal(t, 6.0, firstWeight)
	assert.Equal(t, []string{"a", "b", "c", "d"}, firstPath)
}

func TestShortestPath_DoesNotMutateInput(t *testing.T) {
	g := Graph{
		"a": {"b": 1},
		"b": {"c": 1},
		"c": {},
	}

	_, _ = ShortestPath(g, "a", "c")

	require.Len(t, g, 3)
	assert.Equal(t, 1.0, g["a"]["b"])
	assert.Equal(t, 1.0, g["b"]["c"])
}
