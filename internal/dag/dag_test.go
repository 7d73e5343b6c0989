package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.NotNil(t, g.nodes)
	assert.Empty(t, g.nodes)
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("a")
	assert.Len(t, g.nodes, 1)
	assert.True(t, g.HasNode("a"))

	g.AddNode("a") // idempotent
	assert.Len(t, g.nodes, 1)

	g.AddNode("b")
	assert.Len(t, g.nodes, 2)
	assert.False(t, g.HasNode("dne"))
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		err := g.AddEdge("a", "b") // b depends on a
		require.NoError(t, err)

		nodeA := g.nodes["a"]
		nodeB := g.nodes["b"]

		assert.Contains(t, nodeA.dependents, "b")
		assert.Equal(t, nodeB, nodeA.dependents["b"])
		assert.Contains(t, nodeB.deps, "a")
		assert.Equal(t, nodeA, nodeB.deps["a"])
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		err := g.AddEdge("dne", "a")
		assert.ErrorContains(t, err, "source node not found")

		err = g.AddEdge("a", "dne")
		assert.ErrorContains(t, err, "destination node not found")

		err = g.AddEdge("a", "a")
		assert.ErrorContains(t, err, "self-referential edge")
	})
}

func TestDetectCycles(t *testing.T) {
	t.Run("empty graph has no cycles", func(t *testing.T) {
		g := New()
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("linear chain has no cycles", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		g.AddNode("c")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))

		assert.NoError(t, g.DetectCycles())
	})

	t.Run("diamond has no cycles", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		g.AddNode("c")
		g.AddNode("d")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("a", "c"))
		require.NoError(t, g.AddEdge("b", "d"))
		require.NoError(t, g.AddEdge("c", "d"))

		assert.NoError(t, g.DetectCycles())
	})

	t.Run("simple cycle is detected", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "a"))

		assert.ErrorContains(t, g.DetectCycles(), "cycle detected")
	})

	t.Run("longer cycle is detected", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		g.AddNode("c")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		require.NoError(t, g.AddEdge("c", "a"))

		assert.ErrorContains(t, g.DetectCycles(), "cycle detected")
	})
}
