// Package dag provides the dependency graph used to validate startup
// ordering among emitted services. The composition engine is synchronous
// and single-threaded, so the graph carries no locking; it exists to hold
// edges long enough to prove they form no cycle.
package dag

import "fmt"

// node is a single named entry in the graph.
type node struct {
	id         string
	deps       map[string]*node
	dependents map[string]*node
}

// Graph is a directed graph of named nodes.
type Graph struct {
	nodes map[string]*node
}

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node{
		id:         id,
		deps:       make(map[string]*node),
		dependents: make(map[string]*node),
	}
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node,
// meaning `toID` depends on `fromID`. An error is returned if either node
// does not exist or if the edge would create a self-reference.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode

	return nil
}

// DetectCycles checks the graph for any cycles. It returns a non-nil error
// if a cycle is found, naming the first node involved in the detected cycle.
func (g *Graph) DetectCycles() error {
	// Classic depth-first search with three sets of nodes:
	// permanent: fully visited, known not to be part of a cycle.
	// temporary: currently in the recursion stack.
	// unvisited: everything else.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.id] {
			return nil
		}
		if temporary[n.id] {
			return fmt.Errorf("cycle detected involving node '%s'", n.id)
		}

		temporary[n.id] = true

		for _, dependent := range n.dependents {
			if err := visit(dependent); err != nil {
				return err
			}
		}

		delete(temporary, n.id)
		permanent[n.id] = true

		return nil
	}

	for _, n := range g.nodes {
		if !permanent[n.id] {
			if err := visit(n); err != nil {
				return err
			}
		}
	}

	return nil
}
