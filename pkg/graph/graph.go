package graph

// Graph is a deduplicating accumulator of nodes and relationships. Nodes
// dedup by identity, relationships by the (source, type, target) triple;
// in both cases the first accepted value wins and later duplicates are
// dropped. Insertion order is preserved so emission is deterministic.
//
// A Graph is not safe for concurrent use; parallel builders must funnel
// their merges through a single writer (see BuildFullGraphParallel).
type Graph struct {
	nodes     map[string]Node
	nodeOrder []string

	relationships map[relationshipKey]Relationship
	relOrder      []relationshipKey
}

// NewGraph returns an empty accumulator.
func NewGraph() *Graph {
	return &Graph{
		nodes:         make(map[string]Node),
		relationships: make(map[relationshipKey]Relationship),
	}
}

// AcceptNode inserts a node unless one with the same identity is already
// present. It reports whether the node was inserted.
func (g *Graph) AcceptNode(n Node) bool {
	if _, ok := g.nodes[n.Identity]; ok {
		return false
	}
	g.nodes[n.Identity] = n
	g.nodeOrder = append(g.nodeOrder, n.Identity)
	return true
}

// AcceptRelationship inserts a relationship unless the same triple is
// already present. It reports whether the relationship was inserted.
func (g *Graph) AcceptRelationship(r Relationship) bool {
	k := r.key()
	if _, ok := g.relationships[k]; ok {
		return false
	}
	g.relationships[k] = r
	g.relOrder = append(g.relOrder, k)
	return true
}

// Merge folds another graph into this one under the same first-write-wins
// rules, preserving the other graph's insertion order.
func (g *Graph) Merge(other *Graph) {
	for _, id := range other.nodeOrder {
		g.AcceptNode(other.nodes[id])
	}
	for _, k := range other.relOrder {
		g.AcceptRelationship(other.relationships[k])
	}
}

// Node returns the accumulated node with the given identity.
func (g *Graph) Node(identity string) (Node, bool) {
	n, ok := g.nodes[identity]
	return n, ok
}

// Nodes returns the accumulated nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Relationships returns the accumulated relationships in insertion order.
func (g *Graph) Relationships() []Relationship {
	out := make([]Relationship, 0, len(g.relOrder))
	for _, k := range g.relOrder {
		out = append(out, g.relationships[k])
	}
	return out
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// RelationshipCount returns the number of distinct relationships.
func (g *Graph) RelationshipCount() int { return len(g.relationships) }
