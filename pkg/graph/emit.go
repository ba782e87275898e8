package graph

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/meshwerk/ifcgraph/pkg/logger"
	"github.com/meshwerk/ifcgraph/pkg/model"
	"github.com/meshwerk/ifcgraph/pkg/sink"
)

// NodeStatement renders one node as a CREATE statement. The node's primary
// type doubles as the created label and as the `name` property; `id` and
// `name` always lead the property block.
func NodeStatement(n Node) string {
	var b strings.Builder
	b.WriteString("CREATE (n: ")
	b.WriteString(n.TypeName)
	b.WriteByte(' ')
	b.WriteString(propertyBlock(n))
	b.WriteByte(')')
	return b.String()
}

// RelationshipStatement renders one relationship as a MATCH of both
// endpoints by id followed by a CREATE of the directed edge.
func RelationshipStatement(r Relationship) string {
	return fmt.Sprintf(`MATCH (a: %s {id: %q}), (b: %s {id: %q}) CREATE (a)-[:%s]->(b)`,
		r.SourceType, r.SourceID, r.TargetType, r.TargetID, r.TypeName)
}

func propertyBlock(n Node) string {
	var b strings.Builder
	b.WriteByte('{')
	writePair(&b, "id", strconv.Quote(n.Identity))
	b.WriteString(", ")
	writePair(&b, "name", strconv.Quote(n.TypeName))
	for _, p := range n.Properties {
		b.WriteString(", ")
		writePair(&b, p.Name, formatValue(p.Value))
	}
	b.WriteByte('}')
	return b.String()
}

func writePair(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
}

// formatValue renders a scalar for a property block: numbers bare,
// everything else double-quoted.
func formatValue(v model.Value) string {
	switch v.Kind {
	case model.ValueInteger:
		return strconv.FormatInt(v.Int, 10)
	case model.ValueReal:
		return strconv.FormatFloat(v.Real, 'g', -1, 64)
	case model.ValueBoolean:
		return strconv.Quote(strconv.FormatBool(v.Bool))
	default:
		return strconv.Quote(v.Text)
	}
}

// Emit streams the graph into the sink, all nodes first, then all
// relationships, so every MATCH finds endpoints that already exist. The
// first sink error aborts emission.
func Emit(ctx context.Context, g *Graph, s sink.Sink) error {
	nodes := g.Nodes()
	relationships := g.Relationships()
	logger.Info("emitting graph", "nodes", len(nodes), "relationships", len(relationships))

	for _, n := range nodes {
		if err := s.Run(ctx, NodeStatement(n)); err != nil {
			return fmt.Errorf("failed to create node %s: %w", n.Identity, err)
		}
	}
	for _, r := range relationships {
		if err := s.Run(ctx, RelationshipStatement(r)); err != nil {
			return fmt.Errorf("failed to create relationship %s-[%s]->%s: %w", r.SourceID, r.TypeName, r.TargetID, err)
		}
	}

	logger.Info("graph emitted")
	return nil
}
