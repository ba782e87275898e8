package graph

import (
	"testing"

	"github.com/meshwerk/ifcgraph/pkg/model"
)

func TestGraph_NodeDedupFirstWins(t *testing.T) {
	g := NewGraph()

	first := Node{Identity: "1", TypeName: "IfcWall", Labels: []string{"IfcWall"}}
	second := Node{Identity: "1", TypeName: "IfcSlab", Labels: []string{"IfcSlab"}}

	if !g.AcceptNode(first) {
		t.Fatal("expected first node to be inserted")
	}
	if g.AcceptNode(second) {
		t.Fatal("expected duplicate identity to be dropped")
	}
	if g.NodeCount() != 1 {
		t.Fatalf("expected 1 node, got %d", g.NodeCount())
	}

	stored, ok := g.Node("1")
	if !ok {
		t.Fatal("expected node 1 to be present")
	}
	if stored.TypeName != "IfcWall" {
		t.Fatalf("expected first write to win, got type %s", stored.TypeName)
	}
}

func TestGraph_RelationshipDedupIgnoresEndpointTypes(t *testing.T) {
	g := NewGraph()

	first := Relationship{SourceID: "1", SourceType: "IfcWall", TypeName: "BoundedBy", TargetID: "2", TargetType: "IfcSlab"}
	second := Relationship{SourceID: "1", SourceType: "Other", TypeName: "BoundedBy", TargetID: "2", TargetType: "Other"}

	if !g.AcceptRelationship(first) {
		t.Fatal("expected first relationship to be inserted")
	}
	if g.AcceptRelationship(second) {
		t.Fatal("expected duplicate triple to be dropped")
	}
	if g.RelationshipCount() != 1 {
		t.Fatalf("expected 1 relationship, got %d", g.RelationshipCount())
	}

	if got := g.Relationships()[0].SourceType; got != "IfcWall" {
		t.Fatalf("expected first write to win, got source type %s", got)
	}
}

func TestGraph_RelationshipDirectionAndTypeDistinguish(t *testing.T) {
	g := NewGraph()

	g.AcceptRelationship(Relationship{SourceID: "1", TypeName: "Contains", TargetID: "2"})
	g.AcceptRelationship(Relationship{SourceID: "2", TypeName: "Contains", TargetID: "1"})
	g.AcceptRelationship(Relationship{SourceID: "1", TypeName: "Decomposes", TargetID: "2"})

	if g.RelationshipCount() != 3 {
		t.Fatalf("expected 3 distinct relationships, got %d", g.RelationshipCount())
	}
}

func TestGraph_InsertionOrderPreserved(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"3", "1", "2", "1"} {
		g.AcceptNode(Node{Identity: id, TypeName: "IfcWall"})
	}

	nodes := g.Nodes()
	want := []string{"3", "1", "2"}
	if len(nodes) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(nodes))
	}
	for i, id := range want {
		if nodes[i].Identity != id {
			t.Fatalf("expected node %d to be %s, got %s", i, id, nodes[i].Identity)
		}
	}
}

func TestGraph_Merge(t *testing.T) {
	g := NewGraph()
	g.AcceptNode(Node{Identity: "1", TypeName: "IfcWall"})
	g.AcceptRelationship(Relationship{SourceID: "1", TypeName: "Contains", TargetID: "2"})

	other := NewGraph()
	other.AcceptNode(Node{Identity: "1", TypeName: "IfcSlab"})
	other.AcceptNode(Node{Identity: "2", TypeName: "IfcSlab"})
	other.AcceptRelationship(Relationship{SourceID: "1", TypeName: "Contains", TargetID: "2"})
	other.AcceptRelationship(Relationship{SourceID: "2", TypeName: "Contains", TargetID: "1"})

	g.Merge(other)

	if g.NodeCount() != 2 {
		t.Fatalf("expected 2 nodes after merge, got %d", g.NodeCount())
	}
	if g.RelationshipCount() != 2 {
		t.Fatalf("expected 2 relationships after merge, got %d", g.RelationshipCount())
	}
	if stored, _ := g.Node("1"); stored.TypeName != "IfcWall" {
		t.Fatalf("expected existing node to survive merge, got type %s", stored.TypeName)
	}
}

func TestNode_HasLabel(t *testing.T) {
	n := Node{Identity: "1", TypeName: "IfcWall", Labels: []string{"IfcWall", "IfcElement"}}
	if !n.HasLabel("IfcElement") {
		t.Fatal("expected IfcElement label")
	}
	if n.HasLabel("IfcSlab") {
		t.Fatal("did not expect IfcSlab label")
	}
}

func TestProperty_ValueKinds(t *testing.T) {
	cases := []struct {
		name  string
		value model.Value
		set   bool
	}{
		{"integer", model.IntValue(4), true},
		{"real", model.RealValue(2.5), true},
		{"text", model.TextValue("x"), true},
		{"boolean", model.BoolValue(true), true},
		{"enum", model.EnumValue("ELEMENT"), true},
		{"none", model.NoValue(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.value.IsSet() != tc.set {
				t.Fatalf("expected IsSet=%v", tc.set)
			}
		})
	}
}
