package schema

import (
	"strings"
	"testing"

	"github.com/meshwerk/ifcgraph/pkg/model"
)

func testDefs() []TypeDef {
	return []TypeDef{
		{Name: "Root", Attributes: []AttributeDef{
			{"GlobalId", model.AttrScalar}, {"Name", model.AttrScalar},
		}},
		{Name: "Product", Supertype: "Root", Attributes: []AttributeDef{
			{"Placement", model.AttrEntityRef},
		}},
		{Name: "Wall", Supertype: "Product", Attributes: []AttributeDef{
			{"Tag", model.AttrScalar},
		}, Inverses: []InverseDef{
			{Name: "ContainedIn", SourceType: "Container", SourceAttribute: "Elements"},
		}},
		{Name: "Container", Supertype: "Root", Attributes: []AttributeDef{
			{"Elements", model.AttrEntityList},
		}},
	}
}

func TestNew_AncestorClosure(t *testing.T) {
	s, err := New(testDefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		want []string
	}{
		{"Wall", []string{"Wall", "Product", "Root"}},
		{"Product", []string{"Product", "Root"}},
		{"Root", []string{"Root"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Ancestors(tc.name)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestNew_AttributeInheritance(t *testing.T) {
	s, err := New(testDefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	attrs := s.AttributesOf("Wall")
	want := []string{"GlobalId", "Name", "Placement", "Tag"}
	if len(attrs) != len(want) {
		t.Fatalf("expected %d attributes, got %v", len(want), attrs)
	}
	for i, name := range want {
		if attrs[i].Name != name {
			t.Fatalf("expected attribute %d to be %s, got %s", i, name, attrs[i].Name)
		}
	}
}

func TestSchema_IsA(t *testing.T) {
	s, err := New(testDefs())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.IsA("Wall", "Root") {
		t.Fatal("expected Wall to be a Root")
	}
	if !s.IsA("Wall", "Wall") {
		t.Fatal("expected Wall to be a Wall")
	}
	if s.IsA("Root", "Wall") {
		t.Fatal("did not expect Root to be a Wall")
	}
	if s.IsA("Wall", "Container") {
		t.Fatal("did not expect Wall to be a Container")
	}
}

func TestNew_DuplicateType(t *testing.T) {
	defs := append(testDefs(), TypeDef{Name: "Wall"})
	if _, err := New(defs); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate type error, got %v", err)
	}
}

func TestNew_UnknownSupertype(t *testing.T) {
	defs := append(testDefs(), TypeDef{Name: "Orphan", Supertype: "Missing"})
	if _, err := New(defs); err == nil || !strings.Contains(err.Error(), "unknown supertype") {
		t.Fatalf("expected unknown supertype error, got %v", err)
	}
}

func TestNew_SupertypeCycle(t *testing.T) {
	defs := []TypeDef{
		{Name: "A", Supertype: "B"},
		{Name: "B", Supertype: "A"},
	}
	if _, err := New(defs); err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Fatalf("expected cycle error, got %v", err)
	}
}

func TestIFC_WallHierarchy(t *testing.T) {
	s := IFC()

	closure := s.Ancestors("IfcWallStandardCase")
	want := []string{"IfcWallStandardCase", "IfcWall", "IfcBuildingElement", "IfcElement", "IfcProduct", "IfcObject", "IfcObjectDefinition", "IfcRoot"}
	if len(closure) != len(want) {
		t.Fatalf("expected %v, got %v", want, closure)
	}
	for i := range want {
		if closure[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, closure)
		}
	}
}

func TestIFC_RootAttributesLeadEveryRootedType(t *testing.T) {
	s := IFC()
	for _, name := range []string{"IfcProject", "IfcWall", "IfcRelAggregates", "IfcPropertySet"} {
		attrs := s.AttributesOf(name)
		if len(attrs) < 4 {
			t.Fatalf("%s: expected inherited root attributes, got %v", name, attrs)
		}
		if attrs[0].Name != "GlobalId" || attrs[1].Name != "OwnerHistory" {
			t.Fatalf("%s: expected GlobalId and OwnerHistory first, got %v", name, attrs[:2])
		}
	}
}

func TestIFC_InverseDeclarations(t *testing.T) {
	s := IFC()

	invs := s.InversesOf("IfcWall")
	names := make(map[string]InverseDef, len(invs))
	for _, inv := range invs {
		names[inv.Name] = inv
	}
	for _, want := range []string{"IsDecomposedBy", "Decomposes", "IsDefinedBy", "ContainedInStructure"} {
		if _, ok := names[want]; !ok {
			t.Fatalf("expected inverse %s on IfcWall, got %v", want, invs)
		}
	}
	if inv := names["ContainedInStructure"]; inv.SourceType != "IfcRelContainedInSpatialStructure" || inv.SourceAttribute != "RelatedElements" {
		t.Fatalf("unexpected declaration %+v", inv)
	}
}
