package graph

import (
	"fmt"
	"strconv"

	"github.com/meshwerk/ifcgraph/pkg/model"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Property is one named scalar carried by a node, kept in attribute index
// order so emission is deterministic.
type Property struct {
	Name  string
	Value model.Value
}

// Node represents one source entity in the property graph. It is an
// immutable value record; its deduplication key is Identity alone, so two
// nodes with the same identity are the same node even if their labels or
// properties differ.
type Node struct {
	Identity   string
	TypeName   string
	Labels     []string
	Properties []Property
}

// HasLabel reports whether the node carries the given label.
func (n Node) HasLabel(label string) bool {
	for _, l := range n.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// BuildNode converts one source entity into a node skeleton: identity,
// label set, and scalar properties.
//
// The identity is the entity's native identifier; entities without a stable
// identity (id 0) get a freshly generated one on every build, so they are
// never the same node twice.
//
// With hierarchy set, the label set is the ancestor-type closure of the
// entity's type from the source's precomputed index; otherwise it is the
// primary type alone. Reference, collection, and derived attributes never
// become properties.
func BuildNode(e model.Entity, src model.Source, hierarchy bool) (Node, error) {
	identity := strconv.FormatInt(e.ID(), 10)
	if e.ID() == 0 {
		generated, err := gonanoid.New()
		if err != nil {
			return Node{}, fmt.Errorf("failed to generate node identity: %w", err)
		}
		identity = generated
	}

	n := Node{Identity: identity, TypeName: e.Type()}

	if hierarchy {
		n.Labels = append(n.Labels, src.TypeAncestors(e.Type())...)
	}
	if len(n.Labels) == 0 {
		n.Labels = []string{e.Type()}
	}

	for i := 0; i < e.AttributeCount(); i++ {
		attr, err := e.Attribute(i)
		if err != nil {
			return Node{}, err
		}
		switch attr.Kind {
		case model.AttrEntityRef, model.AttrEntityList, model.AttrDerived:
			continue
		}
		if !attr.Value.IsSet() {
			continue
		}
		n.Properties = append(n.Properties, Property{Name: attr.Name, Value: attr.Value})
	}

	return n, nil
}
