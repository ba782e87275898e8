package graph

import (
	"fmt"

	"github.com/meshwerk/ifcgraph/pkg/model"
)

// Options tunes entity extraction.
type Options struct {
	// AuxiliaryTypes names entity types whose single-reference attributes
	// are skipped during extraction, except when the referencing entity is
	// of RootType. Keeps bookkeeping entities referenced from everywhere
	// out of the graph while still anchoring them once at the root.
	AuxiliaryTypes []string

	// RootType is the one entity type allowed to reference auxiliary types.
	RootType string

	// HierarchyLabels controls whether nodes carry their full ancestor-type
	// closure as labels or just their primary type.
	HierarchyLabels bool
}

// DefaultOptions labels nodes with their full type hierarchy and skips
// OwnerHistory references except from Project.
func DefaultOptions() Options {
	return Options{
		AuxiliaryTypes:  []string{"OwnerHistory"},
		RootType:        "Project",
		HierarchyLabels: true,
	}
}

// Extractor turns one entity at a time into graph elements. It is
// stateless apart from its configuration and may be shared across
// goroutines; all accumulation happens in the Graph it is handed.
type Extractor struct {
	src       model.Source
	aux       map[string]bool
	root      string
	hierarchy bool
}

// NewExtractor builds an extractor over the given source.
func NewExtractor(src model.Source, opts Options) *Extractor {
	aux := make(map[string]bool, len(opts.AuxiliaryTypes))
	for _, t := range opts.AuxiliaryTypes {
		aux[t] = true
	}
	return &Extractor{src: src, aux: aux, root: opts.RootType, hierarchy: opts.HierarchyLabels}
}

// Extract accepts the entity's own node into g, then walks its attributes:
// single entity references and entity aggregates become relationships named
// after the attribute, and every referenced entity is accepted as a node
// alongside its edge. Inverse attributes are walked the same way, with the
// edge still pointing from this entity to the referencing one.
func (x *Extractor) Extract(e model.Entity, g *Graph) error {
	node, err := BuildNode(e, x.src, x.hierarchy)
	if err != nil {
		return fmt.Errorf("failed to build node for %s (#%d): %w", e.Type(), e.ID(), err)
	}
	g.AcceptNode(node)

	for i := 0; i < e.AttributeCount(); i++ {
		attr, err := e.Attribute(i)
		if err != nil {
			return fmt.Errorf("failed to read attribute %d of %s (#%d): %w", i, e.Type(), e.ID(), err)
		}
		switch attr.Kind {
		case model.AttrEntityRef:
			if attr.Ref == nil {
				continue
			}
			if x.aux[attr.Ref.Type()] && e.Type() != x.root {
				continue
			}
			if err := x.accept(g, node, attr.Name, attr.Ref); err != nil {
				return err
			}
		case model.AttrEntityList:
			for _, target := range attr.List {
				if err := x.accept(g, node, attr.Name, target); err != nil {
					return err
				}
			}
		}
	}

	for _, name := range e.InverseNames() {
		refs, err := e.Inverse(name)
		if err != nil {
			return fmt.Errorf("failed to resolve inverse %s of %s (#%d): %w", name, e.Type(), e.ID(), err)
		}
		for _, ref := range refs {
			resolved, err := x.src.ByID(ref.ID())
			if err != nil {
				return fmt.Errorf("failed to resolve inverse %s of %s (#%d): %w", name, e.Type(), e.ID(), err)
			}
			if err := x.accept(g, node, name, resolved); err != nil {
				return err
			}
		}
	}

	return nil
}

func (x *Extractor) accept(g *Graph, source Node, edge string, target model.Entity) error {
	sub, err := BuildNode(target, x.src, x.hierarchy)
	if err != nil {
		return fmt.Errorf("failed to build node for %s (#%d): %w", target.Type(), target.ID(), err)
	}
	g.AcceptNode(sub)
	g.AcceptRelationship(NewRelationship(source, edge, sub))
	return nil
}
