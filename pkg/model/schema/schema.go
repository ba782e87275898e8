package schema

import (
	"fmt"
	"sort"

	"github.com/meshwerk/ifcgraph/pkg/model"
)

// AttributeDef declares one explicit attribute of an entity type, in
// EXPRESS declaration order.
type AttributeDef struct {
	Name string
	Kind model.AttributeKind
}

// InverseDef declares a named back-reference: instances of SourceType that
// point at this type through SourceAttribute are discoverable under Name.
type InverseDef struct {
	Name            string
	SourceType      string
	SourceAttribute string
}

// TypeDef declares one entity type. Supertype is empty for root types.
// Attributes and Inverses list only the type's own declarations; inherited
// ones are flattened by New.
type TypeDef struct {
	Name       string
	Supertype  string
	Attributes []AttributeDef
	Inverses   []InverseDef
}

// Schema is an immutable index over a set of type declarations: ancestor
// closures, flattened attribute lists, and flattened inverse declarations
// are all precomputed once so lookups during graph building are constant
// time.
type Schema struct {
	types     map[string]TypeDef
	names     []string
	ancestors map[string][]string
	attrs     map[string][]AttributeDef
	inverses  map[string][]InverseDef
}

// New builds a Schema from type declarations. It fails on duplicate type
// names, unknown supertypes, and supertype cycles.
func New(defs []TypeDef) (*Schema, error) {
	s := &Schema{
		types:     make(map[string]TypeDef, len(defs)),
		ancestors: make(map[string][]string, len(defs)),
		attrs:     make(map[string][]AttributeDef, len(defs)),
		inverses:  make(map[string][]InverseDef, len(defs)),
	}
	for _, def := range defs {
		if _, ok := s.types[def.Name]; ok {
			return nil, fmt.Errorf("schema: duplicate type %q", def.Name)
		}
		s.types[def.Name] = def
		s.names = append(s.names, def.Name)
	}
	sort.Strings(s.names)

	for name := range s.types {
		chain, err := s.chain(name)
		if err != nil {
			return nil, err
		}
		// chain is root-first; the closure is exposed leaf-first with the
		// type itself in front.
		closure := make([]string, 0, len(chain))
		for i := len(chain) - 1; i >= 0; i-- {
			closure = append(closure, chain[i])
		}
		s.ancestors[name] = closure

		var attrs []AttributeDef
		var invs []InverseDef
		for _, t := range chain {
			attrs = append(attrs, s.types[t].Attributes...)
			invs = append(invs, s.types[t].Inverses...)
		}
		s.attrs[name] = attrs
		s.inverses[name] = invs
	}
	return s, nil
}

// chain returns the supertype chain of name ordered root-first, ending with
// name itself.
func (s *Schema) chain(name string) ([]string, error) {
	var chain []string
	seen := make(map[string]bool)
	for cur := name; cur != ""; {
		if seen[cur] {
			return nil, fmt.Errorf("schema: supertype cycle at %q", cur)
		}
		seen[cur] = true
		def, ok := s.types[cur]
		if !ok {
			return nil, fmt.Errorf("schema: unknown supertype %q of %q", cur, name)
		}
		chain = append([]string{cur}, chain...)
		cur = def.Supertype
	}
	return chain, nil
}

// Has reports whether the schema declares the type.
func (s *Schema) Has(name string) bool {
	_, ok := s.types[name]
	return ok
}

// Types returns every declared type name, sorted.
func (s *Schema) Types() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Ancestors returns the ancestor closure of a type, starting with the type
// itself. Unknown types yield nil.
func (s *Schema) Ancestors(name string) []string {
	return s.ancestors[name]
}

// IsA reports whether name is tag or a subtype of tag.
func (s *Schema) IsA(name, tag string) bool {
	for _, a := range s.ancestors[name] {
		if a == tag {
			return true
		}
	}
	return false
}

// AttributesOf returns the full explicit attribute list of a type, inherited
// attributes first (EXPRESS order).
func (s *Schema) AttributesOf(name string) []AttributeDef {
	return s.attrs[name]
}

// InversesOf returns the full inverse declaration list of a type, inherited
// declarations first.
func (s *Schema) InversesOf(name string) []InverseDef {
	return s.inverses[name]
}
