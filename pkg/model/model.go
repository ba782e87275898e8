package model

// ValueKind discriminates the scalar value union. Matching the source
// schema's declared simple types avoids inferring a type from the value at
// serialization time.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueInteger
	ValueReal
	ValueText
	ValueBoolean
	ValueEnum
)

// Value is a tagged scalar: exactly one of the payload fields is meaningful,
// selected by Kind. A Value with Kind == ValueNone represents an unset
// attribute.
type Value struct {
	Kind ValueKind
	Int  int64
	Real float64
	Text string
	Bool bool
}

func NoValue() Value            { return Value{Kind: ValueNone} }
func IntValue(v int64) Value    { return Value{Kind: ValueInteger, Int: v} }
func RealValue(v float64) Value { return Value{Kind: ValueReal, Real: v} }
func TextValue(v string) Value  { return Value{Kind: ValueText, Text: v} }
func BoolValue(v bool) Value    { return Value{Kind: ValueBoolean, Bool: v} }
func EnumValue(v string) Value  { return Value{Kind: ValueEnum, Text: v} }

// IsSet reports whether the value carries a payload.
func (v Value) IsSet() bool { return v.Kind != ValueNone }

// Numeric reports whether the value is an integer or a real.
func (v Value) Numeric() bool { return v.Kind == ValueInteger || v.Kind == ValueReal }

// AttributeKind classifies an entity attribute.
type AttributeKind int

const (
	// AttrScalar is a stored simple value (number, text, boolean, enum).
	AttrScalar AttributeKind = iota
	// AttrEntityRef is a stored reference to a single entity.
	AttrEntityRef
	// AttrEntityList is a stored ordered collection of entity references.
	AttrEntityList
	// AttrDerived is computed by the schema and never stored.
	AttrDerived
)

// Attribute is one named, indexed attribute of an entity. Depending on Kind,
// exactly one of Value, Ref, or List is populated; an unset attribute has a
// zero Value, nil Ref, or empty List respectively.
type Attribute struct {
	Name  string
	Kind  AttributeKind
	Value Value
	Ref   Entity
	List  []Entity
}

// IsSet reports whether the attribute holds anything at all.
func (a Attribute) IsSet() bool {
	switch a.Kind {
	case AttrScalar:
		return a.Value.IsSet()
	case AttrEntityRef:
		return a.Ref != nil
	case AttrEntityList:
		return len(a.List) > 0
	default:
		return false
	}
}

// Entity is one record of the source model.
//
// ID returns the entity's native identifier; 0 means the entity has no
// stable identity (inline or derived values).
type Entity interface {
	ID() int64
	Type() string
	IsA(tag string) bool
	AttributeCount() int
	Attribute(i int) (Attribute, error)
	InverseNames() []string
	Inverse(name string) ([]Entity, error)
}

// Source is a fully loaded entity model.
//
// EntityIDs returns every entity identifier in ascending order.
// TypeAncestors returns the ancestor-type closure of a tag, including the
// tag itself; it is the precomputed replacement for scanning every known
// type per entity.
type Source interface {
	EntityIDs() []int64
	ByID(id int64) (Entity, error)
	Types() []string
	TypeAncestors(tag string) []string
}
