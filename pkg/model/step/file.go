package step

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/meshwerk/ifcgraph/pkg/model"
	"github.com/meshwerk/ifcgraph/pkg/model/schema"
)

// slot is one classified attribute of an entity. References are stored as
// record identifiers and resolved lazily through the owning File.
type slot struct {
	def   schema.AttributeDef
	value model.Value
	ref   int64
	list  []int64
}

type entity struct {
	file  *File
	id    int64
	typ   string
	slots []slot
}

// File is a fully decoded exchange file. It implements model.Source.
type File struct {
	schemaName string
	sch        *schema.Schema
	entities   map[int64]*entity
	ids        []int64
	inverse    map[int64]map[string][]int64
}

// SchemaName returns the FILE_SCHEMA declaration from the header, if any.
func (f *File) SchemaName() string { return f.schemaName }

// Len returns the number of decoded entities.
func (f *File) Len() int { return len(f.ids) }

func (f *File) EntityIDs() []int64 {
	out := make([]int64, len(f.ids))
	copy(out, f.ids)
	return out
}

func (f *File) ByID(id int64) (model.Entity, error) {
	e, ok := f.entities[id]
	if !ok {
		return nil, fmt.Errorf("step: no entity #%d", id)
	}
	return e, nil
}

func (f *File) Types() []string { return f.sch.Types() }

func (f *File) TypeAncestors(tag string) []string { return f.sch.Ancestors(tag) }

// build classifies raw records against the schema and indexes inverse
// references.
func (f *File) build(records []rawRecord) error {
	for _, rec := range records {
		if !f.sch.Has(rec.typ) {
			return fmt.Errorf("step: line %d: unknown entity type %s (#%d)", rec.line, rec.typ, rec.id)
		}
		if _, ok := f.entities[rec.id]; ok {
			return fmt.Errorf("step: line %d: duplicate record #%d", rec.line, rec.id)
		}
		defs := f.sch.AttributesOf(rec.typ)
		if len(rec.args) != len(defs) {
			return fmt.Errorf("step: line %d: %s (#%d) has %d attributes, schema declares %d",
				rec.line, rec.typ, rec.id, len(rec.args), len(defs))
		}
		e := &entity{file: f, id: rec.id, typ: rec.typ, slots: make([]slot, len(defs))}
		for i, def := range defs {
			s, err := classify(def, rec.args[i])
			if err != nil {
				return fmt.Errorf("step: line %d: %s (#%d) attribute %s: %w", rec.line, rec.typ, rec.id, def.Name, err)
			}
			e.slots[i] = s
		}
		f.entities[rec.id] = e
		f.ids = append(f.ids, rec.id)
	}
	sort.Slice(f.ids, func(i, j int) bool { return f.ids[i] < f.ids[j] })

	return f.index()
}

// index validates every reference and builds the inverse lookup: for each
// forward reference E -> X through attribute A, X gains an inverse entry
// under every inverse declaration of X's type matching (E's type, A).
func (f *File) index() error {
	f.inverse = make(map[int64]map[string][]int64)
	for _, id := range f.ids {
		e := f.entities[id]
		for _, s := range e.slots {
			switch s.def.Kind {
			case model.AttrEntityRef:
				if s.ref != 0 {
					if err := f.link(e, s.def.Name, s.ref); err != nil {
						return err
					}
				}
			case model.AttrEntityList:
				for _, target := range s.list {
					if err := f.link(e, s.def.Name, target); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (f *File) link(e *entity, attr string, target int64) error {
	t, ok := f.entities[target]
	if !ok {
		return fmt.Errorf("step: %s (#%d) attribute %s references missing entity #%d", e.typ, e.id, attr, target)
	}
	for _, inv := range f.sch.InversesOf(t.typ) {
		if inv.SourceAttribute != attr || !f.sch.IsA(e.typ, inv.SourceType) {
			continue
		}
		m := f.inverse[t.id]
		if m == nil {
			m = make(map[string][]int64)
			f.inverse[t.id] = m
		}
		m[inv.Name] = append(m[inv.Name], e.id)
	}
	return nil
}

func classify(def schema.AttributeDef, raw rawValue) (slot, error) {
	s := slot{def: def}
	if raw.kind == rawNull || raw.kind == rawDerived {
		// `$` is unset; `*` marks an attribute redeclared as derived by a
		// subtype, which is equally invisible to consumers.
		return s, nil
	}
	switch def.Kind {
	case model.AttrScalar:
		v, err := scalarValue(raw)
		if err != nil {
			return slot{}, err
		}
		s.value = v
	case model.AttrEntityRef:
		if raw.kind != rawRef {
			return slot{}, fmt.Errorf("expected entity reference")
		}
		s.ref = raw.ref
	case model.AttrEntityList:
		if raw.kind != rawList {
			return slot{}, fmt.Errorf("expected aggregate of entity references")
		}
		for _, el := range raw.list {
			if el.kind != rawRef {
				return slot{}, fmt.Errorf("expected aggregate of entity references")
			}
			s.list = append(s.list, el.ref)
		}
	case model.AttrDerived:
		// Stored values for derived attributes are ignored.
	}
	return s, nil
}

func scalarValue(raw rawValue) (model.Value, error) {
	switch raw.kind {
	case rawInteger:
		return model.IntValue(raw.num), nil
	case rawReal:
		return model.RealValue(raw.real), nil
	case rawText:
		return model.TextValue(raw.text), nil
	case rawBool:
		return model.BoolValue(raw.b), nil
	case rawEnum:
		return model.EnumValue(raw.text), nil
	case rawList:
		// Scalar aggregates (coordinates, direction ratios) are carried as
		// their canonical text form; the graph layer treats them as text.
		return model.TextValue(renderAggregate(raw)), nil
	case rawRef:
		return model.Value{}, fmt.Errorf("entity reference in scalar position")
	default:
		return model.Value{}, fmt.Errorf("unsupported scalar value")
	}
}

func renderAggregate(raw rawValue) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, el := range raw.list {
		if i > 0 {
			b.WriteByte(',')
		}
		switch el.kind {
		case rawInteger:
			b.WriteString(strconv.FormatInt(el.num, 10))
		case rawReal:
			b.WriteString(strconv.FormatFloat(el.real, 'g', -1, 64))
		case rawText:
			b.WriteString(el.text)
		case rawEnum:
			b.WriteString(el.text)
		case rawBool:
			if el.b {
				b.WriteString("T")
			} else {
				b.WriteString("F")
			}
		case rawList:
			b.WriteString(renderAggregate(el))
		}
	}
	b.WriteByte(')')
	return b.String()
}

// model.Entity implementation.

func (e *entity) ID() int64    { return e.id }
func (e *entity) Type() string { return e.typ }

func (e *entity) IsA(tag string) bool { return e.file.sch.IsA(e.typ, tag) }

func (e *entity) AttributeCount() int { return len(e.slots) }

func (e *entity) Attribute(i int) (model.Attribute, error) {
	if i < 0 || i >= len(e.slots) {
		return model.Attribute{}, fmt.Errorf("step: %s (#%d) has no attribute %d", e.typ, e.id, i)
	}
	s := e.slots[i]
	attr := model.Attribute{Name: s.def.Name, Kind: s.def.Kind, Value: s.value}
	if s.ref != 0 {
		target, err := e.file.ByID(s.ref)
		if err != nil {
			return model.Attribute{}, err
		}
		attr.Ref = target
	}
	for _, id := range s.list {
		target, err := e.file.ByID(id)
		if err != nil {
			return model.Attribute{}, err
		}
		attr.List = append(attr.List, target)
	}
	return attr, nil
}

func (e *entity) InverseNames() []string {
	defs := e.file.sch.InversesOf(e.typ)
	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
	}
	return names
}

func (e *entity) Inverse(name string) ([]model.Entity, error) {
	ids := e.file.inverse[e.id][name]
	if len(ids) == 0 {
		return nil, nil
	}
	out := make([]model.Entity, 0, len(ids))
	for _, id := range ids {
		ref, err := e.file.ByID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}
