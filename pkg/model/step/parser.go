package step

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/meshwerk/ifcgraph/pkg/model/schema"
)

type rawKind int

const (
	rawNull rawKind = iota
	rawDerived
	rawInteger
	rawReal
	rawText
	rawBool
	rawEnum
	rawRef
	rawList
)

// rawValue is one parsed argument before schema classification.
type rawValue struct {
	kind rawKind
	num  int64
	real float64
	text string
	b    bool
	ref  int64
	list []rawValue
}

type rawRecord struct {
	id   int64
	typ  string
	args []rawValue
	line int
}

type parser struct {
	lex      *lexer
	sch      *schema.Schema
	keywords map[string]string // IFCWALL -> IfcWall

	// one-token lookahead
	peeked bool
	tok    token
}

// Parse decodes an ISO 10303-21 exchange file into a File backed by the
// given schema. The header section is skipped (FILE_SCHEMA is captured for
// reporting only); every DATA record must be a type the schema declares,
// with the declared attribute arity.
func Parse(data []byte, sch *schema.Schema) (*File, error) {
	keywords := make(map[string]string)
	for _, name := range sch.Types() {
		keywords[strings.ToUpper(name)] = name
	}
	p := &parser{lex: newLexer(data), sch: sch, keywords: keywords}

	schemaName, err := p.header()
	if err != nil {
		return nil, err
	}

	var records []rawRecord
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokName && tok.text == "ENDSEC" {
			if err := p.expect(tokSemi); err != nil {
				return nil, err
			}
			break
		}
		if tok.kind != tokRef {
			return nil, fmt.Errorf("step: line %d: expected record reference, got %q", tok.line, tok.text)
		}
		rec, err := p.record(tok)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	f := &File{
		schemaName: schemaName,
		sch:        sch,
		entities:   make(map[int64]*entity, len(records)),
	}
	if err := f.build(records); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *parser) next() (token, error) {
	if p.peeked {
		p.peeked = false
		return p.tok, nil
	}
	return p.lex.next()
}

func (p *parser) peek() (token, error) {
	if !p.peeked {
		tok, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.tok = tok
		p.peeked = true
	}
	return p.tok, nil
}

func (p *parser) expect(kind tokenKind) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.kind != kind {
		return fmt.Errorf("step: line %d: unexpected token %q", tok.line, tok.text)
	}
	return nil
}

// header consumes everything up to and including the DATA; section opener
// and returns the declared file schema, if any.
func (p *parser) header() (string, error) {
	var schemaName string
	inFileSchema := false
	for {
		tok, err := p.next()
		if err != nil {
			return "", err
		}
		switch {
		case tok.kind == tokEOF:
			return "", fmt.Errorf("step: no DATA section")
		case tok.kind == tokName && tok.text == "DATA":
			if err := p.expect(tokSemi); err != nil {
				return "", err
			}
			return schemaName, nil
		case tok.kind == tokName && tok.text == "FILE_SCHEMA":
			inFileSchema = true
		case tok.kind == tokString && inFileSchema && schemaName == "":
			schemaName = tok.text
		case tok.kind == tokSemi:
			inFileSchema = false
		}
	}
}

// record parses `= TYPE(args);` after the leading #id token.
func (p *parser) record(ref token) (rawRecord, error) {
	id, err := strconv.ParseInt(ref.text, 10, 64)
	if err != nil {
		return rawRecord{}, fmt.Errorf("step: line %d: bad record id #%s", ref.line, ref.text)
	}
	if err := p.expect(tokEquals); err != nil {
		return rawRecord{}, err
	}
	name, err := p.next()
	if err != nil {
		return rawRecord{}, err
	}
	if name.kind != tokName {
		return rawRecord{}, fmt.Errorf("step: line %d: expected type name after #%d=", name.line, id)
	}
	args, err := p.valueList()
	if err != nil {
		return rawRecord{}, err
	}
	if err := p.expect(tokSemi); err != nil {
		return rawRecord{}, err
	}
	return rawRecord{id: id, typ: p.canonicalType(name.text), args: args, line: ref.line}, nil
}

func (p *parser) valueList() ([]rawValue, error) {
	if err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokRParen {
		p.peeked = false
		return nil, nil
	}
	var values []rawValue
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokComma:
			continue
		case tokRParen:
			return values, nil
		default:
			return nil, fmt.Errorf("step: line %d: unexpected token in argument list", tok.line)
		}
	}
}

func (p *parser) value() (rawValue, error) {
	tok, err := p.next()
	if err != nil {
		return rawValue{}, err
	}
	switch tok.kind {
	case tokDollar:
		return rawValue{kind: rawNull}, nil
	case tokStar:
		return rawValue{kind: rawDerived}, nil
	case tokInteger:
		n, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return rawValue{}, fmt.Errorf("step: line %d: bad integer %q", tok.line, tok.text)
		}
		return rawValue{kind: rawInteger, num: n}, nil
	case tokReal:
		f, err := strconv.ParseFloat(strings.TrimSuffix(tok.text, "."), 64)
		if err != nil {
			return rawValue{}, fmt.Errorf("step: line %d: bad real %q", tok.line, tok.text)
		}
		return rawValue{kind: rawReal, real: f}, nil
	case tokString:
		return rawValue{kind: rawText, text: tok.text}, nil
	case tokEnum:
		switch tok.text {
		case "T":
			return rawValue{kind: rawBool, b: true}, nil
		case "F":
			return rawValue{kind: rawBool, b: false}, nil
		}
		return rawValue{kind: rawEnum, text: tok.text}, nil
	case tokRef:
		id, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return rawValue{}, fmt.Errorf("step: line %d: bad reference #%s", tok.line, tok.text)
		}
		return rawValue{kind: rawRef, ref: id}, nil
	case tokLParen:
		// Aggregate: push the paren back and parse elements.
		p.peeked = true
		p.tok = tok
		return p.aggregate()
	case tokName:
		// Typed simple value, e.g. IFCLABEL('x'): unwrap the single inner
		// value and discard the wrapper type.
		inner, err := p.valueList()
		if err != nil {
			return rawValue{}, err
		}
		if len(inner) != 1 {
			return rawValue{}, fmt.Errorf("step: line %d: typed value %s must wrap one value", tok.line, tok.text)
		}
		return inner[0], nil
	default:
		return rawValue{}, fmt.Errorf("step: line %d: unexpected token in value position", tok.line)
	}
}

func (p *parser) aggregate() (rawValue, error) {
	values, err := p.valueList()
	if err != nil {
		return rawValue{}, err
	}
	return rawValue{kind: rawList, list: values}, nil
}

// canonicalType maps an upper-cased STEP keyword (IFCWALLSTANDARDCASE) to
// its schema spelling (IfcWallStandardCase) when possible; unknown keywords
// pass through unchanged and fail schema lookup later with a clear error.
func (p *parser) canonicalType(keyword string) string {
	if c, ok := p.keywords[strings.ToUpper(keyword)]; ok {
		return c
	}
	return keyword
}
