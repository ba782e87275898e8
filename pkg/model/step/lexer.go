package step

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokRef           // #123
	tokName          // IFCWALL, DATA, ENDSEC
	tokString        // 'text'
	tokInteger
	tokReal
	tokEnum // .ELEMENT., .T., .F.
	tokLParen
	tokRParen
	tokComma
	tokSemi
	tokEquals
	tokDollar
	tokStar
)

type token struct {
	kind tokenKind
	text string
	line int
}

type lexer struct {
	src  []byte
	pos  int
	line int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, line: 1}
}

func (l *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("step: line %d: %s", l.line, fmt.Sprintf(format, args...))
}

func (l *lexer) skipSpace() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
			end := strings.Index(string(l.src[l.pos+2:]), "*/")
			if end < 0 {
				return l.errorf("unterminated comment")
			}
			l.line += strings.Count(string(l.src[l.pos:l.pos+2+end]), "\n")
			l.pos += end + 4
		default:
			return nil
		}
	}
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNameChar(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || isDigit(c) || c == '_'
}

// next returns the next token. Strings are returned with the EXPRESS ''
// escape already collapsed.
func (l *lexer) next() (token, error) {
	if err := l.skipSpace(); err != nil {
		return token{}, err
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line}, nil
	}
	start := l.pos
	c := l.src[l.pos]
	switch {
	case c == '#':
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
		if l.pos == start+1 {
			return token{}, l.errorf("bare '#'")
		}
		return token{kind: tokRef, text: string(l.src[start+1 : l.pos]), line: l.line}, nil
	case c == '\'':
		var b strings.Builder
		l.pos++
		for {
			if l.pos >= len(l.src) {
				return token{}, l.errorf("unterminated string")
			}
			ch := l.src[l.pos]
			if ch == '\'' {
				if l.pos+1 < len(l.src) && l.src[l.pos+1] == '\'' {
					b.WriteByte('\'')
					l.pos += 2
					continue
				}
				l.pos++
				return token{kind: tokString, text: b.String(), line: l.line}, nil
			}
			if ch == '\n' {
				l.line++
			}
			b.WriteByte(ch)
			l.pos++
		}
	case c == '.':
		l.pos++
		for l.pos < len(l.src) && l.src[l.pos] != '.' {
			if !isNameChar(l.src[l.pos]) {
				return token{}, l.errorf("malformed enumeration literal")
			}
			l.pos++
		}
		if l.pos >= len(l.src) {
			return token{}, l.errorf("unterminated enumeration literal")
		}
		l.pos++
		return token{kind: tokEnum, text: string(l.src[start+1 : l.pos-1]), line: l.line}, nil
	case c == '-' || c == '+' || isDigit(c):
		l.pos++
		real := false
		for l.pos < len(l.src) {
			ch := l.src[l.pos]
			if isDigit(ch) {
				l.pos++
				continue
			}
			if ch == '.' && !real {
				// Distinguish a decimal point from a following enum literal:
				// digits or E/e or end-of-number may follow the point.
				real = true
				l.pos++
				continue
			}
			if (ch == 'E' || ch == 'e') && real {
				l.pos++
				if l.pos < len(l.src) && (l.src[l.pos] == '-' || l.src[l.pos] == '+') {
					l.pos++
				}
				continue
			}
			break
		}
		kind := tokInteger
		if real {
			kind = tokReal
		}
		return token{kind: kind, text: string(l.src[start:l.pos]), line: l.line}, nil
	case isNameChar(c):
		for l.pos < len(l.src) && isNameChar(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokName, text: string(l.src[start:l.pos]), line: l.line}, nil
	case c == '(':
		l.pos++
		return token{kind: tokLParen, line: l.line}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, line: l.line}, nil
	case c == ',':
		l.pos++
		return token{kind: tokComma, line: l.line}, nil
	case c == ';':
		l.pos++
		return token{kind: tokSemi, line: l.line}, nil
	case c == '=':
		l.pos++
		return token{kind: tokEquals, line: l.line}, nil
	case c == '$':
		l.pos++
		return token{kind: tokDollar, line: l.line}, nil
	case c == '*':
		l.pos++
		return token{kind: tokStar, line: l.line}, nil
	default:
		return token{}, l.errorf("unexpected character %q", string(c))
	}
}
