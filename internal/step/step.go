// Package step reads STEP physical files (ISO 10303-21), the textual
// encoding used by IFC exports.
//
// The reader is deliberately narrow: it decodes the header section (for
// FILE_SCHEMA) and the DATA section into untyped instances, leaving all
// schema knowledge to the ifc package. It never writes files back.
package step

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind identifies the shape of a parameter value.
type Kind int

const (
	// KindNull is the unset marker `$`.
	KindNull Kind = iota
	// KindDerived is the derived-attribute marker `*`.
	KindDerived
	// KindInt is an integer literal.
	KindInt
	// KindReal is a real literal.
	KindReal
	// KindString is a quoted string literal.
	KindString
	// KindEnum is an enumeration literal, e.g. `.LENGTHUNIT.`.
	KindEnum
	// KindRef is an instance reference, e.g. `#42`.
	KindRef
	// KindList is a parenthesized aggregate.
	KindList
	// KindTyped is a select wrapper, e.g. `IFCLABEL('HD Cabinet')`.
	KindTyped
)

// Value is one parameter of an instance.
type Value struct {
	Kind Kind
	// Int holds the value for KindInt.
	Int int64
	// Real holds the value for KindReal.
	Real float64
	// Str holds the literal for KindString and KindEnum, and the type
	// name for KindTyped.
	Str string
	// Ref holds the target instance ID for KindRef.
	Ref int64
	// List holds the members for KindList.
	List []Value
	// Inner holds the wrapped value for KindTyped.
	Inner *Value
}

// Instance is one `#id = TYPE(...);` record from the DATA section.
type Instance struct {
	ID int64
	// Type is the entity type exactly as written, conventionally upper
	// case, e.g. "IFCFURNISHINGELEMENT".
	Type   string
	Params []Value
}

// File is a decoded STEP file.
type File struct {
	// Schema is the first schema identifier from FILE_SCHEMA.
	Schema string
	// Instances maps instance ID to instance.
	Instances map[int64]*Instance
	// Order lists instance IDs in file order.
	Order []int64
}

// Decode reads a complete STEP file from r.
func Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading STEP stream")
	}
	return Parse(data)
}

// Parse decodes a complete STEP file from memory.
func Parse(data []byte) (*File, error) {
	p := &parser{data: data}

	p.skip()
	if !p.keyword("ISO-10303-21") {
		return nil, p.errf("not a STEP file: missing ISO-10303-21 header")
	}
	if err := p.expect(';'); err != nil {
		return nil, err
	}

	f := &File{Instances: make(map[int64]*Instance)}

	for {
		p.skip()
		switch {
		case p.keyword("HEADER"):
			if err := p.expect(';'); err != nil {
				return nil, err
			}
			if err := p.header(f); err != nil {
				return nil, err
			}
		case p.keyword("DATA"):
			if err := p.expect(';'); err != nil {
				return nil, err
			}
			if err := p.dataSection(f); err != nil {
				return nil, err
			}
		case p.keyword("END-ISO-10303-21"):
			p.skip()
			return f, nil
		default:
			return nil, p.errf("unexpected content at offset %d", p.pos)
		}
	}
}

type parser struct {
	data []byte
	pos  int
}

func (p *parser) errf(format string, args ...any) error {
	return errors.Newf("step: "+format, args...)
}

// skip advances past whitespace and /* */ comments.
func (p *parser) skip() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			p.pos++
		case c == '/' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '*':
			end := strings.Index(string(p.data[p.pos+2:]), "*/")
			if end < 0 {
				p.pos = len(p.data)
				return
			}
			p.pos += 2 + end + 2
		default:
			return
		}
	}
}

// keyword consumes the given keyword if it appears next, case-insensitively.
func (p *parser) keyword(kw string) bool {
	p.skip()
	if p.pos+len(kw) > len(p.data) {
		return false
	}
	if !strings.EqualFold(string(p.data[p.pos:p.pos+len(kw)]), kw) {
		return false
	}
	// Must not be a prefix of a longer identifier.
	next := p.pos + len(kw)
	if next < len(p.data) && isIdentByte(p.data[next]) {
		return false
	}
	p.pos = next
	return true
}

func (p *parser) expect(c byte) error {
	p.skip()
	if p.pos >= len(p.data) || p.data[p.pos] != c {
		return p.errf("expected %q at offset %d", string(c), p.pos)
	}
	p.pos++
	return nil
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

func (p *parser) ident() string {
	p.skip()
	start := p.pos
	for p.pos < len(p.data) && isIdentByte(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos])
}

// header decodes the HEADER section, capturing FILE_SCHEMA.
func (p *parser) header(f *File) error {
	for {
		if p.keyword("ENDSEC") {
			return p.expect(';')
		}
		name := p.ident()
		if name == "" {
			return p.errf("malformed header entry at offset %d", p.pos)
		}
		params, err := p.paramList()
		if err != nil {
			return err
		}
		if err := p.expect(';'); err != nil {
			return err
		}
		if strings.EqualFold(name, "FILE_SCHEMA") {
			f.Schema = firstString(params)
		}
	}
}

// firstString digs the first string literal out of a (possibly nested)
// parameter list.
func firstString(vals []Value) string {
	for _, v := range vals {
		switch v.Kind {
		case KindString:
			return v.Str
		case KindList:
			if s := firstString(v.List); s != "" {
				return s
			}
		}
	}
	return ""
}

// dataSection decodes `#id = TYPE(...);` records until ENDSEC.
func (p *parser) dataSection(f *File) error {
	for {
		if p.keyword("ENDSEC") {
			return p.expect(';')
		}
		if err := p.expect('#'); err != nil {
			return err
		}
		id, err := p.integer()
		if err != nil {
			return err
		}
		if err := p.expect('='); err != nil {
			return err
		}
		typ := p.ident()
		if typ == "" {
			return p.errf("instance #%d: missing type name", id)
		}
		params, err := p.paramList()
		if err != nil {
			return errors.Wrapf(err, "instance #%d", id)
		}
		if err := p.expect(';'); err != nil {
			return errors.Wrapf(err, "instance #%d", id)
		}

		inst := &Instance{ID: id, Type: strings.ToUpper(typ), Params: params}
		if _, dup := f.Instances[id]; !dup {
			f.Order = append(f.Order, id)
		}
		f.Instances[id] = inst
	}
}

func (p *parser) integer() (int64, error) {
	p.skip()
	start := p.pos
	for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errf("expected integer at offset %d", start)
	}
	return strconv.ParseInt(string(p.data[start:p.pos]), 10, 64)
}

func (p *parser) paramList() ([]Value, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	var vals []Value
	p.skip()
	if p.pos < len(p.data) && p.data[p.pos] == ')' {
		p.pos++
		return vals, nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		p.skip()
		if p.pos >= len(p.data) {
			return nil, p.errf("unterminated parameter list")
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return vals, nil
		default:
			return nil, p.errf("expected ',' or ')' at offset %d", p.pos)
		}
	}
}

func (p *parser) value() (Value, error) {
	p.skip()
	if p.pos >= len(p.data) {
		return Value{}, p.errf("unexpected end of input")
	}
	switch c := p.data[p.pos]; {
	case c == '$':
		p.pos++
		return Value{Kind: KindNull}, nil
	case c == '*':
		p.pos++
		return Value{Kind: KindDerived}, nil
	case c == '#':
		p.pos++
		id, err := p.integer()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindRef, Ref: id}, nil
	case c == '\'':
		s, err := p.stringLit()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindString, Str: s}, nil
	case c == '.':
		return p.enumLit()
	case c == '(':
		list, err := p.paramList()
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindList, List: list}, nil
	case c == '-' || c == '+' || (c >= '0' && c <= '9'):
		return p.number()
	case isIdentByte(c):
		// Select wrapper: TYPENAME(value)
		name := p.ident()
		params, err := p.paramList()
		if err != nil {
			return Value{}, err
		}
		v := Value{Kind: KindTyped, Str: strings.ToUpper(name)}
		if len(params) > 0 {
			v.Inner = &params[0]
		}
		return v, nil
	default:
		return Value{}, p.errf("unexpected character %q at offset %d", string(c), p.pos)
	}
}

// stringLit decodes a '...' literal. Apostrophes are escaped by doubling;
// \X\ and \S\ directives are passed through untouched.
func (p *parser) stringLit() (string, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '\'' {
			if p.pos+1 < len(p.data) && p.data[p.pos+1] == '\'' {
				sb.WriteByte('\'')
				p.pos += 2
				continue
			}
			p.pos++
			return sb.String(), nil
		}
		sb.WriteByte(c)
		p.pos++
	}
	return "", p.errf("unterminated string literal")
}

func (p *parser) enumLit() (Value, error) {
	p.pos++ // opening dot
	start := p.pos
	for p.pos < len(p.data) && p.data[p.pos] != '.' {
		p.pos++
	}
	if p.pos >= len(p.data) {
		return Value{}, p.errf("unterminated enumeration literal")
	}
	lit := string(p.data[start:p.pos])
	p.pos++ // closing dot
	return Value{Kind: KindEnum, Str: strings.ToUpper(lit)}, nil
}

func (p *parser) number() (Value, error) {
	start := p.pos
	if c := p.data[p.pos]; c == '-' || c == '+' {
		p.pos++
	}
	real := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' {
			real = true
			p.pos++
			// Exponent sign.
			if (c == 'e' || c == 'E') && p.pos < len(p.data) &&
				(p.data[p.pos] == '-' || p.data[p.pos] == '+') {
				p.pos++
			}
			continue
		}
		break
	}
	lit := string(p.data[start:p.pos])
	if real {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return Value{}, p.errf("bad real literal %q", lit)
		}
		return Value{Kind: KindReal, Real: f}, nil
	}
	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return Value{}, p.errf("bad integer literal %q", lit)
	}
	return Value{Kind: KindInt, Int: i}, nil
}
