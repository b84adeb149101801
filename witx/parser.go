package witx

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/singlestore-labs/to-wit/errors"
	"github.com/singlestore-labs/to-wit/witx/internal/token"
)

var primitiveNames = map[string]bool{
	"bool": true, "char": true, "string": true,
	"u8": true, "u16": true, "u32": true, "u64": true,
	"s8": true, "s16": true, "s32": true, "s64": true,
	"f32": true, "f64": true,
}

type parser struct {
	named     map[string]wit.Type
	funcNames map[string]bool
	name      string
	order     []string
	funcs     []*Function
	tokens    []token.Token
	pos       int
}

func newParser(name string, tokens []token.Token) *parser {
	return &parser{
		name:      name,
		tokens:    tokens,
		named:     make(map[string]wit.Type),
		funcNames: make(map[string]bool),
	}
}

func (p *parser) parse() (*Interface, error) {
	for i := range p.tokens {
		if p.tokens[i].Type == token.Illegal {
			return nil, p.errAt(&p.tokens[i], "unterminated block comment")
		}
	}
	for p.peek() != nil {
		if err := p.parseDecl(); err != nil {
			return nil, err
		}
	}
	return &Interface{
		Name:       p.name,
		NamedTypes: p.named,
		TypeDecls:  p.order,
		Functions:  p.funcs,
	}, nil
}

func (p *parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) expect(typ token.Type) (*token.Token, error) {
	t := p.next()
	if t == nil {
		return nil, p.errEOF("expected %v", typ)
	}
	if t.Type != typ {
		return nil, p.errAt(t, "expected %v, got %q", typ, t.Value)
	}
	return t, nil
}

func (p *parser) errAt(t *token.Token, format string, args ...any) error {
	return errors.ParseAt(p.name, t.Line, fmt.Sprintf(format, args...))
}

func (p *parser) errEOF(format string, args ...any) error {
	line := 0
	if len(p.tokens) > 0 {
		line = p.tokens[len(p.tokens)-1].Line
	}
	detail := fmt.Sprintf(format, args...)
	return errors.ParseAt(p.name, line, "unexpected end of input: "+detail)
}

func (p *parser) parseDecl() error {
	t, err := p.expect(token.Ident)
	if err != nil {
		return err
	}

	// A name followed by ':' is a function declaration regardless of
	// whether the name collides with a keyword.
	if nt := p.peek(); nt != nil && nt.Type == token.Colon {
		return p.parseFunction(t)
	}

	switch t.Value {
	case "record":
		return p.parseRecord()
	case "variant":
		return p.parseVariant()
	case "enum":
		return p.parseEnum()
	case "flags":
		return p.parseFlags()
	case "union":
		return p.parseUnion()
	case "type":
		return p.parseAlias()
	case "resource":
		return p.errAt(t, "resource types are not supported")
	default:
		return p.errAt(t, "unexpected %q at top level", t.Value)
	}
}

func (p *parser) declare(t *token.Token, typ wit.Type) error {
	if _, ok := p.named[t.Value]; ok {
		return p.errAt(t, "duplicate type name %q", t.Value)
	}
	p.named[t.Value] = typ
	p.order = append(p.order, t.Value)
	return nil
}

func (p *parser) parseRecord() error {
	name, err := p.expect(token.Ident)
	if err != nil {
		return err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return err
	}

	var fields []wit.Field
	for {
		t := p.peek()
		if t == nil {
			return p.errEOF("unterminated record %q", name.Value)
		}
		if t.Type == token.RBrace {
			p.next()
			break
		}
		fname, err := p.expect(token.Ident)
		if err != nil {
			return err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return err
		}
		ftype, err := p.parseType()
		if err != nil {
			return err
		}
		fields = append(fields, wit.Field{Name: fname.Value, Type: ftype})
		if err := p.separator(token.RBrace); err != nil {
			return err
		}
	}

	return p.declare(name, &wit.TypeDef{Kind: &wit.Record{Fields: fields}})
}

func (p *parser) parseVariant() error {
	name, err := p.expect(token.Ident)
	if err != nil {
		return err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return err
	}

	var cases []wit.Case
	for {
		t := p.peek()
		if t == nil {
			return p.errEOF("unterminated variant %q", name.Value)
		}
		if t.Type == token.RBrace {
			p.next()
			break
		}
		cname, err := p.expect(token.Ident)
		if err != nil {
			return err
		}
		c := wit.Case{Name: cname.Value}
		if nt := p.peek(); nt != nil && nt.Type == token.LParen {
			p.next()
			payload, err := p.parseType()
			if err != nil {
				return err
			}
			if _, err := p.expect(token.RParen); err != nil {
				return err
			}
			c.Type = payload
		}
		cases = append(cases, c)
		if err := p.separator(token.RBrace); err != nil {
			return err
		}
	}

	if len(cases) == 0 {
		return p.errAt(name, "variant %q has no cases", name.Value)
	}
	return p.declare(name, &wit.TypeDef{Kind: &wit.Variant{Cases: cases}})
}

// parseNameList parses the "{ a, b, c }" body shared by enum and flags
// declarations and returns the names in order.
func (p *parser) parseNameList(owner string) ([]string, error) {
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	var names []string
	for {
		t := p.peek()
		if t == nil {
			return nil, p.errEOF("unterminated %q", owner)
		}
		if t.Type == token.RBrace {
			p.next()
			break
		}
		n, err := p.expect(token.Ident)
		if err != nil {
			return nil, err
		}
		names = append(names, n.Value)
		if err := p.separator(token.RBrace); err != nil {
			return nil, err
		}
	}
	return names, nil
}

func (p *parser) parseEnum() error {
	name, err := p.expect(token.Ident)
	if err != nil {
		return err
	}
	names, err := p.parseNameList(name.Value)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return p.errAt(name, "enum %q has no cases", name.Value)
	}
	cases := make([]wit.EnumCase, len(names))
	for i, n := range names {
		cases[i] = wit.EnumCase{Name: n}
	}
	return p.declare(name, &wit.TypeDef{Kind: &wit.Enum{Cases: cases}})
}

func (p *parser) parseFlags() error {
	name, err := p.expect(token.Ident)
	if err != nil {
		return err
	}
	names, err := p.parseNameList(name.Value)
	if err != nil {
		return err
	}
	flags := make([]wit.Flag, len(names))
	for i, n := range names {
		flags[i] = wit.Flag{Name: n}
	}
	return p.declare(name, &wit.TypeDef{Kind: &wit.Flags{Flags: flags}})
}

// parseUnion lowers "union name { a, b }" to a variant whose cases are named
// by ordinal, the same lowering the component model adopted when unions were
// retired from the grammar.
func (p *parser) parseUnion() error {
	name, err := p.expect(token.Ident)
	if err != nil {
		return err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return err
	}

	var cases []wit.Case
	for {
		t := p.peek()
		if t == nil {
			return p.errEOF("unterminated union %q", name.Value)
		}
		if t.Type == token.RBrace {
			p.next()
			break
		}
		typ, err := p.parseType()
		if err != nil {
			return err
		}
		cases = append(cases, wit.Case{Name: fmt.Sprintf("%d", len(cases)), Type: typ})
		if err := p.separator(token.RBrace); err != nil {
			return err
		}
	}

	if len(cases) == 0 {
		return p.errAt(name, "union %q has no cases", name.Value)
	}
	return p.declare(name, &wit.TypeDef{Kind: &wit.Variant{Cases: cases}})
}

func (p *parser) parseAlias() error {
	name, err := p.expect(token.Ident)
	if err != nil {
		return err
	}
	if _, err := p.expect(token.Equals); err != nil {
		return err
	}
	typ, err := p.parseType()
	if err != nil {
		return err
	}
	return p.declare(name, typ)
}

func (p *parser) parseFunction(name *token.Token) error {
	if p.funcNames[name.Value] {
		return p.errAt(name, "duplicate function name %q", name.Value)
	}
	if _, err := p.expect(token.Colon); err != nil {
		return err
	}
	kw, err := p.expect(token.Ident)
	if err != nil {
		return err
	}
	if kw.Value != "function" && kw.Value != "func" {
		return p.errAt(kw, "expected \"function\", got %q", kw.Value)
	}
	if _, err := p.expect(token.LParen); err != nil {
		return err
	}

	fn := &Function{Name: name.Value}
	for {
		t := p.peek()
		if t == nil {
			return p.errEOF("unterminated parameter list for %q", name.Value)
		}
		if t.Type == token.RParen {
			p.next()
			break
		}
		pname, err := p.expect(token.Ident)
		if err != nil {
			return err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return err
		}
		ptype, err := p.parseType()
		if err != nil {
			return err
		}
		fn.Params = append(fn.Params, Param{Name: pname.Value, Type: ptype})
		if err := p.separator(token.RParen); err != nil {
			return err
		}
	}

	if t := p.peek(); t != nil && t.Type == token.Arrow {
		p.next()
		results, err := p.parseResults(name.Value)
		if err != nil {
			return err
		}
		fn.Results = results
	}

	p.funcNames[name.Value] = true
	p.funcs = append(p.funcs, fn)
	return nil
}

func (p *parser) parseResults(fname string) ([]wit.Type, error) {
	t := p.peek()
	if t == nil {
		return nil, p.errEOF("missing result type for %q", fname)
	}

	if t.Type == token.LParen {
		p.next()
		var results []wit.Type
		for {
			t := p.peek()
			if t == nil {
				return nil, p.errEOF("unterminated result list for %q", fname)
			}
			if t.Type == token.RParen {
				p.next()
				break
			}
			rt, err := p.parseType()
			if err != nil {
				return nil, err
			}
			results = append(results, rt)
			if err := p.separator(token.RParen); err != nil {
				return nil, err
			}
		}
		return results, nil
	}

	rt, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if rt == nil {
		// "-> unit" means no results
		return nil, nil
	}
	return []wit.Type{rt}, nil
}

// separator consumes a comma between list entries; the closing token may
// follow directly (trailing commas are permitted).
func (p *parser) separator(closing token.Type) error {
	t := p.peek()
	if t == nil {
		return p.errEOF("expected %v or %v", token.Comma, closing)
	}
	if t.Type == token.Comma {
		p.next()
		return nil
	}
	if t.Type == closing {
		return nil
	}
	return p.errAt(t, "expected %v or %v, got %q", token.Comma, closing, t.Value)
}

func (p *parser) parseType() (wit.Type, error) {
	t, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	switch t.Value {
	case "unit":
		return nil, nil

	case "list":
		elem, err := p.parseTypeArgs(t, 1)
		if err != nil {
			return nil, err
		}
		return &wit.TypeDef{Kind: &wit.List{Type: elem[0]}}, nil

	case "option":
		inner, err := p.parseTypeArgs(t, 1)
		if err != nil {
			return nil, err
		}
		return &wit.TypeDef{Kind: &wit.Option{Type: inner[0]}}, nil

	case "expected":
		args, err := p.parseTypeArgs(t, 2)
		if err != nil {
			return nil, err
		}
		return &wit.TypeDef{Kind: &wit.Result{OK: args[0], Err: args[1]}}, nil

	case "tuple":
		if _, err := p.expect(token.LAngle); err != nil {
			return nil, err
		}
		var types []wit.Type
		for {
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			types = append(types, typ)
			nt := p.next()
			if nt == nil {
				return nil, p.errEOF("unterminated tuple")
			}
			if nt.Type == token.RAngle {
				break
			}
			if nt.Type != token.Comma {
				return nil, p.errAt(nt, "expected %v or %v, got %q", token.Comma, token.RAngle, nt.Value)
			}
		}
		return &wit.TypeDef{Kind: &wit.Tuple{Types: types}}, nil
	}

	if primitiveNames[t.Value] {
		typ, err := wit.ParseType(t.Value)
		if err != nil {
			return nil, p.errAt(t, "bad primitive type %q: %v", t.Value, err)
		}
		return typ, nil
	}

	if typ, ok := p.named[t.Value]; ok {
		return typ, nil
	}
	return nil, p.errAt(t, "unknown type %q", t.Value)
}

// parseTypeArgs parses "<T>" or "<T, E>" after a parameterized type keyword.
func (p *parser) parseTypeArgs(kw *token.Token, n int) ([]wit.Type, error) {
	if _, err := p.expect(token.LAngle); err != nil {
		return nil, err
	}
	args := make([]wit.Type, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, typ)
	}
	if _, err := p.expect(token.RAngle); err != nil {
		return nil, err
	}
	return args, nil
}
