// Package parser implements a recursive-descent parser over the lexer's
// token stream, building an *ir.Circuit. It is a direct generalization of
// the original implementation's boost::spirit::qi grammar
// (FirrtlFrontendGrammar.h) into ordinary Go control flow: each qi::rule
// becomes one parseX method, and phoenix semantic actions become plain
// struct construction as each method returns.
package parser

import (
	"strconv"
	"strings"

	"github.com/firrtlator/firrtlator/ferr"
	"github.com/firrtlator/firrtlator/ir"
	"github.com/firrtlator/firrtlator/lexer"
	"github.com/firrtlator/firrtlator/token"
)

// Parser consumes a token stream (via an internal one-token lookahead
// buffer) and builds IR nodes bottom-up. The parser fails fast: the first
// syntactic mismatch returns a ferr.ParseError and parsing stops, matching
// spec.md §4.2's "whole-file transaction" contract.
type Parser struct {
	lex  *lexer.Lexer
	tok  token.Token
	peek *token.Token
}

// New constructs a Parser over src.
func New(src string) *Parser {
	return &Parser{lex: lexer.New(src)}
}

// ParseCircuit parses an entire source string as a single FIRRTL circuit.
func ParseCircuit(src string) (*ir.Circuit, error) {
	p := New(src)
	return p.parseCircuit()
}

func (p *Parser) advance() error {
	if p.peek != nil {
		p.tok = *p.peek
		p.peek = nil
		return nil
	}
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *Parser) peekTok() (token.Token, error) {
	if p.peek == nil {
		t, err := p.lex.Next()
		if err != nil {
			return token.Token{}, err
		}
		p.peek = &t
	}
	return *p.peek, nil
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return ferr.ParseError(p.tok.Pos, format, args...)
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	if p.tok.Kind != k {
		return token.Token{}, p.errorf("expected %s, got %s", k, p.tok.Kind)
	}
	return p.tok, nil
}

// at reports whether the upcoming token (without consuming it) has kind k.
func (p *Parser) at(k token.Kind) (bool, error) {
	t, err := p.peekTok()
	if err != nil {
		return false, err
	}
	return t.Kind == k, nil
}

// optionalInfo consumes and returns an INFO token's payload if one is next,
// otherwise leaves the stream untouched and returns "".
func (p *Parser) optionalInfo() (string, error) {
	ok, err := p.at(token.INFO)
	if err != nil || !ok {
		return "", err
	}
	if err := p.advance(); err != nil {
		return "", err
	}
	return p.tok.Value, nil
}

// --- circuit / module / port -------------------------------------------

func (p *Parser) parseCircuit() (*ir.Circuit, error) {
	if _, err := p.expect(token.CIRCUIT); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	c := ir.NewCircuit(name.Value)
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		c.Info = info
	}

	hasBody, err := p.at(token.INDENT)
	if err != nil {
		return nil, err
	}
	if hasBody {
		if err := p.advance(); err != nil {
			return nil, err
		}
		for {
			isDedent, err := p.at(token.DEDENT)
			if err != nil {
				return nil, err
			}
			if isDedent {
				break
			}
			m, err := p.parseModule()
			if err != nil {
				return nil, err
			}
			c.AddModule(m)
		}
		if _, err := p.expect(token.DEDENT); err != nil {
			return nil, err
		}
	}
	isEOF, err := p.at(token.EOF)
	if err != nil {
		return nil, err
	}
	if !isEOF {
		t, err := p.peekTok()
		if err != nil {
			return nil, err
		}
		return nil, ferr.ParseError(t.Pos, "unexpected trailing token %s", t.Kind)
	}
	return c, nil
}

func (p *Parser) parseModule() (*ir.Module, error) {
	isExt, err := p.at(token.EXTMODULE)
	if err != nil {
		return nil, err
	}
	if isExt {
		return p.parseExtModule()
	}
	return p.parseIntModule()
}

func (p *Parser) parseIntModule() (*ir.Module, error) {
	if _, err := p.expect(token.MODULE); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	m := ir.NewModule(name.Value)
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		m.Info = info
	}

	hasBody, err := p.at(token.INDENT)
	if err != nil {
		return nil, err
	}
	if hasBody {
		if err := p.advance(); err != nil {
			return nil, err
		}
		for {
			isPort, err := p.atPortStart()
			if err != nil {
				return nil, err
			}
			if !isPort {
				break
			}
			port, err := p.parsePort()
			if err != nil {
				return nil, err
			}
			m.AddPort(port)
		}
		body, err := p.parseStmtGroup()
		if err != nil {
			return nil, err
		}
		m.Body = body
		if _, err := p.expect(token.DEDENT); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (p *Parser) parseExtModule() (*ir.Module, error) {
	if _, err := p.expect(token.EXTMODULE); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	m := ir.NewExtModule(name.Value)
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		m.Info = info
	}

	hasBody, err := p.at(token.INDENT)
	if err != nil {
		return nil, err
	}
	if hasBody {
		if err := p.advance(); err != nil {
			return nil, err
		}
		for {
			isPort, err := p.atPortStart()
			if err != nil {
				return nil, err
			}
			if !isPort {
				break
			}
			port, err := p.parsePort()
			if err != nil {
				return nil, err
			}
			m.AddPort(port)
		}
		hasDefname, err := p.at(token.DEFNAME)
		if err != nil {
			return nil, err
		}
		if hasDefname {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if _, err := p.expect(token.EQUALS); err != nil {
				return nil, err
			}
			id, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			if err := m.SetDefname(id.Value); err != nil {
				return nil, err
			}
		}
		for {
			hasParam, err := p.at(token.PARAMETER)
			if err != nil {
				return nil, err
			}
			if !hasParam {
				break
			}
			param, err := p.parseParameter()
			if err != nil {
				return nil, err
			}
			if err := m.AddParameter(param); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(token.DEDENT); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (p *Parser) atPortStart() (bool, error) {
	in, err := p.at(token.INPUT)
	if err != nil || in {
		return in, err
	}
	return p.at(token.OUTPUT)
}

func (p *Parser) parsePort() (*ir.Port, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	dir := ir.Input
	if p.tok.Kind == token.OUTPUT {
		dir = ir.Output
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	port := ir.NewPort(name.Value, dir, typ)
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		port.Info = info
	}
	return port, nil
}

func (p *Parser) parseParameter() (*ir.Parameter, error) {
	if _, err := p.expect(token.PARAMETER); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQUALS); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	switch p.tok.Kind {
	case token.INT, token.STRING, token.IDENT:
		return ir.NewParameter(name.Value, p.tok.Value), nil
	}
	return nil, p.errorf("expected parameter value, got %s", p.tok.Kind)
}

// --- types ---------------------------------------------------------------

func (p *Parser) parseType() (ir.Type, error) {
	base, err := p.parseBaseType()
	if err != nil {
		return nil, err
	}
	for {
		isVec, err := p.at(token.LBRACK)
		if err != nil {
			return nil, err
		}
		if !isVec {
			return base, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		size, err := p.expect(token.INT)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(size.Value)
		if err != nil {
			return nil, p.errorf("invalid vector size %q", size.Value)
		}
		if _, err := p.expect(token.RBRACK); err != nil {
			return nil, err
		}
		base = ir.NewTypeVector(base, n)
	}
}

func (p *Parser) parseBaseType() (ir.Type, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	switch p.tok.Kind {
	case token.UINT, token.SINT:
		signed := p.tok.Kind == token.SINT
		hasWidth, err := p.at(token.LT)
		if err != nil {
			return nil, err
		}
		if !hasWidth {
			return ir.NewTypeInt(signed, -1), nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		w, err := p.expect(token.INT)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(w.Value)
		if err != nil {
			return nil, p.errorf("invalid width %q", w.Value)
		}
		if _, err := p.expect(token.GT); err != nil {
			return nil, err
		}
		return ir.NewTypeInt(signed, n), nil
	case token.CLOCK:
		return &ir.TypeClock{}, nil
	case token.LBRACE:
		bundle := ir.NewTypeBundle()
		for {
			isEnd, err := p.at(token.RBRACE)
			if err != nil {
				return nil, err
			}
			if isEnd {
				break
			}
			f, err := p.parseField()
			if err != nil {
				return nil, err
			}
			bundle.AddField(f)
		}
		if _, err := p.expect(token.RBRACE); err != nil {
			return nil, err
		}
		return bundle, nil
	}
	return nil, p.errorf("expected a type, got %s", p.tok.Kind)
}

func (p *Parser) parseField() (*ir.Field, error) {
	flip, err := p.at(token.FLIP)
	if err != nil {
		return nil, err
	}
	if flip {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return ir.NewField(name.Value, typ, flip), nil
}

// --- statements ------------------------------------------------------------

// atStmtStart reports whether the next token can open a statement,
// mirroring the qi::rule stmt alternation.
func (p *Parser) atStmtStart() (bool, error) {
	t, err := p.peekTok()
	if err != nil {
		return false, err
	}
	switch t.Kind {
	case token.WIRE, token.REG, token.MEM, token.INST, token.NODE,
		token.WHEN, token.STOP, token.PRINTF, token.SKIP,
		token.IDENT, token.UINT, token.SINT, token.MUX, token.VALIDIF, token.PRIMOP:
		return true, nil
	}
	return false, nil
}

func (p *Parser) parseStmtGroup() (*ir.StmtGroup, error) {
	group := ir.NewStmtGroup()
	for {
		ok, err := p.atStmtStart()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		group.Stmts = append(group.Stmts, s)
	}
	return group, nil
}

// parseStmtOrSuite parses either a single inline statement or an indented
// suite of statements (`(stmt|suite)` in the original grammar).
func (p *Parser) parseStmtOrSuite() (*ir.StmtGroup, error) {
	isIndent, err := p.at(token.INDENT)
	if err != nil {
		return nil, err
	}
	if isIndent {
		if err := p.advance(); err != nil {
			return nil, err
		}
		group, err := p.parseStmtGroup()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.DEDENT); err != nil {
			return nil, err
		}
		return group, nil
	}
	s, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return ir.NewStmtGroup(s), nil
}

func (p *Parser) parseStmt() (ir.Stmt, error) {
	t, err := p.peekTok()
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case token.WIRE:
		return p.parseWire()
	case token.REG:
		return p.parseReg()
	case token.MEM:
		return p.parseMem()
	case token.INST:
		return p.parseInst()
	case token.NODE:
		return p.parseNode()
	case token.WHEN:
		return p.parseConditional()
	case token.STOP:
		return p.parseStop()
	case token.PRINTF:
		return p.parsePrintf()
	case token.SKIP:
		return p.parseEmpty()
	}
	return p.parseConnectOrInvalidate()
}

func (p *Parser) parseWire() (*ir.Wire, error) {
	if _, err := p.expect(token.WIRE); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	w := ir.NewWire(name.Value, typ)
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		w.Info = info
	}
	return w, nil
}

func (p *Parser) parseReg() (*ir.Reg, error) {
	if _, err := p.expect(token.REG); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	clock, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	r := ir.NewReg(name.Value, typ, clock)

	hasWith, err := p.at(token.WITH)
	if err != nil {
		return nil, err
	}
	if hasWith {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		resetID, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if resetID.Value != "reset" {
			return nil, p.errorf("expected identifier \"reset\", got %q", resetID.Value)
		}
		if _, err := p.expect(token.ARROW); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		trig, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		r.ResetTrigger = trig
		r.ResetValue = val
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
	}
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		r.Info = info
	}
	return r, nil
}

// parseMem parses `mem ID : info? (INDENT field* DEDENT)?` — a memory body
// is an indented suite of key => value lines, the same shape as a module
// body, not a parenthesized list (spec.md §4.2 S5).
func (p *Parser) parseMem() (*ir.Memory, error) {
	if _, err := p.expect(token.MEM); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	m := ir.NewMemory(name.Value)
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		m.Info = info
	}

	hasBody, err := p.at(token.INDENT)
	if err != nil {
		return nil, err
	}
	if hasBody {
		if err := p.advance(); err != nil {
			return nil, err
		}
		seen := make(map[token.Kind]bool)
		for {
			isEnd, err := p.at(token.DEDENT)
			if err != nil {
				return nil, err
			}
			if isEnd {
				break
			}
			if err := p.parseMemField(m, seen); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(token.DEDENT); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// scalarMemKeys are the memory fields that spec.md §4.2 allows at most once;
// repeats are a ferr.SemanticError (spec.md §7 "duplicate memory scalar
// field"), symmetric with Memory.AddReader/AddWriter/AddReadWriter rejecting
// a repeated port name.
var scalarMemKeys = map[token.Kind]string{
	token.DATATYPE:       "datatype",
	token.DEPTH:          "depth",
	token.READLATENCY:    "read-latency",
	token.WRITELATENCY:   "write-latency",
	token.READUNDERWRITE: "read-under-write",
}

func (p *Parser) parseMemField(m *ir.Memory, seen map[token.Kind]bool) error {
	if err := p.advance(); err != nil {
		return err
	}
	kind := p.tok.Kind
	keyPos := p.tok.Pos
	if kind != token.READER && kind != token.WRITER && kind != token.READWRITER {
		if _, err := p.expect(token.ARROW); err != nil {
			return err
		}
	}
	if label, scalar := scalarMemKeys[kind]; scalar {
		if seen[kind] {
			return ferr.SemanticError(keyPos, "duplicate memory scalar field %q", label)
		}
		seen[kind] = true
	}
	switch kind {
	case token.DATATYPE:
		typ, err := p.parseType()
		if err != nil {
			return err
		}
		m.SetDType(typ)
	case token.DEPTH:
		v, err := p.expect(token.INT)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(v.Value)
		if err != nil {
			return p.errorf("invalid depth %q", v.Value)
		}
		m.Depth = n
	case token.READLATENCY:
		v, err := p.expect(token.INT)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(v.Value)
		if err != nil {
			return p.errorf("invalid read-latency %q", v.Value)
		}
		m.ReadLatency = n
	case token.WRITELATENCY:
		v, err := p.expect(token.INT)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(v.Value)
		if err != nil {
			return p.errorf("invalid write-latency %q", v.Value)
		}
		m.WriteLatency = n
	case token.READUNDERWRITE:
		if err := p.advance(); err != nil {
			return err
		}
		switch p.tok.Kind {
		case token.OLD:
			m.RUW = ir.RUWOld
		case token.NEW:
			m.RUW = ir.RUWNew
		case token.UNDEFINED:
			m.RUW = ir.RUWUndefined
		default:
			return p.errorf("expected old|new|undefined, got %s", p.tok.Kind)
		}
	case token.READER:
		if _, err := p.expect(token.ARROW); err != nil {
			return err
		}
		id, err := p.expect(token.IDENT)
		if err != nil {
			return err
		}
		return m.AddReader(id.Value)
	case token.WRITER:
		if _, err := p.expect(token.ARROW); err != nil {
			return err
		}
		id, err := p.expect(token.IDENT)
		if err != nil {
			return err
		}
		return m.AddWriter(id.Value)
	case token.READWRITER:
		if _, err := p.expect(token.ARROW); err != nil {
			return err
		}
		id, err := p.expect(token.IDENT)
		if err != nil {
			return err
		}
		return m.AddReadWriter(id.Value)
	default:
		return p.errorf("unexpected memory field key %s", kind)
	}
	return nil
}

func (p *Parser) parseInst() (*ir.Instance, error) {
	if _, err := p.expect(token.INST); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OF); err != nil {
		return nil, err
	}
	of, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	inst := ir.NewInstance(name.Value, of.Value)
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		inst.Info = info
	}
	return inst, nil
}

func (p *Parser) parseNode() (*ir.NodeStmt, error) {
	if _, err := p.expect(token.NODE); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQUALS); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	n := ir.NewNodeStmt(name.Value, val)
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		n.Info = info
	}
	return n, nil
}

// parseConnectOrInvalidate parses `exp <= exp`, `exp <- exp`, or
// `exp is invalid`, distinguishing by the token that follows the leading
// expression.
func (p *Parser) parseConnectOrInvalidate() (ir.Stmt, error) {
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	switch p.tok.Kind {
	case token.CONNECT:
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		c := ir.NewConnect(lhs, rhs, false)
		if info, err := p.optionalInfo(); err != nil {
			return nil, err
		} else {
			c.Info = info
		}
		return c, nil
	case token.PCONNECT:
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		c := ir.NewConnect(lhs, rhs, true)
		if info, err := p.optionalInfo(); err != nil {
			return nil, err
		} else {
			c.Info = info
		}
		return c, nil
	case token.IS:
		if _, err := p.expect(token.INVALID); err != nil {
			return nil, err
		}
		inv := ir.NewInvalid(lhs)
		if info, err := p.optionalInfo(); err != nil {
			return nil, err
		} else {
			inv.Info = info
		}
		return inv, nil
	}
	return nil, p.errorf("expected '<=', '<-', or 'is invalid', got %s", p.tok.Kind)
}

func (p *Parser) parseConditional() (*ir.Conditional, error) {
	if _, err := p.expect(token.WHEN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	c := ir.NewConditional(cond, ir.NewStmtGroup())
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		c.Info = info
	}

	hasThen, err := p.atStmtOrSuiteStart()
	if err != nil {
		return nil, err
	}
	if hasThen {
		then, err := p.parseStmtOrSuite()
		if err != nil {
			return nil, err
		}
		c.Then = then
	}

	hasElse, err := p.at(token.ELSE)
	if err != nil {
		return nil, err
	}
	if hasElse {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBranch, err := p.parseConditionalElse()
		if err != nil {
			return nil, err
		}
		c.Else = elseBranch
	}
	return c, nil
}

// parseConditionalElse parses the body following `else`: either a nested
// `when` (an else-if chain, represented as a nested Conditional per
// spec.md §9's resolution of that Open Question) or `: (stmt|suite)`.
func (p *Parser) parseConditionalElse() (ir.ElseBranch, error) {
	isWhen, err := p.at(token.WHEN)
	if err != nil {
		return nil, err
	}
	if isWhen {
		return p.parseConditional()
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	if _, err := p.optionalInfo(); err != nil {
		return nil, err
	}
	return p.parseStmtOrSuite()
}

func (p *Parser) atStmtOrSuiteStart() (bool, error) {
	ok, err := p.at(token.INDENT)
	if err != nil || ok {
		return ok, err
	}
	return p.atStmtStart()
}

func (p *Parser) parseStop() (*ir.Stop, error) {
	if _, err := p.expect(token.STOP); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	clock, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	code, err := p.expect(token.INT)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(code.Value)
	if err != nil {
		return nil, p.errorf("invalid stop code %q", code.Value)
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	s := ir.NewStop(clock, cond, n)
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		s.Info = info
	}
	return s, nil
}

func (p *Parser) parsePrintf() (*ir.Printf, error) {
	if _, err := p.expect(token.PRINTF); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	clock, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	format, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(format.Value)
	for {
		isEnd, err := p.at(token.RPAREN)
		if err != nil {
			return nil, err
		}
		if isEnd {
			break
		}
		if _, err := p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	pr := ir.NewPrintf(clock, cond, sb.String())
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		pr.Info = info
	}
	return pr, nil
}

func (p *Parser) parseEmpty() (*ir.Empty, error) {
	if _, err := p.expect(token.SKIP); err != nil {
		return nil, err
	}
	e := ir.NewEmpty()
	if info, err := p.optionalInfo(); err != nil {
		return nil, err
	} else {
		e.Info = info
	}
	return e, nil
}

// --- expressions -----------------------------------------------------------

func (p *Parser) parseExpr() (ir.Expr, error) {
	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseExprTail(primary)
}

func (p *Parser) parsePrimary() (ir.Expr, error) {
	t, err := p.peekTok()
	if err != nil {
		return nil, err
	}
	switch t.Kind {
	case token.UINT, token.SINT:
		return p.parseIntLiteral()
	case token.MUX:
		return p.parseMux()
	case token.VALIDIF:
		return p.parseCondValid()
	case token.PRIMOP:
		return p.parsePrimOp()
	case token.IDENT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ir.NewReference(p.tok.Value), nil
	}
	return nil, p.errorf("expected an expression, got %s", t.Kind)
}

// parseExprTail threads zero or more `.field`, `[INT]`, `[expr]` suffixes
// onto base left-to-right, avoiding left recursion (spec.md §4.2).
func (p *Parser) parseExprTail(base ir.Expr) (ir.Expr, error) {
	for {
		t, err := p.peekTok()
		if err != nil {
			return nil, err
		}
		switch t.Kind {
		case token.DOT:
			if err := p.advance(); err != nil {
				return nil, err
			}
			name, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			base = ir.NewSubField(base, name.Value)
		case token.LBRACK:
			if err := p.advance(); err != nil {
				return nil, err
			}
			isInt, err := p.at(token.INT)
			if err != nil {
				return nil, err
			}
			if isInt {
				if err := p.advance(); err != nil {
					return nil, err
				}
				n, err := strconv.Atoi(p.tok.Value)
				if err != nil {
					return nil, p.errorf("invalid index %q", p.tok.Value)
				}
				if _, err := p.expect(token.RBRACK); err != nil {
					return nil, err
				}
				base = ir.NewSubIndex(base, n)
			} else {
				idx, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.RBRACK); err != nil {
					return nil, err
				}
				base = ir.NewSubAccess(base, idx)
			}
		default:
			return base, nil
		}
	}
}

func (p *Parser) parseIntLiteral() (*ir.Constant, error) {
	typ, err := p.parseBaseType()
	if err != nil {
		return nil, err
	}
	ti, ok := typ.(*ir.TypeInt)
	if !ok {
		return nil, p.errorf("expected UInt/SInt before literal value")
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var c *ir.Constant
	switch p.tok.Kind {
	case token.INT:
		n, err := parseIntLiteralValue(p.tok.Value)
		if err != nil {
			return nil, p.errorf("invalid integer literal %q: %v", p.tok.Value, err)
		}
		c = ir.NewIntConstant(ti, n)
	case token.STRING:
		c = ir.NewStringConstant(ti, p.tok.Value)
	default:
		return nil, p.errorf("expected INT or STRING literal, got %s", p.tok.Kind)
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return c, nil
}

func parseIntLiteralValue(s string) (int64, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var v int64
	var err error
	switch {
	case strings.HasPrefix(s, "0x"):
		v, err = strconv.ParseInt(strings.ReplaceAll(s[2:], "_", ""), 16, 64)
	case strings.HasPrefix(s, "0o"):
		v, err = strconv.ParseInt(strings.ReplaceAll(s[2:], "_", ""), 8, 64)
	case strings.HasPrefix(s, "0b"):
		v, err = strconv.ParseInt(strings.ReplaceAll(s[2:], "_", ""), 2, 64)
	default:
		v, err = strconv.ParseInt(s, 10, 64)
	}
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

func (p *Parser) parseMux() (*ir.Mux, error) {
	if _, err := p.expect(token.MUX); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	sel, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	a, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	b, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return ir.NewMux(sel, a, b), nil
}

func (p *Parser) parseCondValid() (*ir.CondValid, error) {
	if _, err := p.expect(token.VALIDIF); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	sel, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	a, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return ir.NewCondValid(sel, a), nil
}

// parsePrimOp parses a primitive operation application. The primop token's
// Value already names the operation (set by the lexer only when an
// identifier is immediately followed by '('); the parser feeds operands
// and integer parameters until ')', per spec.md §4.2's feeder-loop
// description. The loop rejects an excess operand or parameter as soon as
// it is read, and a count short of the declared arity is rejected at ')'.
func (p *Parser) parsePrimOp() (*ir.PrimOp, error) {
	if _, err := p.expect(token.PRIMOP); err != nil {
		return nil, err
	}
	op, ok := ir.Operations[p.tok.Value]
	if !ok {
		return nil, p.errorf("unknown primitive operation %q", p.tok.Value)
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	wantOperands, wantParams := op.Arity()
	var operands []ir.Expr
	var params []int
	for {
		isClose, err := p.at(token.RPAREN)
		if err != nil {
			return nil, err
		}
		if isClose {
			break
		}
		isInt, err := p.at(token.INT)
		if err != nil {
			return nil, err
		}
		if isInt {
			if len(params) >= wantParams {
				return nil, p.errorf("%s: excess parameter (want %d)", op, wantParams)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(p.tok.Value)
			if err != nil {
				return nil, p.errorf("invalid primop parameter %q", p.tok.Value)
			}
			params = append(params, n)
			continue
		}
		if len(operands) >= wantOperands {
			return nil, p.errorf("%s: excess operand (want %d)", op, wantOperands)
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		operands = append(operands, e)
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if len(operands) != wantOperands || len(params) != wantParams {
		return nil, p.errorf("%s: expected %d operand(s) and %d parameter(s), got %d and %d",
			op, wantOperands, wantParams, len(operands), len(params))
	}
	return ir.NewPrimOp(op, operands, params)
}
