// Package token defines the lexical token kinds and source positions shared
// by the lexer and parser.
package token

import "fmt"

// Kind identifies the class of a token produced by the lexer.
type Kind int

const (
	EOF Kind = iota
	INDENT
	DEDENT

	IDENT
	INT
	STRING
	INFO // @[...] provenance string; Value holds the interior text

	// Punctuation.
	COLON     // :
	LT        // <
	GT        // >
	LPAREN    // (
	RPAREN    // )
	EQUALS    // =
	LBRACE    // {
	RBRACE    // }
	DOT       // .
	LBRACK    // [
	RBRACK    // ]
	CONNECT   // <=
	PCONNECT  // <-
	ARROW     // =>

	// Keywords.
	CIRCUIT
	MODULE
	EXTMODULE
	INPUT
	OUTPUT
	DEFNAME
	PARAMETER
	UINT
	SINT
	CLOCK
	WIRE
	REG
	MEM
	INST
	OF
	NODE
	FLIP
	WITH
	IS
	INVALID
	WHEN
	ELSE
	STOP
	PRINTF
	SKIP
	DATATYPE
	DEPTH
	READLATENCY
	WRITELATENCY
	READUNDERWRITE
	READER
	WRITER
	READWRITER
	OLD
	NEW
	UNDEFINED
	MUX
	VALIDIF

	// Primitive operation keyword (name resolved via the ir.Operation table).
	PRIMOP
)

var names = map[Kind]string{
	EOF: "EOF", INDENT: "INDENT", DEDENT: "DEDENT",
	IDENT: "IDENT", INT: "INT", STRING: "STRING", INFO: "INFO",
	COLON: ":", LT: "<", GT: ">", LPAREN: "(", RPAREN: ")", EQUALS: "=",
	LBRACE: "{", RBRACE: "}", DOT: ".", LBRACK: "[", RBRACK: "]",
	CONNECT: "<=", PCONNECT: "<-", ARROW: "=>",
	CIRCUIT: "circuit", MODULE: "module", EXTMODULE: "extmodule",
	INPUT: "input", OUTPUT: "output", DEFNAME: "defname", PARAMETER: "parameter",
	UINT: "UInt", SINT: "SInt", CLOCK: "Clock", WIRE: "wire", REG: "reg",
	MEM: "mem", INST: "inst", OF: "of", NODE: "node", FLIP: "flip",
	WITH: "with", IS: "is", INVALID: "invalid", WHEN: "when", ELSE: "else",
	STOP: "stop", PRINTF: "printf", SKIP: "skip", DATATYPE: "datatype",
	DEPTH: "depth", READLATENCY: "read-latency", WRITELATENCY: "write-latency",
	READUNDERWRITE: "read-under-write", READER: "reader", WRITER: "writer",
	READWRITER: "readwriter", OLD: "old", NEW: "new", UNDEFINED: "undefined",
	MUX: "mux", VALIDIF: "validif", PRIMOP: "PRIMOP",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps every reserved word except primitive-operation names to its
// Kind. Primitive-operation names are looked up separately against the
// ir.Operation table so the 31-entry list lives in exactly one place.
var Keywords = map[string]Kind{
	"circuit": CIRCUIT, "module": MODULE, "extmodule": EXTMODULE,
	"input": INPUT, "output": OUTPUT, "defname": DEFNAME, "parameter": PARAMETER,
	"UInt": UINT, "SInt": SINT, "Clock": CLOCK, "wire": WIRE, "reg": REG,
	"mem": MEM, "inst": INST, "of": OF, "node": NODE, "flip": FLIP,
	"with": WITH, "is": IS, "invalid": INVALID, "when": WHEN, "else": ELSE,
	"stop": STOP, "printf": PRINTF, "skip": SKIP, "datatype": DATATYPE,
	"depth": DEPTH, "read-latency": READLATENCY, "write-latency": WRITELATENCY,
	"read-under-write": READUNDERWRITE, "reader": READER, "writer": WRITER,
	"readwriter": READWRITER, "old": OLD, "new": NEW, "undefined": UNDEFINED,
	"mux": MUX, "validif": VALIDIF,
}

// Position locates a token in the original source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, in runes
	Offset int // 0-based byte offset
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether p was ever set by the lexer.
func (p Position) IsValid() bool { return p.Line > 0 }

// Token is one lexical unit together with its source position.
type Token struct {
	Kind  Kind
	Value string // literal text: identifier, digits, string contents, info payload
	Pos   Position
}

func (t Token) String() string {
	if t.Value != "" {
		return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Pos)
	}
	return fmt.Sprintf("%s@%s", t.Kind, t.Pos)
}
