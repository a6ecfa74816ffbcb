// Package ir defines the FIRRTL in-memory intermediate representation: a
// heterogeneous, directed acyclic tree of circuits, modules, ports,
// statements, and expressions, together with the type lattice and the
// Visitor traversal protocol (see visitor.go).
//
// Every concrete node embeds Node, which carries the two fields common to
// all FIRRTL entities: an optional Info provenance string and a possibly
// empty declaration identifier. This mirrors the original implementation's
// IRNode base (mInfo, mId) and the teacher's single shared node struct
// (breadchris-yaegi/interp/interp.go) that carries cross-cutting fields
// once instead of through a deep class hierarchy (spec.md §9).
package ir

import "github.com/firrtlator/firrtlator/token"

// noPos is used by IR-level invariant checks (AddStmt, PrimOp construction,
// ...) that have no parser-supplied source location of their own; the
// parser wraps these with position info when it calls them during parsing.
var noPos = token.Position{}

// Node is embedded by every IR entity. It is not itself addressable through
// the Type/Stmt/Expr sums; it only supplies shared storage.
type Node struct {
	Info string // source provenance, e.g. the payload of an @[...] token
	ID   string // declaration identifier; empty when the node is not a declaration
}

// IsDeclaration reports whether the node introduces a named entity.
func (n Node) IsDeclaration() bool { return n.ID != "" }

// Type is the sum of TypeInt, TypeClock, TypeBundle, TypeVector.
type Type interface {
	isType()
	Accept(v Visitor)
}

// Stmt is the sum of Wire, Reg, Memory, Instance, NodeStmt, Connect,
// Invalid, Conditional, Stop, Printf, Empty, StmtGroup.
type Stmt interface {
	isStmt()
	Accept(v Visitor)
}

// Expr is the sum of Reference, Constant, SubField, SubIndex, SubAccess,
// Mux, CondValid, PrimOp.
type Expr interface {
	isExpr()
	Accept(v Visitor)
}
