package ir

import "github.com/firrtlator/firrtlator/ferr"

// Circuit is the root of the IR tree: an ordered list of Modules, with the
// top module name equal to the circuit identifier.
type Circuit struct {
	Node // ID is the circuit (and top module) name
	Modules []*Module
}

func NewCircuit(id string) *Circuit {
	return &Circuit{Node: Node{ID: id}}
}

// AddModule appends a module to the circuit.
func (c *Circuit) AddModule(m *Module) { c.Modules = append(c.Modules, m) }

// Port is a module terminal: a named, directed, typed value.
type Port struct {
	Node
	Direction Direction
	Type      Type
}

// Direction is a Port's signal direction.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Input {
		return "input"
	}
	return "output"
}

func NewPort(id string, dir Direction, typ Type) *Port {
	return &Port{Node: Node{ID: id}, Direction: dir, Type: typ}
}

// Parameter is an extmodule's `parameter NAME = VALUE` declaration.
type Parameter struct {
	Node
	Value string
}

func NewParameter(id, value string) *Parameter {
	return &Parameter{Node: Node{ID: id}, Value: value}
}

// Module is either internal (has a Body statement group) or external (has
// an optional Defname and Parameters, never a Body). Exactly one of the two
// shapes applies at any time; AddStmt/AddParameter/SetDefname enforce the
// spec.md §3 invariant that statements and parameters are mutually
// exclusive by module kind.
type Module struct {
	Node
	External   bool
	Ports      []*Port
	Body       *StmtGroup  // internal modules only
	Defname    string      // external modules only
	Parameters []*Parameter // external modules only
}

func NewModule(id string) *Module {
	return &Module{Node: Node{ID: id}, Body: NewStmtGroup()}
}

func NewExtModule(id string) *Module {
	return &Module{Node: Node{ID: id}, External: true}
}

// AddPort appends a port, valid for either module kind.
func (m *Module) AddPort(p *Port) { m.Ports = append(m.Ports, p) }

// AddStmt appends a statement to an internal module's body. It is a
// ferr.SemanticError to call on an external module.
func (m *Module) AddStmt(s Stmt) error {
	if m.External {
		return ferr.SemanticError(noPos, "cannot add statement to extmodule %q", m.ID)
	}
	m.Body.Stmts = append(m.Body.Stmts, s)
	return nil
}

// SetDefname sets the extmodule's defname. It is a ferr.SemanticError to
// call on an internal module.
func (m *Module) SetDefname(defname string) error {
	if !m.External {
		return ferr.SemanticError(noPos, "cannot assign defname to internal module %q", m.ID)
	}
	m.Defname = defname
	return nil
}

// AddParameter appends a parameter to an extmodule. It is a
// ferr.SemanticError to call on an internal module.
func (m *Module) AddParameter(p *Parameter) error {
	if !m.External {
		return ferr.SemanticError(noPos, "cannot add parameter to internal module %q", m.ID)
	}
	m.Parameters = append(m.Parameters, p)
	return nil
}
