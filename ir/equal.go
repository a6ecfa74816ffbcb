package ir

// Equal reports whether two circuits are structurally identical modulo
// Info placement, the comparison spec.md §8's round-trip property and pass
// idempotence property call for ("info strings compared as sets per owning
// node, whitespace ignored" — whitespace is not representable once parsed,
// so only Info is excluded here).
func Equal(a, b *Circuit) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ID != b.ID || len(a.Modules) != len(b.Modules) {
		return false
	}
	for i := range a.Modules {
		if !moduleEqual(a.Modules[i], b.Modules[i]) {
			return false
		}
	}
	return true
}

func moduleEqual(a, b *Module) bool {
	if a.ID != b.ID || a.External != b.External || a.Defname != b.Defname {
		return false
	}
	if len(a.Ports) != len(b.Ports) || len(a.Parameters) != len(b.Parameters) {
		return false
	}
	for i := range a.Ports {
		if !portEqual(a.Ports[i], b.Ports[i]) {
			return false
		}
	}
	for i := range a.Parameters {
		if a.Parameters[i].ID != b.Parameters[i].ID || a.Parameters[i].Value != b.Parameters[i].Value {
			return false
		}
	}
	if a.External {
		return true
	}
	return stmtGroupEqual(a.Body, b.Body)
}

func portEqual(a, b *Port) bool {
	return a.ID == b.ID && a.Direction == b.Direction && typeEqual(a.Type, b.Type)
}

func typeEqual(a, b Type) bool {
	switch at := a.(type) {
	case *TypeInt:
		bt, ok := b.(*TypeInt)
		return ok && at.Signed == bt.Signed && at.Width == bt.Width
	case *TypeClock:
		_, ok := b.(*TypeClock)
		return ok
	case *TypeBundle:
		bt, ok := b.(*TypeBundle)
		if !ok || len(at.Fields) != len(bt.Fields) {
			return false
		}
		for i := range at.Fields {
			fa, fb := at.Fields[i], bt.Fields[i]
			if fa.ID != fb.ID || fa.Flip != fb.Flip || !typeEqual(fa.Type, fb.Type) {
				return false
			}
		}
		return true
	case *TypeVector:
		bt, ok := b.(*TypeVector)
		return ok && at.Size == bt.Size && typeEqual(at.Elem, bt.Elem)
	default:
		return a == nil && b == nil
	}
}

func stmtGroupEqual(a, b *StmtGroup) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Stmts) != len(b.Stmts) {
		return false
	}
	for i := range a.Stmts {
		if !stmtEqual(a.Stmts[i], b.Stmts[i]) {
			return false
		}
	}
	return true
}

func stmtEqual(a, b Stmt) bool {
	switch at := a.(type) {
	case *Wire:
		bt, ok := b.(*Wire)
		return ok && at.ID == bt.ID && typeEqual(at.Type, bt.Type)
	case *Reg:
		bt, ok := b.(*Reg)
		if !ok || at.ID != bt.ID || !typeEqual(at.Type, bt.Type) || !exprEqual(at.Clock, bt.Clock) {
			return false
		}
		if at.HasReset() != bt.HasReset() {
			return false
		}
		if at.HasReset() {
			return exprEqual(at.ResetTrigger, bt.ResetTrigger) && exprEqual(at.ResetValue, bt.ResetValue)
		}
		return true
	case *Memory:
		bt, ok := b.(*Memory)
		return ok && memoryEqual(at, bt)
	case *Instance:
		bt, ok := b.(*Instance)
		return ok && at.ID == bt.ID && at.Of == bt.Of
	case *NodeStmt:
		bt, ok := b.(*NodeStmt)
		return ok && at.ID == bt.ID && exprEqual(at.Value, bt.Value)
	case *Connect:
		bt, ok := b.(*Connect)
		return ok && at.Partial == bt.Partial && exprEqual(at.To, bt.To) && exprEqual(at.From, bt.From)
	case *Invalid:
		bt, ok := b.(*Invalid)
		return ok && exprEqual(at.Target, bt.Target)
	case *Conditional:
		bt, ok := b.(*Conditional)
		if !ok || !exprEqual(at.Cond, bt.Cond) || !stmtGroupEqual(at.Then, bt.Then) {
			return false
		}
		return elseEqual(at.Else, bt.Else)
	case *Stop:
		bt, ok := b.(*Stop)
		return ok && at.Code == bt.Code && exprEqual(at.Clock, bt.Clock) && exprEqual(at.Cond, bt.Cond)
	case *Printf:
		bt, ok := b.(*Printf)
		return ok && at.Format == bt.Format && exprEqual(at.Clock, bt.Clock) && exprEqual(at.Cond, bt.Cond)
	case *Empty:
		_, ok := b.(*Empty)
		return ok
	case *StmtGroup:
		bt, ok := b.(*StmtGroup)
		return ok && stmtGroupEqual(at, bt)
	default:
		return false
	}
}

func elseEqual(a, b ElseBranch) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch at := a.(type) {
	case *Conditional:
		bt, ok := b.(*Conditional)
		return ok && stmtEqual(at, bt)
	case *StmtGroup:
		bt, ok := b.(*StmtGroup)
		return ok && stmtGroupEqual(at, bt)
	default:
		return false
	}
}

func memoryEqual(a, b *Memory) bool {
	if a.ID != b.ID || a.Depth != b.Depth || a.ReadLatency != b.ReadLatency ||
		a.WriteLatency != b.WriteLatency || a.RUW != b.RUW {
		return false
	}
	if !typeEqual(a.DType, b.DType) {
		return false
	}
	return stringsEqual(a.Readers, b.Readers) &&
		stringsEqual(a.Writers, b.Writers) &&
		stringsEqual(a.ReadWriters, b.ReadWriters)
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func exprEqual(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch at := a.(type) {
	case *Reference:
		bt, ok := b.(*Reference)
		return ok && at.ID == bt.ID
	case *Constant:
		bt, ok := b.(*Constant)
		if !ok || at.Form != bt.Form || !typeEqual(at.Type, bt.Type) {
			return false
		}
		if at.Form == IntLiteral {
			return at.Int == bt.Int
		}
		return at.Str == bt.Str
	case *SubField:
		bt, ok := b.(*SubField)
		return ok && at.Field == bt.Field && exprEqual(at.Of, bt.Of)
	case *SubIndex:
		bt, ok := b.(*SubIndex)
		return ok && at.Index == bt.Index && exprEqual(at.Of, bt.Of)
	case *SubAccess:
		bt, ok := b.(*SubAccess)
		return ok && exprEqual(at.Of, bt.Of) && exprEqual(at.Idx, bt.Idx)
	case *Mux:
		bt, ok := b.(*Mux)
		return ok && exprEqual(at.Sel, bt.Sel) && exprEqual(at.A, bt.A) && exprEqual(at.B, bt.B)
	case *CondValid:
		bt, ok := b.(*CondValid)
		return ok && exprEqual(at.Sel, bt.Sel) && exprEqual(at.A, bt.A)
	case *PrimOp:
		bt, ok := b.(*PrimOp)
		if !ok || at.Op != bt.Op || len(at.Operands) != len(bt.Operands) || len(at.Params) != len(bt.Params) {
			return false
		}
		for i := range at.Operands {
			if !exprEqual(at.Operands[i], bt.Operands[i]) {
				return false
			}
		}
		for i := range at.Params {
			if at.Params[i] != bt.Params[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
