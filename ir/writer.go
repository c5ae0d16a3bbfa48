package ir

// CodeWriter builds instruction sequences as a stack of code nodes: the
// top of the stack is the "current" node that Insert and the operand
// factories below append to. PushNode/PopNode let callers carve out
// nested code regions (an if branch, a loop condition, a loop body)
// without the writer needing to know anything about control-flow
// semantics — it is a pure code accumulator, per spec.md §4.4.
type CodeWriter struct {
	stack []*CodeNode
	// newGlobal creates a module-scope global of the given type when
	// AllocVar is called with no current node open — the redirect spec.md
	// §4.4 and §4.6 describe for top-level variable declarations.
	newGlobal func(Type) Operand
}

// NewCodeWriter returns a writer that delegates global creation (for
// AllocVar calls with no open code node) to newGlobal.
func NewCodeWriter(newGlobal func(Type) Operand) *CodeWriter {
	return &CodeWriter{newGlobal: newGlobal}
}

// PushNode opens a new, empty code node and makes it current.
func (w *CodeWriter) PushNode() *CodeNode {
	n := NewCodeNode()
	w.stack = append(w.stack, n)
	return n
}

// PopNode closes and returns the current code node.
func (w *CodeWriter) PopNode() *CodeNode {
	n := w.Current()
	w.stack = w.stack[:len(w.stack)-1]
	return n
}

// Current returns the open code node instructions are appended to, or nil
// if no node is open (i.e. lowering is at program top level).
func (w *CodeWriter) Current() *CodeNode {
	if len(w.stack) == 0 {
		return nil
	}
	return w.stack[len(w.stack)-1]
}

// Insert appends instr to the current code node and returns it. It is a
// programming error to call Insert with no code node open.
func (w *CodeWriter) Insert(instr Operand) Operand {
	cur := w.Current()
	if cur == nil {
		panic("ir: Insert called with no open code node")
	}
	cur.Instrs = append(cur.Instrs, instr)
	return instr
}

// AllocVar allocates storage for a variable of type t. With a code node
// open this appends an AllocVar instruction to it; with none open (top
// level declarations lowered outside any function body) it instead
// creates a module-scope global via newGlobal, per spec.md §4.4.
func (w *CodeWriter) AllocVar(t Type) Operand {
	if w.Current() == nil {
		return w.newGlobal(t)
	}
	v := &AllocVar{ValueBase: ValueBase{Typ: t}}
	w.Insert(v)
	return v
}

// FetchArg returns the operand for the argument at the given index and
// direction. Unlike AllocVar it is not inserted as an instruction in the
// code sequence — it denotes a binding established once at function
// entry, not a statement that executes in order.
func (w *CodeWriter) FetchArg(t Type, index int, dir Direction) *FetchArg {
	return &FetchArg{ValueBase: ValueBase{Typ: t}, Index: index, Direction: dir}
}

// Assign emits a store of value into dest.
func (w *CodeWriter) Assign(dest, value Operand) Operand {
	return w.Insert(&StoreInstr{ValueBase: ValueBase{Typ: NewBasicType(Void)}, Dest: dest, Value: value})
}

// MemberAccess emits an instruction reading the member of base selected
// by index.
func (w *CodeWriter) MemberAccess(base, index Operand, resultType Type) *MemberAccessInstr {
	instr := &MemberAccessInstr{ValueBase: ValueBase{Typ: resultType}, Base: base, Index: index}
	w.Insert(instr)
	return instr
}

// Select emits a ternary selection among a and b based on cond.
func (w *CodeWriter) Select(cond, a, b Operand) Operand {
	return w.Insert(&SelectInstr{ValueBase: ValueBase{Typ: a.Type()}, Cond: cond, Then: a, Else: b})
}

// Discard emits a fragment-discard instruction.
func (w *CodeWriter) Discard() Operand {
	return w.Insert(&DiscardInstr{ValueBase: ValueBase{Typ: NewBasicType(Void)}})
}
