// Package scope implements the scoped symbol table the lowering core
// uses to resolve local variable, parameter, and global names: a stack of
// name-to-operand bindings where lookups fall back through enclosing
// scopes and insertions always land in the innermost one.
package scope

import "github.com/shaderlang/ilgen/ir"

// Table is a stack of lexical scopes mapping a textual name to the IR
// operand it denotes.
type Table struct {
	frames []map[string]ir.Operand
}

// New returns a table with a single, outermost scope already pushed (the
// program-level scope that global variables live in).
func New() *Table {
	t := &Table{}
	t.Push()
	return t
}

// Push opens a new, empty lexical scope.
func (t *Table) Push() {
	t.frames = append(t.frames, make(map[string]ir.Operand))
}

// Pop closes the innermost lexical scope. Every Push must be matched by
// exactly one Pop on every exit path of the statement that opened it
// (spec.md §5) — callers are responsible for this pairing; Table itself
// does not defend against an unbalanced Pop beyond panicking on one.
func (t *Table) Pop() {
	if len(t.frames) == 0 {
		panic("scope: Pop with no open scope")
	}
	t.frames = t.frames[:len(t.frames)-1]
}

// Add binds name to op in the innermost scope. It is legal for name to
// already be bound in an enclosing scope — that binding is shadowed, not
// overwritten.
func (t *Table) Add(name string, op ir.Operand) {
	t.frames[len(t.frames)-1][name] = op
}

// Lookup walks from the innermost to the outermost scope and returns the
// first binding found for name. ok is false on a miss — resolution
// failure is signalled to the caller, not thrown (spec.md §4.3).
func (t *Table) Lookup(name string) (op ir.Operand, ok bool) {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if op, ok := t.frames[i][name]; ok {
			return op, true
		}
	}
	return nil, false
}

// Depth reports the number of currently open scopes, for tests asserting
// push/pop balance (spec.md §8 invariant 1).
func (t *Table) Depth() int { return len(t.frames) }
