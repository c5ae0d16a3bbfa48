package ir_test

import (
	"testing"

	"github.com/shaderlang/ilgen/ir"
)

func TestCodeWriterAllocVarRedirectsToGlobalAtTopLevel(t *testing.T) {
	var created []ir.Type
	newGlobal := func(t ir.Type) ir.Operand {
		created = append(created, t)
		return &ir.GlobalVar{ValueBase: ir.ValueBase{Typ: t}, Name: "g0"}
	}
	w := ir.NewCodeWriter(newGlobal)

	op := w.AllocVar(ir.NewBasicType(ir.Int))
	if _, ok := op.(*ir.GlobalVar); !ok {
		t.Fatalf("AllocVar with no open code node returned %T, want *ir.GlobalVar", op)
	}
	if len(created) != 1 {
		t.Fatalf("newGlobal called %d times, want 1", len(created))
	}
}

func TestCodeWriterAllocVarInsertsLocalWhenNodeOpen(t *testing.T) {
	w := ir.NewCodeWriter(nil)
	node := w.PushNode()

	op := w.AllocVar(ir.NewBasicType(ir.Int))
	if _, ok := op.(*ir.AllocVar); !ok {
		t.Fatalf("AllocVar with an open code node returned %T, want *ir.AllocVar", op)
	}
	if len(node.Instrs) != 1 || node.Instrs[0] != op {
		t.Fatalf("AllocVar did not append to the current code node")
	}
}

func TestCodeWriterFetchArgNotInserted(t *testing.T) {
	w := ir.NewCodeWriter(nil)
	node := w.PushNode()
	w.FetchArg(ir.NewBasicType(ir.Int), 1, ir.In)
	if len(node.Instrs) != 0 {
		t.Fatalf("FetchArg inserted into the code sequence; it should only bind, not execute")
	}
}

func TestCodeWriterInsertPanicsWithNoOpenNode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Insert with no open code node did not panic")
		}
	}()
	w := ir.NewCodeWriter(nil)
	w.Insert(&ir.DiscardInstr{})
}

func TestCodeWriterPushPopBalance(t *testing.T) {
	w := ir.NewCodeWriter(nil)
	if w.Current() != nil {
		t.Fatalf("Current() is non-nil before any PushNode")
	}
	outer := w.PushNode()
	inner := w.PushNode()
	if w.Current() != inner {
		t.Fatalf("Current() did not return the most recently pushed node")
	}
	if got := w.PopNode(); got != inner {
		t.Fatalf("PopNode() returned %v, want the inner node", got)
	}
	if w.Current() != outer {
		t.Fatalf("Current() did not revert to the outer node after PopNode")
	}
	w.PopNode()
	if w.Current() != nil {
		t.Fatalf("Current() is non-nil after popping every pushed node")
	}
}
