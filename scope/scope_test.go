package scope_test

import (
	"testing"

	"github.com/shaderlang/ilgen/ir"
	"github.com/shaderlang/ilgen/scope"
)

func op(name string) ir.Operand {
	return &ir.GlobalVar{ValueBase: ir.ValueBase{Typ: ir.NewBasicType(ir.Int)}, Name: name}
}

func TestLookupShadowing(t *testing.T) {
	tbl := scope.New()
	outer := op("outer")
	tbl.Add("x", outer)

	tbl.Push()
	inner := op("inner")
	tbl.Add("x", inner)

	got, ok := tbl.Lookup("x")
	if !ok || got != inner {
		t.Fatalf("Lookup(%q) = %v, %v, want the innermost binding", "x", got, ok)
	}

	tbl.Pop()
	got, ok = tbl.Lookup("x")
	if !ok || got != outer {
		t.Fatalf("Lookup(%q) after Pop = %v, %v, want the outer binding restored", "x", got, ok)
	}
}

func TestLookupMiss(t *testing.T) {
	tbl := scope.New()
	if _, ok := tbl.Lookup("nope"); ok {
		t.Fatalf("Lookup of an unbound name reported ok=true")
	}
}

func TestDepthTracksPushPop(t *testing.T) {
	tbl := scope.New()
	if tbl.Depth() != 1 {
		t.Fatalf("Depth() after New() = %d, want 1", tbl.Depth())
	}
	tbl.Push()
	tbl.Push()
	if tbl.Depth() != 3 {
		t.Fatalf("Depth() after two Push = %d, want 3", tbl.Depth())
	}
	tbl.Pop()
	if tbl.Depth() != 2 {
		t.Fatalf("Depth() after Pop = %d, want 2", tbl.Depth())
	}
}

func TestPopWithNoOpenScopePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Pop with no open scope did not panic")
		}
	}()
	tbl := &scope.Table{}
	tbl.Pop()
}
