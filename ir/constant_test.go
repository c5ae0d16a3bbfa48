package ir_test

import (
	"math"
	"testing"

	"github.com/shaderlang/ilgen/ir"
)

func TestConstantPoolCanonicalizes(t *testing.T) {
	pool := ir.NewConstantPool()

	a := pool.Int(42)
	b := pool.Int(42)
	if a != b {
		t.Fatalf("Int(42) returned distinct operands: %p != %p", a, b)
	}

	if pool.Int(42) == pool.Int(43) {
		t.Fatalf("distinct int literals canonicalized to the same operand")
	}

	if pool.Int(1) == pool.UInt(1) {
		t.Fatalf("Int(1) and UInt(1) canonicalized to the same operand despite different kinds")
	}

	if pool.Bool(true) != pool.Bool(true) {
		t.Fatalf("Bool(true) did not canonicalize")
	}
	if pool.Bool(true) == pool.Bool(false) {
		t.Fatalf("Bool(true) and Bool(false) canonicalized to the same operand")
	}

	f1 := pool.Float(1.5)
	f2 := pool.Float(1.5)
	if f1 != f2 {
		t.Fatalf("Float(1.5) did not canonicalize")
	}

	if pool.Len() != 7 {
		t.Fatalf("Len() = %d, want 7 distinct entries (42, 43, 1, 1u, true, false, 1.5)", pool.Len())
	}
}

func TestConstantPoolFloatBitExact(t *testing.T) {
	pool := ir.NewConstantPool()
	// 0.1 and 0.1 must canonicalize; -0.0 and 0.0 differ bit-for-bit and
	// must not, matching the bit-pattern identity spec.md §4.2 specifies.
	if pool.Float(0.1) != pool.Float(0.1) {
		t.Fatalf("Float(0.1) did not canonicalize to itself")
	}
	if pool.Float(0.0) == pool.Float(math.Copysign(0, -1)) {
		t.Fatalf("Float(0.0) and Float(-0.0) canonicalized despite differing bit patterns")
	}
}
