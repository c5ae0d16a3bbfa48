package ir_test

import (
	"testing"

	"github.com/shaderlang/ilgen/ir"
)

func TestStructTypeIdentity(t *testing.T) {
	a := &ir.StructType{Name: "Light", Fields: []ir.StructField{{Name: "color", Type: ir.NewVectorType(ir.Float, 3)}}}
	b := &ir.StructType{Name: "Light", Fields: []ir.StructField{{Name: "color", Type: ir.NewVectorType(ir.Float, 3)}}}

	if !a.Equal(a) {
		t.Fatalf("a struct type does not equal itself")
	}
	if a.Equal(b) {
		t.Fatalf("structurally identical but distinct *StructType values compared Equal — struct identity must be nominal (pointer), not structural")
	}
}

func TestStructFieldIndex(t *testing.T) {
	st := &ir.StructType{Fields: []ir.StructField{{Name: "x"}, {Name: "y"}, {Name: "z"}}}
	if got := st.FieldIndex("y"); got != 1 {
		t.Fatalf("FieldIndex(%q) = %d, want 1", "y", got)
	}
	if got := st.FieldIndex("missing"); got != -1 {
		t.Fatalf("FieldIndex(%q) = %d, want -1", "missing", got)
	}
}

func TestBindableResourceType(t *testing.T) {
	cases := []struct {
		name string
		typ  ir.Type
		want bool
	}{
		{"texture", &ir.TextureType{Elem: ir.NewBasicType(ir.Float), Shape: ir.Tex2D}, true},
		{"sampler", &ir.SamplerType{}, true},
		{"constant buffer", &ir.PointerLikeType{Kind: ir.ConstantBuffer, Elem: ir.NewBasicType(ir.Float)}, true},
		{"plain scalar", ir.NewBasicType(ir.Int), false},
		{"vector", ir.NewVectorType(ir.Float, 4), false},
	}
	for _, c := range cases {
		if _, ok := ir.BindableResourceType(c.typ); ok != c.want {
			t.Errorf("BindableResourceType(%s) ok = %v, want %v", c.name, ok, c.want)
		}
	}
}

func TestVectorAndMatrixEqual(t *testing.T) {
	if !ir.NewVectorType(ir.Float, 3).Equal(ir.NewVectorType(ir.Float, 3)) {
		t.Fatalf("structurally identical vector types did not compare Equal")
	}
	if ir.NewVectorType(ir.Float, 3).Equal(ir.NewVectorType(ir.Float, 4)) {
		t.Fatalf("vector types of different counts compared Equal")
	}
	if !ir.NewMatrixType(ir.Float, 4, 4).Equal(ir.NewMatrixType(ir.Float, 4, 4)) {
		t.Fatalf("structurally identical matrix types did not compare Equal")
	}
}
