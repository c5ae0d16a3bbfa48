package ast

// BaseType is the closed set of scalar element kinds.
type BaseType int

const (
	Void BaseType = iota
	Bool
	Int
	UInt
	Float
)

func (b BaseType) String() string {
	switch b {
	case Void:
		return "void"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Float:
		return "float"
	default:
		return "<unknown base type>"
	}
}

// Type is implemented by every type descriptor that can appear on a
// declaration, expression, or field in the input tree.
type Type interface {
	typeNode()
}

// BasicType is a scalar type.
type BasicType struct {
	Base BaseType
}

func (*BasicType) typeNode() {}

// VectorType is a fixed-size vector of a scalar element type. Count is
// represented directly as a resolved constant int (the semantic analyzer
// has already evaluated any size expression down to a constant by the
// time the tree reaches the lowering core; a Count whose Const is nil
// still models a non-constant size, which the lower package's
// constIntSize rejects with an Assertion error).
type VectorType struct {
	Elem  BaseType
	Count ConstIntSize
}

func (*VectorType) typeNode() {}

// MatrixType is a fixed-size matrix of a scalar element type.
type MatrixType struct {
	Elem BaseType
	Rows Count
	Cols Count
}

func (*MatrixType) typeNode() {}

// TextureShape is the closed set of texture dimensionalities.
type TextureShape int

const (
	Tex1D TextureShape = iota
	Tex2D
	Tex3D
	TexCube
)

// TextureType describes a bindable texture resource.
type TextureType struct {
	Elem        Type
	Shape       TextureShape
	Multisample bool
	Array       bool
	Shadow      bool
}

func (*TextureType) typeNode() {}

// SamplerType describes a bindable sampler resource.
type SamplerType struct {
	Comparison bool
}

func (*SamplerType) typeNode() {}

// PointerLikeKind is the closed set of pointer-like pipeline bindings.
type PointerLikeKind int

const (
	ConstantBuffer PointerLikeKind = iota
)

// PointerLikeType describes a pointer-like binding such as a constant
// buffer wrapping an element type.
type PointerLikeType struct {
	Kind PointerLikeKind
	Elem Type
}

func (*PointerLikeType) typeNode() {}

// ArrayType describes a fixed- or unsized-length array. Length zero
// denotes an unsized array.
type ArrayType struct {
	Elem   Type
	Length Count // nil means unsized
}

func (*ArrayType) typeNode() {}

// NamedType refers to a previously declared struct or class by identity.
// Subst carries an optional generic substitution map; the lowering core
// treats it only as part of cache identity (spec.md §3's struct-type
// cache invariant), it performs no substitution itself.
type NamedType struct {
	Decl  AggDecl
	Subst map[string]Type
}

func (*NamedType) typeNode() {}

// Count is a compile-time array/vector/matrix dimension. A Count is
// "constant" when Const is non-nil. The lower package's constIntSize
// fails with a kind-Assertion error if asked to evaluate a non-constant
// vector or matrix Count, matching the source's GetIntVal contract; an
// array Length whose Const is nil is lowered as unsized instead.
type Count struct {
	Const *int
}

// ConstIntSize is an alias used where the grammar specifically always
// requires a constant (vector/matrix element counts): it documents the
// invariant at the call site while still routing through the lower
// package's constIntSize.
type ConstIntSize = Count

// NewConstCount returns a Count known at lowering time to be constant n.
func NewConstCount(n int) Count {
	return Count{Const: &n}
}
