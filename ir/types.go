// Package ir defines the intermediate representation emitted by the
// lowering core: a typed Program made of struct-type descriptors, a
// constant pool, global variables, and functions whose bodies are trees
// of typed instructions.
//
// The package is split the way the teacher splits its own IR builder
// (github.com/llir/llvm/ir, ir/types, ir/constant, ir/value) into a type
// system (this file), a constant pool (constant.go), an operand/
// instruction hierarchy (operand.go, instr.go), a code accumulator
// (writer.go), and top-level containers (program.go) — but the type and
// operand vocabulary is native to a GPU shading IR rather than LLVM's,
// see SPEC_FULL.md's DOMAIN STACK section for why.
package ir

import (
	"fmt"
	"strings"
)

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

// Type is implemented by every IR type descriptor.
type Type interface {
	fmt.Stringer
	irType()
	// Equal reports whether t and other describe the same type. Struct
	// types compare by pointer identity (nominal typing); every other
	// type compares structurally.
	Equal(other Type) bool
}

// BasicType is a scalar type.
type BasicType struct {
	Base BaseType
}

func NewBasicType(base BaseType) *BasicType { return &BasicType{Base: base} }

func (*BasicType) irType() {}
func (t *BasicType) String() string { return t.Base.String() }
func (t *BasicType) Equal(other Type) bool {
	o, ok := other.(*BasicType)
	return ok && o.Base == t.Base
}

// VectorType is a fixed-size vector of a scalar element type.
type VectorType struct {
	Elem  BaseType
	Count int
}

func NewVectorType(elem BaseType, count int) *VectorType {
	return &VectorType{Elem: elem, Count: count}
}

func (*VectorType) irType() {}
func (t *VectorType) String() string { return fmt.Sprintf("%s%d", t.Elem, t.Count) }
func (t *VectorType) Equal(other Type) bool {
	o, ok := other.(*VectorType)
	return ok && o.Elem == t.Elem && o.Count == t.Count
}

// MatrixType is a fixed-size matrix of a scalar element type.
type MatrixType struct {
	Elem BaseType
	Rows int
	Cols int
}

func NewMatrixType(elem BaseType, rows, cols int) *MatrixType {
	return &MatrixType{Elem: elem, Rows: rows, Cols: cols}
}

func (*MatrixType) irType() {}
func (t *MatrixType) String() string { return fmt.Sprintf("%s%dx%d", t.Elem, t.Rows, t.Cols) }
func (t *MatrixType) Equal(other Type) bool {
	o, ok := other.(*MatrixType)
	return ok && o.Elem == t.Elem && o.Rows == t.Rows && o.Cols == t.Cols
}

// TextureShape is the closed set of texture dimensionalities.
type TextureShape int

const (
	Tex1D TextureShape = iota
	Tex2D
	Tex3D
	TexCube
)

func (s TextureShape) String() string {
	switch s {
	case Tex1D:
		return "1D"
	case Tex2D:
		return "2D"
	case Tex3D:
		return "3D"
	case TexCube:
		return "Cube"
	default:
		return "<unknown texture shape>"
	}
}

// TextureType describes a bindable texture resource.
type TextureType struct {
	Elem        Type
	Shape       TextureShape
	Multisample bool
	Array       bool
	Shadow      bool
}

func (*TextureType) irType() {}
func (t *TextureType) String() string {
	var b strings.Builder
	b.WriteString("Texture")
	b.WriteString(t.Shape.String())
	if t.Multisample {
		b.WriteString("MS")
	}
	if t.Array {
		b.WriteString("Array")
	}
	if t.Shadow {
		b.WriteString("Shadow")
	}
	b.WriteByte('<')
	b.WriteString(t.Elem.String())
	b.WriteByte('>')
	return b.String()
}
func (t *TextureType) Equal(other Type) bool {
	o, ok := other.(*TextureType)
	return ok && o.Shape == t.Shape && o.Multisample == t.Multisample &&
		o.Array == t.Array && o.Shadow == t.Shadow && o.Elem.Equal(t.Elem)
}

// SamplerType describes a bindable sampler resource.
type SamplerType struct {
	Comparison bool
}

func (*SamplerType) irType() {}
func (t *SamplerType) String() string {
	if t.Comparison {
		return "SamplerComparisonState"
	}
	return "SamplerState"
}
func (t *SamplerType) Equal(other Type) bool {
	o, ok := other.(*SamplerType)
	return ok && o.Comparison == t.Comparison
}

// PointerLikeKind is the closed set of pointer-like pipeline bindings.
type PointerLikeKind int

const (
	ConstantBuffer PointerLikeKind = iota
)

func (k PointerLikeKind) String() string {
	switch k {
	case ConstantBuffer:
		return "ConstantBuffer"
	default:
		return "<unknown pointer-like kind>"
	}
}

// PointerLikeType describes a pointer-like binding, e.g. a constant
// buffer wrapping an element type.
type PointerLikeType struct {
	Kind PointerLikeKind
	Elem Type
}

func (*PointerLikeType) irType() {}
func (t *PointerLikeType) String() string { return fmt.Sprintf("%s<%s>", t.Kind, t.Elem) }
func (t *PointerLikeType) Equal(other Type) bool {
	o, ok := other.(*PointerLikeType)
	return ok && o.Kind == t.Kind && o.Elem.Equal(t.Elem)
}

// ArrayType describes a fixed- or unsized-length array. Length zero
// denotes an unsized array.
type ArrayType struct {
	Elem   Type
	Length int
}

func (*ArrayType) irType() {}
func (t *ArrayType) String() string {
	if t.Length == 0 {
		return fmt.Sprintf("%s[]", t.Elem)
	}
	return fmt.Sprintf("%s[%d]", t.Elem, t.Length)
}
func (t *ArrayType) Equal(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && o.Length == t.Length && o.Elem.Equal(t.Elem)
}

// StructField is a single named, ordered member of a StructType.
type StructField struct {
	Name string
	Type Type
}

// StructType is a nominal aggregate type. StructType values are cached
// and compared by pointer identity (the struct-type cache in lower.Generator
// guarantees at most one *StructType per declaration identity), matching
// spec.md §3's "identity of struct types is nominal, not structural".
type StructType struct {
	Name   string
	Fields []StructField
}

func (*StructType) irType() {}
func (t *StructType) String() string { return t.Name }
func (t *StructType) Equal(other Type) bool {
	o, ok := other.(*StructType)
	return ok && o == t
}

// FieldIndex returns the index of the named field, or -1 if st has no
// such field.
func (t *StructType) FieldIndex(name string) int {
	for i, f := range t.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// BindableResourceType classifies t for the purposes of bindable-resource
// synthesis (spec.md §4.7). It returns ok=false for non-bindable types.
func BindableResourceType(t Type) (kind string, ok bool) {
	switch t.(type) {
	case *TextureType:
		return "texture", true
	case *SamplerType:
		return "sampler", true
	case *PointerLikeType:
		return "constant-buffer", true
	default:
		return "", false
	}
}
