package lower

import (
	"strings"

	"github.com/shaderlang/ilgen/ast"
	"github.com/shaderlang/ilgen/ir"
)

// TranslateType lowers an ast.Type to its ir.Type (component C1, spec.md
// §4.1). Struct and class declarations translate to the same cached
// *ir.StructType on every call for the same declaration identity, so
// that two fields or parameters referring to the same aggregate compare
// Equal by pointer.
func (gen *Generator) TranslateType(t ast.Type) ir.Type {
	switch t := t.(type) {
	case *ast.BasicType:
		return ir.NewBasicType(irBaseType(t.Base))
	case *ast.VectorType:
		return ir.NewVectorType(irBaseType(t.Elem), gen.constIntSize(t.Count))
	case *ast.MatrixType:
		return ir.NewMatrixType(irBaseType(t.Elem), gen.constIntSize(t.Rows), gen.constIntSize(t.Cols))
	case *ast.TextureType:
		return &ir.TextureType{
			Elem:        gen.TranslateType(t.Elem),
			Shape:       ir.TextureShape(t.Shape),
			Multisample: t.Multisample,
			Array:       t.Array,
			Shadow:      t.Shadow,
		}
	case *ast.SamplerType:
		return &ir.SamplerType{Comparison: t.Comparison}
	case *ast.PointerLikeType:
		return &ir.PointerLikeType{
			Kind: ir.PointerLikeKind(t.Kind),
			Elem: gen.TranslateType(t.Elem),
		}
	case *ast.ArrayType:
		length := 0
		if t.Length.Const != nil {
			length = *t.Length.Const
		}
		return &ir.ArrayType{Elem: gen.TranslateType(t.Elem), Length: length}
	case *ast.NamedType:
		return gen.translateNamedType(t)
	default:
		fail(NotImplemented, ast.Position{}, "support for ast type %T not yet implemented", t)
		panic("unreachable")
	}
}

func irBaseType(b ast.BaseType) ir.BaseType { return ir.BaseType(b) }

// constIntSize evaluates a compile-time dimension, matching the
// source's GetIntVal contract: a non-constant size is an internal
// invariant violation, not a recoverable input error, since semantic
// analysis is required to have already folded every vector/matrix
// dimension down to a literal.
func (gen *Generator) constIntSize(c ast.Count) int {
	if c.Const == nil {
		fail(Assertion, ast.Position{}, "non-constant dimension reached the lowering core")
	}
	return *c.Const
}

// translateNamedType resolves a declared struct or class to its cached
// *ir.StructType, creating and caching it on first reference. Fields
// are translated in declaration order, matching spec.md §4.1's "Fields
// translate in declaration order."
func (gen *Generator) translateNamedType(t *ast.NamedType) *ir.StructType {
	key := structCacheKey{decl: t.Decl, subst: substKey(t.Subst)}
	if st, ok := gen.structCache[key]; ok {
		return st
	}
	// Reserve the cache slot before translating fields: a field whose
	// type is the enclosing struct itself (through a pointer-like or
	// array indirection) must observe the same *ir.StructType, not
	// recurse into a second translation.
	st := &ir.StructType{Name: t.Decl.AggName()}
	gen.structCache[key] = st

	fields := t.Decl.AggFields()
	st.Fields = make([]ir.StructField, len(fields))
	for i, f := range fields {
		st.Fields[i] = ir.StructField{Name: f.Name, Type: gen.TranslateType(f.Type)}
	}
	return st
}

func substKey(subst map[string]ast.Type) string {
	if len(subst) == 0 {
		return ""
	}
	names := make([]string, 0, len(subst))
	for name := range subst {
		names = append(names, name)
	}
	// Deterministic key: sorted names joined with typeKeyString's
	// rendering of each substituted ast.Type. Good enough for cache identity — this is not
	// used for display.
	sortStrings(names)
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(typeKeyString(subst[name]))
		b.WriteByte(';')
	}
	return b.String()
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// typeKeyString renders a stable, if unattractive, textual key for an
// ast.Type used only to distinguish generic substitutions in the struct
// cache key — it is never shown to a user.
func typeKeyString(t ast.Type) string {
	switch t := t.(type) {
	case *ast.BasicType:
		return t.Base.String()
	case *ast.NamedType:
		return t.Decl.AggName()
	default:
		return "?"
	}
}
