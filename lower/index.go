package lower

import "github.com/shaderlang/ilgen/ast"

// indexTypes registers the IR type of every struct and class
// declaration not marked intrinsic or from the standard library, ahead
// of any function lowering, so a field or parameter referencing
// a type declared later in the program still resolves — the Go
// realization of the source's two-phase register-then-lower shape,
// mirrored by the teacher's own indexPackage/lowerPackage split.
func (gen *Generator) indexTypes() {
	for _, d := range gen.prog.Structs {
		if d.Intrinsic || d.FromStdLib {
			continue
		}
		st := gen.translateNamedType(&ast.NamedType{Decl: d})
		gen.out.Structs = append(gen.out.Structs, st)
	}
	for _, d := range gen.prog.Classes {
		if d.Intrinsic || d.FromStdLib {
			continue
		}
		st := gen.translateNamedType(&ast.NamedType{Decl: d})
		gen.out.Structs = append(gen.out.Structs, st)
	}
}

// indexMemberFuncHeaders declares the header of every class method
// ahead of any method body being lowered, so one method can call a
// sibling method declared later in the same class.
func (gen *Generator) indexMemberFuncHeaders() {
	for _, c := range gen.prog.Classes {
		owner := gen.translateNamedType(&ast.NamedType{Decl: c})
		for _, m := range c.Methods {
			m.Owner = c
			gen.declareFunctionHeader(m, owner, c.Name)
		}
	}
}

// indexFreeFuncHeaders declares the header of every free function
// ahead of any free function body being lowered.
func (gen *Generator) indexFreeFuncHeaders() {
	for _, f := range gen.prog.Functions {
		if f.Intrinsic || f.FromStdLib {
			continue
		}
		gen.declareFunctionHeader(f, nil, "")
	}
}
