// Package lower implements the AST-to-IR lowering core: translating a
// type-checked shading-language program tree (package ast) into the
// typed intermediate representation (package ir) a backend consumes.
package lower

import (
	"github.com/shaderlang/ilgen/ast"
	"github.com/shaderlang/ilgen/diagnostic"
	"github.com/shaderlang/ilgen/ir"
)

// mainInitName is the synthesized function every entry point calls
// before running any of its own statements, so top-level variable
// initializers and bindable-resource bindings are guaranteed to have
// run first (spec.md §4.7 phase 3 and phase 6).
const mainInitName = "__main_init"

// Lower runs the full lowering pipeline (component C7, spec.md §4.7)
// and returns the resulting program, or the first fatal error raised
// while doing so. That error is also reported to the generator's sink.
func (gen *Generator) Lower() (prog *ir.Program, err error) {
	defer func() {
		if e, ok := err.(*Error); ok {
			gen.sink.Report(diagnostic.Diagnostic{
				Pos:      diagnostic.Position{File: e.Pos.File, Line: e.Pos.Line, Column: e.Pos.Column},
				Severity: diagnostic.Error,
				Code:     e.Kind.String(),
				Message:  e.err.Error(),
			})
		}
	}()
	defer recoverError(&err)

	// Phase 1: register every struct and class type ahead of any
	// function lowering, so forward references between aggregate types
	// resolve regardless of declaration order.
	gen.indexTypes()

	// Phase 2: declare every class method's header, so a method body can
	// call a sibling method declared later in the same class.
	gen.indexMemberFuncHeaders()

	// Phase 3: synthesize __main_init, the function that runs every
	// top-level variable's initializer and binds bindable resources.
	gen.synthesizeMainInit()

	// Phase 4: declare every free function's header, so free functions
	// can call each other regardless of declaration order.
	gen.indexFreeFuncHeaders()

	// Phase 5: lower every class method body.
	for _, c := range gen.prog.Classes {
		owner := gen.translateNamedType(&ast.NamedType{Decl: c})
		for _, m := range c.Methods {
			fn := gen.funcTable[m]
			gen.lowerFunctionBody(m, fn, owner)
		}
	}

	// Phase 6: lower every free function body. A configured entry point
	// gets its call to __main_init injected by lowerFunctionBody.
	for _, f := range gen.prog.Functions {
		if f.Intrinsic || f.FromStdLib {
			continue
		}
		fn := gen.funcTable[f]
		gen.lowerFunctionBody(f, fn, nil)
	}

	return gen.out, nil
}

// synthesizeMainInit emits __main_init: a store for the initializer
// expression of every top-level variable that is not class-typed, plus
// recursive bindable-resource synthesis for every class-typed global
// (see lowerTopLevelVar; a class-typed global's initializer is not
// lowered) — the Go realization of the source's
// DefineBindableResourceVariables pass.
func (gen *Generator) synthesizeMainInit() {
	fn := &ir.Function{InternalName: mainInitName, ReturnType: ir.NewBasicType(ir.Void)}
	gen.out.Functions[mainInitName] = fn

	body := gen.writer.PushNode()
	fn.Body = body

	for _, v := range gen.prog.Variables {
		if v.Intrinsic || v.FromStdLib {
			continue
		}
		gen.lowerTopLevelVar(v)
	}

	gen.writer.Insert(&ir.ReturnInstr{ValueBase: ir.ValueBase{Typ: ir.NewBasicType(ir.Void)}})
	gen.writer.PopNode()
}

// lowerTopLevelVar creates the named global for v. A class-typed global
// always recurses into bindable-resource synthesis over its fields,
// regardless of whether it has an initializer; any other type lowers
// its initializer normally, per spec.md §4.7 phase 3 and
// ILGenerator.cpp's v->Type->IsClass() branch.
func (gen *Generator) lowerTopLevelVar(v *ast.VarDecl) {
	t := gen.TranslateType(v.Type)
	gv := &ir.GlobalVar{ValueBase: ir.ValueBase{Typ: t}, Name: v.Name}
	gen.out.Globals[v.Name] = gv
	gen.scopes.Add(v.Name, gv)

	if isClassType(v.Type) {
		gen.synthesizeBindableResources(gv, t, v.Name)
		return
	}
	if v.Init != nil {
		val := gen.lowerExpr(v.Init, ast.Read)
		gen.writer.Assign(gv, val)
	}
}

// isClassType reports whether t names a class declaration (as opposed
// to a struct or any other type).
func isClassType(t ast.Type) bool {
	nt, ok := t.(*ast.NamedType)
	if !ok {
		return false
	}
	_, ok = nt.Decl.(*ast.ClassDecl)
	return ok
}

// synthesizeBindableResources flattens the bindable-resource members of
// dest's type into freshly synthesized globals named prefix_fieldname,
// storing each one back into its owning field so the rest of the
// program can read dest's fields normally. A struct-typed field
// recurses with prefix_fieldname as the new prefix; a plain-data field
// is left untouched, per spec.md §4.7's "Bindable resource lowering".
func (gen *Generator) synthesizeBindableResources(dest ir.Operand, t ir.Type, prefix string) {
	st, ok := t.(*ir.StructType)
	if !ok {
		return
	}
	for i, f := range st.Fields {
		if !containsBindableResource(f.Type) {
			continue
		}
		name := prefix + "_" + f.Name
		idx := gen.out.Constants.Int(int64(i))
		fieldOp := gen.writer.MemberAccess(dest, idx, f.Type)
		if _, ok := ir.BindableResourceType(f.Type); ok {
			res := &ir.GlobalVar{ValueBase: ir.ValueBase{Typ: f.Type}, Name: name}
			gen.out.Globals[name] = res
			gen.writer.Assign(fieldOp, res)
			continue
		}
		gen.synthesizeBindableResources(fieldOp, f.Type, name)
	}
}

// containsBindableResource reports whether t is itself a bindable
// resource type or a struct type with one nested, directly or
// transitively, among its fields.
func containsBindableResource(t ir.Type) bool {
	if _, ok := ir.BindableResourceType(t); ok {
		return true
	}
	if st, ok := t.(*ir.StructType); ok {
		for _, f := range st.Fields {
			if containsBindableResource(f.Type) {
				return true
			}
		}
	}
	return false
}
