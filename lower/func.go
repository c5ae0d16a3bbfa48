package lower

import (
	"strings"

	"github.com/shaderlang/ilgen/ast"
	"github.com/shaderlang/ilgen/ir"
)

// mangleName builds the internal name a function is emitted under:
// owner name (empty for a free function), function name, and each
// parameter's translated type string, joined by '@' — the Go
// realization of the source's GenerateFunctionHeader mangling, which
// exists so two overloads differing only in parameter types don't
// collide in the flat function table.
func mangleName(owner string, f *ast.FuncDecl, paramTypes []ir.Type) string {
	var b strings.Builder
	if owner != "" {
		b.WriteString(owner)
		b.WriteByte('@')
	}
	b.WriteString(f.Name)
	for _, pt := range paramTypes {
		b.WriteByte('@')
		b.WriteString(pt.String())
	}
	return b.String()
}

// declareFunctionHeader translates f's signature and registers an
// ir.Function for it in both the program's function map and the
// generator's funcTable, without lowering its body. Splitting the
// header phase from the body phase lets a call appearing anywhere in
// the program resolve a forward reference to any other function, the
// same two-phase shape as the source's indexPackage before lowerPackage.
//
// owner is the struct type of f's receiver, or nil for a free function;
// ownerName is used only for name mangling.
func (gen *Generator) declareFunctionHeader(f *ast.FuncDecl, owner *ir.StructType, ownerName string) *ir.Function {
	var params []ir.Param
	var paramTypes []ir.Type
	index := 1

	if owner != nil {
		// The implicit receiver occupies argument index 1, passed
		// InOut so member functions can mutate fields through it,
		// matching spec.md §4.7's "this is realized as an explicit
		// first FetchArg parameter, not a mutable field."
		recv := gen.writer.FetchArg(owner, index, ir.InOut)
		params = append(params, ir.Param{Name: "this", Operand: recv})
		index++
	}

	for _, p := range f.Params {
		pt := gen.TranslateType(p.Type)
		paramTypes = append(paramTypes, pt)
		arg := gen.writer.FetchArg(pt, index, irDirection(p.Direction))
		params = append(params, ir.Param{Name: "p_" + p.Name, Operand: arg})
		index++
	}

	retType := gen.TranslateType(f.ReturnType)
	fn := &ir.Function{
		InternalName: mangleName(ownerName, f, paramTypes),
		ReturnType:   retType,
		Params:       params,
	}
	f.InternalName = fn.InternalName
	gen.out.Functions[fn.InternalName] = fn
	gen.funcTable[f] = fn
	return fn
}

func irDirection(d ast.ParamDirection) ir.Direction {
	switch d {
	case ast.Out:
		return ir.Out
	case ast.InOut:
		return ir.InOut
	default:
		return ir.In
	}
}

// lowerFunctionBody lowers f's body into the already-declared fn,
// establishing the receiver context used by VarExpr's implicit-field
// fallback (spec.md §4.5) for the duration of the call.
func (gen *Generator) lowerFunctionBody(f *ast.FuncDecl, fn *ir.Function, owner *ir.StructType) {
	prevReceiver, prevReceiverType := gen.receiver, gen.receiverType
	defer func() { gen.receiver, gen.receiverType = prevReceiver, prevReceiverType }()

	gen.scopes.Push()
	defer gen.scopes.Pop()

	paramIdx := 0
	if owner != nil {
		gen.receiver = fn.Params[0].Operand
		gen.receiverType = owner
		gen.scopes.Add("this", gen.receiver)
		paramIdx = 1
	} else {
		gen.receiver, gen.receiverType = nil, nil
	}
	for _, p := range fn.Params[paramIdx:] {
		gen.scopes.Add(strings.TrimPrefix(p.Name, "p_"), p.Operand)
	}

	body := gen.writer.PushNode()
	fn.Body = body
	// An entry point's body starts with a call to __main_init, ensuring
	// every global initializer and bindable-resource binding runs before
	// any shader-stage code touches a global, per spec.md §4.7 phase 6.
	if owner == nil && gen.entryPointNames[f.Name] {
		gen.writer.Insert(&ir.CallInstr{
			ValueBase: ir.ValueBase{Typ: ir.NewBasicType(ir.Void)},
			Kind:      ir.UserCall,
			Function:  mainInitName,
		})
	}
	gen.lowerStmt(f.Body)
	gen.writer.PopNode()
}
