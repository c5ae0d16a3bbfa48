package lower_test

import (
	"testing"

	"github.com/shaderlang/ilgen/ast"
	"github.com/shaderlang/ilgen/config"
	"github.com/shaderlang/ilgen/ir"
	"github.com/shaderlang/ilgen/lower"
)

// --- small, local AST builders, in the spirit of the corpus's own
// compact test-fixture helpers (e.g. google-gapid/gapil/semantic's S/L
// helpers) rather than a full parser. ---

func basic(b ast.BaseType) *ast.BasicType { return &ast.BasicType{Base: b} }

func constInt(v int64) *ast.ConstExpr {
	e := &ast.ConstExpr{Kind: ast.ConstInt, Int: v}
	e.Typ = basic(ast.Int)
	return e
}

func constFloat(v float64) *ast.ConstExpr {
	e := &ast.ConstExpr{Kind: ast.ConstFloat, Float: v}
	e.Typ = basic(ast.Float)
	return e
}

func varExpr(name string, t ast.Type) *ast.VarExpr {
	v := &ast.VarExpr{Name: name}
	v.Typ = t
	return v
}

func binExpr(op ast.BinaryOp, x, y ast.Expr, t ast.Type) *ast.BinaryExpr {
	e := &ast.BinaryExpr{Op: op, X: x, Y: y}
	e.Typ = t
	return e
}

func invokeExpr(fn ast.Expr, callee *ast.FuncDecl, t ast.Type, args ...ast.Expr) *ast.InvokeExpr {
	e := &ast.InvokeExpr{Func: fn, Args: args, Callee: callee}
	e.Typ = t
	return e
}

func block(stmts ...ast.Stmt) *ast.BlockStmt { return &ast.BlockStmt{Stmts: stmts} }
func ret(x ast.Expr) *ast.ReturnStmt         { return &ast.ReturnStmt{X: x} }
func exprStmt(x ast.Expr) *ast.ExprStmt      { return &ast.ExprStmt{X: x} }
func declStmt(name string, t ast.Type, init ast.Expr) *ast.DeclStmt {
	return &ast.DeclStmt{Name: name, Type: t, Init: init}
}
func ifStmt(cond ast.Expr, then, els ast.Stmt) *ast.IfStmt {
	return &ast.IfStmt{Cond: cond, Then: then, Else: els}
}
func forStmt(init ast.Stmt, cond, side ast.Expr, body ast.Stmt) *ast.ForStmt {
	return &ast.ForStmt{Init: init, Cond: cond, SideEffect: side, Body: body}
}
func param(name string, t ast.Type) *ast.ParamDecl {
	return &ast.ParamDecl{Name: name, Type: t, Direction: ast.In}
}

func lowerProgram(t *testing.T, prog *ast.Program, opts *config.CompileOptions) *ir.Program {
	t.Helper()
	gen := lower.NewGenerator(prog, opts, nil)
	out, err := gen.Lower()
	if err != nil {
		t.Fatalf("Lower() returned an error: %+v", err)
	}
	return out
}

// Scenario 1: arithmetic free function.
func TestLowerArithmeticFreeFunction(t *testing.T) {
	intT := basic(ast.Int)
	add := &ast.FuncDecl{
		Name:       "add",
		Params:     []*ast.ParamDecl{param("a", intT), param("b", intT)},
		ReturnType: intT,
		Body:       block(ret(binExpr(ast.Add, varExpr("a", intT), varExpr("b", intT), intT))),
	}
	prog := &ast.Program{Functions: []*ast.FuncDecl{add}}

	out := lowerProgram(t, prog, nil)

	fn, ok := out.Functions["add@int@int"]
	if !ok {
		t.Fatalf("Functions[%q] missing; have %v", "add@int@int", funcNames(out))
	}
	if fn.InternalName != add.InternalName {
		t.Fatalf("FuncDecl.InternalName = %q, want %q", add.InternalName, fn.InternalName)
	}
	if len(fn.Body.Instrs) != 2 {
		t.Fatalf("len(Body.Instrs) = %d, want 2 (the add, the return)", len(fn.Body.Instrs))
	}
	retInstr, ok := fn.Body.Instrs[1].(*ir.ReturnInstr)
	if !ok {
		t.Fatalf("Body.Instrs[1] is %T, want *ir.ReturnInstr", fn.Body.Instrs[1])
	}
	if _, ok := retInstr.Result.(*ir.BinaryInstr); !ok {
		t.Fatalf("return result is %T, want *ir.BinaryInstr", retInstr.Result)
	}
}

// Scenario 2: if/else.
func TestLowerIfElse(t *testing.T) {
	intT := basic(ast.Int)
	boolT := basic(ast.Bool)
	max := &ast.FuncDecl{
		Name:       "max",
		Params:     []*ast.ParamDecl{param("a", intT), param("b", intT)},
		ReturnType: intT,
		Body: block(ifStmt(
			binExpr(ast.CmpGt, varExpr("a", intT), varExpr("b", intT), boolT),
			block(ret(varExpr("a", intT))),
			block(ret(varExpr("b", intT))),
		)),
	}
	prog := &ast.Program{Functions: []*ast.FuncDecl{max}}

	out := lowerProgram(t, prog, nil)

	fn := out.Functions["max@int@int"]
	if fn == nil {
		t.Fatalf("Functions[%q] missing; have %v", "max@int@int", funcNames(out))
	}
	if len(fn.Body.Instrs) != 2 {
		t.Fatalf("len(Body.Instrs) = %d, want 2 (the comparison, the if)", len(fn.Body.Instrs))
	}
	ifInstr, ok := fn.Body.Instrs[1].(*ir.IfInstr)
	if !ok {
		t.Fatalf("Body.Instrs[1] is %T, want *ir.IfInstr", fn.Body.Instrs[1])
	}
	if ifInstr.FalseCode == nil {
		t.Fatalf("IfInstr.FalseCode is nil, want the else branch's code node")
	}
	if _, ok := ifInstr.TrueCode.Instrs[0].(*ir.ReturnInstr); !ok {
		t.Fatalf("TrueCode.Instrs[0] is %T, want *ir.ReturnInstr", ifInstr.TrueCode.Instrs[0])
	}
	if _, ok := ifInstr.FalseCode.Instrs[0].(*ir.ReturnInstr); !ok {
		t.Fatalf("FalseCode.Instrs[0] is %T, want *ir.ReturnInstr", ifInstr.FalseCode.Instrs[0])
	}
}

// Scenario 3: for-loop with a compound assignment accumulating a sum.
func TestLowerForLoopWithCompoundAssign(t *testing.T) {
	intT := basic(ast.Int)
	boolT := basic(ast.Bool)
	sumTo := &ast.FuncDecl{
		Name:       "sumTo",
		Params:     []*ast.ParamDecl{param("n", intT)},
		ReturnType: intT,
		Body: block(
			declStmt("sum", intT, constInt(0)),
			forStmt(
				declStmt("i", intT, constInt(0)),
				binExpr(ast.CmpLt, varExpr("i", intT), varExpr("n", intT), boolT),
				binExpr(ast.AddAssign, varExpr("i", intT), constInt(1), intT),
				block(exprStmt(binExpr(ast.AddAssign, varExpr("sum", intT), varExpr("i", intT), intT))),
			),
			ret(varExpr("sum", intT)),
		),
	}
	prog := &ast.Program{Functions: []*ast.FuncDecl{sumTo}}

	out := lowerProgram(t, prog, nil)

	fn := out.Functions["sumTo@int"]
	if fn == nil {
		t.Fatalf("Functions[%q] missing; have %v", "sumTo@int", funcNames(out))
	}
	if len(fn.Body.Instrs) != 6 {
		t.Fatalf("len(Body.Instrs) = %d, want 6 (alloc+store for sum, alloc+store for i, the for, the return)", len(fn.Body.Instrs))
	}
	forInstr, ok := fn.Body.Instrs[4].(*ir.ForInstr)
	if !ok {
		t.Fatalf("Body.Instrs[4] is %T, want *ir.ForInstr", fn.Body.Instrs[4])
	}
	if forInstr.ConditionCode == nil || forInstr.SideEffectCode == nil || forInstr.BodyCode == nil {
		t.Fatalf("ForInstr has a nil clause: cond=%v side=%v body=%v",
			forInstr.ConditionCode, forInstr.SideEffectCode, forInstr.BodyCode)
	}
	last := forInstr.ConditionCode.Instrs[len(forInstr.ConditionCode.Instrs)-1]
	if _, ok := last.(*ir.YieldInstr); !ok {
		t.Fatalf("ConditionCode's last instruction is %T, want *ir.YieldInstr", last)
	}
}

// Scenario 4: class method with an implicit receiver.
func TestLowerMethodWithImplicitReceiver(t *testing.T) {
	floatT := basic(ast.Float)
	vec2 := &ast.ClassDecl{
		Name:   "Vec2",
		Fields: []*ast.FieldDecl{{Name: "x", Type: floatT}, {Name: "y", Type: floatT}},
	}
	lengthSq := &ast.FuncDecl{
		Name:       "lengthSq",
		ReturnType: floatT,
		Owner:      vec2,
		Body: block(ret(binExpr(ast.Add,
			binExpr(ast.Mul, varExpr("x", floatT), varExpr("x", floatT), floatT),
			binExpr(ast.Mul, varExpr("y", floatT), varExpr("y", floatT), floatT),
			floatT,
		))),
	}
	vec2.Methods = []*ast.FuncDecl{lengthSq}
	prog := &ast.Program{Classes: []*ast.ClassDecl{vec2}}

	out := lowerProgram(t, prog, nil)

	fn := out.Functions["Vec2@lengthSq"]
	if fn == nil {
		t.Fatalf("Functions[%q] missing; have %v", "Vec2@lengthSq", funcNames(out))
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "this" {
		t.Fatalf("Params = %+v, want a single implicit `this` receiver", fn.Params)
	}
	if fn.Params[0].Operand.Direction != ir.InOut {
		t.Fatalf("receiver Direction = %v, want ir.InOut", fn.Params[0].Operand.Direction)
	}
	st, ok := fn.Params[0].Operand.Type().(*ir.StructType)
	if !ok || st.Name != "Vec2" {
		t.Fatalf("receiver type = %v, want the Vec2 struct type", fn.Params[0].Operand.Type())
	}
}

// Scenario 5: an entry point reading a global class variable that
// holds a bindable texture resource.
func TestLowerEntryPointWithBindableResourceGlobal(t *testing.T) {
	vec4T := &ast.VectorType{Elem: ast.Float, Count: ast.NewConstCount(4)}
	texT := &ast.TextureType{Elem: vec4T, Shape: ast.Tex2D}
	material := &ast.ClassDecl{
		Name:   "Material",
		Fields: []*ast.FieldDecl{{Name: "albedo", Type: texT}},
	}
	materialVar := &ast.VarDecl{Name: "g_material", Type: &ast.NamedType{Decl: material}}
	fsMain := &ast.FuncDecl{
		Name:       "fs_main",
		ReturnType: basic(ast.Void),
		Body:       block(&ast.DiscardStmt{}),
	}
	prog := &ast.Program{
		Classes:   []*ast.ClassDecl{material},
		Variables: []*ast.VarDecl{materialVar},
		Functions: []*ast.FuncDecl{fsMain},
	}
	opts := &config.CompileOptions{EntryPoints: []config.EntryPoint{{Name: "fs_main", Stage: "fragment"}}}

	out := lowerProgram(t, prog, opts)

	gv, ok := out.Globals["g_material"]
	if !ok {
		t.Fatalf("Globals[%q] missing", "g_material")
	}
	if _, ok := gv.Type().(*ir.StructType); !ok {
		t.Fatalf("g_material type = %T, want *ir.StructType", gv.Type())
	}

	res, ok := out.Globals["g_material_albedo"]
	if !ok {
		t.Fatalf("Globals[%q] missing; want a synthesized resource global named by the dotted field path", "g_material_albedo")
	}
	if _, ok := res.Type().(*ir.TextureType); !ok {
		t.Fatalf("g_material_albedo type = %T, want *ir.TextureType", res.Type())
	}

	mainInit := out.Functions["__main_init"]
	if mainInit == nil {
		t.Fatalf("Functions[%q] missing", "__main_init")
	}
	foundAssign := false
	for _, instr := range mainInit.Body.Instrs {
		store, ok := instr.(*ir.StoreInstr)
		if !ok {
			continue
		}
		if store.Value == res {
			foundAssign = true
		}
	}
	if !foundAssign {
		t.Fatalf("__main_init body has no store assigning g_material_albedo into g_material.albedo")
	}

	fn := out.Functions["fs_main"]
	if fn == nil {
		t.Fatalf("Functions[%q] missing", "fs_main")
	}
	call, ok := fn.Body.Instrs[0].(*ir.CallInstr)
	if !ok || call.Function != "__main_init" {
		t.Fatalf("fs_main's first instruction is %#v, want a call to __main_init", fn.Body.Instrs[0])
	}
}

// Scenario 6: constructor invocation.
func TestLowerConstructorCall(t *testing.T) {
	floatT := basic(ast.Float)
	vec2Decl := &ast.StructDecl{
		Name:   "Vec2",
		Fields: []*ast.FieldDecl{{Name: "x", Type: floatT}, {Name: "y", Type: floatT}},
	}
	vec2T := &ast.NamedType{Decl: vec2Decl}
	ctor := &ast.FuncDecl{Name: "Vec2", IsConstructor: true, OwnerType: vec2T, Intrinsic: true}
	makeVec2 := &ast.FuncDecl{
		Name:       "makeVec2",
		ReturnType: vec2T,
		Body:       block(ret(invokeExpr(varExpr("Vec2", vec2T), ctor, vec2T, constFloat(1), constFloat(2)))),
	}
	prog := &ast.Program{Structs: []*ast.StructDecl{vec2Decl}, Functions: []*ast.FuncDecl{makeVec2}}

	out := lowerProgram(t, prog, nil)

	fn := out.Functions["makeVec2"]
	if fn == nil {
		t.Fatalf("Functions[%q] missing; have %v", "makeVec2", funcNames(out))
	}
	retInstr := fn.Body.Instrs[1].(*ir.ReturnInstr)
	call, ok := retInstr.Result.(*ir.CallInstr)
	if !ok {
		t.Fatalf("return result is %T, want *ir.CallInstr", retInstr.Result)
	}
	if call.Kind != ir.ConstructorCall {
		t.Fatalf("CallInstr.Kind = %v, want ir.ConstructorCall", call.Kind)
	}
	if call.Function != "__init" {
		t.Fatalf("CallInstr.Function = %q, want %q", call.Function, "__init")
	}
	if len(call.Args) != 2 {
		t.Fatalf("len(CallInstr.Args) = %d, want 2", len(call.Args))
	}
}

func funcNames(p *ir.Program) []string {
	names := make([]string, 0, len(p.Functions))
	for name := range p.Functions {
		names = append(names, name)
	}
	return names
}
