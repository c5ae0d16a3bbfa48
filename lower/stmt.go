package lower

import (
	"github.com/shaderlang/ilgen/ast"
	"github.com/shaderlang/ilgen/ir"
)

// lowerStmt lowers a single statement (component C6, spec.md §4.6).
func (gen *Generator) lowerStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.BlockStmt:
		gen.lowerBlockStmt(s)
	case *ast.DeclStmt:
		gen.lowerDeclStmt(s)
	case *ast.ExprStmt:
		gen.lowerExpr(s.X, ast.Read)
	case *ast.IfStmt:
		gen.lowerIfStmt(s)
	case *ast.WhileStmt:
		gen.lowerWhileStmt(s)
	case *ast.DoWhileStmt:
		gen.lowerDoWhileStmt(s)
	case *ast.ForStmt:
		gen.lowerForStmt(s)
	case *ast.ReturnStmt:
		gen.lowerReturnStmt(s)
	case *ast.BreakStmt:
		gen.writer.Insert(&ir.BreakInstr{ValueBase: ir.ValueBase{Typ: ir.NewBasicType(ir.Void)}})
	case *ast.ContinueStmt:
		gen.writer.Insert(&ir.ContinueInstr{ValueBase: ir.ValueBase{Typ: ir.NewBasicType(ir.Void)}})
	case *ast.DiscardStmt:
		gen.writer.Discard()
	default:
		fail(NotImplemented, s.Pos(), "support for statement %T not yet implemented", s)
	}
}

// lowerBlockStmt lowers a `{ ... }` block, opening a fresh lexical
// scope for its statements and closing it on every exit path (spec.md
// §4.6, §8 invariant 1).
func (gen *Generator) lowerBlockStmt(s *ast.BlockStmt) {
	gen.scopes.Push()
	defer gen.scopes.Pop()
	for _, stmt := range s.Stmts {
		gen.lowerStmt(stmt)
	}
}

// lowerDeclStmt allocates storage for a local variable. AllocVar itself
// decides whether this becomes a function-local allocation or a
// module-scope global, based on whether a code node is currently open
// — so a DeclStmt lowered at program top level (outside any function
// body) naturally becomes a global, matching spec.md §4.4's redirect.
func (gen *Generator) lowerDeclStmt(s *ast.DeclStmt) {
	t := gen.TranslateType(s.Type)
	v := gen.writer.AllocVar(t)
	gen.scopes.Add(s.Name, v)
	if s.Init != nil {
		val := gen.lowerExpr(s.Init, ast.Read)
		gen.writer.Assign(v, val)
	}
}

func (gen *Generator) lowerIfStmt(s *ast.IfStmt) {
	gen.scopes.Push()
	cond := gen.lowerExpr(s.Cond, ast.Read)
	gen.ensureBoolType(cond, s.Pos())
	trueCode := gen.writer.PushNode()
	gen.lowerStmt(s.Then)
	gen.writer.PopNode()
	gen.scopes.Pop()

	var falseCode *ir.CodeNode
	if s.Else != nil {
		gen.scopes.Push()
		falseCode = gen.writer.PushNode()
		gen.lowerStmt(s.Else)
		gen.writer.PopNode()
		gen.scopes.Pop()
	}

	gen.writer.Insert(&ir.IfInstr{
		ValueBase: ir.ValueBase{Typ: ir.NewBasicType(ir.Void)},
		Cond:      cond,
		TrueCode:  trueCode,
		FalseCode: falseCode,
	})
}

// lowerWhileStmt lowers a pre-test loop. The predicate is evaluated in
// its own code node ending in a YieldInstr carrying its value back to
// the owning WhileInstr — spec.md §9's resolved name for what the
// condition region does (it doesn't return from the function, it
// yields a value to whatever structured instruction owns it).
func (gen *Generator) lowerWhileStmt(s *ast.WhileStmt) {
	gen.scopes.Push()
	defer gen.scopes.Pop()

	condCode := gen.writer.PushNode()
	condVal := gen.lowerExpr(s.Cond, ast.Read)
	gen.ensureBoolType(condVal, s.Pos())
	gen.writer.Insert(&ir.YieldInstr{ValueBase: ir.ValueBase{Typ: condVal.Type()}, Result: condVal})
	gen.writer.PopNode()

	bodyCode := gen.writer.PushNode()
	gen.lowerStmt(s.Body)
	gen.writer.PopNode()

	gen.writer.Insert(&ir.WhileInstr{
		ValueBase:     ir.ValueBase{Typ: ir.NewBasicType(ir.Void)},
		ConditionCode: condCode,
		BodyCode:      bodyCode,
	})
}

func (gen *Generator) lowerDoWhileStmt(s *ast.DoWhileStmt) {
	gen.scopes.Push()
	defer gen.scopes.Pop()

	bodyCode := gen.writer.PushNode()
	gen.lowerStmt(s.Body)
	gen.writer.PopNode()

	condCode := gen.writer.PushNode()
	condVal := gen.lowerExpr(s.Cond, ast.Read)
	gen.ensureBoolType(condVal, s.Pos())
	gen.writer.Insert(&ir.YieldInstr{ValueBase: ir.ValueBase{Typ: condVal.Type()}, Result: condVal})
	gen.writer.PopNode()

	gen.writer.Insert(&ir.DoInstr{
		ValueBase:     ir.ValueBase{Typ: ir.NewBasicType(ir.Void)},
		ConditionCode: condCode,
		BodyCode:      bodyCode,
	})
}

// lowerForStmt lowers a C-style for loop. Init (if present) runs once,
// directly in the enclosing code sequence — it is not part of the
// loop's structured representation, matching ir.ForInstr's shape,
// which has no Init field of its own.
func (gen *Generator) lowerForStmt(s *ast.ForStmt) {
	gen.scopes.Push()
	defer gen.scopes.Pop()

	if s.Init != nil {
		gen.lowerStmt(s.Init)
	}

	var condCode *ir.CodeNode
	if s.Cond != nil {
		condCode = gen.writer.PushNode()
		condVal := gen.lowerExpr(s.Cond, ast.Read)
		gen.ensureBoolType(condVal, s.Pos())
		gen.writer.Insert(&ir.YieldInstr{ValueBase: ir.ValueBase{Typ: condVal.Type()}, Result: condVal})
		gen.writer.PopNode()
	}

	var sideCode *ir.CodeNode
	if s.SideEffect != nil {
		sideCode = gen.writer.PushNode()
		gen.lowerExpr(s.SideEffect, ast.Read)
		gen.writer.PopNode()
	}

	bodyCode := gen.writer.PushNode()
	gen.lowerStmt(s.Body)
	gen.writer.PopNode()

	gen.writer.Insert(&ir.ForInstr{
		ValueBase:      ir.ValueBase{Typ: ir.NewBasicType(ir.Void)},
		ConditionCode:  condCode,
		SideEffectCode: sideCode,
		BodyCode:       bodyCode,
	})
}

func (gen *Generator) lowerReturnStmt(s *ast.ReturnStmt) {
	var result ir.Operand
	if s.X != nil {
		result = gen.lowerExpr(s.X, ast.Read)
	}
	gen.writer.Insert(&ir.ReturnInstr{ValueBase: ir.ValueBase{Typ: ir.NewBasicType(ir.Void)}, Result: result})
}
