package lower

import (
	"github.com/shaderlang/ilgen/ast"
	"github.com/shaderlang/ilgen/ir"
)

// lowerExpr lowers a single expression to the IR operand it evaluates
// to (component C5, spec.md §4.5). access records whether e is being
// read or assigned into; most expression shapes produce the same
// operand either way (this IR has no separate load instruction —
// AllocVar/GlobalVar/FetchArg/MemberAccessInstr double as both address
// and value), but access is still threaded through so a future operand
// kind that does need the distinction has somewhere to hook in.
func (gen *Generator) lowerExpr(e ast.Expr, access ast.Access) ir.Operand {
	switch e := e.(type) {
	case *ast.ConstExpr:
		return gen.lowerConstExpr(e)
	case *ast.VarExpr:
		return gen.lowerVarExpr(e, access)
	case *ast.IndexExpr:
		return gen.lowerIndexExpr(e, access)
	case *ast.MemberExpr:
		return gen.lowerMemberExpr(e, access)
	case *ast.SwizzleExpr:
		return gen.lowerSwizzleExpr(e)
	case *ast.SelectExpr:
		return gen.lowerSelectExpr(e)
	case *ast.InvokeExpr:
		return gen.lowerInvokeExpr(e)
	case *ast.UnaryExpr:
		return gen.lowerUnaryExpr(e)
	case *ast.BinaryExpr:
		return gen.lowerBinaryExpr(e)
	default:
		fail(NotImplemented, e.Pos(), "support for expression %T not yet implemented", e)
		panic("unreachable")
	}
}

func (gen *Generator) lowerConstExpr(e *ast.ConstExpr) ir.Operand {
	switch e.Kind {
	case ast.ConstInt:
		return gen.out.Constants.Int(e.Int)
	case ast.ConstUInt:
		return gen.out.Constants.UInt(uint64(e.Int))
	case ast.ConstFloat:
		return gen.out.Constants.Float(e.Float)
	case ast.ConstBool:
		return gen.out.Constants.Bool(e.Bool)
	default:
		fail(NotImplemented, e.Pos(), "support for literal of kind %v not yet implemented", e.Kind)
		panic("unreachable")
	}
}

// lowerVarExpr resolves a bare name: first against the active scope
// table, then — if a method is being lowered — against a field of the
// implicit receiver, matching spec.md §4.5's implicit-receiver
// fallback. A name neither bound nor a receiver field is a genuine
// UnresolvedIdentifier: semantic analysis was supposed to rule this
// out before the tree ever reached the lowering core.
func (gen *Generator) lowerVarExpr(e *ast.VarExpr, access ast.Access) ir.Operand {
	if op, ok := gen.scopes.Lookup(e.Name); ok {
		return op
	}
	if gen.receiverType != nil {
		if idx := gen.receiverType.FieldIndex(e.Name); idx >= 0 {
			resultType := gen.receiverType.Fields[idx].Type
			indexOp := gen.out.Constants.Int(int64(idx))
			return gen.writer.MemberAccess(gen.receiver, indexOp, resultType)
		}
	}
	fail(UnresolvedIdentifier, e.Pos(), "undefined identifier %q", e.Name)
	panic("unreachable")
}

func (gen *Generator) lowerIndexExpr(e *ast.IndexExpr, access ast.Access) ir.Operand {
	base := gen.lowerExpr(e.Base, ast.Read)
	index := gen.lowerExpr(e.Index, ast.Read)
	resultType := gen.TranslateType(e.Type())
	instr := gen.writer.MemberAccess(base, index, resultType)
	instr.Attribute = e.Attribute
	return instr
}

// lowerMemberExpr requires a struct-typed base: swizzles are their own
// expression shape (SwizzleExpr) precisely so this path never has to
// guess whether ".xyz" means a field or a swizzle. A non-struct base
// reaching here is a shape this core doesn't yet translate.
func (gen *Generator) lowerMemberExpr(e *ast.MemberExpr, access ast.Access) ir.Operand {
	base := gen.lowerExpr(e.Base, ast.Read)
	st, ok := base.Type().(*ir.StructType)
	if !ok {
		fail(NotImplemented, e.Pos(), "member access on non-struct type %s", base.Type())
	}
	idx := st.FieldIndex(e.Name)
	if idx < 0 {
		fail(InvalidProgram, e.Pos(), "type %s has no field %q", st.Name, e.Name)
	}
	resultType := gen.TranslateType(e.Type())
	indexOp := gen.out.Constants.Int(int64(idx))
	return gen.writer.MemberAccess(base, indexOp, resultType)
}

// swizzleLetters is used only to synthesize a display string for
// SwizzleInstr: the ast layer records just the result component count
// (semantic analysis has already validated the real swizzle letters),
// so the first N of "xyzw" stands in for them here.
const swizzleLetters = "xyzw"

func (gen *Generator) lowerSwizzleExpr(e *ast.SwizzleExpr) ir.Operand {
	base := gen.lowerExpr(e.Base, ast.Read)
	if e.ElementCount < 1 || e.ElementCount > len(swizzleLetters) {
		fail(InvalidProgram, e.Pos(), "swizzle of %d components is out of range", e.ElementCount)
	}
	resultType := gen.TranslateType(e.Type())
	instr := &ir.SwizzleInstr{
		ValueBase:     ir.ValueBase{Typ: resultType},
		Operand:       base,
		SwizzleString: swizzleLetters[:e.ElementCount],
	}
	gen.writer.Insert(instr)
	return instr
}

func (gen *Generator) lowerSelectExpr(e *ast.SelectExpr) ir.Operand {
	cond := gen.lowerExpr(e.Cond, ast.Read)
	cond = gen.ensureBoolType(cond, e.Pos())
	then := gen.lowerExpr(e.Then, ast.Read)
	els := gen.lowerExpr(e.Else, ast.Read)
	return gen.writer.Select(cond, then, els)
}

// lowerInvokeExpr resolves a call to one of: a synthesized aggregate
// constructor, a member-function call (explicit receiver via a
// MemberExpr callee, or implicit receiver when a method calls a
// sibling method by bare name), or a plain free-function call — each
// further split into an intrinsic call (resolved by source name, no
// function-table entry) or a user call (resolved by mangled internal
// name), matching the source's VisitInvokeExpression branches.
func (gen *Generator) lowerInvokeExpr(e *ast.InvokeExpr) ir.Operand {
	callee := e.Callee
	if callee == nil {
		fail(InvalidProgram, e.Pos(), "call to an unresolved function")
	}

	resultType := gen.TranslateType(e.Type())

	if callee.IsConstructor {
		args := gen.lowerArgs(e.Args)
		return gen.writer.Insert(&ir.CallInstr{
			ValueBase: ir.ValueBase{Typ: resultType},
			Kind:      ir.ConstructorCall,
			Function:  "__init",
			Args:      args,
		})
	}

	var args []ir.Operand
	if callee.Owner != nil {
		args = append(args, gen.lowerReceiverArg(e))
	}
	args = append(args, gen.lowerArgs(e.Args)...)

	if callee.Intrinsic {
		return gen.writer.Insert(&ir.CallInstr{
			ValueBase: ir.ValueBase{Typ: resultType},
			Kind:      ir.IntrinsicCall,
			Function:  callee.Name,
			Args:      args,
		})
	}

	fn, ok := gen.funcTable[callee]
	if !ok {
		fail(Assertion, e.Pos(), "call to %q reached before its header was declared", callee.Name)
	}
	return gen.writer.Insert(&ir.CallInstr{
		ValueBase: ir.ValueBase{Typ: resultType},
		Kind:      ir.UserCall,
		Function:  fn.InternalName,
		Args:      args,
	})
}

func (gen *Generator) lowerArgs(exprs []ast.Expr) []ir.Operand {
	args := make([]ir.Operand, len(exprs))
	for i, a := range exprs {
		args[i] = gen.lowerExpr(a, ast.Read)
	}
	return args
}

// lowerReceiverArg resolves the implicit receiver argument of a member
// call: an explicit "base.Method(...)" lowers base, while a bare
// "Method(...)" called from inside another method of the same type
// reuses the current function's receiver operand.
func (gen *Generator) lowerReceiverArg(e *ast.InvokeExpr) ir.Operand {
	if memberExpr, ok := e.Func.(*ast.MemberExpr); ok {
		return gen.lowerExpr(memberExpr.Base, ast.Read)
	}
	if gen.receiver == nil {
		fail(InvalidProgram, e.Pos(), "call to member function %q outside of a method body", e.Callee.Name)
	}
	return gen.receiver
}

func (gen *Generator) lowerUnaryExpr(e *ast.UnaryExpr) ir.Operand {
	switch e.Op {
	case ast.Not:
		x := gen.lowerExpr(e.X, ast.Read)
		x = gen.ensureBoolType(x, e.Pos())
		return gen.writer.Insert(&ir.UnaryInstr{ValueBase: ir.ValueBase{Typ: x.Type()}, Op: ir.Not, X: x})
	case ast.Neg:
		x := gen.lowerExpr(e.X, ast.Read)
		return gen.writer.Insert(&ir.UnaryInstr{ValueBase: ir.ValueBase{Typ: x.Type()}, Op: ir.Neg, X: x})
	case ast.BitNot:
		x := gen.lowerExpr(e.X, ast.Read)
		return gen.writer.Insert(&ir.UnaryInstr{ValueBase: ir.ValueBase{Typ: x.Type()}, Op: ir.BitNot, X: x})
	case ast.PostInc, ast.PostDec, ast.PreInc, ast.PreDec:
		return gen.lowerIncDec(e)
	default:
		fail(NotImplemented, e.Pos(), "unary operator %v not yet implemented", e.Op)
		panic("unreachable")
	}
}

// lowerIncDec lowers ++/--, pre and post. A pre-form yields the
// post-increment (new) value; a post-form yields the pre-increment
// (old) value — spec.md §9's resolution of the source's duplicated
// post/pre branches, which had both forms yield the same value. The
// post forms need an explicit temporary to capture the old value
// before the store, since this IR has no copy-on-read semantics of its
// own.
func (gen *Generator) lowerIncDec(e *ast.UnaryExpr) ir.Operand {
	dest := gen.lowerExpr(e.X, ast.Write)
	t := dest.Type()
	one := gen.constOne(t, e.Pos())

	var op ir.BinaryOp
	switch e.Op {
	case ast.PreInc, ast.PostInc:
		op = ir.Add
	default:
		op = ir.Sub
	}

	switch e.Op {
	case ast.PreInc, ast.PreDec:
		newVal := gen.writer.Insert(&ir.BinaryInstr{ValueBase: ir.ValueBase{Typ: t}, Op: op, X: dest, Y: one})
		gen.writer.Assign(dest, newVal)
		return newVal
	default: // PostInc, PostDec
		old := gen.writer.AllocVar(t)
		gen.writer.Assign(old, dest)
		newVal := gen.writer.Insert(&ir.BinaryInstr{ValueBase: ir.ValueBase{Typ: t}, Op: op, X: dest, Y: one})
		gen.writer.Assign(dest, newVal)
		return old
	}
}

func (gen *Generator) constOne(t ir.Type, pos ast.Position) ir.Operand {
	if bt, ok := t.(*ir.BasicType); ok {
		switch bt.Base {
		case ir.Int:
			return gen.out.Constants.Int(1)
		case ir.UInt:
			return gen.out.Constants.UInt(1)
		case ir.Float:
			return gen.out.Constants.Float(1)
		}
	}
	fail(NotImplemented, pos, "increment/decrement of type %s not yet implemented", t)
	panic("unreachable")
}

// lowerBinaryExpr handles plain assignment, compound assignment, and
// every arithmetic/bitwise/logical/comparison operator, per spec.md
// §4.5. Assign and compound-assign forms lower their left side under
// Write access so the result is an addressable destination, then emit
// an explicit store.
func (gen *Generator) lowerBinaryExpr(e *ast.BinaryExpr) ir.Operand {
	if e.Op == ast.Assign {
		dest := gen.lowerExpr(e.X, ast.Write)
		val := gen.lowerExpr(e.Y, ast.Read)
		gen.writer.Assign(dest, val)
		return dest
	}
	if base, ok := e.Op.UnderlyingOp(); ok {
		dest := gen.lowerExpr(e.X, ast.Write)
		y := gen.lowerExpr(e.Y, ast.Read)
		newVal := gen.emitBinary(base, dest, y, e.Pos())
		gen.writer.Assign(dest, newVal)
		return newVal
	}
	x := gen.lowerExpr(e.X, ast.Read)
	y := gen.lowerExpr(e.Y, ast.Read)
	return gen.emitBinary(e.Op, x, y, e.Pos())
}

func (gen *Generator) emitBinary(op ast.BinaryOp, x, y ir.Operand, pos ast.Position) ir.Operand {
	switch op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Mod,
		ast.BitAnd, ast.BitOr, ast.BitXor, ast.Shl, ast.Shr:
		return gen.writer.Insert(&ir.BinaryInstr{
			ValueBase: ir.ValueBase{Typ: x.Type()},
			Op:        irBinaryOp(op, pos),
			X:         x,
			Y:         y,
		})
	case ast.And, ast.Or:
		x = gen.ensureBoolType(x, pos)
		y = gen.ensureBoolType(y, pos)
		return gen.writer.Insert(&ir.BinaryInstr{
			ValueBase: ir.ValueBase{Typ: ir.NewBasicType(ir.Bool)},
			Op:        irLogicalOp(op, pos),
			X:         x,
			Y:         y,
		})
	case ast.CmpEq, ast.CmpNeq, ast.CmpGt, ast.CmpGe, ast.CmpLt, ast.CmpLe:
		return gen.writer.Insert(&ir.CompareInstr{
			ValueBase: ir.ValueBase{Typ: ir.NewBasicType(ir.Bool)},
			Op:        irCompareOp(op, pos),
			X:         x,
			Y:         y,
		})
	default:
		fail(NotImplemented, pos, "binary operator %v not yet implemented", op)
		panic("unreachable")
	}
}

func irBinaryOp(op ast.BinaryOp, pos ast.Position) ir.BinaryOp {
	switch op {
	case ast.Add:
		return ir.Add
	case ast.Sub:
		return ir.Sub
	case ast.Mul:
		return ir.Mul
	case ast.Div:
		return ir.Div
	case ast.Mod:
		return ir.Mod
	case ast.BitAnd:
		return ir.BitAnd
	case ast.BitOr:
		return ir.BitOr
	case ast.BitXor:
		return ir.BitXor
	case ast.Shl:
		return ir.Shl
	case ast.Shr:
		return ir.Shr
	default:
		fail(Assertion, pos, "%v is not an arithmetic or bitwise operator", op)
		panic("unreachable")
	}
}

func irLogicalOp(op ast.BinaryOp, pos ast.Position) ir.BinaryOp {
	switch op {
	case ast.And:
		return ir.And
	case ast.Or:
		return ir.Or
	default:
		fail(Assertion, pos, "%v is not a logical operator", op)
		panic("unreachable")
	}
}

func irCompareOp(op ast.BinaryOp, pos ast.Position) ir.CompareOp {
	switch op {
	case ast.CmpEq:
		return ir.CmpEq
	case ast.CmpNeq:
		return ir.CmpNeq
	case ast.CmpGt:
		return ir.CmpGt
	case ast.CmpGe:
		return ir.CmpGe
	case ast.CmpLt:
		return ir.CmpLt
	case ast.CmpLe:
		return ir.CmpLe
	default:
		fail(Assertion, pos, "%v is not a comparison operator", op)
		panic("unreachable")
	}
}

// ensureBoolType coerces x to a bool operand: if x is already bool it
// passes through unchanged; otherwise it synthesizes `x != 0` against a
// zero of x's own type and returns that comparison's result, per
// spec.md §4.5's EnsureBoolType.
func (gen *Generator) ensureBoolType(x ir.Operand, pos ast.Position) ir.Operand {
	if bt, ok := x.Type().(*ir.BasicType); ok && bt.Base == ir.Bool {
		return x
	}
	zero := gen.zeroValue(x.Type(), pos)
	return gen.writer.Insert(&ir.CompareInstr{
		ValueBase: ir.ValueBase{Typ: ir.NewBasicType(ir.Bool)},
		Op:        ir.CmpNeq,
		X:         x,
		Y:         zero,
	})
}

func (gen *Generator) zeroValue(t ir.Type, pos ast.Position) ir.Operand {
	if bt, ok := t.(*ir.BasicType); ok {
		switch bt.Base {
		case ir.Int:
			return gen.out.Constants.Int(0)
		case ir.UInt:
			return gen.out.Constants.UInt(0)
		case ir.Float:
			return gen.out.Constants.Float(0)
		}
	}
	fail(NotImplemented, pos, "bool coercion of type %s not yet implemented", t)
	panic("unreachable")
}
