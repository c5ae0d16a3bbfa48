package ast

// Access is the read/write mode an expression is being lowered under.
// The source mutates a shared Access field on each node before recursing
// into it; this rewrite instead threads Access as an explicit parameter
// through lowering calls (see lower/expr.go), so Expr nodes carry no
// Access field of their own.
type Access int

const (
	Read Access = iota
	Write
)

// UnaryOp is the closed set of unary operators.
type UnaryOp int

const (
	Not UnaryOp = iota
	Neg
	BitNot
	PostInc
	PostDec
	PreInc
	PreDec
)

// BinaryOp is the closed set of binary operators, including compound
// assignment forms (each compound form names the underlying binary op it
// shares an instruction with).
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	BitAnd
	BitOr
	BitXor
	Shl
	Shr
	And // logical (non short-circuiting, see spec.md §9)
	Or  // logical (non short-circuiting, see spec.md §9)
	CmpEq
	CmpNeq
	CmpGt
	CmpGe
	CmpLt
	CmpLe

	Assign
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign
	BitAndAssign
	BitOrAssign
	BitXorAssign
	ShlAssign
	ShrAssign
)

// underlyingOp returns the non-assigning binary op a compound-assignment
// op shares its instruction with, and whether op is a compound assignment
// at all.
func (op BinaryOp) underlyingOp() (BinaryOp, bool) {
	switch op {
	case AddAssign:
		return Add, true
	case SubAssign:
		return Sub, true
	case MulAssign:
		return Mul, true
	case DivAssign:
		return Div, true
	case ModAssign:
		return Mod, true
	case BitAndAssign:
		return BitAnd, true
	case BitOrAssign:
		return BitOr, true
	case BitXorAssign:
		return BitXor, true
	case ShlAssign:
		return Shl, true
	case ShrAssign:
		return Shr, true
	default:
		return op, false
	}
}

// UnderlyingOp exposes underlyingOp to the lower package.
func (op BinaryOp) UnderlyingOp() (BinaryOp, bool) { return op.underlyingOp() }

// Expr is implemented by every expression node. Every Expr carries its own
// resolved Type, matching the input contract (spec.md §6): semantic
// analysis has already annotated it.
type Expr interface {
	exprNode()
	Type() Type
	Pos() Position
}

type exprBase struct {
	Typ      Type
	Position Position
}

func (e exprBase) Type() Type     { return e.Typ }
func (e exprBase) Pos() Position  { return e.Position }

// ConstKind is the closed set of literal kinds.
type ConstKind int

const (
	ConstInt ConstKind = iota
	ConstUInt
	ConstFloat
	ConstBool
)

// ConstExpr is a literal.
type ConstExpr struct {
	exprBase
	Kind    ConstKind
	Int     int64
	Float   float64
	Bool    bool
}

func (*ConstExpr) exprNode() {}

// VarExpr references a name: a local, a parameter, a global, or — when
// unresolved and an implicit receiver is active — a field of the
// receiver.
type VarExpr struct {
	exprBase
	Name string
}

func (*VarExpr) exprNode() {}

// IndexExpr is a subscript expression `Base[Index]`.
type IndexExpr struct {
	exprBase
	Base      Expr
	Index     Expr
	Attribute string // propagated from Base's resolved attribute, if any
}

func (*IndexExpr) exprNode() {}

// MemberExpr is a field-access expression `Base.Name`.
type MemberExpr struct {
	exprBase
	Base Expr
	Name string
}

func (*MemberExpr) exprNode() {}

// SwizzleExpr is a vector swizzle `Base.xyz` reduced to its component
// count (the semantic analyzer has already validated the swizzle letters
// and recorded how many components the result has).
type SwizzleExpr struct {
	exprBase
	Base         Expr
	ElementCount int
}

func (*SwizzleExpr) exprNode() {}

// SelectExpr is a ternary conditional `Cond ? Then : Else`.
type SelectExpr struct {
	exprBase
	Cond Expr
	Then Expr
	Else Expr
}

func (*SelectExpr) exprNode() {}

// InvokeExpr is a call expression. Func is the callee expression — a
// VarExpr (plain name), a MemberExpr (method call), or any expression
// whose resolved type is a function type; Callee is the resolved
// declaration (nil only for a callee the semantic analyzer could not
// resolve to a declaration, i.e. a genuine InvalidProgram case).
type InvokeExpr struct {
	exprBase
	Func   Expr
	Args   []Expr
	Callee *FuncDecl
}

func (*InvokeExpr) exprNode() {}

// UnaryExpr applies a unary operator.
type UnaryExpr struct {
	exprBase
	Op Unary
	X  Expr
}

// Unary aliases UnaryOp so call sites read ast.Unary.
type Unary = UnaryOp

func (*UnaryExpr) exprNode() {}

// BinaryExpr applies a binary operator — including assignment and
// compound assignment.
type BinaryExpr struct {
	exprBase
	Op BinaryOp
	X  Expr
	Y  Expr
}

func (*BinaryExpr) exprNode() {}
