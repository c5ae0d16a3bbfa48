package ir

// BinaryOp is the closed set of arithmetic, bitwise, shift and logical
// binary operators lowered to a BinaryInstr.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	And
	Or
	BitAnd
	BitOr
	BitXor
	Shl
	Shr
)

// BinaryInstr is a two-operand arithmetic, bitwise, shift or logical
// instruction.
type BinaryInstr struct {
	ValueBase
	Op   BinaryOp
	X, Y Operand
}

func (*BinaryInstr) irOperand() {}

// CompareOp is the closed set of comparison operators lowered to a
// CompareInstr.
type CompareOp int

const (
	CmpEq CompareOp = iota
	CmpNeq
	CmpGt
	CmpGe
	CmpLt
	CmpLe
)

// CompareInstr is a two-operand relational instruction.
type CompareInstr struct {
	ValueBase
	Op   CompareOp
	X, Y Operand
}

func (*CompareInstr) irOperand() {}

// UnaryOp is the closed set of unary operators.
type UnaryOp int

const (
	Not UnaryOp = iota
	Neg
	BitNot
)

// UnaryInstr is a single-operand instruction.
type UnaryInstr struct {
	ValueBase
	Op Unary
	X  Operand
}

// Unary aliases UnaryOp.
type Unary = UnaryOp

func (*UnaryInstr) irOperand() {}

// SelectInstr is a ternary conditional.
type SelectInstr struct {
	ValueBase
	Cond, Then, Else Operand
}

func (*SelectInstr) irOperand() {}

// CallKind distinguishes a user-defined call from an intrinsic call, a
// distinction spec.md §9 ("Intrinsic vs user call resolution") asks to be
// kept explicit at the instruction level.
type CallKind int

const (
	// UserCall targets a function present in the lowering core's
	// function table, by its mangled internal name.
	UserCall CallKind = iota
	// IntrinsicCall targets a backend-provided intrinsic by its source
	// name — the call has no entry in the function table.
	IntrinsicCall
	// ConstructorCall targets the synthesized "__init" constructor of an
	// aggregate type.
	ConstructorCall
)

// CallInstr is a function call, user-defined, intrinsic, or constructor.
type CallInstr struct {
	ValueBase
	Kind     CallKind
	Function string
	Args     []Operand
}

func (*CallInstr) irOperand() {}

// MemberAccessInstr reads a single member of an aggregate (struct field
// or array/vector element) selected by a constant or computed index.
type MemberAccessInstr struct {
	ValueBase
	Base      Operand
	Index     Operand
	Attribute string // propagated from Base, see ast.IndexExpr
}

func (*MemberAccessInstr) irOperand() {}

// SwizzleInstr extracts a swizzle of a vector operand, e.g. ".xyz".
type SwizzleInstr struct {
	ValueBase
	Operand       Operand
	SwizzleString string
}

func (*SwizzleInstr) irOperand() {}

// StoreInstr stores Value into Dest. It has no useful result type of its
// own (Void) but is still an Operand so it can sit in a CodeNode like any
// other instruction.
type StoreInstr struct {
	ValueBase
	Dest  Operand
	Value Operand
}

func (*StoreInstr) irOperand() {}

// ReturnInstr returns from the enclosing function, optionally carrying a
// result operand (nil for a void return).
type ReturnInstr struct {
	ValueBase
	Result Operand
}

func (*ReturnInstr) irOperand() {}

// YieldInstr carries the value produced by a condition CodeNode (the
// while/do-while "condition code" described in spec.md §4.6) back to the
// structured instruction that owns it. Renamed from the source's reuse of
// ReturnInstruction for this purpose, per spec.md §9's third open
// question: a condition region does not "return" from the function, it
// yields a value to its owning structured instruction.
type YieldInstr struct {
	ValueBase
	Result Operand
}

func (*YieldInstr) irOperand() {}

// BreakInstr, ContinueInstr and DiscardInstr are zero-operand control
// instructions.
type BreakInstr struct{ ValueBase }
type ContinueInstr struct{ ValueBase }
type DiscardInstr struct{ ValueBase }

func (*BreakInstr) irOperand()    {}
func (*ContinueInstr) irOperand() {}
func (*DiscardInstr) irOperand()  {}

// IfInstr is a structured conditional.
type IfInstr struct {
	ValueBase
	Cond      Operand
	TrueCode  *CodeNode
	FalseCode *CodeNode // nil if there is no else branch
}

func (*IfInstr) irOperand() {}

// WhileInstr is a structured pre-test loop. ConditionCode ends with a
// YieldInstr carrying the loop predicate.
type WhileInstr struct {
	ValueBase
	ConditionCode *CodeNode
	BodyCode      *CodeNode
}

func (*WhileInstr) irOperand() {}

// DoInstr is a structured post-test loop. ConditionCode ends with a
// YieldInstr carrying the loop predicate.
type DoInstr struct {
	ValueBase
	ConditionCode *CodeNode
	BodyCode      *CodeNode
}

func (*DoInstr) irOperand() {}

// ForInstr is a structured C-style loop. ConditionCode and SideEffectCode
// are nil when the corresponding clause was absent in the source.
type ForInstr struct {
	ValueBase
	ConditionCode  *CodeNode
	SideEffectCode *CodeNode
	BodyCode       *CodeNode
}

func (*ForInstr) irOperand() {}
