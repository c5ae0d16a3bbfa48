// Package ast defines the type-checked program tree consumed by the
// lowering core. It stands in for the output of the (out of scope)
// lexing, parsing and semantic-analysis phases: by the time a *Program
// reaches the lower package, every expression already carries a resolved
// Type and every reference is already resolved to the declaration it names.
package ast

// Position identifies a location in source text.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return "<unknown>"
	}
	return p.File
}

// Program is the top-level syntax tree handed to the lowering core.
type Program struct {
	Structs   []*StructDecl
	Classes   []*ClassDecl
	Functions []*FuncDecl
	Variables []*VarDecl
}

// AggDecl is implemented by declarations that introduce an aggregate
// (struct or class) type: the common surface the type translator needs.
type AggDecl interface {
	AggName() string
	AggFields() []*FieldDecl
	IsIntrinsic() bool
	IsFromStdLib() bool
}

// StructDecl declares a plain aggregate type with no member functions.
type StructDecl struct {
	Name       string
	Fields     []*FieldDecl
	Intrinsic  bool
	FromStdLib bool
}

func (s *StructDecl) AggName() string          { return s.Name }
func (s *StructDecl) AggFields() []*FieldDecl  { return s.Fields }
func (s *StructDecl) IsIntrinsic() bool        { return s.Intrinsic }
func (s *StructDecl) IsFromStdLib() bool       { return s.FromStdLib }

// ClassDecl declares an aggregate type with member functions. Classes are
// lowered to IR struct types; their methods gain an implicit receiver.
type ClassDecl struct {
	Name       string
	Fields     []*FieldDecl
	Methods    []*FuncDecl
	Intrinsic  bool
	FromStdLib bool
}

func (c *ClassDecl) AggName() string         { return c.Name }
func (c *ClassDecl) AggFields() []*FieldDecl { return c.Fields }
func (c *ClassDecl) IsIntrinsic() bool       { return c.Intrinsic }
func (c *ClassDecl) IsFromStdLib() bool      { return c.FromStdLib }

// FieldDecl is a single member of a struct or class.
type FieldDecl struct {
	Name string
	Type Type
}

// ParamDirection is the passing convention of a function parameter.
type ParamDirection int

const (
	In ParamDirection = iota
	Out
	InOut
)

// ParamDecl is a single function parameter.
type ParamDecl struct {
	Name      string
	Type      Type
	Direction ParamDirection
}

// FuncDecl declares a free function or, when Owner is non-nil, a class
// member function.
type FuncDecl struct {
	Name       string
	Params     []*ParamDecl
	ReturnType Type
	Body       *BlockStmt

	Owner *ClassDecl // nil for free functions

	// IsConstructor marks f as the constructor of OwnerType — either a
	// user-written class constructor or a synthesized constructor for a
	// builtin aggregate (e.g. a vector type's component constructor).
	IsConstructor bool
	OwnerType     Type

	Intrinsic  bool
	FromStdLib bool

	// InternalName is populated by the lowering core's header phase and
	// read back by later phases (and, in a full compiler, the backend).
	InternalName string

	Pos Position
}

// VarDecl declares a top-level (global) variable.
type VarDecl struct {
	Name       string
	Type       Type
	Init       Expr
	Intrinsic  bool
	FromStdLib bool
	Pos        Position
}
