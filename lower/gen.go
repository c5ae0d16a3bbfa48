package lower

import (
	"strconv"

	"github.com/shaderlang/ilgen/ast"
	"github.com/shaderlang/ilgen/config"
	"github.com/shaderlang/ilgen/diagnostic"
	"github.com/shaderlang/ilgen/ir"
	"github.com/shaderlang/ilgen/scope"
)

// Generator keeps track of top-level entities while lowering a
// type-checked ast.Program to an ir.Program, the same role the
// teacher's Generator plays lowering Go AST to LLVM IR — a single
// mutable object threading the in-progress module, a scope table and a
// diagnostic sink through every lowering function.
type Generator struct {
	prog *ast.Program
	opts *config.CompileOptions
	sink diagnostic.Sink

	out *ir.Program

	// structCache memoizes *ir.StructType by declaration identity (plus
	// generic substitution), guaranteeing at most one IR struct type per
	// distinct ast.AggDecl, per spec.md §3 and §4.1.
	structCache map[structCacheKey]*ir.StructType

	// funcTable maps an ast.FuncDecl to the already-emitted ir.Function
	// header for it, populated by the header phase ahead of any body
	// lowering so calls can resolve forward references, mirroring the
	// teacher's two-phase indexPackage/lowerPackage split in
	// lower/index.go and lower/lower.go.
	funcTable map[*ast.FuncDecl]*ir.Function

	scopes *scope.Table
	writer *ir.CodeWriter

	// entryPointNames is opts.EntryPointNames(), computed once so the
	// body phase doesn't rebuild the set per function.
	entryPointNames map[string]bool

	// receiver is the FetchArg bound to the implicit `this` parameter of
	// the member function currently being lowered, or nil outside one.
	receiver *ir.FetchArg
	// receiverType is the struct type of receiver, needed to resolve an
	// unqualified name against the receiver's fields.
	receiverType *ir.StructType
}

// structCacheKey identifies a struct-type cache entry: the declaration
// plus whatever generic substitution was applied to it, per
// ast.NamedType's documented cache-identity contract.
type structCacheKey struct {
	decl  ast.AggDecl
	subst string
}

// NewGenerator returns a generator ready to lower prog under opts,
// reporting diagnostics to sink.
func NewGenerator(prog *ast.Program, opts *config.CompileOptions, sink diagnostic.Sink) *Generator {
	if opts == nil {
		opts = &config.CompileOptions{}
	}
	if sink == nil {
		sink = diagnostic.DiscardSink{}
	}
	out := ir.NewProgram()
	gen := &Generator{
		prog:        prog,
		opts:        opts,
		sink:        sink,
		out:         out,
		structCache: make(map[structCacheKey]*ir.StructType),
		funcTable:   make(map[*ast.FuncDecl]*ir.Function),
		scopes:      scope.New(),
	}
	gen.entryPointNames = opts.EntryPointNames()
	gen.writer = ir.NewCodeWriter(gen.newGlobal)
	return gen
}

// newGlobal synthesizes a fresh, anonymous module-scope global of type
// t. The code writer calls it when AllocVar runs with no code node
// open; explicit top-level variables and synthesized bindable-resource
// globals are created under their own names in lower.go instead.
func (g *Generator) newGlobal(t ir.Type) ir.Operand {
	name := freshGlobalName(len(g.out.Globals))
	gv := &ir.GlobalVar{ValueBase: ir.ValueBase{Typ: t}, Name: name}
	g.out.Globals[name] = gv
	return gv
}

func freshGlobalName(n int) string {
	return "g$" + strconv.Itoa(n)
}
