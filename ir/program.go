package ir

import (
	"fmt"
	"strings"

	"github.com/rickypai/natsort"
)

// CodeNode is an ordered sequence of instructions. Instructions that
// represent structured control flow embed further CodeNodes (IfInstr,
// WhileInstr, DoInstr, ForInstr).
type CodeNode struct {
	Instrs []Operand
}

// NewCodeNode returns an empty code node.
func NewCodeNode() *CodeNode { return &CodeNode{} }

// Function is a lowered function: its internal (mangled) name, return
// type, ordered parameter list, and body.
type Function struct {
	InternalName string
	ReturnType   Type
	Params       []Param
	Body         *CodeNode
}

// Program is the sole observable output of a lowering run: global
// variables, aggregate-type descriptors, a constant pool, and a
// collection of named functions.
type Program struct {
	Structs   []*StructType
	Functions map[string]*Function
	Globals   map[string]*GlobalVar
	Constants *ConstantPool
}

// NewProgram returns an empty program ready to be populated by the
// lowering core.
func NewProgram() *Program {
	return &Program{
		Functions: make(map[string]*Function),
		Globals:   make(map[string]*GlobalVar),
		Constants: NewConstantPool(),
	}
}

// Summary renders a naturally-sorted listing of the program's structs,
// globals and functions — the Go-native generalization of the teacher's
// natsort.Strings(typeNames) pass before emission (there it sorted only
// type-definition names; here every named collection is sorted the same
// way) so callers get a deterministic, human-ordered dump for snapshot
// tests and CLI output.
func (p *Program) Summary() string {
	var structNames, globalNames, funcNames []string
	for _, s := range p.Structs {
		structNames = append(structNames, s.Name)
	}
	for name := range p.Globals {
		globalNames = append(globalNames, name)
	}
	for name := range p.Functions {
		funcNames = append(funcNames, name)
	}
	natsort.Strings(structNames)
	natsort.Strings(globalNames)
	natsort.Strings(funcNames)

	var b strings.Builder
	fmt.Fprintf(&b, "structs (%d):\n", len(structNames))
	for _, n := range structNames {
		fmt.Fprintf(&b, "  %s\n", n)
	}
	fmt.Fprintf(&b, "globals (%d):\n", len(globalNames))
	for _, n := range globalNames {
		fmt.Fprintf(&b, "  %s %s\n", n, p.Globals[n].Type())
	}
	fmt.Fprintf(&b, "functions (%d):\n", len(funcNames))
	for _, n := range funcNames {
		f := p.Functions[n]
		fmt.Fprintf(&b, "  %s -> %s\n", n, f.ReturnType)
	}
	return b.String()
}
