package lower

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/shaderlang/ilgen/ast"
)

// Kind is the closed set of fatal error categories the lowering core can
// raise, per spec.md §7.
type Kind int

const (
	// NotImplemented means the input tree contains a shape this core does
	// not yet translate.
	NotImplemented Kind = iota
	// UnresolvedIdentifier means a VarExpr name resolved to nothing in
	// scope and no implicit receiver field matched it either.
	UnresolvedIdentifier
	// InvalidProgram means the tree violates an invariant the producer
	// (semantic analysis) was supposed to guarantee.
	InvalidProgram
	// Assertion means an internal invariant of this core itself failed —
	// a bug in the lowering core, not the input.
	Assertion
)

func (k Kind) String() string {
	switch k {
	case NotImplemented:
		return "not-implemented"
	case UnresolvedIdentifier:
		return "unresolved-identifier"
	case InvalidProgram:
		return "invalid-program"
	case Assertion:
		return "assertion"
	default:
		return "unknown"
	}
}

// Error is a fatal lowering error: every error the lowering core raises
// is one of these, wrapped with github.com/pkg/errors so callers get a
// stack trace at the point of origin, matching the teacher's Errorf
// idiom in lower/error.go.
type Error struct {
	Kind Kind
	Pos  ast.Position
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.err)
}

func (e *Error) Unwrap() error { return e.err }

// errorf constructs an *Error of the given kind, wrapping a
// github.com/pkg/errors-formatted message so %+v on the returned error
// prints a stack trace.
func errorf(kind Kind, pos ast.Position, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, err: errors.Errorf(format, args...)}
}

// fail panics with an *Error. Lowering functions call this instead of
// returning an error so that deeply nested recursive descent doesn't
// have to thread an error return through every call — Lower's single
// recover point at the top of the driver turns the panic back into a
// normal error return, generalizing the teacher's Generator.eh callback
// boundary in lower/gen.go to a panic/recover pair since this core's
// lowering functions return a bare ir.Operand rather than taking an
// error-handler closure.
func fail(kind Kind, pos ast.Position, format string, args ...interface{}) {
	panic(errorf(kind, pos, format, args...))
}

// recoverError turns a panic raised by fail back into a normal error
// return. Any other panic value is re-raised: only *Error panics are
// part of this core's control-flow contract.
func recoverError(errp *error) {
	if r := recover(); r != nil {
		if e, ok := r.(*Error); ok {
			*errp = e
			return
		}
		panic(r)
	}
}
