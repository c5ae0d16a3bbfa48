package ast

import "encoding/gob"

// init registers every concrete Type, Expr, Stmt and AggDecl
// implementation with encoding/gob, so a *Program produced by the
// (out of scope) parsing and semantic-analysis front end can be
// handed to this core across a process boundary as a gob stream — the
// serialization format cmd/shaderirc reads.
func init() {
	gob.Register(&BasicType{})
	gob.Register(&VectorType{})
	gob.Register(&MatrixType{})
	gob.Register(&TextureType{})
	gob.Register(&SamplerType{})
	gob.Register(&PointerLikeType{})
	gob.Register(&ArrayType{})
	gob.Register(&NamedType{})

	gob.Register(&ConstExpr{})
	gob.Register(&VarExpr{})
	gob.Register(&IndexExpr{})
	gob.Register(&MemberExpr{})
	gob.Register(&SwizzleExpr{})
	gob.Register(&SelectExpr{})
	gob.Register(&InvokeExpr{})
	gob.Register(&UnaryExpr{})
	gob.Register(&BinaryExpr{})

	gob.Register(&BlockStmt{})
	gob.Register(&DeclStmt{})
	gob.Register(&ExprStmt{})
	gob.Register(&IfStmt{})
	gob.Register(&WhileStmt{})
	gob.Register(&DoWhileStmt{})
	gob.Register(&ForStmt{})
	gob.Register(&ReturnStmt{})
	gob.Register(&BreakStmt{})
	gob.Register(&ContinueStmt{})
	gob.Register(&DiscardStmt{})

	gob.Register(&StructDecl{})
	gob.Register(&ClassDecl{})
}
