package js_ast

import (
	"github.com/tpack/tpack/internal/logger"
)

// This is the subset of a JavaScript syntax tree that synthesized runtime
// statements are built out of. Parsing arbitrary source into these nodes is
// someone else's job; this package only has to represent program bodies well
// enough for statements to be spliced in and printed back out.

type Expr struct {
	Loc  logger.Loc
	Data E
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type E interface{ isExpr() }

type EArray struct {
	Items []Expr
}

type EBinary struct {
	Op    OpCode
	Left  Expr
	Right Expr
}

type EBoolean struct{ Value bool }

type ECall struct {
	Target Expr
	Args   []Expr
}

type EDot struct {
	Target  Expr
	Name    string
	NameLoc logger.Loc
}

type EIdentifier struct {
	Name string
}

type EIf struct {
	Test Expr
	Yes  Expr
	No   Expr
}

type ENew struct {
	Target Expr
	Args   []Expr
}

type ENumber struct{ Value float64 }

type EString struct {
	Value string
}

type EAwait struct {
	Value Expr
}

type EArrow struct {
	Args []Arg
	Body FnBody
}

type Arg struct {
	Binding Binding
}

type FnBody struct {
	Loc   logger.Loc
	Stmts []Stmt
}

func (*EArray) isExpr()      {}
func (*EBinary) isExpr()     {}
func (*EBoolean) isExpr()    {}
func (*ECall) isExpr()       {}
func (*EDot) isExpr()        {}
func (*EIdentifier) isExpr() {}
func (*EIf) isExpr()         {}
func (*ENew) isExpr()        {}
func (*ENumber) isExpr()     {}
func (*EString) isExpr()     {}
func (*EAwait) isExpr()      {}
func (*EArrow) isExpr()      {}

type OpCode uint8

const (
	BinOpAssign OpCode = iota
	BinOpComma
)

func (op OpCode) String() string {
	switch op {
	case BinOpAssign:
		return "="
	case BinOpComma:
		return ","
	default:
		panic("Internal error")
	}
}

type Stmt struct {
	Loc  logger.Loc
	Data S
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type S interface{ isStmt() }

type SBlock struct {
	Stmts []Stmt
}

type SEmpty struct{}

type SExpr struct {
	Value Expr
}

type SThrow struct {
	Value Expr
}

type LocalKind uint8

const (
	LocalVar LocalKind = iota
	LocalLet
	LocalConst
)

type SLocal struct {
	Decls []Decl
	Kind  LocalKind
}

func (*SBlock) isStmt() {}
func (*SEmpty) isStmt() {}
func (*SExpr) isStmt()  {}
func (*SThrow) isStmt() {}
func (*SLocal) isStmt() {}

type Decl struct {
	Binding Binding
	Value   *Expr
}

type Binding struct {
	Loc  logger.Loc
	Data B
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type B interface{ isBinding() }

type BIdentifier struct {
	Name string
}

func (*BIdentifier) isBinding() {}

type ProgramKind uint8

const (
	// An ES module body. Hoisted statements keep a marker here and get
	// deduplicated against everything before it.
	ProgramModule ProgramKind = iota

	// A classic script body
	ProgramScript
)

type Program struct {
	Kind  ProgramKind
	Stmts []Stmt
}
