package js_printer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tpack/tpack/internal/js_ast"
)

// Re-emits a program body as source text. The output for synthesized runtime
// statements is part of the runtime ABI, so the formatting here (spacing,
// quoting, parenthesization) must stay stable.

// Operator precedence level, used to decide when an expression has to be
// wrapped in parentheses
type L uint8

const (
	LLowest L = iota
	LComma
	LAssign
	LConditional
	LPrefix
	LPostfix
	LCall
)

type printer struct {
	js []byte
}

func (p *printer) print(text string) {
	p.js = append(p.js, text...)
}

func (p *printer) printQuoted(text string) {
	p.js = append(p.js, '"')
	for _, c := range text {
		switch c {
		case '\\':
			p.print("\\\\")
		case '"':
			p.print("\\\"")
		case '\n':
			p.print("\\n")
		case '\r':
			p.print("\\r")
		case '\t':
			p.print("\\t")
		case '\b':
			p.print("\\b")
		case '\f':
			p.print("\\f")
		case '\v':
			p.print("\\v")
		case ' ':
			p.print("\\u2028")
		case ' ':
			p.print("\\u2029")
		default:
			if c < 0x20 {
				p.print(fmt.Sprintf("\\u%04x", c))
			} else {
				p.js = append(p.js, string(c)...)
			}
		}
	}
	p.js = append(p.js, '"')
}

func (p *printer) printNumber(value float64) {
	if value == math.Trunc(value) && math.Abs(value) < 1e21 {
		p.print(strconv.FormatFloat(value, 'f', 0, 64))
	} else {
		p.print(strconv.FormatFloat(value, 'g', -1, 64))
	}
}

func (p *printer) printExpr(expr js_ast.Expr, level L) {
	switch e := expr.Data.(type) {
	case *js_ast.EIdentifier:
		p.print(e.Name)

	case *js_ast.EString:
		p.printQuoted(e.Value)

	case *js_ast.ENumber:
		p.printNumber(e.Value)

	case *js_ast.EBoolean:
		if e.Value {
			p.print("true")
		} else {
			p.print("false")
		}

	case *js_ast.EArray:
		p.print("[")
		for i, item := range e.Items {
			if i != 0 {
				p.print(", ")
			}
			p.printExpr(item, LComma)
		}
		p.print("]")

	case *js_ast.EDot:
		p.printExpr(e.Target, LPostfix)
		p.print(".")
		p.print(e.Name)

	case *js_ast.ECall:
		p.printExpr(e.Target, LPostfix)
		p.print("(")
		for i, arg := range e.Args {
			if i != 0 {
				p.print(", ")
			}
			p.printExpr(arg, LComma)
		}
		p.print(")")

	case *js_ast.ENew:
		p.print("new ")
		p.printExpr(e.Target, LCall)
		p.print("(")
		for i, arg := range e.Args {
			if i != 0 {
				p.print(", ")
			}
			p.printExpr(arg, LComma)
		}
		p.print(")")

	case *js_ast.EAwait:
		wrap := level >= LPrefix
		if wrap {
			p.print("(")
		}
		p.print("await ")
		p.printExpr(e.Value, LPrefix)
		if wrap {
			p.print(")")
		}

	case *js_ast.EIf:
		wrap := level >= LConditional
		if wrap {
			p.print("(")
		}
		p.printExpr(e.Test, LConditional)
		p.print(" ? ")
		p.printExpr(e.Yes, LComma)
		p.print(" : ")
		p.printExpr(e.No, LComma)
		if wrap {
			p.print(")")
		}

	case *js_ast.EBinary:
		wrap := level > LAssign
		if wrap {
			p.print("(")
		}
		p.printExpr(e.Left, LAssign)
		p.print(" ")
		p.print(e.Op.String())
		p.print(" ")
		p.printExpr(e.Right, LComma)
		if wrap {
			p.print(")")
		}

	case *js_ast.EArrow:
		wrap := level > LAssign
		if wrap {
			p.print("(")
		}
		p.print("(")
		for i, arg := range e.Args {
			if i != 0 {
				p.print(", ")
			}
			p.printBinding(arg.Binding)
		}
		p.print(") => ")
		p.printInlineBlock(e.Body.Stmts)
		if wrap {
			p.print(")")
		}

	default:
		panic("Internal error")
	}
}

func (p *printer) printBinding(binding js_ast.Binding) {
	switch b := binding.Data.(type) {
	case *js_ast.BIdentifier:
		p.print(b.Name)
	default:
		panic("Internal error")
	}
}

func (p *printer) printInlineBlock(stmts []js_ast.Stmt) {
	if len(stmts) == 0 {
		p.print("{}")
		return
	}
	p.print("{ ")
	for i, stmt := range stmts {
		if i != 0 {
			p.print(" ")
		}
		p.printStmt(stmt)
	}
	p.print(" }")
}

func (p *printer) printStmt(stmt js_ast.Stmt) {
	switch s := stmt.Data.(type) {
	case *js_ast.SEmpty:
		p.print(";")

	case *js_ast.SExpr:
		p.printExpr(s.Value, LLowest)
		p.print(";")

	case *js_ast.SThrow:
		p.print("throw ")
		p.printExpr(s.Value, LLowest)
		p.print(";")

	case *js_ast.SLocal:
		switch s.Kind {
		case js_ast.LocalVar:
			p.print("var ")
		case js_ast.LocalLet:
			p.print("let ")
		case js_ast.LocalConst:
			p.print("const ")
		}
		for i, decl := range s.Decls {
			if i != 0 {
				p.print(", ")
			}
			p.printBinding(decl.Binding)
			if decl.Value != nil {
				p.print(" = ")
				p.printExpr(*decl.Value, LComma)
			}
		}
		p.print(";")

	case *js_ast.SBlock:
		p.printInlineBlock(s.Stmts)

	default:
		panic("Internal error")
	}
}

func Print(program *js_ast.Program) []byte {
	p := printer{}
	for _, stmt := range program.Stmts {
		p.printStmt(stmt)
		p.print("\n")
	}
	return p.js
}

func PrintStmt(stmt js_ast.Stmt) []byte {
	p := printer{}
	p.printStmt(stmt)
	return p.js
}
