package js_ast

// Structural equality over the node subset. Source locations are ignored so
// that a freshly synthesized statement compares equal to one that was spliced
// in earlier.

func StmtsEqual(a Stmt, b Stmt) bool {
	switch ad := a.Data.(type) {
	case *SBlock:
		bd, ok := b.Data.(*SBlock)
		return ok && stmtSlicesEqual(ad.Stmts, bd.Stmts)

	case *SEmpty:
		_, ok := b.Data.(*SEmpty)
		return ok

	case *SExpr:
		bd, ok := b.Data.(*SExpr)
		return ok && ExprsEqual(ad.Value, bd.Value)

	case *SThrow:
		bd, ok := b.Data.(*SThrow)
		return ok && ExprsEqual(ad.Value, bd.Value)

	case *SLocal:
		bd, ok := b.Data.(*SLocal)
		if !ok || ad.Kind != bd.Kind || len(ad.Decls) != len(bd.Decls) {
			return false
		}
		for i, decl := range ad.Decls {
			if !declsEqual(decl, bd.Decls[i]) {
				return false
			}
		}
		return true
	}

	return false
}

func ExprsEqual(a Expr, b Expr) bool {
	switch ad := a.Data.(type) {
	case *EArray:
		bd, ok := b.Data.(*EArray)
		return ok && exprSlicesEqual(ad.Items, bd.Items)

	case *EBinary:
		bd, ok := b.Data.(*EBinary)
		return ok && ad.Op == bd.Op && ExprsEqual(ad.Left, bd.Left) && ExprsEqual(ad.Right, bd.Right)

	case *EBoolean:
		bd, ok := b.Data.(*EBoolean)
		return ok && ad.Value == bd.Value

	case *ECall:
		bd, ok := b.Data.(*ECall)
		return ok && ExprsEqual(ad.Target, bd.Target) && exprSlicesEqual(ad.Args, bd.Args)

	case *EDot:
		bd, ok := b.Data.(*EDot)
		return ok && ad.Name == bd.Name && ExprsEqual(ad.Target, bd.Target)

	case *EIdentifier:
		bd, ok := b.Data.(*EIdentifier)
		return ok && ad.Name == bd.Name

	case *EIf:
		bd, ok := b.Data.(*EIf)
		return ok && ExprsEqual(ad.Test, bd.Test) && ExprsEqual(ad.Yes, bd.Yes) && ExprsEqual(ad.No, bd.No)

	case *ENew:
		bd, ok := b.Data.(*ENew)
		return ok && ExprsEqual(ad.Target, bd.Target) && exprSlicesEqual(ad.Args, bd.Args)

	case *ENumber:
		bd, ok := b.Data.(*ENumber)
		return ok && ad.Value == bd.Value

	case *EString:
		bd, ok := b.Data.(*EString)
		return ok && ad.Value == bd.Value

	case *EAwait:
		bd, ok := b.Data.(*EAwait)
		return ok && ExprsEqual(ad.Value, bd.Value)

	case *EArrow:
		bd, ok := b.Data.(*EArrow)
		if !ok || len(ad.Args) != len(bd.Args) {
			return false
		}
		for i, arg := range ad.Args {
			if !bindingsEqual(arg.Binding, bd.Args[i].Binding) {
				return false
			}
		}
		return stmtSlicesEqual(ad.Body.Stmts, bd.Body.Stmts)
	}

	return false
}

func declsEqual(a Decl, b Decl) bool {
	if !bindingsEqual(a.Binding, b.Binding) {
		return false
	}
	if (a.Value == nil) != (b.Value == nil) {
		return false
	}
	return a.Value == nil || ExprsEqual(*a.Value, *b.Value)
}

func bindingsEqual(a Binding, b Binding) bool {
	switch ad := a.Data.(type) {
	case *BIdentifier:
		bd, ok := b.Data.(*BIdentifier)
		return ok && ad.Name == bd.Name
	}
	return false
}

func exprSlicesEqual(a []Expr, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i, expr := range a {
		if !ExprsEqual(expr, b[i]) {
			return false
		}
	}
	return true
}

func stmtSlicesEqual(a []Stmt, b []Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i, stmt := range a {
		if !StmtsEqual(stmt, b[i]) {
			return false
		}
	}
	return true
}
