package ast

// This file contains data structures that describe how an import was written
// in the source. The resolver and the code generator both care about this
// metadata, so it lives in its own package that everything can import.

type ImportKind uint8

const (
	// An entry point provided by the user
	ImportEntryPoint ImportKind = iota

	// An ES6 import or re-export statement
	ImportStmt

	// A call to "require()"
	ImportRequire

	// An "import()" expression with a string argument
	ImportDynamic

	// A "new URL(..., import.meta.url)" expression
	ImportURL
)

func (kind ImportKind) String() string {
	switch kind {
	case ImportEntryPoint:
		return "entry-point"
	case ImportStmt:
		return "import-statement"
	case ImportRequire:
		return "require-call"
	case ImportDynamic:
		return "dynamic-import"
	case ImportURL:
		return "url-token"
	default:
		panic("Internal error")
	}
}
