package resolver

// The code generator never resolves import specifiers itself. It describes
// what it wants resolved (a Request from some origin) and consumes the
// resolver's ordered answer. Concrete resolvers live elsewhere; the modgraph
// package has a table-driven one and production callers are expected to wrap
// theirs in the memoizing cache package.

import (
	"github.com/tpack/tpack/internal/ast"
	"github.com/tpack/tpack/internal/chunk"
	"github.com/tpack/tpack/internal/logger"
)

// Request is one import specifier as written in the source, plus how it was
// written. Requests are immutable.
type Request struct {
	Specifier string
	Kind      ast.ImportKind
}

func (r Request) String() string {
	return r.Specifier
}

// ModulePart restricts an import to a single named export of the target, for
// modules that were split per export.
type ModulePart struct {
	Export string
}

// ResolveOrigin is the module a request was written in. Resolution can go
// through a named transition, which swaps the resolve options the origin
// uses.
type ResolveOrigin interface {
	OriginIdent() string
	WithTransition(name string) ResolveOrigin
}

// IssueSource points a resolve diagnostic back at the import that caused it.
type IssueSource struct {
	Source *logger.Source
	Range  logger.Range
}

// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type ResultItem interface{ isResultItem() }

// ModuleResult is a request that resolved to a module in the graph.
type ModuleResult struct {
	Module chunk.Module
}

// ExternalResult is a request that stays unbundled on purpose and is loaded
// through the host's module system at run time. Request is the literal
// specifier to load.
type ExternalResult struct {
	Request string
}

// IgnoreResult is a request that was deliberately mapped to nothing.
type IgnoreResult struct{}

// UnresolvableResult is a request the resolver could not map to anything.
type UnresolvableResult struct{}

func (*ModuleResult) isResultItem()       {}
func (*ExternalResult) isResultItem()     {}
func (*IgnoreResult) isResultItem()       {}
func (*UnresolvableResult) isResultItem() {}

// KeyedResult is one entry of a resolve answer. Import maps can produce
// several keyed entries for a single request.
type KeyedResult struct {
	Key  string
	Item ResultItem
}

// ResolveResult is the resolver's ordered answer for one request.
type ResolveResult struct {
	Primary []KeyedResult
}

// IsUnresolvable reports whether the answer contains nothing usable: no
// entries at all, or only unresolvable markers.
func (r ResolveResult) IsUnresolvable() bool {
	for _, entry := range r.Primary {
		if _, ok := entry.Item.(*UnresolvableResult); !ok {
			return false
		}
	}
	return true
}

type Resolver interface {
	// ResolveESM resolves one ES module import. The answer must be a pure
	// function of the arguments so results can be memoized; issue is only
	// used to attach locations to diagnostics.
	ResolveESM(origin ResolveOrigin, request Request, part *ModulePart, issue *IssueSource) (ResolveResult, error)
}
