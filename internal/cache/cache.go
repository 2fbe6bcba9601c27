package cache

// This is a cache of resolver answers. Code generation resolves the same
// reference several times per run (classification, async propagation, and
// code synthesis each start from the resolve result), and all of those calls
// are pure functions of the reference's fields, so the answer can be shared.
// Invalidation is coarse: when anything upstream of the resolver changes,
// drop everything and re-resolve on demand.
//
// Keys are built from the structural identity of the arguments. That only
// works if distinct origins report distinct idents, including origins that
// went through a transition.

import (
	"sync"

	"github.com/tpack/tpack/internal/ast"
	"github.com/tpack/tpack/internal/resolver"
)

type resolveKey struct {
	origin    string
	specifier string
	kind      ast.ImportKind
	part      string
	hasPart   bool
}

type ResolveCache struct {
	inner   resolver.Resolver
	mutex   sync.Mutex
	entries map[resolveKey]resolver.ResolveResult
}

func NewResolveCache(inner resolver.Resolver) *ResolveCache {
	return &ResolveCache{
		inner:   inner,
		entries: make(map[resolveKey]resolver.ResolveResult),
	}
}

func (c *ResolveCache) ResolveESM(origin resolver.ResolveOrigin, request resolver.Request, part *resolver.ModulePart, issue *resolver.IssueSource) (resolver.ResolveResult, error) {
	key := resolveKey{
		origin:    origin.OriginIdent(),
		specifier: request.Specifier,
		kind:      request.Kind,
	}
	if part != nil {
		key.part = part.Export
		key.hasPart = true
	}

	c.mutex.Lock()
	if entry, ok := c.entries[key]; ok {
		c.mutex.Unlock()
		return entry, nil
	}
	c.mutex.Unlock()

	// Resolve outside the lock. Concurrent misses for the same key do
	// redundant work but agree on the result.
	result, err := c.inner.ResolveESM(origin, request, part, issue)
	if err != nil {
		return resolver.ResolveResult{}, err
	}

	c.mutex.Lock()
	c.entries[key] = result
	c.mutex.Unlock()
	return result, nil
}

// Invalidate drops every cached answer. Call it whenever an upstream input
// of the resolver may have changed.
func (c *ResolveCache) Invalidate() {
	c.mutex.Lock()
	c.entries = make(map[resolveKey]resolver.ResolveResult)
	c.mutex.Unlock()
}
