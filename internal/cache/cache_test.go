package cache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tpack/tpack/internal/modgraph"
	"github.com/tpack/tpack/internal/resolver"
)

type countingResolver struct {
	inner resolver.Resolver
	calls int
}

func (r *countingResolver) ResolveESM(origin resolver.ResolveOrigin, request resolver.Request, part *resolver.ModulePart, issue *resolver.IssueSource) (resolver.ResolveResult, error) {
	r.calls++
	return r.inner.ResolveESM(origin, request, part, issue)
}

func testSetup() (*countingResolver, *ResolveCache) {
	inner := modgraph.NewResolver()
	inner.Externals["fs"] = true
	counting := &countingResolver{inner: inner}
	return counting, NewResolveCache(counting)
}

func TestResolveCacheMemoizes(t *testing.T) {
	counting, cache := testSetup()
	origin := modgraph.Origin{Path: "a"}
	request := resolver.Request{Specifier: "fs"}

	first, err := cache.ResolveESM(origin, request, nil, nil)
	require.NoError(t, err)
	second, err := cache.ResolveESM(origin, request, nil, nil)
	require.NoError(t, err)

	require.Equal(t, 1, counting.calls)
	require.Equal(t, first, second)
	require.False(t, first.IsUnresolvable())
}

func TestResolveCacheKeysAreStructural(t *testing.T) {
	counting, cache := testSetup()
	request := resolver.Request{Specifier: "fs"}

	_, err := cache.ResolveESM(modgraph.Origin{Path: "a"}, request, nil, nil)
	require.NoError(t, err)

	// A different origin is a different key
	_, err = cache.ResolveESM(modgraph.Origin{Path: "b"}, request, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 2, counting.calls)

	// So is the same origin through a transition
	_, err = cache.ResolveESM(modgraph.Origin{Path: "a", Transition: "ssr"}, request, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 3, counting.calls)

	// And a named-export part
	_, err = cache.ResolveESM(modgraph.Origin{Path: "a"}, request, &resolver.ModulePart{Export: "x"}, nil)
	require.NoError(t, err)
	require.Equal(t, 4, counting.calls)

	// An empty part is distinct from no part
	_, err = cache.ResolveESM(modgraph.Origin{Path: "a"}, request, &resolver.ModulePart{}, nil)
	require.NoError(t, err)
	require.Equal(t, 5, counting.calls)
}

func TestResolveCacheInvalidate(t *testing.T) {
	counting, cache := testSetup()
	origin := modgraph.Origin{Path: "a"}
	request := resolver.Request{Specifier: "fs"}

	_, err := cache.ResolveESM(origin, request, nil, nil)
	require.NoError(t, err)
	cache.Invalidate()
	_, err = cache.ResolveESM(origin, request, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 2, counting.calls)
}
