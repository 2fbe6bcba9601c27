package modgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tpack/tpack/internal/chunk"
	"github.com/tpack/tpack/internal/resolver"
)

func TestChunkItemsAreStable(t *testing.T) {
	ctx := NewChunkingContext(&Environment{}, false)
	module := &Module{Path: "a"}

	first := module.AsChunkItem(ctx)
	second := module.AsChunkItem(ctx)
	require.Same(t, first, second)
}

func TestNumberIDAssignment(t *testing.T) {
	ctx := NewChunkingContext(&Environment{}, false)
	a := &Module{Path: "a"}
	b := &Module{Path: "b"}

	require.Equal(t, chunk.NumberID(0), a.AsChunkItem(ctx).ID())
	require.Equal(t, chunk.NumberID(1), b.AsChunkItem(ctx).ID())
	require.Equal(t, chunk.NumberID(0), a.AsChunkItem(ctx).ID())
}

func TestStringIDAssignment(t *testing.T) {
	ctx := NewChunkingContext(&Environment{}, true)
	module := &Module{Path: "lib/a.js"}
	require.Equal(t, chunk.StringID("lib/a.js"), module.AsChunkItem(ctx).ID())
}

func TestOriginTransitionChangesIdent(t *testing.T) {
	origin := Origin{Path: "a"}
	require.Equal(t, "a", origin.OriginIdent())

	transitioned := origin.WithTransition("ssr")
	require.Equal(t, "a@ssr", transitioned.OriginIdent())
}

func TestResolverTables(t *testing.T) {
	r := NewResolver()
	module := &Module{Path: "./a.js"}
	r.Modules["./a.js"] = module
	r.Externals["fs"] = true
	r.Ignored["./skip"] = true

	result, err := r.ResolveESM(Origin{Path: "m"}, resolver.Request{Specifier: "./a.js"}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, &resolver.ModuleResult{Module: module}, result.Primary[0].Item)

	result, err = r.ResolveESM(Origin{Path: "m"}, resolver.Request{Specifier: "fs"}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, &resolver.ExternalResult{Request: "fs"}, result.Primary[0].Item)

	result, err = r.ResolveESM(Origin{Path: "m"}, resolver.Request{Specifier: "./skip"}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, &resolver.IgnoreResult{}, result.Primary[0].Item)
	require.False(t, result.IsUnresolvable())

	result, err = r.ResolveESM(Origin{Path: "m"}, resolver.Request{Specifier: "./missing"}, nil, nil)
	require.NoError(t, err)
	require.True(t, result.IsUnresolvable())
}
