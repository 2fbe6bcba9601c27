package linker

// Computes the chunk-wide async fixed point: which modules have to be
// evaluated asynchronously. A module is async if it is async on its own
// (top-level await, or an ESM-imported external) or if anything it eagerly
// imports is async. The result feeds chunk.AsyncModuleInfo, which the code
// generator consumes but never computes.

import (
	"github.com/tpack/tpack/internal/chunk"
	"github.com/tpack/tpack/internal/esm"
	"github.com/tpack/tpack/internal/resolver"
)

func ComputeAsyncModuleInfo(ctx chunk.ChunkingContext, res resolver.Resolver, modules []*esm.AsyncModule) (*chunk.AsyncModuleInfo, error) {
	async := make(map[chunk.ChunkableModule]bool, len(modules))
	for _, module := range modules {
		selfAsync, err := module.IsSelfAsync(res)
		if err != nil {
			return nil, err
		}
		async[module.Placeable] = selfAsync
	}

	// Async-ness flows backwards along eagerly-imported edges: importing an
	// async module makes the importer async. References excluded from
	// chunking don't create an edge.
	type edge struct {
		from chunk.ChunkableModule
		to   chunk.ChunkableModule
	}
	var edges []edge
	for _, module := range modules {
		for _, ref := range module.References {
			policy, err := ref.ChunkingPolicy()
			if err != nil {
				return nil, err
			}
			if policy == esm.ChunkingExcluded {
				continue
			}
			asset, err := ref.ReferencedAsset(res)
			if err != nil {
				return nil, err
			}
			if target, ok := asset.(*esm.ReferencedModule); ok {
				edges = append(edges, edge{from: module.Placeable, to: target.Module})
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for _, e := range edges {
			if async[e.to] && !async[e.from] {
				async[e.from] = true
				changed = true
			}
		}
	}

	// Materialize chunk items in module order so the result is deterministic
	var items []chunk.ChunkItem
	for _, module := range modules {
		if async[module.Placeable] {
			items = append(items, module.Placeable.AsChunkItem(ctx))
		}
	}
	return chunk.NewAsyncModuleInfo(items...), nil
}
