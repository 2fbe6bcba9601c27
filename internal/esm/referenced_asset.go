package esm

import (
	"github.com/tpack/tpack/internal/chunk"
	"github.com/tpack/tpack/internal/magic"
	"github.com/tpack/tpack/internal/resolver"
)

// ReferencedAsset is what one static import actually points at once the
// resolver has answered: a module that can be chunked, an external request
// that stays unbundled, or nothing.
//
// This interface is never called. Its purpose is to encode a variant type in
// Go's type system.
type ReferencedAsset interface{ isReferencedAsset() }

type ReferencedModule struct {
	Module chunk.ChunkableModule
}

type ReferencedExternal struct {
	Request string
}

type ReferencedNone struct{}

func (*ReferencedModule) isReferencedAsset()   {}
func (*ReferencedExternal) isReferencedAsset() {}
func (*ReferencedNone) isReferencedAsset()     {}

// ReferencedAssetFromResolveResult classifies a resolve answer by scanning
// its entries in resolver order and honoring the first one that is external
// or resolves to a chunkable module. Ignored entries are skipped. The answer
// is a pure function of the input, so it can be memoized.
func ReferencedAssetFromResolveResult(result resolver.ResolveResult) ReferencedAsset {
	// TODO: honor every keyed entry instead of just the first match
	for _, entry := range result.Primary {
		switch item := entry.Item.(type) {
		case *resolver.ExternalResult:
			return &ReferencedExternal{Request: item.Request}

		case *resolver.ModuleResult:
			if placeable, ok := item.Module.(chunk.ChunkableModule); ok {
				return &ReferencedModule{Module: placeable}
			}
		}
	}
	return &ReferencedNone{}
}

// AssetIdent derives the mangled binding name for a classified asset. There
// is no binding for ReferencedNone.
func AssetIdent(asset ReferencedAsset) (string, bool) {
	switch asset := asset.(type) {
	case *ReferencedModule:
		return ModuleIdent(asset.Module), true
	case *ReferencedExternal:
		return magic.Mangle("external " + asset.Request), true
	}
	return "", false
}

// ModuleIdent is the binding name used for an imported chunkable module.
func ModuleIdent(module chunk.ChunkableModule) string {
	return magic.Mangle("imported module " + module.Ident())
}
