package esm

import (
	"github.com/tpack/tpack/internal/chunk"
	"github.com/tpack/tpack/internal/codegen"
	"github.com/tpack/tpack/internal/js_ast"
	"github.com/tpack/tpack/internal/resolver"
)

// AsyncModuleOptions is what the wrapper-selection logic needs to decide how
// to wrap a compiled module body in an async function.
type AsyncModuleOptions struct {
	HasTopLevelAwait bool
}

// AsyncModule aggregates everything needed to decide whether one module is
// asynchronous: its own top-level await flag plus all of its static import
// references. A module is async if it awaits at the top level or if anything
// it eagerly imports resolves asynchronously.
type AsyncModule struct {
	Placeable chunk.ChunkableModule

	// Distinct references in first-seen order. Use AddReference to keep the
	// set duplicate-free.
	References []*EsmAssetReference

	HasTopLevelAwait bool

	// Whether external modules are imported as ESM at run time. When true,
	// an external import alone makes the module async.
	ImportExternals bool
}

// AddReference appends ref unless an interchangeable reference is already
// present.
func (m *AsyncModule) AddReference(ref *EsmAssetReference) {
	for _, existing := range m.References {
		if existing.Equal(ref) {
			return
		}
	}
	m.References = append(m.References, ref)
}

// IsSelfAsync reports whether this module is asynchronous on its own, before
// any graph-wide propagation: it has a top-level await, or externals are
// imported as ESM and at least one reference resolves to an external module.
func (m *AsyncModule) IsSelfAsync(res resolver.Resolver) (bool, error) {
	if m.HasTopLevelAwait {
		return true, nil
	}
	if !m.ImportExternals {
		return false, nil
	}
	for _, ref := range m.References {
		asset, err := ref.ReferencedAsset(res)
		if err != nil {
			return false, err
		}
		if _, ok := asset.(*ReferencedExternal); ok {
			return true, nil
		}
	}
	return false, nil
}

// AsyncIdents returns the bindings this module has to await before its own
// body runs, in reference order with duplicates collapsed to their first
// occurrence. Chunking policy is not consulted here: a reference excluded
// from chunking still propagates async-ness.
func (m *AsyncModule) AsyncIdents(ctx chunk.ChunkingContext, res resolver.Resolver, info *chunk.AsyncModuleInfo) ([]string, error) {
	var idents []string
	seen := make(map[string]struct{})

	for _, ref := range m.References {
		asset, err := ref.ReferencedAsset(res)
		if err != nil {
			return nil, err
		}

		var ident string
		ok := false
		switch asset := asset.(type) {
		case *ReferencedExternal:
			if m.ImportExternals {
				ident, ok = AssetIdent(asset)
			}
		case *ReferencedModule:
			item := asset.Module.AsChunkItem(ctx)
			if info.Has(item) {
				ident, ok = AssetIdent(asset)
			}
		}

		if ok {
			if _, dup := seen[ident]; !dup {
				seen[ident] = struct{}{}
				idents = append(idents, ident)
			}
		}
	}

	return idents, nil
}

// ModuleOptions returns the async-wrapper decision for this run, or nil when
// no chunk-wide async set was supplied (async wrapping was not requested).
// The answer comes from the literal top-level-await flag only, not from
// IsSelfAsync.
func (m *AsyncModule) ModuleOptions(info *chunk.AsyncModuleInfo) *AsyncModuleOptions {
	if info == nil {
		return nil
	}
	return &AsyncModuleOptions{HasTopLevelAwait: m.HasTopLevelAwait}
}

// CodeGeneration produces the mutation that wires this module's async
// dependencies into its program body. Nothing is produced when async
// wrapping was not requested or no binding has to be awaited.
func (m *AsyncModule) CodeGeneration(ctx chunk.ChunkingContext, res resolver.Resolver, info *chunk.AsyncModuleInfo) (codegen.CodeGeneration, error) {
	var mutations []codegen.Mutation

	if info != nil {
		idents, err := m.AsyncIdents(ctx, res, info)
		if err != nil {
			return codegen.CodeGeneration{}, err
		}

		if len(idents) > 0 {
			mutations = append(mutations, func(program *js_ast.Program) {
				addAsyncDependencyHandler(program, idents)
			})
		}
	}

	return codegen.CodeGeneration{Mutations: mutations}, nil
}

// Hoists, in this order:
//
//	var __turbopack_async_dependencies__ = __turbopack_handle_async_dependencies__([a, b]);
//	[a, b] = __turbopack_async_dependencies__.then ? (await __turbopack_async_dependencies__)() : __turbopack_async_dependencies__;
//
// The helper returns either the resolved values or a thenable that must be
// awaited first; the re-destructuring handles both shapes.
func addAsyncDependencyHandler(program *js_ast.Program, idents []string) {
	deps := make([]js_ast.Expr, len(idents))
	for i, name := range idents {
		deps[i] = ident(name)
	}

	InsertHoistedStmt(program, varDecl("__turbopack_async_dependencies__",
		call("__turbopack_handle_async_dependencies__", array(deps...))))

	handle := ident("__turbopack_async_dependencies__")
	InsertHoistedStmt(program, js_ast.Stmt{Data: &js_ast.SExpr{
		Value: js_ast.Expr{Data: &js_ast.EBinary{
			Op:   js_ast.BinOpAssign,
			Left: array(deps...),
			Right: js_ast.Expr{Data: &js_ast.EIf{
				Test: js_ast.Expr{Data: &js_ast.EDot{Target: handle, Name: "then"}},
				Yes:  js_ast.Expr{Data: &js_ast.ECall{Target: js_ast.Expr{Data: &js_ast.EAwait{Value: handle}}}},
				No:   handle,
			}},
		}},
	}})
}
