package esm

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/tpack/tpack/internal/chunk"
	"github.com/tpack/tpack/internal/codegen"
	"github.com/tpack/tpack/internal/js_ast"
	"github.com/tpack/tpack/internal/resolver"
)

// ImportAnnotations are the recognized "with { ... }" style annotations on an
// import. Empty strings mean the annotation was absent.
type ImportAnnotations struct {
	// Resolve through this named transition instead of the default one
	Transition string

	// Overrides the chunking policy, see ChunkingPolicy
	ChunkingType string
}

func (a ImportAnnotations) String() string {
	if a == (ImportAnnotations{}) {
		return "{}"
	}
	s := "{"
	if a.Transition != "" {
		s += fmt.Sprintf(" transition: %q", a.Transition)
	}
	if a.ChunkingType != "" {
		s += fmt.Sprintf(" chunking-type: %q", a.ChunkingType)
	}
	return s + " }"
}

type ChunkingPolicy uint8

const (
	// The target is chunked alongside the importer and async-ness flows
	// across the edge
	ChunkingParallelInheritAsync ChunkingPolicy = iota

	// The reference gets no import binding at all. Exclusion only suppresses
	// the import statement; async propagation still sees the reference.
	ChunkingExcluded
)

// EsmAssetReference is one static import edge: where it was written, what it
// asks for, and how it was annotated. References are immutable once built,
// and two references with identical fields are interchangeable.
type EsmAssetReference struct {
	Origin      resolver.ResolveOrigin
	Request     resolver.Request
	Annotations ImportAnnotations
	IssueSource *resolver.IssueSource

	// Restricts the import to one named export of the target, nil for a
	// whole-module import
	ExportPart *resolver.ModulePart

	// Whether external modules are imported as ESM at run time instead of
	// being required
	ImportExternals bool
}

func (r *EsmAssetReference) String() string {
	return fmt.Sprintf("import %s %s", r.Request, r.Annotations)
}

// Equal reports whether two references have identical fields, which makes
// them interchangeable for caching and deduplication.
func (r *EsmAssetReference) Equal(other *EsmAssetReference) bool {
	if r.Origin != other.Origin ||
		r.Request != other.Request ||
		r.Annotations != other.Annotations ||
		r.ImportExternals != other.ImportExternals {
		return false
	}
	if (r.ExportPart == nil) != (other.ExportPart == nil) {
		return false
	}
	if r.ExportPart != nil && *r.ExportPart != *other.ExportPart {
		return false
	}
	if (r.IssueSource == nil) != (other.IssueSource == nil) {
		return false
	}
	if r.IssueSource != nil && *r.IssueSource != *other.IssueSource {
		return false
	}
	return true
}

func (r *EsmAssetReference) origin() resolver.ResolveOrigin {
	origin := r.Origin
	if name := r.Annotations.Transition; name != "" {
		origin = origin.WithTransition(name)
	}
	return origin
}

// ChunkingPolicy derives the reference's chunking policy from its annotation.
// An unknown annotation value is a configuration error.
func (r *EsmAssetReference) ChunkingPolicy() (ChunkingPolicy, error) {
	switch r.Annotations.ChunkingType {
	case "", "parallel":
		return ChunkingParallelInheritAsync, nil
	case "none":
		return ChunkingExcluded, nil
	default:
		return 0, errors.Errorf("unknown chunking_type: %s", r.Annotations.ChunkingType)
	}
}

// ResolveReference asks the resolver what this reference points at.
func (r *EsmAssetReference) ResolveReference(res resolver.Resolver) (resolver.ResolveResult, error) {
	return res.ResolveESM(r.origin(), r.Request, r.ExportPart, r.IssueSource)
}

// ReferencedAsset resolves and classifies the reference in one step.
func (r *EsmAssetReference) ReferencedAsset(res resolver.Resolver) (ReferencedAsset, error) {
	result, err := r.ResolveReference(res)
	if err != nil {
		return nil, err
	}
	return ReferencedAssetFromResolveResult(result), nil
}

// CodeGeneration produces the mutations that splice this reference's runtime
// support into the origin's program body.
func (r *EsmAssetReference) CodeGeneration(ctx chunk.ChunkingContext, res resolver.Resolver) (codegen.CodeGeneration, error) {
	var mutations []codegen.Mutation

	policy, err := r.ChunkingPolicy()
	if err != nil {
		return codegen.CodeGeneration{}, err
	}

	result, err := r.ResolveReference(res)
	if err != nil {
		return codegen.CodeGeneration{}, err
	}

	// An unresolvable request doesn't fail the build. It fails at run time
	// instead, with a statement that throws when the module is evaluated.
	if result.IsUnresolvable() {
		request := r.Request.String()
		mutations = append(mutations, func(program *js_ast.Program) {
			InsertHoistedStmt(program, js_ast.Stmt{Data: &js_ast.SExpr{
				Value: ThrowModuleNotFoundExpr(request),
			}})
		})
		return codegen.CodeGeneration{Mutations: mutations}, nil
	}

	// Only chunked references can be imported
	if policy != ChunkingExcluded {
		asset := ReferencedAssetFromResolveResult(result)
		importExternals := r.ImportExternals
		if ident, ok := AssetIdent(asset); ok {
			switch asset := asset.(type) {
			case *ReferencedModule:
				id := asset.Module.AsChunkItem(ctx).ID()
				mutations = append(mutations, func(program *js_ast.Program) {
					stmt := varDecl(ident, call("__turbopack_import__", moduleIDExpr(id)))
					InsertHoistedStmt(program, stmt)
				})

			case *ReferencedExternal:
				if !ctx.Environment().SupportsCommonJSExternals() {
					return codegen.CodeGeneration{}, errors.Errorf(
						"the chunking context does not support external modules (request: %s)", asset.Request)
				}
				request := asset.Request
				mutations = append(mutations, func(program *js_ast.Program) {
					// TODO: emit a real ESM external once the runtime supports it
					var stmt js_ast.Stmt
					if importExternals {
						stmt = varDecl(ident, call("__turbopack_external_import__", str(request)))
					} else {
						stmt = varDecl(ident, call("__turbopack_external_require__", str(request), boolean(true)))
					}
					InsertHoistedStmt(program, stmt)
				})
			}
		}
	}

	return codegen.CodeGeneration{Mutations: mutations}, nil
}
