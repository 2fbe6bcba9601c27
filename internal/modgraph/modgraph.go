package modgraph

// An in-memory module graph exposing exactly the narrow surfaces code
// generation consumes: chunkable modules, chunk items with assigned ids, and
// a table-driven resolver. Building a graph from real source files is a
// separate concern; this package starts from an already known set of modules
// and specifier tables.

import (
	"sync"

	"github.com/tpack/tpack/internal/chunk"
	"github.com/tpack/tpack/internal/js_ast"
	"github.com/tpack/tpack/internal/resolver"
)

// Module is one JS module known to the graph. Path doubles as the module's
// build-wide identity.
type Module struct {
	Path          string
	TopLevelAwait bool
	Program       *js_ast.Program
}

func (m *Module) Ident() string {
	return m.Path
}

func (m *Module) AsChunkItem(ctx chunk.ChunkingContext) chunk.ChunkItem {
	return ctx.(*ChunkingContext).chunkItem(m)
}

type ChunkItem struct {
	module *Module
	id     chunk.ModuleID
}

func (i *ChunkItem) ID() chunk.ModuleID {
	return i.id
}

func (i *ChunkItem) Module() *Module {
	return i.module
}

type Environment struct {
	CommonJSExternals bool
}

func (e *Environment) SupportsCommonJSExternals() bool {
	return e.CommonJSExternals
}

// ChunkingContext materializes chunk items and assigns their ids. Items are
// cached per module so repeated materialization returns the same item, which
// keeps them usable as set keys.
type ChunkingContext struct {
	env       *Environment
	stringIDs bool

	mutex  sync.Mutex
	items  map[*Module]*ChunkItem
	nextID uint32
}

func NewChunkingContext(env *Environment, stringIDs bool) *ChunkingContext {
	return &ChunkingContext{
		env:       env,
		stringIDs: stringIDs,
		items:     make(map[*Module]*ChunkItem),
	}
}

func (c *ChunkingContext) Environment() chunk.Environment {
	return c.env
}

func (c *ChunkingContext) chunkItem(m *Module) *ChunkItem {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if item, ok := c.items[m]; ok {
		return item
	}

	var id chunk.ModuleID
	if c.stringIDs {
		id = chunk.StringID(m.Path)
	} else {
		id = chunk.NumberID(c.nextID)
		c.nextID++
	}

	item := &ChunkItem{module: m, id: id}
	c.items[m] = item
	return item
}

// Origin implements resolver.ResolveOrigin. A transitioned origin reports a
// distinct ident so memoized resolve answers don't collide.
type Origin struct {
	Path       string
	Transition string
}

func (o Origin) OriginIdent() string {
	if o.Transition != "" {
		return o.Path + "@" + o.Transition
	}
	return o.Path
}

func (o Origin) WithTransition(name string) resolver.ResolveOrigin {
	return Origin{Path: o.Path, Transition: name}
}

// Resolver maps import specifiers through fixed tables: known modules,
// specifiers that stay external, and specifiers mapped to nothing. Anything
// not in a table is unresolvable.
type Resolver struct {
	Modules   map[string]*Module
	Externals map[string]bool
	Ignored   map[string]bool
}

func NewResolver() *Resolver {
	return &Resolver{
		Modules:   make(map[string]*Module),
		Externals: make(map[string]bool),
		Ignored:   make(map[string]bool),
	}
}

func (r *Resolver) ResolveESM(origin resolver.ResolveOrigin, request resolver.Request, part *resolver.ModulePart, issue *resolver.IssueSource) (resolver.ResolveResult, error) {
	specifier := request.Specifier

	if r.Ignored[specifier] {
		return resolver.ResolveResult{Primary: []resolver.KeyedResult{
			{Item: &resolver.IgnoreResult{}},
		}}, nil
	}

	if r.Externals[specifier] {
		return resolver.ResolveResult{Primary: []resolver.KeyedResult{
			{Item: &resolver.ExternalResult{Request: specifier}},
		}}, nil
	}

	if module, ok := r.Modules[specifier]; ok {
		return resolver.ResolveResult{Primary: []resolver.KeyedResult{
			{Item: &resolver.ModuleResult{Module: module}},
		}}, nil
	}

	return resolver.ResolveResult{Primary: []resolver.KeyedResult{
		{Item: &resolver.UnresolvableResult{}},
	}}, nil
}
