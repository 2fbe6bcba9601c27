package chunk

// The vocabulary the code generator shares with the chunking stage: modules,
// chunk items, id assignment, and the chunk-wide async set. The chunking
// stage itself (ordering chunks, writing output files) lives elsewhere; only
// these narrow surfaces are consumed here.

import (
	"strconv"
)

// Module is anything the resolver can hand back as the target of an import.
type Module interface {
	// Ident returns the fully-qualified identity of this module within one
	// build, e.g. "[project]/lib/a.js". Idents are unique per build and feed
	// directly into mangled binding names.
	Ident() string
}

// ChunkableModule is the capability a module needs to be placed into a chunk.
// Resolve results may carry modules without it (raw assets, for example);
// those never produce import bindings.
type ChunkableModule interface {
	Module

	// AsChunkItem materializes the module's chunk item under the given
	// chunking context. Calling this twice with the same context must return
	// the same item, since items are used as set keys.
	AsChunkItem(ctx ChunkingContext) ChunkItem
}

// ChunkItem is one compiled unit inside a chunk.
type ChunkItem interface {
	ID() ModuleID
}

// ModuleID is a chunk item's assigned id: either a string or a number,
// depending on the chunking context's id strategy. It is emitted into the
// generated code exactly as assigned.
type ModuleID interface {
	isModuleID()
	String() string
}

type StringID string

func (StringID) isModuleID() {}

func (id StringID) String() string { return string(id) }

type NumberID uint32

func (NumberID) isModuleID() {}

func (id NumberID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Environment answers capability queries about the target runtime.
type Environment interface {
	// Whether the target runtime can load unbundled modules with require()
	SupportsCommonJSExternals() bool
}

type ChunkingContext interface {
	Environment() Environment
}

// AsyncModuleInfo carries the chunk-wide set of chunk items known to be
// asynchronous. It is recomputed per compilation run by the caller (see the
// linker package); the code generator only reads it. A nil *AsyncModuleInfo
// means async wrapping was not requested for this run at all, which is
// different from an empty set.
type AsyncModuleInfo struct {
	referenced map[ChunkItem]struct{}
}

func NewAsyncModuleInfo(items ...ChunkItem) *AsyncModuleInfo {
	referenced := make(map[ChunkItem]struct{}, len(items))
	for _, item := range items {
		referenced[item] = struct{}{}
	}
	return &AsyncModuleInfo{referenced: referenced}
}

func (info *AsyncModuleInfo) Has(item ChunkItem) bool {
	if info == nil {
		return false
	}
	_, ok := info.referenced[item]
	return ok
}

func (info *AsyncModuleInfo) Len() int {
	if info == nil {
		return 0
	}
	return len(info.referenced)
}
