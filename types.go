package ecs

import "math"

// Index is a dense slot position inside a component pool's backing arrays.
type Index = uint32

// EntityID identifies an entity. Zero is a valid ID; NoEntity marks "no entity".
type EntityID = uint32

// ComponentID identifies a registered component type, process-wide.
type ComponentID = uint32

// Signature is a bitmask of owned component IDs, one bit per ComponentID.
type Signature = uint64

const (
	// InvalidIndex marks an unused sparse-array slot.
	InvalidIndex Index = math.MaxUint32

	// NoEntity is the sentinel EntityID returned when no entity is available.
	NoEntity EntityID = math.MaxUint32

	// MaxEntities bounds the entity ID space. Every ID Create allocates is
	// < MaxEntities; the NoEntity sentinel lies outside that range.
	MaxEntities = 1_000_000

	// MaxComponents bounds the number of distinct registered component types,
	// since a Signature is a single 64-bit word with one bit per component.
	MaxComponents = 64

	// PageSize is the number of sparse-array slots per lazily-allocated page.
	// Must be a power of two.
	PageSize = 4096

	// MaxPages is the number of pages needed to cover the full entity ID space.
	MaxPages = (MaxEntities + PageSize - 1) / PageSize
)

// Static assertions: an array type cannot have a negative length, so these
// fail to compile rather than let an invalid PageSize or MaxComponents
// corrupt paging math or overflow a Signature word at runtime.
var (
	_ [0 - (PageSize & (PageSize - 1))]byte // PageSize must be a power of two
	_ [64 - MaxComponents]byte              // MaxComponents must be <= 64
)
