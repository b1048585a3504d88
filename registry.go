package ecs

// Registry owns entity ID allocation, every registered component pool, and
// the cached views built over them. A Registry is not safe for concurrent
// writes; callers serialize Create/Destroy/Add/Remove/Update the way the
// original's single-threaded frame loop does, and may read concurrently
// once a frame's writes are finished.
type Registry struct {
	components componentManager

	available []EntityID // FIFO free list of recycled IDs
	nextID    EntityID   // next sequential ID if available is empty
	toDestroy []EntityID // entities queued by Destroy, applied on Update

	alive      []EntityID // dense list of currently alive entities
	indices    []Index    // EntityID -> index into alive, or InvalidIndex
	signatures []Signature

	views viewCache
}

// NewRegistry creates an empty registry with room for MaxEntities entities.
func NewRegistry() *Registry {
	indices := make([]Index, MaxEntities)
	for i := range indices {
		indices[i] = InvalidIndex
	}
	return &Registry{
		components: newComponentManager(),
		indices:    indices,
		signatures: make([]Signature, MaxEntities),
		views:      newViewCache(),
	}
}

// Create allocates a new entity, recycling the oldest freed ID first. If the
// entity ID space is exhausted, logs a warning and returns NoEntity rather
// than failing the caller with an error.
func (r *Registry) Create() EntityID {
	var e EntityID

	if len(r.available) > 0 {
		e = r.available[0]
		r.available = r.available[1:]
	} else {
		if r.nextID >= MaxEntities {
			currentLogger().Warn().Msg("entity limit reached")
			return NoEntity
		}
		e = r.nextID
		r.nextID++
	}

	r.indices[e] = Index(len(r.alive))
	r.alive = append(r.alive, e)
	r.signatures[e] = 0

	return e
}

// Destroy queues e for removal. The removal, and the release of its
// components and signature bits, happens on the next Update call — Destroy
// itself never mutates iteration state. Destroying an already-queued or
// already-dead entity is a harmless no-op.
func (r *Registry) Destroy(e EntityID) {
	if !r.Valid(e) {
		return
	}
	r.toDestroy = append(r.toDestroy, e)
}

// Update applies every Destroy queued since the last Update: entities are
// removed from the alive list, their components released from every pool,
// and their IDs returned to the free list for reuse.
func (r *Registry) Update() {
	for _, e := range r.toDestroy {
		if r.indices[e] == InvalidIndex {
			continue // already applied by an earlier duplicate in this batch
		}

		last := Index(len(r.alive) - 1)
		moved := r.alive[last]
		r.alive[r.indices[e]] = moved
		r.indices[moved] = r.indices[e]

		r.alive = r.alive[:last]
		r.indices[e] = InvalidIndex
		r.signatures[e] = 0

		r.components.removeEntity(e)
		r.available = append(r.available, e)
	}
	r.toDestroy = r.toDestroy[:0]
}

// Reset destroys every alive entity and applies the destruction immediately,
// leaving no alive entities and every pool empty. Component type
// registrations and cached views persist, and the freed IDs are reissued by
// Create in the order they were freed, not restarting from 0.
func (r *Registry) Reset() {
	for _, e := range append([]EntityID{}, r.alive...) {
		r.Destroy(e)
	}
	r.Update()
}

// Valid reports whether e refers to a currently alive entity. An e outside
// the entity ID space logs a warning and returns false rather than panicking.
func (r *Registry) Valid(e EntityID) bool {
	if e >= MaxEntities {
		currentLogger().Warn().Uint32("entity", e).Msg("entity id out of range")
		return false
	}
	return r.indices[e] != InvalidIndex
}

// Alive returns the dense slice of currently alive entities. Callers must
// not retain the slice across a Create/Update call.
func (r *Registry) Alive() []EntityID { return r.alive }

// RegisterComponent ensures a pool for C exists on this registry. It is
// idempotent: re-registering the same type is a no-op. Exceeding
// MaxComponents across the process is a fatal, unrecoverable error.
func RegisterComponent[C any](r *Registry) {
	registerComponent[C](&r.components)
}

// AddComponent attaches or overwrites component C on e. Attaching a
// component the entity didn't already have bumps the owning pool's version,
// invalidating cached views over it; overwriting an existing component does
// not. No-op if e is not alive. C must have been registered with
// RegisterComponent first; accessing an unregistered type is fatal.
func AddComponent[C any](r *Registry, e EntityID, c C) {
	if !r.Valid(e) {
		return
	}
	id := componentIDFor[C]()
	pool := poolFor[C](&r.components, id)
	pool.add(e, c)
	r.signatures[e] |= 1 << id
}

// RemoveComponent detaches component C from e, if present. No-op if e is not
// alive or doesn't own C.
func RemoveComponent[C any](r *Registry, e EntityID) {
	if !r.Valid(e) {
		return
	}
	id := componentIDFor[C]()
	pool := poolFor[C](&r.components, id)
	pool.removeEntity(e)
	r.signatures[e] &^= 1 << id
}

// GetComponent returns a pointer to e's component C and true, or nil and
// false if e is not alive or doesn't own C. Accessing a type that was never
// registered on this registry is a fatal programmer error.
func GetComponent[C any](r *Registry, e EntityID) (*C, bool) {
	if !r.Valid(e) {
		return nil, false
	}
	id := componentIDFor[C]()
	pool := poolFor[C](&r.components, id)
	return pool.get(e)
}

// HasComponent reports whether e owns component C.
func HasComponent[C any](r *Registry, e EntityID) bool {
	if !r.Valid(e) {
		return false
	}
	id := componentIDFor[C]()
	pool := poolFor[C](&r.components, id)
	return pool.has(e)
}

// Clear removes component C from every entity that owns it.
func Clear[C any](r *Registry) {
	id := componentIDFor[C]()
	pool := poolFor[C](&r.components, id)
	for _, e := range append([]EntityID{}, pool.denseEntities()...) {
		r.signatures[e] &^= 1 << id
	}
	pool.clear()
}

// Entities returns the dense slice of entities owning component C, in no
// particular order. Callers must not retain the slice across a structural
// change to C's pool. Exposed, alongside Components, so callers can
// partition work over a component type themselves rather than relying on
// any core-provided parallel iteration. C must have been registered with
// RegisterComponent first; accessing an unregistered type is fatal.
func Entities[C any](r *Registry) []EntityID {
	id := componentIDFor[C]()
	return poolFor[C](&r.components, id).denseEntities()
}

// Components returns the dense slice of C values, parallel to Entities.
// Callers must not retain the slice across a structural change to C's pool.
func Components[C any](r *Registry) []C {
	id := componentIDFor[C]()
	return poolFor[C](&r.components, id).denseComponents()
}

// Signature returns e's current component signature, or 0 if e is not
// alive.
func (r *Registry) Signature(e EntityID) Signature {
	if !r.Valid(e) {
		return 0
	}
	return r.signatures[e]
}
