package ecs

// viewCache holds every view built over a Registry, keyed by the tuple of
// component types it was built for. Views are owned by the Registry and
// have no separate lifetime: there is no Close/Release, matching the
// original's m_views map, which lives and dies with the Registry. Like the
// rest of Registry, it performs no internal locking: callers serialize
// writes themselves.
type viewCache struct {
	m map[any]any
}

func newViewCache() viewCache {
	return viewCache{m: make(map[any]any)}
}

type viewKey2[A, B any] struct{}
type viewKey3[A, B, C any] struct{}
type viewKey4[A, B, C, D any] struct{}

// View1 iterates every entity owning component A.
type View1[A any] struct {
	reg     *Registry
	idA     ComponentID
	verA    uint64
	cache   []EntityID
}

// View builds or returns the cached single-component view for A. The view
// is rebuilt lazily the next time Each is called if A's pool changed since
// the last rebuild.
func View[A any](r *Registry) *View1[A] {
	idA := mustRegistered[A](&r.components)
	key := viewKey2[A, struct{}]{}

	if v, ok := r.views.m[key]; ok {
		return v.(*View1[A])
	}

	v := &View1[A]{reg: r, idA: idA, verA: ^uint64(0)}
	r.views.m[key] = v
	return v
}

func (v *View1[A]) refresh() {
	pool := poolFor[A](&v.reg.components, v.idA)
	if pool.version() == v.verA {
		return
	}
	v.verA = pool.version()
	v.cache = append(v.cache[:0], pool.denseEntities()...)
}

// Entities returns a fresh copy of the cached EntityIDs, rebuilding first if
// stale. Callers are free to retain or mutate the returned slice.
func (v *View1[A]) Entities() []EntityID {
	v.refresh()
	return append([]EntityID(nil), v.cache...)
}

// Each calls fn once per entity owning A, passing a pointer to that
// component. fn must not add or remove components from the pool it's
// iterating; doing so invalidates the dense slice mid-iteration.
func (v *View1[A]) Each(fn func(e EntityID, a *A)) {
	v.refresh()
	pool := poolFor[A](&v.reg.components, v.idA)
	for _, e := range v.cache {
		a, ok := pool.get(e)
		if ok {
			fn(e, a)
		}
	}
}

// View2 iterates every entity owning both A and B, driven by whichever
// pool currently has fewer entities.
type View2[A, B any] struct {
	reg        *Registry
	idA, idB   ComponentID
	verA, verB uint64
	cache      []EntityID
}

// View2Of builds or returns the cached two-component view for A and B.
func View2Of[A, B any](r *Registry) *View2[A, B] {
	idA := mustRegistered[A](&r.components)
	idB := mustRegistered[B](&r.components)
	key := viewKey2[A, B]{}

	if v, ok := r.views.m[key]; ok {
		return v.(*View2[A, B])
	}

	v := &View2[A, B]{reg: r, idA: idA, idB: idB, verA: ^uint64(0), verB: ^uint64(0)}
	r.views.m[key] = v
	return v
}

func (v *View2[A, B]) refresh() {
	poolA := poolFor[A](&v.reg.components, v.idA)
	poolB := poolFor[B](&v.reg.components, v.idB)

	if poolA.version() == v.verA && poolB.version() == v.verB {
		return
	}
	v.verA, v.verB = poolA.version(), poolB.version()

	v.cache = v.cache[:0]
	driver := poolA.denseEntities()
	driverHas := func(e EntityID) bool { return poolB.has(e) }
	if len(poolB.denseEntities()) < len(driver) {
		driver = poolB.denseEntities()
		driverHas = func(e EntityID) bool { return poolA.has(e) }
	}
	for _, e := range driver {
		if driverHas(e) {
			v.cache = append(v.cache, e)
		}
	}
}

// Entities returns a fresh copy of the cached EntityIDs, rebuilding first if
// stale. Callers are free to retain or mutate the returned slice.
func (v *View2[A, B]) Entities() []EntityID {
	v.refresh()
	return append([]EntityID(nil), v.cache...)
}

// Each calls fn once per entity owning both A and B.
func (v *View2[A, B]) Each(fn func(e EntityID, a *A, b *B)) {
	v.refresh()
	poolA := poolFor[A](&v.reg.components, v.idA)
	poolB := poolFor[B](&v.reg.components, v.idB)
	for _, e := range v.cache {
		a, okA := poolA.get(e)
		b, okB := poolB.get(e)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// View3 iterates every entity owning A, B, and C.
type View3[A, B, C any] struct {
	reg              *Registry
	idA, idB, idC    ComponentID
	verA, verB, verC uint64
	cache            []EntityID
}

// View3Of builds or returns the cached three-component view for A, B, C.
func View3Of[A, B, C any](r *Registry) *View3[A, B, C] {
	idA := mustRegistered[A](&r.components)
	idB := mustRegistered[B](&r.components)
	idC := mustRegistered[C](&r.components)
	key := viewKey3[A, B, C]{}

	if v, ok := r.views.m[key]; ok {
		return v.(*View3[A, B, C])
	}

	v := &View3[A, B, C]{reg: r, idA: idA, idB: idB, idC: idC, verA: ^uint64(0), verB: ^uint64(0), verC: ^uint64(0)}
	r.views.m[key] = v
	return v
}

func (v *View3[A, B, C]) refresh() {
	poolA := poolFor[A](&v.reg.components, v.idA)
	poolB := poolFor[B](&v.reg.components, v.idB)
	poolC := poolFor[C](&v.reg.components, v.idC)

	if poolA.version() == v.verA && poolB.version() == v.verB && poolC.version() == v.verC {
		return
	}
	v.verA, v.verB, v.verC = poolA.version(), poolB.version(), poolC.version()

	type pool interface {
		denseEntities() []EntityID
		has(EntityID) bool
	}
	pools := []pool{poolA, poolB, poolC}

	driverIdx := 0
	for i := 1; i < len(pools); i++ {
		if len(pools[i].denseEntities()) < len(pools[driverIdx].denseEntities()) {
			driverIdx = i
		}
	}

	v.cache = v.cache[:0]
	for _, e := range pools[driverIdx].denseEntities() {
		has := true
		for i, p := range pools {
			if i == driverIdx {
				continue
			}
			if !p.has(e) {
				has = false
				break
			}
		}
		if has {
			v.cache = append(v.cache, e)
		}
	}
}

// Entities returns a fresh copy of the cached EntityIDs, rebuilding first if
// stale. Callers are free to retain or mutate the returned slice.
func (v *View3[A, B, C]) Entities() []EntityID {
	v.refresh()
	return append([]EntityID(nil), v.cache...)
}

// Each calls fn once per entity owning A, B, and C.
func (v *View3[A, B, C]) Each(fn func(e EntityID, a *A, b *B, c *C)) {
	v.refresh()
	poolA := poolFor[A](&v.reg.components, v.idA)
	poolB := poolFor[B](&v.reg.components, v.idB)
	poolC := poolFor[C](&v.reg.components, v.idC)
	for _, e := range v.cache {
		a, okA := poolA.get(e)
		b, okB := poolB.get(e)
		c, okC := poolC.get(e)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

// View4 iterates every entity owning A, B, C, and D.
type View4[A, B, C, D any] struct {
	reg                    *Registry
	idA, idB, idC, idD     ComponentID
	verA, verB, verC, verD uint64
	cache                  []EntityID
}

// View4Of builds or returns the cached four-component view for A, B, C, D.
func View4Of[A, B, C, D any](r *Registry) *View4[A, B, C, D] {
	idA := mustRegistered[A](&r.components)
	idB := mustRegistered[B](&r.components)
	idC := mustRegistered[C](&r.components)
	idD := mustRegistered[D](&r.components)
	key := viewKey4[A, B, C, D]{}

	if v, ok := r.views.m[key]; ok {
		return v.(*View4[A, B, C, D])
	}

	v := &View4[A, B, C, D]{
		reg: r, idA: idA, idB: idB, idC: idC, idD: idD,
		verA: ^uint64(0), verB: ^uint64(0), verC: ^uint64(0), verD: ^uint64(0),
	}
	r.views.m[key] = v
	return v
}

func (v *View4[A, B, C, D]) refresh() {
	poolA := poolFor[A](&v.reg.components, v.idA)
	poolB := poolFor[B](&v.reg.components, v.idB)
	poolC := poolFor[C](&v.reg.components, v.idC)
	poolD := poolFor[D](&v.reg.components, v.idD)

	if poolA.version() == v.verA && poolB.version() == v.verB &&
		poolC.version() == v.verC && poolD.version() == v.verD {
		return
	}
	v.verA, v.verB, v.verC, v.verD = poolA.version(), poolB.version(), poolC.version(), poolD.version()

	type pool interface {
		denseEntities() []EntityID
		has(EntityID) bool
	}
	pools := []pool{poolA, poolB, poolC, poolD}

	driverIdx := 0
	for i := 1; i < len(pools); i++ {
		if len(pools[i].denseEntities()) < len(pools[driverIdx].denseEntities()) {
			driverIdx = i
		}
	}

	v.cache = v.cache[:0]
	for _, e := range pools[driverIdx].denseEntities() {
		has := true
		for i, p := range pools {
			if i == driverIdx {
				continue
			}
			if !p.has(e) {
				has = false
				break
			}
		}
		if has {
			v.cache = append(v.cache, e)
		}
	}
}

// Entities returns a fresh copy of the cached EntityIDs, rebuilding first if
// stale. Callers are free to retain or mutate the returned slice.
func (v *View4[A, B, C, D]) Entities() []EntityID {
	v.refresh()
	return append([]EntityID(nil), v.cache...)
}

// Each calls fn once per entity owning A, B, C, and D.
func (v *View4[A, B, C, D]) Each(fn func(e EntityID, a *A, b *B, c *C, d *D)) {
	v.refresh()
	poolA := poolFor[A](&v.reg.components, v.idA)
	poolB := poolFor[B](&v.reg.components, v.idB)
	poolC := poolFor[C](&v.reg.components, v.idC)
	poolD := poolFor[D](&v.reg.components, v.idD)
	for _, e := range v.cache {
		a, okA := poolA.get(e)
		b, okB := poolB.get(e)
		c, okC := poolC.get(e)
		d, okD := poolD.get(e)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}
