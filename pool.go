package ecs

import "github.com/arclight-games/ecs/internal/assert"

// page is one lazily-allocated block of sparse-array slots. Pages are
// allocated on first write and never freed, matching the original's
// ComponentPool<C>::m_indices array of page pointers.
type page [PageSize]Index

func newPage() *page {
	p := &page{}
	for i := range p {
		p[i] = InvalidIndex
	}
	return p
}

// componentPool is a paged sparse set storing one dense, contiguous slice of
// C per registered component type, plus a parallel dense slice of owning
// entity IDs and a sparse, page-indexed lookup from EntityID to dense row.
//
// version increments on every structural change (a new component added, a
// component removed, or a Clear) but NOT on an overwrite of an existing
// slot — Views rely on this distinction to know when their cache is stale.
type componentPool[C any] struct {
	components []C
	entities   []EntityID
	pages      [MaxPages]*page
	ver        uint64
}

func newComponentPool[C any]() *componentPool[C] {
	return &componentPool[C]{}
}

func pageIndex(e EntityID) (pageNum, slot int) {
	return int(e / PageSize), int(e % PageSize)
}

// add inserts or overwrites the component for e. Inserting a new component
// bumps version; overwriting an existing one does not.
func (p *componentPool[C]) add(e EntityID, c C) {
	pg, slot := pageIndex(e)

	if p.pages[pg] == nil {
		p.pages[pg] = newPage()
	}

	if p.pages[pg][slot] == InvalidIndex {
		row := Index(len(p.components))
		p.components = append(p.components, c)
		p.entities = append(p.entities, e)
		p.pages[pg][slot] = row
		p.ver++
		return
	}

	p.components[p.pages[pg][slot]] = c
}

// removeEntity removes e's component, if any, via swap-and-pop with the last
// dense row so the dense arrays stay contiguous. No-op if e has no component
// in this pool.
func (p *componentPool[C]) removeEntity(e EntityID) {
	pg, slot := pageIndex(e)

	if p.pages[pg] == nil || p.pages[pg][slot] == InvalidIndex {
		return
	}

	row := p.pages[pg][slot]
	last := Index(len(p.components) - 1)

	if row != last {
		movedEntity := p.entities[last]
		p.components[row] = p.components[last]
		p.entities[row] = movedEntity

		movedPage, movedSlot := pageIndex(movedEntity)
		assert.That(p.pages[movedPage] != nil, "moved entity has no page")
		p.pages[movedPage][movedSlot] = row
	}

	p.components = p.components[:last]
	p.entities = p.entities[:last]
	p.pages[pg][slot] = InvalidIndex
	p.ver++
}

// get returns a pointer to e's component and true, or nil and false if e has
// none in this pool. The pointer is valid until the next structural change.
func (p *componentPool[C]) get(e EntityID) (*C, bool) {
	pg, slot := pageIndex(e)

	if p.pages[pg] == nil {
		return nil, false
	}

	row := p.pages[pg][slot]
	if row == InvalidIndex {
		return nil, false
	}

	return &p.components[row], true
}

// has reports whether e owns a component in this pool.
func (p *componentPool[C]) has(e EntityID) bool {
	_, ok := p.get(e)
	return ok
}

// clear removes every component from the pool, bumping version once.
func (p *componentPool[C]) clear() {
	for _, e := range p.entities {
		pg, slot := pageIndex(e)
		p.pages[pg][slot] = InvalidIndex
	}
	p.components = p.components[:0]
	p.entities = p.entities[:0]
	p.ver++
}

func (p *componentPool[C]) version() uint64 { return p.ver }

// denseEntities returns the dense slice of entities owning a component in
// this pool, in no particular order. Callers must not retain the slice
// across a structural change.
func (p *componentPool[C]) denseEntities() []EntityID { return p.entities }

// denseComponents returns the dense slice of components, parallel to
// denseEntities.
func (p *componentPool[C]) denseComponents() []C { return p.components }
