// Package ecs is an in-process Entity-Component-System core built on
// per-component sparse-set storage rather than archetype columns.
//
// An EntityID is an opaque integer allocated and recycled by a Registry.
// Components are plain data types registered once via RegisterComponent and
// attached to entities via AddComponent; each registered type gets its own
// paged sparse-set pool, giving O(1) add/remove/get independent of how many
// other component types an entity owns. Destroy is deferred: it queues an
// entity for removal, and Update applies every queued removal in one pass,
// so iteration in progress is never invalidated mid-loop. Views cache the
// result of a multi-component intersection query and rebuild lazily, only
// when one of their pools has structurally changed since the last build.
package ecs
