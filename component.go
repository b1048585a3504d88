package ecs

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/rotisserie/eris"
)

// nextComponentID is the process-wide counter backing ComponentID assignment.
// Go has no per-type static storage, so the stable dense ID that the C++
// original assigns via a template static member is instead memoized in
// componentIDs, keyed by reflect.Type, the first time each concrete
// component type is seen.
var nextComponentID atomic.Uint32

var (
	componentIDsMu sync.Mutex
	componentIDs   = map[reflect.Type]ComponentID{}
)

// componentIDFor returns the stable, process-wide ComponentID for C,
// assigning one on first use. The assignment is permanent: once a type has
// been assigned an ID it keeps it for the lifetime of the process, even
// across unrelated registries.
func componentIDFor[C any]() ComponentID {
	t := reflect.TypeOf((*C)(nil)).Elem()

	componentIDsMu.Lock()
	defer componentIDsMu.Unlock()

	if id, ok := componentIDs[t]; ok {
		return id
	}

	id := nextComponentID.Add(1) - 1
	if id >= MaxComponents {
		fatalf(eris.Wrapf(errComponentSpaceExhausted, "type %s", t), "cannot register component")
	}

	componentIDs[t] = id
	return id
}

// fatalf logs err as a fatal event, tagged with the file:line of fatalf's
// caller, and terminates the process, matching the original's "log an error
// and terminate" policy for programmer errors.
func fatalf(err error, msg string) {
	currentLogger().Fatal().Caller(1).Err(err).Msg(msg)
}

// componentManager owns one componentPool per registered component type,
// indexed by ComponentID, behind the polymorphic handle each pool exposes for
// operations that don't know concrete types (removing a destroyed entity from
// every pool, reading a pool's version).
type componentManager struct {
	pools []erasedPool // indexed by ComponentID; nil until registered
}

func newComponentManager() componentManager {
	return componentManager{pools: make([]erasedPool, 0, MaxComponents)}
}

// erasedPool is the type-erased view of a componentPool[C] that the manager
// needs to fan entity-wide operations out across every registered pool.
type erasedPool interface {
	removeEntity(e EntityID)
	version() uint64
}

// registerComponent ensures a pool for C exists and returns its ComponentID.
// Re-registering the same type is a no-op that returns the existing ID.
func registerComponent[C any](cm *componentManager) (ComponentID, *componentPool[C]) {
	id := componentIDFor[C]()

	for int(id) >= len(cm.pools) {
		cm.pools = append(cm.pools, nil)
	}

	if cm.pools[id] == nil {
		cm.pools[id] = newComponentPool[C]()
	}

	return id, cm.pools[id].(*componentPool[C])
}

// mustRegistered returns C's ComponentID, fatally terminating the process if
// C was never registered on cm. Used by call sites that only need the id
// (views, signature bookkeeping) but must still enforce that the type is
// known to this registry.
func mustRegistered[C any](cm *componentManager) ComponentID {
	id := componentIDFor[C]()
	poolFor[C](cm, id)
	return id
}

// poolFor returns the pool for C, fatally terminating the process if C was
// never registered on this registry — accessing an unregistered component
// pool is a programmer error, not a recoverable condition.
func poolFor[C any](cm *componentManager, id ComponentID) *componentPool[C] {
	if int(id) >= len(cm.pools) || cm.pools[id] == nil {
		var zero C
		fatalf(eris.Wrapf(errComponentNotRegistered, "type %T", zero), "component pool not registered")
		return nil // unreachable: fatalf terminates the process
	}
	return cm.pools[id].(*componentPool[C])
}

// removeEntity removes e from every registered pool, used by Registry.Update
// when applying a deferred Destroy.
func (cm *componentManager) removeEntity(e EntityID) {
	for _, p := range cm.pools {
		if p != nil {
			p.removeEntity(e)
		}
	}
}
