package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cHealth struct{ Value int }
type cPosition struct{ X, Y float32 }

func TestComponentIDFor_StableAndUniquePerType(t *testing.T) {
	id1 := componentIDFor[cHealth]()
	id2 := componentIDFor[cHealth]()
	assert.Equal(t, id1, id2, "repeated calls for the same type return the same id")

	idOther := componentIDFor[cPosition]()
	assert.NotEqual(t, id1, idOther, "distinct types get distinct ids")
}

func TestRegisterComponent_IdempotentPerRegistry(t *testing.T) {
	cm := newComponentManager()

	id1, pool1 := registerComponent[cHealth](&cm)
	id2, pool2 := registerComponent[cHealth](&cm)

	assert.Equal(t, id1, id2)
	assert.Same(t, pool1, pool2, "re-registering returns the same pool")
}

func TestPoolFor_ReturnsRegisteredPool(t *testing.T) {
	cm := newComponentManager()
	id, pool := registerComponent[cHealth](&cm)

	got := poolFor[cHealth](&cm, id)
	require.NotNil(t, got)
	assert.Same(t, pool, got)
}

func TestComponentManager_RemoveEntityFansOutToEveryPool(t *testing.T) {
	cm := newComponentManager()
	_, healthPool := registerComponent[cHealth](&cm)
	_, posPool := registerComponent[cPosition](&cm)

	healthPool.add(1, cHealth{Value: 10})
	posPool.add(1, cPosition{X: 1, Y: 1})

	cm.removeEntity(1)

	_, ok := healthPool.get(1)
	assert.False(t, ok)
	_, ok = posPool.get(1)
	assert.False(t, ok)
}
