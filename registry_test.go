package ecs_test

import (
	"testing"

	ecs "github.com/arclight-games/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Position struct{ X, Y float32 }
type Velocity struct{ X, Y float32 }
type Health struct{ HP int }

func TestRegistry_CreateAssignsIncreasingIDs(t *testing.T) {
	t.Parallel()

	r := ecs.NewRegistry()
	a := r.Create()
	b := r.Create()

	assert.True(t, r.Valid(a))
	assert.True(t, r.Valid(b))
	assert.Less(t, a, b)
}

func TestRegistry_DestroyIsDeferredUntilUpdate(t *testing.T) {
	t.Parallel()

	r := ecs.NewRegistry()
	e := r.Create()

	r.Destroy(e)
	assert.True(t, r.Valid(e), "entity stays alive until Update is called")

	r.Update()
	assert.False(t, r.Valid(e))
}

func TestRegistry_DuplicateDestroyBeforeUpdateIsIdempotent(t *testing.T) {
	t.Parallel()

	r := ecs.NewRegistry()
	e := r.Create()

	r.Destroy(e)
	r.Destroy(e) // duplicate enqueue

	assert.NotPanics(t, func() { r.Update() })
	assert.False(t, r.Valid(e))
}

func TestRegistry_RecycledIDsAreReusedAfterUpdate(t *testing.T) {
	t.Parallel()

	r := ecs.NewRegistry()
	e := r.Create()
	r.Destroy(e)
	r.Update()

	reused := r.Create()
	assert.Equal(t, e, reused, "freed ids are recycled before new ones are minted")
}

func TestRegistry_AddGetRemoveComponent(t *testing.T) {
	t.Parallel()

	r := ecs.NewRegistry()
	ecs.RegisterComponent[Position](r)
	e := r.Create()

	_, ok := ecs.GetComponent[Position](r, e)
	assert.False(t, ok)

	ecs.AddComponent(r, e, Position{X: 1, Y: 2})
	pos, ok := ecs.GetComponent[Position](r, e)
	require.True(t, ok)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos)

	ecs.RemoveComponent[Position](r, e)
	_, ok = ecs.GetComponent[Position](r, e)
	assert.False(t, ok)
}

func TestRegistry_AddComponentOnExistingOverwrites(t *testing.T) {
	t.Parallel()

	r := ecs.NewRegistry()
	ecs.RegisterComponent[Position](r)
	e := r.Create()

	ecs.AddComponent(r, e, Position{X: 1, Y: 1})
	ecs.AddComponent(r, e, Position{X: 9, Y: 9})

	pos, ok := ecs.GetComponent[Position](r, e)
	require.True(t, ok)
	assert.Equal(t, Position{X: 9, Y: 9}, *pos)
}

func TestRegistry_ComponentOpsOnDeadEntityAreNoOps(t *testing.T) {
	t.Parallel()

	r := ecs.NewRegistry()
	ecs.RegisterComponent[Position](r)
	e := r.Create()
	r.Destroy(e)
	r.Update()

	assert.NotPanics(t, func() {
		ecs.AddComponent(r, e, Position{X: 1})
		ecs.RemoveComponent[Position](r, e)
	})

	_, ok := ecs.GetComponent[Position](r, e)
	assert.False(t, ok)
	assert.False(t, ecs.HasComponent[Position](r, e))
}

func TestRegistry_SignatureTracksOwnedComponents(t *testing.T) {
	t.Parallel()

	r := ecs.NewRegistry()
	ecs.RegisterComponent[Position](r)
	ecs.RegisterComponent[Velocity](r)
	e := r.Create()

	assert.Equal(t, ecs.Signature(0), r.Signature(e))

	ecs.AddComponent(r, e, Position{})
	ecs.AddComponent(r, e, Velocity{})
	assert.NotZero(t, r.Signature(e))

	ecs.RemoveComponent[Position](r, e)
	ecs.RemoveComponent[Velocity](r, e)
	assert.Zero(t, r.Signature(e))
}

func TestRegistry_ClearRemovesComponentFromEveryOwner(t *testing.T) {
	t.Parallel()

	r := ecs.NewRegistry()
	ecs.RegisterComponent[Health](r)
	a := r.Create()
	b := r.Create()
	ecs.AddComponent(r, a, Health{HP: 10})
	ecs.AddComponent(r, b, Health{HP: 20})

	ecs.Clear[Health](r)

	assert.False(t, ecs.HasComponent[Health](r, a))
	assert.False(t, ecs.HasComponent[Health](r, b))
}

func TestRegistry_ValidOutOfRangeEntityIsFalse(t *testing.T) {
	t.Parallel()

	r := ecs.NewRegistry()
	assert.False(t, r.Valid(ecs.MaxEntities+1))
}

func TestRegistry_Reset(t *testing.T) {
	t.Parallel()

	r := ecs.NewRegistry()
	ecs.RegisterComponent[Health](r)
	a := r.Create()
	b := r.Create()
	ecs.AddComponent(r, a, Health{HP: 1})
	ecs.AddComponent(r, b, Health{HP: 2})

	r.Reset()

	assert.False(t, r.Valid(a))
	assert.False(t, r.Valid(b))
	assert.Empty(t, r.Alive())
}
