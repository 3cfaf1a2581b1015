package system

import (
	"testing"

	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/entity"
	"go-topdown-shooter/internal/event"
	"go-topdown-shooter/internal/input"
	"go-topdown-shooter/internal/vmath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnerFiresAlongGunOffset(t *testing.T) {
	ecs := entity.NewECS()
	_, gun := newPlayerAndGun(ecs, 0, 1)
	*ecs.Transforms[gun] = component.Transform{X: 30, Y: 0, Z: 1}

	dispatcher := event.NewDispatcher()
	var spawned []event.BulletSpawnedData
	dispatcher.Subscribe(event.BulletSpawned, event.ListenerFunc(func(e event.Event) {
		spawned = append(spawned, e.Data.(event.BulletSpawnedData))
	}))

	in := input.NewScripted()
	in.SetFrame(input.Frame{Held: []input.Action{input.Fire}})
	NewProjectileSpawnSystem(ecs, in, dispatcher, gun).Update()

	require.Len(t, ecs.Bullets, 1)
	require.Len(t, spawned, 1)
	id := spawned[0].ID
	assert.Equal(t, vmath.Vec2{X: 30, Y: 1}, spawned[0].Position)
	assert.Equal(t, vmath.Vec2{X: 5, Y: 0}, spawned[0].Velocity)
	assert.Equal(t, component.Velocity{X: 5, Y: 0}, *ecs.Velocities[id])
	assert.Equal(t, 30.0, ecs.Transforms[id].X)
	assert.Equal(t, 1.0, ecs.Transforms[id].Y)
	assert.NotContains(t, ecs.Parents, id, "bullets live in world space")
}

func TestSpawnerEdgeTriggered(t *testing.T) {
	ecs := entity.NewECS()
	_, gun := newPlayerAndGun(ecs, 0, 1)
	in := input.NewScripted()
	sys := NewProjectileSpawnSystem(ecs, in, nil, gun)

	for i := 0; i < 5; i++ {
		in.SetFrame(input.Frame{Held: []input.Action{input.Fire}})
		sys.Update()
	}
	assert.Len(t, ecs.Bullets, 1)

	in.SetFrame(input.Frame{})
	sys.Update()
	in.SetFrame(input.Frame{Held: []input.Action{input.Fire}})
	sys.Update()
	assert.Len(t, ecs.Bullets, 2)
}

func TestSpawnerSkipsDegenerateOffset(t *testing.T) {
	ecs := entity.NewECS()
	_, gun := newPlayerAndGun(ecs, 0, 1)
	*ecs.Transforms[gun] = component.Transform{Z: 1}

	in := input.NewScripted()
	in.SetFrame(input.Frame{Held: []input.Action{input.Fire}})
	NewProjectileSpawnSystem(ecs, in, nil, gun).Update()
	assert.Empty(t, ecs.Bullets)
}

func TestSpawnerUsesInitialGunOffset(t *testing.T) {
	ecs := entity.NewECS()
	_, gun := newPlayerAndGun(ecs, 0, 1)

	in := input.NewScripted()
	in.SetFrame(input.Frame{Held: []input.Action{input.Fire}})
	NewProjectileSpawnSystem(ecs, in, nil, gun).Update()

	require.Len(t, ecs.Velocities, 1)
	for _, v := range ecs.Velocities {
		assert.InDelta(t, 5.0, v.Vec().Len(), 1e-12)
		assert.Less(t, v.X, 0.0)
		assert.Greater(t, v.Y, 0.0)
	}
}
