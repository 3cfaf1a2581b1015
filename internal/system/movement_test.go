package system

import (
	"testing"

	"go-topdown-shooter/internal/entity"
	"go-topdown-shooter/internal/input"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPlayerClampedAtRightEdge(t *testing.T) {
	ecs := entity.NewECS()
	player, _ := newPlayerAndGun(ecs, 590, 0)
	in := input.NewScripted()
	sys := NewPlayerControlSystem(ecs, in, player)

	for i := 0; i < 3; i++ {
		in.SetFrame(input.Frame{Held: []input.Action{input.MoveRight}})
		sys.Update()
	}
	assert.Equal(t, 600.0, ecs.Transforms[player].X)
	assert.Equal(t, 0.0, ecs.Transforms[player].Y)
}

func TestPlayerDiagonalAndOpposite(t *testing.T) {
	ecs := entity.NewECS()
	player, _ := newPlayerAndGun(ecs, 0, 1)
	in := input.NewScripted()
	sys := NewPlayerControlSystem(ecs, in, player)

	in.SetFrame(input.Frame{Held: []input.Action{input.MoveUp, input.MoveLeft}})
	sys.Update()
	assert.Equal(t, -10.0, ecs.Transforms[player].X)
	assert.Equal(t, 11.0, ecs.Transforms[player].Y)

	in.SetFrame(input.Frame{Held: []input.Action{input.MoveLeft, input.MoveRight, input.MoveDown}})
	sys.Update()
	assert.Equal(t, -10.0, ecs.Transforms[player].X)
	assert.Equal(t, 1.0, ecs.Transforms[player].Y)
}

func TestPlayerWithoutInputDevice(t *testing.T) {
	ecs := entity.NewECS()
	player, _ := newPlayerAndGun(ecs, 5, 5)
	NewPlayerControlSystem(ecs, nil, player).Update()
	assert.Equal(t, 5.0, ecs.Transforms[player].X)
	assert.Equal(t, 5.0, ecs.Transforms[player].Y)

	assert.NotPanics(t, func() { NewPlayerControlSystem(ecs, nil, 999).Update() })
}

func TestPlayerAlwaysInsideField(t *testing.T) {
	moves := []input.Action{input.MoveUp, input.MoveDown, input.MoveLeft, input.MoveRight}
	rapid.Check(t, func(t *rapid.T) {
		ecs := entity.NewECS()
		startX := float64(rapid.IntRange(-600, 600).Draw(t, "x"))
		startY := float64(rapid.IntRange(-300, 300).Draw(t, "y"))
		player, _ := newPlayerAndGun(ecs, startX, startY)
		in := input.NewScripted()
		sys := NewPlayerControlSystem(ecs, in, player)

		ticks := rapid.IntRange(1, 200).Draw(t, "ticks")
		for i := 0; i < ticks; i++ {
			held := rapid.SliceOfDistinct(rapid.SampledFrom(moves), func(a input.Action) input.Action { return a }).Draw(t, "held")
			in.SetFrame(input.Frame{Held: held})
			sys.Update()

			p := ecs.Transforms[player]
			if p.X < -600 || p.X > 600 || p.Y < -300 || p.Y > 300 {
				t.Fatalf("player left the field: (%v, %v)", p.X, p.Y)
			}
		}
	})
}
