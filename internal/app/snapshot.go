// internal/app/snapshot.go
package app

import (
	"encoding/binary"
	"math"
	"sort"

	"go-topdown-shooter/internal/component"
	"go-topdown-shooter/internal/system"
	"go-topdown-shooter/internal/types"
	"go-topdown-shooter/internal/vmath"

	"github.com/cespare/xxhash/v2"
)

// BulletSnapshot — состояние одного снаряда.
type BulletSnapshot struct {
	ID       types.EntityID `json:"id"`
	Position vmath.Vec2     `json:"position"`
	Velocity vmath.Vec2     `json:"velocity"`
}

// Snapshot — копия наблюдаемого состояния симуляции после тика.
type Snapshot struct {
	Tick     uint64              `json:"tick"`
	Player   vmath.Vec2          `json:"player"`
	GunLocal component.Transform `json:"gun_local"`
	Bullets  []BulletSnapshot    `json:"bullets"`
	Stats    system.Stats        `json:"stats"`
}

// Snapshot снимает состояние. Снаряды отсортированы по ID, чтобы снимок
// не зависел от порядка обхода мапы.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Tick: g.ECS.Tick, Stats: g.Stats()}
	if p, ok := g.ECS.WorldPos(g.Handles.Player); ok {
		s.Player = p
	}
	if gun, ok := g.ECS.Transforms[g.Handles.Gun]; ok {
		s.GunLocal = *gun
	}
	for id := range g.ECS.Bullets {
		tr, hasPos := g.ECS.Transforms[id]
		vel, hasVel := g.ECS.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		s.Bullets = append(s.Bullets, BulletSnapshot{ID: id, Position: tr.Pos(), Velocity: vel.Vec()})
	}
	sort.Slice(s.Bullets, func(i, j int) bool { return s.Bullets[i].ID < s.Bullets[j].ID })
	return s
}

// Checksum — xxhash от двоичного представления снимка. Одинаковый ввод
// даёт одинаковую сумму: по ней сверяют детерминизм прогонов.
func (s Snapshot) Checksum() uint64 {
	buf := make([]byte, 0, 64+len(s.Bullets)*40)
	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	f := func(v float64) { u(math.Float64bits(v)) }

	u(s.Tick)
	f(s.Player.X)
	f(s.Player.Y)
	f(s.GunLocal.X)
	f(s.GunLocal.Y)
	f(s.GunLocal.Z)
	f(s.GunLocal.Rotation)
	u(uint64(s.Stats.ShotsFired))
	u(uint64(s.Stats.Despawned))
	for _, b := range s.Bullets {
		u(uint64(b.ID))
		f(b.Position.X)
		f(b.Position.Y)
		f(b.Velocity.X)
		f(b.Velocity.Y)
	}
	return xxhash.Sum64(buf)
}
