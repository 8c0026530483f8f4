package sim

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/JaredU3077/c-wind-sub000/internal/physics"
)

const (
	swingDuration = 0.35 // seconds a swing slot stays busy
	swingReach    = 1.6
	swingRadius   = 0.6
)

// StartSwing activates a free swing slot and applies its hit test against the
// active targets. Returns false when all slots are busy. facing is the
// player's horizontal view direction; only its XZ components matter.
func (s *Sim) StartSwing(facing rl.Vector3) bool {
	slot := -1
	for i := range s.State.Swings {
		if !s.State.Swings[i].Active {
			slot = i
			break
		}
	}
	if slot < 0 {
		return false
	}
	s.State.Swings[slot] = Swing{Active: true, Timer: swingDuration}
	s.applySwing(facing)
	return true
}

// UpdateSwings ages active swings and frees expired slots.
func (s *Sim) UpdateSwings(dt float32) {
	for i := range s.State.Swings {
		if !s.State.Swings[i].Active {
			continue
		}
		s.State.Swings[i].Timer -= dt
		if s.State.Swings[i].Timer <= 0 {
			s.State.Swings[i] = Swing{}
		}
	}
}

// applySwing tests a reach sphere in front of the player against every active
// target. At most MaxTargets pair tests per swing.
func (s *Sim) applySwing(facing rl.Vector3) {
	dir := rl.Vector3{X: facing.X, Z: facing.Z}
	length := float32(math.Sqrt(float64(dir.X*dir.X + dir.Z*dir.Z)))
	if length == 0 {
		return
	}
	dir = rl.Vector3Scale(dir, 1/length)

	tip := rl.Vector3Add(s.State.Position, rl.Vector3Scale(dir, swingReach))
	blade := physics.SphereBounds(tip, swingRadius)

	for i := 0; i < s.State.targetCount; i++ {
		t := &s.State.Targets[i]
		if !t.Active {
			continue
		}
		if physics.Intersects(blade, physics.SphereBounds(t.Position, t.Radius)) {
			t.Health--
			if t.Health <= 0 {
				t.Active = false
			}
		}
	}
}
