package sim

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/JaredU3077/c-wind-sub000/internal/player"
)

// Fixed capacities. These are gameplay constraints, not sizing hints: keeping
// the arrays fixed keeps per-tick work predictable.
const (
	MaxSwings  = 3
	MaxTargets = 5
	MaxNPCs    = 2
)

// NPC is a dynamic agent the player cannot walk through. Position is the base
// of its capsule.
type NPC struct {
	Name     string
	Position rl.Vector3
	Radius   float32
	Height   float32
}

// Swing is one active melee swing slot.
type Swing struct {
	Active bool
	Timer  float32
}

// Target is a destructible practice target.
type Target struct {
	Active   bool
	Position rl.Vector3
	Radius   float32
	Health   int
}

// State owns all mutable simulation data for one player session. Formerly
// global arrays live here as fixed-capacity fields so the tick functions get
// everything by reference.
type State struct {
	Position rl.Vector3
	Interior player.Interior

	Swings  [MaxSwings]Swing
	Targets [MaxTargets]Target
	NPCs    [MaxNPCs]NPC

	npcCount    int
	targetCount int
}

// AddNPC registers an NPC, returning false when all slots are taken.
func (s *State) AddNPC(n NPC) bool {
	if s.npcCount >= MaxNPCs {
		return false
	}
	s.NPCs[s.npcCount] = n
	s.npcCount++
	return true
}

// AddTarget registers a target, returning false when all slots are taken.
func (s *State) AddTarget(t Target) bool {
	if s.targetCount >= MaxTargets {
		return false
	}
	t.Active = true
	s.Targets[s.targetCount] = t
	s.targetCount++
	return true
}

func (s *State) NPCCount() int { return s.npcCount }

// OverlapsAgent reports whether the player capsule at an eye-level position
// touches the NPC: XZ center distance against summed radii plus vertical
// range overlap. Symmetric, and simpler than the wall tests on purpose:
// agent collisions are binary accept/reject, never slid along.
func OverlapsAgent(pos rl.Vector3, radius, height, eyeHeight float32, n NPC) bool {
	dx := pos.X - n.Position.X
	dz := pos.Z - n.Position.Z
	if float32(math.Sqrt(float64(dx*dx+dz*dz))) > radius+n.Radius {
		return false
	}
	aMin := pos.Y - eyeHeight
	aMax := aMin + height
	return aMin <= n.Position.Y+n.Height && aMax >= n.Position.Y
}
