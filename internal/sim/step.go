package sim

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/JaredU3077/c-wind-sub000/internal/player"
	"github.com/JaredU3077/c-wind-sub000/internal/world"
)

// Sim wires the environment, the movement resolver and the session state into
// the per-tick pipeline. Single-threaded: Step runs once per simulation tick
// on the same goroutine that gathers input.
type Sim struct {
	Env      *world.Environment
	Resolver *player.Resolver
	State    State
}

func New(env *world.Environment, resolver *player.Resolver) *Sim {
	return &Sim{Env: env, Resolver: resolver}
}

// Step advances the player toward intended and writes back the corrected
// position: wall resolution, then binary rejection against NPCs, then
// interior confinement. Always returns a valid position; worst case the
// player stays put this tick.
func (s *Sim) Step(intended rl.Vector3) rl.Vector3 {
	t := s.Resolver.Tuning()

	pos := s.Resolver.Resolve(player.MovementQuery{
		Current:  s.State.Position,
		Intended: intended,
		Radius:   t.Radius,
		Height:   t.Height,
		Exclude:  world.NoExclude,
	})

	for i := 0; i < s.State.npcCount; i++ {
		if OverlapsAgent(pos, t.Radius, t.Height, t.EyeHeight, s.State.NPCs[i]) {
			pos = s.State.Position
			break
		}
	}

	pos = s.Resolver.Confine(pos, t.Radius, s.State.Interior)

	s.State.Position = pos
	return pos
}

// ToggleDoor flips the inside/outside state: outside, it enters the enterable
// building whose door the player capsule is touching; inside, it exits.
// Returns false when there is no door in reach.
func (s *Sim) ToggleDoor() bool {
	if s.State.Interior.Inside {
		s.State.Interior.Exit()
		return true
	}

	t := s.Resolver.Tuning()
	agent := s.Resolver.AgentBounds(s.State.Position, t.Radius, t.Height)
	id, ok := s.Env.CheckDoorCollision(agent)
	if !ok {
		return false
	}
	bld, ok := s.Env.FindBuilding(id)
	if !ok || !bld.Enterable() {
		return false
	}
	s.State.Interior.Enter(id)
	return true
}
