package sim

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"

	"github.com/JaredU3077/c-wind-sub000/internal/player"
	"github.com/JaredU3077/c-wind-sub000/internal/world"
)

func newSim(t *testing.T, env *world.Environment) *Sim {
	t.Helper()
	if env == nil {
		env = world.NewEnvironment(nil)
	}
	resolver := player.NewResolver(env, player.DefaultTuning(), nil)
	s := New(env, resolver)
	s.State.Position = rl.Vector3{Y: 1.75}
	return s
}

func storeEnv() (*world.Environment, int) {
	env := world.NewEnvironment(nil)
	id := env.AddObject(world.NewBuilding("store",
		rl.Vector3{Y: 2.5, Z: -12},
		rl.Vector3{X: 10, Y: 5, Z: 8},
		0, true, world.Door{Offset: rl.Vector3{Y: -1, Z: 4}, Width: 1.6, Height: 3, Thickness: 0.4}))
	return env, id
}

func TestStepMovesFreely(t *testing.T) {
	s := newSim(t, nil)

	intended := rl.Vector3{X: 1, Y: 1.75, Z: 1}
	got := s.Step(intended)

	require.Equal(t, intended, got)
	require.Equal(t, intended, s.State.Position)
}

func TestStepRevertsOnNPCOverlap(t *testing.T) {
	s := newSim(t, nil)
	require.True(t, s.State.AddNPC(NPC{Name: "guard", Position: rl.Vector3{X: 3}, Radius: 0.4, Height: 1.8}))

	start := s.State.Position
	got := s.Step(rl.Vector3{X: 2.8, Y: 1.75})

	require.Equal(t, start, got, "agent collisions are binary: revert, never slide")
}

func TestStepAppliesConfinementInside(t *testing.T) {
	env, id := storeEnv()
	s := newSim(t, env)
	s.State.Position = rl.Vector3{Y: 1.75, Z: -12}
	s.State.Interior.Enter(id)

	got := s.Step(rl.Vector3{X: -30, Y: 1.75, Z: -12})

	// halfW = 5 - 0.4*1.5 = 4.4 around center X 0.
	require.InDelta(t, -4.4, got.X, 1e-5)
}

func TestOverlapsAgent(t *testing.T) {
	npc := NPC{Position: rl.Vector3{X: 3}, Radius: 0.4, Height: 1.8}

	require.True(t, OverlapsAgent(rl.Vector3{X: 2.8, Y: 1.75}, 0.4, 1.8, 1.75, npc))
	require.False(t, OverlapsAgent(rl.Vector3{X: 2, Y: 1.75}, 0.4, 1.8, 1.75, npc),
		"XZ distance beyond summed radii")

	tall := NPC{Position: rl.Vector3{X: 3, Y: 10}, Radius: 0.4, Height: 1.8}
	require.False(t, OverlapsAgent(rl.Vector3{X: 3, Y: 1.75}, 0.4, 1.8, 1.75, tall),
		"vertical ranges must overlap for agent collisions")
}

func TestAddNPCCapacity(t *testing.T) {
	var s State
	require.True(t, s.AddNPC(NPC{Name: "a"}))
	require.True(t, s.AddNPC(NPC{Name: "b"}))
	require.False(t, s.AddNPC(NPC{Name: "c"}), "NPC slots are a fixed gameplay bound")
	require.Equal(t, 2, s.NPCCount())
}

func TestToggleDoorEnterAndExit(t *testing.T) {
	env, id := storeEnv()
	s := newSim(t, env)
	s.State.Position = rl.Vector3{Y: 1.75, Z: -7.5} // capsule touching the door slab

	require.True(t, s.ToggleDoor())
	require.True(t, s.State.Interior.Inside)
	require.Equal(t, id, s.State.Interior.BuildingID)

	require.True(t, s.ToggleDoor())
	require.False(t, s.State.Interior.Inside)
}

func TestToggleDoorOutOfReach(t *testing.T) {
	env, _ := storeEnv()
	s := newSim(t, env)
	s.State.Position = rl.Vector3{Y: 1.75, Z: 5}

	require.False(t, s.ToggleDoor())
	require.False(t, s.State.Interior.Inside)
}

func TestToggleDoorRejectsNonEnterable(t *testing.T) {
	env := world.NewEnvironment(nil)
	env.AddObject(world.NewBuilding("smithy",
		rl.Vector3{Y: 2.5, Z: -12},
		rl.Vector3{X: 10, Y: 5, Z: 8},
		0, false, world.Door{Offset: rl.Vector3{Y: -1, Z: 4}, Width: 1.6, Height: 3, Thickness: 0.4}))
	s := newSim(t, env)
	s.State.Position = rl.Vector3{Y: 1.75, Z: -7.5}

	require.False(t, s.ToggleDoor())
	require.False(t, s.State.Interior.Inside)
}

func TestSwingSlotSaturation(t *testing.T) {
	s := newSim(t, nil)
	facing := rl.Vector3{X: 1}

	require.True(t, s.StartSwing(facing))
	require.True(t, s.StartSwing(facing))
	require.True(t, s.StartSwing(facing))
	require.False(t, s.StartSwing(facing), "only three concurrent swings")

	s.UpdateSwings(0.4) // past swingDuration, all slots free
	require.True(t, s.StartSwing(facing))
}

func TestSwingHitsTargetInReach(t *testing.T) {
	s := newSim(t, nil)
	require.True(t, s.State.AddTarget(Target{Position: rl.Vector3{X: 2, Y: 1.75}, Radius: 0.3, Health: 2}))

	require.True(t, s.StartSwing(rl.Vector3{X: 1}))
	require.Equal(t, 1, s.State.Targets[0].Health)
	require.True(t, s.State.Targets[0].Active)

	require.True(t, s.StartSwing(rl.Vector3{X: 1}))
	require.Equal(t, 0, s.State.Targets[0].Health)
	require.False(t, s.State.Targets[0].Active, "target retires at zero health")
}

func TestSwingMissesTargetOutOfReach(t *testing.T) {
	s := newSim(t, nil)
	require.True(t, s.State.AddTarget(Target{Position: rl.Vector3{X: 5, Y: 1.75}, Radius: 0.3, Health: 2}))

	require.True(t, s.StartSwing(rl.Vector3{X: 1}))
	require.Equal(t, 2, s.State.Targets[0].Health)
}
