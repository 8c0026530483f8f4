// Headless driver: loads the village layout and runs a scripted movement
// sequence through the resolver, logging each phase's corrected positions.
package main

import (
	"flag"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/JaredU3077/c-wind-sub000/internal/player"
	"github.com/JaredU3077/c-wind-sub000/internal/sim"
	"github.com/JaredU3077/c-wind-sub000/internal/world"
)

const tickRate = 1.0 / 60.0

func main() {
	layoutPath := flag.String("layout", "assets/world/village.yaml", "world layout file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	layout, err := world.LoadLayout(*layoutPath)
	if err != nil {
		logger.Error("layout rejected", zap.Error(err))
		os.Exit(1)
	}

	env := world.BuildEnvironment(layout, logger)
	tuning := player.TuningFromLayout(layout.Player)
	resolver := player.NewResolver(env, tuning, logger)

	s := sim.New(env, resolver)
	s.State.Position = rl.Vector3{X: 0, Y: tuning.EyeHeight, Z: 0}
	for _, def := range layout.NPCs {
		s.State.AddNPC(sim.NPC{
			Name:     def.Name,
			Position: rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]},
			Radius:   def.Radius,
			Height:   def.Height,
		})
	}

	walk(s, logger, "head-on into the store wall", rl.Vector3{X: 0, Y: tuning.EyeHeight, Z: -9}, 240)
	walk(s, logger, "graze the store corner", rl.Vector3{X: 5.6, Y: tuning.EyeHeight, Z: -9}, 240)
	walk(s, logger, "approach the store door", rl.Vector3{X: 0, Y: tuning.EyeHeight, Z: -7.5}, 480)

	if s.ToggleDoor() {
		logger.Info("entered building", zap.Int("building_id", s.State.Interior.BuildingID))
		walk(s, logger, "wander inside, confined", rl.Vector3{X: -30, Y: tuning.EyeHeight, Z: -12}, 240)
		s.ToggleDoor()
		logger.Info("stepped back outside")
	} else {
		logger.Info("no door in reach")
	}

	walk(s, logger, "return to the well", rl.Vector3{X: 6, Y: tuning.EyeHeight, Z: 2}, 240)
	logger.Info("run complete", zap.Float32("x", s.State.Position.X), zap.Float32("z", s.State.Position.Z))
}

// walk steps the simulation toward target at walking speed for at most
// maxTicks ticks, stopping early once progress dies out.
func walk(s *sim.Sim, logger *zap.Logger, phase string, target rl.Vector3, maxTicks int) {
	const speed = 4.0

	logger.Info("phase start", zap.String("phase", phase))
	for tick := 0; tick < maxTicks; tick++ {
		delta := rl.Vector3Subtract(target, s.State.Position)
		dist := rl.Vector3Length(delta)
		if dist < 0.05 {
			break
		}
		step := float32(speed * tickRate)
		if step > dist {
			step = dist
		}
		intended := rl.Vector3Add(s.State.Position, rl.Vector3Scale(rl.Vector3Normalize(delta), step))

		before := s.State.Position
		after := s.Step(intended)
		if rl.Vector3Distance(before, after) < 1e-6 {
			break
		}
	}
	logger.Info("phase end",
		zap.String("phase", phase),
		zap.Float32("x", s.State.Position.X),
		zap.Float32("y", s.State.Position.Y),
		zap.Float32("z", s.State.Position.Z),
	)
}
