package player

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/JaredU3077/c-wind-sub000/internal/physics"
	"github.com/JaredU3077/c-wind-sub000/internal/world"
)

// CollisionWorld is the slice of the environment the resolver needs.
type CollisionWorld interface {
	CheckCollision(b physics.Bounds, excludeID int) bool
	FindBuilding(id int) (*world.Building, bool)
}

// Tuning holds the player movement parameters.
type Tuning struct {
	EyeHeight     float32 // camera height above the feet
	Radius        float32 // capsule radius
	Height        float32 // capsule height
	SubSteps      int     // interpolation steps between current and intended
	ConfineMargin float32 // radius multiplier shrinking the interior envelope
	Headroom      float32 // clearance kept below a building's ceiling
}

func DefaultTuning() Tuning {
	return Tuning{
		EyeHeight:     1.75,
		Radius:        0.4,
		Height:        1.8,
		SubSteps:      10,
		ConfineMargin: 1.5,
		Headroom:      0.5,
	}
}

// TuningFromLayout applies layout overrides on top of the defaults.
func TuningFromLayout(def world.TuningDef) Tuning {
	t := DefaultTuning()
	if def.EyeHeight > 0 {
		t.EyeHeight = def.EyeHeight
	}
	if def.Radius > 0 {
		t.Radius = def.Radius
	}
	if def.Height > 0 {
		t.Height = def.Height
	}
	if def.SubSteps > 0 {
		t.SubSteps = def.SubSteps
	}
	if def.ConfineMargin > 0 {
		t.ConfineMargin = def.ConfineMargin
	}
	if def.Headroom > 0 {
		t.Headroom = def.Headroom
	}
	return t
}

// MovementQuery is one tick's worth of resolver input. Exclude is kept for
// interaction-layer queries; wall resolution ignores it (see Resolve).
type MovementQuery struct {
	Current  rl.Vector3
	Intended rl.Vector3
	Radius   float32
	Height   float32
	Exclude  int
}

// Resolver converts an intended position into a physically valid one.
type Resolver struct {
	world  CollisionWorld
	tuning Tuning
	log    *zap.Logger
}

func NewResolver(w CollisionWorld, tuning Tuning, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{world: w, tuning: tuning, log: logger}
}

func (r *Resolver) Tuning() Tuning { return r.tuning }

// AgentBounds builds the player's capsule at an eye-level position. The
// capsule base sits EyeHeight below the given point.
func (r *Resolver) AgentBounds(pos rl.Vector3, radius, height float32) physics.Bounds {
	base := rl.Vector3{X: pos.X, Y: pos.Y - r.tuning.EyeHeight, Z: pos.Z}
	return physics.CapsuleBounds(base, radius, height)
}

// Resolve returns the closest valid position to q.Intended:
//
//  1. accept q.Intended outright if its capsule is clear
//  2. sub-step from Current toward Intended and keep the furthest clear step
//  3. axis fallbacks: keep X+Y, then keep Z+Y, then keep Y only. Vertical
//     motion is never sacrificed, so sliding cannot cancel a jump
//  4. freeze at Current
//
// Wall queries always pass NoExclude: excluding the building the player is
// "inside" reintroduces the stale-state race that id-based exclusion was
// built to remove, so self-exclusion stays disabled while walking. The
// query's Exclude field is not consulted here.
//
// Worst case is 14 environment queries (1 + SubSteps + 3).
func (r *Resolver) Resolve(q MovementQuery) rl.Vector3 {
	if !r.blocked(q.Intended, q.Radius, q.Height) {
		return q.Intended
	}

	best := q.Current
	found := false
	steps := r.tuning.SubSteps
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps)
		p := rl.Vector3Lerp(q.Current, q.Intended, t)
		if !r.blocked(p, q.Radius, q.Height) {
			best = p
			found = true
		}
	}
	if found {
		return best
	}

	// Fallback order is load-bearing: lateral motion is preferred over depth.
	fallbacks := [3]rl.Vector3{
		{X: q.Intended.X, Y: q.Intended.Y, Z: q.Current.Z},
		{X: q.Current.X, Y: q.Intended.Y, Z: q.Intended.Z},
		{X: q.Current.X, Y: q.Intended.Y, Z: q.Current.Z},
	}
	for _, p := range fallbacks {
		if !r.blocked(p, q.Radius, q.Height) {
			return p
		}
	}

	return q.Current
}

func (r *Resolver) blocked(pos rl.Vector3, radius, height float32) bool {
	return r.world.CheckCollision(r.AgentBounds(pos, radius, height), world.NoExclude)
}
