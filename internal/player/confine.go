package player

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// groundLevel is the floor height of every interior.
const groundLevel = 0

// Interior tracks whether the player is inside a building. The resolver only
// consumes this state; the interaction layer decides when to transition.
type Interior struct {
	Inside     bool
	BuildingID int
}

func (i *Interior) Enter(buildingID int) {
	i.Inside = true
	i.BuildingID = buildingID
}

func (i *Interior) Exit() {
	i.Inside = false
	i.BuildingID = -1
}

// Confine clamps pos into the interior envelope of the building the player is
// inside. Applied after wall and agent resolution; it is a hard box
// constraint, not a collision test, and can override the resolver's result.
// An unregistered building id skips confinement and logs it; the player
// moves unconstrained rather than the tick failing.
func (r *Resolver) Confine(pos rl.Vector3, radius float32, interior Interior) rl.Vector3 {
	if !interior.Inside {
		return pos
	}
	bld, ok := r.world.FindBuilding(interior.BuildingID)
	if !ok {
		r.log.Debug("interior confinement skipped: building not registered",
			zap.Int("building_id", interior.BuildingID),
		)
		return pos
	}

	center := bld.Position()
	size := bld.Size()
	halfW := size.X/2 - radius*r.tuning.ConfineMargin
	halfD := size.Z/2 - radius*r.tuning.ConfineMargin
	top := center.Y + size.Y/2 - r.tuning.Headroom

	pos.X = clamp(pos.X, center.X-halfW, center.X+halfW)
	pos.Z = clamp(pos.Z, center.Z-halfD, center.Z+halfD)
	pos.Y = clamp(pos.Y, groundLevel+r.tuning.EyeHeight, top)
	return pos
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
