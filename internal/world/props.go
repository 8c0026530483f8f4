package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/JaredU3077/c-wind-sub000/internal/physics"
)

// Well is a cylindrical prop the player can interact with. Position is the
// base of the cylinder.
type Well struct {
	baseObject
	radius float32
	height float32
}

func NewWell(name string, position rl.Vector3, radius, height float32) *Well {
	return &Well{
		baseObject: baseObject{
			name:              name,
			position:          position,
			collidable:        true,
			interactive:       true,
			interactionRadius: 2.5,
		},
		radius: radius,
		height: height,
	}
}

func (w *Well) Bounds() physics.Bounds {
	return physics.CylinderBounds(w.position, w.radius, w.height)
}

// Tree is a cylindrical obstacle approximating the trunk. Position is the
// base of the cylinder.
type Tree struct {
	baseObject
	radius float32
	height float32
}

func NewTree(name string, position rl.Vector3, radius, height float32) *Tree {
	return &Tree{
		baseObject: baseObject{
			name:       name,
			position:   position,
			collidable: true,
		},
		radius: radius,
		height: height,
	}
}

func (t *Tree) Bounds() physics.Bounds {
	return physics.CylinderBounds(t.position, t.radius, t.height)
}
