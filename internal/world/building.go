package world

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/JaredU3077/c-wind-sub000/internal/physics"
)

// Door describes a building's doorway. Offset is relative to the building
// center, in the building's local frame; Width/Height/Thickness span the door
// slab. The door produces its own collision bounds, separate from the wall
// bounds, so the interaction layer can test "near the door" without touching
// the wall volume.
type Door struct {
	Offset      rl.Vector3
	Width       float32
	Height      float32
	Thickness   float32
	RotationDeg float32
}

// Building is a box-shaped enterable structure.
type Building struct {
	baseObject
	size        rl.Vector3
	rotationDeg float32
	enterable   bool
	door        Door
}

func NewBuilding(name string, position, size rl.Vector3, rotationDeg float32, enterable bool, door Door) *Building {
	return &Building{
		baseObject: baseObject{
			name:              name,
			position:          position,
			collidable:        true,
			interactive:       enterable,
			interactionRadius: 3.0,
		},
		size:        size,
		rotationDeg: rotationDeg,
		enterable:   enterable,
		door:        door,
	}
}

func (b *Building) Size() rl.Vector3 { return b.size }
func (b *Building) Enterable() bool  { return b.enterable }
func (b *Building) Door() Door       { return b.door }

func (b *Building) Bounds() physics.Bounds {
	return physics.BoxBounds(b.position, b.size, b.rotationDeg)
}

// DoorBounds returns the door slab's collision bounds in world space. This is
// the one place yaw is honored: the door offset rotates with the building so
// the slab lands on the correct wall.
func (b *Building) DoorBounds() physics.Bounds {
	offset := rotateY(b.door.Offset, b.rotationDeg)
	pos := rl.Vector3Add(b.position, offset)
	size := rl.Vector3{X: b.door.Width, Y: b.door.Height, Z: b.door.Thickness}
	return physics.BoxBounds(pos, size, b.rotationDeg+b.door.RotationDeg)
}

// rotateY rotates a vector about the vertical axis by deg degrees.
func rotateY(v rl.Vector3, deg float32) rl.Vector3 {
	r := float64(deg) * math.Pi / 180
	s := float32(math.Sin(r))
	c := float32(math.Cos(r))
	return rl.Vector3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}
