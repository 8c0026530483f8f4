package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Shape selects which components of a Bounds' Size are meaningful.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeSphere
	ShapeCylinder
	ShapeCapsule
)

// Bounds describes a collision volume. Box and Sphere positions are the
// volume's center; Cylinder and Capsule positions are the base (bottom-center).
// Size components by shape:
//
//	Box:              full width / height / depth
//	Sphere:           radius / - / -
//	Cylinder/Capsule: radius / height / radius
//
// RotationDeg is yaw about the vertical axis. It is read only when placing
// door geometry; Intersects treats every volume as axis-aligned.
type Bounds struct {
	Shape       Shape
	Position    rl.Vector3
	Size        rl.Vector3
	RotationDeg float32
}

// BoxBounds creates box bounds centered on pos. Negative size components are
// clamped to zero.
func BoxBounds(pos, size rl.Vector3, rotationDeg float32) Bounds {
	return Bounds{
		Shape:       ShapeBox,
		Position:    pos,
		Size:        clampSize(size),
		RotationDeg: rotationDeg,
	}
}

// SphereBounds creates sphere bounds centered on pos.
func SphereBounds(pos rl.Vector3, radius float32) Bounds {
	return Bounds{
		Shape:    ShapeSphere,
		Position: pos,
		Size:     clampSize(rl.Vector3{X: radius}),
	}
}

// CylinderBounds creates cylinder bounds with pos as the bottom-center.
func CylinderBounds(pos rl.Vector3, radius, height float32) Bounds {
	return Bounds{
		Shape:    ShapeCylinder,
		Position: pos,
		Size:     clampSize(rl.Vector3{X: radius, Y: height, Z: radius}),
	}
}

// CapsuleBounds creates capsule bounds with pos as the bottom-center. Capsules
// collide as flat-ended cylinders; there are no hemispherical end caps.
func CapsuleBounds(pos rl.Vector3, radius, height float32) Bounds {
	return Bounds{
		Shape:    ShapeCapsule,
		Position: pos,
		Size:     clampSize(rl.Vector3{X: radius, Y: height, Z: radius}),
	}
}

// Min returns the lower corner of box bounds.
func (b Bounds) Min() rl.Vector3 {
	half := rl.Vector3Scale(b.Size, 0.5)
	return rl.Vector3Subtract(b.Position, half)
}

// Max returns the upper corner of box bounds.
func (b Bounds) Max() rl.Vector3 {
	half := rl.Vector3Scale(b.Size, 0.5)
	return rl.Vector3Add(b.Position, half)
}

// Radius returns the radius component for sphere, cylinder and capsule bounds.
func (b Bounds) Radius() float32 {
	return b.Size.X
}

// Height returns the height component for cylinder and capsule bounds.
func (b Bounds) Height() float32 {
	return b.Size.Y
}

func clampSize(size rl.Vector3) rl.Vector3 {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	if size.Z < 0 {
		size.Z = 0
	}
	return size
}
