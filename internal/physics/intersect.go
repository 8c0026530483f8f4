package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Intersects tests whether two bounds overlap. Dispatch is on a's shape first,
// then b's; capsules collide as cylinders. Pairs without an explicit rule
// return false. Callers rely on that conservative default, so adding coverage
// for a new pair is a behavior change, not a fix. Touching volumes count as
// intersecting; no epsilon is applied anywhere.
func Intersects(a, b Bounds) bool {
	switch normalShape(a.Shape) {
	case ShapeBox:
		switch normalShape(b.Shape) {
		case ShapeBox:
			return boxVsBox(a, b)
		case ShapeSphere:
			return boxVsSphere(a, b)
		case ShapeCylinder:
			return boxVsCylinder(a, b)
		}
	case ShapeSphere:
		switch normalShape(b.Shape) {
		case ShapeSphere, ShapeCylinder:
			return centersWithinRadii(a, b)
		}
	case ShapeCylinder:
		switch normalShape(b.Shape) {
		case ShapeCylinder:
			return cylinderVsCylinder(a, b)
		case ShapeBox:
			return cylinderVsBox(a, b)
		}
	}
	return false
}

// PointInBounds tests whether a point lies inside the given bounds.
func PointInBounds(p rl.Vector3, b Bounds) bool {
	switch normalShape(b.Shape) {
	case ShapeBox:
		min, max := b.Min(), b.Max()
		return p.X >= min.X && p.X <= max.X &&
			p.Y >= min.Y && p.Y <= max.Y &&
			p.Z >= min.Z && p.Z <= max.Z
	case ShapeSphere:
		return rl.Vector3Distance(p, b.Position) <= b.Radius()
	case ShapeCylinder:
		if p.Y < b.Position.Y || p.Y > b.Position.Y+b.Height() {
			return false
		}
		return horizontalDistance(p, b.Position) <= b.Radius()
	}
	return false
}

func normalShape(s Shape) Shape {
	if s == ShapeCapsule {
		return ShapeCylinder
	}
	return s
}

func boxVsBox(a, b Bounds) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y &&
		aMin.Z <= bMax.Z && aMax.Z >= bMin.Z
}

func boxVsSphere(box, sphere Bounds) bool {
	min, max := box.Min(), box.Max()
	closest := rl.Vector3{
		X: clamp(sphere.Position.X, min.X, max.X),
		Y: clamp(sphere.Position.Y, min.Y, max.Y),
		Z: clamp(sphere.Position.Z, min.Z, max.Z),
	}
	dx := sphere.Position.X - closest.X
	dy := sphere.Position.Y - closest.Y
	dz := sphere.Position.Z - closest.Z
	r := sphere.Radius()
	return dx*dx+dy*dy+dz*dz <= r*r
}

// boxVsCylinder approximates the overlap as a point-containment check of the
// cylinder's base point. Coarse, but it is what the doorway and prop queries
// were tuned against; the precise direction is cylinderVsBox.
func boxVsCylinder(box, cyl Bounds) bool {
	min, max := box.Min(), box.Max()
	p := cyl.Position
	return p.X >= min.X && p.X <= max.X &&
		p.Y >= min.Y && p.Y <= max.Y &&
		p.Z >= min.Z && p.Z <= max.Z
}

// centersWithinRadii covers sphere-vs-sphere and sphere-vs-cylinder: full 3D
// center distance against the sum of the radii.
func centersWithinRadii(a, b Bounds) bool {
	return rl.Vector3Distance(a.Position, b.Position) <= a.Radius()+b.Radius()
}

// cylinderVsCylinder compares XZ-plane center distance only; vertical overlap
// is not checked for this pair.
func cylinderVsCylinder(a, b Bounds) bool {
	return horizontalDistance(a.Position, b.Position) <= a.Radius()+b.Radius()
}

func cylinderVsBox(cyl, box Bounds) bool {
	min, max := box.Min(), box.Max()
	closest := rl.Vector3{
		X: clamp(cyl.Position.X, min.X, max.X),
		Y: cyl.Position.Y,
		Z: clamp(cyl.Position.Z, min.Z, max.Z),
	}
	if horizontalDistance(cyl.Position, closest) > cyl.Radius() {
		return false
	}
	return rangesOverlap(cyl.Position.Y, cyl.Position.Y+cyl.Height(), min.Y, max.Y)
}
