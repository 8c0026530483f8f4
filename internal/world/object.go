package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/JaredU3077/c-wind-sub000/internal/physics"
)

// Object is a static world object the environment can collide against. The
// interface is sealed (setID is unexported) so the variant set stays closed:
// Building, Well, Tree. Objects are built once during world setup and live for
// the process lifetime.
type Object interface {
	// ID is the permanent identifier assigned at registration. Collision
	// exclusion is keyed by it, never by position in the object list.
	ID() int
	Name() string
	Position() rl.Vector3
	Collidable() bool
	Interactive() bool
	InteractionRadius() float32
	Bounds() physics.Bounds

	setID(id int)
}

// baseObject carries the fields shared by every variant.
type baseObject struct {
	id                int
	name              string
	position          rl.Vector3
	collidable        bool
	interactive       bool
	interactionRadius float32
}

func (o *baseObject) ID() int                    { return o.id }
func (o *baseObject) Name() string               { return o.name }
func (o *baseObject) Position() rl.Vector3       { return o.position }
func (o *baseObject) Collidable() bool           { return o.collidable }
func (o *baseObject) Interactive() bool          { return o.interactive }
func (o *baseObject) InteractionRadius() float32 { return o.interactionRadius }
func (o *baseObject) setID(id int)               { o.id = id }
