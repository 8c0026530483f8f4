package world

import (
	"go.uber.org/zap"

	"github.com/JaredU3077/c-wind-sub000/internal/physics"
)

// NoExclude is the sentinel passed to CheckCollision when no object should be
// skipped.
const NoExclude = -1

// Environment owns the static collidable objects and answers intersection
// queries over the full set. Objects are added only during world setup; after
// that the environment is read-only, so queries need no locking on the
// simulation thread.
type Environment struct {
	objects []Object
	nextID  int
	log     *zap.Logger
}

func NewEnvironment(logger *zap.Logger) *Environment {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Environment{log: logger}
}

// AddObject registers an object, assigns its permanent id and returns it.
// Setup only; never call concurrently with collision queries.
func (e *Environment) AddObject(obj Object) int {
	id := e.nextID
	e.nextID++
	obj.setID(id)
	e.objects = append(e.objects, obj)
	e.log.Info("world object registered",
		zap.Int("id", id),
		zap.String("name", obj.Name()),
	)
	return id
}

// CheckCollision reports whether bounds intersect any collidable object,
// skipping the object whose id equals excludeID. An excludeID that matches no
// object is a no-op, identical to NoExclude.
func (e *Environment) CheckCollision(b physics.Bounds, excludeID int) bool {
	for _, obj := range e.objects {
		if !obj.Collidable() {
			continue
		}
		if excludeID != NoExclude && obj.ID() == excludeID {
			continue
		}
		if physics.Intersects(b, obj.Bounds()) {
			return true
		}
	}
	return false
}

// CheckDoorCollision returns the id of the first building whose door bounds
// intersect b. Door bounds are independent of wall bounds.
func (e *Environment) CheckDoorCollision(b physics.Bounds) (int, bool) {
	for _, obj := range e.objects {
		bld, ok := obj.(*Building)
		if !ok {
			continue
		}
		if physics.Intersects(b, bld.DoorBounds()) {
			return bld.ID(), true
		}
	}
	return 0, false
}

// Objects returns a read-only snapshot of every registered object.
func (e *Environment) Objects() []Object {
	return append([]Object(nil), e.objects...)
}

// InteractiveObjects returns the objects the interaction layer can target.
func (e *Environment) InteractiveObjects() []Object {
	var out []Object
	for _, obj := range e.objects {
		if obj.Interactive() {
			out = append(out, obj)
		}
	}
	return out
}

// FindBuilding looks up a building by its permanent id.
func (e *Environment) FindBuilding(id int) (*Building, bool) {
	for _, obj := range e.objects {
		if bld, ok := obj.(*Building); ok && bld.ID() == id {
			return bld, true
		}
	}
	return nil, false
}
