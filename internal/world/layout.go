package world

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrInvalidLayout is wrapped by every layout validation failure.
var ErrInvalidLayout = errors.New("invalid world layout")

// Layout is the on-disk world definition: objects plus player tuning.
type Layout struct {
	Player    TuningDef     `yaml:"player"`
	Buildings []BuildingDef `yaml:"buildings"`
	Wells     []WellDef     `yaml:"wells"`
	Trees     []TreeDef     `yaml:"trees"`
	NPCs      []NPCDef      `yaml:"npcs"`
}

// TuningDef overrides the player movement defaults. Zero fields keep the
// default value.
type TuningDef struct {
	EyeHeight     float32 `yaml:"eye_height"`
	Radius        float32 `yaml:"radius"`
	Height        float32 `yaml:"height"`
	SubSteps      int     `yaml:"sub_steps"`
	ConfineMargin float32 `yaml:"confine_margin"`
	Headroom      float32 `yaml:"headroom"`
}

type BuildingDef struct {
	Name      string     `yaml:"name"`
	Position  [3]float32 `yaml:"position"`
	Size      [3]float32 `yaml:"size"`
	Rotation  float32    `yaml:"rotation"`
	Enterable bool       `yaml:"enterable"`
	Door      DoorDef    `yaml:"door"`
}

type DoorDef struct {
	Offset    [3]float32 `yaml:"offset"`
	Width     float32    `yaml:"width"`
	Height    float32    `yaml:"height"`
	Thickness float32    `yaml:"thickness"`
	Rotation  float32    `yaml:"rotation"`
}

type WellDef struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Radius   float32    `yaml:"radius"`
	Height   float32    `yaml:"height"`
}

type TreeDef struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Radius   float32    `yaml:"radius"`
	Height   float32    `yaml:"height"`
}

type NPCDef struct {
	Name     string     `yaml:"name"`
	Position [3]float32 `yaml:"position"`
	Radius   float32    `yaml:"radius"`
	Height   float32    `yaml:"height"`
}

// LoadLayout reads and validates a world layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return ParseLayout(data)
}

// ParseLayout parses and validates layout YAML.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Layout) validate() error {
	for _, b := range l.Buildings {
		if b.Size[0] < 0 || b.Size[1] < 0 || b.Size[2] < 0 {
			return fmt.Errorf("%w: building %q has negative size", ErrInvalidLayout, b.Name)
		}
		if b.Door.Width < 0 || b.Door.Height < 0 || b.Door.Thickness < 0 {
			return fmt.Errorf("%w: building %q has negative door size", ErrInvalidLayout, b.Name)
		}
	}
	for _, w := range l.Wells {
		if w.Radius < 0 || w.Height < 0 {
			return fmt.Errorf("%w: well %q has negative size", ErrInvalidLayout, w.Name)
		}
	}
	for _, t := range l.Trees {
		if t.Radius < 0 || t.Height < 0 {
			return fmt.Errorf("%w: tree %q has negative size", ErrInvalidLayout, t.Name)
		}
	}
	for _, n := range l.NPCs {
		if n.Radius < 0 || n.Height < 0 {
			return fmt.Errorf("%w: npc %q has negative size", ErrInvalidLayout, n.Name)
		}
	}
	return nil
}

// BuildEnvironment constructs and populates the environment from a layout.
// This is the one-time world setup pass; ids are assigned in definition order.
func BuildEnvironment(l *Layout, logger *zap.Logger) *Environment {
	env := NewEnvironment(logger)
	for _, def := range l.Buildings {
		door := Door{
			Offset:      vec3(def.Door.Offset),
			Width:       def.Door.Width,
			Height:      def.Door.Height,
			Thickness:   def.Door.Thickness,
			RotationDeg: def.Door.Rotation,
		}
		env.AddObject(NewBuilding(def.Name, vec3(def.Position), vec3(def.Size), def.Rotation, def.Enterable, door))
	}
	for _, def := range l.Wells {
		env.AddObject(NewWell(def.Name, vec3(def.Position), def.Radius, def.Height))
	}
	for _, def := range l.Trees {
		env.AddObject(NewTree(def.Name, vec3(def.Position), def.Radius, def.Height))
	}
	return env
}

func vec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}
