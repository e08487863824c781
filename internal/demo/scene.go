// File: scene.go
// Title: Demo Scene
// Description: A small scene of cubes wired into a console: instance and
//              static commands, enum and composite parameters, variables,
//              named values, and open and close hooks. Used by the
//              devconsole binary and as a reference for embedding hosts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package demo

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/msto63/devconsole/foundation/console"
	"github.com/msto63/devconsole/foundation/console/coerce"
	"github.com/msto63/devconsole/foundation/console/registry"
	"github.com/msto63/devconsole/foundation/console/suggest"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
)

// Class names
const (
	CubeClass    = "Cube"
	PhysicsClass = "Physics"
)

// Color is the paint of a cube
type Color int

const (
	Red Color = iota
	Green
	Blue
	DarkRed
)

func (c Color) String() string {
	switch c {
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case DarkRed:
		return "DarkRed"
	default:
		return "Red"
	}
}

// Vector3 is a position in the scene
type Vector3 struct {
	X, Y, Z float64
}

// Cube is a tracked scene object
type Cube struct {
	Name     string
	Size     int
	Color    Color
	Position Vector3
}

// Scene owns the cubes. The console only sees them while the scene holds
// them.
type Scene struct {
	mutex   sync.Mutex
	cubes   map[string]*Cube
	gravity float64
	opened  int
}

// DefaultGravity is the gravity of a new scene
const DefaultGravity = 9.81

// NewScene creates an empty scene with earth gravity
func NewScene() *Scene {
	return &Scene{cubes: make(map[string]*Cube), gravity: DefaultGravity}
}

// Cube returns the cube named name
func (s *Scene) Cube(name string) (*Cube, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	c, ok := s.cubes[name]
	return c, ok
}

// Names returns the cube names in sorted order
func (s *Scene) Names() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	names := make([]string, 0, len(s.cubes))
	for name := range s.cubes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Gravity returns the scene gravity
func (s *Scene) Gravity() float64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.gravity
}

// SetGravity changes the scene gravity
func (s *Scene) SetGravity(g float64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.gravity = g
}

// Type tags of the demo values
var (
	ColorType   = coerce.Enum("Color", Red, Green, Blue, DarkRed)
	Vector3Type = coerce.Composite[Vector3]("Vector3", coerce.CompositeType{
		Constructors: []coerce.Constructor{
			{
				Params: []coerce.Param{{Name: "x", Type: coerce.Float64}, {Name: "y", Type: coerce.Float64}, {Name: "z", Type: coerce.Float64}},
				Build: func(a []any) (any, error) {
					return Vector3{a[0].(float64), a[1].(float64), a[2].(float64)}, nil
				},
			},
			{
				Params: []coerce.Param{{Name: "x", Type: coerce.Float64}, {Name: "y", Type: coerce.Float64}},
				Build: func(a []any) (any, error) {
					return Vector3{X: a[0].(float64), Y: a[1].(float64)}, nil
				},
			},
		},
		Statics: []coerce.Named{
			{Name: "zero", Value: Vector3{}},
			{Name: "up", Value: Vector3{Y: 1}},
			{Name: "forward", Value: Vector3{Z: 1}},
		},
		Zero: func() any { return Vector3{} },
		Fields: func(v any) []any {
			p := v.(Vector3)
			return []any{p.X, p.Y, p.Z}
		},
	})
)

func cubeCommand(name, summary string, params []registry.Param, fn func(*Cube, []any) (any, error)) *registry.Command {
	return &registry.Command{
		Name:    name,
		Summary: summary,
		Owner:   CubeClass,
		Access:  registry.Everywhere,
		Params:  params,
		Invoke: func(target any, args []any) (any, error) {
			return fn(target.(*Cube), args)
		},
	}
}

// Register wires the scene into c
func Register(c *console.Console, s *Scene) error {
	c.AddStaticType(PhysicsClass)

	spawn := &registry.Command{
		Name:    "SpawnCube",
		Summary: "Creates a cube",
		Owner:   CubeClass,
		Static:  true,
		Access:  registry.Everywhere,
		Params: []registry.Param{
			{Name: "name", Type: coerce.String, Suggestions: []string{"alpha", "beta", "gamma"}},
			{Name: "size", Type: coerce.Int, Optional: true, Default: 1},
			{Name: "color", Type: ColorType, Optional: true, Default: Red},
			{Name: "at", Type: Vector3Type, Optional: true, Default: Vector3{}},
		},
		Invoke: func(_ any, args []any) (any, error) {
			return s.spawn(c, args[0].(string), args[1].(int), args[2].(Color), args[3].(Vector3))
		},
	}

	destroy := &registry.Command{
		Name:    "DestroyCube",
		Summary: "Removes a cube from the scene",
		Owner:   CubeClass,
		Static:  true,
		Access:  registry.Everywhere,
		Params:  []registry.Param{{Name: "name", Type: coerce.String, Generator: s.Names}},
		Void:    true,
		Invoke: func(_ any, args []any) (any, error) {
			return nil, s.destroy(args[0].(string))
		},
	}

	sizes := func() []string {
		values, _ := suggest.IntRange(1, 11, 1)
		return values
	}

	cmds := []*registry.Command{
		spawn,
		destroy,
		cubeCommand("SetSize", "Resizes every cube",
			[]registry.Param{{Name: "size", Type: coerce.Int, Generator: sizes}},
			func(cb *Cube, args []any) (any, error) {
				if args[0].(int) <= 0 {
					return nil, mdwerror.New("size must be positive").
						WithCode(mdwerror.CodeValueOutOfRange).
						WithDetail("size", args[0])
				}
				cb.Size = args[0].(int)
				return nil, nil
			}),
		cubeCommand("Paint", "Paints every cube",
			[]registry.Param{{Name: "color", Type: ColorType}},
			func(cb *Cube, args []any) (any, error) {
				cb.Color = args[0].(Color)
				return nil, nil
			}),
		cubeCommand("MoveTo", "Moves every cube",
			[]registry.Param{{Name: "position", Type: Vector3Type}},
			func(cb *Cube, args []any) (any, error) {
				cb.Position = args[0].(Vector3)
				return nil, nil
			}),
		cubeCommand("Describe", "Describes every cube", nil,
			func(cb *Cube, _ []any) (any, error) {
				return fmt.Sprintf("%s: size %d, %s at %s", cb.Name, cb.Size, cb.Color,
					coerce.Format(Vector3Type, cb.Position)), nil
			}),
		cubeCommand("Tag", "Tags every cube",
			[]registry.Param{{Name: "tags", Type: coerce.ArrayOf(coerce.String)}},
			func(cb *Cube, args []any) (any, error) {
				return cb.Name + " tagged " + strings.Join(args[0].([]string), ", "), nil
			}),
		{
			Name:    "SetGravity",
			Summary: "Sets the scene gravity",
			Owner:   PhysicsClass,
			Static:  true,
			Access:  registry.Everywhere,
			Void:    true,
			Params: []registry.Param{{Name: "gravity", Type: coerce.Float64, Generator: func() []string {
				values, _ := suggest.FloatRange(0, 20, 2.5, 2)
				return values
			}}},
			Invoke: func(_ any, args []any) (any, error) {
				s.SetGravity(args[0].(float64))
				return nil, nil
			},
		},
		{
			Name:   "Welcome",
			Static: true,
			Type:   registry.OnOpen,
			Invoke: func(any, []any) (any, error) {
				s.mutex.Lock()
				s.opened++
				n := s.opened
				s.mutex.Unlock()
				return fmt.Sprintf("Scene console opened (%d)", n), nil
			},
		},
		{
			Name:   "Goodbye",
			Static: true,
			Type:   registry.OnClose,
			Invoke: func(any, []any) (any, error) { return "Scene console closed", nil },
		},
		{
			Name:   "CubeCount",
			Static: true,
			Type:   registry.OnOpenOrClose,
			Invoke: func(any, []any) (any, error) {
				return fmt.Sprintf("%d cubes in the scene", len(s.Names())), nil
			},
		},
	}

	explode := cubeCommand("Explode", "Blows up every cube", nil,
		func(cb *Cube, _ []any) (any, error) { return cb.Name + " exploded", nil })
	explode.Access = registry.EditorAndDevBuild
	pick := cubeCommand("PickCube", "Names a random cube", nil,
		func(cb *Cube, _ []any) (any, error) { return cb.Name, nil })
	pick.CallMode = registry.RandomInstance
	first := cubeCommand("FirstCube", "Names the first tracked cube", nil,
		func(cb *Cube, _ []any) (any, error) { return cb.Name, nil })
	first.CallMode = registry.SingleInstance
	cmds = append(cmds, explode, pick, first)

	for _, cmd := range cmds {
		if err := c.RegisterCommand(cmd); err != nil {
			return err
		}
	}

	vars := []*registry.Variable{
		{
			Owner: CubeClass, Name: "Name", Type: coerce.String,
			Get: func(t any) any { return t.(*Cube).Name },
		},
		{
			Owner: CubeClass, Name: "Size", Type: coerce.Int,
			Get: func(t any) any { return t.(*Cube).Size },
			Set: func(t, v any) error {
				t.(*Cube).Size = v.(int)
				return nil
			},
		},
		{
			Owner: CubeClass, Name: "Color", Type: ColorType,
			Get: func(t any) any { return t.(*Cube).Color },
			Set: func(t, v any) error {
				t.(*Cube).Color = v.(Color)
				return nil
			},
		},
		{
			Owner: CubeClass, Name: "Position", Type: Vector3Type,
			Get: func(t any) any { return t.(*Cube).Position },
			Set: func(t, v any) error {
				t.(*Cube).Position = v.(Vector3)
				return nil
			},
		},
		{
			Owner: PhysicsClass, Name: "Gravity", Type: coerce.Float64,
			Get: func(any) any { return s.Gravity() },
			Set: func(_, v any) error {
				s.SetGravity(v.(float64))
				return nil
			},
		},
	}
	for _, v := range vars {
		if err := c.RegisterVariable(v); err != nil {
			return err
		}
	}

	if err := c.RegisterNamed(Vector3Type.Name, "origin", Vector3{}); err != nil {
		return err
	}
	return c.RegisterNamed(Vector3Type.Name, "spawnPoint", Vector3{X: 5, Y: 0, Z: 5})
}

func (s *Scene) spawn(c *console.Console, name string, size int, color Color, at Vector3) (string, error) {
	s.mutex.Lock()
	if _, exists := s.cubes[name]; exists {
		s.mutex.Unlock()
		return "", mdwerror.New("cube '" + name + "' already exists").
			WithCode(mdwerror.CodeDuplicateRegistration).
			WithDetail("name", name)
	}
	cb := &Cube{Name: name, Size: size, Color: color, Position: at}
	s.cubes[name] = cb
	s.mutex.Unlock()

	console.Track(c, CubeClass, cb, console.OwnerOf(s, "Scene"))
	return "Spawned " + name, nil
}

func (s *Scene) destroy(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if _, ok := s.cubes[name]; !ok {
		return mdwerror.New("cube '" + name + "' does not exist").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("name", name)
	}
	delete(s.cubes, name)
	return nil
}
