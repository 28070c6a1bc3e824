package physics

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNoShape         = errors.New("physics: body has no collision shape")
	ErrAlreadyAdded    = errors.New("physics: body already in space")
	ErrUnsupportedBody = errors.New("physics: unsupported body")
)

const maxSubsteps = 8

// Space owns the static geometry and the characters moving through it.
type Space struct {
	Gravity    rl.Vector3
	MaxSubstep float32

	statics    []*RigidBody
	characters []*Character
}

func NewSpace(gravity rl.Vector3) *Space {
	return &Space{
		Gravity:    gravity,
		MaxSubstep: 1.0 / 60.0,
	}
}

// Add registers a body. Static bodies must carry a MeshShape.
func (s *Space) Add(body Body) error {
	if body == nil || body.CollisionShape() == nil {
		return ErrNoShape
	}
	if s.contains(body) {
		return ErrAlreadyAdded
	}

	switch b := body.(type) {
	case *RigidBody:
		if !b.IsStatic() {
			return fmt.Errorf("%w: rigid body with mass %g", ErrUnsupportedBody, b.Mass)
		}
		mesh, ok := b.Shape.(*MeshShape)
		if !ok {
			return fmt.Errorf("%w: static body needs a mesh shape, got %T", ErrUnsupportedBody, b.Shape)
		}
		s.statics = append(s.statics, b)
		slog.Debug("physics: static body added", "triangles", mesh.TriangleCount())
	case *Character:
		s.characters = append(s.characters, b)
		slog.Debug("physics: character added",
			"radius", b.Shape.Radius, "height", b.Shape.Height, "mass", b.Mass)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedBody, body)
	}
	return nil
}

func (s *Space) contains(body Body) bool {
	for _, b := range s.statics {
		if Body(b) == body {
			return true
		}
	}
	for _, c := range s.characters {
		if Body(c) == body {
			return true
		}
	}
	return false
}

// Remove drops a body; it reports whether the body was present.
func (s *Space) Remove(body Body) bool {
	for i, b := range s.statics {
		if Body(b) == body {
			s.statics = append(s.statics[:i], s.statics[i+1:]...)
			return true
		}
	}
	for i, c := range s.characters {
		if Body(c) == body {
			s.characters = append(s.characters[:i], s.characters[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Space) Statics() []*RigidBody { return s.statics }

func (s *Space) Characters() []*Character { return s.characters }

func (s *Space) meshes() []*MeshShape {
	meshes := make([]*MeshShape, 0, len(s.statics))
	for _, b := range s.statics {
		meshes = append(meshes, b.Shape.(*MeshShape))
	}
	return meshes
}

// Step advances the simulation by dt in equal substeps no longer than
// MaxSubstep. Long frames are capped so a stall does not spiral.
func (s *Space) Step(dt float32) {
	if dt <= 0 || len(s.characters) == 0 {
		return
	}
	steps := 1
	if s.MaxSubstep > 0 {
		steps = int(math32.Ceil(dt / s.MaxSubstep))
	}
	if steps > maxSubsteps {
		steps = maxSubsteps
		dt = s.MaxSubstep * maxSubsteps
	}
	h := dt / float32(steps)

	meshes := s.meshes()
	for i := 0; i < steps; i++ {
		for _, c := range s.characters {
			c.Step(h, s.Gravity, meshes)
		}
	}
}

// Raycast returns the closest hit against the static bodies.
func (s *Space) Raycast(origin, dir rl.Vector3, maxDist float32) (Hit, bool) {
	var best Hit
	found := false
	for _, b := range s.statics {
		hit, ok := b.Shape.(*MeshShape).Raycast(origin, dir, maxDist)
		if !ok || (found && hit.Distance >= best.Distance) {
			continue
		}
		hit.Body = b
		best = hit
		found = true
	}
	return best, found
}
