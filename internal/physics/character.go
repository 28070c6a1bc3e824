package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// GroundProbe is how far below the feet a surface still counts as ground.
	GroundProbe = 0.1

	resolveIterations = 4
)

// Character is a capsule driven by a walk direction rather than forces.
// Its location is the bottom of the capsule.
type Character struct {
	Shape     *CapsuleShape
	Mass      float32
	JumpForce float32
	// MaxSlope in degrees; steeper surfaces act as walls.
	MaxSlope float32
	UserData any

	location rl.Vector3
	velocity rl.Vector3
	walk     rl.Vector3
	onGround bool
}

func NewCharacter(radius, height, mass float32) *Character {
	return &Character{
		Shape:     NewCapsuleShape(radius, height),
		Mass:      mass,
		JumpForce: 5 * mass,
		MaxSlope:  50,
	}
}

func (c *Character) CollisionShape() Shape {
	if c.Shape == nil {
		return nil
	}
	return c.Shape
}

// SetWalkDirection sets the horizontal velocity in units per second.
func (c *Character) SetWalkDirection(v rl.Vector3) {
	c.walk = rl.Vector3{X: v.X, Z: v.Z}
}

func (c *Character) WalkDirection() rl.Vector3 { return c.walk }

// Jump gives the character an upward velocity of JumpForce/Mass when it
// stands on something. In the air it does nothing.
func (c *Character) Jump() {
	if !c.onGround || c.Mass <= 0 {
		return
	}
	c.velocity.Y = c.JumpForce / c.Mass
	c.onGround = false
}

func (c *Character) Location() rl.Vector3 { return c.location }

// SetLocation teleports the character and clears its vertical velocity.
func (c *Character) SetLocation(p rl.Vector3) {
	c.location = p
	c.velocity.Y = 0
	c.onGround = false
}

func (c *Character) Velocity() rl.Vector3 { return c.velocity }

func (c *Character) OnGround() bool { return c.onGround }

func (c *Character) groundCos() float32 {
	return math32.Cos(c.MaxSlope * rl.Deg2rad)
}

// Step advances the character by dt against the static meshes.
func (c *Character) Step(dt float32, gravity rl.Vector3, statics []*MeshShape) {
	if c.Shape == nil || dt <= 0 {
		return
	}

	c.velocity.X = c.walk.X
	c.velocity.Z = c.walk.Z
	c.velocity.Y += gravity.Y * dt

	c.location = rl.Vector3Add(c.location, rl.Vector3Scale(c.velocity, dt))

	groundCos := c.groundCos()
	c.onGround = false
	offsets := c.Shape.SphereOffsets()

	for iter := 0; iter < resolveIterations; iter++ {
		moved := false
		for _, off := range offsets {
			for _, mesh := range statics {
				center := rl.Vector3{X: c.location.X, Y: c.location.Y + off, Z: c.location.Z}
				hit, push := mesh.SphereIntersect(center, c.Shape.Radius)
				if !hit || rl.Vector3LengthSqr(push) < 1e-12 {
					continue
				}
				moved = true
				c.location = rl.Vector3Add(c.location, push)

				n := rl.Vector3Normalize(push)
				if n.Y >= groundCos {
					c.onGround = true
					if c.velocity.Y < 0 {
						c.velocity.Y = 0
					}
				} else if n.Y < -0.5 && c.velocity.Y > 0 {
					c.velocity.Y = 0
				}
			}
		}
		if !moved {
			break
		}
	}

	if !c.onGround && c.velocity.Y <= 0 {
		c.probeGround(statics, groundCos)
	}
}

func (c *Character) probeGround(statics []*MeshShape, groundCos float32) {
	origin := rl.Vector3{X: c.location.X, Y: c.location.Y + c.Shape.Radius, Z: c.location.Z}
	down := rl.Vector3{Y: -1}
	for _, mesh := range statics {
		hit, ok := mesh.Raycast(origin, down, c.Shape.Radius+GroundProbe)
		if ok && hit.Normal.Y >= groundCos {
			c.onGround = true
			if c.velocity.Y < 0 {
				c.velocity.Y = 0
			}
			return
		}
	}
}
