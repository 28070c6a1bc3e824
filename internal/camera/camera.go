package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FlyCamera is a mouse-look camera. It never moves itself; whoever owns it
// places it with SetPosition.
type FlyCamera struct {
	Position  rl.Vector3
	Yaw       float32 // degrees, 0 looks down +X
	Pitch     float32 // degrees, clamped to ±MaxPitch
	LookSpeed float32
	FOV       float32
}

const MaxPitch = 89

func New(pos rl.Vector3) *FlyCamera {
	return &FlyCamera{
		Position:  pos,
		Yaw:       -90,
		LookSpeed: 0.1,
		FOV:       45,
	}
}

// Update applies this frame's mouse movement.
func (c *FlyCamera) Update() {
	c.Look(rl.GetMouseDelta())
}

// Look turns the camera by a mouse delta in pixels.
func (c *FlyCamera) Look(delta rl.Vector2) {
	c.Yaw += delta.X * c.LookSpeed
	c.Pitch -= delta.Y * c.LookSpeed

	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
}

// Direction is the unit view direction, pitch included.
func (c *FlyCamera) Direction() rl.Vector3 {
	yaw := c.Yaw * rl.Deg2rad
	pitch := c.Pitch * rl.Deg2rad
	return rl.Vector3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}
}

// Left is the unit vector to the camera's left on the horizontal plane.
func (c *FlyCamera) Left() rl.Vector3 {
	yaw := c.Yaw * rl.Deg2rad
	return rl.Vector3{
		X: math32.Sin(yaw),
		Y: 0,
		Z: -math32.Cos(yaw),
	}
}

func (c *FlyCamera) SetPosition(p rl.Vector3) {
	c.Position = p
}

// LookAt points the camera at target from its current position.
func (c *FlyCamera) LookAt(target rl.Vector3) {
	d := rl.Vector3Subtract(target, c.Position)
	if rl.Vector3LengthSqr(d) == 0 {
		return
	}
	d = rl.Vector3Normalize(d)
	c.Yaw = math32.Atan2(d.Z, d.X) * rl.Rad2deg
	c.Pitch = math32.Asin(d.Y) * rl.Rad2deg
	c.Look(rl.Vector2{})
}

func (c *FlyCamera) Raylib() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.Direction()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
