package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"fpsdemo/internal/engine"
)

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	engine.BaseComponent
	Color rl.Color
}

func NewAmbientLight(color rl.Color) *AmbientLight {
	return &AmbientLight{Color: color}
}

// ColorFloat returns the color as RGBA in [0,1] for shader uniforms.
func (l *AmbientLight) ColorFloat() []float32 {
	return colorFloat(l.Color, 1)
}

// DirectionalLight shines along Direction from infinitely far away.
type DirectionalLight struct {
	engine.BaseComponent
	Direction rl.Vector3
	Color     rl.Color
	Intensity float32
}

// NewDirectionalLight normalizes dir. A zero direction points straight down.
func NewDirectionalLight(dir rl.Vector3, color rl.Color) *DirectionalLight {
	l := &DirectionalLight{Color: color, Intensity: 1}
	l.SetDirection(dir)
	return l
}

func (l *DirectionalLight) SetDirection(dir rl.Vector3) {
	if rl.Vector3LengthSqr(dir) == 0 {
		dir = rl.Vector3{Y: -1}
	}
	l.Direction = rl.Vector3Normalize(dir)
}

func (l *DirectionalLight) ColorFloat() []float32 {
	return colorFloat(l.Color, l.Intensity)
}

func (l *DirectionalLight) DirectionFloat() []float32 {
	return []float32{l.Direction.X, l.Direction.Y, l.Direction.Z}
}

func colorFloat(c rl.Color, scale float32) []float32 {
	return []float32{
		float32(c.R) / 255.0 * scale,
		float32(c.G) / 255.0 * scale,
		float32(c.B) / 255.0 * scale,
		float32(c.A) / 255.0,
	}
}

// ColorFromFloats converts an RGBA quadruple in [0,1] to a raylib color,
// clamping out of range channels.
func ColorFromFloats(v [4]float32) rl.Color {
	return rl.ColorFromNormalized(rl.Vector4{
		X: rl.Clamp(v[0], 0, 1),
		Y: rl.Clamp(v[1], 0, 1),
		Z: rl.Clamp(v[2], 0, 1),
		W: rl.Clamp(v[3], 0, 1),
	})
}

func Vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
