package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestDirectionAndLeft(t *testing.T) {
	tests := []struct {
		name     string
		yaw      float32
		wantDir  rl.Vector3
		wantLeft rl.Vector3
	}{
		{"facing +X", 0, rl.Vector3{X: 1}, rl.Vector3{Z: -1}},
		{"facing -Z", -90, rl.Vector3{Z: -1}, rl.Vector3{X: -1}},
		{"facing +Z", 90, rl.Vector3{Z: 1}, rl.Vector3{X: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(rl.Vector3{})
			c.Yaw = tt.yaw
			dir, left := c.Direction(), c.Left()
			assert.InDelta(t, tt.wantDir.X, dir.X, 1e-5)
			assert.InDelta(t, tt.wantDir.Z, dir.Z, 1e-5)
			assert.InDelta(t, tt.wantLeft.X, left.X, 1e-5)
			assert.InDelta(t, tt.wantLeft.Z, left.Z, 1e-5)

			// Left is to the left: up x forward.
			cross := rl.Vector3CrossProduct(rl.Vector3{Y: 1}, dir)
			assert.InDelta(t, cross.X, left.X, 1e-5)
			assert.InDelta(t, cross.Z, left.Z, 1e-5)
		})
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.Look(rl.Vector2{Y: -10000})
	assert.Equal(t, float32(MaxPitch), c.Pitch)
	c.Look(rl.Vector2{Y: 20000})
	assert.Equal(t, float32(-MaxPitch), c.Pitch)

	c.Look(rl.Vector2{X: 100})
	assert.InDelta(t, -80, c.Yaw, 1e-4)
}

func TestDirectionIsUnitWithPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.Pitch = 60
	dir := c.Direction()
	assert.InDelta(t, 1, rl.Vector3Length(dir), 1e-5)
	assert.Greater(t, dir.Y, float32(0.8))
	assert.Zero(t, c.Left().Y)
}

func TestLookAt(t *testing.T) {
	c := New(rl.Vector3{Y: 5})
	c.LookAt(rl.Vector3{X: 10, Y: 5})
	assert.InDelta(t, 0, c.Yaw, 1e-4)
	assert.InDelta(t, 0, c.Pitch, 1e-4)

	cam := c.Raylib()
	assert.InDelta(t, 1, cam.Target.X-cam.Position.X, 1e-5)
	assert.Equal(t, float32(45), cam.Fovy)
}
