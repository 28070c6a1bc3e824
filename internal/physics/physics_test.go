package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = float32(1.0 / 60.0)

func floorMesh(size float32) *MeshShape {
	a := rl.Vector3{X: -size, Z: -size}
	b := rl.Vector3{X: size, Z: -size}
	c := rl.Vector3{X: size, Z: size}
	d := rl.Vector3{X: -size, Z: size}
	return NewMeshShape([]Triangle{
		NewTriangle(a, d, c),
		NewTriangle(a, c, b),
	})
}

// wallMesh is a vertical quad in the plane x = at.
func wallMesh(at float32) *MeshShape {
	a := rl.Vector3{X: at, Y: 0, Z: -50}
	b := rl.Vector3{X: at, Y: 20, Z: -50}
	c := rl.Vector3{X: at, Y: 20, Z: 50}
	d := rl.Vector3{X: at, Y: 0, Z: 50}
	return NewMeshShape([]Triangle{
		NewTriangle(a, b, c),
		NewTriangle(a, c, d),
	})
}

func newTestSpace(t *testing.T, meshes ...*MeshShape) (*Space, *Character) {
	t.Helper()
	space := NewSpace(rl.Vector3{Y: -9.81})
	for _, m := range meshes {
		require.NoError(t, space.Add(NewRigidBody(m, 0)))
	}
	ch := NewCharacter(1.5, 6, 80)
	ch.JumpForce = 400
	require.NoError(t, space.Add(ch))
	return space, ch
}

func settle(space *Space, seconds float32) {
	for t := float32(0); t < seconds; t += step {
		space.Step(step)
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := NewTriangle(rl.Vector3{}, rl.Vector3{Z: 1}, rl.Vector3{X: 1})
	assert.InDelta(t, 1, tri.Normal.Y, 1e-6)
}

func TestCapsuleSphereOffsets(t *testing.T) {
	offsets := NewCapsuleShape(1.5, 6).SphereOffsets()
	require.NotEmpty(t, offsets)
	assert.InDelta(t, 1.5, offsets[0], 1e-6)
	assert.InDelta(t, 4.5, offsets[len(offsets)-1], 1e-6)
	for i := 1; i < len(offsets); i++ {
		assert.LessOrEqual(t, offsets[i]-offsets[i-1], float32(1.5)+1e-5)
	}

	ball := NewCapsuleShape(1, 1)
	assert.Equal(t, float32(2), ball.Height)
	assert.Equal(t, []float32{1}, ball.SphereOffsets())
}

func TestMeshBVHMatchesBruteForce(t *testing.T) {
	var tris []Triangle
	for x := -10; x < 10; x++ {
		for z := -10; z < 10; z++ {
			a := rl.Vector3{X: float32(x), Y: float32(x % 3), Z: float32(z)}
			b := rl.Vector3{X: float32(x + 1), Y: float32((x + 1) % 3), Z: float32(z)}
			c := rl.Vector3{X: float32(x), Y: float32(x % 3), Z: float32(z + 1)}
			tris = append(tris, NewTriangle(a, c, b))
		}
	}
	mesh := NewMeshShape(tris)
	require.Equal(t, 400, mesh.TriangleCount())

	center := rl.Vector3{X: 2.3, Y: 1, Z: -4.1}
	radius := float32(1.2)
	queried := map[int]bool{}
	mesh.Query(AABB{
		Min: rl.Vector3Subtract(center, rl.Vector3{X: radius, Y: radius, Z: radius}),
		Max: rl.Vector3Add(center, rl.Vector3{X: radius, Y: radius, Z: radius}),
	}, func(i int) { queried[i] = true })

	for i := range tris {
		hit, _ := sphereTriangle(center, radius, &tris[i])
		if hit {
			assert.True(t, queried[i], "triangle %d touches the sphere but was not visited", i)
		}
	}
}

func TestMeshSphereIntersect(t *testing.T) {
	floor := floorMesh(10)

	hit, push := floor.SphereIntersect(rl.Vector3{Y: 0.5}, 1)
	require.True(t, hit)
	assert.InDelta(t, 0.5, push.Y, 1e-5)

	hit, _ = floor.SphereIntersect(rl.Vector3{Y: 2}, 1)
	assert.False(t, hit)

	hit, _ = NewMeshShape(nil).SphereIntersect(rl.Vector3{}, 1)
	assert.False(t, hit)
}

func TestMeshRaycast(t *testing.T) {
	floor := floorMesh(10)

	hit, ok := floor.Raycast(rl.Vector3{X: 1, Y: 5, Z: 1}, rl.Vector3{Y: -1}, 100)
	require.True(t, ok)
	assert.InDelta(t, 5, hit.Distance, 1e-5)
	assert.InDelta(t, 1, hit.Normal.Y, 1e-5)

	_, ok = floor.Raycast(rl.Vector3{X: 1, Y: 5, Z: 1}, rl.Vector3{Y: -1}, 4)
	assert.False(t, ok)

	_, ok = floor.Raycast(rl.Vector3{X: 50, Y: 5}, rl.Vector3{Y: -1}, 100)
	assert.False(t, ok)

	// From below the normal faces the ray.
	hit, ok = floor.Raycast(rl.Vector3{Y: -2}, rl.Vector3{Y: 1}, 100)
	require.True(t, ok)
	assert.InDelta(t, -1, hit.Normal.Y, 1e-5)
}

func TestSpaceAddRejects(t *testing.T) {
	space := NewSpace(rl.Vector3{Y: -9.81})

	assert.ErrorIs(t, space.Add(&RigidBody{}), ErrNoShape)
	assert.ErrorIs(t, space.Add(&Character{Mass: 80}), ErrNoShape)
	assert.ErrorIs(t, space.Add(nil), ErrNoShape)

	assert.ErrorIs(t, space.Add(NewRigidBody(floorMesh(1), 10)), ErrUnsupportedBody)
	assert.ErrorIs(t, space.Add(NewRigidBody(NewCapsuleShape(1, 2), 0)), ErrUnsupportedBody)

	body := NewRigidBody(floorMesh(1), 0)
	require.NoError(t, space.Add(body))
	assert.ErrorIs(t, space.Add(body), ErrAlreadyAdded)
	assert.Len(t, space.Statics(), 1)

	assert.True(t, space.Remove(body))
	assert.False(t, space.Remove(body))
	assert.Empty(t, space.Statics())
}

func TestSpaceRaycastReportsBody(t *testing.T) {
	space := NewSpace(rl.Vector3{Y: -9.81})
	low := NewRigidBody(floorMesh(10), 0)
	require.NoError(t, space.Add(low))

	a := rl.Vector3{X: -10, Y: 3, Z: -10}
	high := NewRigidBody(NewMeshShape([]Triangle{
		NewTriangle(a, rl.Vector3{X: -10, Y: 3, Z: 10}, rl.Vector3{X: 10, Y: 3, Z: 10}),
	}), 0)
	require.NoError(t, space.Add(high))

	hit, ok := space.Raycast(rl.Vector3{X: -5, Y: 10, Z: 5}, rl.Vector3{Y: -1}, 100)
	require.True(t, ok)
	assert.Same(t, high, hit.Body)
	assert.InDelta(t, 7, hit.Distance, 1e-5)
}

func TestCharacterFallsAndStands(t *testing.T) {
	space, ch := newTestSpace(t, floorMesh(50))
	ch.SetLocation(rl.Vector3{Y: 1})
	assert.False(t, ch.OnGround())

	settle(space, 2)

	assert.True(t, ch.OnGround())
	assert.InDelta(t, 0, ch.Location().Y, 0.05)
	assert.InDelta(t, 0, ch.Velocity().Y, 0.2)
}

func TestCharacterFallsWithoutGround(t *testing.T) {
	space, ch := newTestSpace(t)
	settle(space, 1)
	assert.False(t, ch.OnGround())
	assert.Less(t, ch.Location().Y, float32(-4))
}

func TestCharacterJump(t *testing.T) {
	space, ch := newTestSpace(t, floorMesh(50))
	settle(space, 1)
	require.True(t, ch.OnGround())
	rest := ch.Location().Y

	ch.Jump()
	assert.InDelta(t, 5, ch.Velocity().Y, 1e-5)
	assert.False(t, ch.OnGround())

	peak := rest
	for i := 0; i < 30; i++ {
		space.Step(step)
		if y := ch.Location().Y; y > peak {
			peak = y
		}
	}
	assert.Greater(t, peak, rest+0.8)

	settle(space, 2)
	assert.True(t, ch.OnGround())
}

func TestCharacterJumpIsIdempotent(t *testing.T) {
	space, ch := newTestSpace(t, floorMesh(50))
	settle(space, 1)

	ch.Jump()
	once := ch.Velocity()
	ch.Jump()
	assert.Equal(t, once, ch.Velocity())
}

func TestCharacterJumpInAir(t *testing.T) {
	_, ch := newTestSpace(t)
	ch.Jump()
	assert.Zero(t, ch.Velocity().Y)
}

func TestCharacterWalk(t *testing.T) {
	space, ch := newTestSpace(t, floorMesh(50))
	settle(space, 1)

	ch.SetWalkDirection(rl.Vector3{X: 0, Y: 30, Z: 12})
	assert.Equal(t, rl.Vector3{Z: 12}, ch.WalkDirection())

	settle(space, 1)
	assert.InDelta(t, 12, ch.Location().Z, 0.5)
	assert.InDelta(t, 0, ch.Location().Y, 0.05)
	assert.True(t, ch.OnGround())
}

func TestCharacterBlockedByWall(t *testing.T) {
	space, ch := newTestSpace(t, floorMesh(50), wallMesh(5))
	settle(space, 1)

	ch.SetWalkDirection(rl.Vector3{X: 12})
	settle(space, 3)

	assert.LessOrEqual(t, ch.Location().X, float32(5-1.5+0.05))
	assert.True(t, ch.OnGround())
}

func TestSpaceStepCapsSubsteps(t *testing.T) {
	space, ch := newTestSpace(t)
	space.Step(10)
	// At most eight substeps of 1/60 s are simulated.
	assert.Greater(t, ch.Location().Y, float32(-1))
}
