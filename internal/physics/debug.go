package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// DrawDebug draws static triangles and character capsules as wireframes.
// Call between BeginMode3D and EndMode3D.
func (s *Space) DrawDebug() {
	for _, b := range s.statics {
		mesh := b.Shape.(*MeshShape)
		for i := range mesh.Triangles {
			t := &mesh.Triangles[i]
			rl.DrawLine3D(t.V0, t.V1, rl.Green)
			rl.DrawLine3D(t.V1, t.V2, rl.Green)
			rl.DrawLine3D(t.V2, t.V0, rl.Green)
		}
	}
	for _, c := range s.characters {
		col := rl.Red
		if c.onGround {
			col = rl.Yellow
		}
		r := c.Shape.Radius
		start := rl.Vector3Add(c.location, rl.Vector3{Y: r})
		end := rl.Vector3Add(c.location, rl.Vector3{Y: c.Shape.Height - r})
		rl.DrawCapsuleWires(start, end, r, 8, 4, col)
	}
}
