package physics

import (
	"unsafe"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape is a collision shape attached to a body.
type Shape interface {
	// Bounds is the shape's box in its own frame (world frame for meshes).
	Bounds() AABB
}

// CapsuleShape is an upright capsule whose base sits at the body location.
// Height is the full height, caps included.
type CapsuleShape struct {
	Radius float32
	Height float32
}

func NewCapsuleShape(radius, height float32) *CapsuleShape {
	if height < 2*radius {
		height = 2 * radius
	}
	return &CapsuleShape{Radius: radius, Height: height}
}

func (c *CapsuleShape) Bounds() AABB {
	return AABB{
		Min: rl.Vector3{X: -c.Radius, Z: -c.Radius},
		Max: rl.Vector3{X: c.Radius, Y: c.Height, Z: c.Radius},
	}
}

// SphereOffsets returns the heights of the spheres that cover the capsule,
// bottom first. Neighbors are at most one radius apart.
func (c *CapsuleShape) SphereOffsets() []float32 {
	span := c.Height - 2*c.Radius
	if span <= 0 {
		return []float32{c.Radius}
	}
	n := int(math32.Ceil(span/c.Radius)) + 1
	offsets := make([]float32, n)
	for i := range offsets {
		offsets[i] = c.Radius + span*float32(i)/float32(n-1)
	}
	return offsets
}

// Triangle is a world-space triangle with its unit normal (counter-clockwise winding).
type Triangle struct {
	V0, V1, V2 rl.Vector3
	Normal     rl.Vector3
}

func NewTriangle(v0, v1, v2 rl.Vector3) Triangle {
	n := rl.Vector3CrossProduct(rl.Vector3Subtract(v1, v0), rl.Vector3Subtract(v2, v0))
	return Triangle{V0: v0, V1: v1, V2: v2, Normal: rl.Vector3Normalize(n)}
}

func (t *Triangle) centroid() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(rl.Vector3Add(t.V0, t.V1), t.V2), 1.0/3.0)
}

type bvhNode struct {
	bounds      AABB
	left, right *bvhNode
	tris        []int // leaf only
}

const (
	bvhLeafSize = 4
	bvhMaxDepth = 24
)

// MeshShape is static triangle geometry in world space with a bounding
// volume hierarchy for queries. Moving the owner does not move the mesh.
type MeshShape struct {
	Triangles []Triangle
	root      *bvhNode
}

func NewMeshShape(tris []Triangle) *MeshShape {
	m := &MeshShape{Triangles: tris}
	if len(tris) == 0 {
		return m
	}
	indices := make([]int, len(tris))
	for i := range indices {
		indices[i] = i
	}
	m.root = m.build(indices, 0)
	return m
}

// NewMeshShapeFromModel bakes every mesh of model, transformed by
// model.Transform and then transform, into one MeshShape.
func NewMeshShapeFromModel(model rl.Model, transform rl.Matrix) *MeshShape {
	xf := rl.MatrixMultiply(model.Transform, transform)
	var tris []Triangle
	if model.MeshCount == 0 || model.Meshes == nil {
		return NewMeshShape(nil)
	}
	for _, mesh := range unsafe.Slice(model.Meshes, model.MeshCount) {
		if mesh.Vertices == nil {
			continue
		}
		vertices := unsafe.Slice(mesh.Vertices, mesh.VertexCount*3)
		vertex := func(i int32) rl.Vector3 {
			v := rl.Vector3{X: vertices[i*3], Y: vertices[i*3+1], Z: vertices[i*3+2]}
			return rl.Vector3Transform(v, xf)
		}
		if mesh.Indices != nil {
			indices := unsafe.Slice(mesh.Indices, mesh.TriangleCount*3)
			for i := int32(0); i < mesh.TriangleCount; i++ {
				tris = append(tris, NewTriangle(
					vertex(int32(indices[i*3])),
					vertex(int32(indices[i*3+1])),
					vertex(int32(indices[i*3+2])),
				))
			}
			continue
		}
		for i := int32(0); i+2 < mesh.VertexCount; i += 3 {
			tris = append(tris, NewTriangle(vertex(i), vertex(i+1), vertex(i+2)))
		}
	}
	return NewMeshShape(tris)
}

func (m *MeshShape) Bounds() AABB {
	if m.root == nil {
		return AABB{}
	}
	return m.root.bounds
}

func (m *MeshShape) TriangleCount() int {
	return len(m.Triangles)
}

func (m *MeshShape) build(indices []int, depth int) *bvhNode {
	node := &bvhNode{bounds: EmptyAABB()}
	for _, idx := range indices {
		t := &m.Triangles[idx]
		node.bounds = node.bounds.Grow(t.V0).Grow(t.V1).Grow(t.V2)
	}

	if len(indices) <= bvhLeafSize || depth >= bvhMaxDepth {
		node.tris = indices
		return node
	}

	size := node.bounds.Size()
	axis := 0
	if size.Y > size.X {
		axis = 1
	}
	if size.Z > axisOf(size, axis) {
		axis = 2
	}

	mid := m.partition(indices, axis)
	if mid == 0 || mid == len(indices) {
		node.tris = indices
		return node
	}
	node.left = m.build(indices[:mid], depth+1)
	node.right = m.build(indices[mid:], depth+1)
	return node
}

// partition splits indices around the mean centroid on axis.
func (m *MeshShape) partition(indices []int, axis int) int {
	var mean float32
	for _, idx := range indices {
		mean += axisOf(m.Triangles[idx].centroid(), axis)
	}
	mean /= float32(len(indices))

	left, right := 0, len(indices)-1
	for left <= right {
		if axisOf(m.Triangles[indices[left]].centroid(), axis) < mean {
			left++
		} else {
			indices[left], indices[right] = indices[right], indices[left]
			right--
		}
	}
	return left
}

// Query calls fn with the index of every triangle whose BVH leaf overlaps box.
func (m *MeshShape) Query(box AABB, fn func(tri int)) {
	var visit func(n *bvhNode)
	visit = func(n *bvhNode) {
		if n == nil || !n.bounds.Intersects(box) {
			return
		}
		if n.tris != nil {
			for _, idx := range n.tris {
				fn(idx)
			}
			return
		}
		visit(n.left)
		visit(n.right)
	}
	visit(m.root)
}

// SphereIntersect tests a sphere against the mesh and returns the push that
// separates them, keeping the largest push seen on each axis.
func (m *MeshShape) SphereIntersect(center rl.Vector3, radius float32) (bool, rl.Vector3) {
	if m.root == nil {
		return false, rl.Vector3{}
	}
	r := rl.Vector3{X: radius, Y: radius, Z: radius}
	query := AABB{Min: rl.Vector3Subtract(center, r), Max: rl.Vector3Add(center, r)}

	var total rl.Vector3
	hit := false
	m.Query(query, func(idx int) {
		collides, push := sphereTriangle(center, radius, &m.Triangles[idx])
		if !collides {
			return
		}
		hit = true
		if math32.Abs(push.X) > math32.Abs(total.X) {
			total.X = push.X
		}
		if math32.Abs(push.Y) > math32.Abs(total.Y) {
			total.Y = push.Y
		}
		if math32.Abs(push.Z) > math32.Abs(total.Z) {
			total.Z = push.Z
		}
	})
	return hit, total
}

// Hit describes the closest ray intersection.
type Hit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
	Body     *RigidBody
}

// Raycast returns the closest triangle hit along dir within maxDist.
// Back faces are hit too.
func (m *MeshShape) Raycast(origin, dir rl.Vector3, maxDist float32) (Hit, bool) {
	var best Hit
	if m.root == nil {
		return best, false
	}
	dir = rl.Vector3Normalize(dir)
	inv := rl.Vector3{X: 1 / dir.X, Y: 1 / dir.Y, Z: 1 / dir.Z}
	best.Distance = maxDist
	found := false

	var visit func(n *bvhNode)
	visit = func(n *bvhNode) {
		if n == nil || !n.bounds.RayIntersects(origin, inv, best.Distance) {
			return
		}
		if n.tris != nil {
			for _, idx := range n.tris {
				tri := &m.Triangles[idx]
				if t, ok := rayTriangle(origin, dir, tri); ok && t <= best.Distance {
					best.Distance = t
					best.Point = rl.Vector3Add(origin, rl.Vector3Scale(dir, t))
					best.Normal = tri.Normal
					if rl.Vector3DotProduct(best.Normal, dir) > 0 {
						best.Normal = rl.Vector3Negate(best.Normal)
					}
					found = true
				}
			}
			return
		}
		visit(n.left)
		visit(n.right)
	}
	visit(m.root)
	return best, found
}

// rayTriangle is Möller-Trumbore; dir must be unit length.
func rayTriangle(origin, dir rl.Vector3, tri *Triangle) (float32, bool) {
	const eps = 1e-7
	e1 := rl.Vector3Subtract(tri.V1, tri.V0)
	e2 := rl.Vector3Subtract(tri.V2, tri.V0)
	p := rl.Vector3CrossProduct(dir, e2)
	det := rl.Vector3DotProduct(e1, p)
	if math32.Abs(det) < eps {
		return 0, false
	}
	invDet := 1 / det
	s := rl.Vector3Subtract(origin, tri.V0)
	u := rl.Vector3DotProduct(s, p) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}
	q := rl.Vector3CrossProduct(s, e1)
	v := rl.Vector3DotProduct(dir, q) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := rl.Vector3DotProduct(e2, q) * invDet
	if t < 0 {
		return 0, false
	}
	return t, true
}

func sphereTriangle(center rl.Vector3, radius float32, tri *Triangle) (bool, rl.Vector3) {
	closest := closestPointOnTriangle(center, tri.V0, tri.V1, tri.V2)
	diff := rl.Vector3Subtract(center, closest)
	distSq := rl.Vector3DotProduct(diff, diff)
	if distSq >= radius*radius {
		return false, rl.Vector3{}
	}

	dist := math32.Sqrt(distSq)
	if dist < 1e-4 {
		// Center lies on the triangle.
		return true, rl.Vector3Scale(tri.Normal, radius)
	}
	return true, rl.Vector3Scale(diff, (radius-dist)/dist)
}

// closestPointOnTriangle follows the Voronoi-region walk from Real-Time
// Collision Detection, 5.1.5.
func closestPointOnTriangle(p, a, b, c rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	ac := rl.Vector3Subtract(c, a)
	ap := rl.Vector3Subtract(p, a)

	d1 := rl.Vector3DotProduct(ab, ap)
	d2 := rl.Vector3DotProduct(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := rl.Vector3Subtract(p, b)
	d3 := rl.Vector3DotProduct(ab, bp)
	d4 := rl.Vector3DotProduct(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return rl.Vector3Add(a, rl.Vector3Scale(ab, v))
	}

	cp := rl.Vector3Subtract(p, c)
	d5 := rl.Vector3DotProduct(ab, cp)
	d6 := rl.Vector3DotProduct(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return rl.Vector3Add(a, rl.Vector3Scale(ac, w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return rl.Vector3Add(b, rl.Vector3Scale(rl.Vector3Subtract(c, b), w))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return rl.Vector3Add(a, rl.Vector3Add(rl.Vector3Scale(ab, v), rl.Vector3Scale(ac, w)))
}

// SphereIntersect tests one triangle against a sphere, without the BVH.
func (t *Triangle) SphereIntersect(center rl.Vector3, radius float32) (bool, rl.Vector3) {
	return sphereTriangle(center, radius, t)
}
