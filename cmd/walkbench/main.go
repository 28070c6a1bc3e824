// Benchmark of the character physics on generated terrain: BVH against
// brute-force sphere queries, then whole character steps.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"fpsdemo/internal/physics"
)

func main() {
	gridSizes := []int{16, 32, 64, 128, 256}

	fmt.Println("sphere queries (r=1.5)")
	for _, n := range gridSizes {
		benchQueries(n)
	}

	fmt.Println("\ncharacter steps (1/60 s, walking)")
	for _, n := range gridSizes {
		benchCharacters(n, 16)
	}
}

// terrain builds an n*n quad grid of rolling hills spanning 200x200 units.
func terrain(n int) []physics.Triangle {
	const size = float32(200)
	cell := size / float32(n)
	height := func(i, j int) float32 {
		x, z := float32(i)*cell, float32(j)*cell
		return 2*math32.Sin(x*0.05) + 1.5*math32.Cos(z*0.07)
	}
	vertex := func(i, j int) rl.Vector3 {
		return rl.Vector3{X: float32(i)*cell - size/2, Y: height(i, j), Z: float32(j)*cell - size/2}
	}

	tris := make([]physics.Triangle, 0, n*n*2)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, b := vertex(i, j), vertex(i+1, j)
			c, d := vertex(i+1, j+1), vertex(i, j+1)
			tris = append(tris, physics.NewTriangle(a, d, c), physics.NewTriangle(a, c, b))
		}
	}
	return tris
}

func benchQueries(n int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results
	tris := terrain(n)

	buildStart := time.Now()
	mesh := physics.NewMeshShape(tris)
	buildTime := time.Since(buildStart)

	const queries = 2000
	centers := make([]rl.Vector3, queries)
	for i := range centers {
		centers[i] = rl.Vector3{
			X: rng.Float32()*180 - 90,
			Y: rng.Float32()*4 - 1,
			Z: rng.Float32()*180 - 90,
		}
	}

	bvhStart := time.Now()
	bvhHits := 0
	for _, c := range centers {
		if hit, _ := mesh.SphereIntersect(c, 1.5); hit {
			bvhHits++
		}
	}
	bvhTime := time.Since(bvhStart) / queries

	bruteStart := time.Now()
	bruteHits := 0
	for _, c := range centers {
		for i := range tris {
			if hit, _ := tris[i].SphereIntersect(c, 1.5); hit {
				bruteHits++
				break
			}
		}
	}
	bruteTime := time.Since(bruteStart) / queries

	match := "OK"
	if bvhHits != bruteHits {
		match = fmt.Sprintf("MISMATCH (%d vs %d)", bvhHits, bruteHits)
	}
	speedup := float64(bruteTime) / float64(max(bvhTime, 1))
	fmt.Printf("%7d tris: build %8v | bvh %8v | brute %10v | %6.1fx | hits %4d %s\n",
		len(tris), buildTime, bvhTime, bruteTime, speedup, bvhHits, match)
}

func benchCharacters(n, count int) {
	rng := rand.New(rand.NewSource(7))
	space := physics.NewSpace(rl.Vector3{Y: -9.81})
	if err := space.Add(physics.NewRigidBody(physics.NewMeshShape(terrain(n)), 0)); err != nil {
		fmt.Printf("%7d tris: ERROR: %v\n", n*n*2, err)
		return
	}

	for i := 0; i < count; i++ {
		ch := physics.NewCharacter(1.5, 6, 80)
		ch.SetLocation(rl.Vector3{X: rng.Float32()*160 - 80, Y: 6, Z: rng.Float32()*160 - 80})
		angle := rng.Float32() * 2 * math32.Pi
		ch.SetWalkDirection(rl.Vector3{X: 12 * math32.Cos(angle), Z: 12 * math32.Sin(angle)})
		if err := space.Add(ch); err != nil {
			fmt.Printf("add character: %v\n", err)
			return
		}
	}

	// Warm up and settle onto the terrain
	for i := 0; i < 60; i++ {
		space.Step(1.0 / 60.0)
	}

	const frames = 300
	start := time.Now()
	for i := 0; i < frames; i++ {
		space.Step(1.0 / 60.0)
	}
	perFrame := time.Since(start) / frames

	grounded := 0
	for _, ch := range space.Characters() {
		if ch.OnGround() {
			grounded++
		}
	}
	fmt.Printf("%7d tris: %2d characters | %8v per frame | %2d/%d grounded\n",
		n*n*2, count, perFrame, grounded, count)
}
