package world

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"fpsdemo/internal/components"
)

// Renderer feeds one ambient and one directional light to the lighting
// shader.
type Renderer struct {
	Shader rl.Shader

	lightDirLoc   int32
	lightColorLoc int32
	ambientLoc    int32
	viewPosLoc    int32
}

func NewRenderer(shader rl.Shader) *Renderer {
	r := &Renderer{
		Shader:        shader,
		lightDirLoc:   rl.GetShaderLocation(shader, "lightDir"),
		lightColorLoc: rl.GetShaderLocation(shader, "lightColor"),
		ambientLoc:    rl.GetShaderLocation(shader, "ambient"),
		viewPosLoc:    rl.GetShaderLocation(shader, "viewPos"),
	}
	if shader.Locs != nil {
		locs := unsafe.Slice(shader.Locs, rl.ShaderLocMapCubemap+1)
		locs[rl.ShaderLocVectorView] = r.viewPosLoc
	}
	return r
}

func (r *Renderer) SetLights(ambient *components.AmbientLight, sun *components.DirectionalLight) {
	if ambient != nil {
		rl.SetShaderValue(r.Shader, r.ambientLoc, ambient.ColorFloat(), rl.ShaderUniformVec4)
	}
	if sun != nil {
		rl.SetShaderValue(r.Shader, r.lightDirLoc, sun.DirectionFloat(), rl.ShaderUniformVec3)
		rl.SetShaderValue(r.Shader, r.lightColorLoc, sun.ColorFloat(), rl.ShaderUniformVec4)
	}
}

func (r *Renderer) SetViewPosition(p rl.Vector3) {
	rl.SetShaderValue(r.Shader, r.viewPosLoc, []float32{p.X, p.Y, p.Z}, rl.ShaderUniformVec3)
}
