package components

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"fpsdemo/internal/engine"
)

// ModelRenderer draws a model at its GameObject's world transform.
// The model is owned by whoever loaded it; Unload is not called here.
type ModelRenderer struct {
	engine.BaseComponent
	Model     rl.Model
	Color     rl.Color
	Wireframe bool
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

// SetShader applies shader and the tint to every material of the model.
func (m *ModelRenderer) SetShader(shader rl.Shader) {
	if m.Model.MaterialCount == 0 || m.Model.Materials == nil {
		return
	}
	materials := unsafe.Slice(m.Model.Materials, m.Model.MaterialCount)
	for i := range materials {
		mat := &materials[i]
		mat.Shader = shader
		if mat.Maps != nil {
			mat.Maps.Color = m.Color
		}
	}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	model := m.Model
	model.Transform = rl.MatrixMultiply(m.Model.Transform, g.WorldMatrix())

	if m.Wireframe {
		rl.DrawModelWires(model, rl.Vector3Zero(), 1.0, rl.DarkGray)
		return
	}
	rl.DrawModel(model, rl.Vector3Zero(), 1.0, rl.White)
}
