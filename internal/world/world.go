// Package world bootstraps the demo scene: physics space, lights,
// background and the static scene model with its collision mesh.
package world

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"fpsdemo/internal/assets"
	"fpsdemo/internal/components"
	"fpsdemo/internal/config"
	"fpsdemo/internal/engine"
	"fpsdemo/internal/physics"
)

type World struct {
	Scene      *engine.Scene
	Space      *physics.Space
	Assets     *assets.Manager
	Renderer   *Renderer
	Background rl.Color

	Ambient     *components.AmbientLight
	Sun         *components.DirectionalLight
	SceneObject *engine.GameObject
	Collision   *components.StaticBody

	cfg config.Config
}

// New creates the scene and physics space. Nothing touches the GPU until
// Initialize.
func New(cfg config.Config) *World {
	space := physics.NewSpace(components.Vec3(cfg.Physics.Gravity))
	space.MaxSubstep = cfg.Physics.MaxSubstep

	return &World{
		Scene:      engine.NewScene("Main"),
		Space:      space,
		Assets:     assets.NewManager(),
		Background: components.ColorFromFloats(cfg.Scene.Background),
		cfg:        cfg,
	}
}

// Initialize adds the lights, loads the scene model and its shader and
// registers the model's static collision mesh. Any error is fatal to the
// demo.
func (w *World) Initialize() error {
	w.AddLights()

	model, err := w.Assets.LoadModel(w.cfg.Scene.Model)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	shader, err := w.Assets.LoadShader(w.cfg.Scene.VertexShader, w.cfg.Scene.FragmentShader)
	if err != nil {
		return fmt.Errorf("load lighting shader: %w", err)
	}
	w.Renderer = NewRenderer(shader)
	w.Renderer.SetLights(w.Ambient, w.Sun)

	g := engine.NewGameObject("Scene")
	g.Tags = append(g.Tags, "static")
	s := w.cfg.Scene.Scale
	g.Transform.Scale = rl.Vector3{X: s, Y: s, Z: s}

	renderer := components.NewModelRenderer(model, components.ColorFromFloats(w.cfg.Scene.Tint))
	renderer.SetShader(shader)
	g.AddComponent(renderer)
	w.Scene.AddGameObject(g)
	w.SceneObject = g

	shape := physics.NewMeshShapeFromModel(model, g.WorldMatrix())
	body, err := AttachStaticCollision(g, shape, w.Space)
	if err != nil {
		return fmt.Errorf("scene collision %s: %w", w.cfg.Scene.Model, err)
	}
	w.Collision = body

	bounds := shape.Bounds()
	slog.Info("scene ready",
		"model", w.cfg.Scene.Model,
		"triangles", shape.TriangleCount(),
		"min", bounds.Min, "max", bounds.Max)
	return nil
}

// AddLights creates the ambient and directional lights on a "Lights" object.
func (w *World) AddLights() {
	lc := w.cfg.Lights
	w.Ambient = components.NewAmbientLight(components.ColorFromFloats(lc.Ambient))
	w.Sun = components.NewDirectionalLight(
		components.Vec3(lc.Direction),
		components.ColorFromFloats(lc.DirectionalColor),
	)

	lights := engine.NewGameObject("Lights")
	lights.AddComponent(w.Ambient)
	lights.AddComponent(w.Sun)
	w.Scene.AddGameObject(lights)
}

// AttachStaticCollision wraps shape in a zero-mass body on g and adds it to
// space. g only gets the component if space accepts the body.
func AttachStaticCollision(g *engine.GameObject, shape *physics.MeshShape, space *physics.Space) (*components.StaticBody, error) {
	if shape == nil {
		return nil, physics.ErrNoShape
	}
	if shape.TriangleCount() == 0 {
		return nil, fmt.Errorf("%w: mesh has no triangles", physics.ErrNoShape)
	}

	body := components.NewStaticBody(shape)
	body.Body.UserData = g
	if err := space.Add(body.Body); err != nil {
		return nil, err
	}
	g.AddComponent(body)
	return body, nil
}

// ApplyLights updates light colors and direction from a reloaded config.
func (w *World) ApplyLights(lc config.LightsConfig) {
	if w.Ambient == nil || w.Sun == nil {
		return
	}
	w.Ambient.Color = components.ColorFromFloats(lc.Ambient)
	w.Sun.Color = components.ColorFromFloats(lc.DirectionalColor)
	w.Sun.SetDirection(components.Vec3(lc.Direction))
	if w.Renderer != nil {
		w.Renderer.SetLights(w.Ambient, w.Sun)
	}
}

// Update runs components first, then advances physics.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Space.Step(deltaTime)
}

// SetWireframe switches every model renderer between solid and wires.
func (w *World) SetWireframe(on bool) {
	w.Scene.Walk(func(g *engine.GameObject) bool {
		for _, c := range g.Components() {
			if r, ok := c.(*components.ModelRenderer); ok {
				r.Wireframe = on
			}
		}
		return true
	})
}

// Draw renders one frame of the 3D scene. It must run between BeginDrawing
// and EndDrawing.
func (w *World) Draw(cam rl.Camera3D, physicsDebug bool) {
	rl.ClearBackground(w.Background)
	if w.Renderer != nil {
		w.Renderer.SetViewPosition(cam.Position)
	}

	rl.BeginMode3D(cam)
	w.Scene.Draw()
	if physicsDebug {
		w.Space.DrawDebug()
	}
	rl.EndMode3D()
}

func (w *World) Unload() {
	w.Assets.Unload()
}
