package player

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"fpsdemo/internal/components"
	"fpsdemo/internal/config"
	"fpsdemo/internal/engine"
	"fpsdemo/internal/physics"
)

// Rig is everything Build creates for the player.
type Rig struct {
	Object     *engine.GameObject
	Eyes       *engine.GameObject
	Character  *physics.Character
	Body       *components.CharacterBody
	Controller *Controller
}

// Build creates the player GameObject with its capsule character and an
// Eyes child, registers the character with space and adds it to scene.
func Build(scene *engine.Scene, space *physics.Space, view Viewpoint, cfg config.Config) (*Rig, error) {
	pc := cfg.Player

	ch := physics.NewCharacter(pc.Radius, pc.Height, pc.Mass)
	ch.JumpForce = pc.JumpForce
	ch.MaxSlope = cfg.Physics.MaxSlope
	if err := space.Add(ch); err != nil {
		return nil, fmt.Errorf("add player character: %w", err)
	}

	g := engine.NewGameObject("Player")
	g.Tags = append(g.Tags, "player")
	g.Transform.Position = components.Vec3(pc.Spawn)

	eyes := engine.NewGameObject("Eyes")
	eyes.Transform.Position = rl.Vector3{Y: pc.EyeHeight}
	g.AddChild(eyes)

	// The body goes first so the controller sees this frame's position.
	body := components.NewCharacterBody(ch)
	g.AddComponent(body)
	ctrl := NewController(ch, view, eyes, Settings{
		ForwardSpeed: pc.ForwardSpeed,
		StrafeSpeed:  pc.StrafeSpeed,
	})
	g.AddComponent(ctrl)

	scene.AddGameObject(g)
	view.SetPosition(eyes.WorldPosition())

	slog.Info("player ready",
		"spawn", g.Transform.Position,
		"radius", pc.Radius, "height", pc.Height, "mass", pc.Mass)

	return &Rig{
		Object:     g,
		Eyes:       eyes,
		Character:  ch,
		Body:       body,
		Controller: ctrl,
	}, nil
}
