// Package player turns movement and jump actions into a walk direction for
// a physics character, steered by where the camera looks.
package player

import (
	"fmt"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"fpsdemo/internal/config"
	"fpsdemo/internal/engine"
	"fpsdemo/internal/input"
)

// Action names bound on the action map.
const (
	ActionLeft  = "Left"
	ActionRight = "Right"
	ActionUp    = "Up"
	ActionDown  = "Down"
	ActionJump  = "Jump"
)

// KeyState is which movement keys are held.
type KeyState struct {
	Left, Right, Up, Down bool
}

// Walker is the physics side of the player.
type Walker interface {
	SetWalkDirection(v rl.Vector3)
	Jump()
}

// Viewpoint is the camera side of the player.
type Viewpoint interface {
	Direction() rl.Vector3
	Left() rl.Vector3
	SetPosition(p rl.Vector3)
}

// Settings are the walk speeds in units per second.
type Settings struct {
	ForwardSpeed float32
	StrafeSpeed  float32
}

// Controller owns the key state. Each frame it turns the key state and the
// camera orientation into a walk direction and moves the camera to the eyes.
type Controller struct {
	engine.BaseComponent
	Settings Settings
	Keys     KeyState

	walker  Walker
	view    Viewpoint
	eyes    *engine.GameObject
	actions *input.ActionMap
	walk    rl.Vector3
}

func NewController(walker Walker, view Viewpoint, eyes *engine.GameObject, settings Settings) *Controller {
	return &Controller{
		Settings: settings,
		walker:   walker,
		view:     view,
		eyes:     eyes,
	}
}

// OnAction updates the key state. Jump fires on press only and leaves the
// movement keys alone.
func (c *Controller) OnAction(a input.Action) {
	switch a.Name {
	case ActionLeft:
		c.Keys.Left = a.Pressed
	case ActionRight:
		c.Keys.Right = a.Pressed
	case ActionUp:
		c.Keys.Up = a.Pressed
	case ActionDown:
		c.Keys.Down = a.Pressed
	case ActionJump:
		if a.Pressed {
			c.walker.Jump()
		}
	}
}

// WalkDirection computes the horizontal walk vector for the current key
// state and camera orientation.
func (c *Controller) WalkDirection() rl.Vector3 {
	camDir := rl.Vector3Scale(c.view.Direction(), c.Settings.ForwardSpeed)
	camLeft := rl.Vector3Scale(c.view.Left(), c.Settings.StrafeSpeed)
	// No flying.
	camDir.Y = 0
	camLeft.Y = 0

	var walk rl.Vector3
	if c.Keys.Left {
		walk = rl.Vector3Add(walk, camLeft)
	}
	if c.Keys.Right {
		walk = rl.Vector3Subtract(walk, camLeft)
	}
	if c.Keys.Up {
		walk = rl.Vector3Add(walk, camDir)
	}
	if c.Keys.Down {
		walk = rl.Vector3Subtract(walk, camDir)
	}
	return walk
}

// Update sends the walk direction to the walker and moves the camera to the eyes.
func (c *Controller) Update(deltaTime float32) {
	c.walk = c.WalkDirection()
	c.walker.SetWalkDirection(c.walk)
	if c.eyes != nil {
		c.view.SetPosition(c.eyes.WorldPosition())
	}
}

// Walk is the walk vector sent on the last Update.
func (c *Controller) Walk() rl.Vector3 {
	return c.walk
}

// Bind maps the five player actions to keys and subscribes the controller
// to actions. All key names are checked before any binding changes. An
// action whose key changes is released, since its old key can no longer
// report the release.
func (c *Controller) Bind(actions *input.ActionMap, keys config.KeysConfig) error {
	names := []struct{ action, key string }{
		{ActionLeft, keys.Left},
		{ActionRight, keys.Right},
		{ActionUp, keys.Up},
		{ActionDown, keys.Down},
		{ActionJump, keys.Jump},
	}
	codes := make([]int32, len(names))
	for i, n := range names {
		code, err := input.ParseKey(n.key)
		if err != nil {
			return fmt.Errorf("bind %s: %w", n.action, err)
		}
		codes[i] = code
	}
	for i, n := range names {
		if slices.Equal(actions.Keys(n.action), codes[i:i+1]) {
			continue
		}
		actions.Rebind(n.action, codes[i])
		c.OnAction(input.Action{Name: n.action, Pressed: false})
	}

	if c.actions != actions {
		actions.AddListener(c.OnAction)
		c.actions = actions
	}
	return nil
}

// ApplyConfig swaps speeds and key bindings at runtime. Held keys stay held
// unless their binding changed.
func (c *Controller) ApplyConfig(cfg config.Config) error {
	c.Settings = Settings{
		ForwardSpeed: cfg.Player.ForwardSpeed,
		StrafeSpeed:  cfg.Player.StrafeSpeed,
	}
	if c.actions == nil {
		return nil
	}
	return c.Bind(c.actions, cfg.Keys)
}
