package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"fpsdemo/internal/engine"
	"fpsdemo/internal/physics"
)

// StaticBody holds the zero-mass rigid body of immovable scene geometry.
type StaticBody struct {
	engine.BaseComponent
	Body *physics.RigidBody
}

func NewStaticBody(shape physics.Shape) *StaticBody {
	return &StaticBody{Body: physics.NewRigidBody(shape, 0)}
}

func (s *StaticBody) SetGameObject(g *engine.GameObject) {
	s.BaseComponent.SetGameObject(g)
	s.Body.UserData = g
}

// CharacterBody makes its GameObject follow a physics character. The
// character's location is the bottom of its capsule.
type CharacterBody struct {
	engine.BaseComponent
	Character *physics.Character
}

func NewCharacterBody(ch *physics.Character) *CharacterBody {
	return &CharacterBody{Character: ch}
}

func (c *CharacterBody) SetGameObject(g *engine.GameObject) {
	c.BaseComponent.SetGameObject(g)
	c.Character.UserData = g
}

// Start moves the character to where the GameObject was placed.
func (c *CharacterBody) Start() {
	if g := c.GetGameObject(); g != nil {
		c.Character.SetLocation(g.WorldPosition())
	}
}

func (c *CharacterBody) Update(deltaTime float32) {
	c.sync()
}

// Warp teleports both the character and its GameObject.
func (c *CharacterBody) Warp(p rl.Vector3) {
	c.Character.SetLocation(p)
	c.sync()
}

func (c *CharacterBody) sync() {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	loc := c.Character.Location()
	if g.Parent != nil {
		loc = rl.Vector3Transform(loc, rl.MatrixInvert(g.Parent.WorldMatrix()))
	}
	g.Transform.Position = loc
}
