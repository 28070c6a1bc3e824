package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
	log     *[]string
	name    string
}

func (c *countingComponent) Start() { c.starts++ }

func (c *countingComponent) Update(deltaTime float32) {
	c.updates++
	if c.log != nil {
		*c.log = append(*c.log, c.name)
	}
}

func near(a, b rl.Vector3) bool {
	const eps = 1e-4
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}
	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}
	if !obj.Active {
		t.Error("new GameObject should be active")
	}
	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"player", "collider"}

	if !obj.HasTag("player") {
		t.Error("HasTag should return true for existing tag")
	}
	if obj.HasTag("scenery") {
		t.Error("HasTag should return false for non-existent tag")
	}
}

func TestGameObjectReparent(t *testing.T) {
	first := NewGameObject("First")
	second := NewGameObject("Second")
	child := NewGameObject("Eyes")

	first.AddChild(child)
	second.AddChild(child)

	if child.Parent != second {
		t.Error("child should belong to the second parent")
	}
	if len(first.Children) != 0 {
		t.Errorf("Expected old parent to have 0 children, got %d", len(first.Children))
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)
	parent.RemoveChild(child1)

	if len(parent.Children) != 1 || parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}
	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	if found := GetComponent[*countingComponent](obj); found != comp {
		t.Error("GetComponent failed to find component")
	}
	if comp.GetGameObject() != obj {
		t.Error("Component.gameObject should be set")
	}
	if found := GetComponent[*BaseComponent](obj); found != nil {
		t.Error("GetComponent should not match a different concrete type")
	}
}

func TestFindComponentByInterface(t *testing.T) {
	obj := NewGameObject("Test")
	obj.AddComponent(&countingComponent{})

	if _, ok := FindComponent[Drawable](obj); ok {
		t.Error("countingComponent is not Drawable")
	}
	if _, ok := FindComponent[Component](obj); !ok {
		t.Error("FindComponent[Component] should match")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Expected Start once, got %d", comp.starts)
	}
}

func TestAddComponentAfterStart(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Start()

	comp := &countingComponent{}
	obj.AddComponent(comp)

	if comp.starts != 1 {
		t.Errorf("late component should be started, got %d starts", comp.starts)
	}
}

func TestInactiveGameObjectSkipsUpdate(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)
	obj.Active = false

	obj.Update(0.016)

	if comp.updates != 0 {
		t.Errorf("Expected 0 updates, got %d", comp.updates)
	}
}

func TestWorldPositionOffset(t *testing.T) {
	body := NewGameObject("Body")
	body.Transform.Position = rl.Vector3{X: 3, Y: 1, Z: -2}
	eyes := NewGameObject("Eyes")
	eyes.Transform.Position = rl.Vector3{Y: 5}
	body.AddChild(eyes)

	want := rl.Vector3{X: 3, Y: 6, Z: -2}
	if got := eyes.WorldPosition(); !near(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestWorldPositionRotatedParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Rotation = rl.Vector3{Y: 90}
	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1}
	parent.AddChild(child)

	want := rl.Vector3{Z: -1}
	if got := child.WorldPosition(); !near(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestWorldPositionScaledParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	parent.Transform.Position = rl.Vector3{Y: 1}
	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{Y: 5}
	parent.AddChild(child)

	want := rl.Vector3{Y: 11}
	if got := child.WorldPosition(); !near(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if scale := child.WorldScale(); scale.X != 2 {
		t.Errorf("Expected inherited scale 2, got %v", scale.X)
	}
}
