package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneIndexesChildren(t *testing.T) {
	scene := NewScene("Test")
	body := NewGameObject("Body")
	eyes := NewGameObject("Eyes")
	body.AddChild(eyes)

	scene.AddGameObject(body)

	if eyes.Scene != scene {
		t.Error("child Scene not set")
	}
	if scene.FindByUID(eyes.UID) != eyes {
		t.Error("child missing from UID index")
	}
	if scene.FindByName("Eyes") != eyes {
		t.Error("FindByName should search children")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)
	scene.AddGameObject(parent)

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}
	if scene.FindByUID(parent.UID) != nil || scene.FindByUID(child.UID) != nil {
		t.Error("removed objects still in UID map")
	}
	if child.Scene != nil {
		t.Error("removed child should have nil Scene")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	light1 := NewGameObject("Ambient")
	light2 := NewGameObject("Sun")
	level := NewGameObject("Level")
	light1.Tags = []string{"light"}
	light2.Tags = []string{"light"}

	scene.AddGameObject(light1)
	scene.AddGameObject(light2)
	scene.AddGameObject(level)

	if lights := scene.FindByTag("light"); len(lights) != 2 {
		t.Errorf("Expected 2 lights, got %d", len(lights))
	}
	if notFound := scene.FindByTag("nonexistent"); len(notFound) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneUpdateOrderParentsFirst(t *testing.T) {
	var order []string
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddComponent(&countingComponent{name: "parent", log: &order})
	child.AddComponent(&countingComponent{name: "child", log: &order})
	parent.AddChild(child)
	scene.AddGameObject(parent)

	scene.Start()
	scene.Update(0.016)

	if len(order) != 2 || order[0] != "parent" || order[1] != "child" {
		t.Errorf("Expected [parent child], got %v", order)
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := &Scene{Name: "Zero"}
	obj := NewGameObject("Test")

	scene.AddGameObject(obj) // Should not panic

	if scene.FindByUID(obj.UID) != obj {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}
