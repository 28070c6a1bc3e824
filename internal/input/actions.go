package input

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"fpsdemo/internal/engine"
)

// KeySource reports key edges for the current frame.
type KeySource interface {
	IsKeyPressed(key int32) bool
	IsKeyReleased(key int32) bool
}

// Raylib reads keys from the raylib window.
type Raylib struct{}

func (Raylib) IsKeyPressed(key int32) bool  { return rl.IsKeyPressed(key) }
func (Raylib) IsKeyReleased(key int32) bool { return rl.IsKeyReleased(key) }

// Action is emitted once when a bound key goes down and once when it comes up.
type Action struct {
	Name    string
	Pressed bool
	Dt      float32
}

type binding struct {
	action string
	key    int32
}

// ActionMap turns key edges into named actions. An action may have several
// keys and a key may drive several actions.
type ActionMap struct {
	OnAction engine.Event[Action]

	bindings []binding
}

func NewActionMap() *ActionMap {
	return &ActionMap{}
}

func (m *ActionMap) Bind(action string, key int32) {
	b := binding{action: action, key: key}
	if slices.Contains(m.bindings, b) {
		return
	}
	m.bindings = append(m.bindings, b)
}

// BindName binds a key by name, see ParseKey.
func (m *ActionMap) BindName(action, keyName string) error {
	key, err := ParseKey(keyName)
	if err != nil {
		return err
	}
	m.Bind(action, key)
	return nil
}

// Rebind replaces every key of action with keys.
func (m *ActionMap) Rebind(action string, keys ...int32) {
	m.Unbind(action)
	for _, k := range keys {
		m.Bind(action, k)
	}
}

func (m *ActionMap) Unbind(action string) {
	m.bindings = slices.DeleteFunc(m.bindings, func(b binding) bool {
		return b.action == action
	})
}

func (m *ActionMap) Keys(action string) []int32 {
	var keys []int32
	for _, b := range m.bindings {
		if b.action == action {
			keys = append(keys, b.key)
		}
	}
	return keys
}

func (m *ActionMap) AddListener(fn func(Action)) {
	m.OnAction.AddListener(fn)
}

// Poll emits the frame's key edges in binding order.
func (m *ActionMap) Poll(src KeySource, dt float32) {
	for _, b := range m.bindings {
		if src.IsKeyPressed(b.key) {
			m.OnAction.Invoke(Action{Name: b.action, Pressed: true, Dt: dt})
		}
		if src.IsKeyReleased(b.key) {
			m.OnAction.Invoke(Action{Name: b.action, Pressed: false, Dt: dt})
		}
	}
}
