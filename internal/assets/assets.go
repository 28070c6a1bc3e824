// Package assets loads and caches raylib resources by path.
package assets

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrModelNotFound = errors.New("assets: model not found")
	ErrEmptyModel    = errors.New("assets: model has no meshes")
	ErrShader        = errors.New("assets: shader failed to load")
)

// Manager caches models and shaders. It must be used on the thread that
// owns the GL context.
type Manager struct {
	models  map[string]rl.Model
	shaders map[string]rl.Shader

	// Swappable for tests that run without a window.
	loadModel  func(path string) rl.Model
	loadShader func(vsPath, fsPath string) rl.Shader
}

func NewManager() *Manager {
	return &Manager{
		models:     make(map[string]rl.Model),
		shaders:    make(map[string]rl.Shader),
		loadModel:  rl.LoadModel,
		loadShader: rl.LoadShader,
	}
}

// LoadModel returns the cached model for path, loading it on first use.
// A missing file or a model without meshes is an error.
func (m *Manager) LoadModel(path string) (rl.Model, error) {
	if model, ok := m.models[path]; ok {
		return model, nil
	}

	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("%w: %s: %v", ErrModelNotFound, path, err)
	}

	model := m.loadModel(path)
	if model.MeshCount == 0 {
		return rl.Model{}, fmt.Errorf("%w: %s", ErrEmptyModel, path)
	}

	m.models[path] = model
	slog.Info("model loaded", "path", path, "meshes", model.MeshCount, "materials", model.MaterialCount)
	return model, nil
}

// LoadShader compiles a vertex/fragment pair, cached by the pair of paths.
func (m *Manager) LoadShader(vsPath, fsPath string) (rl.Shader, error) {
	key := vsPath + "|" + fsPath
	if shader, ok := m.shaders[key]; ok {
		return shader, nil
	}

	for _, p := range []string{vsPath, fsPath} {
		if _, err := os.Stat(p); err != nil {
			return rl.Shader{}, fmt.Errorf("%w: %v", ErrShader, err)
		}
	}

	shader := m.loadShader(vsPath, fsPath)
	if shader.ID == 0 {
		return rl.Shader{}, fmt.Errorf("%w: %s, %s", ErrShader, vsPath, fsPath)
	}

	m.shaders[key] = shader
	slog.Debug("shader loaded", "vs", vsPath, "fs", fsPath, "id", shader.ID)
	return shader, nil
}

func (m *Manager) ModelCount() int {
	return len(m.models)
}

// Unload frees everything the manager loaded.
func (m *Manager) Unload() {
	for _, model := range m.models {
		rl.UnloadModel(model)
	}
	for _, shader := range m.shaders {
		rl.UnloadShader(shader)
	}
	m.models = make(map[string]rl.Model)
	m.shaders = make(map[string]rl.Shader)
}
