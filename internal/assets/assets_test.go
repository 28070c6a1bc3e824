package assets

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	return p
}

func TestLoadModelMissing(t *testing.T) {
	m := NewManager()
	m.loadModel = func(string) rl.Model {
		t.Fatal("loader must not run for a missing file")
		return rl.Model{}
	}
	_, err := m.LoadModel(filepath.Join(t.TempDir(), "nope.obj"))
	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestLoadModelEmpty(t *testing.T) {
	m := NewManager()
	m.loadModel = func(string) rl.Model { return rl.Model{} }

	_, err := m.LoadModel(touch(t, "empty.obj"))
	assert.ErrorIs(t, err, ErrEmptyModel)
	assert.Zero(t, m.ModelCount())
}

func TestLoadModelCaches(t *testing.T) {
	m := NewManager()
	calls := 0
	m.loadModel = func(string) rl.Model {
		calls++
		return rl.Model{MeshCount: 2}
	}
	path := touch(t, "world.obj")

	first, err := m.LoadModel(path)
	require.NoError(t, err)
	second, err := m.LoadModel(path)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, m.ModelCount())
}

func TestLoadShader(t *testing.T) {
	m := NewManager()
	m.loadShader = func(vs, fs string) rl.Shader { return rl.Shader{ID: 7} }
	vs, fs := touch(t, "a.vs"), touch(t, "a.fs")

	shader, err := m.LoadShader(vs, fs)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), shader.ID)

	_, err = m.LoadShader(vs, filepath.Join(t.TempDir(), "missing.fs"))
	assert.ErrorIs(t, err, ErrShader)

	m.loadShader = func(vs, fs string) rl.Shader { return rl.Shader{} }
	_, err = m.LoadShader(touch(t, "b.vs"), touch(t, "b.fs"))
	assert.ErrorIs(t, err, ErrShader)
}
