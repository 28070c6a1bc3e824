// Package game runs the frame loop: input, camera, physics and drawing.
package game

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"fpsdemo/internal/camera"
	"fpsdemo/internal/components"
	"fpsdemo/internal/config"
	"fpsdemo/internal/input"
	"fpsdemo/internal/player"
	"fpsdemo/internal/world"
)

// Overlay actions, bound next to the player's.
const (
	ActionDebugPanel   = "DebugPanel"
	ActionPhysicsDebug = "PhysicsDebug"
	ActionWireframe    = "Wireframe"
)

type Game struct {
	Config  config.Config
	World   *world.World
	Camera  *camera.FlyCamera
	Actions *input.ActionMap
	Player  *player.Rig

	DebugPanel   bool
	PhysicsDebug bool
	Wireframe    bool

	configPath string
	watcher    *config.Watcher

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New wires the game objects together. configPath is watched for edits
// while the game runs; an empty path disables reloading.
func New(cfg config.Config, configPath string) *Game {
	cam := camera.New(components.Vec3(cfg.Player.Spawn))
	cam.LookSpeed = cfg.Player.LookSpeed
	cam.FOV = cfg.Player.FOV

	return &Game{
		Config:     cfg,
		World:      world.New(cfg),
		Camera:     cam,
		Actions:    input.NewActionMap(),
		configPath: configPath,
	}
}

func (g *Game) Run() error {
	wc := g.Config.Window
	var flags uint32 = rl.FlagWindowHighdpi
	if wc.VSync {
		flags |= rl.FlagVsyncHint
	}
	if wc.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(wc.Width, wc.Height, wc.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(wc.TargetFPS)
	rl.DisableCursor()

	// The world loads GPU resources, so it needs the window first.
	if err := g.Setup(); err != nil {
		return err
	}
	defer g.World.Unload()

	g.startWatcher()
	defer g.stopWatcher()

	slog.Info("running", "width", wc.Width, "height", wc.Height, "fps", wc.TargetFPS)
	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
	slog.Info("shutting down")
	return nil
}

// Setup builds the world and the player and binds every action.
func (g *Game) Setup() error {
	if err := g.World.Initialize(); err != nil {
		return fmt.Errorf("initialize world: %w", err)
	}

	rig, err := player.Build(g.World.Scene, g.World.Space, g.Camera, g.Config)
	if err != nil {
		return fmt.Errorf("build player: %w", err)
	}
	g.Player = rig

	if err := rig.Controller.Bind(g.Actions, g.Config.Keys); err != nil {
		return fmt.Errorf("bind player keys: %w", err)
	}
	g.bindOverlay()

	g.World.Scene.Start()
	return nil
}

func (g *Game) bindOverlay() {
	g.Actions.Rebind(ActionDebugPanel, rl.KeyF1)
	g.Actions.Rebind(ActionPhysicsDebug, rl.KeyF2)
	g.Actions.Rebind(ActionWireframe, rl.KeyF3)
	g.Actions.AddListener(g.onAction)
}

func (g *Game) onAction(a input.Action) {
	if !a.Pressed {
		return
	}
	switch a.Name {
	case ActionDebugPanel:
		g.SetDebugPanel(!g.DebugPanel)
	case ActionWireframe:
		g.Wireframe = !g.Wireframe
		g.World.SetWireframe(g.Wireframe)
	case ActionPhysicsDebug:
		g.PhysicsDebug = !g.PhysicsDebug
	}
}

// SetDebugPanel shows or hides the panel. The mouse is released while the
// panel is open so its widgets can be used.
func (g *Game) SetDebugPanel(on bool) {
	if g.DebugPanel == on {
		return
	}
	g.DebugPanel = on
	if !rl.IsWindowReady() {
		return
	}
	if on {
		rl.EnableCursor()
	} else {
		rl.DisableCursor()
	}
}

func (g *Game) Update(deltaTime float32) {
	updateStart := time.Now()

	g.Actions.Poll(input.Raylib{}, deltaTime)
	if !g.DebugPanel {
		g.Camera.Update()
	}
	g.pollConfig()
	g.World.Update(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()

	drawStart := time.Now()
	g.World.Draw(g.Camera.Raylib(), g.PhysicsDebug)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.drawHUD()
	if g.DebugPanel {
		g.drawDebugPanel()
	}
	rl.EndDrawing()
}
