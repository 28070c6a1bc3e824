package game

import (
	"log/slog"

	"fpsdemo/internal/components"
	"fpsdemo/internal/config"
)

func (g *Game) startWatcher() {
	if g.configPath == "" {
		return
	}
	w, err := config.Watch(g.configPath)
	if err != nil {
		slog.Warn("config reload disabled", "path", g.configPath, "err", err)
		return
	}
	g.watcher = w
	slog.Info("watching config", "path", g.configPath)
}

func (g *Game) stopWatcher() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		slog.Warn("close config watcher", "err", err)
	}
	g.watcher = nil
}

// pollConfig applies at most one pending reload without blocking.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg := <-g.watcher.Changes():
		g.ApplyConfig(cfg)
	default:
	}
}

// ApplyConfig applies the parts of cfg that can change while running:
// speeds, keys, look settings, jump force, gravity, lights and background.
// Window, scene and capsule size changes need a restart.
func (g *Game) ApplyConfig(cfg config.Config) {
	if g.Player != nil {
		if err := g.Player.Controller.ApplyConfig(cfg); err != nil {
			slog.Warn("config reload: keeping old key bindings", "err", err)
			cfg.Keys = g.Config.Keys
		}
		g.Player.Character.JumpForce = cfg.Player.JumpForce
		g.Player.Character.MaxSlope = cfg.Physics.MaxSlope
	}

	g.Camera.LookSpeed = cfg.Player.LookSpeed
	g.Camera.FOV = cfg.Player.FOV

	g.World.Space.Gravity = components.Vec3(cfg.Physics.Gravity)
	g.World.Space.MaxSubstep = cfg.Physics.MaxSubstep
	g.World.Background = components.ColorFromFloats(cfg.Scene.Background)
	g.World.ApplyLights(cfg.Lights)

	if cfg.Scene != g.Config.Scene || cfg.Window != g.Config.Window {
		slog.Warn("config reload: window and scene changes apply after restart")
	}
	if cfg.Player.Radius != g.Config.Player.Radius || cfg.Player.Height != g.Config.Player.Height ||
		cfg.Player.Mass != g.Config.Player.Mass || cfg.Player.EyeHeight != g.Config.Player.EyeHeight {
		slog.Warn("config reload: capsule changes apply after restart")
	}

	g.Config = cfg
	slog.Info("config reloaded",
		"forward_speed", cfg.Player.ForwardSpeed,
		"strafe_speed", cfg.Player.StrafeSpeed)
}
