package game

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"fpsdemo/internal/input"
	"fpsdemo/internal/player"
)

var (
	colorPanel  = rl.NewColor(24, 26, 34, 220)
	colorAccent = rl.NewColor(99, 102, 241, 255)
	colorText   = rl.NewColor(230, 230, 240, 255)
)

// controlsText describes the current bindings, e.g. "WASD to move, SPACE to jump".
func (g *Game) controlsText() string {
	move := make([]string, 0, 4)
	for _, action := range []string{player.ActionUp, player.ActionLeft, player.ActionDown, player.ActionRight} {
		keys := g.Actions.Keys(action)
		if len(keys) == 0 {
			move = append(move, "?")
			continue
		}
		move = append(move, input.KeyName(keys[0]))
	}
	jump := "?"
	if keys := g.Actions.Keys(player.ActionJump); len(keys) > 0 {
		jump = input.KeyName(keys[0])
	}
	return fmt.Sprintf("%s to move, %s to jump, mouse to look", strings.Join(move, ""), jump)
}

func (g *Game) drawHUD() {
	rl.DrawText(g.controlsText(), 10, 10, 20, rl.DarkGray)
	rl.DrawText("F1 debug panel, F2 physics debug, F3 wireframe", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)

	// Crosshair
	cx := int32(rl.GetScreenWidth() / 2)
	cy := int32(rl.GetScreenHeight() / 2)
	rl.DrawLine(cx-6, cy, cx+6, cy, rl.DarkGray)
	rl.DrawLine(cx, cy-6, cx, cy+6, rl.DarkGray)
}

func (g *Game) styleGUI() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(35, 38, 50, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}

func (g *Game) drawDebugPanel() {
	g.styleGUI()

	const w, h = 300, 280
	x := float32(rl.GetScreenWidth()) - w - 10
	y := float32(10)
	rl.DrawRectangle(int32(x), int32(y), w, h, colorPanel)
	rl.DrawRectangleLines(int32(x), int32(y), w, h, colorAccent)

	line := func(row int, text string) {
		rl.DrawText(text, int32(x)+10, int32(y)+10+int32(row)*20, 16, colorText)
	}

	if g.Player != nil {
		ch := g.Player.Character
		pos := ch.Location()
		walk := g.Player.Controller.Walk()
		vel := ch.Velocity()
		line(0, fmt.Sprintf("Pos:  (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z))
		line(1, fmt.Sprintf("Walk: (%.2f, %.2f, %.2f)", walk.X, walk.Y, walk.Z))
		line(2, fmt.Sprintf("Vel Y: %.2f  Ground: %v", vel.Y, ch.OnGround()))
	}
	line(3, fmt.Sprintf("Yaw %.1f  Pitch %.1f", g.Camera.Yaw, g.Camera.Pitch))
	line(4, fmt.Sprintf("Update %.2f ms  Draw %.2f ms", g.updateMs, g.drawMs))

	sy := y + 120
	if g.Player != nil {
		s := &g.Player.Controller.Settings
		s.ForwardSpeed = gui.Slider(rl.Rectangle{X: x + 80, Y: sy, Width: 160, Height: 18},
			"Forward", fmt.Sprintf("%.1f", s.ForwardSpeed), s.ForwardSpeed, 0, 40)
		s.StrafeSpeed = gui.Slider(rl.Rectangle{X: x + 80, Y: sy + 26, Width: 160, Height: 18},
			"Strafe", fmt.Sprintf("%.1f", s.StrafeSpeed), s.StrafeSpeed, 0, 40)
	}
	g.Camera.LookSpeed = gui.Slider(rl.Rectangle{X: x + 80, Y: sy + 52, Width: 160, Height: 18},
		"Look", fmt.Sprintf("%.2f", g.Camera.LookSpeed), g.Camera.LookSpeed, 0.01, 0.5)

	g.PhysicsDebug = gui.CheckBox(rl.Rectangle{X: x + 10, Y: sy + 86, Width: 18, Height: 18},
		"Physics debug", g.PhysicsDebug)
	wire := gui.CheckBox(rl.Rectangle{X: x + 10, Y: sy + 112, Width: 18, Height: 18},
		"Wireframe", g.Wireframe)
	if wire != g.Wireframe {
		g.Wireframe = wire
		g.World.SetWireframe(wire)
	}
}
