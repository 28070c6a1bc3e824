package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrUnknownKey = errors.New("input: unknown key")

var namedKeys = map[string]int32{
	"SPACE":       rl.KeySpace,
	"LEFT_SHIFT":  rl.KeyLeftShift,
	"RIGHT_SHIFT": rl.KeyRightShift,
	"LEFT_CTRL":   rl.KeyLeftControl,
	"UP":          rl.KeyUp,
	"DOWN":        rl.KeyDown,
	"LEFT":        rl.KeyLeft,
	"RIGHT":       rl.KeyRight,
	"ENTER":       rl.KeyEnter,
	"ESCAPE":      rl.KeyEscape,
	"TAB":         rl.KeyTab,
}

// ParseKey maps a key name such as "W", "7", "SPACE" or "F3" to a raylib
// key code. Names are case-insensitive.
func ParseKey(name string) (int32, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if k, ok := namedKeys[n]; ok {
		return k, nil
	}
	if len(n) == 1 {
		switch c := n[0]; {
		case c >= 'A' && c <= 'Z':
			return rl.KeyA + int32(c-'A'), nil
		case c >= '0' && c <= '9':
			return rl.KeyZero + int32(c-'0'), nil
		}
	}
	if strings.HasPrefix(n, "F") {
		if i, err := strconv.Atoi(n[1:]); err == nil && i >= 1 && i <= 12 {
			return rl.KeyF1 + int32(i-1), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// KeyName is the inverse of ParseKey. Unknown codes render as their number.
func KeyName(key int32) string {
	switch {
	case key >= rl.KeyA && key <= rl.KeyZ:
		return string(rune('A' + key - rl.KeyA))
	case key >= rl.KeyZero && key <= rl.KeyNine:
		return string(rune('0' + key - rl.KeyZero))
	case key >= rl.KeyF1 && key <= rl.KeyF12:
		return "F" + strconv.Itoa(int(key-rl.KeyF1+1))
	}
	for name, k := range namedKeys {
		if k == key {
			return name
		}
	}
	return strconv.Itoa(int(key))
}
