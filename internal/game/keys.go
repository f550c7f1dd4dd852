package game

import (
	"maps"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/atom-viewer/internal/scene"
)

var keymap = map[ebiten.Key]scene.Key{
	ebiten.KeyArrowLeft:      scene.KeyLeft,
	ebiten.KeyArrowRight:     scene.KeyRight,
	ebiten.KeyArrowUp:        scene.KeyUp,
	ebiten.KeyArrowDown:      scene.KeyDown,
	ebiten.KeyDigit1:         scene.KeyOrbitMode,
	ebiten.KeyNumpad1:        scene.KeyOrbitMode,
	ebiten.KeyDigit2:         scene.KeyCloudMode,
	ebiten.KeyNumpad2:        scene.KeyCloudMode,
	ebiten.KeySpace:          scene.KeyAnimate,
	ebiten.KeyEqual:          scene.KeyMoreElectrons,
	ebiten.KeyNumpadAdd:      scene.KeyMoreElectrons,
	ebiten.KeyMinus:          scene.KeyFewerElectrons,
	ebiten.KeyNumpadSubtract: scene.KeyFewerElectrons,
	ebiten.KeyA:              scene.KeyAxes,
	ebiten.KeyR:              scene.KeyReset,
	ebiten.KeyB:              scene.KeyBackground,
	ebiten.KeyM:              scene.KeyMute,
	ebiten.KeyEscape:         scene.KeyQuit,
}

// Held keys repeat like OS auto-repeat, counted in ticks (60 per second at
// the usual refresh rate).
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// Only stepping keys repeat; toggles fire once per press.
var repeatable = map[scene.Key]bool{
	scene.KeyLeft:           true,
	scene.KeyRight:          true,
	scene.KeyUp:             true,
	scene.KeyDown:           true,
	scene.KeyMoreElectrons:  true,
	scene.KeyFewerElectrons: true,
}

// boundKeys fixes the order in which simultaneous keys are reported.
var boundKeys = slices.Sorted(maps.Keys(keymap))

// fires reports whether a key held for d ticks produces a press this tick.
func fires(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	return repeat && d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// translateKeys appends a key press event for every known key that is pressed
// or repeats this tick. duration is inpututil.KeyPressDuration in the game.
func translateKeys(events []scene.Event, duration func(ebiten.Key) int) []scene.Event {
	for _, k := range boundKeys {
		sk := keymap[k]
		if fires(duration(k), repeatable[sk]) {
			events = append(events, scene.KeyEvent(sk))
		}
	}
	return events
}
