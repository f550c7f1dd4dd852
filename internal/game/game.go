package game

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/atom-viewer/internal/atom"
	"github.com/iburimskiy/atom-viewer/internal/audio"
	"github.com/iburimskiy/atom-viewer/internal/config"
	"github.com/iburimskiy/atom-viewer/internal/render"
	"github.com/iburimskiy/atom-viewer/internal/scene"
)

// Game adapts the scene to ebiten. Update handles input and composes the
// frame, Draw only paints it.
type Game struct {
	cfg      config.Config
	state    *scene.State
	ctl      *scene.Controller
	composer *scene.Composer
	renderer *render.Renderer
	chime    *audio.Chime
	clock    *Clock
	frame    scene.Frame

	events []scene.Event
	width  int
	height int

	background *ebiten.Image
	gradient   *ebiten.Image
	picked     chan pickResult
	picking    bool
	lastErr    error
}

// New builds the viewer. The electron cloud is sampled once here.
func New(cfg config.Config, chime *audio.Chime) *Game {
	cloud := atom.GenerateCloud(atom.NewCloudRand(cfg.Cloud.Seed), cfg.Cloud.PointsPerShell, atom.MaxShells)
	slog.Debug("electron cloud sampled", "points", len(cloud), "seed", cfg.Cloud.Seed)

	g := &Game{
		cfg:      cfg,
		state:    scene.DefaultState(),
		ctl:      scene.NewController(cfg.Window.Width, cfg.Window.Height),
		composer: scene.NewComposer(cloud),
		renderer: render.New(),
		chime:    chime,
		clock:    NewClock(),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		picked:   make(chan pickResult, 1),
	}
	if cfg.Background != "" {
		if _, err := os.Stat(cfg.Background); err == nil {
			g.loadBackground(cfg.Background)
		} else {
			slog.Info("background not found, using gradient", "path", cfg.Background)
		}
	}
	g.frame = g.composer.Compose(g.state, g.ctl)
	return g
}

func (g *Game) Update() error {
	g.events = translateKeys(g.events, inpututil.KeyPressDuration)
	fx := scene.Apply(g.state, g.ctl, g.events)
	g.events = g.events[:0]

	g.pollBackground()

	if fx.Quit {
		return ebiten.Termination
	}
	if fx.ElementChanged {
		slog.Debug("element changed", "electrons", g.state.Electrons)
		g.chime.Play(g.state.Electrons)
	}
	if fx.ToggleMute {
		slog.Info("chime", "muted", g.chime.ToggleMute())
	}
	if fx.PickBackground {
		g.pickBackground()
	}

	g.frame = g.composer.Compose(g.state, g.ctl)
	g.state.Advance(float32(g.clock.Tick()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.renderer.Draw(screen, g.frame)
	g.drawOverlay(screen)
}

// Layout follows the window size. A change is queued as a resize event and
// reaches the camera on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.events = append(g.events, scene.ResizeEvent(outsideWidth, outsideHeight))
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// fail keeps err for the overlay. Errors are never fatal once the window is up.
func (g *Game) fail(err error) {
	g.lastErr = err
	slog.Warn("viewer error", "err", err)
}

// IsTermination reports whether err is the normal end of RunGame.
func IsTermination(err error) bool {
	return err == nil || errors.Is(err, ebiten.Termination)
}
