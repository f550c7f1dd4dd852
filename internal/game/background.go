package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	"github.com/crazy3lf/colorconv"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"
)

// Gradient colors of the fallback background: a dark blue that brightens
// slightly toward the bottom.
const (
	gradientHue    = 235
	gradientSat    = 0.65
	gradientTop    = 0.06
	gradientBottom = 0.14
)

type pickResult struct {
	path string
	err  error
}

// gradientPixels returns an RGBA column of height h for the fallback background.
func gradientPixels(h int) []byte {
	pix := make([]byte, 4*h)
	for y := 0; y < h; y++ {
		ratio := 0.0
		if h > 1 {
			ratio = float64(y) / float64(h-1)
		}
		v := gradientTop + (gradientBottom-gradientTop)*ratio
		r, g, b, err := colorconv.HSVToRGB(gradientHue, gradientSat, v)
		if err != nil {
			// only reachable with out-of-range constants
			r, g, b = 5, 5, 15
		}
		pix[4*y], pix[4*y+1], pix[4*y+2], pix[4*y+3] = r, g, b, 255
	}
	return pix
}

// gradientImage returns a 1 pixel wide column that is stretched to the screen.
func (g *Game) gradientImage(h int) *ebiten.Image {
	if g.gradient != nil && g.gradient.Bounds().Dy() == h {
		return g.gradient
	}
	if g.gradient != nil {
		g.gradient.Deallocate()
	}
	g.gradient = ebiten.NewImage(1, h)
	g.gradient.WritePixels(gradientPixels(h))
	return g.gradient
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if sh == 0 || sw == 0 {
		return
	}
	img := g.background
	if img == nil {
		img = g.gradientImage(sh)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(coverScale(img.Bounds(), sw, sh))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// coverScale stretches b to exactly cover a w by h screen.
func coverScale(b image.Rectangle, w, h int) (sx, sy float64) {
	if b.Dx() == 0 || b.Dy() == 0 {
		return 1, 1
	}
	return float64(w) / float64(b.Dx()), float64(h) / float64(b.Dy())
}

// loadBackground replaces the background image. On failure the previous
// background stays and the error is reported on the status line.
func (g *Game) loadBackground(path string) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		g.fail(fmt.Errorf("load background %s: %w", path, err))
		return
	}
	if g.background != nil {
		g.background.Deallocate()
	}
	g.background = img
	slog.Info("background loaded", "path", path)
}

// pickBackground opens a file dialog without blocking the frame loop.
func (g *Game) pickBackground() {
	if g.picking {
		return
	}
	g.picking = true
	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Choose background image"),
			zenity.FileFilters{{
				Name:     "Images",
				Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
			}},
		)
		g.picked <- pickResult{path: path, err: err}
	}()
}

// pollBackground applies a finished file dialog, if any.
func (g *Game) pollBackground() {
	select {
	case res := <-g.picked:
		g.picking = false
		if errors.Is(res.err, zenity.ErrCanceled) {
			return
		}
		if res.err != nil {
			g.fail(fmt.Errorf("choose background: %w", res.err))
			return
		}
		g.loadBackground(res.path)
	default:
	}
}
