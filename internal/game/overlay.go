package game

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/muesli/termenv"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/atom-viewer/internal/config"
	"github.com/iburimskiy/atom-viewer/internal/scene"
)

var (
	overlayFace  = text.NewGoXFace(basicfont.Face7x13)
	overlayColor = color.White
	errorColor   = color.NRGBA{R: 255, G: 120, B: 120, A: 255}
)

// statusText is the element and view mode block in the top left corner.
func statusText(st *scene.State, muted bool) string {
	s := scene.Status(st)
	lines := []string{s.Element, s.Mode}
	if !st.Animate {
		lines = append(lines, "Animation paused")
	}
	if muted {
		lines = append(lines, "Chime muted")
	}
	return strings.Join(lines, "\n")
}

// helpText is the controls block shown under the status.
func helpText() string {
	var b strings.Builder
	b.WriteString("Controls:")
	for _, h := range scene.Help {
		fmt.Fprintf(&b, "\n%s: %s", h.Keys, h.Action)
	}
	return b.String()
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = config.OverlayLineHeight
	text.Draw(screen, s, overlayFace, op)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	drawText(screen, statusText(g.state, g.chime.Muted()), config.OverlayX, config.OverlayY, overlayColor)
	drawText(screen, helpText(), config.OverlayX, config.HelpY, overlayColor)
	if g.lastErr != nil {
		h := screen.Bounds().Dy()
		drawText(screen, "Error: "+g.lastErr.Error(), config.OverlayX, float64(h-2*config.OverlayLineHeight), errorColor)
	}
}

// PrintHelp writes the controls to w, styled when w is a terminal.
func PrintHelp(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String("Controls:").Bold())
	keyColor := out.Color("39")
	for _, h := range scene.Help {
		keys := out.String(fmt.Sprintf("  %-8s", h.Keys)).Foreground(keyColor)
		fmt.Fprintf(w, "%s: %s\n", keys, h.Action)
	}
}
