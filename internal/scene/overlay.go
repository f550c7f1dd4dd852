package scene

import "github.com/iburimskiy/atom-viewer/internal/atom"

// Overlay is the read-only text state shown on top of the scene.
type Overlay struct {
	Element string
	Mode    string
}

// Status reports the current element and view mode labels.
func Status(st *State) Overlay {
	return Overlay{
		Element: "Atom: " + atom.ElementLabel(st.Electrons),
		Mode:    "View: " + st.Mode.String(),
	}
}

// HelpLine pairs a key with what it does.
type HelpLine struct {
	Keys, Action string
}

// Help lists the controls.
var Help = []HelpLine{
	{"Arrows", "rotate scene"},
	{"1 / 2", "orbits / clouds"},
	{"+ / -", "electron count (1..18)"},
	{"Space", "animation on/off"},
	{"A", "local axes on/off"},
	{"R", "reset view"},
	{"B", "choose background"},
	{"M", "mute chime"},
	{"Esc", "quit"},
}
