package scene

// Key is a key the viewer reacts to, independent of the window backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyOrbitMode
	KeyCloudMode
	KeyAnimate
	KeyMoreElectrons
	KeyFewerElectrons
	KeyAxes
	KeyReset
	KeyBackground
	KeyMute
	KeyQuit
)

// EventKind tells key presses from viewport changes.
type EventKind int

const (
	KeyPress EventKind = iota
	Resize
)

// Event is one drained input event. Width and Height are set for Resize.
type Event struct {
	Kind          EventKind
	Key           Key
	Width, Height int
}

// KeyEvent is a convenience constructor for a key press.
func KeyEvent(k Key) Event { return Event{Kind: KeyPress, Key: k} }

// ResizeEvent is a convenience constructor for a viewport change.
func ResizeEvent(w, h int) Event { return Event{Kind: Resize, Width: w, Height: h} }

// Effects are requests for collaborators outside the scene that came out of a
// batch of events.
type Effects struct {
	Quit           bool
	ElementChanged bool
	PickBackground bool
	ToggleMute     bool
}

const rotateStep = 5

// Apply handles events in order: key presses mutate st, resizes go to ctl.
func Apply(st *State, ctl *Controller, events []Event) Effects {
	var fx Effects
	for _, ev := range events {
		switch ev.Kind {
		case Resize:
			ctl.Resize(ev.Width, ev.Height)
		case KeyPress:
			applyKey(st, ev.Key, &fx)
		}
	}
	return fx
}

func applyKey(st *State, k Key, fx *Effects) {
	switch k {
	case KeyLeft:
		st.Yaw -= rotateStep
	case KeyRight:
		st.Yaw += rotateStep
	case KeyUp:
		st.Pitch += rotateStep
	case KeyDown:
		st.Pitch -= rotateStep
	case KeyOrbitMode:
		st.Mode = ModeOrbit
	case KeyCloudMode:
		st.Mode = ModeCloud
	case KeyAnimate:
		st.Animate = !st.Animate
	case KeyMoreElectrons:
		fx.ElementChanged = setElectrons(st, st.Electrons+1) || fx.ElementChanged
	case KeyFewerElectrons:
		fx.ElementChanged = setElectrons(st, st.Electrons-1) || fx.ElementChanged
	case KeyAxes:
		st.ShowAxes = !st.ShowAxes
	case KeyReset:
		before := st.Electrons
		st.Reset()
		fx.ElementChanged = before != st.Electrons || fx.ElementChanged
	case KeyBackground:
		fx.PickBackground = true
	case KeyMute:
		fx.ToggleMute = !fx.ToggleMute
	case KeyQuit:
		fx.Quit = true
	}
	st.Pitch = clampPitch(st.Pitch)
}

func setElectrons(st *State, n int) bool {
	n = clampElectrons(n)
	if n == st.Electrons {
		return false
	}
	st.Electrons = n
	return true
}
