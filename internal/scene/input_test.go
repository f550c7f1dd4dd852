package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func press(keys ...Key) []Event {
	events := make([]Event, len(keys))
	for i, k := range keys {
		events[i] = KeyEvent(k)
	}
	return events
}

func TestApplyRotation(t *testing.T) {
	st := DefaultState()
	ctl := NewController(800, 600)

	Apply(st, ctl, press(KeyLeft, KeyLeft, KeyRight))
	assert.EqualValues(t, DefaultYaw-5, st.Yaw)

	Apply(st, ctl, press(KeyUp, KeyDown, KeyDown))
	assert.EqualValues(t, DefaultPitch-5, st.Pitch)
}

func TestYawUnclamped(t *testing.T) {
	st := DefaultState()
	ctl := NewController(800, 600)
	for i := 0; i < 100; i++ {
		Apply(st, ctl, press(KeyRight))
	}
	assert.EqualValues(t, DefaultYaw+500, st.Yaw)
}

func TestPitchSaturates(t *testing.T) {
	st := DefaultState()
	ctl := NewController(800, 600)

	st.Pitch = 85
	for i := 0; i < 10; i++ {
		Apply(st, ctl, press(KeyUp))
		assert.LessOrEqual(t, st.Pitch, float32(MaxPitch))
	}
	assert.EqualValues(t, 89, st.Pitch)

	st.Pitch = -85
	Apply(st, ctl, press(KeyDown, KeyDown, KeyDown))
	assert.EqualValues(t, -89, st.Pitch)
}

func TestElectronCountBounds(t *testing.T) {
	st := DefaultState()
	ctl := NewController(800, 600)

	for i := 0; i < 30; i++ {
		Apply(st, ctl, press(KeyMoreElectrons))
		assert.GreaterOrEqual(t, st.Electrons, MinElectrons)
		assert.LessOrEqual(t, st.Electrons, MaxElectrons)
	}
	assert.Equal(t, 18, st.Electrons)
	fx := Apply(st, ctl, press(KeyMoreElectrons))
	assert.False(t, fx.ElementChanged)

	for i := 0; i < 30; i++ {
		Apply(st, ctl, press(KeyFewerElectrons))
		assert.GreaterOrEqual(t, st.Electrons, MinElectrons)
	}
	assert.Equal(t, 1, st.Electrons)

	fx = Apply(st, ctl, press(KeyMoreElectrons))
	assert.True(t, fx.ElementChanged)
	assert.Equal(t, 2, st.Electrons)
}

func TestApplyToggles(t *testing.T) {
	st := DefaultState()
	ctl := NewController(800, 600)

	Apply(st, ctl, press(KeyCloudMode))
	assert.Equal(t, ModeCloud, st.Mode)
	Apply(st, ctl, press(KeyOrbitMode))
	assert.Equal(t, ModeOrbit, st.Mode)

	Apply(st, ctl, press(KeyAnimate))
	assert.False(t, st.Animate)
	Apply(st, ctl, press(KeyAnimate))
	assert.True(t, st.Animate)

	Apply(st, ctl, press(KeyAxes))
	assert.False(t, st.ShowAxes)
}

func TestApplyReset(t *testing.T) {
	st := DefaultState()
	ctl := NewController(800, 600)

	Apply(st, ctl, press(KeyUp, KeyLeft, KeyCloudMode, KeyAnimate, KeyMoreElectrons))
	st.Phase = 200
	fx := Apply(st, ctl, press(KeyReset))

	assert.True(t, fx.ElementChanged)
	assert.EqualValues(t, DefaultPitch, st.Pitch)
	assert.EqualValues(t, DefaultYaw, st.Yaw)
	assert.Zero(t, st.Phase)
	assert.True(t, st.Animate)
	assert.Equal(t, ModeOrbit, st.Mode)
	assert.Equal(t, DefaultElectrons, st.Electrons)
}

func TestApplyEffects(t *testing.T) {
	st := DefaultState()
	ctl := NewController(800, 600)

	fx := Apply(st, ctl, press(KeyBackground, KeyMute, KeyQuit))
	assert.Equal(t, Effects{Quit: true, PickBackground: true, ToggleMute: true}, fx)

	fx = Apply(st, ctl, press(KeyMute, KeyMute))
	assert.False(t, fx.ToggleMute)

	before := *st
	Apply(st, ctl, press(KeyUnknown, KeyBackground))
	assert.Equal(t, before, *st)
}

func TestApplyResizeLeavesState(t *testing.T) {
	st := DefaultState()
	ctl := NewController(800, 600)
	before := *st

	fx := Apply(st, ctl, []Event{ResizeEvent(1000, 500)})

	assert.Equal(t, Effects{}, fx)
	assert.Equal(t, before, *st)
	assert.InDelta(t, 2, ctl.Aspect(), tol)
}
