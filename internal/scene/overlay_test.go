package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	st := DefaultState()
	assert.Equal(t, Overlay{
		Element: "Atom: Z = 6   C (Carbon)",
		Mode:    "View: Bohr orbits",
	}, Status(st))

	st.Mode = ModeCloud
	st.Electrons = 0
	got := Status(st)
	assert.Equal(t, "Atom: unknown, e- = 0", got.Element)
	assert.Equal(t, "View: probability cloud", got.Mode)
}
