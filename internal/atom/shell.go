package atom

const (
	// MaxShells is the number of electron shells drawn.
	MaxShells = 3

	baseRadius = 0.7
	radiusStep = 0.55
)

// ShellCapacity is the number of electrons each shell holds, innermost first.
var ShellCapacity = [MaxShells]int{2, 8, 8}

// ShellRadius returns the nominal radius of shell s.
func ShellRadius(s int) float32 {
	return baseRadius + radiusStep*float32(s)
}

// ActiveShellCount returns how many shells hold at least one of n electrons.
func ActiveShellCount(n int) int {
	shells := 0
	for s := 0; s < MaxShells && n > 0; s++ {
		shells++
		n -= ShellCapacity[s]
	}
	return shells
}

// ElectronsInShell returns how many of n electrons sit in shell s when the
// shells are filled innermost first.
func ElectronsInShell(n, s int) int {
	if s < 0 || s >= MaxShells {
		return 0
	}
	remaining := n
	for i := 0; i < s; i++ {
		remaining -= min(max(remaining, 0), ShellCapacity[i])
	}
	return max(min(remaining, ShellCapacity[s]), 0)
}
