package atom

import "fmt"

// MaxElectrons is the highest atomic number the viewer models (argon).
const MaxElectrons = 18

// Element is one row of the periodic table.
type Element struct {
	Z      int
	Symbol string
	Name   string
}

var elements = [MaxElectrons]Element{
	{1, "H", "Hydrogen"},
	{2, "He", "Helium"},
	{3, "Li", "Lithium"},
	{4, "Be", "Beryllium"},
	{5, "B", "Boron"},
	{6, "C", "Carbon"},
	{7, "N", "Nitrogen"},
	{8, "O", "Oxygen"},
	{9, "F", "Fluorine"},
	{10, "Ne", "Neon"},
	{11, "Na", "Sodium"},
	{12, "Mg", "Magnesium"},
	{13, "Al", "Aluminium"},
	{14, "Si", "Silicon"},
	{15, "P", "Phosphorus"},
	{16, "S", "Sulfur"},
	{17, "Cl", "Chlorine"},
	{18, "Ar", "Argon"},
}

// LookupElement returns the element with atomic number z.
// The second result is false when z is outside [1, MaxElectrons].
func LookupElement(z int) (Element, bool) {
	if z < 1 || z > MaxElectrons {
		return Element{}, false
	}
	return elements[z-1], true
}

// Label formats the element the way the overlay shows it.
func (e Element) Label() string {
	return fmt.Sprintf("Z = %d   %s (%s)", e.Z, e.Symbol, e.Name)
}

// ElementLabel is the overlay label for an electron count, with a generic
// fallback for counts that have no table entry.
func ElementLabel(electrons int) string {
	if el, ok := LookupElement(electrons); ok {
		return el.Label()
	}
	return fmt.Sprintf("unknown, e- = %d", electrons)
}
