package model

// CoordinateSystem identifies the coordinate system a vector field is declared in
type CoordinateSystem string

const (
	// SystemCartesian uses the symbol tuple (x, y, z)
	SystemCartesian CoordinateSystem = "Cartesian"

	// SystemCylindrical uses the symbol tuple (r, theta, z)
	SystemCylindrical CoordinateSystem = "Cylindrical"

	// SystemSpherical uses the symbol tuple (r, theta, phi)
	SystemSpherical CoordinateSystem = "Spherical"
)

// CoordinateSystems returns all selectable coordinate systems in UI order
func CoordinateSystems() []CoordinateSystem {
	return []CoordinateSystem{SystemCartesian, SystemCylindrical, SystemSpherical}
}

// String returns the string representation of CoordinateSystem
func (cs CoordinateSystem) String() string {
	return string(cs)
}

// Valid returns true if the system is one of the known coordinate systems
func (cs CoordinateSystem) Valid() bool {
	return cs == SystemCartesian || cs == SystemCylindrical || cs == SystemSpherical
}

// Symbols returns the ordered symbol tuple component expressions are parsed
// against. Expressions may reference any subset of these names.
func (cs CoordinateSystem) Symbols() [3]string {
	switch cs {
	case SystemCylindrical:
		return [3]string{"r", "theta", "z"}
	case SystemSpherical:
		return [3]string{"r", "theta", "phi"}
	default:
		return [3]string{"x", "y", "z"}
	}
}

// ComponentLabels returns the display names of the three field components
func (cs CoordinateSystem) ComponentLabels() [3]string {
	switch cs {
	case SystemCylindrical:
		return [3]string{"Vr", "Vθ", "Vz"}
	case SystemSpherical:
		return [3]string{"Vr", "Vθ", "Vφ"}
	default:
		return [3]string{"Vx", "Vy", "Vz"}
	}
}

// DefaultComponents returns the placeholder field for the system. The UI shows
// these as entry placeholders and empty inputs fall back to them.
func (cs CoordinateSystem) DefaultComponents() [3]string {
	switch cs {
	case SystemCylindrical:
		return [3]string{"-r*sin(theta)", "r*cos(theta)", "z"}
	case SystemSpherical:
		return [3]string{"r*sin(theta)*cos(phi)", "r*sin(theta)*sin(phi)", "r*cos(theta)"}
	default:
		return [3]string{"y", "-x", "z"}
	}
}
