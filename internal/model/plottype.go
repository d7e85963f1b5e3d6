package model

// PlotType identifies the sampling layout of a plot: the full volumetric grid
// or one of three 2D slices with the remaining coordinate held constant
type PlotType string

const (
	// PlotType3D samples all three coordinates over a volumetric grid
	PlotType3D PlotType = "3D"

	// PlotTypeXY holds z constant and samples the x-y plane (Cartesian)
	PlotTypeXY PlotType = "XY"

	// PlotTypeYZ holds x constant and samples the y-z plane (Cartesian)
	PlotTypeYZ PlotType = "YZ"

	// PlotTypeXZ holds y constant and samples the x-z plane (Cartesian)
	PlotTypeXZ PlotType = "XZ"

	// PlotTypeRTheta holds the third coordinate constant and samples r-θ
	// (cylindrical: z=0, spherical: φ=0)
	PlotTypeRTheta PlotType = "Rθ"

	// PlotTypeRZ holds θ constant and samples the r-z half plane (cylindrical)
	PlotTypeRZ PlotType = "RZ"

	// PlotTypeThetaZ holds r constant and samples the θ-z surface (cylindrical)
	PlotTypeThetaZ PlotType = "θZ"

	// PlotTypeRPhi holds θ constant and samples the r-φ equatorial plane (spherical)
	PlotTypeRPhi PlotType = "Rφ"

	// PlotTypeThetaPhi holds r constant and samples the θ-φ sphere (spherical)
	PlotTypeThetaPhi PlotType = "θφ"
)

// PlotTypesFor returns the valid plot types for a coordinate system in UI order
func PlotTypesFor(cs CoordinateSystem) []PlotType {
	switch cs {
	case SystemCartesian:
		return []PlotType{PlotType3D, PlotTypeXY, PlotTypeYZ, PlotTypeXZ}
	case SystemCylindrical:
		return []PlotType{PlotType3D, PlotTypeRTheta, PlotTypeRZ, PlotTypeThetaZ}
	case SystemSpherical:
		return []PlotType{PlotType3D, PlotTypeRTheta, PlotTypeRPhi, PlotTypeThetaPhi}
	}
	return nil
}

// String returns the string representation of PlotType
func (pt PlotType) String() string {
	return string(pt)
}

// Is3D returns true for the volumetric plot type
func (pt PlotType) Is3D() bool {
	return pt == PlotType3D
}

// ValidFor returns true if the plot type is selectable for the given system
func (pt PlotType) ValidFor(cs CoordinateSystem) bool {
	for _, t := range PlotTypesFor(cs) {
		if t == pt {
			return true
		}
	}
	return false
}
