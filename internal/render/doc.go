package render

// Package render turns evaluated arrow fields into images. Planar results are
// drawn as a labeled quiver plot with grid lines; volumetric results are
// projected through a fixed orthographic camera onto the canvas together with
// the bounding box of the sampling domain. The plotting library carries no
// arrow-field plotter of its own, so the package implements one.
