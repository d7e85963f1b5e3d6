package field

// Package field implements the core evaluation pipeline: it turns a plot
// request into a renderable arrow field. For each request it compiles the
// three component expressions, builds the sampling grid for the chosen
// coordinate system and plot layout, evaluates the components at every grid
// point, rotates curvilinear samples into the fixed Cartesian frame where the
// plot needs it, and scales every arrow to unit length. The pipeline holds no
// state between requests, so a single instance serves every plot.
