package model

import (
	"fmt"
	"strings"
)

// PlotRequest describes a single plot action: the coordinate system, the plot
// layout, and the three component expressions as typed by the user. It is a
// plain value; the pipeline never mutates it and keeps no reference to it.
type PlotRequest struct {
	System     CoordinateSystem
	Type       PlotType
	Components [3]string
}

// WithDefaults returns a copy of the request with blank component expressions
// replaced by the system's placeholder field
func (pr PlotRequest) WithDefaults() PlotRequest {
	defaults := pr.System.DefaultComponents()
	for i, c := range pr.Components {
		if strings.TrimSpace(c) == "" {
			pr.Components[i] = defaults[i]
		}
	}
	return pr
}

// Validate checks that the request names a known coordinate system and a plot
// type valid for it
func (pr PlotRequest) Validate() error {
	if !pr.System.Valid() {
		return fmt.Errorf("unknown coordinate system %q", string(pr.System))
	}
	if !pr.Type.ValidFor(pr.System) {
		return fmt.Errorf("plot type %q is not valid for %s coordinates", string(pr.Type), pr.System)
	}
	return nil
}
