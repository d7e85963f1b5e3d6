package field

import (
	"github.com/quiverlab/field-plotter/internal/model"
)

// Evaluator defines the interface for the field evaluation pipeline.
type Evaluator interface {
	Evaluate(req model.PlotRequest) (*Result, error)
}
