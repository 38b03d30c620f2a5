package naca16

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

type SurfaceKind string

const (
	CUBIC    SurfaceKind = "cubic"
	AKIMA    SurfaceKind = "akima"
	MONOTONE SurfaceKind = "monotone"
	NATURAL  SurfaceKind = "natural"
	LINEAR   SurfaceKind = "linear"
)

var ErrUnknownSurfaceKind = errors.New("unknown surface kind")

func newFitter(kind SurfaceKind) (interp.FittablePredictor, error) {
	switch kind {
	case CUBIC:
		return &interp.NotAKnotCubic{}, nil
	case AKIMA:
		return &interp.AkimaSpline{}, nil
	case MONOTONE:
		return &interp.FritschButland{}, nil
	case NATURAL:
		return &interp.NaturalCubic{}, nil
	case LINEAR:
		return &interp.PiecewiseLinear{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSurfaceKind, kind)
}

// Surface is a tensor-product interpolant over a regular (Mach, alpha)
// grid. Each Mach row is fitted along alpha once; evaluation fits the
// resulting column along Mach. Outside the grid the value of the nearest
// edge is returned on each axis.
//
// A Surface is immutable and safe for concurrent use.
type Surface struct {
	Kind   SurfaceKind
	Regime Regime

	alphas []float64
	machs  []float64
	rows   []interp.Predictor
}

// NewSurface fits values, whose rows follow machs and columns follow alphas.
func NewSurface(kind SurfaceKind, regime Regime, alphas, machs []float64, values *Grid) (*Surface, error) {
	if values.Rows != len(machs) || values.Cols != len(alphas) {
		return nil, fmt.Errorf("%w: %dx%d values over %d mach x %d alpha samples",
			ErrShape, values.Rows, values.Cols, len(machs), len(alphas))
	}

	s := &Surface{
		Kind:   kind,
		Regime: regime,
		alphas: alphas,
		machs:  machs,
		rows:   make([]interp.Predictor, len(machs)),
	}
	for i := range machs {
		f, err := newFitter(kind)
		if err != nil {
			return nil, err
		}
		if err := f.Fit(alphas, values.Row(i)); err != nil {
			return nil, fmt.Errorf("fit %s row %d: %w", regime, i, err)
		}
		s.rows[i] = f
	}

	// The Mach system depends on the sample positions only, so one
	// successful fit means every later column fit succeeds as well.
	if _, err := s.fitColumn(alphas[0]); err != nil {
		return nil, fmt.Errorf("fit %s mach axis: %w", regime, err)
	}
	return s, nil
}

func (s *Surface) fitColumn(alpha float64) (interp.Predictor, error) {
	column := make([]float64, len(s.rows))
	for i, row := range s.rows {
		column[i] = row.Predict(alpha)
	}
	f, err := newFitter(s.Kind)
	if err != nil {
		return nil, err
	}
	if err := f.Fit(s.machs, column); err != nil {
		return nil, err
	}
	return f, nil
}

// Evaluate returns the coefficient at alpha (degrees) and mach.
func (s *Surface) Evaluate(alpha, mach float64) float64 {
	column, err := s.fitColumn(alpha)
	if err != nil {
		// The Mach fit succeeded in NewSurface and depends only on the
		// sample positions, so this cannot happen for a built surface.
		panic(fmt.Sprintf("naca16: %s surface lost its mach fit: %v", s.Regime, err))
	}
	return column.Predict(mach)
}

// Domain returns the sampled alpha and Mach ranges.
func (s *Surface) Domain() (alphaMin, alphaMax, machMin, machMax float64) {
	return s.alphas[0], s.alphas[len(s.alphas)-1], s.machs[0], s.machs[len(s.machs)-1]
}
