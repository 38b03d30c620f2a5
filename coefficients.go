package naca16

import (
	"errors"
	"fmt"
	"time"

	"github.com/sgostarter/i/l"
)

var ErrNoDatabank = errors.New("no databank loaded")

// InterpolantSet holds the four (alpha, Mach) surfaces built for one design
// point.
type InterpolantSet struct {
	// Point is the design point after clamping.
	Point    DesignPoint
	Warnings []ClampWarning

	ClSubsonic   *Surface
	ClSupersonic *Surface
	CdSubsonic   *Surface
	CdSupersonic *Surface
}

// Surfaces returns the Cl and Cd surfaces of a regime.
func (s *InterpolantSet) Surfaces(regime Regime) (cl, cd *Surface) {
	if regime == Subsonic {
		return s.ClSubsonic, s.CdSubsonic
	}
	return s.ClSupersonic, s.CdSupersonic
}

// Evaluate returns Cl and Cd at mach and alpha (degrees), using the
// subsonic surfaces up to and including Mach 1.
func (s *InterpolantSet) Evaluate(mach, alpha float64) (cl, cd float64) {
	clSurface, cdSurface := s.Surfaces(RegimeOf(mach))
	return clSurface.Evaluate(alpha, mach), cdSurface.Evaluate(alpha, mach)
}

func (s *InterpolantSet) withWarnings(warnings []ClampWarning) *InterpolantSet {
	ret := *s
	ret.Warnings = warnings
	return &ret
}

type Options struct {
	Logger  l.Wrapper
	Surface *SurfaceKind
	// CacheTTL enables memoization of interpolant sets by design point.
	// Zero or negative keeps entries forever.
	CacheTTL *time.Duration
}

// CoefficientInterpolator builds interpolant sets from a loaded databank.
// It is safe for concurrent use.
type CoefficientInterpolator struct {
	databank *Databank
	kind     SurfaceKind
	cache    *InterpolantCache
	logger   l.Wrapper
}

func NewCoefficientInterpolator(db *Databank, opts Options) (*CoefficientInterpolator, error) {
	logger := opts.Logger
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	logger = logger.WithFields(l.StringField(l.ClsKey, "CoefficientInterpolator"))

	if db == nil || db.Len() != TableCount {
		return nil, ErrNoDatabank
	}

	inter := &CoefficientInterpolator{
		databank: db,
		kind:     CUBIC,
		logger:   logger,
	}

	if opts.Surface != nil {
		if _, err := newFitter(*opts.Surface); err != nil {
			return nil, err
		}
		inter.kind = *opts.Surface
	}

	if opts.CacheTTL != nil {
		inter.cache = NewInterpolantCache(*opts.CacheTTL)
	}

	return inter, nil
}

func (p *CoefficientInterpolator) Kind() SurfaceKind {
	return p.kind
}

func (p *CoefficientInterpolator) warn(warnings []ClampWarning) {
	for _, w := range warnings {
		p.logger.WithFields(
			l.StringField("parameter", w.Symbol),
			l.StringField("requested", fmt.Sprintf("%g", w.Requested)),
			l.StringField("clamped", fmt.Sprintf("%g", w.Clamped)),
		).Warn(w.String())
	}
}

// BuildInterpolants returns the Cl and Cd surfaces for the given design lift
// coefficient and thickness ratio. Values outside the tabulated range are
// clamped to it; each clamp is logged and listed in the result's Warnings.
func (p *CoefficientInterpolator) BuildInterpolants(designLift, thicknessRatio float64) (*InterpolantSet, error) {
	point, warnings, err := ClampDesignPoint(NewDesignPoint(designLift, thicknessRatio))
	if err != nil {
		return nil, err
	}
	p.warn(warnings)

	if p.cache != nil {
		if set, ok := p.cache.Get(point, p.kind); ok {
			return set.withWarnings(warnings), nil
		}
	}

	set, err := p.build(point)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		p.cache.Set(point, p.kind, set)
	}
	return set.withWarnings(warnings), nil
}

func (p *CoefficientInterpolator) build(point DesignPoint) (*InterpolantSet, error) {
	reduced, err := Reduce(p.databank, point)
	if err != nil {
		return nil, err
	}

	set := &InterpolantSet{Point: point}

	subAlphas, subMachs := regimeAxes(Subsonic)
	supAlphas, supMachs := regimeAxes(Supersonic)

	if set.ClSubsonic, err = NewSurface(p.kind, Subsonic, subAlphas, subMachs, reduced.SubsonicCl); err != nil {
		return nil, fmt.Errorf("cl: %w", err)
	}
	if set.CdSubsonic, err = NewSurface(p.kind, Subsonic, subAlphas, subMachs, reduced.SubsonicCd); err != nil {
		return nil, fmt.Errorf("cd: %w", err)
	}
	if set.ClSupersonic, err = NewSurface(p.kind, Supersonic, supAlphas, supMachs, reduced.SupersonicCl); err != nil {
		return nil, fmt.Errorf("cl: %w", err)
	}
	if set.CdSupersonic, err = NewSurface(p.kind, Supersonic, supAlphas, supMachs, reduced.SupersonicCd); err != nil {
		return nil, fmt.Errorf("cd: %w", err)
	}
	return set, nil
}

// EvaluateCoefficients builds the interpolants for the design point and
// evaluates Cl and Cd at mach and alpha (degrees). Without a cache every call
// rebuilds all four surfaces from the 312 tables, so it suits one-off queries;
// hold on to an InterpolantSet for repeated evaluation.
func (p *CoefficientInterpolator) EvaluateCoefficients(designLift, thicknessRatio, mach, alpha float64) (cl, cd float64, err error) {
	set, err := p.BuildInterpolants(designLift, thicknessRatio)
	if err != nil {
		return 0, 0, err
	}
	cl, cd = set.Evaluate(mach, alpha)
	return cl, cd, nil
}
