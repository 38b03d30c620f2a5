package naca16

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flightDesign holds clFlight/cdFlight in every table, independent of the
// design parameters.
func flightDesign(k, r, c int) float64 {
	_, alpha, mach := flightSample(k)
	if r < ThicknessCount {
		return clFlight(alpha, mach)
	}
	return cdFlight(alpha, mach)
}

// regimeDesign is constant within each regime.
func regimeDesign(k, r, c int) float64 {
	regime, _, _ := flightSample(k)
	switch {
	case regime == Subsonic && r < ThicknessCount:
		return 0.5
	case regime == Subsonic:
		return 0.01
	case r < ThicknessCount:
		return 1.5
	default:
		return 0.05
	}
}

// mixedDesign depends on every axis.
func mixedDesign(k, r, c int) float64 {
	_, alpha, mach := flightSample(k)
	cld := DesignLiftSamples[c]
	if r < ThicknessCount {
		tc := ThicknessSamples[r]
		return clFlight(alpha, mach) + 2*cld - tc*alpha/10
	}
	tc := ThicknessSamples[r-ThicknessCount]
	return cdFlight(alpha, mach) + 0.1*cld*cld + tc*tc
}

func newTestInterpolator(t *testing.T, f tableFunc, opts Options) *CoefficientInterpolator {
	t.Helper()
	inter, err := NewCoefficientInterpolator(mustDatabank(t, f), opts)
	require.NoError(t, err)
	return inter
}

func TestNewCoefficientInterpolator(t *testing.T) {
	a := assert.New(t)

	_, err := NewCoefficientInterpolator(nil, Options{})
	a.True(errors.Is(err, ErrNoDatabank))

	db := mustDatabank(t, regimeDesign)
	bad := SurfaceKind("spline")
	_, err = NewCoefficientInterpolator(db, Options{Surface: &bad})
	a.True(errors.Is(err, ErrUnknownSurfaceKind))

	inter, err := NewCoefficientInterpolator(db, Options{Logger: l.NewNopLoggerWrapper()})
	a.NoError(err)
	a.Equal(CUBIC, inter.Kind())
}

func TestBuildInterpolantsReproducesTables(t *testing.T) {
	a := assert.New(t)
	inter := newTestInterpolator(t, mixedDesign, Options{})

	col, row := 2, 5
	set, err := inter.BuildInterpolants(DesignLiftSamples[col], ThicknessSamples[row])
	require.NoError(t, err)
	a.Empty(set.Warnings)

	for _, regime := range []Regime{Subsonic, Supersonic} {
		cl, cd := set.Surfaces(regime)
		alphas, machs := regimeAxes(regime)
		for i, mach := range machs {
			for j, alpha := range alphas {
				table := inter.databank.Table(TableIndex(regime, i, j))
				a.InDelta(table.Value(row, col), cl.Evaluate(alpha, mach), 1e-9)
				a.InDelta(table.Value(row+ThicknessCount, col), cd.Evaluate(alpha, mach), 1e-9)
			}
		}
	}
}

func TestBuildInterpolantsBetweenSamples(t *testing.T) {
	a := assert.New(t)
	inter := newTestInterpolator(t, flightDesign, Options{})

	set, err := inter.BuildInterpolants(0.33, 0.14)
	require.NoError(t, err)

	cl, cd := set.Evaluate(0.55, 5)
	a.InDelta(clFlight(5, 0.55), cl, 1e-9)
	a.InDelta(cdFlight(5, 0.55), cd, 1e-9)

	cl, cd = set.Evaluate(1.2, 3)
	a.InDelta(clFlight(3, 1.2), cl, 1e-9)
	a.InDelta(cdFlight(3, 1.2), cd, 1e-9)
}

func TestRegimeBoundary(t *testing.T) {
	a := assert.New(t)
	inter := newTestInterpolator(t, regimeDesign, Options{})

	a.Equal(Subsonic, RegimeOf(1.0))
	a.Equal(Supersonic, RegimeOf(math.Nextafter(1, 2)))

	cl, cd, err := inter.EvaluateCoefficients(0.2, 0.2, 1.0, 4)
	require.NoError(t, err)
	a.InDelta(0.5, cl, 1e-12)
	a.InDelta(0.01, cd, 1e-12)

	cl, cd, err = inter.EvaluateCoefficients(0.2, 0.2, 1.0+1e-9, 4)
	require.NoError(t, err)
	a.InDelta(1.5, cl, 1e-12)
	a.InDelta(0.05, cd, 1e-12)
}

func TestClampIdempotence(t *testing.T) {
	a := assert.New(t)
	inter := newTestInterpolator(t, mixedDesign, Options{})

	below, err := inter.BuildInterpolants(-0.4, 0.15)
	require.NoError(t, err)
	atMin, err := inter.BuildInterpolants(0.0, 0.15)
	require.NoError(t, err)

	a.Len(below.Warnings, 1)
	a.Empty(atMin.Warnings)
	a.Equal(atMin.Point, below.Point)
	for _, q := range [][2]float64{{0.3, 4}, {0.7, 20}, {1.1, 6}, {1.5, -2}} {
		clB, cdB := below.Evaluate(q[0], q[1])
		clM, cdM := atMin.Evaluate(q[0], q[1])
		a.Equal(clM, clB)
		a.Equal(cdM, cdB)
	}
}

func TestClampAboveMaximum(t *testing.T) {
	a := assert.New(t)
	inter := newTestInterpolator(t, mixedDesign, Options{Logger: l.NewConsoleLoggerWrapper()})

	set, err := inter.BuildInterpolants(1.5, 0.2)
	require.NoError(t, err)
	if a.Len(set.Warnings, 1) {
		a.Equal(0.8, set.Warnings[0].Clamped)
	}
	a.Equal(NewDesignPoint(0.8, 0.2), set.Point)

	cl, cd, err := inter.EvaluateCoefficients(1.5, 0.2, 0.3, 4)
	require.NoError(t, err)
	clMax, cdMax, err := inter.EvaluateCoefficients(0.8, 0.2, 0.3, 4)
	require.NoError(t, err)
	a.Equal(clMax, cl)
	a.Equal(cdMax, cd)
	a.False(math.IsNaN(cl))
	a.False(math.IsNaN(cd))
}

func TestEvaluateCoefficientsDeterministic(t *testing.T) {
	a := assert.New(t)
	inter := newTestInterpolator(t, mixedDesign, Options{})

	cl1, cd1, err := inter.EvaluateCoefficients(0.2, 0.2, 0.3, 4)
	require.NoError(t, err)
	cl2, cd2, err := inter.EvaluateCoefficients(0.2, 0.2, 0.3, 4)
	require.NoError(t, err)

	a.Equal(math.Float64bits(cl1), math.Float64bits(cl2))
	a.Equal(math.Float64bits(cd1), math.Float64bits(cd2))
}

func TestEvaluateCoefficientsInvalid(t *testing.T) {
	inter := newTestInterpolator(t, regimeDesign, Options{})

	_, _, err := inter.EvaluateCoefficients(math.NaN(), 0.2, 0.3, 4)
	assert.True(t, errors.Is(err, ErrInvalidDesignPoint))
}

func TestBuildInterpolantsConcurrent(t *testing.T) {
	a := assert.New(t)
	ttl := time.Minute
	inter := newTestInterpolator(t, mixedDesign, Options{CacheTTL: &ttl})

	want, _, err := inter.EvaluateCoefficients(0.45, 0.1, 0.6, 8)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _, _ = inter.EvaluateCoefficients(0.45, 0.1, 0.6, 8)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		a.Equal(want, got)
	}
}
