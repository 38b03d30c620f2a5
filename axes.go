package naca16

import (
	vec2d "github.com/flywave/go3d/float64/vec2"
)

type Regime string

const (
	Subsonic   Regime = "subsonic"
	Supersonic Regime = "supersonic"
)

// Table geometry of the databank. Each table holds Cl in the first
// ThicknessCount rows and Cd in the next ThicknessCount rows, one column
// per design lift sample.
const (
	TableCount      = 312
	TableRows       = 2 * ThicknessCount
	TableCols       = DesignLiftCount
	DesignLiftCount = 9
	ThicknessCount  = 10

	AlphaCount           = 22
	MachCount            = 18
	SubsonicMachCount    = 12
	SupersonicMachCount  = MachCount - SubsonicMachCount
	SupersonicAlphaCount = 8

	SubsonicTableCount   = SubsonicMachCount * AlphaCount
	SupersonicTableCount = SupersonicMachCount * SupersonicAlphaCount

	RegimeBoundaryMach = 1.0
)

var (
	DesignLiftSamples = [DesignLiftCount]float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	ThicknessSamples  = [ThicknessCount]float64{0.03, 0.06, 0.09, 0.12, 0.15, 0.18, 0.21, 0.24, 0.27, 0.3}

	// Degrees.
	AlphaSamples = [AlphaCount]float64{-6, -4, -2, 0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34, 36}
	MachSamples  = [MachCount]float64{.3, .4123, .5, .5745, .6403, .7, .755, .8062, .8544, .9, .9434, .9849, 1.025, 1.063, 1.1, 1.136, 1.368, 1.6}
)

// DesignPoint is a (design lift coefficient, thickness ratio) pair.
type DesignPoint = vec2d.T

func NewDesignPoint(designLift, thicknessRatio float64) DesignPoint {
	return DesignPoint{designLift, thicknessRatio}
}

func DesignEnvelope() vec2d.Rect {
	return vec2d.Rect{
		Min: vec2d.T{DesignLiftSamples[0], ThicknessSamples[0]},
		Max: vec2d.T{DesignLiftSamples[DesignLiftCount-1], ThicknessSamples[ThicknessCount-1]},
	}
}

// RegimeOf returns the flow regime used for mach. The boundary itself is
// subsonic.
func RegimeOf(mach float64) Regime {
	if mach <= RegimeBoundaryMach {
		return Subsonic
	}
	return Supersonic
}

// TableIndex returns the databank table holding the given flight sample.
func TableIndex(regime Regime, machRow, alphaCol int) int {
	if regime == Subsonic {
		return machRow*AlphaCount + alphaCol
	}
	return SubsonicTableCount + machRow*SupersonicAlphaCount + alphaCol
}

func regimeAxes(regime Regime) (alphas, machs []float64) {
	if regime == Subsonic {
		return AlphaSamples[:], MachSamples[:SubsonicMachCount]
	}
	return AlphaSamples[:SupersonicAlphaCount], MachSamples[SubsonicMachCount:]
}
