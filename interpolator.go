package naca16

import (
	"errors"
	"fmt"
)

var ErrInvalidDesignPoint = errors.New("design point is not finite")

type Interpolator interface {
	Interpolate(southWest, southEast, northWest, northEast, x, y float64) float64
}

type BilinearInterpolator struct{}

func Lerp(value1, value2, amount float64) float64 { return value1 + (value2-value1)*amount }

// Interpolate blends the four corners of a cell. x runs west to east and y
// runs south to north, both in [0, 1].
func (i *BilinearInterpolator) Interpolate(southWest, southEast, northWest, northEast, x, y float64) float64 {
	return Lerp(Lerp(southWest, southEast, x), Lerp(northWest, northEast, x), y)
}

// ClampWarning reports a design parameter that was moved onto the table
// boundary.
type ClampWarning struct {
	Parameter string
	Symbol    string
	Requested float64
	Clamped   float64
}

func (w ClampWarning) String() string {
	return fmt.Sprintf("%s in (%1.2f) outside of table range - setting to %s = %1.2f",
		w.Parameter, w.Requested, w.Symbol, w.Clamped)
}

// ClampDesignPoint moves p inside the design envelope. Each axis is checked
// against its own bounds and every adjustment yields one warning.
func ClampDesignPoint(p DesignPoint) (DesignPoint, []ClampWarning, error) {
	if !isFinite(p[0]) || !isFinite(p[1]) {
		return p, nil, fmt.Errorf("%w: cld=%v tc=%v", ErrInvalidDesignPoint, p[0], p[1])
	}

	env := DesignEnvelope()
	if env.ContainsPoint(&p) {
		return p, nil, nil
	}

	clamped := p.Clamped(&env.Min, &env.Max)
	var warnings []ClampWarning
	if clamped[0] != p[0] {
		warnings = append(warnings, ClampWarning{
			Parameter: "Design lift coefficient",
			Symbol:    "Cld",
			Requested: p[0],
			Clamped:   clamped[0],
		})
	}
	if clamped[1] != p[1] {
		warnings = append(warnings, ClampWarning{
			Parameter: "Thickness ratio",
			Symbol:    "t/c",
			Requested: p[1],
			Clamped:   clamped[1],
		})
	}
	return clamped, warnings, nil
}

type designStencil struct {
	col, row int
	x, y     float64
}

func newDesignStencil(p DesignPoint) designStencil {
	col, x := locate(DesignLiftSamples[:], p[0])
	row, y := locate(ThicknessSamples[:], p[1])
	return designStencil{col: col, row: row, x: x, y: y}
}

func (s designStencil) apply(interpolator Interpolator, band *Grid) float64 {
	return interpolator.Interpolate(
		band.Value(s.row, s.col), band.Value(s.row, s.col+1),
		band.Value(s.row+1, s.col), band.Value(s.row+1, s.col+1),
		s.x, s.y)
}

// ReducedTables is the databank collapsed at one design point: one Cl and
// one Cd value per table, and the same values laid out per regime with Mach
// along the rows and alpha along the columns.
type ReducedTables struct {
	Point DesignPoint

	Cl []float64
	Cd []float64

	SubsonicCl   *Grid
	SubsonicCd   *Grid
	SupersonicCl *Grid
	SupersonicCd *Grid
}

// Reduce interpolates every table at p, which must already lie inside the
// design envelope.
func Reduce(db *Databank, p DesignPoint) (*ReducedTables, error) {
	if db == nil || db.Len() != TableCount {
		return nil, ErrNoDatabank
	}

	stencil := newDesignStencil(p)
	interpolator := &BilinearInterpolator{}

	ret := &ReducedTables{
		Point: p,
		Cl:    make([]float64, TableCount),
		Cd:    make([]float64, TableCount),
	}
	for i := 0; i < TableCount; i++ {
		table := db.Table(i)
		ret.Cl[i] = stencil.apply(interpolator, table.Band(0, ThicknessCount))
		ret.Cd[i] = stencil.apply(interpolator, table.Band(ThicknessCount, ThicknessCount))
	}

	var err error
	if ret.SubsonicCl, err = Reshape(ret.Cl[:SubsonicTableCount], SubsonicMachCount, AlphaCount); err != nil {
		return nil, err
	}
	if ret.SubsonicCd, err = Reshape(ret.Cd[:SubsonicTableCount], SubsonicMachCount, AlphaCount); err != nil {
		return nil, err
	}
	if ret.SupersonicCl, err = Reshape(ret.Cl[SubsonicTableCount:], SupersonicMachCount, SupersonicAlphaCount); err != nil {
		return nil, err
	}
	if ret.SupersonicCd, err = Reshape(ret.Cd[SubsonicTableCount:], SupersonicMachCount, SupersonicAlphaCount); err != nil {
		return nil, err
	}
	return ret, nil
}
