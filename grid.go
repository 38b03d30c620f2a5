package naca16

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var ErrShape = errors.New("grid shape mismatch")

// Grid is a fixed-shape row-major matrix of samples. The shape is validated
// when the grid is built and never changes afterwards.
type Grid struct {
	Rows int
	Cols int
	data *mat.Dense
}

func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	return &Grid{Rows: rows, Cols: cols, data: mat.NewDense(rows, cols, nil)}, nil
}

// Reshape copies series into a rows x cols grid, filling each row before
// moving to the next.
func Reshape(series []float64, rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || len(series) != rows*cols {
		return nil, fmt.Errorf("%w: %d values into %dx%d", ErrShape, len(series), rows, cols)
	}
	data := make([]float64, len(series))
	copy(data, series)
	return &Grid{Rows: rows, Cols: cols, data: mat.NewDense(rows, cols, data)}, nil
}

func (h *Grid) Dims() (int, int) {
	return h.Rows, h.Cols
}

func (h *Grid) Value(row, column int) float64 {
	return h.data.At(row, column)
}

func (h *Grid) SetValue(row, column int, v float64) {
	h.data.Set(row, column, v)
}

// Row returns a view of row i. Callers must not modify it.
func (h *Grid) Row(i int) []float64 {
	return h.data.RawRowView(i)
}

// Band returns a view of rows [from, from+rows).
func (h *Grid) Band(from, rows int) *Grid {
	return &Grid{
		Rows: rows,
		Cols: h.Cols,
		data: h.data.Slice(from, from+rows, 0, h.Cols).(*mat.Dense),
	}
}

func (h *Grid) Flatten() []float64 {
	ret := make([]float64, 0, h.Rows*h.Cols)
	for i := 0; i < h.Rows; i++ {
		ret = append(ret, h.data.RawRowView(i)...)
	}
	return ret
}

func (h *Grid) Range() (float64, float64) {
	return mat.Min(h.data), mat.Max(h.data)
}
