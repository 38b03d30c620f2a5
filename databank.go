package naca16

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
)

var ErrMalformedDatabank = errors.New("malformed databank")

// Databank holds the 312 tables of the NACA 16-series section data. It is
// immutable once loaded and may be shared between goroutines.
type Databank struct {
	tables []*Grid
}

func (d *Databank) Len() int {
	return len(d.tables)
}

// Table returns table i (0-based). Rows 0-9 are Cl and rows 10-19 are Cd
// over the thickness samples; columns are the design lift samples.
func (d *Databank) Table(i int) *Grid {
	return d.tables[i]
}

func LoadDatabankFile(path string) (*Databank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	db, err := LoadDatabanks(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}

type blockReader struct {
	tables  []*Grid
	current *Grid
	row     int
	header  int
}

func malformed(line int, format string, args ...interface{}) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedDatabank, line, fmt.Sprintf(format, args...))
}

func (b *blockReader) flush(line int) error {
	if b.current == nil {
		return nil
	}
	if b.row != TableRows {
		return malformed(line, "table %d has %d rows, want %d", b.header, b.row, TableRows)
	}
	b.tables = append(b.tables, b.current)
	b.current = nil
	return nil
}

func (b *blockReader) open(line int, token string) error {
	// cast reads a leading zero as an octal prefix.
	digits := strings.TrimLeft(token, "0")
	if digits == "" {
		digits = "0"
	}
	n, err := cast.ToIntE(digits)
	if err != nil {
		return malformed(line, "bad table header %q", token)
	}
	if n != b.header+1 {
		return malformed(line, "table %d follows table %d", n, b.header)
	}
	if err := b.flush(line); err != nil {
		return err
	}
	grid, err := NewGrid(TableRows, TableCols)
	if err != nil {
		return err
	}
	b.current = grid
	b.header = n
	b.row = 0
	return nil
}

func (b *blockReader) add(line int, fields []string) error {
	if b.current == nil {
		return malformed(line, "data row before first table header")
	}
	if b.row >= TableRows {
		return malformed(line, "table %d has more than %d rows", b.header, TableRows)
	}
	if len(fields) < TableCols {
		return malformed(line, "%d fields, want at least %d", len(fields), TableCols)
	}
	for col := 0; col < TableCols; col++ {
		v, err := cast.ToFloat64E(fields[col])
		if err != nil {
			return malformed(line, "field %d: %q is not a number", col+1, fields[col])
		}
		if !isFinite(v) {
			return malformed(line, "field %d: %q is not finite", col+1, fields[col])
		}
		b.current.SetValue(b.row, col, v)
	}
	b.row++
	return nil
}

// LoadDatabanks parses the tabulated databank. The source is a sequence of
// blocks, each a single-token header carrying the table number (1..312)
// followed by 20 rows of at least 9 numbers; fields past the ninth are
// ignored. Any deviation is reported as ErrMalformedDatabank.
func LoadDatabanks(r io.Reader) (*Databank, error) {
	scanner := bufio.NewScanner(r)
	b := &blockReader{tables: make([]*Grid, 0, TableCount)}

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		switch len(fields) {
		case 0:
			continue
		case 1:
			if err := b.open(line, fields[0]); err != nil {
				return nil, err
			}
		default:
			if err := b.add(line, fields); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := b.flush(line); err != nil {
		return nil, err
	}

	if len(b.tables) != TableCount {
		return nil, malformed(line, "%d tables, want %d", len(b.tables), TableCount)
	}
	return &Databank{tables: b.tables}, nil
}
