// Package heatmap renders a rectangular numeric table as a color-mapped,
// value-annotated heatmap.
//
// Cells that cannot be coerced to a number are treated as missing and
// rendered blank. The color scale midpoint is pinned to the median of the
// per-column medians, so skewed data still centers visually on the median.
package heatmap

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Table is a rectangular grid of float64 cells with row and column labels.
// NaN marks a missing value.
type Table struct {
	cols  []string
	rows  []string
	cells [][]float64
}

// FromValues builds a Table from numeric cells. cells is row-major and must
// be rectangular with len(cells) == len(rows) and len(cells[i]) == len(cols).
func FromValues(cols, rows []string, cells [][]float64) (Table, error) {
	if len(cells) != len(rows) {
		return Table{}, errors.Errorf("heatmap: %d rows of cells for %d row labels", len(cells), len(rows))
	}
	for i := range cells {
		if len(cells[i]) != len(cols) {
			return Table{}, errors.Errorf("heatmap: row %d has %d cells for %d column labels", i, len(cells[i]), len(cols))
		}
	}
	return Table{cols: cols, rows: rows, cells: cells}, nil
}

// CoerceTable builds a Table from string cells, converting each cell to a
// number on a best-effort basis. Cells that do not parse become missing.
func CoerceTable(cols, rows []string, cells [][]string) (Table, error) {
	coerced := make([][]float64, len(cells))
	for i := range cells {
		coerced[i] = make([]float64, len(cells[i]))
		for j, cell := range cells[i] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				v = math.NaN()
			}
			coerced[i][j] = v
		}
	}
	return FromValues(cols, rows, coerced)
}

// Dims returns the number of columns and rows.
func (t Table) Dims() (cols, rows int) {
	return len(t.cols), len(t.rows)
}

// At returns the cell at (row, col); NaN if the cell is missing.
func (t Table) At(row, col int) float64 {
	return t.cells[row][col]
}

// IsMissing reports whether the cell at (row, col) has no numeric value.
func (t Table) IsMissing(row, col int) bool {
	return math.IsNaN(t.cells[row][col])
}

// Min returns the smallest numeric cell, or NaN if there is none.
func (t Table) Min() float64 {
	min := math.NaN()
	for i := range t.cells {
		for _, v := range t.cells[i] {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(min) || v < min {
				min = v
			}
		}
	}
	return min
}

// Max returns the largest numeric cell, or NaN if there is none.
func (t Table) Max() float64 {
	max := math.NaN()
	for i := range t.cells {
		for _, v := range t.cells[i] {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(max) || v > max {
				max = v
			}
		}
	}
	return max
}

// MedianOfMedians returns the median of the per-column medians. Missing
// cells are skipped; columns with no numeric cell do not contribute. NaN if
// the table has no numeric cell at all.
func (t Table) MedianOfMedians() float64 {
	medians := make([]float64, 0, len(t.cols))
	column := make([]float64, 0, len(t.rows))
	for j := range t.cols {
		column = column[:0]
		for i := range t.rows {
			if v := t.cells[i][j]; !math.IsNaN(v) {
				column = append(column, v)
			}
		}
		if m := median(column); !math.IsNaN(m) {
			medians = append(medians, m)
		}
	}
	return median(medians)
}

// median of a slice, averaging the two middle elements for even lengths.
// The slice is sorted in place. NaN for an empty slice.
func median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}
