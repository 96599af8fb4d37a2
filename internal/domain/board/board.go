// Package board is the Connect Four engine the screens drive: the grid,
// a match between two players, and computer opponents.
package board

import (
	"errors"
	"fmt"
)

// Default grid size.
const (
	DefaultColumns = 7
	DefaultRows    = 6
	ConnectLength  = 4
)

var (
	ErrColumnFull  = errors.New("column is full")
	ErrOutOfBounds = errors.New("column out of bounds")
)

// Disc is the content of a cell.
type Disc uint8

const (
	Empty Disc = iota
	First
	Second
)

// Other returns the opponent's disc.
func (d Disc) Other() Disc {
	switch d {
	case First:
		return Second
	case Second:
		return First
	}
	return Empty
}

func (d Disc) String() string {
	switch d {
	case First:
		return "X"
	case Second:
		return "O"
	}
	return "."
}

// Board is a grid of discs. Row 0 is the bottom row.
type Board struct {
	cols, rows int
	cells      []Disc
	heights    []int
	count      int
}

// New creates an empty board. Non-positive sizes fall back to the defaults.
func New(cols, rows int) *Board {
	if cols <= 0 {
		cols = DefaultColumns
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Board{
		cols:    cols,
		rows:    rows,
		cells:   make([]Disc, cols*rows),
		heights: make([]int, cols),
	}
}

// Columns returns the number of columns
func (b *Board) Columns() int { return b.cols }

// Rows returns the number of rows
func (b *Board) Rows() int { return b.rows }

// At returns the disc at (col, row), or Empty outside the grid.
func (b *Board) At(col, row int) Disc {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return Empty
	}
	return b.cells[row*b.cols+col]
}

// Height returns the number of discs in a column.
func (b *Board) Height(col int) int {
	if col < 0 || col >= b.cols {
		return 0
	}
	return b.heights[col]
}

// CanDrop reports whether col accepts another disc.
func (b *Board) CanDrop(col int) bool {
	return col >= 0 && col < b.cols && b.heights[col] < b.rows
}

// Full reports whether no column accepts a disc.
func (b *Board) Full() bool {
	return b.count == b.cols*b.rows
}

// Drop puts d on top of col and returns the row it landed on.
func (b *Board) Drop(col int, d Disc) (int, error) {
	if col < 0 || col >= b.cols {
		return -1, fmt.Errorf("drop in %d: %w", col, ErrOutOfBounds)
	}
	row := b.heights[col]
	if row >= b.rows {
		return -1, fmt.Errorf("drop in %d: %w", col, ErrColumnFull)
	}
	b.cells[row*b.cols+col] = d
	b.heights[col]++
	b.count++
	return row, nil
}

// undo removes the top disc of col.
func (b *Board) undo(col int) {
	b.heights[col]--
	b.cells[b.heights[col]*b.cols+col] = Empty
	b.count--
}

// Connects reports whether the disc at (col, row) is part of a line of
// ConnectLength equal discs.
func (b *Board) Connects(col, row int) bool {
	d := b.At(col, row)
	if d == Empty {
		return false
	}
	for _, dir := range [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}} {
		n := 1 + b.run(col, row, dir[0], dir[1], d) + b.run(col, row, -dir[0], -dir[1], d)
		if n >= ConnectLength {
			return true
		}
	}
	return false
}

func (b *Board) run(col, row, dc, dr int, d Disc) int {
	n := 0
	for c, r := col+dc, row+dr; b.At(c, r) == d; c, r = c+dc, r+dr {
		n++
	}
	return n
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := &Board{cols: b.cols, rows: b.rows, count: b.count}
	c.cells = append([]Disc(nil), b.cells...)
	c.heights = append([]int(nil), b.heights...)
	return c
}

// String renders the grid top row first.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.cols+1)*b.rows)
	for r := b.rows - 1; r >= 0; r-- {
		for c := 0; c < b.cols; c++ {
			buf = append(buf, b.At(c, r).String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
