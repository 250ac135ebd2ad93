// Package stage parses brick layouts.
//
// A stage file is plain text: exactly Rows lines, each holding exactly Cols
// space-separated brick codes. Code 0 is an empty cell; codes 1 through 8 place
// a brick whose visual variant is code-1. The first line is the top row of the
// arena.
package stage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Brick code bounds.
const (
	CodeEmpty = 0
	CodeMax   = 8
)

var (
	// ErrDimension reports a grid with the wrong number of rows or columns.
	ErrDimension = errors.New("wrong grid dimensions")

	// ErrToken reports a cell that is not a brick code in 0..8.
	ErrToken = errors.New("invalid brick code")
)

// ParseError describes where a stage failed to parse.
type ParseError struct {
	Line   int    // 1-based line, 0 when the whole grid is at fault
	Column int    // 1-based field index, 0 when the whole line is at fault
	Token  string // Offending token, if any
	Msg    string
	Err    error // ErrDimension or ErrToken
}

func (e *ParseError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("stage: %s", e.Msg)
	case e.Column == 0:
		return fmt.Sprintf("stage: line %d: %s", e.Line, e.Msg)
	default:
		return fmt.Sprintf("stage: line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Grid is a parsed stage: Cells[row][col] holds brick codes, row 0 on top.
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]int
}

// At returns the code at (row, col), or CodeEmpty outside the grid.
func (g *Grid) At(row, col int) int {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return CodeEmpty
	}
	return g.Cells[row][col]
}

// Count returns the number of cells holding a brick.
func (g *Grid) Count() int {
	n := 0
	for _, row := range g.Cells {
		for _, code := range row {
			if code != CodeEmpty {
				n++
			}
		}
	}
	return n
}

// Parse reads a rows x cols grid. Trailing blank lines are ignored; any other
// deviation from the expected shape is an ErrDimension.
func Parse(r io.Reader, rows, cols int) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("stage: read failed: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) != rows {
		return nil, &ParseError{
			Msg: fmt.Sprintf("got %d rows, want %d", len(lines), rows),
			Err: ErrDimension,
		}
	}

	grid := &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([][]int, rows),
	}

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != cols {
			return nil, &ParseError{
				Line: i + 1,
				Msg:  fmt.Sprintf("got %d columns, want %d", len(fields), cols),
				Err:  ErrDimension,
			}
		}

		grid.Cells[i] = make([]int, cols)
		for j, tok := range fields {
			code, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{
					Line: i + 1, Column: j + 1, Token: tok,
					Msg: fmt.Sprintf("%q is not an integer", tok),
					Err: ErrToken,
				}
			}
			if code < CodeEmpty || code > CodeMax {
				return nil, &ParseError{
					Line: i + 1, Column: j + 1, Token: tok,
					Msg: fmt.Sprintf("code %d out of range %d..%d", code, CodeEmpty, CodeMax),
					Err: ErrToken,
				}
			}
			grid.Cells[i][j] = code
		}
	}

	return grid, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, rows, cols int) (*Grid, error) {
	return Parse(strings.NewReader(s), rows, cols)
}

// Load reads and parses a stage file.
func Load(path string, rows, cols int) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stage: cannot read %s: %w", path, err)
	}
	grid, err := Parse(bytes.NewReader(data), rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

// Placement is a brick derived from a grid cell, centred at (X, Y) in arena units.
type Placement struct {
	Row, Col int
	X, Y     float64
	Variant  int
}

// Layout turns a grid into brick placements. Columns run left to right from
// x = 0 and rows run downward from the top of an arena of height arenaH.
func Layout(g *Grid, arenaH, brickW, brickH float64) []Placement {
	placements := make([]Placement, 0, g.Count())
	y := arenaH - brickH*0.5
	for row := range g.Rows {
		x := brickW * 0.5
		for col := range g.Cols {
			if code := g.Cells[row][col]; code > CodeEmpty && code <= CodeMax {
				placements = append(placements, Placement{
					Row:     row,
					Col:     col,
					X:       x,
					Y:       y,
					Variant: code - 1,
				})
			}
			x += brickW
		}
		y -= brickH
	}
	return placements
}
