package universe

import (
	"bytes"
	"math/rand"
)

//Cell is the state of a single grid position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

//DefWidth - every universe is this many cells wide
const DefWidth = 64

const (
	liveGlyph = '◼'
	deadGlyph = '◻'
)

//Universe is a toroidal grid of cells evolving by the classic B3/S23 rule.
//The grid is stored as one flat buffer indexed by row*width+column.
//All operations run to completion synchronously, there is no reentrancy
//guarantee - concurrent callers must serialize on their side.
type Universe struct {
	width  int
	height int
	cells  []Cell
}

//New creates a Universe 64 cells wide and height cells tall.
//The starting pattern is deterministic: cell i is alive when i%2 == 0 or i%7 == 0.
//Zero or negative height gives an empty but well-formed universe.
func New(height int) *Universe {
	if height < 0 {
		height = 0
	}
	u := Universe{
		width:  DefWidth,
		height: height,
		cells:  make([]Cell, DefWidth*height),
	}
	for i := range u.cells {
		if i%2 == 0 || i%7 == 0 {
			u.cells[i] = Alive
		}
	}
	return &u
}

//Width returns the universe width in cells
func (u *Universe) Width() int {
	return u.width
}

//Height returns the universe height in cells
func (u *Universe) Height() int {
	return u.height
}

//Cells returns the flat cell buffer without copying, for hosts which render
//the grid directly. Tick and Randomize replace the buffer, so the returned
//slice must not be retained across them.
func (u *Universe) Cells() []Cell {
	return u.cells
}

//index maps a grid position to its offset in the flat buffer
func (u *Universe) index(row int, column int) int {
	return row*u.width + column
}

//liveNeighborCount counts the live cells among the 8 neighbors of (row, column).
//Both coordinates wrap, so edge and corner cells have exactly 8 neighbors too.
func (u *Universe) liveNeighborCount(row int, column int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			//skip my position
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr + u.height) % u.height
			c := (column + dc + u.width) % u.width
			count += int(u.cells[u.index(r, c)])
		}
	}
	return count
}

//Tick advances the universe by one generation.
//The next generation is computed into a fresh buffer from the current one
//only, then swapped in, so no cell ever observes a half-advanced grid.
func (u *Universe) Tick() {
	if len(u.cells) != u.width*u.height {
		panic("universe: cell buffer length does not match width*height")
	}
	next := make([]Cell, len(u.cells))
	for row := 0; row < u.height; row++ {
		for column := 0; column < u.width; column++ {
			i := u.index(row, column)
			n := u.liveNeighborCount(row, column)
			switch {
			case u.cells[i] == Alive && (n == 2 || n == 3):
				next[i] = Alive
			case u.cells[i] == Dead && n == 3:
				next[i] = Alive
			default:
				next[i] = Dead
			}
		}
	}
	u.cells = next
}

//Randomize replaces every cell with an independent coin flip, about half alive
func (u *Universe) Randomize() {
	next := make([]Cell, len(u.cells))
	for i := range next {
		if rand.Intn(2) == 0 {
			next[i] = Alive
		}
	}
	u.cells = next
}

//Render projects the grid as text, one row per line,
//◼ for a live cell and ◻ for a dead one
func (u *Universe) Render() string {
	var b bytes.Buffer
	for row := 0; row < u.height; row++ {
		for column := 0; column < u.width; column++ {
			if u.cells[u.index(row, column)] == Alive {
				b.WriteRune(liveGlyph)
			} else {
				b.WriteRune(deadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

//Set places a cell state at (row, column), positions outside the grid are ignored
func (u *Universe) Set(row int, column int, c Cell) {
	if row < 0 || row >= u.height || column < 0 || column >= u.width {
		return
	}
	u.cells[u.index(row, column)] = c
}

//Toggle inverses the cell state at (row, column), positions outside the grid are ignored
func (u *Universe) Toggle(row int, column int) {
	if row < 0 || row >= u.height || column < 0 || column >= u.width {
		return
	}
	u.cells[u.index(row, column)] ^= 1
}

//Clear kills every cell
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
}

//Population calculates the count of live cells
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cells {
		n += int(c)
	}
	return n
}
