package gfx

import "fmt"

// Tilemap is a grid of tile references drawn with an associated tileset.
type Tilemap struct {
	rows, cols int
	tiles      []Tile
	bgColor    uint32
	tileset    *Tileset
}

// NewTilemap creates a tilemap. tiles may be nil for an empty map,
// otherwise it must hold rows*cols cells in row-major order. bgColor is a
// packed ARGB suggestion for the engine background; 0 means none.
func NewTilemap(rows, cols int, tiles []Tile, bgColor uint32, tileset *Tileset) (*Tilemap, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: tilemap %dx%d", ErrSize, cols, rows)
	}
	if tiles == nil {
		tiles = make([]Tile, rows*cols)
	}
	if len(tiles) != rows*cols {
		return nil, fmt.Errorf("%w: %d tiles for a %dx%d tilemap", ErrSize, len(tiles), cols, rows)
	}

	return &Tilemap{
		rows:    rows,
		cols:    cols,
		tiles:   tiles,
		bgColor: bgColor,
		tileset: tileset,
	}, nil
}

func (tm *Tilemap) Rows() int              { return tm.rows }
func (tm *Tilemap) Cols() int              { return tm.cols }
func (tm *Tilemap) BGColor() uint32        { return tm.bgColor }
func (tm *Tilemap) Tileset() *Tileset      { return tm.tileset }
func (tm *Tilemap) SetTileset(ts *Tileset) { tm.tileset = ts }

// Tile returns the cell at (row, col). Out of range cells read as empty.
func (tm *Tilemap) Tile(row, col int) Tile {
	if row < 0 || row >= tm.rows || col < 0 || col >= tm.cols {
		return Tile{}
	}
	return tm.tiles[row*tm.cols+col]
}

// SetTile stores a cell.
func (tm *Tilemap) SetTile(row, col int, tile Tile) error {
	if row < 0 || row >= tm.rows || col < 0 || col >= tm.cols {
		return fmt.Errorf("%w: cell %d,%d of %dx%d", ErrIndex, col, row, tm.cols, tm.rows)
	}
	tm.tiles[row*tm.cols+col] = tile
	return nil
}
