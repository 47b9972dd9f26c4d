package gfx

import "fmt"

// Tileset is an indexed collection of equally sized 8-bit tiles.
//
// Entry 0 is reserved as the blank tile, so a tileset created for n tiles
// holds entries 1..n, matching the tilemap convention where index 0 is
// empty. Pixel data is stored tile after tile, row-major, with a pitch of
// Width bytes.
type Tileset struct {
	width, height int
	numTiles      int
	palette       *Palette
	pixels        []uint8
	colorKey      []bool
	attributes    []TileAttributes
	remap         []uint16
}

// NewTileset allocates a tileset of numTiles blank tiles of w×h pixels.
func NewTileset(numTiles, w, h int, palette *Palette) (*Tileset, error) {
	if numTiles < 1 || w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: tileset %d tiles of %dx%d", ErrSize, numTiles, w, h)
	}

	entries := numTiles + 1
	ts := &Tileset{
		width:      w,
		height:     h,
		numTiles:   numTiles,
		palette:    palette,
		pixels:     make([]uint8, entries*w*h),
		colorKey:   make([]bool, entries*h),
		attributes: make([]TileAttributes, entries),
		remap:      make([]uint16, entries),
	}
	for i := range ts.remap {
		ts.remap[i] = uint16(i)
	}
	for i := range ts.colorKey {
		ts.colorKey[i] = true
	}
	return ts, nil
}

// Width returns the width of a single tile.
func (ts *Tileset) Width() int { return ts.width }

// Height returns the height of a single tile.
func (ts *Tileset) Height() int { return ts.height }

// NumTiles returns the number of usable entries, excluding the blank one.
func (ts *Tileset) NumTiles() int { return ts.numTiles }

// Palette returns the tileset's default palette, which may be nil.
func (ts *Tileset) Palette() *Palette { return ts.palette }

// Pixels exposes the raw pixel storage of all tiles.
func (ts *Tileset) Pixels() []uint8 { return ts.pixels }

// SetPixels copies one tile worth of pixels from data, whose rows are
// pitch bytes apart, into entry.
func (ts *Tileset) SetPixels(entry int, data []uint8, pitch int) error {
	if entry < 1 || entry > ts.numTiles {
		return fmt.Errorf("%w: tile %d of %d", ErrIndex, entry, ts.numTiles)
	}
	if pitch < ts.width || len(data) < (ts.height-1)*pitch+ts.width {
		return fmt.Errorf("%w: tile data of %d bytes with pitch %d", ErrSize, len(data), pitch)
	}

	for y := 0; y < ts.height; y++ {
		row := data[y*pitch : y*pitch+ts.width]
		offset := ts.Offset(entry, 0, y)
		copy(ts.pixels[offset:offset+ts.width], row)

		keyed := false
		for _, idx := range row {
			if idx == 0 {
				keyed = true
				break
			}
		}
		ts.colorKey[entry*ts.height+y] = keyed
	}
	return nil
}

// Offset returns the index into Pixels of pixel (x, y) of entry.
func (ts *Tileset) Offset(entry, x, y int) int {
	return (entry*ts.height+y)*ts.width + x
}

// HasColorKey reports whether row y of entry contains transparent pixels.
// Rows without them can be drawn with the faster non-keyed blitters.
func (ts *Tileset) HasColorKey(entry, y int) bool {
	return ts.colorKey[entry*ts.height+y]
}

// Resolve maps a tilemap index to the entry currently displayed for it.
// An external animation scheduler retargets indices through SetRemap.
func (ts *Tileset) Resolve(index uint16) int {
	if int(index) >= len(ts.remap) {
		return 0
	}
	return int(ts.remap[index])
}

// SetRemap makes tilemap index display entry instead of itself.
func (ts *Tileset) SetRemap(index, entry int) error {
	if index < 0 || index > ts.numTiles || entry < 0 || entry > ts.numTiles {
		return fmt.Errorf("%w: remap %d -> %d", ErrIndex, index, entry)
	}
	ts.remap[index] = uint16(entry)
	return nil
}

// Attributes returns the metadata of entry.
func (ts *Tileset) Attributes(entry int) TileAttributes {
	if entry < 0 || entry >= len(ts.attributes) {
		return TileAttributes{}
	}
	return ts.attributes[entry]
}

// SetAttributes stores the metadata of entry.
func (ts *Tileset) SetAttributes(entry int, attr TileAttributes) error {
	if entry < 1 || entry > ts.numTiles {
		return fmt.Errorf("%w: tile %d of %d", ErrIndex, entry, ts.numTiles)
	}
	ts.attributes[entry] = attr
	return nil
}
