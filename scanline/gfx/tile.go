package gfx

// Flags holds per-tile, per-object and per-sprite attribute bits.
type Flags uint16

const (
	FlagFlipX    Flags = 1 << 15
	FlagFlipY    Flags = 1 << 14
	FlagRotate   Flags = 1 << 13
	FlagPriority Flags = 1 << 12
	FlagMasked   Flags = 1 << 11
)

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Set returns f with mask set or cleared.
func (f Flags) Set(mask Flags, on bool) Flags {
	if on {
		return f | mask
	}
	return f &^ mask
}

// Tile is one cell of a tilemap. Index 0 is the empty tile.
type Tile struct {
	Index uint16
	Flags Flags
}

// Empty reports whether the cell draws nothing.
func (t Tile) Empty() bool {
	return t.Index == 0
}

// TileAttributes carries per-tile metadata of a tileset entry.
type TileAttributes struct {
	Type     uint8
	Priority bool
}
