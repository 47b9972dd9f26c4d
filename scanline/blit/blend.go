package blit

import (
	"sync"

	"github.com/valerio/go-scanline/scanline/display"
)

// BlendMode selects the law used to combine a source pixel with the
// destination pixel already in the framebuffer.
type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendMix25
	BlendMix50
	BlendMix75
	BlendAdd
	BlendSub
	BlendMod
	BlendCustom

	// BlendMix is the plain 50% mix.
	BlendMix = BlendMix50
)

var blendModeNames = map[BlendMode]string{
	BlendNone:   "none",
	BlendMix25:  "mix25",
	BlendMix50:  "mix50",
	BlendMix75:  "mix75",
	BlendAdd:    "add",
	BlendSub:    "sub",
	BlendMod:    "mod",
	BlendCustom: "custom",
}

func (m BlendMode) String() string {
	if name, ok := blendModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Table is a per-channel blend lookup indexed by (src<<8)+dst.
type Table [256 * 256]uint8

// At returns the blended value for one channel.
func (t *Table) At(src, dst uint8) uint8 {
	return t[int(src)<<8|int(dst)]
}

// BlendFunc computes one blended channel.
type BlendFunc func(src, dst uint8) uint8

var blendLaws = map[BlendMode]BlendFunc{
	BlendMix25: func(a, b uint8) uint8 { return uint8((int(a) + int(b) + int(b)) / 3) },
	BlendMix50: func(a, b uint8) uint8 { return uint8((int(a) + int(b)) >> 1) },
	BlendMix75: func(a, b uint8) uint8 { return uint8((int(a) + int(a) + int(b)) / 3) },
	BlendAdd: func(a, b uint8) uint8 {
		return uint8(min(int(a)+int(b), 255))
	},
	BlendSub: func(a, b uint8) uint8 {
		return uint8(max(int(b)-int(a), 0))
	},
	BlendMod: func(a, b uint8) uint8 { return uint8(int(a) * int(b) / 255) },
}

var (
	tablesOnce sync.Once
	tables     map[BlendMode]*Table
)

func buildTables() {
	tables = make(map[BlendMode]*Table, len(blendLaws))
	for mode, fn := range blendLaws {
		tables[mode] = NewCustomTable(fn)
	}
}

// Blend returns the shared lookup table for a built-in mode, or nil for
// BlendNone, BlendCustom and unknown modes. Tables are built on first use
// and never mutated afterwards.
func Blend(mode BlendMode) *Table {
	tablesOnce.Do(buildTables)
	return tables[mode]
}

// NewCustomTable evaluates fn over every (src, dst) pair.
func NewCustomTable(fn BlendFunc) *Table {
	t := new(Table)
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			t[a<<8|b] = fn(uint8(a), uint8(b))
		}
	}
	return t
}

// Pixel blends src over dst channel by channel. Alpha is forced opaque.
func (t *Table) Pixel(src, dst uint32) uint32 {
	sr, sg, sb := display.UnpackRGB(src)
	dr, dg, db := display.UnpackRGB(dst)
	return display.PackRGB(t.At(sr, dr), t.At(sg, dg), t.At(sb, db))
}
