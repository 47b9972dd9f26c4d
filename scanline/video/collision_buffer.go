package video

// noSprite marks a collision cell no sprite has written on this scanline.
const noSprite = -1

// CollisionBuffer tracks, per framebuffer column, the last sprite that
// wrote an opaque pixel on the current scanline.
//
// Ownership is last-writer-wins, but a write over a cell owned by a
// different sprite reports that sprite so both can be flagged:
//
//	Pixels:    0  1  2  3  4  5  6  7  8  9
//	Sprite A:  [--A--A--A--]                  drawn first
//	Sprite B:           [--B--B--B--]         drawn second
//	Owners:    A  A  A  B  B  B  B  .  .  .
//
// Columns 3 and 4 were owned by A when B claimed them, so A and B both
// collide. The buffer is reset at the start of every scanline.
type CollisionBuffer struct {
	owner []int
}

// NewCollisionBuffer creates a buffer covering width columns.
func NewCollisionBuffer(width int) *CollisionBuffer {
	b := &CollisionBuffer{owner: make([]int, width)}
	b.Clear()
	return b
}

// Clear marks every column as unowned.
func (b *CollisionBuffer) Clear() {
	for i := range b.owner {
		b.owner[i] = noSprite
	}
}

// Claim gives column x to sprite and returns the sprite that owned it
// before, or -1. Claims outside the buffer are ignored.
func (b *CollisionBuffer) Claim(x, sprite int) int {
	if x < 0 || x >= len(b.owner) {
		return noSprite
	}
	previous := b.owner[x]
	b.owner[x] = sprite
	return previous
}

// Owner returns the sprite owning column x, or -1.
func (b *CollisionBuffer) Owner(x int) int {
	if x < 0 || x >= len(b.owner) {
		return noSprite
	}
	return b.owner[x]
}
