package gfx

import "fmt"

// SpriteData locates one picture inside a spriteset atlas.
type SpriteData struct {
	Name string
	X, Y int
	W, H int
}

// Spriteset is an atlas bitmap plus the rectangles of its pictures.
type Spriteset struct {
	atlas    *Bitmap
	pictures []SpriteData
}

// NewSpriteset validates every rectangle against the atlas bounds.
func NewSpriteset(atlas *Bitmap, pictures []SpriteData) (*Spriteset, error) {
	if atlas == nil {
		return nil, fmt.Errorf("%w: spriteset atlas", ErrNilResource)
	}
	for i, p := range pictures {
		if p.W < 1 || p.H < 1 || p.X < 0 || p.Y < 0 || p.X+p.W > atlas.width || p.Y+p.H > atlas.height {
			return nil, fmt.Errorf("%w: picture %d (%q) at %d,%d size %dx%d", ErrSize, i, p.Name, p.X, p.Y, p.W, p.H)
		}
	}
	return &Spriteset{atlas: atlas, pictures: pictures}, nil
}

func (s *Spriteset) Atlas() *Bitmap { return s.atlas }

// Palette returns the atlas palette.
func (s *Spriteset) Palette() *Palette { return s.atlas.palette }

// Len returns the number of pictures.
func (s *Spriteset) Len() int { return len(s.pictures) }

// Picture returns the rectangle of picture n.
func (s *Spriteset) Picture(n int) (SpriteData, error) {
	if n < 0 || n >= len(s.pictures) {
		return SpriteData{}, fmt.Errorf("%w: picture %d of %d", ErrIndex, n, len(s.pictures))
	}
	return s.pictures[n], nil
}

// FindSprite returns the index of the picture called name, or -1.
func (s *Spriteset) FindSprite(name string) int {
	for i, p := range s.pictures {
		if p.Name == name {
			return i
		}
	}
	return -1
}
