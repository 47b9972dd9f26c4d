package gfx

import "fmt"

// Object is one placed image of an object layer. It draws either a
// tileset entry (Gid) or its own Bitmap when one is set.
type Object struct {
	ID      int
	Gid     int
	Flags   Flags
	X, Y    int
	W, H    int
	Visible bool
	Bitmap  *Bitmap
}

// ObjectList holds placed images in insertion order.
type ObjectList struct {
	objects []Object
}

func NewObjectList() *ObjectList {
	return &ObjectList{}
}

// AddTileObject places tileset entry gid with its top-left corner at (x, y).
// The object takes the size of the tileset's tiles.
func (l *ObjectList) AddTileObject(id, gid int, flags Flags, x, y int, tileset *Tileset) error {
	if tileset == nil {
		return fmt.Errorf("%w: tileset for object %d", ErrNilResource, id)
	}
	if gid < 1 || gid > tileset.NumTiles() {
		return fmt.Errorf("%w: object %d gid %d", ErrIndex, id, gid)
	}
	l.objects = append(l.objects, Object{
		ID:      id,
		Gid:     gid,
		Flags:   flags,
		X:       x,
		Y:       y,
		W:       tileset.Width(),
		H:       tileset.Height(),
		Visible: true,
	})
	return nil
}

// AddBitmapObject places a standalone bitmap with its top-left corner at (x, y).
func (l *ObjectList) AddBitmapObject(id int, bitmap *Bitmap, flags Flags, x, y int) error {
	if bitmap == nil {
		return fmt.Errorf("%w: bitmap for object %d", ErrNilResource, id)
	}
	l.objects = append(l.objects, Object{
		ID:      id,
		Flags:   flags,
		X:       x,
		Y:       y,
		W:       bitmap.Width(),
		H:       bitmap.Height(),
		Visible: true,
		Bitmap:  bitmap,
	})
	return nil
}

// Len returns the number of objects.
func (l *ObjectList) Len() int { return len(l.objects) }

// Objects exposes the list for iteration. Callers may toggle Visible
// or move objects in place.
func (l *ObjectList) Objects() []Object { return l.objects }

// Bounds returns the extent covered by all objects, anchored at the origin.
func (l *ObjectList) Bounds() (width, height int) {
	for _, o := range l.objects {
		width = max(width, o.X+o.W)
		height = max(height, o.Y+o.H)
	}
	return width, height
}
