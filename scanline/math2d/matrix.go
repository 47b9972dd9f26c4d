package math2d

import "math"

// Matrix3 is a 3x3 affine transform in row-major order. The bottom row
// is always (0, 0, 1) for the transforms built here.
type Matrix3 struct {
	M [3][3]float32
}

// Point2D is a point in 2D space.
type Point2D struct {
	X, Y float32
}

// Identity returns the identity matrix.
func Identity() Matrix3 {
	var m Matrix3
	m.SetIdentity()
	return m
}

// SetIdentity resets m to the identity matrix.
func (m *Matrix3) SetIdentity() {
	m.M = [3][3]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// SetTranslation sets m to a translation by (tx, ty).
func (m *Matrix3) SetTranslation(tx, ty float32) {
	m.SetIdentity()
	m.M[0][2] = tx
	m.M[1][2] = ty
}

// SetRotation sets m to a rotation by the given angle in degrees.
func (m *Matrix3) SetRotation(degrees float32) {
	rad := float64(degrees) * math.Pi / 180
	c := float32(math.Cos(rad))
	s := float32(math.Sin(rad))

	m.SetIdentity()
	m.M[0][0] = c
	m.M[0][1] = s
	m.M[1][0] = -s
	m.M[1][1] = c
}

// SetScale sets m to a non-uniform scale.
func (m *Matrix3) SetScale(sx, sy float32) {
	m.SetIdentity()
	m.M[0][0] = sx
	m.M[1][1] = sy
}

// Multiply replaces m with mul × m, so successive calls compose
// transforms in the order they are applied to a point.
func (m *Matrix3) Multiply(mul Matrix3) {
	var tmp Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += mul.M[r][k] * m.M[k][c]
			}
			tmp.M[r][c] = sum
		}
	}
	*m = tmp
}

// Transform returns p transformed by m.
func (m Matrix3) Transform(p Point2D) Point2D {
	return Point2D{
		X: m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2],
		Y: m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2],
	}
}

// Multiply transforms p in place by m.
func (p *Point2D) Multiply(m Matrix3) {
	*p = m.Transform(*p)
}

// LayerTransform builds the source-space sampling matrix for a rotated and
// scaled layer. The pivot (cx, cy) is expressed in layer space, and the
// result maps framebuffer-anchored layer coordinates back into the source.
func LayerTransform(angle, cx, cy, sx, sy float32) Matrix3 {
	var m, step Matrix3

	m.SetTranslation(-cx, -cy)

	step.SetRotation(float32(math.Mod(float64(-angle), 360)))
	m.Multiply(step)

	step.SetScale(1/sx, 1/sy)
	m.Multiply(step)

	step.SetTranslation(cx, cy)
	m.Multiply(step)

	return m
}
