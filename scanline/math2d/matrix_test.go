package math2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-4

func TestFixedConversions(t *testing.T) {
	tests := []struct {
		name  string
		value float32
		fixed int
	}{
		{name: "zero", value: 0, fixed: 0},
		{name: "one", value: 1, fixed: 1 << 16},
		{name: "half", value: 0.5, fixed: 1 << 15},
		{name: "two and a quarter", value: 2.25, fixed: 2<<16 | 1<<14},
		{name: "negative", value: -1.5, fixed: -(3 << 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fixed, FloatToFixed(tt.value))
			assert.InDelta(t, tt.value, FixedToFloat(tt.fixed), epsilon)
		})
	}

	assert.Equal(t, 5, FixedToInt(IntToFixed(5)))
	assert.Equal(t, -1, FixedToInt(-1), "negative fractions floor")
	assert.Equal(t, 2, FixedToInt(FloatToFixed(2.99)))
}

func TestMatrix3_Transform(t *testing.T) {
	tests := []struct {
		name     string
		build    func() Matrix3
		in       Point2D
		expected Point2D
	}{
		{
			name:     "identity",
			build:    Identity,
			in:       Point2D{X: 3, Y: -7},
			expected: Point2D{X: 3, Y: -7},
		},
		{
			name: "translation",
			build: func() Matrix3 {
				var m Matrix3
				m.SetTranslation(10, -4)
				return m
			},
			in:       Point2D{X: 1, Y: 1},
			expected: Point2D{X: 11, Y: -3},
		},
		{
			name: "scale",
			build: func() Matrix3 {
				var m Matrix3
				m.SetScale(2, 0.5)
				return m
			},
			in:       Point2D{X: 3, Y: 8},
			expected: Point2D{X: 6, Y: 4},
		},
		{
			name: "rotation by 90 degrees",
			build: func() Matrix3 {
				var m Matrix3
				m.SetRotation(90)
				return m
			},
			in:       Point2D{X: 1, Y: 0},
			expected: Point2D{X: 0, Y: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build().Transform(tt.in)
			assert.InDelta(t, tt.expected.X, got.X, epsilon)
			assert.InDelta(t, tt.expected.Y, got.Y, epsilon)
		})
	}
}

func TestMatrix3_MultiplyComposesInApplicationOrder(t *testing.T) {
	// translate first, then scale
	var m, scale Matrix3
	m.SetTranslation(1, 2)
	scale.SetScale(10, 10)
	m.Multiply(scale)

	p := Point2D{X: 0, Y: 0}
	p.Multiply(m)

	assert.InDelta(t, 10, p.X, epsilon)
	assert.InDelta(t, 20, p.Y, epsilon)
}

func TestLayerTransform(t *testing.T) {
	t.Run("zero angle unit scale is identity", func(t *testing.T) {
		m := LayerTransform(0, 37, 91, 1, 1)
		assert.Equal(t, Identity(), m)
	})

	t.Run("pivot is a fixed point", func(t *testing.T) {
		m := LayerTransform(33, 50, 60, 1.5, 0.75)
		p := m.Transform(Point2D{X: 50, Y: 60})
		assert.InDelta(t, 50, p.X, epsilon)
		assert.InDelta(t, 60, p.Y, epsilon)
	})

	t.Run("scale 2 halves distances from pivot", func(t *testing.T) {
		m := LayerTransform(0, 10, 10, 2, 2)
		p := m.Transform(Point2D{X: 20, Y: 30})
		assert.InDelta(t, 15, p.X, epsilon)
		assert.InDelta(t, 20, p.Y, epsilon)
	})
}
