package grisu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"zero", 0, 0},
		{"full turn", 2 * math.Pi, 0},
		{"negative full turn", -2 * math.Pi, 0},
		{"half turn", math.Pi, math.Pi},
		{"three and a half turns", 7 * math.Pi, math.Pi},
		{"negative quarter turn", -math.Pi / 2, 1.5 * math.Pi},
		{"negative one and a quarter turns", -2.5 * math.Pi, 1.5 * math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, ReduceAngle(tt.angle), 1e-12)
		})
	}
}

func TestReduceAngleRangeAndIdempotence(t *testing.T) {
	for a := -25.0; a < 25.0; a += 0.0137 {
		r := ReduceAngle(a)
		require.GreaterOrEqual(t, r, 0.0, "angle %f", a)
		require.Less(t, r, 2*math.Pi, "angle %f", a)
		require.Equal(t, r, ReduceAngle(r), "angle %f", a)
	}
}

func TestReduceAngleExactBoundaries(t *testing.T) {
	// exactly 0 and exactly 2pi must land on 0, not 2pi
	assert.Equal(t, 0.0, ReduceAngle(0))
	assert.Equal(t, 0.0, ReduceAngle(2*math.Pi))
}

func TestTransformCoordAzimuth(t *testing.T) {
	tests := []struct {
		name string
		az   float64
		want float64
	}{
		{"north", 0, 1.5 * math.Pi},
		{"west", 0.5 * math.Pi, math.Pi},
		{"south", math.Pi, 0.5 * math.Pi},
		{"east", 1.5 * math.Pi, 0},
		{"wrapped north", 2 * math.Pi, 1.5 * math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			az, _, _ := TransformCoord(tt.az, 0, 0)
			require.InDelta(t, tt.want, az, 1e-12)
		})
	}
}

func TestTransformCoordPosition(t *testing.T) {
	_, x, y := TransformCoord(0, 3, -4)
	assert.Equal(t, 4.0, x)
	assert.Equal(t, -3.0, y)

	// the swap-negate applied twice is the identity
	_, x2, y2 := TransformCoord(0, x, y)
	assert.Equal(t, 3.0, x2)
	assert.Equal(t, -4.0, y2)
}
