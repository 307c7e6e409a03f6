package svo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFPointArithmetic(t *testing.T) {
	a := FPoint{X: 1, Y: 2, Z: 3}
	b := FPoint{X: 4, Y: 5, Z: 6}

	require.Equal(t, FPoint{X: 5, Y: 7, Z: 9}, a.Add(b))
	require.Equal(t, FPoint{X: -3, Y: -3, Z: -3}, a.Sub(b))
	require.Equal(t, FPoint{X: 2, Y: 4, Z: 6}, a.Scale(2))
	require.Equal(t, FPoint{X: 0.5, Y: 1, Z: 1.5}, a.DivScalar(2))
}

func TestFPointFloorCeil(t *testing.T) {
	p := FPoint{X: 1.5, Y: -1.5, Z: 2.0}
	require.Equal(t, FPoint{X: 1, Y: -2, Z: 2}, p.Floor())
	require.Equal(t, FPoint{X: 2, Y: -1, Z: 2}, p.Ceil())
}

func TestIPointMinMax(t *testing.T) {
	a := IPoint{X: 1, Y: -5, Z: 3}
	b := IPoint{X: -2, Y: 4, Z: 3}

	require.Equal(t, IPoint{X: -2, Y: -5, Z: 3}, a.Min(b))
	require.Equal(t, IPoint{X: 1, Y: 4, Z: 3}, a.Max(b))
	require.Equal(t, int32(4), b.MaxElement())
}

func TestIPointLengths(t *testing.T) {
	p := IPoint{X: -3, Y: 4, Z: 0}
	require.Equal(t, int32(7), p.ManhattanLength())
	require.Equal(t, int32(25), p.LengthSquared())
}

func TestUPointShifts(t *testing.T) {
	p := UPoint{X: 9, Y: 10, Z: 11}
	require.Equal(t, UPoint{X: 1, Y: 1, Z: 1}, p.ShiftRight(3))
	require.Equal(t, UPoint{X: 8, Y: 8, Z: 8}, p.ShiftRight(3).ShiftLeft(3))
}

func TestUPointConversions(t *testing.T) {
	p := UPoint{X: 3, Y: 4, Z: 5}
	require.Equal(t, IPoint{X: 3, Y: 4, Z: 5}, p.ToIPoint())
	require.Equal(t, FPoint{X: 3, Y: 4, Z: 5}, p.ToFPoint())
	require.Equal(t, [3]uint32{3, 4, 5}, p.ToArray())
}
