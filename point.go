package svo

import "math"

// FPoint is a floating-point 3-vector, used for world-space positions.
type FPoint struct {
	X, Y, Z float32
}

// IPoint is a signed voxel coordinate, used while aggregating voxels before
// the octree's origin has been subtracted.
type IPoint struct {
	X, Y, Z int32
}

// UPoint is an unsigned voxel coordinate, relative to the octree's origin.
type UPoint struct {
	X, Y, Z uint32
}

var (
	// IPointZero is the origin.
	IPointZero = IPoint{}
	// IPointMax has every component set to the maximum representable int32.
	IPointMax = IPoint{math.MaxInt32, math.MaxInt32, math.MaxInt32}
	// IPointMin has every component set to the minimum representable int32.
	IPointMin = IPoint{math.MinInt32, math.MinInt32, math.MinInt32}
)

func NewFPoint(x, y, z float32) FPoint { return FPoint{x, y, z} }
func NewIPoint(x, y, z int32) IPoint   { return IPoint{x, y, z} }
func NewUPoint(x, y, z uint32) UPoint  { return UPoint{x, y, z} }

func (p FPoint) Add(o FPoint) FPoint { return FPoint{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p FPoint) Sub(o FPoint) FPoint { return FPoint{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p FPoint) Scale(s float32) FPoint {
	return FPoint{p.X * s, p.Y * s, p.Z * s}
}
func (p FPoint) DivScalar(s float32) FPoint {
	return FPoint{p.X / s, p.Y / s, p.Z / s}
}
func (p FPoint) Floor() FPoint {
	return FPoint{float32(math.Floor(float64(p.X))), float32(math.Floor(float64(p.Y))), float32(math.Floor(float64(p.Z)))}
}
func (p FPoint) Ceil() FPoint {
	return FPoint{float32(math.Ceil(float64(p.X))), float32(math.Ceil(float64(p.Y))), float32(math.Ceil(float64(p.Z)))}
}
func (p FPoint) ToIPoint() IPoint { return IPoint{int32(p.X), int32(p.Y), int32(p.Z)} }

// ToIVoxel truncates towards zero, matching the original crate's `as i32` cast
// used when mapping a world position down to a voxel index.
func (p FPoint) ToIVoxel() IPoint { return p.ToIPoint() }

func (p IPoint) Add(o IPoint) IPoint { return IPoint{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p IPoint) Sub(o IPoint) IPoint { return IPoint{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p IPoint) MulScalar(s int32) IPoint {
	return IPoint{p.X * s, p.Y * s, p.Z * s}
}
func (p IPoint) DivScalar(s int32) IPoint {
	return IPoint{p.X / s, p.Y / s, p.Z / s}
}
func (p IPoint) Min(o IPoint) IPoint {
	return IPoint{minI32(p.X, o.X), minI32(p.Y, o.Y), minI32(p.Z, o.Z)}
}
func (p IPoint) Max(o IPoint) IPoint {
	return IPoint{maxI32(p.X, o.X), maxI32(p.Y, o.Y), maxI32(p.Z, o.Z)}
}
func (p IPoint) MaxElement() int32 {
	return maxI32(maxI32(p.X, p.Y), p.Z)
}
func (p IPoint) ManhattanLength() int32 {
	return absI32(p.X) + absI32(p.Y) + absI32(p.Z)
}
func (p IPoint) LengthSquared() int32 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}
func (p IPoint) ToUPoint() UPoint { return UPoint{uint32(p.X), uint32(p.Y), uint32(p.Z)} }
func (p IPoint) ToFPoint() FPoint { return FPoint{float32(p.X), float32(p.Y), float32(p.Z)} }

func (p UPoint) Add(o UPoint) UPoint { return UPoint{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p UPoint) Sub(o UPoint) UPoint { return UPoint{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p UPoint) AddScalar(s uint32) UPoint {
	return UPoint{p.X + s, p.Y + s, p.Z + s}
}
func (p UPoint) MulScalar(s uint32) UPoint {
	return UPoint{p.X * s, p.Y * s, p.Z * s}
}
func (p UPoint) DivScalar(s uint32) UPoint {
	return UPoint{p.X / s, p.Y / s, p.Z / s}
}
func (p UPoint) ShiftRight(n uint32) UPoint {
	return UPoint{p.X >> n, p.Y >> n, p.Z >> n}
}
func (p UPoint) ShiftLeft(n uint32) UPoint {
	return UPoint{p.X << n, p.Y << n, p.Z << n}
}
func (p UPoint) ManhattanLength() uint32 { return p.X + p.Y + p.Z }
func (p UPoint) ToIPoint() IPoint        { return IPoint{int32(p.X), int32(p.Y), int32(p.Z)} }
func (p UPoint) ToFPoint() FPoint        { return FPoint{float32(p.X), float32(p.Y), float32(p.Z)} }
func (p UPoint) ToArray() [3]uint32      { return [3]uint32{p.X, p.Y, p.Z} }

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func absI32(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}
