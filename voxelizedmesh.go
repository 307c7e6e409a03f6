package svo

// VoxelizedMesh is a collection of voxels, already converted from some
// external geometry representation (a triangle mesh, a procedural shape, a
// sensor scan) into unit-cube occupancy. Converting arbitrary meshes into
// voxels is outside this package's scope; VoxelizedMesh is the contract an
// external voxelizer is expected to produce.
type VoxelizedMesh struct {
	voxels        []UPoint
	voxelSize     float32
	leftTopCorner IPoint
}

// NewVoxelizedMesh creates a voxelized mesh from voxel coordinates relative
// to leftTopCorner.
func NewVoxelizedMesh(voxels []UPoint, voxelSize float32, leftTopCorner IPoint) VoxelizedMesh {
	return VoxelizedMesh{voxels: voxels, voxelSize: voxelSize, leftTopCorner: leftTopCorner}
}

// Sphere builds a voxelized sphere of the given radius (in world units)
// centered at position.
func Sphere(radius, voxelSize float32, position IPoint) VoxelizedMesh {
	var voxels []UPoint

	r := int32(ceilf32(radius / voxelSize))
	leftTopCorner := position.Sub(IPoint{r, r, r})

	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			for z := -r; z <= r; z++ {
				if x*x+y*y+z*z <= r*r {
					voxels = append(voxels, UPoint{
						X: uint32(x + r),
						Y: uint32(y + r),
						Z: uint32(z + r),
					})
				}
			}
		}
	}

	return NewVoxelizedMesh(voxels, voxelSize, leftTopCorner)
}

// VoxelSize returns the size of a single voxel in world space.
func (m VoxelizedMesh) VoxelSize() float32 { return m.voxelSize }

// Voxels returns the mesh's voxels as absolute signed voxel coordinates.
func (m VoxelizedMesh) Voxels() []IPoint {
	result := make([]IPoint, len(m.voxels))
	for i, v := range m.voxels {
		result[i] = v.ToIPoint().Add(m.leftTopCorner)
	}
	return result
}

func ceilf32(f float32) float32 {
	i := int32(f)
	if float32(i) < f {
		return float32(i + 1)
	}
	return float32(i)
}
