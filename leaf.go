package svo

import "math/bits"

// CompoundLeaf packs the occupancy of a 4x4x4 cube of voxels into a single
// uint64, one bit per voxel, addressed by Morton code. A set bit means the
// voxel is filled.
type CompoundLeaf uint64

// faceBits holds, for each of the 6 faces, a 64-bit mask of the subnode
// indices that lie on that face.
var faceBits = [6]uint64{
	0b1010_1010_0000_0000_1010_1010_0000_0000_1010_1010_0000_0000_1010_1010_0000_0000, // Right
	0b1111_0000_1111_0000_1111_0000_1111_0000_0000_0000_0000_0000_0000_0000_0000_0000, // Back
	0b101_0101_0000_0000_0101_0101_0000_0000_0101_0101_0000_0000_0101_0101,            // Left
	0b1111_0000_1111_0000_1111_0000_1111,                                              // Front
	0b1100_1100_1100_1100_0000_0000_0000_0000_1100_1100_1100_1100_0000_0000_0000_0000, // Bottom
	0b11_0011_0011_0011_0000_0000_0000_0000_0011_0011_0011_0011,                       // Top
}

// IsFace reports whether subnode index lies on the cube face identified by
// face (0-5, see the package-level face index convention).
func IsFace(index uint8, face int) bool {
	return faceBits[face]&(1<<index) != 0
}

// IsEmpty reports whether no voxel in the leaf is filled.
func (l CompoundLeaf) IsEmpty() bool { return l == 0 }

// IsFull reports whether every voxel in the leaf is filled.
func (l CompoundLeaf) IsFull() bool { return l == ^CompoundLeaf(0) }

// Set marks the voxel at (x, y, z), each in 0..3, as filled or empty.
func (l *CompoundLeaf) Set(x, y, z uint32, value bool) {
	index := EncodeMorton(x, y, z)
	if value {
		*l |= 1 << index
	} else {
		*l &^= 1 << index
	}
}

// Get reports whether the voxel at (x, y, z), each in 0..3, is filled.
func (l CompoundLeaf) Get(x, y, z uint32) bool {
	index := EncodeMorton(x, y, z)
	return l&(1<<index) != 0
}

// GetByIndex reports whether the voxel at the given Morton code index is
// filled.
func (l CompoundLeaf) GetByIndex(index uint8) bool {
	return l&(1<<index) != 0
}

// PopCount returns the number of filled voxels.
func (l CompoundLeaf) PopCount() int {
	return bits.OnesCount64(uint64(l))
}

// OccupiedIndices returns the Morton code index of every filled voxel.
func (l CompoundLeaf) OccupiedIndices() []uint8 {
	indices := make([]uint8, 0, l.PopCount())
	v := uint64(l)
	for v != 0 {
		i := bits.TrailingZeros64(v)
		indices = append(indices, uint8(i))
		v &= v - 1
	}
	return indices
}
