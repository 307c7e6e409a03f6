package svo

// Link addresses a single node, or a subnode within a leaf's compound node,
// inside an Octree.
//
// Layer and Node index into Octree.layers. Subnode, when non-nil, further
// selects one of the 64 voxels within a leaf's compound node.
type Link struct {
	Layer   int
	Node    int
	Subnode *uint8
}

// NewLink creates a link to a whole node.
func NewLink(layer, node int) Link {
	return Link{Layer: layer, Node: node}
}

// NewSubnodeLink creates a link to a single voxel within a leaf node.
func NewSubnodeLink(layer, node int, subnode uint8) Link {
	return Link{Layer: layer, Node: node, Subnode: &subnode}
}

// ManhattanDistance returns the Manhattan distance, in leaf-resolution
// voxel units, between the voxels addressed by l and other. It does not
// account for voxel size.
func (l Link) ManhattanDistance(other Link, tree *Octree) int32 {
	a := l.voxelPosition(tree)
	b := other.voxelPosition(tree)
	return a.Sub(b).ManhattanLength()
}

// DistanceSquared returns the squared Euclidean distance, in
// leaf-resolution voxel units, between the voxels addressed by l and other.
// It does not account for voxel size.
func (l Link) DistanceSquared(other Link, tree *Octree) int32 {
	a := l.voxelPosition(tree)
	b := other.voxelPosition(tree)
	return a.Sub(b).LengthSquared()
}

func (l Link) voxelPosition(tree *Octree) IPoint {
	node := tree.layers[l.Layer][l.Node]
	position := node.Position.ToIPoint().MulScalar(4)

	if l.Subnode != nil {
		x, y, z := DecodeMorton8(*l.Subnode)
		position = position.Add(IPoint{int32(x), int32(y), int32(z)})
	}

	return position
}
