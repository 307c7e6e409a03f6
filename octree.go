package svo

// Octree is a sparse voxel octree built for 3D flight navigation queries:
// finding the node at a position, walking to free-space neighbors across
// resolution boundaries, and testing line of sight between two points.
//
// It is organized in layers: layers[0] holds every leaf node (each backed
// by a CompoundLeaf describing a 4x4x4 cube of voxels), and layers[n] holds
// the parents of layers[n-1]. Queries start from node 0 of
// layers[len(layers)-1], the root. When the octree is no larger than one
// leaf, layer 0 is the only layer and still holds a full octet of 8 leaves,
// of which node 0 serves as the root. An octree built from no voxels has
// no nodes at all. Once built, an Octree is read-only: every query is a pure
// traversal over its layers and leafs slices, so concurrent reads need no
// synchronization.
type Octree struct {
	voxelSize float32
	origin    IPoint
	layers    [][]Node
	leafs     []CompoundLeaf
}

// VoxelSize returns the size of a single voxel in world space.
func (o *Octree) VoxelSize() float32 { return o.voxelSize }

// FindNode returns the link to the node (or, inside an occupied leaf, the
// subnode) containing the given world-space position. It returns false if
// position falls outside the octree's bounds.
func (o *Octree) FindNode(position FPoint) (Link, bool) {
	if len(o.layers[len(o.layers)-1]) == 0 {
		return Link{}, false
	}

	voxelPosition := position.DivScalar(o.voxelSize).Floor().ToIPoint().Sub(o.origin)
	if voxelPosition.X < 0 || voxelPosition.Y < 0 || voxelPosition.Z < 0 {
		return Link{}, false
	}
	upos := voxelPosition.ToUPoint()

	current := NewLink(len(o.layers)-1, 0)

	for {
		node := o.layers[current.Layer][current.Node]

		if node.IsLeaf {
			local := UPoint{
				X: upos.X - node.Position.X,
				Y: upos.Y - node.Position.Y,
				Z: upos.Z - node.Position.Z,
			}
			if local.X >= 4 || local.Y >= 4 || local.Z >= 4 {
				return Link{}, false
			}

			leaf := o.leafs[current.Node]
			if leaf.IsEmpty() {
				return current, true
			}

			voxelIndex, err := EncodeMorton8(uint8(local.X), uint8(local.Y), uint8(local.Z))
			if err == nil {
				return NewSubnodeLink(current.Layer, current.Node, voxelIndex), true
			}
		}

		if node.FirstChild == nil {
			return current, true
		}

		half := node.Size / 2
		offset := UPoint{
			X: (upos.X - node.Position.X) / half,
			Y: (upos.Y - node.Position.Y) / half,
			Z: (upos.Z - node.Position.Z) / half,
		}

		found := false
		for i, item := range octantOffsets {
			if offset.X == uint32(item[0]) && offset.Y == uint32(item[1]) && offset.Z == uint32(item[2]) {
				current = NewLink(node.FirstChild.Layer, node.FirstChild.Node+i)
				found = true
				break
			}
		}

		if !found {
			return Link{}, false
		}
	}
}

// Successors returns every free-space neighbor of link, expanding across
// resolution boundaries: a neighbor subdivided into children is expanded
// down to its leaf-level free subnodes, and a neighbor at coarser
// resolution than the requesting subnode is returned as-is.
func (o *Octree) Successors(link Link) []Link {
	result := make([]Link, 0, 16)

	node := o.layers[link.Layer][link.Node]

	for i := 0; i < 6; i++ {
		neighbor := node.Neighbors[i]
		if neighbor == nil {
			continue
		}

		neighborNode := o.layers[neighbor.Layer][neighbor.Node]

		if link.Subnode != nil {
			subnode := *link.Subnode

			if !IsFace(subnode, i) {
				neighborIndex := subnodeNeighbors[subnode][i]
				leaf := o.leafs[link.Node]
				if !leaf.GetByIndex(neighborIndex) {
					result = append(result, NewSubnodeLink(link.Layer, link.Node, neighborIndex))
				}
				continue
			}

			if neighborNode.FirstChild != nil {
				result = append(result, o.expandToNeighboringChildren(i, *neighbor)...)
			} else if neighborNode.IsLeaf {
				if n, ok := o.findNeighboringSubnodeForSubnode(i, *neighbor, subnode); ok {
					result = append(result, n)
				}
			} else {
				result = append(result, *neighbor)
			}
			continue
		}

		if neighborNode.FirstChild != nil {
			result = append(result, o.expandToNeighboringChildren(i, *neighbor)...)
		} else if neighborNode.IsLeaf {
			result = append(result, o.expandToNeighboringSubnodes(i, *neighbor)...)
		} else {
			result = append(result, *neighbor)
		}
	}

	return result
}

func (o *Octree) findNeighboringSubnodeForSubnode(faceIndex int, neighbor Link, subnode uint8) (Link, bool) {
	leaf := o.leafs[neighbor.Node]

	if leaf.IsEmpty() {
		return neighbor, true
	}
	if leaf.IsFull() {
		return Link{}, false
	}

	neighborIndex := subnodeNeighbors[subnode][faceIndex]
	if !leaf.GetByIndex(neighborIndex) {
		return NewSubnodeLink(neighbor.Layer, neighbor.Node, neighborIndex), true
	}

	return Link{}, false
}

func (o *Octree) expandToNeighboringSubnodes(faceIndex int, neighbor Link) []Link {
	leaf := o.leafs[neighbor.Node]

	if leaf.IsEmpty() {
		return []Link{neighbor}
	}
	if leaf.IsFull() {
		return nil
	}

	result := make([]Link, 0, 16)
	for _, n := range neighborSubnodes[faceIndex] {
		if leaf.GetByIndex(n.Index) {
			continue
		}
		result = append(result, NewSubnodeLink(neighbor.Layer, neighbor.Node, n.Index))
	}
	return result
}

func (o *Octree) expandToNeighboringChildren(faceIndex int, neighbor Link) []Link {
	var closed []Link
	open := []Link{neighbor}

	for len(open) > 0 {
		n := open[len(open)-1]
		open = open[:len(open)-1]

		node := o.layers[n.Layer][n.Node]
		firstChild := node.FirstChild

		toNodes := neighborConnections[faceIndex].To
		for _, offset := range toNodes {
			child := NewLink(firstChild.Layer, firstChild.Node+offset)
			childNode := o.layers[child.Layer][child.Node]

			if childNode.FirstChild != nil {
				open = append(open, child)
			} else if childNode.IsLeaf {
				closed = append(closed, o.expandToNeighboringSubnodes(faceIndex, child)...)
			} else {
				closed = append(closed, child)
			}
		}
	}

	return closed
}

// IsInLineOfSight reports whether a straight line between two world-space
// points passes through no occupied voxel.
func (o *Octree) IsInLineOfSight(from, to FPoint) bool {
	if len(o.layers[len(o.layers)-1]) == 0 {
		return true
	}

	fromV := clampNonNegative(from.DivScalar(o.voxelSize).ToIVoxel().Sub(o.origin))
	toV := clampNonNegative(to.DivScalar(o.voxelSize).ToIVoxel().Sub(o.origin))

	fromArr := [3]uint32{fromV.X, fromV.Y, fromV.Z}
	toArr := [3]uint32{toV.X, toV.Y, toV.Z}

	open := []Link{NewLink(len(o.layers)-1, 0)}

	for len(open) > 0 {
		link := open[len(open)-1]
		open = open[:len(open)-1]

		node := o.layers[link.Layer][link.Node]

		min := node.Position
		max := node.Position.AddScalar(node.Size)
		if ClipAgainstAABB(fromArr, toArr, [3]uint32{min.X, min.Y, min.Z}, [3]uint32{max.X, max.Y, max.Z}) == ClipOutside {
			continue
		}

		if node.IsLeaf {
			leaf := o.leafs[link.Node]

			if leaf.IsEmpty() {
				continue
			}
			if leaf.IsFull() {
				return false
			}

			for _, index := range leaf.OccupiedIndices() {
				lx, ly, lz := DecodeMorton8(index)
				voxelMin := node.Position.Add(UPoint{X: uint32(lx), Y: uint32(ly), Z: uint32(lz)})
				voxelMax := voxelMin.AddScalar(1)

				if ClipAgainstAABB(fromArr, toArr, [3]uint32{voxelMin.X, voxelMin.Y, voxelMin.Z}, [3]uint32{voxelMax.X, voxelMax.Y, voxelMax.Z}) != ClipOutside {
					return false
				}
			}
			continue
		}

		if node.FirstChild == nil {
			continue
		}

		for i := 0; i < 8; i++ {
			open = append(open, NewLink(node.FirstChild.Layer, node.FirstChild.Node+i))
		}
	}

	return true
}

func clampNonNegative(p IPoint) UPoint {
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Z < 0 {
		p.Z = 0
	}
	return p.ToUPoint()
}

// FacePositionBetween returns the world-space position of the center of the
// shared face between two neighboring nodes. For two links in the same layer
// it returns the midpoint of their centers without checking that they are
// neighbors. For links in different layers it returns false unless the
// finer node has a neighbor link to the coarser one, and then returns the
// center of the coarser node's face on that side.
func (o *Octree) FacePositionBetween(a, b Link) (FPoint, bool) {
	if a.Layer == b.Layer {
		pa := o.NodePosition(a)
		pb := o.NodePosition(b)
		return pa.Add(pb).Scale(0.5), true
	}

	if a.Layer > b.Layer {
		return o.FacePositionBetween(b, a)
	}

	neighbors := o.layers[a.Layer][a.Node].Neighbors
	for i := range neighbors {
		n := neighbors[i]
		if n == nil || *n != b {
			continue
		}

		node := o.layers[n.Layer][n.Node]
		half := float32(node.Size) / 2.0 * o.voxelSize
		offset := neighborPositionOffsets[i]

		return o.NodePosition(*n).Sub(FPoint{
			X: float32(offset[0]) * half,
			Y: float32(offset[1]) * half,
			Z: float32(offset[2]) * half,
		}), true
	}

	return FPoint{}, false
}

// NodePosition returns the world-space position of the center of the node
// (or, for a subnode link, the center of the addressed voxel).
func (o *Octree) NodePosition(link Link) FPoint {
	node := o.layers[link.Layer][link.Node]
	position := node.Position.ToFPoint().Add(o.origin.ToFPoint()).Scale(o.voxelSize)

	if link.Subnode != nil {
		point := subnodePositions[*link.Subnode]
		return position.Add(FPoint{
			X: float32(point[0]) * o.voxelSize,
			Y: float32(point[1]) * o.voxelSize,
			Z: float32(point[2]) * o.voxelSize,
		}).Add(FPoint{X: o.voxelSize / 2, Y: o.voxelSize / 2, Z: o.voxelSize / 2})
	}

	scale := float32(node.Size) * o.voxelSize
	return position.Add(FPoint{X: scale, Y: scale, Z: scale}.Scale(0.5))
}
