package svo

import (
	"sort"

	set3 "github.com/TomTonic/Set3"
)

// Builder accumulates voxelized meshes and compiles them into an Octree.
// It is configured purely through its constructor and setter methods, with
// no external config file.
type Builder struct {
	voxelSize float32
	meshes    []VoxelizedMesh
	min, max  IPoint
}

// NewBuilder creates a builder. voxelSize is the size of a single voxel in
// world space.
func NewBuilder(voxelSize float32) *Builder {
	return &Builder{
		voxelSize: voxelSize,
		min:       IPointMax,
		max:       IPointMin,
	}
}

// AddMesh queues a voxelized mesh for inclusion in the built octree.
func (b *Builder) AddMesh(mesh VoxelizedMesh) {
	b.meshes = append(b.meshes, mesh)
}

// SetBounds sets the minimal bounds of the octree, in world space. If any
// mesh's voxels fall outside these bounds, the bounds are expanded to
// include them, and the final size is rounded up to a power of two.
func (b *Builder) SetBounds(min, max FPoint) {
	b.min = min.DivScalar(b.voxelSize).Floor().ToIPoint()
	b.max = max.DivScalar(b.voxelSize).Ceil().ToIPoint()
}

// Build compiles the queued meshes and bounds into an Octree.
func (b *Builder) Build() *Octree {
	voxels := b.collectVoxels()

	min, max := getMinMax(voxels)
	min = b.min.Min(min)
	max = b.max.Max(max)

	origin, size := getOriginAndSize(min, max)

	layerZero, leafs := collectLeafsAndZeroLayerNodes(voxels, origin)

	currentNodeSize := uint32(4)
	layers := [][]Node{layerZero}

	for currentNodeSize < size {
		nextSize, layer := createNextLayer(layers, currentNodeSize, size)
		layers = append(layers, layer)
		currentNodeSize = nextSize
	}

	fillParents(layers)
	fillNeighbors(layers)

	return &Octree{
		voxelSize: b.voxelSize,
		origin:    origin,
		layers:    layers,
		leafs:     leafs,
	}
}

// collectVoxels flattens every queued mesh's voxels into a single
// deduplicated list. Overlapping meshes are common (two sources covering
// the same region), so coordinates are deduplicated through a Set3 before
// the rest of the pipeline processes them.
func (b *Builder) collectVoxels() []IPoint {
	seen := set3.Empty[IPoint]()
	voxels := make([]IPoint, 0)

	for _, mesh := range b.meshes {
		for _, v := range mesh.Voxels() {
			if seen.Contains(v) {
				continue
			}
			seen.Add(v)
			voxels = append(voxels, v)
		}
	}

	return voxels
}

func getMinMax(voxels []IPoint) (IPoint, IPoint) {
	if len(voxels) == 0 {
		return IPointZero, IPointZero
	}

	min := IPointMax
	max := IPointMin

	for _, v := range voxels {
		min = min.Min(v)
		max = max.Max(v)
	}

	return min, max
}

func getOriginAndSize(min, max IPoint) (IPoint, uint32) {
	if min == max {
		return min, 1
	}

	size := uint32(max.Sub(min).MaxElement())
	if size&(size-1) != 0 {
		size = nextPowerOfTwo(size)
	}

	return min, size
}

func nextPowerOfTwo(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return v + 1
}

// collectLeafsAndZeroLayerNodes pads voxel aggregates up to whole 8x8x8
// leaf-parent blocks, then returns layer 0 (the leaf nodes) and their
// backing compound leaves, both sorted into Morton order.
func collectLeafsAndZeroLayerNodes(voxels []IPoint, origin IPoint) ([]Node, []CompoundLeaf) {
	leafs := map[UPoint]*CompoundLeaf{}
	layerZero := map[UPoint]*Node{}

	for _, voxel := range voxels {
		offset := voxel.Sub(origin).ToUPoint()
		leafParentCoords := offset.ShiftRight(3).ShiftLeft(3)

		for x := uint32(0); x < 2; x++ {
			for y := uint32(0); y < 2; y++ {
				for z := uint32(0); z < 2; z++ {
					leafCoords := leafParentCoords.Add(UPoint{X: x * 4, Y: y * 4, Z: z * 4})

					if _, ok := leafs[leafCoords]; !ok {
						var cl CompoundLeaf
						leafs[leafCoords] = &cl
					}
					if _, ok := layerZero[leafCoords]; !ok {
						n := NewLeafNode(leafCoords)
						layerZero[leafCoords] = &n
					}
				}
			}
		}
	}

	for _, voxel := range voxels {
		offset := voxel.Sub(origin).ToUPoint()
		leafCoords := offset.ShiftRight(2).ShiftLeft(2)

		node := layerZero[leafCoords]
		leaf := leafs[leafCoords]

		local := offset.Sub(leafCoords)
		leaf.Set(local.X, local.Y, local.Z, true)
		node.IsLeaf = true
	}

	type keyed struct {
		node Node
		code uint64
	}

	leafList := make([]keyed, 0, len(leafs))
	for pos, leaf := range leafs {
		leafList = append(leafList, keyed{node: Node{Position: pos}, code: EncodeMortonPoint(pos)})
		_ = leaf
	}
	sort.Slice(leafList, func(i, j int) bool { return leafList[i].code < leafList[j].code })

	sortedLeafs := make([]CompoundLeaf, len(leafList))
	for i, k := range leafList {
		sortedLeafs[i] = *leafs[k.node.Position]
	}

	layerZeroList := make([]Node, 0, len(layerZero))
	for _, n := range layerZero {
		layerZeroList = append(layerZeroList, *n)
	}
	sort.Slice(layerZeroList, func(i, j int) bool {
		return layerZeroList[i].MortonCode() < layerZeroList[j].MortonCode()
	})

	return layerZeroList, sortedLeafs
}

// validateAllChildrenPresent checks that nodes is made up of complete
// octets whose 8 children appear in the exact Morton-code order that
// octantOffsets defines. A violation means the builder produced a
// malformed layer; there is no way for a caller to recover from this, so
// createNextLayer panics instead of returning an error.
func validateAllChildrenPresent(nodes []Node, nodeSize uint32) bool {
	size := int32(nodeSize)

	if len(nodes)%8 != 0 {
		return false
	}

	for i := 0; i < len(nodes); i += 8 {
		firstPosition := nodes[i].Position.ToIPoint().DivScalar(size)

		for y := 0; y < 8; y++ {
			nodePos := nodes[i+y].Position.ToIPoint().DivScalar(size)
			offset := nodePos.Sub(firstPosition)
			want := octantOffsets[y]

			if offset != (IPoint{int32(want[0]), int32(want[1]), int32(want[2])}) {
				return false
			}
		}
	}

	return true
}

func createNextLayer(layers [][]Node, currentNodeSize, size uint32) (uint32, []Node) {
	nextLayerIndex := len(layers)
	nextNodeSize := currentNodeSize * 2
	lastLayer := layers[len(layers)-1]

	if !validateAllChildrenPresent(lastLayer, currentNodeSize) {
		panicInvariant("svo: octree builder invariant violated: not all children present")
	}

	layer := make([]Node, 0, len(lastLayer)/8)

	for i := 0; i < len(lastLayer); i += 8 {
		position := lastLayer[i].Position
		node := NewNode(position, nextNodeSize)
		firstChild := NewLink(nextLayerIndex-1, i)
		node.FirstChild = &firstChild

		layer = append(layer, node)
	}

	if nextNodeSize < size {
		i := 0
		for {
			var firstPosition IPoint
			if len(layer) > i {
				firstPosition = layer[i].Position.ToIPoint().DivScalar(int32(nextNodeSize) * 2).MulScalar(int32(nextNodeSize) * 2)
			}

			for y, item := range octantOffsets {
				offset := IPoint{int32(item[0]), int32(item[1]), int32(item[2])}
				layer = fillNodeIfItDoesntExist(layer, i+y, firstPosition, nextNodeSize, offset)
			}

			i += 8

			if i >= len(layer) {
				break
			}
		}
	}

	return nextNodeSize, layer
}

func fillNodeIfItDoesntExist(layer []Node, nodeIndex int, firstPosition IPoint, nodeSize uint32, offset IPoint) []Node {
	exists := false
	if len(layer) > nodeIndex {
		nodePos := layer[nodeIndex].Position.ToIPoint()
		exists = nodePos.Sub(firstPosition).DivScalar(int32(nodeSize)) == offset
	}

	if exists {
		return layer
	}

	pos := firstPosition.Add(offset.MulScalar(int32(nodeSize))).ToUPoint()
	node := NewNode(pos, nodeSize)

	return insertNode(layer, nodeIndex, node)
}

func insertNode(layer []Node, index int, node Node) []Node {
	layer = append(layer, Node{})
	copy(layer[index+1:], layer[index:])
	layer[index] = node
	return layer
}

func fillParents(layers [][]Node) {
	for i := len(layers) - 1; i >= 0; i-- {
		for y := range layers[i] {
			firstChild := layers[i][y].FirstChild
			if firstChild == nil {
				continue
			}

			layer := layers[firstChild.Layer]
			for z := 0; z < 8; z++ {
				nodeIndex := firstChild.Node + z
				parent := NewLink(i, y)
				layer[nodeIndex].Parent = &parent
			}
		}
	}
}

// fillNeighbors wires up the 6 face-neighbors of every node, via a DFS from
// the root: within an octet it connects the 12 sibling pairs directly, and
// across layers it inherits the parent's neighbor connections, subdividing
// them onto the correct 4 children when the neighbor is itself subdivided.
func fillNeighbors(layers [][]Node) {
	if len(layers) == 0 || len(layers[0]) == 0 {
		return
	}

	stack := []Link{NewLink(len(layers)-1, 0)}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		firstChild := layers[node.Layer][node.Node].FirstChild
		if firstChild == nil {
			continue
		}

		for i := 0; i < 8; i++ {
			stack = append(stack, NewLink(firstChild.Layer, firstChild.Node+i))
		}

		for _, sc := range siblingConnections {
			a := firstChild.Node + sc.OffsetA
			b := firstChild.Node + sc.OffsetB

			linkToB := NewLink(firstChild.Layer, b)
			linkToA := NewLink(firstChild.Layer, a)

			layers[firstChild.Layer][a].Neighbors[sc.FaceA] = &linkToB
			layers[firstChild.Layer][b].Neighbors[sc.FaceB] = &linkToA
		}

		for faceIndex, conn := range neighborConnections {
			neighbor := layers[node.Layer][node.Node].Neighbors[faceIndex]
			if neighbor == nil {
				continue
			}

			ownFirstChild := layers[node.Layer][node.Node].FirstChild
			if ownFirstChild == nil {
				continue
			}

			neighborFirstChild := layers[neighbor.Layer][neighbor.Node].FirstChild

			if neighborFirstChild != nil {
				for i := 0; i < 4; i++ {
					link := NewLink(neighborFirstChild.Layer, neighborFirstChild.Node+conn.To[i])
					layers[ownFirstChild.Layer][ownFirstChild.Node+conn.From[i]].Neighbors[faceIndex] = &link
				}
			} else {
				for i := 0; i < 4; i++ {
					link := *neighbor
					layers[ownFirstChild.Layer][ownFirstChild.Node+conn.From[i]].Neighbors[faceIndex] = &link
				}
			}
		}
	}
}
