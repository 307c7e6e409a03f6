package svo

import (
	"testing"

	"gopkg.in/check.v1"
)

func TestOctree(t *testing.T) { check.TestingT(t) }

type OctreeSuite struct{}

var _ = check.Suite(&OctreeSuite{})

func singleVoxelMesh(voxel UPoint, leftTopCorner IPoint, voxelSize float32) VoxelizedMesh {
	return NewVoxelizedMesh([]UPoint{voxel}, voxelSize, leftTopCorner)
}

func (*OctreeSuite) TestBuildSingleVoxelIsOneLayer(c *check.C) {
	b := NewBuilder(1.0)
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	tree := b.Build()

	c.Assert(tree.layers, check.HasLen, 1)
	c.Assert(tree.layers[0], check.HasLen, 8)
	c.Check(tree.layers[0][0].IsLeaf, check.Equals, true)
	c.Check(tree.layers[0][0].Position, check.Equals, UPoint{0, 0, 0})
	c.Check(tree.leafs[0].Get(0, 0, 0), check.Equals, true)
}

func (*OctreeSuite) TestFindNodeLocatesOccupiedVoxel(c *check.C) {
	b := NewBuilder(1.0)
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	tree := b.Build()

	link, ok := tree.FindNode(FPoint{X: 0.5, Y: 0.5, Z: 0.5})
	c.Assert(ok, check.Equals, true)
	c.Assert(link.Subnode, check.NotNil)
	c.Check(*link.Subnode, check.Equals, uint8(0))
}

func (*OctreeSuite) TestFindNodeLocatesFreeVoxelInSameLeaf(c *check.C) {
	b := NewBuilder(1.0)
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	tree := b.Build()

	link, ok := tree.FindNode(FPoint{X: 1.5, Y: 0.5, Z: 0.5})
	c.Assert(ok, check.Equals, true)
	c.Assert(link.Subnode, check.NotNil)
	c.Check(tree.leafs[link.Node].GetByIndex(*link.Subnode), check.Equals, false)
}

func (*OctreeSuite) TestFindNodeOutOfBoundsFails(c *check.C) {
	b := NewBuilder(1.0)
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{15, 15, 15}, 1.0))
	tree := b.Build()

	_, ok := tree.FindNode(FPoint{X: -100, Y: -100, Z: -100})
	c.Check(ok, check.Equals, false)
}

func (*OctreeSuite) TestBuildSpansMultipleLayers(c *check.C) {
	b := NewBuilder(1.0)
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{15, 15, 15}, 1.0))
	tree := b.Build()

	c.Assert(len(tree.layers) > 1, check.Equals, true)

	near, ok := tree.FindNode(FPoint{X: 0.5, Y: 0.5, Z: 0.5})
	c.Assert(ok, check.Equals, true)
	c.Assert(near.Subnode, check.NotNil)

	far, ok := tree.FindNode(FPoint{X: 15.5, Y: 15.5, Z: 15.5})
	c.Assert(ok, check.Equals, true)
	c.Assert(far.Subnode, check.NotNil)
}

func (*OctreeSuite) TestSuccessorsOfOccupiedLeafIncludeNeighbor(c *check.C) {
	b := NewBuilder(1.0)
	// Two voxels spanning the full octree force a real multi-layer tree,
	// so the near-origin leaf has siblings wired within its own octet.
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{15, 15, 15}, 1.0))
	tree := b.Build()

	root, ok := tree.FindNode(FPoint{X: 0.5, Y: 0.5, Z: 0.5})
	c.Assert(ok, check.Equals, true)

	// Walk up from the subnode to its containing leaf to look at its
	// neighbors directly.
	leafLink := Link{Layer: root.Layer, Node: root.Node}
	successors := tree.Successors(leafLink)
	c.Check(len(successors) > 0, check.Equals, true)
}

func (*OctreeSuite) TestIsInLineOfSightBlockedByOccupiedVoxel(c *check.C) {
	b := NewBuilder(1.0)
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	tree := b.Build()

	blocked := tree.IsInLineOfSight(FPoint{X: -1, Y: 0.5, Z: 0.5}, FPoint{X: 2, Y: 0.5, Z: 0.5})
	c.Check(blocked, check.Equals, false)
}

func (*OctreeSuite) TestIsInLineOfSightClearPath(c *check.C) {
	b := NewBuilder(1.0)
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	tree := b.Build()

	clear := tree.IsInLineOfSight(FPoint{X: 0.5, Y: 2.5, Z: 0.5}, FPoint{X: 3.5, Y: 2.5, Z: 0.5})
	c.Check(clear, check.Equals, true)
}

func (*OctreeSuite) TestNodePositionIsCenterOfVoxel(c *check.C) {
	b := NewBuilder(1.0)
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	tree := b.Build()

	link, ok := tree.FindNode(FPoint{X: 0.5, Y: 0.5, Z: 0.5})
	c.Assert(ok, check.Equals, true)

	pos := tree.NodePosition(link)
	c.Check(pos, check.Equals, FPoint{X: 0.5, Y: 0.5, Z: 0.5})
}
