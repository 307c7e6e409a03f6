package svo

import (
	"testing"

	"gopkg.in/check.v1"
)

func TestBuilder(t *testing.T) { check.TestingT(t) }

type BuilderSuite struct{}

var _ = check.Suite(&BuilderSuite{})

func (*BuilderSuite) TestNextPowerOfTwo(c *check.C) {
	c.Check(nextPowerOfTwo(0), check.Equals, uint32(1))
	c.Check(nextPowerOfTwo(1), check.Equals, uint32(1))
	c.Check(nextPowerOfTwo(4), check.Equals, uint32(4))
	c.Check(nextPowerOfTwo(5), check.Equals, uint32(8))
	c.Check(nextPowerOfTwo(15), check.Equals, uint32(16))
	c.Check(nextPowerOfTwo(17), check.Equals, uint32(32))
}

func (*BuilderSuite) TestGetOriginAndSizeDegenerate(c *check.C) {
	origin, size := getOriginAndSize(IPoint{5, 5, 5}, IPoint{5, 5, 5})
	c.Check(origin, check.Equals, IPoint{5, 5, 5})
	c.Check(size, check.Equals, uint32(1))
}

func (*BuilderSuite) TestGetOriginAndSizeRoundsUp(c *check.C) {
	origin, size := getOriginAndSize(IPoint{0, 0, 0}, IPoint{9, 3, 1})
	c.Check(origin, check.Equals, IPoint{0, 0, 0})
	c.Check(size, check.Equals, uint32(16))
}

func (*BuilderSuite) TestGetMinMaxEmpty(c *check.C) {
	min, max := getMinMax(nil)
	c.Check(min, check.Equals, IPointZero)
	c.Check(max, check.Equals, IPointZero)
}

func (*BuilderSuite) TestGetMinMaxTracksExtremes(c *check.C) {
	min, max := getMinMax([]IPoint{{1, -2, 3}, {-5, 4, 0}, {2, 2, 9}})
	c.Check(min, check.Equals, IPoint{-5, -2, 0})
	c.Check(max, check.Equals, IPoint{2, 4, 9})
}

func (*BuilderSuite) TestCollectVoxelsDeduplicatesAcrossMeshes(c *check.C) {
	b := NewBuilder(1.0)
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{1, 0, 0}, 1.0))

	voxels := b.collectVoxels()
	c.Assert(voxels, check.HasLen, 2)
}

func (*BuilderSuite) TestSetBoundsExpandsOriginOutward(c *check.C) {
	b := NewBuilder(1.0)
	b.AddMesh(singleVoxelMesh(UPoint{0, 0, 0}, IPoint{0, 0, 0}, 1.0))
	b.SetBounds(FPoint{X: -5, Y: -5, Z: -5}, FPoint{X: 5, Y: 5, Z: 5})

	tree := b.Build()
	c.Check(tree.origin, check.Equals, IPoint{-5, -5, -5})
}

func (*BuilderSuite) TestBuildWithNoVoxelsProducesEmptyOctree(c *check.C) {
	b := NewBuilder(1.0)
	tree := b.Build()

	c.Assert(tree.layers, check.HasLen, 1)
	c.Check(tree.layers[0], check.HasLen, 0)
	c.Check(tree.leafs, check.HasLen, 0)
}

func (*BuilderSuite) TestValidateAllChildrenPresentRejectsIncompleteOctet(c *check.C) {
	nodes := []Node{
		NewLeafNode(UPoint{0, 0, 0}),
		NewLeafNode(UPoint{4, 0, 0}),
	}
	c.Check(validateAllChildrenPresent(nodes, 4), check.Equals, false)
}

func (*BuilderSuite) TestValidateAllChildrenPresentAcceptsCompleteOctet(c *check.C) {
	nodes := make([]Node, 8)
	for i, offset := range octantOffsets {
		nodes[i] = NewLeafNode(UPoint{
			X: uint32(offset[0]) * 4,
			Y: uint32(offset[1]) * 4,
			Z: uint32(offset[2]) * 4,
		})
	}
	c.Check(validateAllChildrenPresent(nodes, 4), check.Equals, true)
}
