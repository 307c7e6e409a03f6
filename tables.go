package svo

// Face indices used throughout this package:
//
//	0 = Right  (+X)
//	1 = Back   (+Z)
//	2 = Left   (-X)
//	3 = Front  (-Z)
//	4 = Bottom (+Y)
//	5 = Top    (-Y)

// octantOffsets gives the (x, y, z) offset of each of a node's 8 children,
// indexed by their Morton code (0-7), relative to the parent's origin.
var octantOffsets = [8][3]uint8{
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{1, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{0, 1, 1},
	{1, 1, 1},
}

// neighborConnections maps a face index to the Morton codes of the 4
// children on that face and the Morton codes of the corresponding 4
// children on the neighboring node's opposite face, in matching order.
var neighborConnections = [6]struct {
	From [4]int
	To   [4]int
}{
	{From: [4]int{1, 5, 3, 7}, To: [4]int{0, 4, 2, 6}},
	{From: [4]int{4, 6, 5, 7}, To: [4]int{0, 2, 1, 3}},
	{From: [4]int{0, 4, 2, 6}, To: [4]int{1, 5, 3, 7}},
	{From: [4]int{0, 2, 1, 3}, To: [4]int{4, 6, 5, 7}},
	{From: [4]int{2, 6, 3, 7}, To: [4]int{0, 4, 1, 5}},
	{From: [4]int{0, 4, 1, 5}, To: [4]int{2, 6, 3, 7}},
}

// neighborSubnode is one entry of neighborSubnodes: the position of a
// subnode relative to the parent node neighboring a given face, plus its
// Morton code index.
type neighborSubnode struct {
	X, Y, Z uint8
	Index   uint8
}

// neighborSubnodes gives, for each of the 6 faces, the 16 subnode positions
// and Morton indices that lie on the opposite face of a leaf's 4x4x4 cube:
// the face that a leaf neighboring across face f presents back (entry 0,
// for +X, lists the x=0 subnodes).
var neighborSubnodes = [6][16]neighborSubnode{
	{
		{0, 0, 0, 0}, {0, 0, 1, 4}, {0, 0, 2, 32}, {0, 0, 3, 36},
		{0, 1, 0, 2}, {0, 1, 1, 6}, {0, 1, 2, 34}, {0, 1, 3, 38},
		{0, 2, 0, 16}, {0, 2, 1, 20}, {0, 2, 2, 48}, {0, 2, 3, 52},
		{0, 3, 0, 18}, {0, 3, 1, 22}, {0, 3, 2, 50}, {0, 3, 3, 54},
	},
	{
		{0, 0, 0, 0}, {1, 0, 0, 1}, {2, 0, 0, 8}, {3, 0, 0, 9},
		{0, 1, 0, 2}, {1, 1, 0, 3}, {2, 1, 0, 10}, {3, 1, 0, 11},
		{0, 2, 0, 16}, {1, 2, 0, 17}, {2, 2, 0, 24}, {3, 2, 0, 25},
		{0, 3, 0, 18}, {1, 3, 0, 19}, {2, 3, 0, 26}, {3, 3, 0, 27},
	},
	{
		{3, 0, 0, 9}, {3, 0, 1, 13}, {3, 0, 2, 41}, {3, 0, 3, 45},
		{3, 1, 0, 11}, {3, 1, 1, 15}, {3, 1, 2, 43}, {3, 1, 3, 47},
		{3, 2, 0, 25}, {3, 2, 1, 29}, {3, 2, 2, 57}, {3, 2, 3, 61},
		{3, 3, 0, 27}, {3, 3, 1, 31}, {3, 3, 2, 59}, {3, 3, 3, 63},
	},
	{
		{0, 0, 3, 36}, {1, 0, 3, 37}, {2, 0, 3, 44}, {3, 0, 3, 45},
		{0, 1, 3, 38}, {1, 1, 3, 39}, {2, 1, 3, 46}, {3, 1, 3, 47},
		{0, 2, 3, 52}, {1, 2, 3, 53}, {2, 2, 3, 60}, {3, 2, 3, 61},
		{0, 3, 3, 54}, {1, 3, 3, 55}, {2, 3, 3, 62}, {3, 3, 3, 63},
	},
	{
		{0, 0, 0, 0}, {1, 0, 0, 1}, {2, 0, 0, 8}, {3, 0, 0, 9},
		{0, 0, 1, 4}, {1, 0, 1, 5}, {2, 0, 1, 12}, {3, 0, 1, 13},
		{0, 0, 2, 32}, {1, 0, 2, 33}, {2, 0, 2, 40}, {3, 0, 2, 41},
		{0, 0, 3, 36}, {1, 0, 3, 37}, {2, 0, 3, 44}, {3, 0, 3, 45},
	},
	{
		{0, 3, 0, 18}, {1, 3, 0, 19}, {2, 3, 0, 26}, {3, 3, 0, 27},
		{0, 3, 1, 22}, {1, 3, 1, 23}, {2, 3, 1, 30}, {3, 3, 1, 31},
		{0, 3, 2, 50}, {1, 3, 2, 51}, {2, 3, 2, 58}, {3, 3, 2, 59},
		{0, 3, 3, 54}, {1, 3, 3, 55}, {2, 3, 3, 62}, {3, 3, 3, 63},
	},
}

// siblingConnection is one entry of siblingConnections: two face indices
// through which two of a node's 8 children are connected, plus the Morton
// code offsets of those two children relative to the parent.
type siblingConnection struct {
	FaceA, FaceB     int
	OffsetA, OffsetB int
}

// siblingConnections lists the 12 face-adjacencies between the 8 children
// of a single node.
var siblingConnections = [12]siblingConnection{
	{0, 2, 0, 1},
	{4, 5, 0, 2},
	{1, 3, 0, 4},
	{4, 5, 1, 3},
	{1, 3, 1, 5},
	{0, 2, 2, 3},
	{1, 3, 2, 6},
	{1, 3, 3, 7},
	{0, 2, 4, 5},
	{4, 5, 4, 6},
	{4, 5, 5, 7},
	{0, 2, 6, 7},
}

// subnodeNeighbors gives, for each of the 64 subnodes of a leaf (indexed in
// Morton order), the Morton indices of its 6 face neighbors within the same
// leaf, wrapping around the cube's edges.
var subnodeNeighbors = [64][6]uint8{
	{1, 4, 9, 36, 2, 18}, {8, 5, 0, 37, 3, 19}, {3, 6, 11, 38, 16, 0}, {10, 7, 2, 39, 17, 1},
	{5, 32, 13, 0, 6, 22}, {12, 33, 4, 1, 7, 23}, {7, 34, 15, 2, 20, 4}, {14, 35, 6, 3, 21, 5},
	{9, 12, 1, 44, 10, 26}, {0, 13, 8, 45, 11, 27}, {11, 14, 3, 46, 24, 8}, {2, 15, 10, 47, 25, 9},
	{13, 40, 5, 8, 14, 30}, {4, 41, 12, 9, 15, 31}, {15, 42, 7, 10, 28, 12}, {6, 43, 14, 11, 29, 13},
	{17, 20, 25, 52, 18, 2}, {24, 21, 16, 53, 19, 3}, {19, 22, 27, 54, 0, 16}, {26, 23, 18, 55, 1, 17},
	{21, 48, 29, 16, 22, 6}, {28, 49, 20, 17, 23, 7}, {23, 50, 31, 18, 4, 20}, {30, 51, 22, 19, 5, 21},
	{25, 28, 17, 60, 26, 10}, {16, 29, 24, 61, 27, 11}, {27, 30, 19, 62, 8, 24}, {18, 31, 26, 63, 9, 25},
	{29, 56, 21, 24, 30, 14}, {20, 57, 28, 25, 31, 15}, {31, 58, 23, 26, 12, 28}, {22, 59, 30, 27, 13, 29},
	{33, 36, 41, 4, 34, 50}, {40, 37, 32, 5, 35, 51}, {35, 38, 43, 6, 48, 32}, {42, 39, 34, 7, 49, 33},
	{37, 0, 45, 32, 38, 54}, {44, 1, 36, 33, 39, 55}, {39, 2, 47, 34, 52, 36}, {46, 3, 38, 35, 53, 37},
	{41, 44, 33, 12, 42, 58}, {32, 45, 40, 13, 43, 59}, {43, 46, 35, 14, 56, 40}, {34, 47, 42, 15, 57, 41},
	{45, 8, 37, 40, 46, 62}, {36, 9, 44, 41, 47, 63}, {47, 10, 39, 42, 60, 44}, {38, 11, 46, 43, 61, 45},
	{49, 52, 57, 20, 50, 34}, {56, 53, 48, 21, 51, 35}, {51, 54, 59, 22, 32, 48}, {58, 55, 50, 23, 33, 49},
	{53, 16, 61, 48, 54, 38}, {60, 17, 52, 49, 55, 39}, {55, 18, 63, 50, 36, 52}, {62, 19, 54, 51, 37, 53},
	{57, 60, 49, 28, 58, 42}, {48, 61, 56, 29, 59, 43}, {59, 62, 51, 30, 40, 56}, {50, 63, 58, 31, 41, 57},
	{61, 24, 53, 56, 62, 46}, {52, 25, 60, 57, 63, 47}, {63, 26, 55, 58, 44, 60}, {54, 27, 62, 59, 45, 61},
}

// neighborPositionOffsets gives the (x, y, z) offset of each of a node's 6
// neighbors, indexed by face.
var neighborPositionOffsets = [6][3]int32{
	{1, 0, 0},
	{0, 0, 1},
	{-1, 0, 0},
	{0, 0, -1},
	{0, 1, 0},
	{0, -1, 0},
}

// subnodePositions gives the (x, y, z) position of each of a leaf's 64
// subnodes, indexed by their Morton code.
var subnodePositions = [64][3]uint8{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	{2, 0, 0}, {3, 0, 0}, {2, 1, 0}, {3, 1, 0}, {2, 0, 1}, {3, 0, 1}, {2, 1, 1}, {3, 1, 1},
	{0, 2, 0}, {1, 2, 0}, {0, 3, 0}, {1, 3, 0}, {0, 2, 1}, {1, 2, 1}, {0, 3, 1}, {1, 3, 1},
	{2, 2, 0}, {3, 2, 0}, {2, 3, 0}, {3, 3, 0}, {2, 2, 1}, {3, 2, 1}, {2, 3, 1}, {3, 3, 1},
	{0, 0, 2}, {1, 0, 2}, {0, 1, 2}, {1, 1, 2}, {0, 0, 3}, {1, 0, 3}, {0, 1, 3}, {1, 1, 3},
	{2, 0, 2}, {3, 0, 2}, {2, 1, 2}, {3, 1, 2}, {2, 0, 3}, {3, 0, 3}, {2, 1, 3}, {3, 1, 3},
	{0, 2, 2}, {1, 2, 2}, {0, 3, 2}, {1, 3, 2}, {0, 2, 3}, {1, 2, 3}, {0, 3, 3}, {1, 3, 3},
	{2, 2, 2}, {3, 2, 2}, {2, 3, 2}, {3, 3, 2}, {2, 2, 3}, {3, 2, 3}, {2, 3, 3}, {3, 3, 3},
}
