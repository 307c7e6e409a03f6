// Package svo implements a sparse voxel octree tuned for 3D flight
// navigation: building an occupancy structure from voxelized meshes,
// locating the node or leaf-subnode at a world position, walking to
// free-space neighbors across resolution boundaries, and testing line of
// sight between two points via Cohen-Sutherland clipping.
package svo
