package svo

import "fmt"

// VoxelizeError reports a problem converting external geometry into voxels.
// It mirrors the external voxelizer's error contract; this package never
// produces one itself, since it accepts voxels rather than meshes.
type VoxelizeError struct {
	msg string
}

func NewVoxelizeError(msg string) *VoxelizeError {
	return &VoxelizeError{msg: msg}
}

func (e *VoxelizeError) Error() string {
	return fmt.Sprintf("svo: voxelize error: %s", e.msg)
}

// octreeInvariantError reports a violated structural precondition in a
// built octree layer, e.g. an incomplete octet of children. Building from
// well-formed VoxelizedMesh input can never trigger this; it signals a
// defect in the builder, not a recoverable input error, so callers see it
// as a panic rather than a returned error.
type octreeInvariantError struct {
	msg string
}

func (e octreeInvariantError) Error() string { return e.msg }

func panicInvariant(msg string) {
	panic(octreeInvariantError{msg: msg})
}
