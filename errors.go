package pattern

import "errors"

// Errors returned by pattern construction, image access and rendering.
// Returned errors wrap one of these sentinels; use errors.Is to test.
var (
	// ErrInvalidArgument is returned for a non-positive radius, width or
	// height, or a zero scale factor.
	ErrInvalidArgument = errors.New("pattern: invalid argument")

	// ErrOutOfBounds is returned when a pixel coordinate or flat index lies
	// outside an image.
	ErrOutOfBounds = errors.New("pattern: out of bounds")

	// ErrUnsupportedConfiguration is returned for an anti-aliasing quality
	// level that has no kernel table.
	ErrUnsupportedConfiguration = errors.New("pattern: unsupported configuration")

	// ErrTreeBuilt is returned when adding to a quadtree after BuildTree.
	ErrTreeBuilt = errors.New("pattern: quadtree already built")
)
