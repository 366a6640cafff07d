package skirt

import "errors"

// Errors returned by border generation. Each is wrapped with detail, so
// compare with errors.Is.
var (
	// ErrMeshNotReadable indicates the source geometry cannot be read: the
	// source is nil, keeps its data off the CPU, or has a malformed index list.
	ErrMeshNotReadable = errors.New("skirt: source mesh is not readable")

	// ErrInsufficientBoundaryEdges indicates fewer than 3 boundary edges
	// survived seam removal, so there is no loop to extrude.
	ErrInsufficientBoundaryEdges = errors.New("skirt: fewer than 3 boundary edges")

	// ErrTraversalGaveUp indicates the boundary could not be walked as one
	// closed loop within the pass budget.
	ErrTraversalGaveUp = errors.New("skirt: boundary traversal gave up")

	// ErrInvalidOptions indicates an Options value that cannot be used.
	ErrInvalidOptions = errors.New("skirt: invalid options")
)
