package meshmodel

import "errors"

// Sentinel errors for meshmodel operations, one var block per concern.
var (
	// ErrFaceNotFound indicates a face handle outside [0, len(Faces)).
	ErrFaceNotFound = errors.New("meshmodel: face not found")

	// ErrVertexNotFound indicates a vertex handle outside [0, len(Vertices)).
	ErrVertexNotFound = errors.New("meshmodel: vertex not found")

	// ErrDegenerateFace indicates a face whose three vertex handles are
	// not pairwise distinct.
	ErrDegenerateFace = errors.New("meshmodel: degenerate face")

	// ErrMissingExactCoords indicates ExactVertices was not populated
	// before a corefinement operation that requires it.
	ErrMissingExactCoords = errors.New("meshmodel: exact coordinates not populated")
)
