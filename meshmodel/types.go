package meshmodel

import (
	"fmt"

	"github.com/terraloom/meshbridge/geom"
)

// Label classifies a face's land-cover/infrastructure class.
type Label int

// The land-cover/infrastructure label set, plus OTHER/UNKNOWN as the two
// non-infrastructure placeholders data-attachment residuals treat
// specially.
const (
	LabelOther Label = iota
	LabelUnknown
	LabelLowVeg
	LabelHighVeg
	LabelBuilding
	LabelRoad
	LabelRail
	LabelWater
	LabelLevelCrossing
)

// String renders a Label for diagnostics and test failure messages.
func (l Label) String() string {
	switch l {
	case LabelOther:
		return "OTHER"
	case LabelUnknown:
		return "UNKNOWN"
	case LabelLowVeg:
		return "LOW_VEG"
	case LabelHighVeg:
		return "HIGH_VEG"
	case LabelBuilding:
		return "BUILDING"
	case LabelRoad:
		return "ROAD"
	case LabelRail:
		return "RAIL"
	case LabelWater:
		return "WATER"
	case LabelLevelCrossing:
		return "LEVEL_CROSSING"
	default:
		return "INVALID"
	}
}

// IsNeutral reports whether l is not a "real" infrastructure/cover class —
// used by the surface-attachment residual's label-mismatch penalty.
func (l Label) IsNeutral() bool {
	return l == LabelOther || l == LabelUnknown
}

// EdgeKey canonically identifies an undirected mesh edge by its two
// vertex handles, always stored with From<To (the "id(source) <
// id(target)" convention, reused here for mesh edges).
type EdgeKey struct {
	From, To int
}

// NewEdgeKey builds a canonical EdgeKey from two vertex handles in any
// order.
func NewEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{From: a, To: b}
}

// Face is a triangle referencing three vertex handles, in winding order.
type Face struct {
	V0, V1, V2 int
}

// Mesh is the arena-indexed 2-manifold triangle surface mesh.
// Faces and Vertices are addressed by their index into the
// respective slice; every attribute below is a total mapping over that
// index space, owned by the Mesh.
type Mesh struct {
	Vertices      []geom.Point3
	ExactVertices []geom.ExactPoint3 // populated lazily; see EnsureExact
	Faces         []Face

	// Per-face attributes.
	Label            []Label
	Path             []int // -1 if not part of a path
	TrueFace         []bool
	NewFace          []bool
	Points           [][]int // indices into an external point cloud
	NormalAngleCoef  []float64

	// Per-edge attribute, keyed by canonical EdgeKey.
	Blocked map[EdgeKey]bool

	hasExact bool
}

// NewMesh returns an empty mesh with all attribute maps initialized.
func NewMesh() *Mesh {
	return &Mesh{
		Blocked: make(map[EdgeKey]bool),
	}
}

// AddVertex appends a vertex and returns its handle.
func (m *Mesh) AddVertex(p geom.Point3) int {
	m.Vertices = append(m.Vertices, p)
	if m.hasExact {
		m.ExactVertices = append(m.ExactVertices, geom.NewExactPoint3(p.X, p.Y, p.Z))
	}
	return len(m.Vertices) - 1
}

// VertexAt returns the vertex at handle i, or ErrVertexNotFound if i is
// outside [0, len(Vertices)).
func (m *Mesh) VertexAt(i int) (geom.Point3, error) {
	if i < 0 || i >= len(m.Vertices) {
		return geom.Point3{}, ErrVertexNotFound
	}
	return m.Vertices[i], nil
}

// FaceAt returns the face at handle i, or ErrFaceNotFound if i is
// outside [0, len(Faces)).
func (m *Mesh) FaceAt(i int) (Face, error) {
	if i < 0 || i >= len(m.Faces) {
		return Face{}, ErrFaceNotFound
	}
	return m.Faces[i], nil
}

// AddFace appends a triangle face with the given attributes and returns
// its handle. Panics on an out-of-range vertex handle or a degenerate
// (repeated-vertex) face: both are programming errors and should fail
// fast rather than silently corrupt the mesh.
func (m *Mesh) AddFace(v0, v1, v2 int, label Label, path int, trueFace, newFace bool) int {
	for _, v := range [3]int{v0, v1, v2} {
		if v < 0 || v >= len(m.Vertices) {
			panic(fmt.Errorf("meshmodel: AddFace: %w: vertex %d, have %d vertices", ErrVertexNotFound, v, len(m.Vertices)))
		}
	}
	if v0 == v1 || v1 == v2 || v0 == v2 {
		panic(fmt.Errorf("meshmodel: AddFace: %w", ErrDegenerateFace))
	}
	m.Faces = append(m.Faces, Face{V0: v0, V1: v1, V2: v2})
	m.Label = append(m.Label, label)
	m.Path = append(m.Path, path)
	m.TrueFace = append(m.TrueFace, trueFace)
	m.NewFace = append(m.NewFace, newFace)
	m.Points = append(m.Points, nil)
	m.NormalAngleCoef = append(m.NormalAngleCoef, m.computeNormalAngleCoef(v0, v1, v2))
	return len(m.Faces) - 1
}

func (m *Mesh) computeNormalAngleCoef(v0, v1, v2 int) float64 {
	return geom.NormalAngleCoefficient(m.Vertices[v0], m.Vertices[v1], m.Vertices[v2], 10)
}

// Triangle returns the three vertex positions of face f.
func (m *Mesh) Triangle(f int) (a, b, c geom.Point3) {
	face := m.Faces[f]
	return m.Vertices[face.V0], m.Vertices[face.V1], m.Vertices[face.V2]
}

// EnsureExact populates ExactVertices from Vertices if not already
// present, idempotently. Called once per mesh before any corefinement
// pass.
func (m *Mesh) EnsureExact() {
	if m.hasExact {
		return
	}
	m.ExactVertices = make([]geom.ExactPoint3, len(m.Vertices))
	for i, v := range m.Vertices {
		m.ExactVertices[i] = geom.NewExactPoint3(v.X, v.Y, v.Z)
	}
	m.hasExact = true
}

// SyncInexactFromExact overwrites Vertices with the float64 projection of
// ExactVertices. Called once at the end of a mesh's final integration
// pass. Returns ErrMissingExactCoords if EnsureExact was never called.
func (m *Mesh) SyncInexactFromExact() error {
	if !m.hasExact {
		return ErrMissingExactCoords
	}
	for i, e := range m.ExactVertices {
		m.Vertices[i] = e.Inexact()
	}
	return nil
}

// AABBTriangles builds the geom.Triangle slice for an AABB tree over the
// whole mesh.
func (m *Mesh) AABBTriangles() []geom.Triangle {
	tris := make([]geom.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		tris[i] = geom.Triangle{A: m.Vertices[f.V0], B: m.Vertices[f.V1], C: m.Vertices[f.V2], Face: i}
	}
	return tris
}

// ClearBlocked clears the blocked flag on every edge of face f — called
// by corefinement visitors on any edge touched by a split or copy.
func (m *Mesh) ClearBlocked(f int) {
	face := m.Faces[f]
	delete(m.Blocked, NewEdgeKey(face.V0, face.V1))
	delete(m.Blocked, NewEdgeKey(face.V1, face.V2))
	delete(m.Blocked, NewEdgeKey(face.V2, face.V0))
}

// CountTrueFaces returns Σ true_face, used by integration-invariant
// tests.
func (m *Mesh) CountTrueFaces() int {
	n := 0
	for _, v := range m.TrueFace {
		if v {
			n++
		}
	}
	return n
}
