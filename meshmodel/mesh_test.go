package meshmodel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terraloom/meshbridge/geom"
)

func TestAddFaceAssignsAttributesAndRejectsDegenerate(t *testing.T) {
	m := NewMesh()
	v0 := m.AddVertex(geom.NewPoint3(0, 0, 0))
	v1 := m.AddVertex(geom.NewPoint3(1, 0, 0))
	v2 := m.AddVertex(geom.NewPoint3(0, 1, 0))

	f := m.AddFace(v0, v1, v2, LabelRoad, 3, true, false)
	require.Equal(t, LabelRoad, m.Label[f])
	require.Equal(t, 3, m.Path[f])
	require.True(t, m.TrueFace[f])
	require.False(t, m.NewFace[f])
	require.Len(t, m.Points[f], 0)

	require.Panics(t, func() {
		m.AddFace(v0, v0, v1, LabelRoad, 0, true, false)
	})
}

func TestEnsureExactAndSync(t *testing.T) {
	m := NewMesh()
	m.AddVertex(geom.NewPoint3(1.5, -2.25, 10))
	m.EnsureExact()
	require.Len(t, m.ExactVertices, 1)

	m.ExactVertices[0] = geom.NewExactPoint3(7, 8, 9)
	require.NoError(t, m.SyncInexactFromExact())
	require.InDelta(t, 7, m.Vertices[0].X, 1e-9)
	require.InDelta(t, 8, m.Vertices[0].Y, 1e-9)
	require.InDelta(t, 9, m.Vertices[0].Z, 1e-9)
}

func TestSyncInexactFromExactWithoutEnsureExactErrors(t *testing.T) {
	m := NewMesh()
	m.AddVertex(geom.NewPoint3(1, 2, 3))
	require.ErrorIs(t, m.SyncInexactFromExact(), ErrMissingExactCoords)
}

func TestAddFaceRejectsOutOfRangeVertex(t *testing.T) {
	m := NewMesh()
	v0 := m.AddVertex(geom.NewPoint3(0, 0, 0))
	v1 := m.AddVertex(geom.NewPoint3(1, 0, 0))

	require.Panics(t, func() {
		m.AddFace(v0, v1, 99, LabelRoad, 0, true, false)
	})
}

func TestVertexAtAndFaceAtBoundsChecks(t *testing.T) {
	m := NewMesh()
	v0 := m.AddVertex(geom.NewPoint3(0, 0, 0))
	v1 := m.AddVertex(geom.NewPoint3(1, 0, 0))
	v2 := m.AddVertex(geom.NewPoint3(0, 1, 0))
	f := m.AddFace(v0, v1, v2, LabelRoad, 0, true, false)

	p, err := m.VertexAt(v0)
	require.NoError(t, err)
	require.Equal(t, m.Vertices[v0], p)

	_, err = m.VertexAt(99)
	require.ErrorIs(t, err, ErrVertexNotFound)

	face, err := m.FaceAt(f)
	require.NoError(t, err)
	require.Equal(t, Face{V0: v0, V1: v1, V2: v2}, face)

	_, err = m.FaceAt(99)
	require.ErrorIs(t, err, ErrFaceNotFound)
}

func TestClearBlockedClearsAllThreeEdges(t *testing.T) {
	m := NewMesh()
	v0 := m.AddVertex(geom.NewPoint3(0, 0, 0))
	v1 := m.AddVertex(geom.NewPoint3(1, 0, 0))
	v2 := m.AddVertex(geom.NewPoint3(0, 1, 0))
	f := m.AddFace(v0, v1, v2, LabelRoad, -1, true, false)

	m.Blocked[NewEdgeKey(v0, v1)] = true
	m.Blocked[NewEdgeKey(v1, v2)] = true
	m.Blocked[NewEdgeKey(v2, v0)] = true

	m.ClearBlocked(f)
	require.Empty(t, m.Blocked)
}

func TestCountTrueFaces(t *testing.T) {
	m := NewMesh()
	v0 := m.AddVertex(geom.NewPoint3(0, 0, 0))
	v1 := m.AddVertex(geom.NewPoint3(1, 0, 0))
	v2 := m.AddVertex(geom.NewPoint3(0, 1, 0))
	v3 := m.AddVertex(geom.NewPoint3(1, 1, 0))
	m.AddFace(v0, v1, v2, LabelRoad, -1, true, false)
	m.AddFace(v1, v2, v3, LabelRoad, -1, false, true)
	require.Equal(t, 1, m.CountTrueFaces())
}
