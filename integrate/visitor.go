package integrate

import "github.com/terraloom/meshbridge/meshmodel"

// Visitor receives one callback per corefinement event, letting package
// integrate control exactly how attributes propagate across a boolean
// operation. A Visitor method is never called
// concurrently; the mesh it is handed is safe to mutate in place.
type Visitor interface {
	// FaceSplit is called when an existing face f is being subdivided by
	// the clip; oldFace is still present in the mesh at call time.
	FaceSplit(m *meshmodel.Mesh, oldFace int)
	// SubfaceCreated is called once per new face produced by splitting
	// oldFace, immediately after the new face is appended to m.
	SubfaceCreated(m *meshmodel.Mesh, oldFace, newFace int)
	// FaceCopy is called when a face is copied in from the other operand
	// mesh with no splitting required.
	FaceCopy(m *meshmodel.Mesh, sourceFace, newFace int, fromTube bool)
	// EdgeSplit/EdgeCopy are called for every edge touched by the clip,
	// so the visitor can clear stale `blocked` flags.
	EdgeSplit(m *meshmodel.Mesh, key meshmodel.EdgeKey)
	EdgeCopy(m *meshmodel.Mesh, key meshmodel.EdgeKey)
}

// AttributeVisitor is the standard Visitor: it
// copies (label, path, true_face, new_face) from the originating face to
// every subface, marks faces copied in from the tube as new_face = true,
// and clears blocked on every touched edge.
type AttributeVisitor struct {
	// TubeLabelOverride, when set, overrides the copied face's label for faces
	// copied in from the tube operand.
	TubeLabelOverride *meshmodel.Label
}

func (v *AttributeVisitor) FaceSplit(m *meshmodel.Mesh, oldFace int) {
	m.ClearBlocked(oldFace)
}

func (v *AttributeVisitor) SubfaceCreated(m *meshmodel.Mesh, oldFace, newFace int) {
	m.Label[newFace] = m.Label[oldFace]
	m.Path[newFace] = m.Path[oldFace]
	m.TrueFace[newFace] = m.TrueFace[oldFace]
	m.NewFace[newFace] = m.NewFace[oldFace]
	m.ClearBlocked(newFace)
}

func (v *AttributeVisitor) FaceCopy(m *meshmodel.Mesh, sourceFace, newFace int, fromTube bool) {
	if fromTube {
		m.NewFace[newFace] = true
		if v.TubeLabelOverride != nil {
			m.Label[newFace] = *v.TubeLabelOverride
		}
	}
	m.ClearBlocked(newFace)
}

func (v *AttributeVisitor) EdgeSplit(m *meshmodel.Mesh, key meshmodel.EdgeKey) {
	delete(m.Blocked, key)
}

func (v *AttributeVisitor) EdgeCopy(m *meshmodel.Mesh, key meshmodel.EdgeKey) {
	delete(m.Blocked, key)
}
