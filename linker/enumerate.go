package linker

import "github.com/terraloom/meshbridge/skeleton"

// enumerateSamePath builds the self-pair candidates for one path: every
// unordered pair of distinct skeleton vertices (ordered by vertex index to
// avoid generating both (i,j) and (j,i)), plus every (vertex, halfedge)
// pair whose halfedge does not already touch that vertex.
func enumerateSamePath(p Path) []candidate {
	if p.Skeleton == nil {
		return nil
	}
	g := p.Skeleton
	verts := g.SkeletonVertices()
	var out []candidate

	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			va, vb := verts[i], verts[j]
			dsq := distVV(g.Vertices[va].Point, g.Vertices[vb].Point)
			out = append(out, candidate{
				A:      Endpoint{Path: p.ID, Point: skeleton.VertexPoint(p.ID, va, g.Vertices[va].Point)},
				B:      Endpoint{Path: p.ID, Point: skeleton.VertexPoint(p.ID, vb, g.Vertices[vb].Point)},
				DistSq: dsq,
			})
		}
	}

	edges := g.InnerBisectorEdges()
	for _, v := range verts {
		vp := g.Vertices[v].Point
		for _, h := range edges {
			he := g.Halfedges[h]
			if he.From == v || he.To == v {
				continue
			}
			foot, ok := footOnSegment(vp, g.Vertices[he.From].Point, g.Vertices[he.To].Point)
			if !ok {
				continue
			}
			out = append(out, candidate{
				A:      Endpoint{Path: p.ID, Point: skeleton.VertexPoint(p.ID, v, vp)},
				B:      Endpoint{Path: p.ID, Point: skeleton.HalfedgePoint(p.ID, h, foot)},
				DistSq: vp.SquaredDist(foot),
			})
		}
	}
	return out
}

// enumerateCrossPath builds the cross-path candidates across two distinct
// paths: vertex-vertex, vertex-halfedge, and halfedge-vertex.
func enumerateCrossPath(a, b Path) []candidate {
	if a.Skeleton == nil || b.Skeleton == nil {
		return nil
	}
	gA, gB := a.Skeleton, b.Skeleton
	vertsA, vertsB := gA.SkeletonVertices(), gB.SkeletonVertices()
	edgesA, edgesB := gA.InnerBisectorEdges(), gB.InnerBisectorEdges()
	var out []candidate

	for _, va := range vertsA {
		pa := gA.Vertices[va].Point
		for _, vb := range vertsB {
			pb := gB.Vertices[vb].Point
			out = append(out, candidate{
				A:      Endpoint{Path: a.ID, Point: skeleton.VertexPoint(a.ID, va, pa)},
				B:      Endpoint{Path: b.ID, Point: skeleton.VertexPoint(b.ID, vb, pb)},
				DistSq: distVV(pa, pb),
			})
		}
	}

	for _, va := range vertsA {
		pa := gA.Vertices[va].Point
		for _, hb := range edgesB {
			he := gB.Halfedges[hb]
			foot, ok := footOnSegment(pa, gB.Vertices[he.From].Point, gB.Vertices[he.To].Point)
			if !ok {
				continue
			}
			out = append(out, candidate{
				A:      Endpoint{Path: a.ID, Point: skeleton.VertexPoint(a.ID, va, pa)},
				B:      Endpoint{Path: b.ID, Point: skeleton.HalfedgePoint(b.ID, hb, foot)},
				DistSq: pa.SquaredDist(foot),
			})
		}
	}

	for _, ha := range edgesA {
		he := gA.Halfedges[ha]
		for _, vb := range vertsB {
			pb := gB.Vertices[vb].Point
			foot, ok := footOnSegment(pb, gA.Vertices[he.From].Point, gA.Vertices[he.To].Point)
			if !ok {
				continue
			}
			out = append(out, candidate{
				A:      Endpoint{Path: a.ID, Point: skeleton.HalfedgePoint(a.ID, ha, foot)},
				B:      Endpoint{Path: b.ID, Point: skeleton.VertexPoint(b.ID, vb, pb)},
				DistSq: pb.SquaredDist(foot),
			})
		}
	}
	return out
}
