package meshmodel

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash"

	"github.com/terraloom/meshbridge/geom"
)

// weldTolerance is the distance below which two vertices are considered
// the same point for welding purposes — tight enough to only catch
// genuinely coincident seams (e.g. a ribbon's rail vertices and its
// tube's top-cap copy of the same rail), not merge distinct nearby mesh
// detail.
const weldTolerance = 1e-6

// WeldCache deduplicates vertices by quantized position using an xxhash
// spatial hash, so appending a tube whose top face shares an edge with
// the ribbon surface it was built from does not leave behind two
// geometrically-identical but distinct vertex handles at that seam.
type WeldCache struct {
	mesh    *Mesh
	buckets map[uint64][]int
}

// NewWeldCache returns a cache that welds new vertices against every
// vertex already present in m.
func NewWeldCache(m *Mesh) *WeldCache {
	c := &WeldCache{mesh: m, buckets: make(map[uint64][]int)}
	for i, v := range m.Vertices {
		c.index(v, i)
	}
	return c
}

func quantize(x float64) int64 {
	return int64(math.Round(x / weldTolerance))
}

func bucketHash(p geom.Point3) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(quantize(p.X)))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(quantize(p.Y)))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(quantize(p.Z)))
	return xxhash.Sum64(buf[:])
}

func (c *WeldCache) index(p geom.Point3, handle int) {
	h := bucketHash(p)
	c.buckets[h] = append(c.buckets[h], handle)
}

// Weld returns the handle of an existing vertex within weldTolerance of
// p if one is already in the cache, or adds p as a new vertex of the
// cache's mesh and returns its fresh handle. Only vertices in p's own
// quantization cell are compared; a vertex within tolerance that falls
// in a neighbouring cell is not welded.
func (c *WeldCache) Weld(p geom.Point3) int {
	h := bucketHash(p)
	for _, handle := range c.buckets[h] {
		q := c.mesh.Vertices[handle]
		if math.Abs(q.X-p.X) < weldTolerance && math.Abs(q.Y-p.Y) < weldTolerance && math.Abs(q.Z-p.Z) < weldTolerance {
			return handle
		}
	}
	handle := c.mesh.AddVertex(p)
	c.index(p, handle)
	return handle
}
