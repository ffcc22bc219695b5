// Package delaunay implements an incremental 2D Delaunay triangulation
// engine over integer point coordinates in the fixed domain
// [0, 2^32-1]^2. Every geometric decision is made by exact multi-word
// integer arithmetic (bigint.go, predicates.go); no floating point
// appears anywhere in the control flow.
//
// A Triangulation is a plain struct, not safe for concurrent use: like the
// half-edge mesh it is grounded on, all mutation happens synchronously
// inside Insert, and callers must not call Insert from more than one
// goroutine at a time on the same Triangulation.
package delaunay

import "github.com/pkg/errors"

// NoIx is the reserved sentinel value meaning "no index": invalid as both a
// vertex index and a half-edge index.
const NoIx = 0xFFFFFFFF

// maxIx is the largest number of slots an arena may hold, so the largest
// index ever handed out is maxIx-1 (§4.3: "capped at NoIx-1").
const maxIx = NoIx - 1

// VtxIx indexes into a Triangulation's vertex arena.
type VtxIx uint32

// HeIx indexes into a Triangulation's half-edge arena.
type HeIx uint32

// Pos is an integer point in the triangulation's domain. Coordinates are
// exact; there is no rounding, snapping, or floating-point conversion
// anywhere a Pos is used for a geometric decision.
type Pos struct {
	X, Y uint32
}

// Vertex wraps one Pos. Vertices are append-only: once allocated, a
// vertex's Pos never changes.
type Vertex struct {
	pos Pos
}

// HalfEdge is a directed edge around one triangle, CCW.
type HalfEdge struct {
	vtx  VtxIx // origin vertex
	nxt  HeIx  // next half-edge around the triangle, CCW
	twin HeIx  // opposing half-edge of the adjacent triangle, or NoIx
}

// Triangulation owns the vertex and half-edge arenas and the topology
// connecting them. The zero value is not usable; construct one with New.
type Triangulation struct {
	vtx []Vertex
	he  []HalfEdge
}

// VertexCount returns the number of allocated vertices.
func (t *Triangulation) VertexCount() int { return len(t.vtx) }

// HalfEdgeCount returns the number of allocated half-edges.
func (t *Triangulation) HalfEdgeCount() int { return len(t.he) }

// VertexPos returns the position of vertex v. It panics if v is out of
// range, the same contract as indexing a slice.
func (t *Triangulation) VertexPos(v VtxIx) Pos { return t.vtx[v].pos }

// HalfEdgeAt returns a copy of half-edge e's fields, or NoIx for
// fields that are unset (twin) or e itself is the zero/free state.
func (t *Triangulation) HalfEdgeAt(e HeIx) HalfEdge { return t.he[e] }

// Vtx returns e's origin vertex index.
func (e HalfEdge) Vtx() VtxIx { return e.vtx }

// Next returns the index of the next half-edge around e's triangle.
func (e HalfEdge) Next() HeIx { return e.nxt }

// Twin returns the index of e's opposing half-edge, or NoIx on the mesh
// boundary.
func (e HalfEdge) Twin() HeIx { return e.twin }

// New constructs an empty triangulation: the four corners of the domain
// square and the two triangles sharing the (0,2) diagonal, per §6. The
// corner coordinates and the wiring below are part of the public contract
// and must match bit-exactly.
func New() *Triangulation {
	t := &Triangulation{}

	v, err := allocVtx(t, 4)
	if err != nil {
		// Four vertices and six half-edges can never exceed maxIx; a
		// failure here means the arena growth policy itself is broken.
		panic(errors.Wrap(err, "delaunay: New: initial allocation failed"))
	}
	t.vtx[v+0] = Vertex{pos: Pos{0, 0}}
	t.vtx[v+1] = Vertex{pos: Pos{NoIx, 0}}
	t.vtx[v+2] = Vertex{pos: Pos{NoIx, NoIx}}
	t.vtx[v+3] = Vertex{pos: Pos{0, NoIx}}

	h, err := allocHe(t, 6)
	if err != nil {
		panic(errors.Wrap(err, "delaunay: New: initial allocation failed"))
	}

	connectTriangle(t,
		h+0, NoHe, v+0,
		h+1, NoHe, v+1,
		h+2, NoHe, v+2,
	)
	connectTriangle(t,
		h+3, NoHe, v+2,
		h+4, NoHe, v+3,
		h+5, h+2, v+0,
	)

	return t
}

// NoHe and NoVtx are the typed spellings of NoIx, used wherever a HeIx or
// VtxIx variable needs the sentinel.
const (
	NoHe  HeIx  = NoIx
	NoVtx VtxIx = NoIx
)

// allocSize implements the amortized growth policy of §4.3: grow by
// max(minimum, 1024, ceil(allocated/2)), capped at maxIx.
func allocSize(minimum, allocated uint32) uint32 {
	grow := minimum
	if grow < 1024 {
		grow = 1024
	}
	if half := (allocated + 1) / 2; grow < half {
		grow = half
	}
	total := uint64(allocated) + uint64(grow)
	if total > maxIx {
		total = maxIx
	}
	return uint32(total)
}

// allocVtx appends count fresh vertex slots and returns the index of the
// first one. Growth never invalidates existing VtxIx values.
func allocVtx(t *Triangulation, count uint32) (VtxIx, error) {
	newCount := uint64(len(t.vtx)) + uint64(count)
	if newCount > maxIx {
		return 0, errors.Wrapf(ErrOutOfMemory, "vertex arena: need %d, limit %d", newCount, maxIx)
	}
	if newCount > uint64(cap(t.vtx)) {
		grown := make([]Vertex, len(t.vtx), allocSize(uint32(newCount), uint32(cap(t.vtx))))
		copy(grown, t.vtx)
		t.vtx = grown
	}
	first := VtxIx(len(t.vtx))
	t.vtx = t.vtx[:len(t.vtx)+int(count)]
	return first, nil
}

// allocHe appends count fresh half-edge slots, each initialized to the
// "free" state (all three fields NoIx), and returns the index of the
// first one. Growth never invalidates existing HeIx values.
func allocHe(t *Triangulation, count uint32) (HeIx, error) {
	newCount := uint64(len(t.he)) + uint64(count)
	if newCount > maxIx {
		return 0, errors.Wrapf(ErrOutOfMemory, "half-edge arena: need %d, limit %d", newCount, maxIx)
	}
	if newCount > uint64(cap(t.he)) {
		grown := make([]HalfEdge, len(t.he), allocSize(uint32(newCount), uint32(cap(t.he))))
		copy(grown, t.he)
		t.he = grown
	}
	first := HeIx(len(t.he))
	newLen := len(t.he) + int(count)
	t.he = t.he[:newLen]
	for i := int(first); i < newLen; i++ {
		t.he[i] = HalfEdge{vtx: NoVtx, nxt: NoHe, twin: NoHe}
	}
	return first, nil
}
