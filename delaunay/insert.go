package delaunay

import "github.com/pkg/errors"

// Insert inserts pos into the triangulation and returns its vertex index
// (§4.6, §6). If pos exactly coincides with an existing vertex, Insert
// mutates nothing and returns that vertex's existing index. Otherwise a
// new vertex is allocated and the mesh is locally repaired to restore the
// Delaunay property (§4.7, §4.8) before Insert returns.
//
// Insert's only precondition, per §7, is that pos lie within the square
// New() was constructed over. Because Pos's fields are uint32 and New
// always spans the full [0, 2^32-1]^2 range, that precondition holds for
// every representable Pos — there is no narrower-domain constructor, so
// there is nothing to range-check, and ErrOutOfDomain (kept in errors.go
// for parity with spec.md §7's error taxonomy) is unreachable from this
// API.
func (t *Triangulation) Insert(pos Pos) (VtxIx, error) {
	he, signs, err := locate(t, pos, 0)
	if err != nil {
		return 0, err
	}

	mask := 0
	if signs[0] != 0 {
		mask |= 1
	}
	if signs[1] != 0 {
		mask |= 2
	}
	if signs[2] != 0 {
		mask |= 4
	}

	switch mask {
	case 0b000:
		// The query lies on all three edges of the triangle he bounds,
		// which invariant 3 (§3) says can't happen for a non-degenerate
		// triangle: the mesh's own invariants have already broken.
		return 0, errors.Wrapf(ErrDegenerateLocation, "pos=%v he=%d", pos, he)

	case 0b111:
		// Interior: allocate a fresh vertex and split the triangle.
		v, err := allocVtx(t, 1)
		if err != nil {
			return 0, err
		}
		t.vtx[v].pos = pos
		if err := splitTriangle(t, he, v); err != nil {
			t.vtx = t.vtx[:v] // release the unused vertex slot
			return 0, err
		}
		return v, nil

	case 0b110, 0b101, 0b011:
		// On exactly one edge: rotate he so the zero-sign edge is he, then
		// split it.
		edge := rotateToZeroSign(t, he, signs)
		v, err := allocVtx(t, 1)
		if err != nil {
			return 0, err
		}
		t.vtx[v].pos = pos
		if err := splitEdge(t, edge, v); err != nil {
			t.vtx = t.vtx[:v] // release the unused vertex slot
			return 0, err
		}
		return v, nil

	case 0b010, 0b100, 0b001:
		// On exactly two edges: a corner. The query coincides with an
		// existing vertex, wherever in the mesh that vertex came from
		// (see SPEC_FULL.md §4.6) — return its index without mutating the
		// mesh.
		return cornerVertex(t, he, mask), nil

	default:
		panic("delaunay: Insert: impossible orientation mask")
	}
}

// rotateToZeroSign advances he via nxt until its edge is the one whose
// recorded sign is zero, i.e. the edge the query lies on (§4.6 step 2).
func rotateToZeroSign(t *Triangulation, he HeIx, signs [3]int) HeIx {
	switch {
	case signs[0] == 0:
		return he
	case signs[1] == 0:
		return t.he[he].nxt
	default: // signs[2] == 0
		return t.he[t.he[he].nxt].nxt
	}
}

// cornerVertex returns the vertex shared by the two zero-sign edges
// identified by mask, without mutating anything (§4.6 step 3).
func cornerVertex(t *Triangulation, he HeIx, mask int) VtxIx {
	switch mask {
	case 0b010:
		return t.he[he].vtx
	case 0b100:
		return t.he[t.he[he].nxt].vtx
	default: // 0b001
		return t.he[t.he[t.he[he].nxt].nxt].vtx
	}
}
