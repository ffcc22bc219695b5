package delaunay

import "fmt"

// connectHalfEdge, disconnectHalfEdge, connectTriangle and
// disconnectTriangle (§4.4) wire and unwire whole triangles out of
// previously-free half-edge slots; flip.go and splitTriangle compose them
// (a flip is Disconnect->Connect on both diagonal slots, invariant 6).
// splitEdge instead rewrites existing, already-bound slots in place (also
// invariant 6: "split operations append fresh half-edges" but also
// overwrite the edges being split), which would trip connectHalfEdge's
// free-slot assertion; it writes vtx/nxt/twin directly for that reason.
//
// These helpers panic on a violated precondition: by the time one of these
// conditions trips, the mesh's own invariants (§3) have already been
// broken by an earlier bug, and there is no well-defined mesh left to
// return an error about — see SPEC_FULL.md §7.

// connectHalfEdge requires curr to be in the free state and writes its
// three fields. If twin != NoHe it also wires the reverse twin link,
// requiring the twin to have been free.
func connectHalfEdge(t *Triangulation, curr, next, twin HeIx, vtx VtxIx) {
	if curr == NoHe || next == NoHe || vtx == NoVtx {
		panic("delaunay: connectHalfEdge: NoIx passed for curr/next/vtx")
	}
	e := &t.he[curr]
	if e.vtx != NoVtx || e.nxt != NoHe || e.twin != NoHe {
		panic(fmt.Sprintf("delaunay: connectHalfEdge: half-edge %d is not free", curr))
	}
	e.vtx = vtx
	e.nxt = next
	if twin != NoHe {
		e.twin = twin
		tw := &t.he[twin]
		if tw.twin != NoHe {
			panic(fmt.Sprintf("delaunay: connectHalfEdge: twin half-edge %d is not free", twin))
		}
		tw.twin = curr
	}
}

// disconnectHalfEdge clears e back to the free state and severs the twin
// link symmetrically.
func disconnectHalfEdge(t *Triangulation, e HeIx) {
	he := &t.he[e]
	if he.twin != NoHe {
		t.he[he.twin].twin = NoHe
		he.twin = NoHe
	}
	he.vtx = NoVtx
	he.nxt = NoHe
}

// connectTriangle wires three half-edges into one CCW triangle and asserts
// the result is strictly CCW (invariant 3, §3).
func connectTriangle(t *Triangulation,
	he0, tw0 HeIx, v0 VtxIx,
	he1, tw1 HeIx, v1 VtxIx,
	he2, tw2 HeIx, v2 VtxIx,
) {
	if sign := orient2d(t.vtx[v0].pos, t.vtx[v1].pos, t.vtx[v2].pos); sign <= 0 {
		panic(fmt.Sprintf("delaunay: connectTriangle: vertices %d,%d,%d are not strictly CCW (sign %d)", v0, v1, v2, sign))
	}
	connectHalfEdge(t, he0, he1, tw0, v0)
	connectHalfEdge(t, he1, he2, tw1, v1)
	connectHalfEdge(t, he2, he0, tw2, v2)
}

// disconnectTriangle walks nxt twice from he0 to find the other two
// half-edges of its triangle and disconnects all three.
func disconnectTriangle(t *Triangulation, he0 HeIx) {
	he1 := t.he[he0].nxt
	he2 := t.he[he1].nxt
	disconnectHalfEdge(t, he0)
	disconnectHalfEdge(t, he1)
	disconnectHalfEdge(t, he2)
}
