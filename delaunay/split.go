package delaunay

// splitTriangle replaces the triangle (he0,he1,he2) with vertices
// (v0,v1,v2) by three triangles sharing the new vertex mid (§4.7). Six
// fresh half-edges are allocated; the three original slots are rewritten
// to form one of the three new triangles, the other two use the fresh
// slots. The three edges that bounded the original triangle keep their
// external twins and are pushed onto the flip queue once the split
// settles.
func splitTriangle(t *Triangulation, he0 HeIx, mid VtxIx) error {
	he1 := t.he[he0].nxt
	he2 := t.he[he1].nxt

	v0 := t.he[he0].vtx
	v1 := t.he[he1].vtx
	v2 := t.he[he2].vtx

	tw0 := t.he[he0].twin
	tw1 := t.he[he1].twin
	tw2 := t.he[he2].twin

	he3, err := allocHe(t, 6)
	if err != nil {
		return err
	}

	disconnectTriangle(t, he0)
	connectTriangle(t,
		he0, tw0, v0,
		he1, NoHe, v1,
		he2, NoHe, mid,
	)
	connectTriangle(t,
		he3+0, tw1, v1,
		he3+1, NoHe, v2,
		he3+2, he1, mid,
	)
	connectTriangle(t,
		he3+3, tw2, v2,
		he3+4, he2, v0,
		he3+5, he3+1, mid,
	)

	drainFlipQueue(t, []HeIx{tw0, tw1, tw2})
	return nil
}

// splitEdge replaces edge a0 (and its twin, if any) with a new vertex mid,
// turning the one or two triangles incident to a0 into two or four (§4.7).
// See the ASCII diagram in original_source/src/delaunay.cpp for the exact
// before/after vertex layout this mirrors.
func splitEdge(t *Triangulation, a0 HeIx, mid VtxIx) error {
	c0 := t.he[a0].twin
	onBoundary := c0 == NoHe

	a1 := t.he[a0].nxt
	a2 := t.he[a1].nxt

	n2 := t.he[a1].twin
	n3 := t.he[a2].twin

	v0 := t.he[a0].vtx
	v2 := t.he[a1].vtx
	v3 := t.he[a2].vtx

	allocCount := uint32(3)
	if !onBoundary {
		allocCount = 6
	}
	b0, err := allocHe(t, allocCount)
	if err != nil {
		return err
	}
	b1 := b0 + 1
	b2 := b0 + 2

	d0 := NoHe
	if !onBoundary {
		d0 = b0 + 3
	}

	t.he[a0] = HalfEdge{vtx: mid, nxt: a1, twin: d0}
	t.he[a1] = HalfEdge{vtx: v2, nxt: a2, twin: n2}
	t.he[a2] = HalfEdge{vtx: v3, nxt: a0, twin: b1}
	if n2 != NoHe {
		t.he[n2].twin = a1
	}

	t.he[b0] = HalfEdge{vtx: v0, nxt: b1, twin: c0}
	t.he[b1] = HalfEdge{vtx: mid, nxt: b2, twin: a2}
	t.he[b2] = HalfEdge{vtx: v3, nxt: b0, twin: n3}
	if n3 != NoHe {
		t.he[n3].twin = b2
	}

	if onBoundary {
		drainFlipQueue(t, []HeIx{a1, a2, b2})
		return nil
	}

	c1 := t.he[c0].nxt
	c2 := t.he[c1].nxt
	d1 := b0 + 4
	d2 := b0 + 5

	n0 := t.he[c1].twin
	n1 := t.he[c2].twin

	v1 := t.he[c2].vtx

	t.he[c0] = HalfEdge{vtx: mid, nxt: c1, twin: b0}
	t.he[c1] = HalfEdge{vtx: v0, nxt: c2, twin: n0}
	t.he[c2] = HalfEdge{vtx: v1, nxt: c0, twin: d1}
	if n0 != NoHe {
		t.he[n0].twin = c1
	}

	t.he[d0] = HalfEdge{vtx: v2, nxt: d1, twin: a0}
	t.he[d1] = HalfEdge{vtx: mid, nxt: d2, twin: c2}
	t.he[d2] = HalfEdge{vtx: v1, nxt: d0, twin: n1}
	if n1 != NoHe {
		t.he[n1].twin = d2
	}

	drainFlipQueue(t, []HeIx{a0, a1, a2, b0, b2, c1, c2, d2})
	return nil
}
