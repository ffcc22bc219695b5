package delaunay

// drainFlipQueue implements the Delaunay repair loop of §4.8: an explicit
// work stack of half-edge indices, popped one at a time. NoHe entries
// (never allocated), boundary edges (twin == NoHe) and already-Delaunay
// edges are filtered inline; the queue may legally contain duplicate or
// stale entries.
func drainFlipQueue(t *Triangulation, queue []HeIx) {
	for len(queue) > 0 {
		h := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if h == NoHe {
			continue
		}

		tw := t.he[h].twin
		if tw == NoHe {
			continue // boundary edge — never flip
		}

		l0 := t.he[h].nxt
		l1 := t.he[l0].nxt
		l2 := t.he[tw].nxt
		l3 := t.he[l2].nxt

		v0 := t.he[l0].vtx
		v1 := t.he[l1].vtx
		v2 := t.he[l2].vtx
		v3 := t.he[l3].vtx

		if inCircleFlip(t.vtx[v0].pos, t.vtx[v1].pos, t.vtx[v2].pos, t.vtx[v3].pos) >= 0 {
			continue // already Delaunay
		}

		t0 := t.he[l0].twin
		t1 := t.he[l1].twin
		t2 := t.he[l2].twin
		t3 := t.he[l3].twin

		disconnectTriangle(t, h)
		disconnectTriangle(t, tw)

		// h and tw become the new diagonal (v1,v3), keeping their indices
		// so any reference an outer neighbor holds stays valid (§4.8, §9).
		connectTriangle(t,
			l0, t0, v0,
			h, NoHe, v1,
			l3, t3, v3,
		)
		connectTriangle(t,
			l2, t2, v2,
			tw, h, v3,
			l1, t1, v1,
		)

		queue = append(queue, t0, t1, t2, t3)
	}
}
