package delaunay

import "github.com/pkg/errors"

// locate walks from the seed half-edge to the triangle containing pos
// (§4.5). On success it returns a half-edge of that triangle and the three
// orientation signs recorded along the way, each in {0, +1} (the walk
// never returns with a negative sign — a negative sign means the query is
// outside the current triangle, and the walk crosses to the twin instead
// of returning).
//
// The walk carries a defensive iteration cap (§9 Open Question (b)): it is
// not part of the original algorithm's behavior, but turns a latent bug
// (an inconsistent mesh that makes the walk cycle) into ErrLocationDidNotTerminate
// instead of an infinite loop.
func locate(t *Triangulation, pos Pos, seed HeIx) (HeIx, [3]int, error) {
	he := seed
	var signs [3]int
	maxSteps := 2*len(t.he) + 16
	steps := 0

outer:
	for {
		cur := he
		for i := 0; i < 3; i++ {
			steps++
			if steps > maxSteps {
				return 0, signs, errors.Wrapf(ErrLocationDidNotTerminate,
					"pos=%v after %d steps", pos, steps)
			}

			c := t.he[cur]
			n := t.he[c.nxt]
			a := t.vtx[c.vtx].pos
			b := t.vtx[n.vtx].pos

			s := orient2d(a, b, pos)
			if s < 0 {
				if c.twin == NoHe {
					panic("delaunay: locate: walked off the boundary of the domain")
				}
				he = c.twin
				continue outer
			}
			signs[i] = s
			cur = c.nxt
		}
		return cur, signs, nil
	}
}
