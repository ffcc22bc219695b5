package delaunay

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// This file holds the shared checkers for spec.md §8's T1-T6 invariants
// (in the style of osuushi-triangulate/internal/polygon_validity_test.go's
// validity helpers), followed by the scenario tests, the two idempotence
// tests and TestStress10000Points that use them.

// assertCoreInvariants checks T1 (3-cycle under next), T2 (twin symmetry
// and matching origins/destinations), T3 (strict CCW) and T5 (empty
// circumcircle) over every occupied half-edge, and T6 (Euler
// characteristic) over the whole mesh.
func assertCoreInvariants(t *testing.T, tr *Triangulation) {
	t.Helper()

	boundaryCount := 0
	occupied := 0
	for i := 0; i < tr.HalfEdgeCount(); i++ {
		e := tr.HalfEdgeAt(HeIx(i))
		if e.Vtx() == NoVtx {
			continue
		}
		occupied++

		n1 := tr.HalfEdgeAt(e.Next())
		n2 := tr.HalfEdgeAt(n1.Next())
		require.Equal(t, HeIx(i), n2.Next(), "T1: next(next(next(%d))) must be %d", i, i)

		p0 := tr.VertexPos(e.Vtx())
		p1 := tr.VertexPos(n1.Vtx())
		p2 := tr.VertexPos(n2.Vtx())
		require.Equal(t, 1, orient2d(p0, p1, p2), "T3: triangle at he=%d is not strictly CCW", i)

		if e.Twin() == NoHe {
			boundaryCount++
			continue
		}

		tw := tr.HalfEdgeAt(e.Twin())
		require.Equal(t, HeIx(i), tw.Twin(), "T2: twin(twin(%d)) must be %d", i, i)

		twNext := tr.HalfEdgeAt(tw.Next())
		require.Equal(t, n1.Vtx(), tw.Vtx(), "T2: he=%d's twin origin must equal he's destination", i)
		require.Equal(t, p0, tr.VertexPos(twNext.Vtx()), "T2: he=%d's twin destination must equal he's origin", i)

		l0 := e.Next()
		l1 := tr.HalfEdgeAt(l0).Next()
		l2 := tw.Next()
		l3 := tr.HalfEdgeAt(l2).Next()
		v0 := tr.HalfEdgeAt(l0).Vtx()
		v1 := tr.HalfEdgeAt(l1).Vtx()
		v2 := tr.HalfEdgeAt(l2).Vtx()
		v3 := tr.HalfEdgeAt(l3).Vtx()
		require.GreaterOrEqual(t, inCircleFlip(tr.VertexPos(v0), tr.VertexPos(v1), tr.VertexPos(v2), tr.VertexPos(v3)), 0,
			"T5: interior edge he=%d is not locally Delaunay", i)
	}

	require.Zero(t, occupied%3, "every face is a triangle of 3 half-edges")
	faces := occupied/3 + 1 // bounded triangles plus the outer face
	edges := (occupied + boundaryCount) / 2
	require.Equal(t, 2, tr.VertexCount()-edges+faces, "T6: V-E+F must equal 2")
}

// boundaryWalk returns the sequence of origin vertices encountered while
// walking the boundary cycle once around, starting from whichever occupied
// boundary half-edge has the lowest index.
func boundaryWalk(t *testing.T, tr *Triangulation) []VtxIx {
	t.Helper()

	start := NoHe
	for i := 0; i < tr.HalfEdgeCount(); i++ {
		e := tr.HalfEdgeAt(HeIx(i))
		if e.Vtx() != NoVtx && e.Twin() == NoHe {
			start = HeIx(i)
			break
		}
	}
	require.NotEqual(t, NoHe, start, "mesh has no boundary")

	var origins []VtxIx
	cur := start
	for step := 0; ; step++ {
		require.Less(t, step, tr.HalfEdgeCount()+1, "boundary walk did not close")

		e := tr.HalfEdgeAt(cur)
		origins = append(origins, e.Vtx())

		h := e.Next()
		for tr.HalfEdgeAt(h).Twin() != NoHe {
			h = tr.HalfEdgeAt(tr.HalfEdgeAt(h).Twin()).Next()
		}
		cur = h
		if cur == start {
			break
		}
	}
	return origins
}

// assertBoundaryIsOriginalSquare checks T4: filtering the boundary walk
// down to the four original corner vertices (always indices 0-3, since
// New allocates them first and vertices are never renumbered) must read
// 0,1,2,3 in cyclic order, however many split vertices now lie between
// them.
func assertBoundaryIsOriginalSquare(t *testing.T, tr *Triangulation) {
	t.Helper()

	var corners []VtxIx
	for _, v := range boundaryWalk(t, tr) {
		if v < 4 {
			corners = append(corners, v)
		}
	}

	require.Len(t, corners, 4)
	start := 0
	for i, v := range corners {
		if v == 0 {
			start = i
			break
		}
	}
	for i := 0; i < 4; i++ {
		require.Equal(t, VtxIx(i), corners[(start+i)%4], "boundary corner chain must read 0,1,2,3")
	}
}

func vertexOutDegree(tr *Triangulation, v VtxIx) int {
	n := 0
	for i := 0; i < tr.HalfEdgeCount(); i++ {
		e := tr.HalfEdgeAt(HeIx(i))
		if e.Vtx() == v {
			n++
		}
	}
	return n
}

func TestScenarioCentroidInsert(t *testing.T) {
	tr := New()
	v, err := tr.Insert(Pos{1 << 31, 1 << 31})
	require.NoError(t, err)
	require.Equal(t, VtxIx(4), v)
	require.Equal(t, 5, tr.VertexCount())
	require.Equal(t, 12, tr.HalfEdgeCount())
	require.Equal(t, 4, vertexOutDegree(tr, v))

	assertCoreInvariants(t, tr)
	assertBoundaryIsOriginalSquare(t, tr)
}

func TestScenarioInteriorInsertNearBoundaryTriangle(t *testing.T) {
	// Strictly interior to triangle (v0,v1,v2), off the v0-v2 diagonal, so
	// Insert takes the splitTriangle path (mask 0b111). Two of that
	// triangle's three edges (v0-v1, v1-v2) are boundary edges with NoHe
	// twins, so splitTriangle's flip queue is seeded with NoHe entries —
	// this exercises drainFlipQueue's NoHe guard on its primary,
	// most-common path.
	tr := New()
	v, err := tr.Insert(Pos{3 << 30, 1 << 30})
	require.NoError(t, err)
	require.Equal(t, VtxIx(4), v)
	require.Equal(t, 5, tr.VertexCount())
	require.Equal(t, 12, tr.HalfEdgeCount())
	require.GreaterOrEqual(t, vertexOutDegree(tr, v), 3, "a freshly split triangle gives its new vertex at least 3 incident edges")

	assertCoreInvariants(t, tr)
	assertBoundaryIsOriginalSquare(t, tr)
}

func TestScenarioBoundaryMidpointInsert(t *testing.T) {
	// Edge 0->1 is a boundary edge (its twin is NoHe in New's initial
	// mesh), so splitEdge takes the one-triangle path: 3 old half-edge
	// slots are rewritten and 3 new ones allocated, for heCount=6+3=9.
	tr := New()
	v, err := tr.Insert(Pos{1 << 31, 0})
	require.NoError(t, err)
	require.Equal(t, VtxIx(4), v)
	require.Equal(t, 5, tr.VertexCount())
	require.Equal(t, 9, tr.HalfEdgeCount())

	assertCoreInvariants(t, tr)
	assertBoundaryIsOriginalSquare(t, tr)
}

func TestScenarioInteriorSquareEveryOrderValid(t *testing.T) {
	// The four points are cocircular, so the inner square's diagonal may
	// differ between insertion orders; each order is checked for a valid
	// Delaunay mesh rather than compared against the others.
	square := []Pos{
		{1 << 30, 1 << 30},
		{3 << 30, 1 << 30},
		{3 << 30, 3 << 30},
		{1 << 30, 3 << 30},
	}
	orders := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{2, 0, 3, 1},
	}
	for _, order := range orders {
		tr := New()
		for _, i := range order {
			_, err := tr.Insert(square[i])
			require.NoError(t, err)
		}
		assertCoreInvariants(t, tr)
		assertBoundaryIsOriginalSquare(t, tr)
	}
}

func TestScenarioThreeNearCentroidInserts(t *testing.T) {
	tr := New()
	pts := []Pos{
		{1 << 31, 1 << 31},
		{1<<31 - 1, 1 << 31},
		{1 << 31, 1<<31 - 1},
	}
	for _, p := range pts {
		_, err := tr.Insert(p)
		require.NoError(t, err)
		assertCoreInvariants(t, tr)
	}
	require.Equal(t, 7, tr.VertexCount())
}

func TestDuplicateInsertionIsIdempotent(t *testing.T) {
	tr := New()
	p := Pos{1 << 31, 1 << 31}
	v1, err := tr.Insert(p)
	require.NoError(t, err)
	heCountAfterFirst := tr.HalfEdgeCount()

	v2, err := tr.Insert(p)
	require.NoError(t, err)
	require.Equal(t, v1, v2)
	require.Equal(t, heCountAfterFirst, tr.HalfEdgeCount())
}

func TestCornerInsertionIsIdempotent(t *testing.T) {
	tr := New()
	heCount := tr.HalfEdgeCount()
	corners := []Pos{{0, 0}, {NoIx, 0}, {NoIx, NoIx}, {0, NoIx}}
	for want, p := range corners {
		v, err := tr.Insert(p)
		require.NoError(t, err)
		require.Equal(t, VtxIx(want), v)
		require.Equal(t, heCount, tr.HalfEdgeCount(), "corner insertion must not allocate")
	}
}

func TestStress10000Points(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10000-point stress test in -short mode")
	}

	tr := New()
	rng := rand.New(rand.NewSource(7))
	const n = 10000
	prevHeCount := tr.HalfEdgeCount()
	for i := 0; i < n; i++ {
		p := Pos{X: rng.Uint32(), Y: rng.Uint32()}
		_, err := tr.Insert(p)
		require.NoError(t, err)

		require.GreaterOrEqual(t, tr.HalfEdgeCount(), prevHeCount, "heCount must grow monotonically")
		prevHeCount = tr.HalfEdgeCount()

		assertCoreInvariants(t, tr)
	}
	require.Equal(t, 4+n, tr.VertexCount())
}
