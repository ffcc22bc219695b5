package delaunay

import "github.com/pkg/errors"

// Sentinel errors for the failure kinds spec.md §7 names. Use errors.Is to
// classify an error returned from Insert; the wrapped message carries the
// offending position or index for diagnostics.
var (
	// ErrOutOfDomain corresponds to spec.md §7's "out-of-domain point"
	// precondition violation. New always spans the full [0, 2^32-1]^2
	// range and Pos's fields are uint32, so every representable Pos is
	// always in-domain and this module's Insert never actually returns
	// ErrOutOfDomain; it is kept as a named sentinel for API parity with
	// spec.md's error taxonomy and for any future constructor that
	// narrows the domain.
	ErrOutOfDomain = errors.New("delaunay: point outside triangulation domain")

	// ErrDegenerateLocation is returned when the point-location walk finds a
	// triangle whose three orientation signs are all zero. Invariant 3
	// (§3) forbids a zero-area triangle from ever existing, so this can only
	// mean the mesh's own invariants have already been broken upstream.
	ErrDegenerateLocation = errors.New("delaunay: point location found a degenerate triangle")

	// ErrLocationDidNotTerminate is returned when the defensive step bound
	// on the point-location walk (§9 Open Question (b)) is exceeded. Never
	// triggered by a correctly-maintained mesh.
	ErrLocationDidNotTerminate = errors.New("delaunay: point location did not terminate")

	// ErrOutOfMemory is returned when growing an arena would need more than
	// NoIx-1 slots (§4.3, §9 Open Question (c)).
	ErrOutOfMemory = errors.New("delaunay: arena allocation exhausted")
)
