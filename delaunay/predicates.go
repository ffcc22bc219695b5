package delaunay

// orient2d returns the sign of
// (x1*y2 + x2*y3 + x3*y1) - (x1*y3 + x2*y1 + x3*y2)
// for three points p1, p2, p3: +1 if CCW, -1 if CW, 0 if collinear.
//
// Each of the six products zero-extends two 32-bit coordinates into a
// 64-bit unsigned value, which fromUint64 widens losslessly into an
// int128; summing three of those fits comfortably in 66 bits (§4.2).
func orient2d(p1, p2, p3 Pos) int {
	x1y2 := fromUint64(uint64(p1.X) * uint64(p2.Y))
	x2y3 := fromUint64(uint64(p2.X) * uint64(p3.Y))
	x3y1 := fromUint64(uint64(p3.X) * uint64(p1.Y))
	a := addInt128(addInt128(x1y2, x2y3), x3y1)

	x1y3 := fromUint64(uint64(p1.X) * uint64(p3.Y))
	x2y1 := fromUint64(uint64(p2.X) * uint64(p1.Y))
	x3y2 := fromUint64(uint64(p3.X) * uint64(p2.Y))
	b := addInt128(addInt128(x1y3, x2y1), x3y2)

	return signInt128(subInt128(a, b))
}

// inCircleFlip tests the Delaunay condition for the diagonal p1-p3 of the
// convex CCW quadrilateral p1,p2,p3,p4 (§4.2). It returns the sign of
// sin(angle 123)*cos(angle 341) + cos(angle 123)*sin(angle 341):
// negative means the diagonal p1-p3 is non-Delaunay and should be flipped
// to p2-p4; zero means the four points are cocircular (treated as
// Delaunay, §9); positive means p1-p3 is already Delaunay.
func inCircleFlip(p1, p2, p3, p4 Pos) int {
	x1, y1 := uint64(p1.X), uint64(p1.Y)
	x2, y2 := uint64(p2.X), uint64(p2.Y)
	x3, y3 := uint64(p3.X), uint64(p3.Y)
	x4, y4 := uint64(p4.X), uint64(p4.Y)

	x1y2 := fromUint64(x1 * y2)
	x1y3 := fromUint64(x1 * y3)
	x1y4 := fromUint64(x1 * y4)
	x2y3 := fromUint64(x2 * y3)
	x2y1 := fromUint64(x2 * y1)
	x3y1 := fromUint64(x3 * y1)
	x3y2 := fromUint64(x3 * y2)
	x3y4 := fromUint64(x3 * y4)
	x4y1 := fromUint64(x4 * y1)
	x4y3 := fromUint64(x4 * y3)

	// sin_123 = (x3y1 + x1y2 + x2y3) - (x2y1 + x3y2 + x1y3)
	sin123 := subInt128(
		addInt128(addInt128(x3y1, x1y2), x2y3),
		addInt128(addInt128(x2y1, x3y2), x1y3),
	)

	// sin_341 = (x4y1 + x1y3 + x3y4) - (x4y3 + x1y4 + x3y1)
	sin341 := subInt128(
		addInt128(addInt128(x4y1, x1y3), x3y4),
		addInt128(addInt128(x4y3, x1y4), x3y1),
	)

	x1x2 := fromUint64(x1 * x2)
	x1x3 := fromUint64(x1 * x3)
	x1x4 := fromUint64(x1 * x4)
	x2x2 := fromUint64(x2 * x2)
	x2x3 := fromUint64(x2 * x3)
	x3x4 := fromUint64(x3 * x4)
	x4x4 := fromUint64(x4 * x4)

	y1y2 := fromUint64(y1 * y2)
	y1y3 := fromUint64(y1 * y3)
	y1y4 := fromUint64(y1 * y4)
	y2y2 := fromUint64(y2 * y2)
	y2y3 := fromUint64(y2 * y3)
	y3y4 := fromUint64(y3 * y4)
	y4y4 := fromUint64(y4 * y4)

	// cos_123 = (x2^2 + x1x3 + y2^2 + y1y3) - (y2y3 + x1x2 + x2x3 + y1y2)
	cos123 := subInt128(
		addInt128(addInt128(x2x2, x1x3), addInt128(y2y2, y1y3)),
		addInt128(addInt128(y2y3, x1x2), addInt128(x2x3, y1y2)),
	)

	// cos_341 = (x1x3 + x4^2 + y1y3 + y4^2) - (y1y4 + y3y4 + x1x4 + x3x4)
	cos341 := subInt128(
		addInt128(addInt128(x1x3, x4x4), addInt128(y1y3, y4y4)),
		addInt128(addInt128(y1y4, y3y4), addInt128(x1x4, x3x4)),
	)

	test := addInt256(mulSigned(sin123, cos341), mulSigned(cos123, sin341))
	return signInt256(test)
}
