package delaunay

import "math/bits"

// int128 is a fixed-width two's-complement 128-bit integer stored as two
// 64-bit words, least-significant first. It is the "2-word" width spec.md
// §4.1 calls for: wide enough to hold the 66-bit sums and 67-bit signed
// differences the predicates in predicates.go produce.
type int128 [2]uint64

// int256 is the 4-word width used for the products of two int128 operands.
type int256 [4]uint64

// fromUint64 zero-extends an unsigned 64-bit product (always non-negative
// as a 128-bit value) into an int128.
func fromUint64(v uint64) int128 {
	return int128{v, 0}
}

// addInt128 returns x+y modulo 2^128 (ripple-carry, §4.1 "add").
func addInt128(x, y int128) int128 {
	var r int128
	var c uint64
	r[0], c = bits.Add64(x[0], y[0], 0)
	r[1], _ = bits.Add64(x[1], y[1], c)
	return r
}

// subInt128 returns x-y modulo 2^128 (ripple-borrow, §4.1 "sub").
func subInt128(x, y int128) int128 {
	var r int128
	var b uint64
	r[0], b = bits.Sub64(x[0], y[0], 0)
	r[1], _ = bits.Sub64(x[1], y[1], b)
	return r
}

// signInt128 returns -1/0/+1 per §4.1 "sign": the sign bit is the top bit
// of the top word.
func signInt128(x int128) int {
	if x[0] == 0 && x[1] == 0 {
		return 0
	}
	if int64(x[1]) < 0 {
		return -1
	}
	return 1
}

// addInt256 returns x+y modulo 2^256.
func addInt256(x, y int256) int256 {
	var r int256
	var c uint64
	r[0], c = bits.Add64(x[0], y[0], 0)
	r[1], c = bits.Add64(x[1], y[1], c)
	r[2], c = bits.Add64(x[2], y[2], c)
	r[3], _ = bits.Add64(x[3], y[3], c)
	return r
}

// signInt256 returns -1/0/+1, the sign bit being the top bit of word 3.
func signInt256(x int256) int {
	if x[0] == 0 && x[1] == 0 && x[2] == 0 && x[3] == 0 {
		return 0
	}
	if int64(x[3]) < 0 {
		return -1
	}
	return 1
}

// mulSigned computes the full signed product of two int128 operands as an
// int256 (§4.1 "mul_signed"): an unsigned schoolbook product of the four
// words, followed by the two conditional corrections that turn an unsigned
// product into a signed one when either operand's top word has its sign bit
// set (the standard trick: for two's-complement x, the unsigned
// interpretation is x + 2^128 when x is negative, so the raw unsigned
// product overshoots by y*2^128, corrected by subtracting y from the upper
// half — and symmetrically for y negative).
func mulSigned(x, y int128) int256 {
	var r int256

	for j := 0; j < 2; j++ {
		var k uint64
		for i := 0; i < 2; i++ {
			hi, lo := bits.Mul64(x[j], y[i])
			var c0, c1 uint64
			lo, c0 = bits.Add64(lo, r[j+i], 0)
			r[j+i], c1 = bits.Add64(lo, k, 0)
			k = hi + c0 + c1
		}
		r[j+2] = k
	}

	if int64(y[1]) < 0 {
		var b uint64
		r[2], b = bits.Sub64(r[2], x[0], 0)
		r[3], _ = bits.Sub64(r[3], x[1], b)
	}

	if int64(x[1]) < 0 {
		var b uint64
		r[2], b = bits.Sub64(r[2], y[0], 0)
		r[3], _ = bits.Sub64(r[3], y[1], b)
	}

	return r
}
