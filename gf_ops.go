package cm256

import "github.com/templexxx/xorsimd"

// memXor computes dst[i] ^= src[i] for i < len(dst). Delegates to
// templexxx/xorsimd, which is allowed to alias dst into its own source
// list (xorsimd.Bytes documents "source and destination may overlap").
func memXor(dst, src []byte) {
	n := len(dst)
	if n == 0 {
		return
	}
	xorsimd.Bytes(dst[:n], dst[:n], src[:n])
}

// memXorAll computes dst = src[0] ^ src[1] ^ ... ^ src[len-1], used by
// the m=1 encoder fast path and the e=1 "row 0, m=1" decoder fast path
// (spec.md §4.2, §4.4). dst may alias src[0].
func memXorAll(dst []byte, src [][]byte) {
	xorsimd.Encode(dst, src)
}

// memMul computes dst[i] = c*src[i] for i < n (field multiply). c=0
// zero-fills, c=1 copies. dst and src may be the same slice.
func memMul(dst []byte, c byte, src []byte) {
	ensureInit()
	n := len(dst)
	switch c {
	case 0:
		for i := 0; i < n; i++ {
			dst[i] = 0
		}
	case 1:
		copy(dst, src[:n])
	default:
		active.memMul(dst, c, src[:n])
	}
}

// memMac computes dst[i] ^= c*src[i] for i < n. c=0 is a no-op, c=1
// delegates to memXor.
func memMac(dst []byte, c byte, src []byte) {
	ensureInit()
	n := len(dst)
	switch c {
	case 0:
		return
	case 1:
		memXor(dst, src[:n])
	default:
		active.memMac(dst, c, src[:n])
	}
}

// memSwap exchanges the contents of two disjoint, equal-length byte
// regions in place.
func memSwap(a, b []byte) {
	n := len(a)
	for i := 0; i < n; i++ {
		a[i], b[i] = b[i], a[i]
	}
}

// tableMemMul/tableMemMac: the plain 256-wide lookup backend, selected
// when the CPU offers no byte-shuffle unit. Grounded on
// reedsolomon/galois_noasm.go's galMulSlice/galMulSliceXor.
func tableMemMul(dst []byte, c byte, src []byte) {
	mt := &mulTable[c]
	for i, v := range src {
		dst[i] = mt[v]
	}
}

func tableMemMac(dst []byte, c byte, src []byte) {
	mt := &mulTable[c]
	for i, v := range src {
		dst[i] ^= mt[v]
	}
}

// nibbleMemMul/nibbleMemMac: the nibble-split backend, the shape a
// pshufb (SSSE3/AVX2) or tbl (NEON) implementation would take — two
// 16-entry lookups and an XOR per byte, instead of one 256-entry
// lookup. Byte-identical to tableMemMul/tableMemMac by construction
// (mulTableLow/mulTableHigh are both derived from gfMul in
// gf_tables.go), verified in gf_test.go.
func nibbleMemMul(dst []byte, c byte, src []byte) {
	lo := &mulTableLow[c]
	hi := &mulTableHigh[c]
	for i, v := range src {
		dst[i] = lo[v&0x0F] ^ hi[(v>>4)&0x0F]
	}
}

func nibbleMemMac(dst []byte, c byte, src []byte) {
	lo := &mulTableLow[c]
	hi := &mulTableHigh[c]
	for i, v := range src {
		dst[i] ^= lo[v&0x0F] ^ hi[(v>>4)&0x0F]
	}
}
