package cm256

// GF(256) realized as polynomials modulo the irreducible polynomial
// 0x11D with generator 2, matching the field klauspost/reedsolomon and
// the original cm256 use. log/exp are built once at package init; they
// are read-only for the remainder of the process, same as
// reedsolomon's genLogTable/genExpTable.

const (
	gfPolynomial = 0x11D
	gfGenerator  = 2
)

var (
	logTable [256]byte
	expTable [512]byte // doubled so mul needs no modulo
	invTable [256]byte
	mulTable [256][256]byte

	// Nibble-split tables for the byte-parallel multiply-accumulate
	// technique spec.md §4.1 describes: mul(c, x) = low[c][x&0xF] ^
	// high[c][x>>4]. A real SIMD backend would drive these through a
	// pshufb/tbl byte shuffle; the portable nibble backend in gf_ops.go
	// walks them a byte at a time, which keeps the two code paths
	// byte-identical by construction (see gf_dispatch.go).
	mulTableLow  [256][16]byte
	mulTableHigh [256][16]byte
)

func init() {
	buildGFTables()
}

func buildGFTables() {
	// exp[i] = generator^i, log[exp[i]] = i, for i in [0,254].
	x := 1
	for i := 0; i < 255; i++ {
		expTable[i] = byte(x)
		logTable[byte(x)] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= gfPolynomial
		}
	}
	logTable[1] = 0
	for i := 255; i < 512; i++ {
		expTable[i] = expTable[i-255]
	}

	invTable[0] = 0
	for a := 1; a < 256; a++ {
		// a * inv(a) = 1  =>  log(a) + log(inv(a)) = 0 (mod 255)
		l := int(logTable[a])
		invTable[a] = expTable[255-l]
	}

	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			mulTable[a][b] = gfMul(byte(a), byte(b))
		}
		for n := 0; n < 16; n++ {
			mulTableLow[a][n] = gfMul(byte(a), byte(n))
			mulTableHigh[a][n] = gfMul(byte(a), byte(n<<4))
		}
	}
}

// gfMul is the scalar reference multiply: exp[log(a)+log(b)], a=0 or
// b=0 yielding 0. Every other multiply path in the package must agree
// with this function byte-for-byte (spec.md §8, kernel identities).
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTable[int(logTable[a])+int(logTable[b])]
}

// gfDiv is mul(a, inv(b)). The kernel never calls gfDiv(x, 0).
func gfDiv(a, b byte) byte {
	return gfMul(a, invTable[b])
}
