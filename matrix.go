package cm256

// Cauchy matrix construction (spec.md §4.2). The encoder's coefficient
// matrix G has shape m x k: row r is keyed by x_r = k+r, column c by
// y_c = c, so
//
//	G[r][c] = 1 / (x_r XOR y_c) = inv((k+r) XOR c)
//
// When m = 1 the encoder and decoder do not use G: the single recovery
// row has every coefficient equal to 1 (see encodeXorFastPath).
//
// {x_r} and {y_c} are disjoint by construction (x_r >= k > c for every
// valid c), so x_r XOR y_c is never zero and every entry is defined.
// Any k x k submatrix drawn from the k identity rows (the originals
// themselves) concatenated with these m Cauchy rows is invertible,
// which is the Cauchy matrix's defining MDS property. This pins the
// open question spec.md §9 leaves to the implementer: two peers using
// this package produce byte-identical recovery blocks for the same
// inputs.
//
// recoveryCoeff is grounded on reedsolomon.go's buildMatrixCauchy,
// which computes the equivalent bottom-half entries as
// invTable[byte(r^c)] with r already offset by dataShards; this
// package keeps r and c zero-based within their own row/column spaces
// and applies the k offset explicitly.
func recoveryCoeff(p Params, r, c int) byte {
	xr := byte(p.OriginalCount + r)
	yc := byte(c)
	return invTable[xr^yc]
}
