package cm256

// Encode generates params.RecoveryCount recovery blocks from
// params.OriginalCount original blocks.
//
// originals must have length params.OriginalCount, each with Data of
// length params.BlockBytes. recoveryOut must have length
// params.RecoveryCount * params.BlockBytes; on success it holds the
// recovery blocks laid out contiguously, row r occupying
// recoveryOut[r*BlockBytes : (r+1)*BlockBytes]. Its wire tag is
// RecoveryIndexTag(params, r).
//
// Encode validates params and every buffer length before writing
// anything; on a validation failure recoveryOut is left untouched.
func Encode(params Params, originals []Block, recoveryOut []byte) error {
	if err := params.validate(); err != nil {
		return err
	}
	if len(originals) != params.OriginalCount {
		return ErrBlockCountMismatch
	}
	for _, b := range originals {
		if len(b.Data) != params.BlockBytes {
			return ErrBlockSizeMismatch
		}
	}
	if len(recoveryOut) != params.RecoveryCount*params.BlockBytes {
		return ErrBlockSizeMismatch
	}

	ensureInit()

	if params.RecoveryCount == 1 {
		encodeXorFastPath(params, originals, recoveryOut)
		return nil
	}

	for r := 0; r < params.RecoveryCount; r++ {
		row := recoveryOut[r*params.BlockBytes : (r+1)*params.BlockBytes]
		memMul(row, recoveryCoeff(params, r, 0), originals[0].Data)
		for c := 1; c < params.OriginalCount; c++ {
			memMac(row, recoveryCoeff(params, r, c), originals[c].Data)
		}
	}
	return nil
}

// encodeXorFastPath implements the m=1 degenerate optimization of
// spec.md §4.2: the single recovery row equals the XOR of all k
// originals, i.e. every coefficient is 1 rather than the Cauchy value
// recoveryCoeff would give, so the package skips the general mem_mac
// loop entirely. decodeFastPathE1 undoes this row with the same XOR.
func encodeXorFastPath(params Params, originals []Block, recoveryOut []byte) {
	srcs := make([][]byte, len(originals))
	for i, b := range originals {
		srcs[i] = b.Data
	}
	memXorAll(recoveryOut[:params.BlockBytes], srcs)
}
