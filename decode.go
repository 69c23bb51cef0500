package cm256

// Decode reconstructs missing originals from exactly
// params.OriginalCount surviving blocks, a mix of originals and
// recoveries distinguished by each Block's Index tag.
//
// Every recovery descriptor (Index >= OriginalCount) is rewritten in
// place: its Data comes to hold the reconstructed original, and its
// Index is rewritten to that original's tag. Descriptors that were
// already original (Index < OriginalCount) are left untouched, though
// their buffers may be read any number of times during elimination.
//
// Decode validates params, the block count, and the tag set (distinct,
// in range) before mutating anything. If there are zero erasures it
// returns immediately, payloads unchanged.
func Decode(params Params, blocks []Block) error {
	if err := params.validate(); err != nil {
		return err
	}
	if len(blocks) != params.OriginalCount {
		return ErrBlockCountMismatch
	}

	total := params.OriginalCount + params.RecoveryCount
	var seen [256]bool
	for _, b := range blocks {
		if len(b.Data) != params.BlockBytes {
			return ErrBlockSizeMismatch
		}
		if int(b.Index) >= total {
			return ErrBlockIndexInvalid
		}
		if seen[b.Index] {
			return ErrBlockIndexInvalid
		}
		seen[b.Index] = true
	}

	// Partition into present originals P and recovery descriptors R,
	// and find the missing original indices M as the complement of
	// present-original tags within [0, k).
	present := make([]*Block, 0, params.OriginalCount)
	recovered := make([]*Block, 0, params.RecoveryCount)
	var isPresentOriginal [256]bool
	for i := range blocks {
		b := &blocks[i]
		if int(b.Index) < params.OriginalCount {
			present = append(present, b)
			isPresentOriginal[b.Index] = true
		} else {
			recovered = append(recovered, b)
		}
	}

	if len(recovered) == 0 {
		return nil
	}

	missing := make([]int, 0, len(recovered))
	for c := 0; c < params.OriginalCount; c++ {
		if !isPresentOriginal[c] {
			missing = append(missing, c)
		}
	}

	ensureInit()

	if len(recovered) == 1 {
		decodeFastPathE1(params, present, recovered[0], missing[0])
		return nil
	}

	return decodeGeneral(params, present, recovered, missing)
}

// decodeFastPathE1 handles exactly one erasure (spec.md §4.4 step 3).
// When RecoveryCount is 1 the encoder used the pure-XOR row (see
// encodeXorFastPath), so the matching reconstruction is a pure XOR
// reduction. Otherwise the recovery row carries general Cauchy
// coefficients: reduce out the present originals' contribution via
// mem_mac, then divide through by the pivot coefficient.
func decodeFastPathE1(params Params, present []*Block, recovery *Block, missingOriginal int) {
	if params.RecoveryCount == 1 {
		srcs := make([][]byte, 0, len(present)+1)
		srcs = append(srcs, recovery.Data)
		for _, p := range present {
			srcs = append(srcs, p.Data)
		}
		memXorAll(recovery.Data, srcs)
		recovery.Index = byte(missingOriginal)
		return
	}

	row := int(recovery.Index) - params.OriginalCount
	for _, p := range present {
		memMac(recovery.Data, recoveryCoeff(params, row, int(p.Index)), p.Data)
	}
	pivot := recoveryCoeff(params, row, missingOriginal)
	memMul(recovery.Data, invTable[pivot], recovery.Data)
	recovery.Index = byte(missingOriginal)
}

// decodeGeneral handles two or more erasures (spec.md §4.4 step 4): it
// builds the e x e coefficient matrix over the missing columns,
// reduces each recovery payload by the present originals' known
// contribution, then solves by Gauss-Jordan elimination applying the
// matrix row operations to the recovery payloads in lock-step.
func decodeGeneral(params Params, present []*Block, recovered []*Block, missing []int) error {
	e := len(recovered)

	a := make([][]byte, e)
	for r := range a {
		a[r] = make([]byte, e)
		row := int(recovered[r].Index) - params.OriginalCount
		for c, mc := range missing {
			a[r][c] = recoveryCoeff(params, row, mc)
		}
	}

	for r := 0; r < e; r++ {
		row := int(recovered[r].Index) - params.OriginalCount
		for _, p := range present {
			memMac(recovered[r].Data, recoveryCoeff(params, row, int(p.Index)), p.Data)
		}
	}

	// rows[i] is the descriptor currently holding the payload for
	// logical row i; swapped alongside a's rows during pivoting.
	rows := make([]*Block, e)
	copy(rows, recovered)

	for col := 0; col < e; col++ {
		pivotRow := -1
		for r := col; r < e; r++ {
			if a[r][col] != 0 {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			return ErrDecodeFailed
		}
		if pivotRow != col {
			a[pivotRow], a[col] = a[col], a[pivotRow]
			rows[pivotRow], rows[col] = rows[col], rows[pivotRow]
		}

		pivotInv := invTable[a[col][col]]
		for cc := 0; cc < e; cc++ {
			a[col][cc] = gfMul(a[col][cc], pivotInv)
		}
		memMul(rows[col].Data, pivotInv, rows[col].Data)

		for r := 0; r < e; r++ {
			if r == col {
				continue
			}
			factor := a[r][col]
			if factor == 0 {
				continue
			}
			for cc := 0; cc < e; cc++ {
				a[r][cc] ^= gfMul(factor, a[col][cc])
			}
			memMac(rows[r].Data, factor, rows[col].Data)
		}
	}

	for i, mc := range missing {
		rows[i].Index = byte(mc)
	}
	return nil
}

