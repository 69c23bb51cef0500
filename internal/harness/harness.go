// Package harness holds the block fill/verify helpers shared by
// cmd/cm256bench and the package's own tests. It exists precisely
// because spec.md keeps this out of the core: "the test harness
// (timing, block fill, verification)" is an external collaborator, not
// part of the encoder/decoder.
//
// The fill pattern matches original_source/unit_test/main.cpp's
// initializeBlocks/validateSolution: byte j of block i is
// (i + j*13) mod 256.
package harness

// Fill writes the deterministic test pattern into a block of data at
// original index idx.
func Fill(data []byte, idx int) {
	for j := range data {
		data[j] = byte(idx + j*13)
	}
}

// Verify reports whether data matches the deterministic pattern for
// original index idx.
func Verify(data []byte, idx int) bool {
	for j, got := range data {
		if got != byte(idx+j*13) {
			return false
		}
	}
	return true
}
