package cm256

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/kingqn0321/cm256/internal/harness"
)

// TestEncodeScenario1 is spec.md §8 scenario 1: k=3, m=1, block_bytes=4.
func TestEncodeScenario1(t *testing.T) {
	params := Params{BlockBytes: 4, OriginalCount: 3, RecoveryCount: 1}
	originals := []Block{
		{Data: []byte{1, 2, 3, 4}, Index: 0},
		{Data: []byte{5, 6, 7, 8}, Index: 1},
		{Data: []byte{9, 10, 11, 12}, Index: 2},
	}
	recovery := make([]byte, 4)
	require.NoError(t, Encode(params, originals, recovery))
	assert.Equal(t, []byte{1 ^ 5 ^ 9, 2 ^ 6 ^ 10, 3 ^ 7 ^ 11, 4 ^ 8 ^ 12}, recovery)

	blocks := []Block{
		originals[0],
		{Data: append([]byte(nil), recovery...), Index: RecoveryIndexTag(params, 0)},
		originals[2],
	}
	require.NoError(t, Decode(params, blocks))
	assert.Equal(t, originals[1].Data, blocks[1].Data)
	assert.Equal(t, byte(1), blocks[1].Index)
}

// TestScenario2 is spec.md §8 scenario 2: k=2, m=2, recover from the two
// recovery blocks alone.
func TestScenario2(t *testing.T) {
	params := Params{BlockBytes: 1, OriginalCount: 2, RecoveryCount: 2}
	originals := []Block{
		{Data: []byte{0x42}, Index: 0},
		{Data: []byte{0x99}, Index: 1},
	}
	recovery := make([]byte, 2)
	require.NoError(t, Encode(params, originals, recovery))

	blocks := []Block{
		{Data: append([]byte(nil), recovery[0:1]...), Index: RecoveryIndexTag(params, 0)},
		{Data: append([]byte(nil), recovery[1:2]...), Index: RecoveryIndexTag(params, 1)},
	}
	require.NoError(t, Decode(params, blocks))

	byIndex := map[byte][]byte{blocks[0].Index: blocks[0].Data, blocks[1].Index: blocks[1].Data}
	assert.Equal(t, originals[0].Data, byIndex[0])
	assert.Equal(t, originals[1].Data, byIndex[1])
}

// TestScenario5 is spec.md §8 scenario 5: k=1, m=1. The recovery block
// equals the original; losing it and decoding from the recovery alone
// must reproduce the bytes.
func TestScenario5(t *testing.T) {
	for _, blockBytes := range []int{1, 7, 64} {
		params := Params{BlockBytes: blockBytes, OriginalCount: 1, RecoveryCount: 1}
		data := make([]byte, blockBytes)
		harness.Fill(data, 0)
		originals := []Block{{Data: data, Index: 0}}
		recovery := make([]byte, blockBytes)
		require.NoError(t, Encode(params, originals, recovery))
		assert.Equal(t, data, recovery)

		blocks := []Block{{Data: append([]byte(nil), recovery...), Index: RecoveryIndexTag(params, 0)}}
		require.NoError(t, Decode(params, blocks))
		assert.Equal(t, data, blocks[0].Data)
		assert.Equal(t, byte(0), blocks[0].Index)
	}
}

// TestScenario6 is spec.md §8 scenario 6: k=255, m=1.
func TestScenario6(t *testing.T) {
	params := Params{BlockBytes: 1, OriginalCount: 255, RecoveryCount: 1}
	originals := make([]Block, 255)
	for i := range originals {
		originals[i] = Block{Data: []byte{byte(i * 7)}, Index: byte(i)}
	}
	recovery := make([]byte, 1)
	require.NoError(t, Encode(params, originals, recovery))

	lost := 37
	blocks := make([]Block, 255)
	copy(blocks, originals)
	blocks[lost] = Block{Data: append([]byte(nil), recovery...), Index: RecoveryIndexTag(params, 0)}

	require.NoError(t, Decode(params, blocks))
	assert.Equal(t, originals[lost].Data, blocks[lost].Data)
	assert.Equal(t, byte(lost), blocks[lost].Index)
}

// TestDecodeNoErasuresIsIdempotent is spec.md §8's round-trip idempotence
// property.
func TestDecodeNoErasuresIsIdempotent(t *testing.T) {
	params := Params{BlockBytes: 8, OriginalCount: 4, RecoveryCount: 3}
	blocks := make([]Block, 4)
	for i := range blocks {
		data := make([]byte, 8)
		harness.Fill(data, i)
		blocks[i] = Block{Data: append([]byte(nil), data...), Index: byte(i)}
	}
	want := make([][]byte, len(blocks))
	for i, b := range blocks {
		want[i] = append([]byte(nil), b.Data...)
	}
	require.NoError(t, Decode(params, blocks))
	for i, b := range blocks {
		assert.Equal(t, want[i], b.Data)
	}
}

func TestDecodeRejectsDuplicateTags(t *testing.T) {
	params := Params{BlockBytes: 4, OriginalCount: 2, RecoveryCount: 2}
	blocks := []Block{
		{Data: make([]byte, 4), Index: 0},
		{Data: make([]byte, 4), Index: 0},
	}
	err := Decode(params, blocks)
	assert.ErrorIs(t, err, ErrBlockIndexInvalid)
}

func TestDecodeRejectsOutOfRangeTag(t *testing.T) {
	params := Params{BlockBytes: 4, OriginalCount: 2, RecoveryCount: 2}
	blocks := []Block{
		{Data: make([]byte, 4), Index: 0},
		{Data: make([]byte, 4), Index: 4},
	}
	err := Decode(params, blocks)
	assert.ErrorIs(t, err, ErrBlockIndexInvalid)
}

func TestEncodeRejectsBadParams(t *testing.T) {
	cases := []Params{
		{BlockBytes: 0, OriginalCount: 1, RecoveryCount: 1},
		{BlockBytes: 1, OriginalCount: 0, RecoveryCount: 1},
		{BlockBytes: 1, OriginalCount: 1, RecoveryCount: 0},
		{BlockBytes: 1, OriginalCount: 200, RecoveryCount: 100},
	}
	for _, p := range cases {
		err := Encode(p, nil, nil)
		assert.ErrorIs(t, err, ErrParamsInvalid)
	}
}

// TestEndToEndErasureProperty is the spec.md §8 end-to-end property:
// for randomized (k, m, block_bytes) and randomized erasure patterns of
// up to m erasures, decode(encode(originals)) reconstructs bit-exactly.
func TestEndToEndErasureProperty(t *testing.T) {
	blockByteOptions := []int{1, 2, 16, 129}

	rapid.Check(t, func(t *rapid.T) {
		k := rapid.IntRange(1, 48).Draw(t, "k")
		m := rapid.IntRange(1, 256-k).Draw(t, "m")
		if m > 48 {
			m = 48
		}
		blockBytes := rapid.SampledFrom(blockByteOptions).Draw(t, "blockBytes")
		seed := rapid.Int64().Draw(t, "seed")

		params := Params{BlockBytes: blockBytes, OriginalCount: k, RecoveryCount: m}

		originals := make([]Block, k)
		for i := range originals {
			data := make([]byte, blockBytes)
			harness.Fill(data, i)
			originals[i] = Block{Data: data, Index: byte(i)}
		}
		recoveryData := make([]byte, m*blockBytes)
		require.NoError(t, Encode(params, originals, recoveryData))

		rng := rand.New(rand.NewSource(seed))
		erase := rapid.IntRange(0, min(m, k)).Draw(t, "erase")
		erased := rng.Perm(k)[:erase]
		erasedSet := make(map[int]bool, erase)
		for _, idx := range erased {
			erasedSet[idx] = true
		}

		blocks := make([]Block, k)
		nextRecovery := 0
		for i := 0; i < k; i++ {
			if erasedSet[i] {
				row := nextRecovery
				data := append([]byte(nil), recoveryData[row*blockBytes:(row+1)*blockBytes]...)
				blocks[i] = Block{Data: data, Index: RecoveryIndexTag(params, row)}
				nextRecovery++
			} else {
				data := append([]byte(nil), originals[i].Data...)
				blocks[i] = Block{Data: data, Index: byte(i)}
			}
		}

		require.NoError(t, Decode(params, blocks))
		for i := 0; i < k; i++ {
			assert.Truef(t, harness.Verify(blocks[i].Data, i),
				"k=%d m=%d blockBytes=%d erase=%d: original %d not reconstructed", k, m, blockBytes, erase, i)
		}
	})
}

func BenchmarkEncode(b *testing.B) {
	params := Params{BlockBytes: 1296, OriginalCount: 100, RecoveryCount: 30}
	originals := make([]Block, params.OriginalCount)
	for i := range originals {
		data := make([]byte, params.BlockBytes)
		harness.Fill(data, i)
		originals[i] = Block{Data: data, Index: byte(i)}
	}
	recovery := make([]byte, params.RecoveryCount*params.BlockBytes)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Encode(params, originals, recovery)
	}
}

func BenchmarkDecode(b *testing.B) {
	params := Params{BlockBytes: 1296, OriginalCount: 100, RecoveryCount: 30}
	originals := make([]Block, params.OriginalCount)
	for i := range originals {
		data := make([]byte, params.BlockBytes)
		harness.Fill(data, i)
		originals[i] = Block{Data: data, Index: byte(i)}
	}
	recovery := make([]byte, params.RecoveryCount*params.BlockBytes)
	require.NoError(b, Encode(params, originals, recovery))

	scratch := make([]byte, len(recovery))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(scratch, recovery)
		blocks := make([]Block, params.OriginalCount)
		copy(blocks, originals)
		for j := 0; j < params.RecoveryCount; j++ {
			blocks[j] = Block{Data: scratch[j*params.BlockBytes : (j+1)*params.BlockBytes], Index: RecoveryIndexTag(params, j)}
		}
		b.StartTimer()
		_ = Decode(params, blocks)
	}
}
