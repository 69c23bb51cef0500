package cm256

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// backend holds the bulk-op function pair selected once at Init time.
// Mirrors the dispatch-struct idiom reedsolomon uses to pick its
// galois_amd64/galois_arm64/galois_noasm implementation set: a fixed
// pair of function values chosen once, never a per-byte type switch.
type backend struct {
	name   string
	memMul func(dst []byte, c byte, src []byte)
	memMac func(dst []byte, c byte, src []byte)
}

var (
	initOnce sync.Once
	active   backend
)

// Init probes the host CPU for the widest safe bulk-op backend (the
// GF(256) field tables themselves are built by the package's init
// function in gf_tables.go, before any call). It is idempotent and safe to call from
// multiple goroutines; repeat calls are no-ops. Encode and Decode call
// it internally, so most callers never need to call it explicitly — it
// is exposed so a host application can pay the one-time cost up front
// and so tests/diagnostics can assert which backend is active via
// Backend().
func Init() error {
	initOnce.Do(selectBackend)
	return nil
}

func ensureInit() {
	initOnce.Do(selectBackend)
}

// selectBackend probes cpuid the same way reedsolomon's options.go
// builds its defaultOptions.useSSSE3/useAVX2/useNEON flags. Without an
// assembler available to verify hand-written vector code in this
// exercise (see DESIGN.md), both backends are portable Go; "nibble"
// walks the 16-entry low/high split tables spec.md §4.1 calls for (the
// shape a pshufb/tbl backend would take), "table" is the plain 256-wide
// lookup. gf_test.go checks the two byte-identical to each other and
// the active backend's memMac against gfMul.
func selectBackend() {
	if hasWideShuffleUnit() {
		active = backend{name: "nibble", memMul: nibbleMemMul, memMac: nibbleMemMac}
	} else {
		active = backend{name: "table", memMul: tableMemMul, memMac: tableMemMac}
	}
}

func hasWideShuffleUnit() bool {
	return cpuid.CPU.Supports(cpuid.SSSE3) ||
		cpuid.CPU.Supports(cpuid.AVX2) ||
		cpuid.CPU.Supports(cpuid.AVX512F) ||
		cpuid.CPU.Supports(cpuid.ASIMD)
}

// Backend reports the name of the bulk-op implementation Init selected
// ("nibble" or "table"). Exposed for diagnostics and tests; never
// affects correctness, only which code path computed the result.
func Backend() string {
	ensureInit()
	return active.name
}
