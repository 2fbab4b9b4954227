package simd

// InstructionSet is a zero-information capability witness: its existence
// proves the host CPU supports a particular SIMD feature bundle. It carries
// no data. The vector operations are package-level functions that take no
// token, so holding a token does not gate which operations can be called.
// Tokens come from the Detect* functions or from Best, which never fails.
//
// Tokens form a subtype lattice: AVX2 implies SSE41, so anywhere an SSE41
// token is accepted, an AVX2 token works too (Supports reports this).
type InstructionSet interface {
	// Name returns a short lowercase identifier ("sse41", "avx2", "neon",
	// "wasm128", "scalar") used for logging and dispatch tables.
	Name() string

	// Width returns the native vector width in bytes this token's backend
	// operates on directly (16 for SSE4.1/NEON/WASM128/scalar, 32 for AVX2).
	Width() int
}

// Scalar is the unconditional fallback token: every Go build target can
// construct one. It implements every IR operation byte-by-byte (or
// 16-bit-lane-by-lane), so the IR is complete without any hardware SIMD.
type Scalar struct{}

func (Scalar) Name() string { return "scalar" }
func (Scalar) Width() int   { return 16 }

// SSE41 witnesses SSE4.1 support (x86/amd64: PSHUFB, PBLENDVB, PMINSB...).
type SSE41 struct{}

func (SSE41) Name() string { return "sse41" }
func (SSE41) Width() int   { return 16 }

// AVX2 witnesses AVX2 support (x86/amd64: 256-bit integer ops, VPSHUFB,
// cross-lane VPERMD/VPERMQ). AVX2 ⊂ SSE4.1: any CPU with AVX2 also has
// SSE4.1, so AVX2.Supports(SSE41{}) is always true.
type AVX2 struct{}

func (AVX2) Name() string { return "avx2" }
func (AVX2) Width() int   { return 32 }

// Supports reports whether this token's feature bundle is a superset of
// other's, i.e. whether an algorithm written against `other` may run under
// this token instead. AVX2 is the only non-trivial case in this lattice.
func (AVX2) Supports(other InstructionSet) bool {
	switch other.(type) {
	case AVX2, SSE41, Scalar:
		return true
	default:
		return false
	}
}

// NEON witnesses ARM Advanced SIMD support. On aarch64 this is part of the
// mandatory ARMv8-A baseline; on 32-bit ARM it is optional.
type NEON struct{}

func (NEON) Name() string { return "neon" }
func (NEON) Width() int   { return 16 }

// WASM128 witnesses the WebAssembly 128-bit SIMD proposal. Unlike the other
// tokens, its presence is a build-time fact (the `wasm` build tag), not a
// runtime CPU query: the host engine either implements the proposal or the
// module fails to validate, so Detect for WASM128 never returns false on a
// `wasm` build.
type WASM128 struct{}

func (WASM128) Name() string { return "wasm128" }
func (WASM128) Width() int   { return 16 }
