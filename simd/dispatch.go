// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

import (
	"os"
	"strconv"
)

// Level names the ISA a multiversioned call will dispatch to.
type Level int

const (
	// LevelScalar indicates no SIMD; pure Go fallback.
	LevelScalar Level = iota

	// LevelSSE41 indicates SSE4.1 (x86-64 baseline used by this module).
	LevelSSE41

	// LevelAVX2 indicates AVX2 (256-bit SIMD).
	LevelAVX2

	// LevelNEON indicates ARM NEON (128-bit SIMD).
	LevelNEON

	// LevelWASM128 indicates the WebAssembly 128-bit SIMD proposal.
	LevelWASM128
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE41:
		return "sse41"
	case LevelAVX2:
		return "avx2"
	case LevelNEON:
		return "neon"
	case LevelWASM128:
		return "wasm128"
	default:
		return "unknown"
	}
}

// currentLevel is the detected ISA for this runtime, set once by init() in
// dispatch_*.go and never written again afterward (the detection cache is
// monotone, per the concurrency model: idempotent, so concurrent readers
// never observe a torn value).
var currentLevel Level

// currentToken is the InstructionSet corresponding to currentLevel.
var currentToken InstructionSet = Scalar{}

// CurrentLevel returns the ISA this process dispatches to.
func CurrentLevel() Level { return currentLevel }

// CurrentWidth returns the native vector width, in bytes, of the current
// level's token (16 for everything except AVX2, which is 32).
func CurrentWidth() int { return currentToken.Width() }

// HasSIMD reports whether hardware SIMD acceleration is active, as opposed
// to the pure-Go scalar fallback.
func HasSIMD() bool { return currentLevel != LevelScalar }

// Best returns the highest-capability InstructionSet token detected for
// this process, cached after the first call (in practice, cached at
// package init time). It never fails: in the worst case it returns Scalar{}.
func Best() InstructionSet { return currentToken }

// NoSimdEnv reports whether SIMDCODEC_NO_SIMD is set, forcing scalar
// fallback regardless of detected CPU features. Useful for tests and for
// environments where feature detection is unreliable — the same rationale
// the teacher library states for its own HWY_NO_SIMD toggle.
func NoSimdEnv() bool {
	val := os.Getenv("SIMDCODEC_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
