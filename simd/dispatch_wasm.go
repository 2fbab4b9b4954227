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

//go:build wasm

package simd

func init() {
	if NoSimdEnv() {
		currentLevel = LevelScalar
		currentToken = Scalar{}
		return
	}

	// The WebAssembly 128-bit SIMD proposal is a build-time fact, not a
	// runtime CPU query: a `wasm` build either targets an engine that
	// implements the proposal or it does not validate at all, so detection
	// here is unconditional once the build tag matches.
	currentLevel = LevelWASM128
	currentToken = WASM128{}
}

// DetectWASM128 reports whether the WASM128 SIMD proposal is available
// (always true on a `wasm` build, since it is a compile-time property).
func DetectWASM128() (WASM128, bool) { return WASM128{}, true }

// DetectSSE41 always reports false on wasm.
func DetectSSE41() (SSE41, bool) { return SSE41{}, false }

// DetectAVX2 always reports false on wasm.
func DetectAVX2() (AVX2, bool) { return AVX2{}, false }

// DetectNEON always reports false on wasm.
func DetectNEON() (NEON, bool) { return NEON{}, false }
