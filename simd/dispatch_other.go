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

//go:build !amd64 && !arm64 && !wasm

package simd

func init() {
	// Every other GOARCH (riscv64, 386, 32-bit arm, ...) falls back to the
	// scalar backend: the IR's contract never depends on hardware SIMD
	// being present.
	currentLevel = LevelScalar
	currentToken = Scalar{}
}

// DetectSSE41 always reports false outside amd64.
func DetectSSE41() (SSE41, bool) { return SSE41{}, false }

// DetectAVX2 always reports false outside amd64.
func DetectAVX2() (AVX2, bool) { return AVX2{}, false }

// DetectNEON always reports false outside arm64.
func DetectNEON() (NEON, bool) { return NEON{}, false }
