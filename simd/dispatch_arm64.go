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

//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = LevelScalar
		currentToken = Scalar{}
		return
	}

	// ARM64 (AArch64) always has NEON (Advanced SIMD) available; it is part
	// of the mandatory ARMv8-A baseline. cpu.ARM64.HasASIMD is checked for
	// consistency with the other dispatch files rather than because it can
	// plausibly be false on a real aarch64 build.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNEON
		currentToken = NEON{}
		return
	}

	currentLevel = LevelScalar
	currentToken = Scalar{}
}

// DetectNEON reports whether the host CPU supports NEON.
func DetectNEON() (NEON, bool) { return NEON{}, cpu.ARM64.HasASIMD }

// DetectSSE41 reports whether the host CPU supports SSE4.1 (always false on arm64).
func DetectSSE41() (SSE41, bool) { return SSE41{}, false }

// DetectAVX2 reports whether the host CPU supports AVX2 (always false on arm64).
func DetectAVX2() (AVX2, bool) { return AVX2{}, false }
