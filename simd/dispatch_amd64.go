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

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX2:
		currentLevel = LevelAVX2
		currentToken = AVX2{}
	case cpu.X86.HasSSE41:
		currentLevel = LevelSSE41
		currentToken = SSE41{}
	default:
		setScalarMode()
	}
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentToken = Scalar{}
}

// DetectSSE41 reports whether the host CPU supports SSE4.1, independent of
// which level Best() ultimately picked.
func DetectSSE41() (SSE41, bool) { return SSE41{}, cpu.X86.HasSSE41 }

// DetectAVX2 reports whether the host CPU supports AVX2.
func DetectAVX2() (AVX2, bool) { return AVX2{}, cpu.X86.HasAVX2 }

// DetectNEON reports whether the host CPU supports NEON (always false on amd64).
func DetectNEON() (NEON, bool) { return NEON{}, false }
