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

// This file provides the IR's bitwise operation menu: and, or, xor, not,
// andnot, at the byte level (bitwise ops don't care about lane width).

// And128 returns the bitwise AND of a and b.
func And128(a, b V128) V128 {
	var out V128
	for i := range out.b {
		out.b[i] = a.b[i] & b.b[i]
	}
	return out
}

// Or128 returns the bitwise OR of a and b.
func Or128(a, b V128) V128 {
	var out V128
	for i := range out.b {
		out.b[i] = a.b[i] | b.b[i]
	}
	return out
}

// Xor128 returns the bitwise XOR of a and b.
func Xor128(a, b V128) V128 {
	var out V128
	for i := range out.b {
		out.b[i] = a.b[i] ^ b.b[i]
	}
	return out
}

// Not128 returns the bitwise complement of v.
func Not128(v V128) V128 {
	var out V128
	for i := range out.b {
		out.b[i] = ^v.b[i]
	}
	return out
}

// AndNot128 returns (^a) & b — the Highway/Intel AndNot convention where
// the first operand is the one that gets inverted.
func AndNot128(a, b V128) V128 {
	var out V128
	for i := range out.b {
		out.b[i] = (^a.b[i]) & b.b[i]
	}
	return out
}

// And256 returns the bitwise AND of a and b.
func And256(a, b V256) V256 {
	var out V256
	for i := range out.b {
		out.b[i] = a.b[i] & b.b[i]
	}
	return out
}

// Or256 returns the bitwise OR of a and b.
func Or256(a, b V256) V256 {
	var out V256
	for i := range out.b {
		out.b[i] = a.b[i] | b.b[i]
	}
	return out
}

// Xor256 returns the bitwise XOR of a and b.
func Xor256(a, b V256) V256 {
	var out V256
	for i := range out.b {
		out.b[i] = a.b[i] ^ b.b[i]
	}
	return out
}

// Not256 returns the bitwise complement of v.
func Not256(v V256) V256 {
	var out V256
	for i := range out.b {
		out.b[i] = ^v.b[i]
	}
	return out
}

// AndNot256 returns (^a) & b.
func AndNot256(a, b V256) V256 {
	var out V256
	for i := range out.b {
		out.b[i] = (^a.b[i]) & b.b[i]
	}
	return out
}
