// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

// Package rlp implements the minimal subset of Ethereum's Recursive Length
// Prefix encoding the execution engine needs: encoding a byte string and a
// two-element list of (address, uint64), used to derive CREATE addresses.
//
// There is no general-purpose third-party RLP encoder in the example corpus;
// go-ethereum forks all vendor their own "rlp" package rather than depend on
// one externally, so this follows the same convention.
package rlp

import "math/bits"

// EncodeBytes returns the RLP encoding of a single byte string.
func EncodeBytes(b []byte) []byte {
	if len(b) == 1 && b[0] < 0x80 {
		return []byte{b[0]}
	}
	return append(encodeLength(len(b), 0x80), b...)
}

// EncodeUint64 returns the RLP encoding of an unsigned integer, using the
// minimal big-endian byte representation (no leading zero bytes).
func EncodeUint64(i uint64) []byte {
	if i == 0 {
		return []byte{0x80}
	}
	if i < 0x80 {
		return []byte{byte(i)}
	}
	n := (bits.Len64(i) + 7) / 8
	b := make([]byte, n)
	for k := n - 1; k >= 0; k-- {
		b[k] = byte(i)
		i >>= 8
	}
	return EncodeBytes(b)
}

// EncodeList wraps the concatenation of already-encoded items in an RLP list
// header.
func EncodeList(items ...[]byte) []byte {
	var body []byte
	for _, it := range items {
		body = append(body, it...)
	}
	return append(encodeLength(len(body), 0xc0), body...)
}

func encodeLength(l int, offset byte) []byte {
	if l < 56 {
		return []byte{offset + byte(l)}
	}
	lenBytes := encodeBigEndian(uint64(l))
	return append([]byte{offset + 55 + byte(len(lenBytes))}, lenBytes...)
}

func encodeBigEndian(i uint64) []byte {
	n := (bits.Len64(i) + 7) / 8
	if n == 0 {
		n = 1
	}
	b := make([]byte, n)
	for k := n - 1; k >= 0; k-- {
		b[k] = byte(i)
		i >>= 8
	}
	return b
}
