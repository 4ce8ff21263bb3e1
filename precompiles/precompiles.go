// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package precompiles implements the fixed-address contracts every hardfork
// wires into the precompile registry: signature recovery, hashing, big-int
// modular exponentiation, the BN256 curve operations, BLAKE2F compression,
// and KZG point evaluation. Each function is pure: given input bytes it
// returns output bytes or an error, with no notion of a gas meter or caller.
package precompiles

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/probeum/levm/common"
	"github.com/probeum/levm/params"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // precompile 3 is specified against this exact hash
)

var (
	errInputTooShort = errors.New("precompile: input too short")
	errInvalidInput  = errors.New("precompile: invalid input")
)

// Identity (0x04) returns its input unchanged.
func Identity(input []byte) ([]byte, error) { return common.CopyBytes(input), nil }

// IdentityGas charges a flat per-word rate for the Identity precompile.
func IdentityGas(input []byte) uint64 {
	return params.IdentityBaseGas + wordsIn(len(input))*params.IdentityPerWordGas
}

// Sha256 (0x02) returns the SHA-256 digest of its input.
func Sha256(input []byte) ([]byte, error) {
	h := sha256Sum(input)
	return h[:], nil
}

// Sha256Gas charges a flat per-word rate for the SHA-256 precompile.
func Sha256Gas(input []byte) uint64 {
	return params.Sha256BaseGas + wordsIn(len(input))*params.Sha256PerWordGas
}

// Ripemd160 (0x03) returns the 20-byte RIPEMD-160 digest, left-padded to 32
// bytes per the precompile ABI.
func Ripemd160(input []byte) ([]byte, error) {
	h := ripemd160.New()
	h.Write(input)
	sum := h.Sum(nil)
	out := make([]byte, 32)
	copy(out[32-len(sum):], sum)
	return out, nil
}

// Ripemd160Gas charges a flat per-word rate for the RIPEMD-160 precompile.
func Ripemd160Gas(input []byte) uint64 {
	return params.Ripemd160BaseGas + wordsIn(len(input))*params.Ripemd160PerWordGas
}

func wordsIn(n int) uint64 {
	return uint64((n + 31) / 32)
}

func bigFromInput(input []byte, start, length int) *big.Int {
	if start > len(input) {
		return new(big.Int)
	}
	end := start + length
	if end > len(input) {
		end = len(input)
	}
	return new(big.Int).SetBytes(input[start:end])
}

func readUint64(input []byte, offset int) uint64 {
	if offset+32 > len(input) {
		return 0
	}
	// EVM words are big-endian; only the low 8 bytes are read, so the upper
	// 24 bytes of a length that doesn't fit in 64 bits are ignored.
	return binary.BigEndian.Uint64(input[offset+24 : offset+32])
}
