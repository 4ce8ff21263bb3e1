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

package precompiles

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/probeum/levm/common"
	"github.com/probeum/levm/crypto"
	"github.com/probeum/levm/params"
)

// EcrecoverGas is a flat-rate precompile; input size does not affect cost.
func EcrecoverGas(_ []byte) uint64 { return params.EcrecoverGas }

// Ecrecover (0x01) recovers the signing address from a (hash, v, r, s)
// tuple, returning it left-padded to 32 bytes. Malformed input or a
// signature that fails to recover yields empty output, not an error: callers
// see a zero address, matching the ABI every Solidity contract assumes.
func Ecrecover(input []byte) ([]byte, error) {
	input = rightPad(input, 128)

	var (
		hash = input[:32]
		v    = new(big.Int).SetBytes(input[32:64])
		r    = new(big.Int).SetBytes(input[64:96])
		s    = new(big.Int).SetBytes(input[96:128])
	)
	if !validSignatureValues(v, r, s) {
		return nil, nil
	}

	sig := make([]byte, 65)
	sig[0] = byte(v.Uint64()) + 27
	copy(sig[1:33], input[64:96])
	copy(sig[33:65], input[96:128])

	pub, _, err := btcec.RecoverCompact(btcec.S256(), sig, hash)
	if err != nil {
		return nil, nil
	}

	addr := common.BytesToAddress(crypto.Keccak256(pub.SerializeUncompressed()[1:])[12:])
	out := make([]byte, 32)
	copy(out[12:], addr[:])
	return out, nil
}

func validSignatureValues(v, r, s *big.Int) bool {
	if v.Uint64() != 0 && v.Uint64() != 1 {
		return false
	}
	if r.Sign() == 0 || s.Sign() == 0 {
		return false
	}
	return r.Cmp(btcec.S256().N) < 0 && s.Cmp(btcec.S256().N) < 0
}

func rightPad(input []byte, size int) []byte {
	if len(input) >= size {
		return input[:size]
	}
	out := make([]byte, size)
	copy(out, input)
	return out
}
