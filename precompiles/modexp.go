// Copyright 2018 The go-ethereum Authors
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

	"github.com/probeum/levm/params"
)

// ModExp (0x05) computes base^exp mod modulus for arbitrary-length
// big-endian operands, per EIP-198. The input layout is three 32-byte
// lengths (baseLen, expLen, modLen) followed by the operands themselves.
func ModExp(input []byte) ([]byte, error) {
	baseLen := int(readUint64(input, 0))
	expLen := int(readUint64(input, 32))
	modLen := int(readUint64(input, 64))

	if baseLen == 0 && modLen == 0 {
		return []byte{}, nil
	}

	base := bigFromInput(input, 96, baseLen)
	exp := bigFromInput(input, 96+baseLen, expLen)
	mod := bigFromInput(input, 96+baseLen+expLen, modLen)

	out := make([]byte, modLen)
	if mod.Sign() == 0 {
		return out, nil
	}
	result := new(big.Int).Exp(base, exp, mod)
	result.FillBytes(out)
	return out, nil
}

// ModExpGas implements the EIP-2565 cost formula: a multiplication
// complexity term driven by the larger of baseLen/modLen, scaled by the
// bit length of the exponent, floored at ModExpMinGas.
func ModExpGas(input []byte) uint64 {
	baseLen := readUint64(input, 0)
	expLen := readUint64(input, 32)
	modLen := readUint64(input, 64)

	maxLen := baseLen
	if modLen > maxLen {
		maxLen = modLen
	}
	words := (maxLen + 7) / 8
	multComplexity := words * words

	expHead := bigFromInput(input, 96+int(baseLen), int(min64(expLen, 32)))
	adjExpLen := expBitLenAdjustment(expHead, expLen)

	gas := multComplexity * adjExpLen / params.ModExpQuadCoeffDivEIP2565
	if gas < params.ModExpMinGas {
		return params.ModExpMinGas
	}
	return gas
}

func expBitLenAdjustment(expHead *big.Int, expLen uint64) uint64 {
	bitLen := uint64(expHead.BitLen())
	if expLen <= 32 {
		if bitLen == 0 {
			return 0
		}
		return bitLen - 1
	}
	adj := uint64(8 * (expLen - 32))
	if bitLen > 1 {
		adj += bitLen - 1
	}
	return adj
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
