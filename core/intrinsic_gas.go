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

package core

import (
	"github.com/probeum/levm/core/types"
	"github.com/probeum/levm/params"
)

// IntrinsicGas computes the gas a message must pay before a single byte of
// its code runs: the flat per-transaction floor, the per-byte cost of its
// calldata, the contract-creation surcharge and its EIP-3860 init-code word
// cost, the EIP-2930 access-list cost, and the EIP-7702 authorization-list
// cost. It never touches state; callers charge it against msg.GasLimit
// before constructing a frame.
func IntrinsicGas(data []byte, accessList types.AccessList, authList []types.AuthorizationTuple, isContractCreation bool, rules params.Rules) (uint64, error) {
	var gas uint64
	if isContractCreation {
		gas = params.TxGasContractCreation
	} else {
		gas = params.TxGas
	}

	if len(data) > 0 {
		var nonZero uint64
		for _, b := range data {
			if b != 0 {
				nonZero++
			}
		}
		zero := uint64(len(data)) - nonZero

		nonZeroGas := params.TxDataNonZeroGasFrontier
		if rules.IsIstanbul {
			nonZeroGas = params.TxDataNonZeroGasEIP2028
		}
		g, overflow := addGas(gas, nonZero*nonZeroGas)
		if overflow {
			return 0, ErrGasUintOverflow
		}
		g, overflow = addGas(g, zero*params.TxDataZeroGas)
		if overflow {
			return 0, ErrGasUintOverflow
		}
		gas = g

		if isContractCreation && rules.IsShanghai {
			words := (uint64(len(data)) + 31) / 32
			g, overflow := addGas(gas, words*params.InitCodeWordGas)
			if overflow {
				return 0, ErrGasUintOverflow
			}
			gas = g
		}
	}

	if len(accessList) > 0 {
		g, overflow := addGas(gas, uint64(len(accessList))*params.TxAccessListAddressGas)
		if overflow {
			return 0, ErrGasUintOverflow
		}
		gas = g
		g, overflow = addGas(gas, uint64(accessList.StorageKeys())*params.TxAccessListStorageKeyGas)
		if overflow {
			return 0, ErrGasUintOverflow
		}
		gas = g
	}

	if len(authList) > 0 {
		g, overflow := addGas(gas, uint64(len(authList))*params.PerAuthBaseCost)
		if overflow {
			return 0, ErrGasUintOverflow
		}
		gas = g
	}

	return gas, nil
}

func addGas(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum < a
}
