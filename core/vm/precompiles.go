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

package vm

import (
	"github.com/probeum/levm/common"
	"github.com/probeum/levm/params"
	"github.com/probeum/levm/precompiles"
)

// PrecompiledContract is the interface every address in the precompile
// registry must satisfy: report the gas a given input costs to run, then run
// it against that budget.
type PrecompiledContract interface {
	RequiredGas(input []byte) uint64
	Run(input []byte) ([]byte, error)
}

// precompileAdapter adapts the precompiles package's pure functions, which
// know nothing about vm's gas accounting, to PrecompiledContract.
type precompileAdapter struct {
	gas func(input []byte) uint64
	run func(input []byte) ([]byte, error)
}

func (p precompileAdapter) RequiredGas(input []byte) uint64     { return p.gas(input) }
func (p precompileAdapter) Run(input []byte) ([]byte, error)    { return p.run(input) }

// precompileSetFrontier is active from Frontier onward.
var precompileSetFrontier = map[common.Address]PrecompiledContract{
	common.BytesToAddress([]byte{1}): precompileAdapter{precompiles.EcrecoverGas, precompiles.Ecrecover},
	common.BytesToAddress([]byte{2}): precompileAdapter{precompiles.Sha256Gas, precompiles.Sha256},
	common.BytesToAddress([]byte{3}): precompileAdapter{precompiles.Ripemd160Gas, precompiles.Ripemd160},
	common.BytesToAddress([]byte{4}): precompileAdapter{precompiles.IdentityGas, precompiles.Identity},
}

// precompileSetByzantium adds the EIP-196/197 BN256 curve operations and
// EIP-198 MODEXP.
var precompileSetByzantium = union(precompileSetFrontier, map[common.Address]PrecompiledContract{
	common.BytesToAddress([]byte{5}): precompileAdapter{precompiles.ModExpGas, precompiles.ModExp},
	common.BytesToAddress([]byte{6}): precompileAdapter{precompiles.Bn256AddGasByzantium, precompiles.Bn256Add},
	common.BytesToAddress([]byte{7}): precompileAdapter{precompiles.Bn256ScalarMulGasByzantium, precompiles.Bn256ScalarMul},
	common.BytesToAddress([]byte{8}): precompileAdapter{precompiles.Bn256PairingGasByzantium, precompiles.Bn256Pairing},
})

// precompileSetIstanbul reprices the BN256 operations (EIP-1108) and adds
// BLAKE2F (EIP-152).
var precompileSetIstanbul = union(precompileSetFrontier, map[common.Address]PrecompiledContract{
	common.BytesToAddress([]byte{5}): precompileAdapter{precompiles.ModExpGas, precompiles.ModExp},
	common.BytesToAddress([]byte{6}): precompileAdapter{precompiles.Bn256AddGasIstanbul, precompiles.Bn256Add},
	common.BytesToAddress([]byte{7}): precompileAdapter{precompiles.Bn256ScalarMulGasIstanbul, precompiles.Bn256ScalarMul},
	common.BytesToAddress([]byte{8}): precompileAdapter{precompiles.Bn256PairingGasIstanbul, precompiles.Bn256Pairing},
	common.BytesToAddress([]byte{9}): precompileAdapter{precompiles.Blake2FGas, precompiles.Blake2F},
})

// precompileSetCancun adds the EIP-4844 point-evaluation precompile.
var precompileSetCancun = union(precompileSetIstanbul, map[common.Address]PrecompiledContract{
	common.BytesToAddress([]byte{0x0a}): precompileAdapter{precompiles.PointEvaluationGas, precompiles.PointEvaluation},
})

func union(base map[common.Address]PrecompiledContract, extra map[common.Address]PrecompiledContract) map[common.Address]PrecompiledContract {
	out := make(map[common.Address]PrecompiledContract, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// LookupPrecompile resolves addr to the precompile active under spec, if any.
func LookupPrecompile(addr common.Address, spec params.SpecID) (PrecompiledContract, bool) {
	var set map[common.Address]PrecompiledContract
	switch {
	case spec.IsAtLeast(params.Cancun):
		set = precompileSetCancun
	case spec.IsAtLeast(params.Istanbul):
		set = precompileSetIstanbul
	case spec.IsAtLeast(params.Byzantium):
		set = precompileSetByzantium
	default:
		set = precompileSetFrontier
	}
	p, ok := set[addr]
	return p, ok
}

// ActivePrecompiles returns the set of addresses occupied by a precompile
// under spec, for EIP-2929 pre-warming: access-list preparation marks every
// active precompile warm before a transaction's top frame runs, since a
// CALL to one is never meant to pay the cold-access surcharge.
func ActivePrecompiles(spec params.SpecID) map[common.Address]struct{} {
	var set map[common.Address]PrecompiledContract
	switch {
	case spec.IsAtLeast(params.Cancun):
		set = precompileSetCancun
	case spec.IsAtLeast(params.Istanbul):
		set = precompileSetIstanbul
	case spec.IsAtLeast(params.Byzantium):
		set = precompileSetByzantium
	default:
		set = precompileSetFrontier
	}
	out := make(map[common.Address]struct{}, len(set))
	for addr := range set {
		out[addr] = struct{}{}
	}
	return out
}

// RunPrecompile charges RequiredGas against gas and, if it fits, runs the
// precompile. A failing precompile consumes all the gas it was given, same
// as a halted frame.
func RunPrecompile(p PrecompiledContract, input []byte, gas uint64) ([]byte, uint64, error) {
	cost := p.RequiredGas(input)
	if cost > gas {
		return nil, 0, ErrOutOfGas
	}
	output, err := p.Run(input)
	if err != nil {
		return nil, 0, err
	}
	return output, gas - cost, nil
}
