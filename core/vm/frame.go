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
	"github.com/holiman/uint256"
	"github.com/probeum/levm/common"
	"github.com/probeum/levm/crypto"
	"github.com/probeum/levm/params"
)

// Call assembles a Call frame: it transfers value (unless zero), checkpoints
// the journal, loads the target's code (following one level of EIP-7702
// delegation), and runs an interpreter over it. Precompiles are dispatched
// here instead of through the interpreter. Depth-limit and insufficient-
// balance failures return a failure with empty output without reverting the
// caller's own journal scope.
func (evm *EVM) Call(caller, addr common.Address, input []byte, gas uint64, value *uint256.Int, isStatic bool) ([]byte, uint64, error) {
	if evm.depth > params.MaxCallDepth {
		return nil, gas, ErrDepth
	}
	valueBig := value.ToBig()
	if valueBig.Sign() != 0 {
		if evm.Host.GetBalance(caller).Cmp(valueBig) < 0 {
			return nil, gas, ErrInsufficientBalance
		}
	}

	snapshot := evm.Host.Snapshot()
	evm.Host.LoadAccount(addr)

	if !evm.Host.Exist(addr) {
		if precompile, ok := lookupPrecompile(addr, evm.SpecID); !ok {
			// Non-existent, non-precompile accounts are touched (for
			// EIP-161 state clearing) but otherwise receiving a call is a
			// silent no-op provided the call has no value.
			if valueBig.Sign() == 0 {
				return nil, gas, nil
			}
			evm.Host.CreateAccount(addr)
		} else {
			_ = precompile
		}
	}
	if err := evm.Host.Transfer(caller, addr, valueBig); err != nil {
		evm.Host.RevertToSnapshot(snapshot)
		return nil, gas, err
	}

	if precompile, ok := lookupPrecompile(addr, evm.SpecID); ok {
		ret, remainingGas, err := RunPrecompile(precompile, input, gas)
		if err != nil {
			evm.Host.RevertToSnapshot(snapshot)
			remainingGas = 0
		}
		return ret, remainingGas, err
	}

	code, _ := evm.Host.LoadCode(addr)
	if len(code) == 0 {
		return nil, gas, nil
	}
	contract := NewContract(caller, addr, value, NewGasMeter(gas))
	contract.IsStatic = isStatic
	contract.SetCallCode(addr, AnalyzeCached(evm.Host.GetCodeHash(addr), code))

	ret, err := evm.interpreter.Run(contract, input, isStatic)
	remaining := contract.Gas.Remaining()
	if err != nil {
		evm.Host.RevertToSnapshot(snapshot)
		if err != ErrExecutionReverted {
			remaining = 0
		}
	}
	return ret, remaining, err
}

// CallCode behaves like Call except the target's code executes in the
// caller's storage/address context.
func (evm *EVM) CallCode(caller, addr common.Address, input []byte, gas uint64, value *uint256.Int) ([]byte, uint64, error) {
	if evm.depth > params.MaxCallDepth {
		return nil, gas, ErrDepth
	}
	if evm.Host.GetBalance(caller).Cmp(value.ToBig()) < 0 {
		return nil, gas, ErrInsufficientBalance
	}
	snapshot := evm.Host.Snapshot()
	evm.Host.LoadAccount(addr)

	if precompile, ok := lookupPrecompile(addr, evm.SpecID); ok {
		ret, remainingGas, err := RunPrecompile(precompile, input, gas)
		if err != nil {
			evm.Host.RevertToSnapshot(snapshot)
			remainingGas = 0
		}
		return ret, remainingGas, err
	}

	code, _ := evm.Host.LoadCode(addr)
	contract := NewContract(caller, caller, value, NewGasMeter(gas))
	contract.SetCallCode(addr, AnalyzeCached(evm.Host.GetCodeHash(addr), code))

	ret, err := evm.interpreter.Run(contract, input, false)
	remaining := contract.Gas.Remaining()
	if err != nil {
		evm.Host.RevertToSnapshot(snapshot)
		if err != ErrExecutionReverted {
			remaining = 0
		}
	}
	return ret, remaining, err
}

// DelegateCall behaves like CallCode except the caller and call value are
// also inherited from the parent frame, and no value transfer occurs.
func (evm *EVM) DelegateCall(parent *Contract, addr common.Address, input []byte, gas uint64) ([]byte, uint64, error) {
	if evm.depth > params.MaxCallDepth {
		return nil, gas, ErrDepth
	}
	snapshot := evm.Host.Snapshot()
	evm.Host.LoadAccount(addr)

	if precompile, ok := lookupPrecompile(addr, evm.SpecID); ok {
		ret, remainingGas, err := RunPrecompile(precompile, input, gas)
		if err != nil {
			evm.Host.RevertToSnapshot(snapshot)
			remainingGas = 0
		}
		return ret, remainingGas, err
	}

	code, _ := evm.Host.LoadCode(addr)
	contract := NewContract(parent.Caller(), parent.Address(), parent.Value(), NewGasMeter(gas))
	contract.SetCallCode(addr, AnalyzeCached(evm.Host.GetCodeHash(addr), code))

	ret, err := evm.interpreter.Run(contract, input, false)
	remaining := contract.Gas.Remaining()
	if err != nil {
		evm.Host.RevertToSnapshot(snapshot)
		if err != ErrExecutionReverted {
			remaining = 0
		}
	}
	return ret, remaining, err
}

// StaticCall behaves like Call with a zero value and is_static forced true
// for the child and every frame it spawns.
func (evm *EVM) StaticCall(caller, addr common.Address, input []byte, gas uint64) ([]byte, uint64, error) {
	if evm.depth > params.MaxCallDepth {
		return nil, gas, ErrDepth
	}
	snapshot := evm.Host.Snapshot()
	evm.Host.LoadAccount(addr)

	if precompile, ok := lookupPrecompile(addr, evm.SpecID); ok {
		ret, remainingGas, err := RunPrecompile(precompile, input, gas)
		if err != nil {
			evm.Host.RevertToSnapshot(snapshot)
			remainingGas = 0
		}
		return ret, remainingGas, err
	}

	code, _ := evm.Host.LoadCode(addr)
	contract := NewContract(caller, addr, new(uint256.Int), NewGasMeter(gas))
	contract.IsStatic = true
	contract.SetCallCode(addr, AnalyzeCached(evm.Host.GetCodeHash(addr), code))

	ret, err := evm.interpreter.Run(contract, input, true)
	remaining := contract.Gas.Remaining()
	if err != nil {
		evm.Host.RevertToSnapshot(snapshot)
		if err != ErrExecutionReverted {
			remaining = 0
		}
	}
	return ret, remaining, err
}

// Create derives the new address from (creator, nonce-before-increment),
// checkpoints, transfers value, and runs initcode; on successful return it
// charges the code-deposit cost and stores the returned code, rejecting code
// starting with 0xEF per EIP-3541.
func (evm *EVM) Create(creator common.Address, initCode []byte, gas uint64, value *uint256.Int) ([]byte, common.Address, uint64, error) {
	nonce := evm.Host.GetNonce(creator)
	addr := crypto.CreateAddress(creator, nonce)
	return evm.create(creator, addr, initCode, gas, value)
}

// Create2 derives the new address from (creator, salt, keccak256(initcode)).
func (evm *EVM) Create2(creator common.Address, initCode []byte, gas uint64, value, salt *uint256.Int) ([]byte, common.Address, uint64, error) {
	codeHash := crypto.Keccak256(initCode)
	addr := crypto.CreateAddress2(creator, salt.Bytes32(), codeHash)
	return evm.create(creator, addr, initCode, gas, value)
}

func (evm *EVM) create(creator, addr common.Address, initCode []byte, gas uint64, value *uint256.Int) ([]byte, common.Address, uint64, error) {
	if evm.depth > params.MaxCallDepth {
		return nil, common.Address{}, gas, ErrDepth
	}
	if len(initCode) > params.MaxInitCodeSize {
		return nil, common.Address{}, gas, ErrMaxInitCodeSizeExceeded
	}
	valueBig := value.ToBig()
	if evm.Host.GetBalance(creator).Cmp(valueBig) < 0 {
		return nil, common.Address{}, gas, ErrInsufficientBalance
	}
	newNonce := evm.Host.GetNonce(creator) + 1
	evm.Host.SetNonce(creator, newNonce)

	if evm.Host.GetNonce(addr) != 0 || (evm.Host.GetCodeHash(addr) != common.Hash{} && evm.Host.GetCodeHash(addr) != emptyCodeHash) {
		return nil, addr, gas, ErrContractAddressCollision
	}

	snapshot := evm.Host.Snapshot()
	if err := evm.Host.CreateAccount(addr); err != nil {
		evm.Host.RevertToSnapshot(snapshot)
		return nil, addr, gas, err
	}
	if evm.ChainRules.IsEIP158 {
		evm.Host.SetNonce(addr, 1)
	}
	if err := evm.Host.Transfer(creator, addr, valueBig); err != nil {
		evm.Host.RevertToSnapshot(snapshot)
		return nil, addr, gas, err
	}

	contract := NewContract(creator, addr, value, NewGasMeter(gas))
	contract.SetCallCode(addr, Analyze(initCode))

	ret, err := evm.interpreter.Run(contract, nil, false)
	remaining := contract.Gas.Remaining()

	if err == nil {
		if len(ret) > 0 && ret[0] == 0xEF {
			err = ErrInvalidCode
		} else if evm.ChainRules.IsEIP158 && len(ret) > params.MaxCodeSize {
			err = ErrMaxCodeSizeExceeded
		}
	}
	if err == nil {
		depositCost := uint64(len(ret)) * params.CreateDataGas
		meter := &GasMeter{limit: remaining}
		if e := meter.RecordCost(depositCost); e != nil {
			err = ErrCodeStoreOutOfGas
		} else {
			remaining -= depositCost
			evm.Host.SetCode(addr, ret)
		}
	}
	if err != nil {
		evm.Host.RevertToSnapshot(snapshot)
		if err != ErrExecutionReverted {
			remaining = 0
		}
		return ret, addr, remaining, err
	}
	return ret, addr, remaining, nil
}

var emptyCodeHash = crypto.Keccak256Hash(nil)

// lookupPrecompile resolves addr to a precompile active at spec, if any.
func lookupPrecompile(addr common.Address, spec params.SpecID) (PrecompiledContract, bool) {
	return LookupPrecompile(addr, spec)
}
