// Copyright 2016 The go-ethereum Authors
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
)

// coldAccountSurcharge is the EIP-2929 top-up charged the first time a
// transaction touches addr, on top of the warm constant gas already baked
// into the opcode. Zero pre-Berlin, where the cold cost is the opcode's
// entire constant gas instead.
func coldAccountSurcharge(isBerlin, cold bool) uint64 {
	if !isBerlin || !cold {
		return 0
	}
	return params.ColdAccountAccessCostEIP2929 - params.WarmStorageReadCostEIP2929
}

// coldSlotSurcharge is coldAccountSurcharge's storage-slot counterpart.
func coldSlotSurcharge(isBerlin, cold bool) uint64 {
	if !isBerlin || !cold {
		return 0
	}
	return params.ColdSloadCostEIP2929 - params.WarmStorageReadCostEIP2929
}

// chargeAccountAccess applies coldAccountSurcharge directly to g, for opcode
// handlers that charge gas as part of their own execution rather than
// through a dynamicGas hook.
func chargeAccountAccess(g *GasMeter, isBerlin, cold bool) error {
	return g.RecordCost(coldAccountSurcharge(isBerlin, cold))
}

// chargeSlotAccess is chargeAccountAccess's storage-slot counterpart.
func chargeSlotAccess(g *GasMeter, isBerlin, cold bool) error {
	return g.RecordCost(coldSlotSurcharge(isBerlin, cold))
}

// gasCall computes CALL's dynamic cost: the EIP-2929 cold-account surcharge,
// EIP-150's value-transfer surcharge, and the new-account surcharge (gated
// by EIP-161 to value-transferring calls once empty-account semantics
// exist).
func gasCall(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	addr := common.Address(stack.Back(1).Bytes20())
	transfersValue := !stack.Back(2).IsZero()
	exists, cold := evm.Host.LoadAccount(addr)
	gas := coldAccountSurcharge(evm.ChainRules.IsBerlin, cold)
	if transfersValue {
		gas += params.CallValueTransferGas
	}
	if !exists {
		if evm.ChainRules.IsEIP158 {
			if transfersValue {
				gas += params.CallNewAccountGas
			}
		} else {
			gas += params.CallNewAccountGas
		}
	}
	return gas, nil
}

// gasCallCode is CALL's cost model without the new-account surcharge: a
// CALLCODE never creates an account, it always re-enters the caller's own
// storage context.
func gasCallCode(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	addr := common.Address(stack.Back(1).Bytes20())
	transfersValue := !stack.Back(2).IsZero()
	_, cold := evm.Host.LoadAccount(addr)
	gas := coldAccountSurcharge(evm.ChainRules.IsBerlin, cold)
	if transfersValue {
		gas += params.CallValueTransferGas
	}
	return gas, nil
}

// gasDelegateCall and gasStaticCall carry no value and create no account, so
// only the cold-account surcharge applies.
func gasDelegateCall(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	addr := common.Address(stack.Back(1).Bytes20())
	_, cold := evm.Host.LoadAccount(addr)
	return coldAccountSurcharge(evm.ChainRules.IsBerlin, cold), nil
}

func gasStaticCall(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	addr := common.Address(stack.Back(1).Bytes20())
	_, cold := evm.Host.LoadAccount(addr)
	return coldAccountSurcharge(evm.ChainRules.IsBerlin, cold), nil
}

// sstoreCost computes the EIP-2200/2929/3529 net-metered SSTORE gas cost and
// refund-counter delta for a write that found original (transaction-start)
// and prior values in the slot and wrote current, given which hardfork rules
// apply. cold is whether this was the slot's first touch in the transaction
// (Berlin+).
//
// Every fork before Istanbul, Constantinople included (EIP-1283 is not
// implemented), uses the flat Frontier-era schedule. Istanbul through pre-Berlin
// use EIP-2200's net-gas schedule without a cold surcharge. Berlin onward
// fold the EIP-2929 cold-slot surcharge into the same net-gas shape.
func sstoreCost(rules params.Rules, original, prior, current common.Hash, cold bool) (uint64, int64) {
	if !rules.IsIstanbul {
		switch {
		case current == (common.Hash{}) && prior != (common.Hash{}):
			return params.SstoreResetGas, int64(params.SstoreClearRefundGas)
		case current != (common.Hash{}) && prior == (common.Hash{}):
			return params.SstoreSetGas, 0
		default:
			return params.SstoreResetGas, 0
		}
	}

	clearRefund := int64(params.NetSstoreClearRefund)
	if rules.IsLondon {
		clearRefund = int64(params.SstoreClearRefundEIP3529)
	}

	var coldCost uint64
	if rules.IsBerlin && cold {
		coldCost = params.ColdSloadCostEIP2929
	}

	if prior == current {
		warmRead := params.WarmStorageReadCostEIP2929
		if !rules.IsBerlin {
			warmRead = params.NetSstoreNoopGas
		}
		return coldCost + warmRead, 0
	}

	var gas uint64
	var refund int64
	if original == prior {
		if original == (common.Hash{}) {
			gas = params.NetSstoreInitGas
			if rules.IsBerlin {
				gas = params.SstoreInitGasEIP2929
			}
		} else {
			gas = params.NetSstoreCleanGas
			if rules.IsBerlin {
				gas = params.SstoreCleanGasEIP2929
			}
			if current == (common.Hash{}) {
				refund += clearRefund
			}
		}
	} else {
		gas = params.NetSstoreDirtyGas
		if rules.IsBerlin {
			gas = params.SstoreDirtyGasEIP2929
		}
		if original != (common.Hash{}) {
			if prior == (common.Hash{}) {
				refund -= clearRefund
			}
			if current == (common.Hash{}) {
				refund += clearRefund
			}
		}
		if original == current {
			if original == (common.Hash{}) {
				initRefund := int64(params.NetSstoreResetClearRefund)
				if rules.IsBerlin {
					initRefund = int64(params.SstoreInitRefundEIP2929)
				}
				refund += initRefund
			} else {
				cleanRefund := int64(params.NetSstoreResetRefund)
				if rules.IsBerlin {
					cleanRefund = int64(params.SstoreCleanRefundEIP2929)
				}
				refund += cleanRefund
			}
		}
	}
	return coldCost + gas, refund
}

// The memory* functions compute the minimal memory size (in bytes) an operation with
// stack layout (offset, size, ...) touches, for JumpTable.memorySize.

func memorySha3(stack *Stack) (uint64, bool) {
	return CalcMemSize64(stack.Back(0), stack.Back(1))
}

func memoryCallDataCopy(stack *Stack) (uint64, bool) {
	return CalcMemSize64(stack.Back(0), stack.Back(2))
}

func memoryCodeCopy(stack *Stack) (uint64, bool) {
	return CalcMemSize64(stack.Back(0), stack.Back(2))
}

func memoryExtCodeCopy(stack *Stack) (uint64, bool) {
	return CalcMemSize64(stack.Back(1), stack.Back(3))
}

func memoryReturnDataCopy(stack *Stack) (uint64, bool) {
	return CalcMemSize64(stack.Back(0), stack.Back(2))
}

func memoryMLoad(stack *Stack) (uint64, bool) {
	return calcMemSize64WithUint(stack.Back(0), 32)
}

func memoryMStore(stack *Stack) (uint64, bool) {
	return calcMemSize64WithUint(stack.Back(0), 32)
}

func memoryMStore8(stack *Stack) (uint64, bool) {
	return calcMemSize64WithUint(stack.Back(0), 1)
}

func memoryLog(stack *Stack) (uint64, bool) {
	return CalcMemSize64(stack.Back(0), stack.Back(1))
}

func memoryReturn(stack *Stack) (uint64, bool) {
	return CalcMemSize64(stack.Back(0), stack.Back(1))
}

func memoryCreate(stack *Stack) (uint64, bool) {
	return CalcMemSize64(stack.Back(1), stack.Back(2))
}

func memoryCreate2(stack *Stack) (uint64, bool) {
	return CalcMemSize64(stack.Back(1), stack.Back(2))
}

func memoryCall(stack *Stack) (uint64, bool) {
	x, overflow := CalcMemSize64(stack.Back(3), stack.Back(4))
	if overflow {
		return 0, true
	}
	y, overflow := CalcMemSize64(stack.Back(5), stack.Back(6))
	if overflow {
		return 0, true
	}
	if x > y {
		return x, false
	}
	return y, false
}

func memoryDelegateStaticCall(stack *Stack) (uint64, bool) {
	x, overflow := CalcMemSize64(stack.Back(2), stack.Back(3))
	if overflow {
		return 0, true
	}
	y, overflow := CalcMemSize64(stack.Back(4), stack.Back(5))
	if overflow {
		return 0, true
	}
	if x > y {
		return x, false
	}
	return y, false
}

func memoryMcopy(stack *Stack) (uint64, bool) {
	x, overflow := calcMemSize64WithUint(stack.Back(0), stack.Back(2).Uint64())
	if overflow {
		return 0, true
	}
	y, overflow := calcMemSize64WithUint(stack.Back(1), stack.Back(2).Uint64())
	if overflow {
		return 0, true
	}
	if x > y {
		return x, false
	}
	return y, false
}

// gasSha3Dynamic charges per-word hashing cost on top of the constant base.
func gasSha3Dynamic(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	wordGas, overflow := bigWordGas(stack.Back(1).Uint64(), params.Sha3WordGas)
	if overflow {
		return 0, ErrGasUintOverflow
	}
	return wordGas, nil
}

func bigWordGas(size, wordCost uint64) (uint64, bool) {
	words := toWordSize(size)
	cost := words * wordCost
	if wordCost != 0 && cost/wordCost != words {
		return 0, true
	}
	return cost, false
}

func gasCopyDynamic(stack *Stack, sizeIdx int) (uint64, error) {
	wordGas, overflow := bigWordGas(stack.Back(sizeIdx).Uint64(), params.CopyGas)
	if overflow {
		return 0, ErrGasUintOverflow
	}
	return wordGas, nil
}

func gasCallDataCopy(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	return gasCopyDynamic(stack, 2)
}

func gasCodeCopy(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	return gasCopyDynamic(stack, 2)
}

func gasExtCodeCopy(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	return gasCopyDynamic(stack, 3)
}

func gasReturnDataCopy(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	return gasCopyDynamic(stack, 2)
}

func gasMcopy(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	return gasCopyDynamic(stack, 2)
}

func gasLogDynamic(n int) gasFunc {
	return func(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
		requestedSize := stack.Back(1).Uint64()
		wordGas, overflow := bigWordGas(requestedSize, params.LogDataGas)
		if overflow {
			return 0, ErrGasUintOverflow
		}
		return uint64(n)*params.LogTopicGas + wordGas, nil
	}
}

func gasExp(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	expByteLen := uint64((stack.Back(1).BitLen() + 7) / 8)
	byteCost := uint64(params.ExpByteEIP158)
	if !evm.ChainRules.IsEIP158 {
		byteCost = params.ExpByteFrontier
	}
	return expByteLen * byteCost, nil
}

func gasCreate(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	if !evm.ChainRules.IsShanghai {
		return 0, nil
	}
	size := stack.Back(2).Uint64()
	return initCodeWordGas(size), nil
}

func gasCreate2(evm *EVM, contract *Contract, stack *Stack, mem *Memory, memorySize uint64) (uint64, error) {
	size := stack.Back(2).Uint64()
	wordGas, overflow := bigWordGas(size, params.Sha3WordGas)
	if overflow {
		return 0, ErrGasUintOverflow
	}
	cost := wordGas
	if evm.ChainRules.IsShanghai {
		cost += initCodeWordGas(size)
	}
	return cost, nil
}

func initCodeWordGas(size uint64) uint64 {
	return toWordSize(size) * params.InitCodeWordGas
}
