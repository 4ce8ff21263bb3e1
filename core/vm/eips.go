// Copyright 2021 The go-ethereum Authors
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

// This file layers each hardfork's opcode additions and gas repricings onto
// the Frontier base table built in jump_table_frontier.go, following the
// yellow paper's own incremental history instead of building sixteen
// independent tables.
package vm

import "github.com/probeum/levm/params"

func enableHomestead(jt *JumpTable) {
	jt[DELEGATECALL] = &operation{execute: opDelegateCall, constantGas: params.CallGasFrontier, dynamicGas: gasDelegateCall, minStack: 6, maxStack: 1024, memorySize: memoryDelegateStaticCall}
}

// enableEIP150 applies the Tangerine Whistle gas repricing (EIP-150).
func enableEIP150(jt *JumpTable) {
	jt[EXTCODESIZE].constantGas = params.ExtcodeSizeGasEIP150
	jt[EXTCODECOPY].constantGas = params.ExtcodeCopyBaseEIP150
	jt[BALANCE].constantGas = params.BalanceGasEIP150
	jt[SLOAD].constantGas = params.SloadGasEIP150
	jt[CALL].constantGas = params.CallGasEIP150
	jt[CALLCODE].constantGas = params.CallGasEIP150
	jt[DELEGATECALL].constantGas = params.CallGasEIP150
	jt[SELFDESTRUCT].constantGas = params.SelfdestructGasEIP150
}

// enableEIP158 applies the Spurious Dragon repricing (EIP-158/160/161).
func enableEIP158(jt *JumpTable) {
	jt[EXP].dynamicGas = gasExp
}

func enableByzantium(jt *JumpTable) {
	jt[REVERT] = &operation{execute: opRevert, constantGas: 0, minStack: 2, maxStack: 1024, memorySize: memoryReturn}
	jt[RETURNDATASIZE] = &operation{execute: opReturnDataSize, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[RETURNDATACOPY] = &operation{execute: opReturnDataCopy, constantGas: params.CopyGas, dynamicGas: gasReturnDataCopy, minStack: 3, maxStack: 1024, memorySize: memoryReturnDataCopy}
	jt[STATICCALL] = &operation{execute: opStaticCall, constantGas: params.CallGasEIP150, dynamicGas: gasStaticCall, minStack: 6, maxStack: 1024, memorySize: memoryDelegateStaticCall}
}

func enableConstantinople(jt *JumpTable) {
	jt[SHL] = &operation{execute: opShl, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[SHR] = &operation{execute: opShr, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[SAR] = &operation{execute: opSar, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[EXTCODEHASH] = &operation{execute: opExtCodeHash, constantGas: params.ExtcodeHashGasConstantinople, minStack: 1, maxStack: 1024}
	jt[CREATE2] = &operation{execute: opCreate2, constantGas: params.Create2Gas, dynamicGas: gasCreate2, minStack: 4, maxStack: 1024, memorySize: memoryCreate2}
}

// enablePetersburg undoes Constantinople's EIP-1283 net-metered SSTORE,
// which Petersburg reverted pending further analysis; this engine applies
// EIP-2200 net metering directly from Istanbul instead, so there is nothing
// further to patch here.
func enablePetersburg(jt *JumpTable) {}

func enableIstanbul(jt *JumpTable) {
	jt[CHAINID] = &operation{execute: opChainID, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[SELFBALANCE] = &operation{execute: opSelfBalance, constantGas: params.WarmStorageReadCostEIP2929, minStack: 0, maxStack: 1024}
	jt[BALANCE].constantGas = params.BalanceGasEIP1884
	jt[EXTCODEHASH].constantGas = params.ExtcodeHashGasEIP1884
	jt[SLOAD].constantGas = params.SloadGasEIP1884
}

func enableBerlin(jt *JumpTable) {
	// EIP-2929 access lists reprice the warm-path constant costs down to
	// WarmStorageReadCostEIP2929; the incremental cold surcharge is
	// collected by chargeAccountAccess/chargeSlotAccess inside the opcode
	// handlers that consult Host, after the Host call reports warm/cold.
	jt[SLOAD].constantGas = params.WarmStorageReadCostEIP2929
	jt[BALANCE].constantGas = params.WarmStorageReadCostEIP2929
	jt[EXTCODESIZE].constantGas = params.WarmStorageReadCostEIP2929
	jt[EXTCODECOPY].constantGas = params.WarmStorageReadCostEIP2929
	jt[EXTCODEHASH].constantGas = params.WarmStorageReadCostEIP2929
	jt[CALL].constantGas = params.WarmStorageReadCostEIP2929
	jt[CALLCODE].constantGas = params.WarmStorageReadCostEIP2929
	jt[DELEGATECALL].constantGas = params.WarmStorageReadCostEIP2929
	jt[STATICCALL].constantGas = params.WarmStorageReadCostEIP2929
}

func enableLondon(jt *JumpTable) {
	jt[BASEFEE] = &operation{execute: opBaseFee, constantGas: 2, minStack: 0, maxStack: 1024}
}

// enableMerge swaps DIFFICULTY's meaning to PREVRANDAO; the opcode byte and
// gas cost are unchanged, only the opDifficulty handler's data source
// (BlockContext.Random vs Difficulty) differs, already conditioned there.
func enableMerge(jt *JumpTable) {}

func enableShanghai(jt *JumpTable) {
	jt[PUSH0] = &operation{execute: opPush0, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[CREATE].dynamicGas = gasCreate
}

func enableCancun(jt *JumpTable) {
	jt[TLOAD] = &operation{execute: opTload, constantGas: params.WarmStorageReadCostEIP2929, minStack: 1, maxStack: 1024}
	jt[TSTORE] = &operation{execute: opTstore, constantGas: params.WarmStorageReadCostEIP2929, minStack: 2, maxStack: 1024}
	jt[MCOPY] = &operation{execute: opMcopy, constantGas: params.CopyGas, dynamicGas: gasMcopy, minStack: 3, maxStack: 1024, memorySize: memoryMcopy}
	jt[BLOBHASH] = &operation{execute: opBlobHash, constantGas: 3, minStack: 1, maxStack: 1024}
	jt[BLOBBASEFEE] = &operation{execute: opBlobBaseFee, constantGas: 2, minStack: 0, maxStack: 1024}
}

// enablePrague layers EIP-7702 set-code transaction support; the opcode
// table itself is unchanged, delegation resolution happens in LoadCode.
func enablePrague(jt *JumpTable) {}
