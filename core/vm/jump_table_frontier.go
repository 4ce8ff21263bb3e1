// Copyright 2015 The go-ethereum Authors
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

import "github.com/probeum/levm/params"

// newFrontierInstructionSet returns the opcode table as it existed at the
// genesis ruleset. Later hardforks layer additions and repricings on top of
// a copy of this table via the enableX functions in eips.go.
func newFrontierInstructionSet() *JumpTable {
	jt := &JumpTable{}

	jt[STOP] = &operation{execute: opStop, constantGas: 0, minStack: 0, maxStack: 1024}
	jt[ADD] = &operation{execute: opAdd, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[MUL] = &operation{execute: opMul, constantGas: 5, minStack: 2, maxStack: 1024}
	jt[SUB] = &operation{execute: opSub, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[DIV] = &operation{execute: opDiv, constantGas: 5, minStack: 2, maxStack: 1024}
	jt[SDIV] = &operation{execute: opSdiv, constantGas: 5, minStack: 2, maxStack: 1024}
	jt[MOD] = &operation{execute: opMod, constantGas: 5, minStack: 2, maxStack: 1024}
	jt[SMOD] = &operation{execute: opSmod, constantGas: 5, minStack: 2, maxStack: 1024}
	jt[ADDMOD] = &operation{execute: opAddmod, constantGas: 8, minStack: 3, maxStack: 1024}
	jt[MULMOD] = &operation{execute: opMulmod, constantGas: 8, minStack: 3, maxStack: 1024}
	jt[EXP] = &operation{execute: opExp, constantGas: params.ExpGas, dynamicGas: gasExp, minStack: 2, maxStack: 1024}
	jt[SIGNEXTEND] = &operation{execute: opSignExtend, constantGas: 5, minStack: 2, maxStack: 1024}
	jt[LT] = &operation{execute: opLt, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[GT] = &operation{execute: opGt, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[SLT] = &operation{execute: opSlt, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[SGT] = &operation{execute: opSgt, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[EQ] = &operation{execute: opEq, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[ISZERO] = &operation{execute: opIszero, constantGas: 3, minStack: 1, maxStack: 1024}
	jt[AND] = &operation{execute: opAnd, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[OR] = &operation{execute: opOr, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[XOR] = &operation{execute: opXor, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[NOT] = &operation{execute: opNot, constantGas: 3, minStack: 1, maxStack: 1024}
	jt[BYTE] = &operation{execute: opByte, constantGas: 3, minStack: 2, maxStack: 1024}
	jt[KECCAK256] = &operation{execute: opSha3, constantGas: params.Sha3Gas, dynamicGas: gasSha3Dynamic, minStack: 2, maxStack: 1024, memorySize: memorySha3}

	jt[ADDRESS] = &operation{execute: opAddress, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[BALANCE] = &operation{execute: opBalance, constantGas: params.BalanceGasFrontier, minStack: 1, maxStack: 1024}
	jt[ORIGIN] = &operation{execute: opOrigin, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[CALLER] = &operation{execute: opCaller, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[CALLVALUE] = &operation{execute: opCallValue, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[CALLDATALOAD] = &operation{execute: opCallDataLoad, constantGas: 3, minStack: 1, maxStack: 1024}
	jt[CALLDATASIZE] = &operation{execute: opCallDataSize, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[CALLDATACOPY] = &operation{execute: opCallDataCopy, constantGas: params.CopyGas, dynamicGas: gasCallDataCopy, minStack: 3, maxStack: 1024, memorySize: memoryCallDataCopy}
	jt[CODESIZE] = &operation{execute: opCodeSize, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[CODECOPY] = &operation{execute: opCodeCopy, constantGas: params.CopyGas, dynamicGas: gasCodeCopy, minStack: 3, maxStack: 1024, memorySize: memoryCodeCopy}
	jt[GASPRICE] = &operation{execute: opGasprice, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[EXTCODESIZE] = &operation{execute: opExtCodeSize, constantGas: params.ExtcodeSizeGasFrontier, minStack: 1, maxStack: 1024}
	jt[EXTCODECOPY] = &operation{execute: opExtCodeCopy, constantGas: params.ExtcodeCopyBaseFrontier, dynamicGas: gasExtCodeCopy, minStack: 4, maxStack: 1024, memorySize: memoryExtCodeCopy}

	jt[BLOCKHASH] = &operation{execute: opBlockhash, constantGas: 20, minStack: 1, maxStack: 1024}
	jt[COINBASE] = &operation{execute: opCoinbase, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[TIMESTAMP] = &operation{execute: opTimestamp, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[NUMBER] = &operation{execute: opNumber, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[DIFFICULTY] = &operation{execute: opDifficulty, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[GASLIMIT] = &operation{execute: opGasLimit, constantGas: 2, minStack: 0, maxStack: 1024}

	jt[POP] = &operation{execute: opPop, constantGas: 2, minStack: 1, maxStack: 1024}
	jt[MLOAD] = &operation{execute: opMload, constantGas: 3, minStack: 1, maxStack: 1024, memorySize: memoryMLoad}
	jt[MSTORE] = &operation{execute: opMstore, constantGas: 3, minStack: 2, maxStack: 1024, memorySize: memoryMStore}
	jt[MSTORE8] = &operation{execute: opMstore8, constantGas: 3, minStack: 2, maxStack: 1024, memorySize: memoryMStore8}
	jt[SLOAD] = &operation{execute: opSload, constantGas: params.SloadGasFrontier, minStack: 1, maxStack: 1024}
	jt[SSTORE] = &operation{execute: opSstore, constantGas: 0, minStack: 2, maxStack: 1024}
	jt[JUMP] = &operation{execute: opJump, constantGas: 8, minStack: 1, maxStack: 1024}
	jt[JUMPI] = &operation{execute: opJumpi, constantGas: 10, minStack: 2, maxStack: 1024}
	jt[PC] = &operation{execute: opPc, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[MSIZE] = &operation{execute: opMsize, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[GAS] = &operation{execute: opGas, constantGas: 2, minStack: 0, maxStack: 1024}
	jt[JUMPDEST] = &operation{execute: opJumpdest, constantGas: params.JumpdestGas, minStack: 0, maxStack: 1024}

	for op := PUSH1; op <= PUSH32; op++ {
		n := uint64(op - PUSH1 + 1)
		jt[op] = &operation{execute: makePush(n), constantGas: 3, minStack: 0, maxStack: 1024}
	}
	for op := DUP1; op <= DUP16; op++ {
		n := int(op-DUP1) + 1
		jt[op] = &operation{execute: makeDup(n), constantGas: 3, minStack: n, maxStack: 1024}
	}
	for op := SWAP1; op <= SWAP16; op++ {
		n := int(op-SWAP1) + 1
		jt[op] = &operation{execute: makeSwap(n), constantGas: 3, minStack: n + 1, maxStack: 1024}
	}
	for op := LOG0; op <= LOG4; op++ {
		n := int(op - LOG0)
		jt[op] = &operation{execute: makeLog(n), constantGas: params.LogGas, dynamicGas: gasLogDynamic(n), minStack: 2 + n, maxStack: 1024, memorySize: memoryLog}
	}

	jt[CREATE] = &operation{execute: opCreate, constantGas: params.CreateGas, dynamicGas: gasCreate, minStack: 3, maxStack: 1024, memorySize: memoryCreate}
	jt[CALL] = &operation{execute: opCall, constantGas: params.CallGasFrontier, dynamicGas: gasCall, minStack: 7, maxStack: 1024, memorySize: memoryCall}
	jt[CALLCODE] = &operation{execute: opCallCode, constantGas: params.CallGasFrontier, dynamicGas: gasCallCode, minStack: 7, maxStack: 1024, memorySize: memoryCall}
	jt[RETURN] = &operation{execute: opReturn, constantGas: 0, minStack: 2, maxStack: 1024, memorySize: memoryReturn}
	jt[INVALID] = &operation{execute: opInvalid, constantGas: 0, minStack: 0, maxStack: 1024}
	jt[SELFDESTRUCT] = &operation{execute: opSelfdestruct, constantGas: params.SelfdestructGasFrontier, minStack: 1, maxStack: 1024}

	return jt
}
