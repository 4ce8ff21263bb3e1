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

import (
	"github.com/probeum/levm/params"
)

type (
	executionFunc  func(pc *uint64, interpreter *EVMInterpreter, scope *ScopeContext) ([]byte, error)
	gasFunc        func(*EVM, *Contract, *Stack, *Memory, uint64) (uint64, error)
	memorySizeFunc func(*Stack) (size uint64, overflow bool)
)

// operation is a jump-table entry: everything the interpreter loop needs to
// charge gas for, validate operands against, and execute one opcode.
type operation struct {
	execute     executionFunc
	constantGas uint64
	dynamicGas  gasFunc
	minStack    int
	maxStack    int
	memorySize  memorySizeFunc
	// undefined marks an opcode with no assigned meaning at this spec.
	undefined bool
}

// JumpTable is the dense, 256-entry opcode dispatch table the interpreter
// indexes with one opcode byte.
type JumpTable [256]*operation

// Copy returns a deep copy of the table, used when ExtraEips patch a shared
// base table without mutating it.
func (jt *JumpTable) Copy() *JumpTable {
	var copy JumpTable
	for i, op := range jt {
		if op != nil {
			opCopy := *op
			copy[i] = &opCopy
		}
	}
	return &copy
}

// NewInstructionSet builds the jump table active for rules, starting from
// the Frontier opcode set and layering hardfork additions in ascending
// order, mirroring the yellow paper's incremental opcode history.
func NewInstructionSet(rules params.Rules) *JumpTable {
	jt := newFrontierInstructionSet()
	if rules.IsHomestead {
		enableHomestead(jt)
	}
	if rules.IsEIP150 {
		enableEIP150(jt)
	}
	if rules.IsEIP158 {
		enableEIP158(jt)
	}
	if rules.IsByzantium {
		enableByzantium(jt)
	}
	if rules.IsConstantinople {
		enableConstantinople(jt)
	}
	if rules.IsPetersburg {
		enablePetersburg(jt)
	}
	if rules.IsIstanbul {
		enableIstanbul(jt)
	}
	if rules.IsBerlin {
		enableBerlin(jt)
	}
	if rules.IsLondon {
		enableLondon(jt)
	}
	if rules.IsMerge {
		enableMerge(jt)
	}
	if rules.IsShanghai {
		enableShanghai(jt)
	}
	if rules.IsCancun {
		enableCancun(jt)
	}
	if rules.IsPrague {
		enablePrague(jt)
	}
	for i, op := range jt {
		if op == nil {
			jt[i] = &operation{execute: opUndefined, maxStack: 1024, undefined: true}
		}
	}
	return jt
}

func opUndefined(pc *uint64, interpreter *EVMInterpreter, scope *ScopeContext) ([]byte, error) {
	return nil, ErrInvalidOpCode
}
