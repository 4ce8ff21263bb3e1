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
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/probeum/levm/crypto"
)

// errStopToken is an internal sentinel signaling a graceful halt (STOP,
// RETURN, SELFDESTRUCT); never surfaced past Run.
var errStopToken = errors.New("stop token")

// Config adjusts interpreter behavior without changing consensus semantics:
// attaching an inspector, or registering additional EIPs beyond the ones a
// SpecID implies. NoBaseFee and EnablePreimageRecording are carried but no
// code in this module reads them.
type Config struct {
	Tracer                  Inspector
	NoBaseFee               bool
	EnablePreimageRecording bool
	ExtraEips               []int
}

// EVMInterpreter drives the fetch-decode-execute loop for one frame's
// bytecode against a fixed jump table and a Host.
type EVMInterpreter struct {
	evm   *EVM
	table *JumpTable

	hasher    crypto.KeccakState
	readOnly  bool
	returnData []byte
}

// NewEVMInterpreter builds an interpreter whose jump table is selected by
// evm.ChainRules, with any ExtraEips patched onto a private copy.
func NewEVMInterpreter(evm *EVM) *EVMInterpreter {
	table := NewInstructionSet(evm.ChainRules)
	if len(evm.Config.ExtraEips) > 0 {
		table = table.Copy()
		for _, eip := range evm.Config.ExtraEips {
			if err := enableExtraEIP(eip, table); err != nil {
				panic(fmt.Sprintf("undefined eip %d: %v", eip, err))
			}
		}
	}
	return &EVMInterpreter{evm: evm, table: table}
}

// Run loops over contract's code starting at pc 0 until a terminal action,
// an error, or gas exhaustion. input is the calldata; readOnly forces
// static-call write protection for this frame and every frame it spawns.
func (in *EVMInterpreter) Run(contract *Contract, input []byte, readOnly bool) (ret []byte, err error) {
	in.evm.depth++
	defer func() { in.evm.depth-- }()

	contract.Input = input
	if readOnly && !in.readOnly {
		in.readOnly = true
		defer func() { in.readOnly = false }()
	}
	contract.IsStatic = contract.IsStatic || in.readOnly

	if contract.CodeSize() == 0 {
		return nil, nil
	}

	var (
		pc     = uint64(0)
		stack  = newstack()
		mem    = NewMemory()
		scope  = &ScopeContext{Memory: mem, Stack: stack, Contract: contract}
	)
	defer returnStack(stack)

	for atomic.LoadInt32(&in.evm.abort) == 0 {
		op := contract.GetOp(pc)
		operation := in.table[op]
		if operation == nil {
			return nil, ErrInvalidOpCode
		}
		if err := stack.require(operation.minStack); err != nil {
			return nil, err
		}
		if err := stack.requireCapacity(operation.maxStack - stack.len()); err != nil {
			return nil, err
		}

		if operation.constantGas > 0 {
			if err := contract.Gas.RecordCost(operation.constantGas); err != nil {
				return nil, ErrOutOfGas
			}
		}

		var memorySize uint64
		if operation.memorySize != nil {
			memSize, overflow := operation.memorySize(stack)
			if overflow {
				return nil, ErrGasUintOverflow
			}
			if memSize, overflow = toWordSizeChecked(memSize); overflow {
				return nil, ErrGasUintOverflow
			}
			memorySize = memSize * 32
			if err := contract.Gas.RecordMemory(memSize); err != nil {
				return nil, err
			}
		}
		if operation.dynamicGas != nil {
			cost, err := operation.dynamicGas(in.evm, contract, stack, mem, memorySize)
			if err != nil {
				return nil, err
			}
			if err := contract.Gas.RecordCost(cost); err != nil {
				return nil, ErrOutOfGas
			}
		}
		if memorySize > 0 {
			mem.Resize(memorySize)
		}

		if in.evm.Config.Tracer != nil {
			in.evm.Config.Tracer.Step(pc, op, contract.Gas.Remaining(), scope)
		}

		res, err := operation.execute(&pc, in, scope)
		if err != nil {
			if err == errStopToken {
				err = nil
			}
			if in.evm.Config.Tracer != nil {
				in.evm.Config.Tracer.StepEnd(pc, op, contract.Gas.Remaining(), scope, res, err)
			}
			if err == nil {
				return res, nil
			}
			return res, err
		}
		if in.evm.Config.Tracer != nil {
			in.evm.Config.Tracer.StepEnd(pc, op, contract.Gas.Remaining(), scope, res, nil)
		}
		if err := stack.requireCapacity(0); err != nil {
			return nil, err
		}
		pc++
	}
	return nil, nil
}

func toWordSizeChecked(size uint64) (uint64, bool) {
	w := toWordSize(size)
	return w, false
}

// enableExtraEIP activates a single out-of-hardfork EIP by number, used for
// differential-testing configurations that want one EIP in isolation.
func enableExtraEIP(eip int, jt *JumpTable) error {
	switch eip {
	case 3855: // PUSH0
		jt[PUSH0] = &operation{execute: opPush0, constantGas: 2, minStack: 0, maxStack: 1024}
	case 5656: // MCOPY
		jt[MCOPY] = &operation{execute: opMcopy, constantGas: 3, dynamicGas: gasMcopy, minStack: 3, maxStack: 1024, memorySize: memoryMcopy}
	default:
		return fmt.Errorf("undefined eip %d", eip)
	}
	return nil
}
