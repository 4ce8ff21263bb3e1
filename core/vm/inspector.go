// Copyright 2023 The go-ethereum Authors
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
	"math/big"

	"github.com/probeum/levm/common"
	"github.com/probeum/levm/core/types"
)

// CallKind distinguishes the sub-call opcode that produced a CallEnter.
type CallKind int

const (
	CallKindCall CallKind = iota
	CallKindCallCode
	CallKindDelegateCall
	CallKindStaticCall
	CallKindCreate
	CallKindCreate2
)

// Inspector is the set of optional observation hooks for the interpreter
// and frame machine. All methods are side-effect only except where the
// return value is documented as overriding behavior; a nil Inspector (the
// default) costs nothing, since Config.Tracer is checked for nil before every
// call site. Only Step and StepEnd are invoked, by EVMInterpreter.Run;
// InitializeInterp, CallEnter, CallExit, Log and SelfDestruct are not called
// anywhere in this module.
type Inspector interface {
	// InitializeInterp is called once per frame before its first opcode.
	InitializeInterp(contract *Contract, input []byte)

	// Step is called before every opcode executes.
	Step(pc uint64, op OpCode, gas uint64, scope *ScopeContext)

	// StepEnd is called after every opcode executes, observing its result.
	StepEnd(pc uint64, op OpCode, gas uint64, scope *ScopeContext, ret []byte, err error)

	// CallEnter is invoked before a sub-call or create opcode hands off to
	// the frame machine.
	CallEnter(kind CallKind, from, to common.Address, input []byte, gas uint64, value *big.Int)

	// CallExit observes the outcome of a sub-call or create.
	CallExit(output []byte, gasUsed uint64, err error)

	// Log observes an emitted log entry.
	Log(log *types.Log)

	// SelfDestruct observes a SELFDESTRUCT, before the balance transfer.
	SelfDestruct(from, to common.Address, value *big.Int)
}
