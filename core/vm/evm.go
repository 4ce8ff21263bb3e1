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
	"sync/atomic"

	"github.com/probeum/levm/params"
)

// EVM is the per-transaction execution context: the block/tx context, the
// journaled state behind the Host interface, the active jump table, and the
// frame-machine bookkeeping (call depth, abort flag) shared by every frame
// a transaction spawns.
type EVM struct {
	Context   BlockContext
	TxContext TxContext
	Host      Host

	ChainID    uint64
	ChainRules params.Rules
	SpecID     params.SpecID
	Config     Config

	interpreter *EVMInterpreter
	depth       int
	abort       int32
}

// NewEVM returns an EVM ready to run a transaction's top frame.
func NewEVM(blockCtx BlockContext, txCtx TxContext, host Host, spec params.SpecID, chainID uint64, config Config) *EVM {
	evm := &EVM{
		Context:    blockCtx,
		TxContext:  txCtx,
		Host:       host,
		ChainID:    chainID,
		SpecID:     spec,
		ChainRules: params.RulesFor(spec),
		Config:     config,
	}
	evm.interpreter = NewEVMInterpreter(evm)
	return evm
}

// Cancel signals to the interpreter loop to stop execution as soon as
// possible, used for user-initiated request cancellation (e.g. eth_call
// timeouts orchestrated above the core).
func (evm *EVM) Cancel() { atomic.StoreInt32(&evm.abort, 1) }

// Cancelled reports whether Cancel has been called.
func (evm *EVM) Cancelled() bool { return atomic.LoadInt32(&evm.abort) == 1 }

// Depth returns the current call-stack depth.
func (evm *EVM) Depth() int { return evm.depth }

// Interpreter returns the shared interpreter instance for this EVM.
func (evm *EVM) Interpreter() *EVMInterpreter { return evm.interpreter }
