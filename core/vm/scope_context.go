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
	"github.com/holiman/uint256"
	"github.com/probeum/levm/common"
)

// ScopeContext bundles the per-frame interpreter state passed to every
// opcode handler: its memory, stack, and contract.
type ScopeContext struct {
	Memory   *Memory
	Stack    *Stack
	Contract *Contract
}

// MemoryData returns the backing memory buffer.
func (ctx *ScopeContext) MemoryData() []byte {
	if ctx.Memory == nil {
		return nil
	}
	return ctx.Memory.Data()
}

// StackData returns the backing stack slice, bottom first.
func (ctx *ScopeContext) StackData() []uint256.Int {
	if ctx.Stack == nil {
		return nil
	}
	return ctx.Stack.Data()
}

// Caller returns the current caller.
func (ctx *ScopeContext) Caller() common.Address { return ctx.Contract.Caller() }

// Address returns the frame's self-observable address.
func (ctx *ScopeContext) Address() common.Address { return ctx.Contract.Address() }

// CallValue returns the call value carried into this frame.
func (ctx *ScopeContext) CallValue() *uint256.Int { return ctx.Contract.Value() }

// CallInput returns the calldata of this frame.
func (ctx *ScopeContext) CallInput() []byte { return ctx.Contract.Input }

// ContractCode returns the analyzed code's raw bytes.
func (ctx *ScopeContext) ContractCode() []byte { return ctx.Contract.CodeBytes() }
