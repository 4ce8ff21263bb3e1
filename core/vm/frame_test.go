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

package vm_test

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/probeum/levm/common"
	"github.com/probeum/levm/core/state"
	"github.com/probeum/levm/core/vm"
	"github.com/probeum/levm/params"
	"github.com/stretchr/testify/require"
)

// newTestEVM wires a fresh state.StateDB in as the Host behind an EVM, the
// same composition core.NewEVMBlockContext builds for a real transaction,
// trimmed to what these frame-machine tests need directly.
func newTestEVM(spec params.SpecID) (*vm.EVM, *state.StateDB) {
	sdb := state.New(state.NewMemoryDatabase())
	blockCtx := vm.BlockContext{
		CanTransfer: func(r vm.StateReader, addr common.Address, amount *big.Int) bool {
			return r.GetBalance(addr).Cmp(amount) >= 0
		},
		Transfer: func(w vm.StateWriter, from, to common.Address, amount *big.Int) {
			w.SubBalance(from, amount)
			w.AddBalance(to, amount)
		},
		GetHash:     func(uint64) common.Hash { return common.Hash{} },
		BlockNumber: big.NewInt(1),
		BaseFee:     big.NewInt(0),
		BlobBaseFee: big.NewInt(0),
	}
	txCtx := vm.TxContext{GasPrice: big.NewInt(0)}
	evm := vm.NewEVM(blockCtx, txCtx, sdb, spec, 1, vm.Config{})
	return evm, sdb
}

// TestJumpInfiniteLoopRunsOutOfGas is seed scenario 5: a JUMPDEST/PUSH1/JUMP
// loop halts with OutOfGas once the supplied gas is exhausted, never
// returning control on its own.
func TestJumpInfiniteLoopRunsOutOfGas(t *testing.T) {
	evm, sdb := newTestEVM(params.Cancun)
	addr := common.HexToAddress("0x1001")
	code := []byte{byte(vm.JUMPDEST), byte(vm.PUSH1), 0x00, byte(vm.JUMP)}
	sdb.SetCode(addr, code)

	caller := common.HexToAddress("0x01")
	ret, remaining, err := evm.Call(caller, addr, nil, 50000, uint256.NewInt(0), false)
	require.ErrorIs(t, err, vm.ErrOutOfGas)
	require.Zero(t, remaining)
	require.Empty(t, ret)
}

// TestStaticCallSstoreHalts is seed scenario 6: a static call into code that
// attempts SSTORE halts with write-protection, and the storage slot is left
// untouched.
func TestStaticCallSstoreHalts(t *testing.T) {
	evm, sdb := newTestEVM(params.Cancun)
	addr := common.HexToAddress("0xB")
	// PUSH1 1, PUSH1 0, SSTORE, STOP
	code := []byte{byte(vm.PUSH1), 0x01, byte(vm.PUSH1), 0x00, byte(vm.SSTORE), byte(vm.STOP)}
	sdb.SetCode(addr, code)

	caller := common.HexToAddress("0x01")
	_, _, err := evm.StaticCall(caller, addr, nil, 100000)
	require.ErrorIs(t, err, vm.ErrWriteProtection)
	require.Equal(t, common.Hash{}, sdb.GetState(addr, common.Hash{}))
}

// TestCallResolvesTargetAddressFromTopOfStack is a regression test for a
// pop-order bug: CALL's gas argument is pushed last (so popped first), the
// target address second. A swapped pop order would dial the requested gas
// value in as the callee address instead.
func TestCallResolvesTargetAddressFromTopOfStack(t *testing.T) {
	evm, sdb := newTestEVM(params.Cancun)
	callee := common.HexToAddress("0xC")
	sdb.SetCode(callee, []byte{byte(vm.PUSH1), 0x01, byte(vm.PUSH1), 0x00, byte(vm.SSTORE), byte(vm.STOP)})

	caller := common.HexToAddress("0xD")
	code := []byte{
		byte(vm.PUSH1), 0x00, // retSize
		byte(vm.PUSH1), 0x00, // retOffset
		byte(vm.PUSH1), 0x00, // argsSize
		byte(vm.PUSH1), 0x00, // argsOffset
		byte(vm.PUSH1), 0x00, // value
		byte(vm.PUSH20), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xC, // addr
		byte(vm.PUSH2), 0x75, 0x30, // gas = 30000, enough to cover the callee's cold SSTORE
		byte(vm.CALL),
		byte(vm.POP),
		byte(vm.STOP),
	}
	sdb.SetCode(caller, code)

	topCaller := common.HexToAddress("0x01")
	ret, _, err := evm.Call(topCaller, caller, nil, 100000, uint256.NewInt(0), false)
	require.NoError(t, err)
	require.Empty(t, ret)
	require.Equal(t, common.HexToHash("0x01"), sdb.GetState(callee, common.Hash{}))
}

// TestSelfRecursiveCallStopsAtDepthLimit drives a contract that calls itself
// with ample gas to reach params.MaxCallDepth. The depth-limited frame fails
// closed (ErrDepth, no panic, no journal corruption) and the failure is
// absorbed as a 0 on the caller's stack, so the outermost call still returns
// cleanly.
func TestSelfRecursiveCallStopsAtDepthLimit(t *testing.T) {
	evm, sdb := newTestEVM(params.Cancun)
	self := common.HexToAddress("0xE")
	code := []byte{
		byte(vm.PUSH1), 0x00, // retSize
		byte(vm.PUSH1), 0x00, // retOffset
		byte(vm.PUSH1), 0x00, // argsSize
		byte(vm.PUSH1), 0x00, // argsOffset
		byte(vm.PUSH1), 0x00, // value
		byte(vm.PUSH20), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xE, // self
		byte(vm.GAS), // forward everything the 63/64 rule allows
		byte(vm.CALL),
		byte(vm.POP),
		byte(vm.STOP),
	}
	sdb.SetCode(self, code)

	caller := common.HexToAddress("0x01")
	_, _, err := evm.Call(caller, self, nil, 1_000_000_000_000, uint256.NewInt(0), false)
	require.NoError(t, err)
}
