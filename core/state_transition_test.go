// Copyright 2020 The go-ethereum Authors
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

package core

import (
	"math/big"
	"testing"

	"github.com/probeum/levm/common"
	"github.com/probeum/levm/core/state"
	"github.com/probeum/levm/core/types"
	"github.com/probeum/levm/core/vm"
	"github.com/probeum/levm/crypto"
	"github.com/probeum/levm/params"
	"github.com/stretchr/testify/require"
)

// newTestEVM wires a fresh StateDB in as the Host behind an EVM with a flat
// gas price and no base fee, mirroring cmd/levm statetest's fixture setup.
func newTestEVM(sdb *state.StateDB) *vm.EVM {
	blockCtx := vm.BlockContext{
		CanTransfer: func(r vm.StateReader, addr common.Address, amount *big.Int) bool {
			return r.GetBalance(addr).Cmp(amount) >= 0
		},
		Transfer: func(w vm.StateWriter, from, to common.Address, amount *big.Int) {
			w.SubBalance(from, amount)
			w.AddBalance(to, amount)
		},
		GetHash:     func(uint64) common.Hash { return common.Hash{} },
		Coinbase:    common.HexToAddress("0xc01bace"),
		BlockNumber: big.NewInt(1),
		BaseFee:     big.NewInt(0),
		BlobBaseFee: big.NewInt(0),
	}
	txCtx := vm.TxContext{GasPrice: big.NewInt(1)}
	return vm.NewEVM(blockCtx, txCtx, sdb, params.Cancun, 1, vm.Config{})
}

// TestApplyMessageTransfer is seed scenario 1: a plain value transfer only
// spends the intrinsic 21000 gas and moves exactly the requested value.
func TestApplyMessageTransfer(t *testing.T) {
	sdb := state.New(state.NewMemoryDatabase())
	sender := common.HexToAddress("0x01")
	target := common.HexToAddress("0x1000")
	startBalance := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	sdb.AddBalance(sender, startBalance)

	evm := newTestEVM(sdb)
	msg := &types.Message{
		To:       &target,
		From:     sender,
		Value:    big.NewInt(10),
		GasLimit: 21000,
		GasPrice: big.NewInt(1),
	}

	result, err := ApplyMessage(evm, msg)
	require.NoError(t, err)
	require.False(t, result.Failed())
	require.Equal(t, uint64(21000), result.UsedGas)

	require.Equal(t, big.NewInt(10), sdb.GetBalance(target))
	wantSender := new(big.Int).Sub(startBalance, big.NewInt(21000+10))
	require.Equal(t, wantSender, sdb.GetBalance(sender))
}

// TestApplyMessageSstoreColdWrite is seed scenario 2: calling a contract that
// writes its storage slot 0 leaves that slot set and spends more than the
// bare intrinsic floor.
func TestApplyMessageSstoreColdWrite(t *testing.T) {
	sdb := state.New(state.NewMemoryDatabase())
	sender := common.HexToAddress("0x01")
	contract := common.HexToAddress("0x1001")
	sdb.AddBalance(sender, big.NewInt(1_000_000_000))
	// PUSH1 0x01, PUSH1 0x00, SSTORE, STOP
	sdb.SetCode(contract, []byte{byte(vm.PUSH1), 0x01, byte(vm.PUSH1), 0x00, byte(vm.SSTORE), byte(vm.STOP)})

	evm := newTestEVM(sdb)
	msg := &types.Message{
		To:       &contract,
		From:     sender,
		Value:    big.NewInt(0),
		GasLimit: 100000,
		GasPrice: big.NewInt(1),
	}

	result, err := ApplyMessage(evm, msg)
	require.NoError(t, err)
	require.False(t, result.Failed())
	require.Equal(t, common.HexToHash("0x01"), sdb.GetState(contract, common.Hash{}))
	require.Greater(t, result.UsedGas, uint64(21000))
	require.Less(t, result.UsedGas, uint64(100000))
}

// TestApplyMessageSstoreThenRevert is seed scenario 3: a write followed by
// REVERT leaves the pre-existing slot value untouched and reports a revert.
func TestApplyMessageSstoreThenRevert(t *testing.T) {
	sdb := state.New(state.NewMemoryDatabase())
	sender := common.HexToAddress("0x01")
	contract := common.HexToAddress("0x1002")
	slot7 := common.BytesToHash(big.NewInt(7).Bytes())
	sdb.AddBalance(sender, big.NewInt(1_000_000_000))
	sdb.SetNonce(contract, 1) // mark account as already existing
	sdb.SStore(contract, slot7, common.BytesToHash(big.NewInt(42).Bytes()))
	// PUSH1 99, PUSH1 7, SSTORE, PUSH1 0, PUSH1 0, REVERT
	sdb.SetCode(contract, []byte{
		byte(vm.PUSH1), 99,
		byte(vm.PUSH1), 7,
		byte(vm.SSTORE),
		byte(vm.PUSH1), 0,
		byte(vm.PUSH1), 0,
		byte(vm.REVERT),
	})

	evm := newTestEVM(sdb)
	msg := &types.Message{
		To:       &contract,
		From:     sender,
		Value:    big.NewInt(0),
		GasLimit: 100000,
		GasPrice: big.NewInt(1),
	}

	result, err := ApplyMessage(evm, msg)
	require.NoError(t, err)
	require.True(t, result.Failed())
	require.ErrorIs(t, result.Err, vm.ErrExecutionReverted)
	require.Equal(t, common.BytesToHash(big.NewInt(42).Bytes()), sdb.GetState(contract, slot7))
}

// TestApplyMessageCreateDerivesAddress is seed scenario 4: a contract-creation
// message derives its address from keccak256(rlp([sender, nonce])), bumps
// the sender's nonce, and deploys the runtime bytes the init code returns.
func TestApplyMessageCreateDerivesAddress(t *testing.T) {
	sdb := state.New(state.NewMemoryDatabase())
	sender := common.HexToAddress("0x01")
	sdb.AddBalance(sender, big.NewInt(1_000_000_000))

	// Runtime code is PUSH0, SLOAD (0x5f, 0x54). The init code stores those
	// two bytes in memory and returns them:
	// PUSH2 0x5f54, PUSH1 0x00, MSTORE, PUSH1 0x02, PUSH1 0x1e, RETURN
	initCode := []byte{
		byte(vm.PUSH2), 0x5f, 0x54,
		byte(vm.PUSH1), 0x00,
		byte(vm.MSTORE),
		byte(vm.PUSH1), 0x02,
		byte(vm.PUSH1), 0x1e,
		byte(vm.RETURN),
	}

	evm := newTestEVM(sdb)
	msg := &types.Message{
		To:       nil,
		From:     sender,
		Value:    big.NewInt(0),
		GasLimit: 1_000_000,
		GasPrice: big.NewInt(1),
		Data:     initCode,
	}

	wantAddr := crypto.CreateAddress(sender, 0)
	result, err := ApplyMessage(evm, msg)
	require.NoError(t, err)
	require.False(t, result.Failed())
	require.NotNil(t, result.ContractAddress)
	require.Equal(t, wantAddr, *result.ContractAddress)
	require.Equal(t, uint64(1), sdb.GetNonce(sender))
	require.Equal(t, []byte{0x5f, 0x54}, sdb.GetCode(wantAddr))
}
