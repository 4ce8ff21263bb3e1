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

// BlockContext provides auxiliary information to the interpreter about the
// current block, constant across all transactions within it.
type BlockContext struct {
	CanTransfer func(StateReader, common.Address, *big.Int) bool
	Transfer    func(StateWriter, common.Address, common.Address, *big.Int)
	GetHash     func(uint64) common.Hash

	Coinbase    common.Address
	GasLimit    uint64
	BlockNumber *big.Int
	Time        uint64
	Difficulty  *big.Int // pre-Merge
	Random      *common.Hash // post-Merge PREVRANDAO
	BaseFee     *big.Int
	BlobBaseFee *big.Int
}

// TxContext provides information about the current transaction, constant
// throughout its execution (but unlike BlockContext, varies between txs).
type TxContext struct {
	Origin     common.Address
	GasPrice   *big.Int
	BlobHashes []common.Hash
	BlobFeeCap *big.Int
}

// StateReader is the narrow read surface of the journaled state that the
// block context's CanTransfer function needs.
type StateReader interface {
	GetBalance(common.Address) *big.Int
}

// StateWriter is the narrow write surface of the journaled state that the
// block context's Transfer function needs.
type StateWriter interface {
	SubBalance(common.Address, *big.Int)
	AddBalance(common.Address, *big.Int)
}

// Host is the interpreter's view of the world state: the journaled state and
// the storage backend behind it, composed behind one narrow interface so the
// interpreter never names a concrete state type. The block/tx context is not
// part of Host; opcode handlers read it from EVM.Context and EVM.TxContext.
type Host interface {
	// LoadAccount reports whether addr exists and whether this was its
	// first touch in the transaction (cold).
	LoadAccount(addr common.Address) (exists bool, cold bool)

	// LoadCode returns the executable code for addr, following at most one
	// level of EIP-7702 delegation, and whether the underlying account load
	// was cold.
	LoadCode(addr common.Address) (code []byte, cold bool)

	Balance(addr common.Address) (*big.Int, bool)
	Nonce(addr common.Address) (uint64, bool)
	CodeHash(addr common.Address) (common.Hash, bool)

	SLoad(addr common.Address, key common.Hash) (value common.Hash, cold bool)
	SStore(addr common.Address, key, value common.Hash) (original, prior, current common.Hash, cold bool)

	TLoad(addr common.Address, key common.Hash) common.Hash
	TStore(addr common.Address, key, value common.Hash)

	Log(log *types.Log)

	// SelfDestruct schedules from's balance to be transferred to to.
	// It reports whether from held a nonzero balance, whether to already
	// existed, whether this access was cold, and whether from was already
	// marked for destruction earlier in the transaction.
	SelfDestruct(from, to common.Address) (hadBalance, targetExisted, cold, alreadyDestructed bool)

	BlockHash(number uint64) common.Hash

	// --- frame-machine surface ---
	// These methods are used by the frame machine (EVM.Call/Create in
	// frame.go) rather than by opcode handlers directly; they are folded
	// into Host because the journaled state is the sole implementation of
	// both views, and the frame machine itself runs inside this package.

	Snapshot() int
	RevertToSnapshot(int)

	GetBalance(addr common.Address) *big.Int
	AddBalance(addr common.Address, amount *big.Int)
	SubBalance(addr common.Address, amount *big.Int)
	GetNonce(addr common.Address) uint64
	SetNonce(addr common.Address, nonce uint64)
	GetCodeHash(addr common.Address) common.Hash
	GetCode(addr common.Address) []byte
	SetCode(addr common.Address, code []byte)
	Exist(addr common.Address) bool
	Empty(addr common.Address) bool

	CreateAccount(addr common.Address) error
	Transfer(from, to common.Address, amount *big.Int) error

	AddressInAccessList(addr common.Address) bool
	AddAddressToAccessList(addr common.Address)
	SlotInAccessList(addr common.Address, slot common.Hash) (addrOk, slotOk bool)
	AddSlotToAccessList(addr common.Address, slot common.Hash)

	AddRefund(uint64)
	SubRefund(uint64)
	GetRefund() uint64
}
