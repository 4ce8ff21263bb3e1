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

package core

import (
	"math/big"

	"github.com/probeum/levm/common"
	"github.com/probeum/levm/core/types"
	"github.com/probeum/levm/core/vm"
)

// BlockInput is the block-level environment a caller supplies to run a
// transaction: everything the block context needs that isn't itself part of
// consensus-layer block assembly (which is out of scope here).
type BlockInput struct {
	Coinbase    common.Address
	GasLimit    uint64
	Number      *big.Int
	Time        uint64
	Difficulty  *big.Int
	Random      *common.Hash
	BaseFee     *big.Int
	BlobBaseFee *big.Int

	// GetHash is copied into vm.BlockContext.GetHash; when nil, a resolver
	// returning the zero hash for every height is used instead. The BLOCKHASH
	// opcode does not consult it: it reads ancestor hashes through
	// Host.BlockHash.
	GetHash func(n uint64) common.Hash
}

// NewEVMBlockContext builds a vm.BlockContext from a BlockInput, wiring in
// the CanTransfer/Transfer closures against the Host interface.
func NewEVMBlockContext(in BlockInput) vm.BlockContext {
	getHash := in.GetHash
	if getHash == nil {
		getHash = func(uint64) common.Hash { return common.Hash{} }
	}
	return vm.BlockContext{
		CanTransfer: CanTransfer,
		Transfer:    Transfer,
		GetHash:     getHash,

		Coinbase:    in.Coinbase,
		GasLimit:    in.GasLimit,
		BlockNumber: in.Number,
		Time:        in.Time,
		Difficulty:  in.Difficulty,
		Random:      in.Random,
		BaseFee:     in.BaseFee,
		BlobBaseFee: in.BlobBaseFee,
	}
}

// NewEVMTxContext builds a vm.TxContext from a resolved message.
func NewEVMTxContext(msg *types.Message) vm.TxContext {
	ctx := vm.TxContext{
		Origin:   msg.From,
		GasPrice: new(big.Int).Set(msg.GasPrice),
	}
	if len(msg.BlobHashes) > 0 {
		ctx.BlobHashes = msg.BlobHashes
		ctx.BlobFeeCap = msg.BlobGasFeeCap
	}
	return ctx
}

// CanTransfer reports whether addr's balance covers amount. It is wired into
// vm.BlockContext.CanTransfer and consumed through the narrow vm.StateReader
// view so the frame machine never needs the full Host surface for this
// check.
func CanTransfer(db vm.StateReader, addr common.Address, amount *big.Int) bool {
	return db.GetBalance(addr).Cmp(amount) >= 0
}

// Transfer moves amount from sender to recipient unconditionally; the
// caller is responsible for having checked CanTransfer first.
func Transfer(db vm.StateWriter, sender, recipient common.Address, amount *big.Int) {
	db.SubBalance(sender, amount)
	db.AddBalance(recipient, amount)
}

// GetHashFn returns a block-hash resolver closure seeded with refNumber ->
// refHash. For any other height it calls lookup(n) once for exactly that n
// and caches a hit; a nil lookup, or one reporting false, yields the zero
// hash. No ancestor window is enforced.
func GetHashFn(refNumber uint64, refHash common.Hash, lookup func(n uint64) (common.Hash, bool)) func(n uint64) common.Hash {
	cache := map[uint64]common.Hash{refNumber: refHash}
	return func(n uint64) common.Hash {
		if hash, ok := cache[n]; ok {
			return hash
		}
		if lookup == nil {
			return common.Hash{}
		}
		hash, ok := lookup(n)
		if !ok {
			return common.Hash{}
		}
		cache[n] = hash
		return hash
	}
}
