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

package types

import "github.com/probeum/levm/common"

// Log represents a single LOG* emission recorded during contract execution.
// It carries no block hash or removed flag, only what the execution engine
// itself can produce.
type Log struct {
	// Address of the contract that generated the event.
	Address common.Address
	// Topics is a list of up to 4 32-byte indexed topics.
	Topics []common.Hash
	// Data is the non-indexed data attached to the log.
	Data []byte

	// TxHash, TxIndex and Index are set by StateDB.Log when the log is
	// recorded, from the values last passed to StateDB.SetTxContext and the
	// StateDB's running log count.
	TxHash  common.Hash
	TxIndex uint
	Index   uint
}

// Copy returns a deep copy of the log, used when a log must be retained past
// the lifetime of the memory buffer supplying Data.
func (l *Log) Copy() *Log {
	cpy := &Log{
		Address: l.Address,
		Data:    common.CopyBytes(l.Data),
		TxHash:  l.TxHash,
		TxIndex: l.TxIndex,
		Index:   l.Index,
	}
	cpy.Topics = make([]common.Hash, len(l.Topics))
	copy(cpy.Topics, l.Topics)
	return cpy
}
