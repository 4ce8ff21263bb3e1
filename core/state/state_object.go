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

package state

import (
	"bytes"
	"math/big"

	"github.com/probeum/levm/common"
	"github.com/probeum/levm/crypto"
)

var emptyCodeHash = crypto.Keccak256Hash(nil)

// Account is the per-address ledger entry a storage backend stores and
// retrieves: the nonce, balance, and code hash every account carries,
// whether or not it has code.
type Account struct {
	Nonce    uint64
	Balance  *big.Int
	CodeHash []byte
}

// Storage is a cache of storage slot values keyed by slot.
type Storage map[common.Hash]common.Hash

// stateObject is the in-memory, mutable view of one account for the
// duration of a block: the committed Account plus whatever storage slots
// and code have been loaded or changed, and the dirty/clean split the
// journal needs to revert individual mutations.
type stateObject struct {
	address common.Address
	data    Account

	db *StateDB

	code []byte // contract bytecode, loaded lazily from the backend by CodeHash

	originStorage Storage // values as last read from the backend, for GetCommittedState
	dirtyStorage  Storage // values written during the current execution

	dirtyCode      bool
	selfDestructed bool

	newContract bool // true once SetCode has run during this transaction (CREATE)
}

func newObject(db *StateDB, address common.Address, data Account) *stateObject {
	if data.Balance == nil {
		data.Balance = new(big.Int)
	}
	if data.CodeHash == nil {
		data.CodeHash = emptyCodeHash[:]
	}
	return &stateObject{
		db:            db,
		address:       address,
		data:          data,
		originStorage: make(Storage),
		dirtyStorage:  make(Storage),
	}
}

func (s *stateObject) empty() bool {
	return s.data.Nonce == 0 && s.data.Balance.Sign() == 0 && bytes.Equal(s.data.CodeHash, emptyCodeHash[:])
}

// GetState reads a storage slot, consulting the dirty overlay before the
// origin cache and the backing database.
func (s *stateObject) GetState(key common.Hash) common.Hash {
	if value, dirty := s.dirtyStorage[key]; dirty {
		return value
	}
	return s.GetCommittedState(key)
}

// GetCommittedState reads a slot's value as of the start of the current
// execution, bypassing uncommitted writes — the "original value" the
// SSTORE net-gas schedule compares against.
func (s *stateObject) GetCommittedState(key common.Hash) common.Hash {
	if value, cached := s.originStorage[key]; cached {
		return value
	}
	value := s.db.db.Storage(s.address, key)
	s.originStorage[key] = value
	return value
}

func (s *stateObject) setState(key, value common.Hash) {
	s.dirtyStorage[key] = value
}

func (s *stateObject) SetState(key, value common.Hash) {
	prev := s.GetState(key)
	if prev == value {
		return
	}
	s.db.journal.append(storageChange{
		account:  &s.address,
		key:      key,
		prevalue: prev,
	})
	s.setState(key, value)
}

func (s *stateObject) setBalance(amount *big.Int) { s.data.Balance = amount }

func (s *stateObject) AddBalance(amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	s.SetBalance(new(big.Int).Add(s.Balance(), amount))
}

func (s *stateObject) SubBalance(amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	s.SetBalance(new(big.Int).Sub(s.Balance(), amount))
}

func (s *stateObject) SetBalance(amount *big.Int) {
	s.db.journal.append(balanceChange{
		account: &s.address,
		prev:    new(big.Int).Set(s.data.Balance),
	})
	s.setBalance(amount)
}

func (s *stateObject) Balance() *big.Int { return s.data.Balance }

func (s *stateObject) setNonce(nonce uint64) { s.data.Nonce = nonce }

func (s *stateObject) SetNonce(nonce uint64) {
	s.db.journal.append(nonceChange{
		account: &s.address,
		prev:    s.data.Nonce,
	})
	s.setNonce(nonce)
}

func (s *stateObject) Nonce() uint64 { return s.data.Nonce }

func (s *stateObject) CodeHash() []byte { return s.data.CodeHash }

func (s *stateObject) Code() []byte {
	if s.code != nil {
		return s.code
	}
	if bytes.Equal(s.CodeHash(), emptyCodeHash[:]) {
		return nil
	}
	code := s.db.db.CodeByHash(common.BytesToHash(s.CodeHash()))
	s.code = code
	return code
}

func (s *stateObject) setCode(codeHash common.Hash, code []byte) {
	s.code = code
	s.data.CodeHash = codeHash[:]
	s.dirtyCode = true
}

func (s *stateObject) SetCode(codeHash common.Hash, code []byte) {
	prevcode := s.Code()
	s.db.journal.append(codeChange{
		account:  &s.address,
		prevhash: s.CodeHash(),
		prevcode: prevcode,
	})
	s.setCode(codeHash, code)
	s.newContract = true
}
