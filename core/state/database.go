// Copyright 2015 The go-ethereum Authors
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
	"sync"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/probeum/levm/common"
)

// Database is the read-only storage backend trait the state package runs
// against: given an address it answers the committed Account, and given a
// code hash or (address, slot) pair it answers the corresponding bytes.
// StateDB is the only caller; nothing here is reversible, that is the
// journal's job one layer up.
type Database interface {
	Account(addr common.Address) (Account, bool)
	Storage(addr common.Address, key common.Hash) common.Hash
	CodeByHash(hash common.Hash) []byte
	BlockHash(number uint64) common.Hash
}

// MemoryDatabase is an in-memory Database, the only backend this module
// ships: a durable trie-backed implementation is a separate concern this
// package deliberately leaves to an embedder.
type MemoryDatabase struct {
	mu        sync.RWMutex
	accounts  map[common.Address]Account
	storage   map[common.Address]map[common.Hash]common.Hash
	code      *fastcache.Cache // codeHash -> code, a read-through cache over a larger backing store
	codeStore map[common.Hash][]byte
	hashes    map[uint64]common.Hash
}

// NewMemoryDatabase returns an empty in-memory Database. fastcache backs the
// code lookup path, the same cache geth uses to avoid re-fetching large
// contract bodies on every CALL into the same address.
func NewMemoryDatabase() Database {
	return &MemoryDatabase{
		accounts:  make(map[common.Address]Account),
		storage:   make(map[common.Address]map[common.Hash]common.Hash),
		code:      fastcache.New(32 * 1024 * 1024),
		codeStore: make(map[common.Hash][]byte),
		hashes:    make(map[uint64]common.Hash),
	}
}

func (m *MemoryDatabase) Account(addr common.Address) (Account, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, ok := m.accounts[addr]
	return acc, ok
}

func (m *MemoryDatabase) Storage(addr common.Address, key common.Hash) common.Hash {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.storage[addr][key]
}

func (m *MemoryDatabase) CodeByHash(hash common.Hash) []byte {
	if cached, ok := m.code.HasGet(nil, hash[:]); ok {
		return cached
	}
	m.mu.RLock()
	code := m.codeStore[hash]
	m.mu.RUnlock()
	if code != nil {
		m.code.Set(hash[:], code)
	}
	return code
}

func (m *MemoryDatabase) BlockHash(number uint64) common.Hash {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hashes[number]
}

// SetAccount seeds an account, for test fixtures and genesis loading.
func (m *MemoryDatabase) SetAccount(addr common.Address, acc Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[addr] = acc
}

// SetStorage seeds a storage slot, for test fixtures and genesis loading.
func (m *MemoryDatabase) SetStorage(addr common.Address, key, value common.Hash) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.storage[addr] == nil {
		m.storage[addr] = make(map[common.Hash]common.Hash)
	}
	m.storage[addr][key] = value
}

// SetCode seeds code under its own hash, for test fixtures and genesis
// loading.
func (m *MemoryDatabase) SetCode(hash common.Hash, code []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codeStore[hash] = code
}

// SetBlockHash seeds a historical block hash, consumed by the BLOCKHASH
// opcode via StateDB.BlockHash.
func (m *MemoryDatabase) SetBlockHash(number uint64, hash common.Hash) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hashes[number] = hash
}

// AsMemoryDatabase type-asserts db back to the concrete in-memory backend so
// callers (test setup, genesis loaders) can reach the Set* seeding methods
// without widening the Database interface itself.
func AsMemoryDatabase(db Database) (*MemoryDatabase, bool) {
	m, ok := db.(*MemoryDatabase)
	return m, ok
}
