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

// Package state implements the journaled world-state view every frame in a
// transaction reads and writes through: account balances/nonces/code,
// contract storage, transient storage, the warm/cold access list, logs, and
// the gas refund counter, all wrapped in checkpoint/revert semantics so a
// reverted call or a failed transaction can be undone without re-reading
// anything from the backend.
package state

import (
	"errors"
	"math/big"

	"github.com/probeum/levm/common"
	"github.com/probeum/levm/core/types"
	"github.com/probeum/levm/crypto"
)

// ErrNonceOverflow is returned by IncrementNonce when a nonce is already at
// its maximum representable value.
var ErrNonceOverflow = errors.New("state: nonce overflow")

// StateDB is the sole implementation of vm.Host: every method the
// interpreter and frame machine need to read or mutate account state runs
// through here, and every mutation is journaled so Snapshot/RevertToSnapshot
// can undo it precisely.
type StateDB struct {
	db Database

	stateObjects      map[common.Address]*stateObject
	stateObjectsDirty map[common.Address]struct{}

	transientStorage map[common.Address]Storage

	accessList *accessList

	logs    map[common.Hash][]*types.Log
	logSize uint

	refund uint64

	journal        *journal
	validRevisions []revision
	nextRevisionID int

	txHash  common.Hash
	txIndex int
}

type revision struct {
	id           int
	journalIndex int
}

// New returns a StateDB reading through to db, ready for a fresh
// transaction: empty access list, empty journal, zero refund.
func New(db Database) *StateDB {
	return &StateDB{
		db:                db,
		stateObjects:      make(map[common.Address]*stateObject),
		stateObjectsDirty: make(map[common.Address]struct{}),
		transientStorage:  make(map[common.Address]Storage),
		accessList:        newAccessList(),
		logs:              make(map[common.Hash][]*types.Log),
		journal:           newJournal(),
	}
}

// SetTxContext records which transaction subsequent logs belong to, and
// resets the per-transaction access list and transient storage. ApplyMessage
// does not call it.
func (s *StateDB) SetTxContext(txHash common.Hash, txIndex int) {
	s.txHash = txHash
	s.txIndex = txIndex
	s.accessList = newAccessList()
	s.transientStorage = make(map[common.Address]Storage)
}

// --- object resolution ---

func (s *StateDB) getStateObject(addr common.Address) *stateObject {
	if obj, ok := s.stateObjects[addr]; ok {
		return obj
	}
	acc, ok := s.db.Account(addr)
	if !ok {
		return nil
	}
	obj := newObject(s, addr, acc)
	s.setStateObject(obj)
	return obj
}

func (s *StateDB) setStateObject(object *stateObject) {
	s.stateObjects[object.address] = object
}

// getOrNewStateObject returns the object for addr, creating an empty one
// (uncommitted until a mutation journals it) if none exists yet.
func (s *StateDB) getOrNewStateObject(addr common.Address) *stateObject {
	obj := s.getStateObject(addr)
	if obj == nil {
		obj, _ = s.createObject(addr)
	}
	return obj
}

func (s *StateDB) createObject(addr common.Address) (newObj, prev *stateObject) {
	prev = s.stateObjects[addr]
	newObj = newObject(s, addr, Account{})
	if prev == nil {
		s.journal.append(createObjectChange{account: &addr})
	} else {
		s.journal.append(resetObjectChange{prev: prev})
	}
	s.setStateObject(newObj)
	return newObj, prev
}

// CreateAccount resets addr to an empty account, preserving its balance if
// it already held one (the CREATE-to-an-existing-balance case: a contract
// can receive value before it is deployed to, and deployment must not erase
// that balance).
func (s *StateDB) CreateAccount(addr common.Address) error {
	newObj, prev := s.createObject(addr)
	if prev != nil {
		newObj.setBalance(prev.Balance())
	}
	return nil
}

// --- vm.Host: balances ---

func (s *StateDB) GetBalance(addr common.Address) *big.Int {
	if obj := s.getStateObject(addr); obj != nil {
		return obj.Balance()
	}
	return new(big.Int)
}

func (s *StateDB) AddBalance(addr common.Address, amount *big.Int) {
	s.getOrNewStateObject(addr).AddBalance(amount)
}

func (s *StateDB) SubBalance(addr common.Address, amount *big.Int) {
	s.getOrNewStateObject(addr).SubBalance(amount)
}

// Transfer moves amount from from to to, failing if from's balance is
// insufficient. Both mutations are journaled individually, so a revert after
// a failed second half never leaves a transfer half-applied.
func (s *StateDB) Transfer(from, to common.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	if s.GetBalance(from).Cmp(amount) < 0 {
		return errors.New("state: insufficient balance for transfer")
	}
	s.SubBalance(from, amount)
	s.AddBalance(to, amount)
	return nil
}

// --- vm.Host: nonce ---

func (s *StateDB) GetNonce(addr common.Address) uint64 {
	if obj := s.getStateObject(addr); obj != nil {
		return obj.Nonce()
	}
	return 0
}

func (s *StateDB) SetNonce(addr common.Address, nonce uint64) {
	s.getOrNewStateObject(addr).SetNonce(nonce)
}

func (s *StateDB) Nonce(addr common.Address) (uint64, bool) {
	exists, cold := s.LoadAccount(addr)
	if !exists {
		return 0, cold
	}
	return s.GetNonce(addr), cold
}

// --- vm.Host: code ---

func (s *StateDB) GetCodeHash(addr common.Address) common.Hash {
	if obj := s.getStateObject(addr); obj != nil {
		return common.BytesToHash(obj.CodeHash())
	}
	return common.Hash{}
}

func (s *StateDB) GetCode(addr common.Address) []byte {
	if obj := s.getStateObject(addr); obj != nil {
		return obj.Code()
	}
	return nil
}

func (s *StateDB) SetCode(addr common.Address, code []byte) {
	obj := s.getOrNewStateObject(addr)
	obj.SetCode(crypto.Keccak256Hash(code), code)
}

func (s *StateDB) CodeHash(addr common.Address) (common.Hash, bool) {
	exists, cold := s.LoadAccount(addr)
	if !exists {
		return common.Hash{}, cold
	}
	return s.GetCodeHash(addr), cold
}

func (s *StateDB) Balance(addr common.Address) (*big.Int, bool) {
	exists, cold := s.LoadAccount(addr)
	if !exists {
		return new(big.Int), cold
	}
	return s.GetBalance(addr), cold
}

// LoadAccount marks addr warm (journaling the first touch) and reports
// whether it exists and whether this touch was cold.
func (s *StateDB) LoadAccount(addr common.Address) (exists bool, cold bool) {
	cold = s.addAddressToAccessList(addr)
	return s.Exist(addr), cold
}

// LoadCode resolves addr's executable code, following at most one level of
// EIP-7702 delegation: if addr's code is a delegation designator, the
// designated address's code runs instead, but a delegation that itself
// points to another delegation is not chased further.
func (s *StateDB) LoadCode(addr common.Address) (code []byte, cold bool) {
	_, cold = s.LoadAccount(addr)
	code = s.GetCode(addr)
	if target, ok := types.ParseDelegation(code); ok {
		code = s.GetCode(target)
		if _, delegatesAgain := types.ParseDelegation(code); delegatesAgain {
			return nil, cold
		}
	}
	return code, cold
}

func (s *StateDB) Exist(addr common.Address) bool {
	return s.getStateObject(addr) != nil
}

func (s *StateDB) Empty(addr common.Address) bool {
	obj := s.getStateObject(addr)
	return obj == nil || obj.empty()
}

// --- vm.Host: storage ---

// GetState reads a storage slot without touching the access list, used by
// callers outside the metered interpreter path (tracers, tests).
func (s *StateDB) GetState(addr common.Address, key common.Hash) common.Hash {
	if obj := s.getStateObject(addr); obj != nil {
		return obj.GetState(key)
	}
	return common.Hash{}
}

func (s *StateDB) SLoad(addr common.Address, key common.Hash) (common.Hash, bool) {
	cold := s.addSlotToAccessList(addr, key)
	obj := s.getStateObject(addr)
	if obj == nil {
		return common.Hash{}, cold
	}
	return obj.GetState(key), cold
}

// SStore writes value to (addr, key), returning the value as of the start of
// the transaction (original), the value immediately before this write
// (prior), the value just written (current), and whether this slot access
// was cold — the four quantities EIP-2200/3529's net-gas metering compares.
func (s *StateDB) SStore(addr common.Address, key, value common.Hash) (original, prior, current common.Hash, cold bool) {
	cold = s.addSlotToAccessList(addr, key)
	obj := s.getOrNewStateObject(addr)
	original = obj.GetCommittedState(key)
	prior = obj.GetState(key)
	obj.SetState(key, value)
	return original, prior, value, cold
}

func (s *StateDB) TLoad(addr common.Address, key common.Hash) common.Hash {
	return s.transientStorage[addr][key]
}

func (s *StateDB) TStore(addr common.Address, key, value common.Hash) {
	prev := s.transientStorage[addr][key]
	if prev == value {
		return
	}
	s.journal.append(transientStorageChange{account: &addr, key: key, prevalue: prev})
	s.setTransientState(addr, key, value)
}

func (s *StateDB) setTransientState(addr common.Address, key, value common.Hash) {
	if s.transientStorage[addr] == nil {
		s.transientStorage[addr] = make(Storage)
	}
	s.transientStorage[addr][key] = value
}

// --- vm.Host: logs ---

func (s *StateDB) Log(log *types.Log) {
	log.TxHash = s.txHash
	log.TxIndex = uint(s.txIndex)
	log.Index = s.logSize
	s.logs[s.txHash] = append(s.logs[s.txHash], log)
	s.logSize++
	s.journal.append(addLogChange{txhash: s.txHash})
}

// Logs returns every log emitted by the current transaction.
func (s *StateDB) Logs() []*types.Log { return s.logs[s.txHash] }

// --- vm.Host: self-destruct ---

// SelfDestruct schedules from's balance to be transferred to to and marks
// from for removal at the end of the transaction (Finalize). It reports
// whether from held a nonzero balance, whether to already existed, whether
// this access was cold, and whether from was already marked earlier in the
// same transaction (SELFDESTRUCT is idempotent past the first call).
func (s *StateDB) SelfDestruct(from, to common.Address) (hadBalance, targetExisted, cold, alreadyDestructed bool) {
	obj := s.getStateObject(from)
	if obj == nil {
		return false, s.Exist(to), s.addAddressToAccessList(to), false
	}
	alreadyDestructed = obj.selfDestructed
	hadBalance = obj.Balance().Sign() != 0
	targetExisted = s.Exist(to)
	cold = s.addAddressToAccessList(to)

	if hadBalance && from != to {
		s.Transfer(from, to, obj.Balance())
	}
	if !alreadyDestructed {
		s.journal.append(selfDestructChange{
			account:     &from,
			prev:        obj.selfDestructed,
			prevbalance: new(big.Int).Set(obj.Balance()),
		})
		obj.selfDestructed = true
		obj.setBalance(new(big.Int))
	}
	return hadBalance, targetExisted, cold, alreadyDestructed
}

// HasSelfDestructed reports whether addr was marked by SelfDestruct during
// the current transaction.
func (s *StateDB) HasSelfDestructed(addr common.Address) bool {
	obj := s.getStateObject(addr)
	return obj != nil && obj.selfDestructed
}

func (s *StateDB) BlockHash(number uint64) common.Hash {
	return s.db.BlockHash(number)
}

// --- vm.Host: snapshots ---

// Snapshot returns a handle that RevertToSnapshot can later roll back to: a
// position in the journal's entry list.
func (s *StateDB) Snapshot() int {
	id := s.nextRevisionID
	s.nextRevisionID++
	s.validRevisions = append(s.validRevisions, revision{id, s.journal.length()})
	return id
}

// RevertToSnapshot undoes every journal entry appended since the matching
// Snapshot call, in reverse order.
func (s *StateDB) RevertToSnapshot(revid int) {
	idx := len(s.validRevisions)
	for idx > 0 && s.validRevisions[idx-1].id > revid {
		idx--
	}
	if idx == 0 || s.validRevisions[idx-1].id != revid {
		panic("state: revision id not found")
	}
	snapshot := s.validRevisions[idx-1].journalIndex
	s.journal.revert(s, snapshot)
	s.validRevisions = s.validRevisions[:idx-1]
}

// --- vm.Host: access list ---

func (s *StateDB) addAddressToAccessList(addr common.Address) (cold bool) {
	if s.accessList.AddAddress(addr) {
		s.journal.append(accessListAddAccountChange{address: &addr})
		return true
	}
	return false
}

func (s *StateDB) addSlotToAccessList(addr common.Address, slot common.Hash) (cold bool) {
	addrChange, slotChange := s.accessList.AddSlot(addr, slot)
	if addrChange {
		s.journal.append(accessListAddAccountChange{address: &addr})
	}
	if slotChange {
		s.journal.append(accessListAddSlotChange{address: &addr, slot: &slot})
	}
	return slotChange || addrChange
}

func (s *StateDB) AddressInAccessList(addr common.Address) bool {
	return s.accessList.ContainsAddress(addr)
}

func (s *StateDB) AddAddressToAccessList(addr common.Address) {
	s.addAddressToAccessList(addr)
}

func (s *StateDB) SlotInAccessList(addr common.Address, slot common.Hash) (addrOk, slotOk bool) {
	return s.accessList.Contains(addr, slot)
}

func (s *StateDB) AddSlotToAccessList(addr common.Address, slot common.Hash) {
	s.addSlotToAccessList(addr, slot)
}

// --- vm.Host: refund ---

func (s *StateDB) AddRefund(gas uint64) {
	s.journal.append(refundChange{prev: s.refund})
	s.refund += gas
}

func (s *StateDB) SubRefund(gas uint64) {
	s.journal.append(refundChange{prev: s.refund})
	if gas > s.refund {
		panic("state: refund counter below zero")
	}
	s.refund -= gas
}

func (s *StateDB) GetRefund() uint64 { return s.refund }

// IncrementNonce reads, increments and writes addr's nonce in one step,
// failing with ErrNonceOverflow at the maximum instead of wrapping. The
// transaction driver does not use it; it calls SetNonce directly.
func (s *StateDB) IncrementNonce(addr common.Address) error {
	nonce := s.GetNonce(addr)
	if nonce+1 < nonce {
		return ErrNonceOverflow
	}
	s.SetNonce(addr, nonce+1)
	return nil
}

// Finalize applies EIP-161 empty-account pruning and drops every account
// marked by SelfDestruct, at the end of a transaction. Object removal itself
// is not journaled: Finalize runs only after the transaction has
// successfully committed, past any point a revert could still reach.
func (s *StateDB) Finalize() {
	for addr, obj := range s.stateObjects {
		if obj.selfDestructed || obj.empty() {
			delete(s.stateObjects, addr)
		}
	}
}
