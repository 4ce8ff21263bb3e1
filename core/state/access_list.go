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

package state

import "github.com/probeum/levm/common"

// accessList is the EIP-2929/2930 per-transaction set of addresses and
// (address, slot) pairs that have been touched at least once, making
// subsequent touches "warm" (cheaper) instead of "cold".
type accessList struct {
	addresses map[common.Address]int
	slots     []map[common.Hash]struct{}
}

func newAccessList() *accessList {
	return &accessList{addresses: make(map[common.Address]int)}
}

// ContainsAddress reports whether addr is in the access list.
func (al *accessList) ContainsAddress(addr common.Address) bool {
	_, ok := al.addresses[addr]
	return ok
}

// Contains reports whether (addr, slot) is in the access list, and
// separately whether addr alone is.
func (al *accessList) Contains(addr common.Address, slot common.Hash) (addressPresent, slotPresent bool) {
	idx, ok := al.addresses[addr]
	if !ok {
		return false, false
	}
	if idx == -1 {
		return true, false
	}
	_, slotPresent = al.slots[idx][slot]
	return true, slotPresent
}

// AddAddress adds addr to the access list, reporting whether it was not
// already present.
func (al *accessList) AddAddress(addr common.Address) bool {
	if _, ok := al.addresses[addr]; ok {
		return false
	}
	al.addresses[addr] = -1
	return true
}

// AddSlot adds (addr, slot), adding addr first if it was not yet present.
// Returns whether addr was newly added and whether the slot was.
func (al *accessList) AddSlot(addr common.Address, slot common.Hash) (addrChange bool, slotChange bool) {
	idx, addrPresent := al.addresses[addr]
	if !addrPresent || idx == -1 {
		al.slots = append(al.slots, map[common.Hash]struct{}{})
		idx = len(al.slots) - 1
		al.addresses[addr] = idx
		addrChange = !addrPresent
	}
	if _, ok := al.slots[idx][slot]; ok {
		return addrChange, false
	}
	al.slots[idx][slot] = struct{}{}
	return addrChange, true
}

// DeleteSlot removes a single slot reservation, used only by journal revert.
func (al *accessList) DeleteSlot(addr common.Address, slot common.Hash) {
	idx, ok := al.addresses[addr]
	if !ok || idx == -1 {
		panic("reverting slot change, address not present in list")
	}
	delete(al.slots[idx], slot)
	if len(al.slots[idx]) == 0 && idx == len(al.slots)-1 {
		al.slots = al.slots[:idx]
		if idx == 0 {
			al.addresses[addr] = -1
		}
	}
}

// DeleteAddress removes an address reservation, used only by journal revert.
func (al *accessList) DeleteAddress(addr common.Address) {
	delete(al.addresses, addr)
}
