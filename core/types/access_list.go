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

package types

import "github.com/probeum/levm/common"

// AccessTuple is the element type of an EIP-2930 access list: an address and
// the storage slots within it that a transaction declares upfront as warm.
type AccessTuple struct {
	Address     common.Address `json:"address"`
	StorageKeys []common.Hash  `json:"storageKeys"`
}

// AccessList is an EIP-2930 access list, pre-warming addresses and storage
// slots so transactions that touch them skip the EIP-2929 cold-access
// surcharge.
type AccessList []AccessTuple

// StorageKeys returns the total number of storage keys across every tuple.
func (al AccessList) StorageKeys() int {
	sum := 0
	for _, tuple := range al {
		sum += len(tuple.StorageKeys)
	}
	return sum
}

// AuthorizationTuple is an EIP-7702 authorization: a signed statement from
// authority granting chainID/address to act as executable code for its EOA,
// incrementing its nonce by one if applied.
type AuthorizationTuple struct {
	ChainID uint64
	Address common.Address
	Nonce   uint64

	V uint8
	R common.Hash
	S common.Hash
}

// DelegationPrefix is prepended to an authority's code when an EIP-7702
// authorization has been applied, per EIP-7702: 0xef0100 ++ address.
var DelegationPrefix = []byte{0xef, 0x01, 0x00}

// ParseDelegation returns the target address embedded in a delegation
// designator, and whether code is in fact a well-formed one.
func ParseDelegation(code []byte) (common.Address, bool) {
	if len(code) != 23 || code[0] != 0xef || code[1] != 0x01 || code[2] != 0x00 {
		return common.Address{}, false
	}
	return common.BytesToAddress(code[3:]), true
}

// AddressToDelegation builds the delegation designator code for addr.
func AddressToDelegation(addr common.Address) []byte {
	return append(append([]byte{}, DelegationPrefix...), addr.Bytes()...)
}
