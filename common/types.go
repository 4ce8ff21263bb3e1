// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

// Package common holds the fixed-size primitive types shared by every layer
// of the execution engine: addresses, hashes and small byte-slice helpers.
package common

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"math/rand"
)

const (
	// HashLength is the expected length of the hash (in bytes).
	HashLength = 32
	// AddressLength is the expected length of the address (in bytes).
	AddressLength = 20
)

// Hash represents the 32 byte Keccak256 hash of arbitrary data.
type Hash [HashLength]byte

// BytesToHash sets b to hash. If b is larger than len(h), b will be cropped
// from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HexToHash sets byte representation of s to hash. If b is larger than len(h),
// b will be cropped from the left.
func HexToHash(s string) Hash { return BytesToHash(FromHex(s)) }

// SetBytes sets the hash to the value of b. If b is larger than len(h), b
// will be cropped from the left.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// Bytes returns the raw bytes of the hash.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns a 0x-prefixed hex string representation of the hash.
func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash) String() string { return h.Hex() }

// Big converts a hash to a big integer.
func (h Hash) Big() *big.Int { return new(big.Int).SetBytes(h[:]) }

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool { return h == Hash{} }

// Cmp compares two hashes lexically.
func (h Hash) Cmp(other Hash) int {
	for i := range h {
		if h[i] != other[i] {
			if h[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Address represents the 20 byte address of an Ethereum account.
type Address [AddressLength]byte

// BytesToAddress sets b to address. If b is larger than len(a), b will be
// cropped from the left.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// HexToAddress sets byte representation of s to address.
func HexToAddress(s string) Address { return BytesToAddress(FromHex(s)) }

// SetBytes sets the address to the value of b. If b is larger than len(a), b
// will be cropped from the left.
func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

// Bytes returns the raw bytes of the address.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns a 0x-prefixed hex string representation of the address.
func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

func (a Address) String() string { return a.Hex() }

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool { return a == Address{} }

// Cmp compares two addresses lexically.
func (a Address) Cmp(other Address) int {
	for i := range a {
		if a[i] != other[i] {
			if a[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Hash pads the address on the left with zero bytes and returns it as a Hash,
// matching the EVM's convention for e.g. CALLER/ADDRESS on the stack.
func (a Address) Hash() Hash { return BytesToHash(a[:]) }

// FromHex returns the bytes represented by the hexadecimal string s. The
// string may be prefixed with "0x".
func FromHex(s string) []byte {
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}

// CopyBytes returns an exact copy of the provided byte slice.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	cpy := make([]byte, len(b))
	copy(cpy, b)
	return cpy
}

// ByteSliceEqual reports whether a and b hold the same bytes.
func ByteSliceEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}

// RightPadBytes returns a slice of length l, the contents of which are b
// followed by zero bytes; if len(b) >= l, b is returned unchanged.
func RightPadBytes(b []byte, l int) []byte {
	if l <= len(b) {
		return b
	}
	padded := make([]byte, l)
	copy(padded, b)
	return padded
}

// LeftPadBytes returns a slice of length l, the contents of which are zero
// bytes followed by b; if len(b) >= l, b is returned unchanged.
func LeftPadBytes(b []byte, l int) []byte {
	if l <= len(b) {
		return b
	}
	padded := make([]byte, l)
	copy(padded[l-len(b):], b)
	return padded
}

// GenerateRandomAddress is a small test helper, not used by consensus code.
func GenerateRandomAddress(r *rand.Rand) Address {
	var a Address
	r.Read(a[:])
	return a
}

// UnprefixedHash allows marshaling a Hash without 0x prefix, used by fixture loaders.
type UnprefixedHash Hash

func (h UnprefixedHash) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(h[:])), nil
}

func (h *UnprefixedHash) UnmarshalText(input []byte) error {
	dec, err := hex.DecodeString(string(input))
	if err != nil {
		return fmt.Errorf("invalid hex hash: %w", err)
	}
	if len(dec) != HashLength {
		return fmt.Errorf("hash of unexpected length %d", len(dec))
	}
	copy(h[:], dec)
	return nil
}
