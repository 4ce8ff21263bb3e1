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

package crypto

import (
	"hash"
	"sync"

	"github.com/probeum/levm/common"
	"github.com/probeum/levm/rlp"
	"golang.org/x/crypto/sha3"
)

// DigestLength is the length in bytes of a Keccak256 digest.
const DigestLength = 32

// KeccakState wraps sha3.state. In addition to the usual hash methods, it
// also supports Read to get a variable amount of data from the hash state.
// Read is faster than Sum because it doesn't copy the internal state, but
// also modifies the internal state.
type KeccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

var hasherPool = sync.Pool{
	New: func() interface{} { return sha3.NewLegacyKeccak256().(KeccakState) },
}

// NewKeccakState creates a new KeccakState.
func NewKeccakState() KeccakState {
	return sha3.NewLegacyKeccak256().(KeccakState)
}

// HashData hashes the provided data using the KeccakState and leaves it
// ready for reuse.
func HashData(kh KeccakState, data []byte) (h common.Hash) {
	kh.Reset()
	kh.Write(data)
	kh.Read(h[:])
	return h
}

// Keccak256 calculates and returns the Keccak256 hash of the input data,
// concatenating all of its parts.
func Keccak256(data ...[]byte) []byte {
	b := hasherPool.Get().(KeccakState)
	defer hasherPool.Put(b)
	b.Reset()
	for _, d := range data {
		b.Write(d)
	}
	buf := make([]byte, DigestLength)
	b.Read(buf)
	return buf
}

// Keccak256Hash calculates and returns the Keccak256 hash of the input data,
// converting it to an internal Hash data structure.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	b := hasherPool.Get().(KeccakState)
	defer hasherPool.Put(b)
	b.Reset()
	for _, d := range data {
		b.Write(d)
	}
	b.Read(h[:])
	return h
}

// CreateAddress derives the address of a contract created via CREATE:
// keccak256(rlp([addr, nonce]))[12:].
func CreateAddress(addr common.Address, nonce uint64) common.Address {
	enc := rlp.EncodeList(rlp.EncodeBytes(addr.Bytes()), rlp.EncodeUint64(nonce))
	return common.BytesToAddress(Keccak256(enc)[12:])
}

// CreateAddress2 derives the address of a contract created via CREATE2:
// keccak256(0xff ++ addr ++ salt ++ keccak256(initcode))[12:].
func CreateAddress2(addr common.Address, salt [32]byte, initCodeHash []byte) common.Address {
	buf := make([]byte, 0, 1+common.AddressLength+32+32)
	buf = append(buf, 0xff)
	buf = append(buf, addr.Bytes()...)
	buf = append(buf, salt[:]...)
	buf = append(buf, initCodeHash...)
	return common.BytesToAddress(Keccak256(buf)[12:])
}
