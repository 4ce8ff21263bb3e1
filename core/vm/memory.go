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

package vm

import (
	"math"

	"github.com/holiman/uint256"
)

// Memory implements a per-frame byte-addressable buffer that grows in
// 32-byte words. Expansion gas is charged by the interpreter, through the
// gas meter, before any write reaches here.
type Memory struct {
	store       []byte
	lastGasCost uint64
}

// NewMemory creates an empty memory buffer.
func NewMemory() *Memory {
	return &Memory{}
}

// Resize grows memory to size bytes, zero-filling the new region. The caller
// must have already charged gas for the expansion; Resize never shrinks.
func (m *Memory) Resize(size uint64) {
	if uint64(m.Len()) < size {
		m.store = append(m.store, make([]byte, size-uint64(m.Len()))...)
	}
}

// Set copies value into memory at offset, resizing is the caller's
// responsibility beforehand.
func (m *Memory) Set(offset, size uint64, value []byte) {
	if size == 0 {
		return
	}
	if offset+size > uint64(len(m.store)) {
		panic("invalid memory: store empty")
	}
	copy(m.store[offset:offset+size], value)
}

// Set32 writes a 256-bit value as big-endian bytes starting at offset.
func (m *Memory) Set32(offset uint64, val *uint256.Int) {
	if offset+32 > uint64(len(m.store)) {
		panic("invalid memory: store empty")
	}
	b32 := val.Bytes32()
	copy(m.store[offset:offset+32], b32[:])
}

// GetCopy returns a copy of the size bytes at offset.
func (m *Memory) GetCopy(offset, size int64) []byte {
	if size == 0 {
		return nil
	}
	if len(m.store) > int(offset) {
		cpy := make([]byte, size)
		copy(cpy, m.store[offset:offset+size])
		return cpy
	}
	return nil
}

// GetPtr returns a borrowed view of the size bytes at offset.
func (m *Memory) GetPtr(offset, size int64) []byte {
	if size == 0 {
		return nil
	}
	if len(m.store) > int(offset) {
		return m.store[offset : offset+size]
	}
	return nil
}

// Len returns the current memory length in bytes, always a multiple of 32.
func (m *Memory) Len() int { return len(m.store) }

// Data returns the backing store.
func (m *Memory) Data() []byte { return m.store }

// Copy performs an overlap-safe copy within memory, for the MCOPY opcode.
func (m *Memory) Copy(dst, src, size uint64) {
	if size == 0 {
		return
	}
	copy(m.store[dst:dst+size], m.store[src:src+size])
}

// CalcMemSize64 returns the minimal byte size covering the span starting at
// off and spanning l bytes, and whether it overflowed.
func CalcMemSize64(off, l *uint256.Int) (uint64, bool) {
	if l.IsZero() {
		return 0, false
	}
	return calcMemSize64WithUint(off, l.Uint64())
}

// calcMemSize64WithUint calculates the required memory size, and returns
// the size and whether the result overflowed uint64.
func calcMemSize64WithUint(off *uint256.Int, length64 uint64) (uint64, bool) {
	if !off.IsUint64() {
		return 0, true
	}
	offset64 := off.Uint64()
	total := offset64 + length64
	if total < offset64 {
		return 0, true
	}
	return total, false
}

// toWordSize returns the number of 32-byte words needed to store size bytes.
func toWordSize(size uint64) uint64 {
	if size > math.MaxUint64-31 {
		return math.MaxUint64/32 + 1
	}
	return (size + 31) / 32
}
