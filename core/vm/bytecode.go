// Copyright 2017 The go-ethereum Authors
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
	"errors"
	"sync"

	"github.com/hashicorp/golang-lru"
	"github.com/probeum/levm/common"
	"github.com/probeum/levm/core/types"
	"github.com/probeum/levm/crypto"
)

// ErrDelegationLength is returned when DecodeDelegation is given a byte
// slice that is not exactly 23 bytes with the EIP-7702 version prefix.
var ErrDelegationLength = errors.New("invalid delegation designator length")

// bitvec is a bit vector recording, one bit per code byte, which offsets lie
// inside a PUSH immediate (a set bit is push data; codeSegment reports a
// clear bit as real code). It is shared by reference across every Bytecode
// built from the same analysis, never mutated after Analyze returns.
type bitvec []byte

const (
	set2BitsMask = uint16(0b11)
	set3BitsMask = uint16(0b111)
	set4BitsMask = uint16(0b1111)
)

func (bits bitvec) codeSegment(pos uint64) bool {
	return (bits[pos/8] & (byte(1) << (pos % 8))) == 0
}

func (bits bitvec) set1(pos uint64) {
	bits[pos/8] |= 1 << (pos % 8)
}

func (bits bitvec) setN(flag uint16, pos uint64) {
	a := flag << (pos % 8)
	bits[pos/8] |= byte(a)
	if b := byte(a >> 8); b != 0 {
		bits[pos/8+1] = b
	}
}

// codeBitmap collects the bit positions that are PUSH-immediate data. Analyze
// stores the result as the Bytecode's pushdata bitmap, and IsValidJump
// accepts an offset only if its byte is JUMPDEST and its bit here is clear.
func codeBitmap(code []byte) bitvec {
	// The bit vector is 4 bits longer than necessary, in case the code
	// ends with a PUSH32, the algorithm will push zeroes onto the
	// bitvector outside the bounds of the actual code.
	bits := make(bitvec, len(code)/8+1+4)
	for pc := uint64(0); pc < uint64(len(code)); {
		op := OpCode(code[pc])
		if op >= PUSH1 && op <= PUSH32 {
			numbits := op - PUSH1 + 1
			pc++
			for ; numbits >= 8; numbits -= 8 {
				bits.setN(0xff, pc)
				pc += 8
			}
			switch numbits {
			case 1:
				bits.set1(pc)
				pc += 1
			case 2:
				bits.setN(set2BitsMask, pc)
				pc += 2
			case 3:
				bits.setN(set3BitsMask, pc)
				pc += 3
			case 4:
				bits.setN(set4BitsMask, pc)
				pc += 4
			case 5, 6, 7:
				mask := uint16(1<<numbits - 1)
				bits.setN(mask, pc)
				pc += uint64(numbits)
			}
		} else {
			pc++
		}
	}
	return bits
}

// Bytecode is the shared, immutable, analyzed form of a contract's legacy
// code. The raw bytes are post-padded with at least 32 zero bytes so a
// trailing PUSH32's immediate never runs off the buffer; pushData tracks
// which offsets are inside a PUSH immediate (and so never a valid jump
// target even if they happen to equal the JUMPDEST opcode byte).
type Bytecode struct {
	raw      []byte // original, unpadded code
	padded   []byte // raw + 32 zero bytes
	pushdata bitvec
	hash     common.Hash
}

// Analyze scans raw legacy bytecode once, building the push-data bitmap and
// the zero-padded buffer the interpreter fetches opcodes from.
func Analyze(raw []byte) *Bytecode {
	padded := make([]byte, len(raw)+32)
	copy(padded, raw)
	return &Bytecode{
		raw:      raw,
		padded:   padded,
		pushdata: codeBitmap(raw),
		hash:     crypto.Keccak256Hash(raw),
	}
}

// Len returns the length of the original, unpadded code.
func (b *Bytecode) Len() int { return len(b.raw) }

// Hash returns the code hash, computed once at analysis time.
func (b *Bytecode) Hash() common.Hash { return b.hash }

// Raw returns the original unpadded bytes.
func (b *Bytecode) Raw() []byte { return b.raw }

// OpcodeAt returns the opcode byte at pc; reads past the original code but
// within the padding return 0 (STOP).
func (b *Bytecode) OpcodeAt(pc uint64) OpCode {
	if pc >= uint64(len(b.padded)) {
		return STOP
	}
	return OpCode(b.padded[pc])
}

// IsValidJump reports whether pc is a JUMPDEST opcode that is not inside a
// PUSH immediate.
func (b *Bytecode) IsValidJump(pc uint64) bool {
	if pc >= uint64(len(b.raw)) {
		return false
	}
	if OpCode(b.raw[pc]) != JUMPDEST {
		return false
	}
	return b.pushdata.codeSegment(pc)
}

// analysisCache caches Bytecode analysis by code hash, avoiding repeated
// jump-bitmap construction for code reused across many frames.
var analysisCache *lru.Cache

func init() {
	c, err := lru.New(4096)
	if err != nil {
		panic(err)
	}
	analysisCache = c
}

var analysisMu sync.Mutex

// AnalyzeCached returns the cached Bytecode for the given code hash if
// present, otherwise analyzes raw, caches, and returns the result.
func AnalyzeCached(codeHash common.Hash, raw []byte) *Bytecode {
	if v, ok := analysisCache.Get(codeHash); ok {
		return v.(*Bytecode)
	}
	analysisMu.Lock()
	defer analysisMu.Unlock()
	if v, ok := analysisCache.Get(codeHash); ok {
		return v.(*Bytecode)
	}
	b := Analyze(raw)
	analysisCache.Add(codeHash, b)
	return b
}

// DecodeDelegation validates a 23-byte EIP-7702 delegation designator and
// returns its target address.
func DecodeDelegation(raw []byte) (common.Address, error) {
	addr, ok := types.ParseDelegation(raw)
	if !ok {
		return common.Address{}, ErrDelegationLength
	}
	return addr, nil
}

// IsDelegated reports whether code is a well-formed EIP-7702 delegation
// designator.
func IsDelegated(code []byte) bool {
	_, ok := types.ParseDelegation(code)
	return ok
}
