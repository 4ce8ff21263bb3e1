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

package vm

import "github.com/probeum/levm/params"

// GasMeter tracks the gas budget of a single frame: the limit it was started
// with, what it has spent so far, how much of that was memory expansion,
// and the running refund counter.
type GasMeter struct {
	limit       uint64
	spent       uint64
	memoryGas   uint64
	refunded    int64
}

// NewGasMeter creates a meter with the given gas limit.
func NewGasMeter(limit uint64) *GasMeter {
	return &GasMeter{limit: limit}
}

// RecordCost charges n units of gas, failing atomically if doing so would
// exceed the limit.
func (g *GasMeter) RecordCost(n uint64) error {
	if g.spent+n > g.limit || g.spent+n < g.spent {
		return ErrOutOfGas
	}
	g.spent += n
	return nil
}

// RecordMemory charges the incremental cost of expanding memory to
// peakWords 32-byte words, per the quadratic memory-cost equation
// 3*w + w^2/512. It is a no-op if the new peak does not exceed the
// previously charged peak.
func (g *GasMeter) RecordMemory(peakWords uint64) error {
	cost, overflow := memoryGasCost(peakWords)
	if overflow {
		return ErrGasUintOverflow
	}
	if cost <= g.memoryGas {
		return nil
	}
	delta := cost - g.memoryGas
	if err := g.RecordCost(delta); err != nil {
		return err
	}
	g.memoryGas = cost
	return nil
}

func memoryGasCost(words uint64) (uint64, bool) {
	if words == 0 {
		return 0, false
	}
	// Guard against the square overflowing uint64: with QuadCoeffDiv=512,
	// words beyond ~2^32 always exceeds any realistic gas limit first.
	if words > 0xffffffff {
		return 0, true
	}
	square := words * words
	linear := words * params.MemoryGas
	quad := square / params.QuadCoeffDiv
	total := linear + quad
	if total < linear {
		return 0, true
	}
	return total, false
}

// RecordRefund adds delta (which may be negative) to the refund counter.
// Negative refunds are legitimate mid-execution (an SSTORE reset cancelling
// an earlier set); only the final value is capped and floored, by the
// transaction driver.
func (g *GasMeter) RecordRefund(delta int64) {
	g.refunded += delta
}

// EraseCost credits back n units of spent gas, used when a sub-call returns
// unused gas to its caller.
func (g *GasMeter) EraseCost(n uint64) {
	if n > g.spent {
		n = g.spent
	}
	g.spent -= n
}

// Spent returns the gas consumed so far.
func (g *GasMeter) Spent() uint64 { return g.spent }

// Remaining returns the unspent portion of the limit.
func (g *GasMeter) Remaining() uint64 { return g.limit - g.spent }

// Limit returns the gas limit this meter was created with.
func (g *GasMeter) Limit() uint64 { return g.limit }

// Refunded returns the current refund counter value.
func (g *GasMeter) Refunded() int64 { return g.refunded }
