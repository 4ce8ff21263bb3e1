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
	"testing"

	"github.com/holiman/uint256"
	"github.com/probeum/levm/common"
	"github.com/probeum/levm/params"
	"github.com/stretchr/testify/require"
)

func TestStackPushPopOrder(t *testing.T) {
	st := newstack()
	defer returnStack(st)

	st.push(uint256.NewInt(1))
	st.push(uint256.NewInt(2))
	require.Equal(t, 2, st.len())
	require.Equal(t, uint64(2), st.peek().Uint64())

	popped := st.pop()
	require.Equal(t, uint64(2), popped.Uint64())
	popped = st.pop()
	require.Equal(t, uint64(1), popped.Uint64())
}

func TestStackDupAndSwap(t *testing.T) {
	st := newstack()
	defer returnStack(st)

	st.push(uint256.NewInt(10))
	st.push(uint256.NewInt(20))
	st.dup(2)
	require.Equal(t, 3, st.len())
	require.Equal(t, uint64(10), st.peek().Uint64())

	st.swap(2) // swap(2) is SWAP1: exchange the top with the item below it
	require.Equal(t, uint64(20), st.peek().Uint64())
}

func TestStackRequireCapacityAtLimit(t *testing.T) {
	st := newstack()
	defer returnStack(st)

	for i := 0; i < params.StackLimit; i++ {
		require.NoError(t, st.requireCapacity(1))
		st.push(uint256.NewInt(uint64(i)))
	}
	require.Error(t, st.requireCapacity(1))
}

func TestStackUnderflow(t *testing.T) {
	st := newstack()
	defer returnStack(st)

	require.Error(t, st.require(1))
	st.push(uint256.NewInt(1))
	require.NoError(t, st.require(1))
	require.Error(t, st.require(2))
}

func TestMemoryLengthAlwaysMultipleOf32(t *testing.T) {
	for _, size := range []uint64{0, 1, 31, 32, 33, 63, 64, 1000} {
		words := toWordSize(size)
		m := NewMemory()
		m.Resize(words * 32)
		require.Zero(t, m.Len()%32)
		require.GreaterOrEqual(t, uint64(m.Len()), size)
	}
}

func TestBytecodePush32PastCodeEndIsZeroPadded(t *testing.T) {
	raw := []byte{byte(PUSH32)}
	code := Analyze(raw)
	require.Equal(t, 1, code.Len())
	for pc := uint64(1); pc < 33; pc++ {
		require.Equal(t, STOP, code.OpcodeAt(pc))
	}
}

func TestBytecodeIsValidJumpExcludesPushImmediate(t *testing.T) {
	// JUMPDEST's byte value (0x5b) appearing inside a PUSH2 immediate must
	// not be treated as a valid jump target.
	raw := []byte{byte(PUSH2), 0x5b, 0x5b, byte(JUMPDEST)}
	code := Analyze(raw)
	require.False(t, code.IsValidJump(1))
	require.False(t, code.IsValidJump(2))
	require.True(t, code.IsValidJump(3))
	require.False(t, code.IsValidJump(4)) // past end of code
}

func TestCallGasCapsAtAllButOneSixtyFourth(t *testing.T) {
	available := uint64(640000)
	requestEverything := uint256.NewInt(available)
	require.Equal(t, available-available/64, callGas(available, requestEverything, false))

	small := uint256.NewInt(1000)
	require.Equal(t, uint64(1000), callGas(available, small, false))
}

func TestSstoreCostWarmNoopEmitsNoRefund(t *testing.T) {
	rules := params.RulesFor(params.Cancun)
	slot := common.HexToHash("0x2a")
	cost, refund := sstoreCost(rules, slot, slot, slot, false)
	require.Equal(t, params.WarmStorageReadCostEIP2929, cost)
	require.Zero(t, refund)
}

func TestSstoreCostColdFreshWrite(t *testing.T) {
	rules := params.RulesFor(params.Cancun)
	zero := common.Hash{}
	nonzero := common.HexToHash("0x01")
	cost, refund := sstoreCost(rules, zero, zero, nonzero, true)
	require.Equal(t, params.ColdSloadCostEIP2929+params.SstoreInitGasEIP2929, cost)
	require.Zero(t, refund)
}

func TestSstoreCostClearingRefunds(t *testing.T) {
	rules := params.RulesFor(params.Cancun)
	nonzero := common.HexToHash("0x01")
	zero := common.Hash{}
	_, refund := sstoreCost(rules, nonzero, nonzero, zero, false)
	require.Equal(t, int64(params.SstoreClearRefundEIP3529), refund)
}
