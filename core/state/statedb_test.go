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

package state

import (
	"math/big"
	"testing"

	"github.com/probeum/levm/common"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRevertBalance(t *testing.T) {
	s := New(NewMemoryDatabase())
	addr := common.HexToAddress("0x01")

	s.AddBalance(addr, big.NewInt(100))
	snap := s.Snapshot()
	s.AddBalance(addr, big.NewInt(50))
	require.Equal(t, big.NewInt(150), s.GetBalance(addr))

	s.RevertToSnapshot(snap)
	require.Equal(t, big.NewInt(100), s.GetBalance(addr))
}

func TestSnapshotRevertStorage(t *testing.T) {
	s := New(NewMemoryDatabase())
	addr := common.HexToAddress("0x02")
	key := common.HexToHash("0x01")

	s.CreateAccount(addr)
	snap := s.Snapshot()
	_, _, _, _ = s.SStore(addr, key, common.HexToHash("0x2a"))
	require.Equal(t, common.HexToHash("0x2a"), s.GetState(addr, key))

	s.RevertToSnapshot(snap)
	require.Equal(t, common.Hash{}, s.GetState(addr, key))
}

func TestNestedSnapshots(t *testing.T) {
	s := New(NewMemoryDatabase())
	addr := common.HexToAddress("0x03")

	outer := s.Snapshot()
	s.AddBalance(addr, big.NewInt(10))
	inner := s.Snapshot()
	s.AddBalance(addr, big.NewInt(20))
	s.RevertToSnapshot(inner)
	require.Equal(t, big.NewInt(10), s.GetBalance(addr))
	s.RevertToSnapshot(outer)
	require.Equal(t, big.NewInt(0), s.GetBalance(addr))
}

func TestAccessListWarmsOnce(t *testing.T) {
	s := New(NewMemoryDatabase())
	addr := common.HexToAddress("0x04")

	_, cold1 := s.LoadAccount(addr)
	require.True(t, cold1)
	_, cold2 := s.LoadAccount(addr)
	require.False(t, cold2)
}

func TestSelfDestructTransfersBalance(t *testing.T) {
	s := New(NewMemoryDatabase())
	from := common.HexToAddress("0x05")
	to := common.HexToAddress("0x06")

	s.AddBalance(from, big.NewInt(42))
	hadBalance, _, _, _ := s.SelfDestruct(from, to)
	require.True(t, hadBalance)
	require.Equal(t, big.NewInt(42), s.GetBalance(to))
	require.Equal(t, big.NewInt(0), s.GetBalance(from))
	require.True(t, s.HasSelfDestructed(from))
}

func TestRefundCounter(t *testing.T) {
	s := New(NewMemoryDatabase())
	s.AddRefund(100)
	snap := s.Snapshot()
	s.AddRefund(50)
	require.Equal(t, uint64(150), s.GetRefund())
	s.RevertToSnapshot(snap)
	require.Equal(t, uint64(100), s.GetRefund())
}

func TestFinalizeDropsEmptyAccounts(t *testing.T) {
	s := New(NewMemoryDatabase())
	addr := common.HexToAddress("0x07")
	s.AddBalance(addr, big.NewInt(1))
	s.SubBalance(addr, big.NewInt(1))
	require.True(t, s.Exist(addr))

	s.Finalize()
	require.False(t, s.Exist(addr))
}
